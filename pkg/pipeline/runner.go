package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keygrid/pkg/fonts"
	"github.com/matzehuels/keygrid/pkg/io"
	"github.com/matzehuels/keygrid/pkg/layout"
	"github.com/matzehuels/keygrid/pkg/observability"
	"github.com/matzehuels/keygrid/pkg/render"
	"github.com/matzehuels/keygrid/pkg/shape"
)

// Runner executes pipeline runs. It holds no per-run state.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs every stage for opts and writes the image.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()

	var spec shape.Spec
	if opts.Shape != "" {
		s, err := shape.Parse(opts.Shape)
		if err != nil {
			return nil, err
		}
		spec = s
		if _, err := render.ShapeSize(opts.Config, spec); err != nil {
			return nil, err
		}
		r.Logger.Debug("parsed shape",
			"shape", spec.String(),
			"blocks", len(spec),
			"cols", spec.TotalCols(),
			"rows", spec.MaxRows())
	}

	result := &Result{Output: opts.Output}

	loadStart := time.Now()
	g, err := io.ImportCSV(opts.Input)
	result.Stats.LoadTime = time.Since(loadStart)
	hooks.OnLoadComplete(ctx, opts.Input, len(g), result.Stats.LoadTime, err)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	r.Logger.Info("loaded layout",
		"rows", g.Rows(),
		"cols", g.MaxWidth(),
		"keys", g.Count())

	renderStart := time.Now()
	if spec != nil {
		result.Mode = ModeBlocks
		result.Blocks = layout.Partition(g, spec)
		hooks.OnPartition(ctx, spec.String(), len(result.Blocks))
		result.Dropped = g.Labels() - layout.Join(result.Blocks).Labels()
		if result.Dropped > 0 {
			r.Logger.Debug("labels outside shape", "dropped", result.Dropped)
		}
		// Block mode draws with the bitmap face regardless of FontSize.
		result.Fallback = true
		result.Image = render.RenderBlocks(opts.Config, result.Blocks, fonts.Default())
	} else {
		result.Mode = ModeGrid
		if err := render.CheckSize(render.GridSize(opts.Config, g)); err != nil {
			return nil, err
		}
		face := fonts.Load(opts.Config.FontName, opts.Config.FontSize)
		if face.Fallback {
			r.Logger.Debug("preferred font unavailable, using built-in face", "err", face.Err)
			hooks.OnFontFallback(ctx, opts.Config.FontName, face.Err)
		}
		result.Fallback = face.Fallback
		result.Image = render.RenderGrid(opts.Config, g, face.Face)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	size := result.Size()
	hooks.OnRenderComplete(ctx, result.Mode, size.X, size.Y, result.Stats.RenderTime)
	r.Logger.Info("rendered diagram",
		"mode", result.Mode,
		"width", size.X,
		"height", size.Y,
		"duration", result.Stats.RenderTime)

	exportStart := time.Now()
	err = io.ExportImage(result.Image, opts.Output)
	result.Stats.ExportTime = time.Since(exportStart)
	hooks.OnExportComplete(ctx, opts.Output, result.Stats.ExportTime, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}
