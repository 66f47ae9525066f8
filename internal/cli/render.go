package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/keygrid/pkg/config"
	"github.com/matzehuels/keygrid/pkg/pipeline"
)

// renderOpts holds the arguments and flags of the keygrid command.
type renderOpts struct {
	input      string // CSV layout file
	output     string // image file, overwritten if present
	shape      string // optional block descriptor
	configPath string // optional TOML config
	font       string // preferred font override
	preview    bool   // print terminal tables after rendering
}

// runRender loads the configuration, runs the pipeline and reports the
// result on the command's output.
func runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.font != "" {
		cfg.FontName = opts.font
	}
	if opts.configPath != "" {
		logger.Debug("loaded config", "path", opts.configPath,
			"key_width", cfg.KeyWidth, "key_height", cfg.KeyHeight, "margin", cfg.Margin)
	}

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:  opts.input,
		Output: opts.output,
		Shape:  opts.shape,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	if opts.preview {
		printPreview(cmd.OutOrStdout(), result)
	}
	prog.done("Rendered " + result.Output)
	return nil
}
