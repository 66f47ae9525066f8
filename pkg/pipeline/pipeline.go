// Package pipeline runs the load → partition → render → export sequence
// behind the keygrid command.
//
// # Stages
//
//  1. Shape: when [Options.Shape] is set it is parsed first, so a malformed
//     descriptor aborts before the input file is opened.
//  2. Load: the CSV layout is read into a grid.
//  3. Render: with a shape, the grid is partitioned into blocks and drawn
//     side by side; without one, the grid is drawn as a single block. The
//     canvas size is checked first and an empty or oversized canvas fails
//     with CANVAS_SIZE.
//  4. Export: the image is written atomically to [Options.Output].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "layout.csv",
//	    Output: "layout.png",
//	    Shape:  "5x3+5x3",
//	    Config: render.DefaultConfig(),
//	})
//
// # Fonts
//
// Grid mode draws labels with the preferred font at Config.FontSize and falls
// back to the built-in bitmap face when that font is unavailable. Block mode
// always uses the bitmap face and ignores FontSize.
package pipeline

import (
	"image"
	"time"

	"github.com/matzehuels/keygrid/pkg/errors"
	"github.com/matzehuels/keygrid/pkg/grid"
	"github.com/matzehuels/keygrid/pkg/layout"
	"github.com/matzehuels/keygrid/pkg/render"
)

// Render modes.
const (
	ModeGrid   = "grid"   // whole grid as one block
	ModeBlocks = "blocks" // shape-partitioned blocks, left to right
)

// Options configures a single run.
type Options struct {
	Input  string        // CSV layout path
	Output string        // image path, overwritten if present
	Shape  string        // optional block descriptor, e.g. "5x3+5x3"
	Config render.Config // layout constants
}

// Validate checks the options without touching the filesystem.
func (o Options) Validate() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidPath, "input path cannot be empty")
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	return o.Config.Validate()
}

// Result describes a completed run.
type Result struct {
	Mode     string
	Grid     grid.Grid
	Blocks   []layout.Block // nil in grid mode
	Image    image.Image
	Output   string
	Fallback bool // labels were drawn with the built-in bitmap face
	Dropped  int  // non-empty labels outside the shape (block mode only)
	Stats    Stats
}

// Size returns the rendered image dimensions.
func (r *Result) Size() image.Point {
	if r.Image == nil {
		return image.Point{}
	}
	return r.Image.Bounds().Size()
}

// Stats records stage timings.
type Stats struct {
	LoadTime   time.Duration
	RenderTime time.Duration
	ExportTime time.Duration
}
