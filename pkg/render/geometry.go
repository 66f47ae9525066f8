package render

import (
	"image"

	"github.com/matzehuels/keygrid/pkg/errors"
	"github.com/matzehuels/keygrid/pkg/grid"
	"github.com/matzehuels/keygrid/pkg/layout"
	"github.com/matzehuels/keygrid/pkg/shape"
)

// Canvas limits. A larger image is refused before anything is allocated.
const (
	MaxCanvasSide   = 1 << 16
	MaxCanvasPixels = 1 << 27
)

// GridSize returns the canvas size for drawing g as a single block.
func GridSize(c Config, g grid.Grid) image.Point {
	return image.Pt(
		g.MaxWidth()*c.KeyWidth+2*c.Margin,
		g.Rows()*c.KeyHeight+2*c.Margin,
	)
}

// BlocksSize returns the canvas size for drawing blocks side by side.
// Zero blocks yields just the margins.
func BlocksSize(c Config, blocks []layout.Block) image.Point {
	if len(blocks) == 0 {
		return image.Pt(2*c.Margin, 2*c.Margin)
	}
	cols, rows := 0, 0
	for _, b := range blocks {
		cols += b.Cols
		if b.Rows > rows {
			rows = b.Rows
		}
	}
	return image.Pt(
		cols*c.KeyWidth+2*c.Margin+(len(blocks)-1)*c.blockGap(),
		rows*c.KeyHeight+2*c.Margin,
	)
}

// ShapeSize returns the canvas size for blocks laid out by s, the same size
// [BlocksSize] reports after partitioning. It fails with
// [errors.ErrCodeCanvasSize] when the result exceeds the canvas limits, so a
// descriptor like "1x99999999999" is refused before any rows are built.
func ShapeSize(c Config, s shape.Spec) (image.Point, error) {
	if len(s) == 0 {
		return image.Pt(2*c.Margin, 2*c.Margin), nil
	}
	for _, d := range s {
		if d.Cols > MaxCanvasSide || d.Rows > MaxCanvasSide {
			return image.Point{}, errors.New(errors.ErrCodeCanvasSize,
				"block %s exceeds the %d key limit", d, MaxCanvasSide)
		}
	}
	size := image.Pt(
		s.TotalCols()*c.KeyWidth+2*c.Margin+(len(s)-1)*c.blockGap(),
		s.MaxRows()*c.KeyHeight+2*c.Margin,
	)
	return size, CheckSize(size)
}

// CheckSize reports whether an image of size can be drawn and encoded.
func CheckSize(size image.Point) error {
	switch {
	case size.X <= 0 || size.Y <= 0:
		return errors.New(errors.ErrCodeCanvasSize, "canvas %dx%d has no area", size.X, size.Y)
	case size.X > MaxCanvasSide || size.Y > MaxCanvasSide || size.X*size.Y > MaxCanvasPixels:
		return errors.New(errors.ErrCodeCanvasSize, "canvas %dx%d is too large", size.X, size.Y)
	}
	return nil
}
