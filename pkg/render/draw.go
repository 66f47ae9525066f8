package render

import (
	"image"

	"golang.org/x/image/font"

	"github.com/matzehuels/keygrid/pkg/grid"
	"github.com/matzehuels/keygrid/pkg/layout"
)

// DrawGrid draws every key of g onto s. Rows shorter than the longest row are
// completed with empty keys.
func DrawGrid(s Surface, c Config, g grid.Grid) {
	drawKeys(s, c, g, g.MaxWidth(), c.Margin)
}

// DrawBlocks draws blocks left to right, separated by half a key width.
func DrawBlocks(s Surface, c Config, blocks []layout.Block) {
	x := c.Margin
	for _, b := range blocks {
		drawKeys(s, c, b.Grid(), b.Cols, x)
		x += b.Cols*c.KeyWidth + c.blockGap()
	}
}

// RenderGrid draws g on a new canvas sized by [GridSize].
func RenderGrid(c Config, g grid.Grid, face font.Face) image.Image {
	canvas := NewCanvas(GridSize(c, g), face, c.LineWidth)
	DrawGrid(canvas, c, g)
	return canvas.Image()
}

// RenderBlocks draws blocks on a new canvas sized by [BlocksSize].
func RenderBlocks(c Config, blocks []layout.Block, face font.Face) image.Image {
	canvas := NewCanvas(BlocksSize(c, blocks), face, c.LineWidth)
	DrawBlocks(canvas, c, blocks)
	return canvas.Image()
}

// drawKeys draws a cols-wide grid whose left edge sits at x0.
func drawKeys(s Surface, c Config, g grid.Grid, cols, x0 int) {
	kw, kh := float64(c.KeyWidth), float64(c.KeyHeight)
	for i := range g {
		for j := 0; j < cols; j++ {
			x := float64(x0 + j*c.KeyWidth)
			y := float64(c.Margin + i*c.KeyHeight)
			s.StrokeRect(x, y, kw, kh)

			label := g.Cell(i, j)
			if label == "" {
				continue
			}
			w, h := s.MeasureString(label)
			s.DrawString(label, x+(kw-w)/2, y+(kh-h)/2)
		}
	}
}
