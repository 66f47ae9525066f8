package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Surface receives draw commands from the compositor.
type Surface interface {
	// StrokeRect outlines the rectangle with top-left corner (x, y).
	StrokeRect(x, y, w, h float64)
	// MeasureString returns the rendered width and height of s.
	MeasureString(s string) (w, h float64)
	// DrawString draws s with the top of its line box at (x, y).
	DrawString(s string, x, y float64)
}

// Canvas is a raster [Surface]: black strokes and text on white.
type Canvas struct {
	dc     *gg.Context
	face   font.Face
	ascent float64
	height float64
}

// NewCanvas creates a white canvas of the given size that draws labels with
// face and strokes rectangles lineWidth pixels wide.
func NewCanvas(size image.Point, face font.Face, lineWidth float64) *Canvas {
	dc := gg.NewContext(size.X, size.Y)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.SetLineWidth(lineWidth)
	dc.SetFontFace(face)

	m := face.Metrics()
	return &Canvas{
		dc:     dc,
		face:   face,
		ascent: float64(m.Ascent) / 64,
		height: float64(m.Ascent+m.Descent) / 64,
	}
}

// StrokeRect implements [Surface].
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

// MeasureString implements [Surface]. The height is the face's ascent plus
// descent, independent of s.
func (c *Canvas) MeasureString(s string) (w, h float64) {
	adv := font.MeasureString(c.face, s)
	return float64(adv) / 64, c.height
}

// DrawString implements [Surface].
func (c *Canvas) DrawString(s string, x, y float64) {
	c.dc.DrawString(s, x, y+c.ascent)
}

// Image returns the canvas pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}
