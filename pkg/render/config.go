package render

import (
	"github.com/matzehuels/keygrid/pkg/errors"
	"github.com/matzehuels/keygrid/pkg/fonts"
)

// Default layout constants.
const (
	DefaultKeyWidth  = 80
	DefaultKeyHeight = 80
	DefaultMargin    = 20
	DefaultFontSize  = 24.0
	DefaultLineWidth = 2.0
)

// Config holds the fixed layout constants for one render. It is passed by
// value; nothing in this package keeps mutable layout state.
type Config struct {
	KeyWidth  int     // key width in pixels
	KeyHeight int     // key height in pixels
	Margin    int     // blank border around the diagram
	FontSize  float64 // preferred font size in points (grid mode only)
	FontName  string  // preferred font file name
	LineWidth float64 // rectangle stroke width
}

// DefaultConfig returns the standard 80x80 key layout.
func DefaultConfig() Config {
	return Config{
		KeyWidth:  DefaultKeyWidth,
		KeyHeight: DefaultKeyHeight,
		Margin:    DefaultMargin,
		FontSize:  DefaultFontSize,
		FontName:  fonts.DefaultName,
		LineWidth: DefaultLineWidth,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.KeyWidth <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "key width must be positive, got %d", c.KeyWidth)
	case c.KeyHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "key height must be positive, got %d", c.KeyHeight)
	case c.KeyWidth > MaxCanvasSide || c.KeyHeight > MaxCanvasSide:
		return errors.New(errors.ErrCodeInvalidConfig, "key size cannot exceed %d, got %dx%d", MaxCanvasSide, c.KeyWidth, c.KeyHeight)
	case c.Margin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "margin cannot be negative, got %d", c.Margin)
	case c.Margin > MaxCanvasSide:
		return errors.New(errors.ErrCodeInvalidConfig, "margin cannot exceed %d, got %d", MaxCanvasSide, c.Margin)
	case c.FontSize <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "font size must be positive, got %g", c.FontSize)
	case c.LineWidth <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "line width must be positive, got %g", c.LineWidth)
	}
	return nil
}

// blockGap is the horizontal space between adjacent blocks.
func (c Config) blockGap() int { return c.KeyWidth / 2 }
