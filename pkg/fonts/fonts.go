// Package fonts selects the face used to draw key labels.
//
// Selection has exactly two outcomes, both reported by [Load] as a [Result]:
// the preferred scalable font located on the system at the requested size,
// or the built-in 7x13 bitmap face. Failing to find or parse the preferred
// font is recovered here and never stops rendering; the cause is kept in
// [Result.Err] so callers can log it.
package fonts

import (
	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/keygrid/pkg/errors"
)

// DefaultName is the preferred font file looked up on the system.
const DefaultName = "arial.ttf"

// Result is the outcome of a font lookup.
type Result struct {
	Face     font.Face
	Fallback bool  // true when Face is the built-in bitmap face
	Err      error // why the preferred font was not used; nil unless Fallback
}

// Load returns name at size points, or the bitmap face when name cannot be
// located or parsed.
func Load(name string, size float64) Result {
	if name == "" {
		name = DefaultName
	}
	path, err := findfont.Find(name)
	if err != nil {
		return fallback(errors.Wrap(errors.ErrCodeFontLoad, err, "locate font %s", name))
	}
	face, err := gg.LoadFontFace(path, size)
	if err != nil {
		return fallback(errors.Wrap(errors.ErrCodeFontLoad, err, "load font %s", path))
	}
	return Result{Face: face}
}

// Default returns the built-in bitmap face.
func Default() font.Face {
	return basicfont.Face7x13
}

func fallback(err error) Result {
	return Result{Face: Default(), Fallback: true, Err: err}
}
