package io

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/keygrid/pkg/errors"
)

// lossless lists the encoders ExportImage will pick from an extension.
var lossless = map[imaging.Format]bool{
	imaging.PNG:  true,
	imaging.BMP:  true,
	imaging.GIF:  true,
	imaging.TIFF: true,
}

// FormatFor returns the lossless encoder for path's extension, or PNG.
func FormatFor(path string) imaging.Format {
	f, err := imaging.FormatFromFilename(path)
	if err != nil || !lossless[f] {
		return imaging.PNG
	}
	return f
}

// WriteImage encodes img to w in the given format.
func WriteImage(img image.Image, w io.Writer, format imaging.Format) error {
	if err := imaging.Encode(w, img, format); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "encode image")
	}
	return nil
}

// ExportImage writes img to path, replacing any existing file. The encoder
// is chosen by [FormatFor].
func ExportImage(img image.Image, path string) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "create %s", path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = WriteImage(img, tmp, FormatFor(path)); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "chmod %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "close %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "rename to %s", path)
	}
	return nil
}
