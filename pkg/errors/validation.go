package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputPath checks that path can name an image file.
//
// It rejects:
//   - empty paths
//   - control characters and null bytes
//   - paths that name a directory (trailing separator, "." or "..")
//
// Whether the directory exists or is writable is left to the writer.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	switch filepath.Base(path) {
	case ".", "..":
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
