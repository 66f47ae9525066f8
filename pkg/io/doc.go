// Package io reads keyboard layouts from CSV and writes rendered diagrams to
// image files.
//
// # Import
//
// [ImportCSV] reads a layout file; [ReadCSV] reads from any io.Reader. Each
// CSV record becomes one grid row and each field one key label:
//
//	Esc,1,2,3,4,5
//	Tab,Q,W,E,R,T
//	Caps,A,S,D,F,G
//
// Records may have different field counts, and quoted fields may contain
// commas ("," is a valid key label). A leading UTF-8 byte order mark is
// ignored.
//
// # Export
//
// [ExportImage] writes an image to a path, choosing the encoder from the file
// extension: .png, .bmp, .gif, .tif and .tiff are honoured. Any other
// extension, including lossy .jpg, is written as PNG. [WriteImage] encodes to
// any io.Writer.
//
// The write is atomic from the caller's point of view: the image is encoded
// into a temporary file beside the target and renamed over it only after the
// encoder succeeds. A failed export leaves any existing file untouched.
//
// # Errors
//
// Read failures carry [errors.ErrCodeInputRead]; write failures carry
// [errors.ErrCodeOutputWrite].
//
// [errors.ErrCodeInputRead]: github.com/matzehuels/keygrid/pkg/errors.ErrCodeInputRead
// [errors.ErrCodeOutputWrite]: github.com/matzehuels/keygrid/pkg/errors.ErrCodeOutputWrite
package io
