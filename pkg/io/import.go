package io

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/matzehuels/keygrid/pkg/errors"
	"github.com/matzehuels/keygrid/pkg/grid"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV decodes comma-separated key labels from r into a grid.
//
// Records may have differing field counts. A blank line is kept as an empty
// row so it still occupies a row of the layout. Quotes inside unquoted
// fields are taken literally, so labels like 2" need no escaping.
func ReadCSV(r io.Reader) (grid.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputRead, err, "read csv")
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var g grid.Grid
	for {
		// The csv reader skips empty lines; count them at the current
		// offset before it does.
		for n, i := blankLines(data[cr.InputOffset():]), 0; i < n; i++ {
			g = append(g, []string{})
		}

		record, err := cr.Read()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInputRead, err, "parse csv")
		}
		g = append(g, record)
	}
}

// blankLines returns the number of consecutive empty lines at the start of b.
func blankLines(b []byte) int {
	n := 0
	for {
		switch {
		case bytes.HasPrefix(b, []byte("\n")):
			b = b[1:]
		case bytes.HasPrefix(b, []byte("\r\n")):
			b = b[2:]
		default:
			return n
		}
		n++
	}
}

// ImportCSV reads a layout grid from the CSV file at path.
// This is a convenience wrapper around [ReadCSV] for file-based input.
func ImportCSV(path string) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputRead, err, "open %s", path)
	}
	defer f.Close()

	g, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputRead, err, "read %s", path)
	}
	return g, nil
}
