// Package shape parses block shape descriptors.
//
// A descriptor lists rectangular blocks as ColsxRows segments joined by "+":
//
//	5x3+5x3   two blocks of 5 columns by 3 rows
//	6x4+1x4   a 6x4 block followed by a single 4-key column
//
// Each segment must start with digits, "x", digits. Anything after the second
// number is ignored, so "5x3a" reads as 5x3.
package shape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/keygrid/pkg/errors"
)

// segmentPattern anchors only at the start of a segment.
var segmentPattern = regexp.MustCompile(`^(\d+)x(\d+)`)

// Descriptor gives the dimensions of one block: column count first, then row
// count, in the order they appear in the ColsxRows syntax.
type Descriptor struct {
	Cols int
	Rows int
}

// String formats the descriptor as ColsxRows.
func (d Descriptor) String() string {
	return fmt.Sprintf("%dx%d", d.Cols, d.Rows)
}

// Spec is the ordered list of blocks, left to right.
type Spec []Descriptor

// String formats the descriptor list in canonical NxM+NxM syntax.
func (s Spec) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return strings.Join(parts, "+")
}

// TotalCols returns the sum of block column counts.
func (s Spec) TotalCols() int {
	n := 0
	for _, d := range s {
		n += d.Cols
	}
	return n
}

// MaxRows returns the largest block row count, or 0 for an empty spec.
func (s Spec) MaxRows() int {
	n := 0
	for _, d := range s {
		if d.Rows > n {
			n = d.Rows
		}
	}
	return n
}

// Parse reads a descriptor such as "5x3+5x3" into a Spec.
//
// It fails with an [errors.ErrCodeInvalidShape] error when any "+"-separated
// segment, including an empty one, does not start with digits-x-digits. The
// returned Spec is never empty on success.
func Parse(s string) (Spec, error) {
	parts := strings.Split(s, "+")
	spec := make(Spec, 0, len(parts))
	for _, part := range parts {
		m := segmentPattern.FindStringSubmatch(part)
		if m == nil {
			return nil, errors.New(errors.ErrCodeInvalidShape, "invalid shape part: %q", part)
		}
		cols, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "invalid column count in %q", part)
		}
		rows, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "invalid row count in %q", part)
		}
		spec = append(spec, Descriptor{Cols: cols, Rows: rows})
	}
	return spec, nil
}
