package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/keygrid/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Spec
	}{
		{"single", "3x2", Spec{{Cols: 3, Rows: 2}}},
		{"split", "5x3+5x3", Spec{{5, 3}, {5, 3}}},
		{"cols first", "2x2+1x2", Spec{{Cols: 2, Rows: 2}, {Cols: 1, Rows: 2}}},
		{"three blocks", "6x4+1x4+6x4", Spec{{6, 4}, {1, 4}, {6, 4}}},
		{"trailing text ignored", "5x3abc+4x2 ", Spec{{5, 3}, {4, 2}}},
		{"multi digit", "12x10", Spec{{12, 10}}},
		{"zero sizes", "0x3+3x0", Spec{{0, 3}, {3, 0}}},
		{"leading zeros", "05x03", Spec{{5, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing rows", "5x+3"},
		{"missing x", "53"},
		{"missing cols", "x3"},
		{"non digit", "ax3"},
		{"uppercase X", "5X3"},
		{"leading space", " 5x3"},
		{"empty segment", "5x3++5x3"},
		{"trailing plus", "5x3+"},
		{"leading plus", "+5x3"},
		{"negative", "-5x3"},
		{"overflow", "99999999999999999999x1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
			}
			if !errors.Is(err, errors.ErrCodeInvalidShape) {
				t.Errorf("Parse(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidShape)
			}
		})
	}
}

func TestSpecString(t *testing.T) {
	for _, s := range []string{"3x2", "5x3+5x3", "6x4+1x4+6x4"} {
		spec, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s, err)
		}
		if got := spec.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestSpecTotals(t *testing.T) {
	spec := Spec{{5, 3}, {1, 4}, {6, 2}}
	if got := spec.TotalCols(); got != 12 {
		t.Errorf("TotalCols() = %d, want 12", got)
	}
	if got := spec.MaxRows(); got != 4 {
		t.Errorf("MaxRows() = %d, want 4", got)
	}
	if got := (Spec{}).MaxRows(); got != 0 {
		t.Errorf("empty MaxRows() = %d, want 0", got)
	}
}
