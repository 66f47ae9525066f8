package io

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/keygrid/pkg/errors"
	"github.com/matzehuels/keygrid/pkg/grid"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  grid.Grid
	}{
		{
			name:  "rectangular",
			input: "Q,W,E\nA,S,D\n",
			want:  grid.Grid{{"Q", "W", "E"}, {"A", "S", "D"}},
		},
		{
			name:  "jagged",
			input: "Esc,1,2,3\nTab,Q\n",
			want:  grid.Grid{{"Esc", "1", "2", "3"}, {"Tab", "Q"}},
		},
		{
			name:  "quoted comma",
			input: "\",\",.,/\n",
			want:  grid.Grid{{",", ".", "/"}},
		},
		{
			name:  "empty fields",
			input: "Q,,E\n",
			want:  grid.Grid{{"Q", "", "E"}},
		},
		{
			name:  "byte order mark",
			input: "\xEF\xBB\xBFQ,W\n",
			want:  grid.Grid{{"Q", "W"}},
		},
		{
			name:  "no trailing newline",
			input: "Q,W",
			want:  grid.Grid{{"Q", "W"}},
		},
		{
			name:  "crlf",
			input: "Q,W\r\nA,S\r\n",
			want:  grid.Grid{{"Q", "W"}, {"A", "S"}},
		},
		{
			name:  "blank spacer row",
			input: "Q,W\n\nA,S\n",
			want:  grid.Grid{{"Q", "W"}, {}, {"A", "S"}},
		},
		{
			name:  "blank crlf rows",
			input: "Q\r\n\r\n\r\nA\r\n",
			want:  grid.Grid{{"Q"}, {}, {}, {"A"}},
		},
		{
			name:  "leading and trailing blank rows",
			input: "\nQ\n\n",
			want:  grid.Grid{{}, {"Q"}, {}},
		},
		{
			name:  "blank row after quoted newline",
			input: "\"a\nb\",c\n\nd\n",
			want:  grid.Grid{{"a\nb", "c"}, {}, {"d"}},
		},
		{
			name:  "bare quote in field",
			input: "1,2\"\n",
			want:  grid.Grid{{"1", "2\""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadCSVEmpty(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadCSV(\"\") = %v, want empty grid", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, stderrors.New("disk gone") }

func TestReadCSVReadError(t *testing.T) {
	_, err := ReadCSV(failingReader{})
	if !errors.Is(err, errors.ErrCodeInputRead) {
		t.Errorf("ReadCSV() error = %v, want code %v", err, errors.ErrCodeInputRead)
	}
}

func TestImportCSVKeepsBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.csv")
	if err := os.WriteFile(path, []byte("Q,W\n\nA,S\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := ImportCSV(path)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if g.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3 (blank line kept)", g.Rows())
	}
}

func TestImportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.csv")
	if err := os.WriteFile(path, []byte("Q,W,E\nA,S,D\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := ImportCSV(path)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if g.Rows() != 2 || g.MaxWidth() != 3 {
		t.Errorf("ImportCSV() = %v, want 2 rows of 3", g)
	}
}

func TestImportCSVMissingFile(t *testing.T) {
	_, err := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, errors.ErrCodeInputRead) {
		t.Errorf("ImportCSV() error = %v, want code %v", err, errors.ErrCodeInputRead)
	}
}
