// Package grid defines the in-memory form of a keyboard layout: an ordered
// sequence of rows, each an ordered sequence of key labels.
//
// Rows may differ in length. Code that walks a [Grid] must treat cells past
// the end of a row as empty labels; [Grid.Cell] does this bounds check.
package grid

// Grid is a possibly jagged table of key labels. It is not modified after
// loading.
type Grid [][]string

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// MaxWidth returns the length of the longest row, or 0 for an empty grid.
func (g Grid) MaxWidth() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the label at row i, column j, or "" when either index falls
// outside the grid.
func (g Grid) Cell(i, j int) string {
	if i < 0 || i >= len(g) || j < 0 || j >= len(g[i]) {
		return ""
	}
	return g[i][j]
}

// Count returns the number of cells actually present in the grid.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// Labels returns the number of non-empty labels in the grid.
func (g Grid) Labels() int {
	n := 0
	for _, row := range g {
		for _, label := range row {
			if label != "" {
				n++
			}
		}
	}
	return n
}
