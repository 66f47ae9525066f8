package layout

import (
	"github.com/matzehuels/keygrid/pkg/grid"
	"github.com/matzehuels/keygrid/pkg/shape"
)

// Block is a rectangular sub-grid of key labels. Cells holds exactly Rows
// rows of exactly Cols labels each.
type Block struct {
	Cols  int
	Rows  int
	Cells [][]string
}

// Row returns row i of the block, or nil when i is out of range.
func (b Block) Row(i int) []string {
	if i < 0 || i >= len(b.Cells) {
		return nil
	}
	return b.Cells[i]
}

// Grid returns the block's cells as a grid.
func (b Block) Grid() grid.Grid { return grid.Grid(b.Cells) }

// Partition splits g into one block per descriptor in s, in order.
//
// Grid columns past s.TotalCols() are dropped. Grid rows past a block's row
// count are dropped for that block.
func Partition(g grid.Grid, s shape.Spec) []Block {
	blocks := make([]Block, len(s))
	for b, d := range s {
		blocks[b] = Block{Cols: d.Cols, Rows: d.Rows, Cells: make([][]string, 0, d.Rows)}
	}

	for i := range g {
		start := 0
		for b, d := range s {
			if len(blocks[b].Cells) < d.Rows {
				blocks[b].Cells = append(blocks[b].Cells, segment(g, i, start, d.Cols))
			}
			start += d.Cols
		}
	}

	for b, d := range s {
		for len(blocks[b].Cells) < d.Rows {
			blocks[b].Cells = append(blocks[b].Cells, make([]string, d.Cols))
		}
	}
	return blocks
}

// segment copies n cells of row i starting at column start, padding with
// empty labels where the row runs short.
func segment(g grid.Grid, i, start, n int) []string {
	out := make([]string, n)
	for j := range out {
		out[j] = g.Cell(i, start+j)
	}
	return out
}

// Join concatenates row i of every block, in order, for each row index up to
// the tallest block. Rows missing from shorter blocks contribute empty labels
// of that block's width.
func Join(blocks []Block) grid.Grid {
	rows := 0
	for _, b := range blocks {
		if b.Rows > rows {
			rows = b.Rows
		}
	}

	out := make(grid.Grid, rows)
	for i := range out {
		for _, b := range blocks {
			if r := b.Row(i); r != nil {
				out[i] = append(out[i], r...)
			} else {
				out[i] = append(out[i], make([]string, b.Cols)...)
			}
		}
	}
	return out
}
