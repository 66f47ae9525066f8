// Package layout splits a flat [grid.Grid] into rectangular blocks.
//
// [Partition] walks the grid one row at a time and hands each block the next
// Cols cells of that row, in spec order. Short rows are padded with empty
// labels. Once every row is consumed, blocks with too few rows receive blank
// rows and blocks with too many are truncated, so each [Block] always has
// exactly the dimensions of its [shape.Descriptor]:
//
//	grid:  Q W X        spec: 2x2+1x2
//	       A S Y
//
//	block 0: Q W        block 1: X
//	         A S                 Y
//
// Irregular input is never an error. A diagram always renders at the declared
// size.
package layout
