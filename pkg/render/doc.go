// Package render draws keyboard diagrams onto a raster canvas.
//
// # Modes
//
// [RenderGrid] draws a whole [grid.Grid] as one block of keys. The canvas is
// sized from the longest row and the row count; rows shorter than the longest
// are filled out with empty keys.
//
// [RenderBlocks] draws partitioned [layout.Block] values left to right with a
// half-key gap between neighbours. Each block is drawn exactly like a grid,
// shifted right by a running offset.
//
// # Geometry
//
// All dimensions come from a [Config]; [DefaultConfig] uses 80x80 keys and a
// 20px margin, so a 3x2 grid produces a 280x200 image:
//
//	width  = cols*KeyWidth + 2*Margin
//	height = rows*KeyHeight + 2*Margin
//
// [GridSize] and [BlocksSize] compute canvas dimensions without drawing.
//
// # Surfaces
//
// Drawing goes through the [Surface] interface. [Canvas] is the raster
// implementation backed by a gg context; tests can substitute a recorder to
// inspect the emitted rectangles and labels.
//
// [grid.Grid]: github.com/matzehuels/keygrid/pkg/grid.Grid
// [layout.Block]: github.com/matzehuels/keygrid/pkg/layout.Block
package render
