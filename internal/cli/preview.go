package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/keygrid/pkg/grid"
	"github.com/matzehuels/keygrid/pkg/layout"
	"github.com/matzehuels/keygrid/pkg/pipeline"
)

var (
	styleKey    = lipgloss.NewStyle().Padding(0, 1).Foreground(colorWhite)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// printPreview writes the rendered layout to w as terminal tables, one per
// block, followed by a summary line.
func printPreview(w io.Writer, r *pipeline.Result) {
	fmt.Fprintln(w, previewTables(r))
	fmt.Fprintln(w, previewSummary(r))
}

func previewSummary(r *pipeline.Result) string {
	size := r.Size()
	line := fmt.Sprintf("%s · %d×%d px", r.Mode, size.X, size.Y)
	if r.Dropped > 0 {
		line += fmt.Sprintf(" · %d labels outside shape", r.Dropped)
	}
	return styleIconInfo.Render(iconInfo) + " " + StyleDim.Render(line)
}

// previewTables renders blocks side by side, or the whole grid when r has no
// blocks.
func previewTables(r *pipeline.Result) string {
	if r.Blocks == nil {
		g := r.Grid
		return keyTable(g, g.MaxWidth())
	}

	parts := make([]string, 0, 2*len(r.Blocks))
	for i, b := range r.Blocks {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, blockTable(b))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func blockTable(b layout.Block) string {
	if b.Rows == 0 || b.Cols == 0 {
		return StyleDim.Render(fmt.Sprintf("(%dx%d)", b.Cols, b.Rows))
	}
	return keyTable(b.Grid(), b.Cols)
}

// keyTable draws g as a bordered table cols wide; short rows are padded.
func keyTable(g grid.Grid, cols int) string {
	if g.Rows() == 0 || cols == 0 {
		return StyleDim.Render("(empty)")
	}

	rows := make([][]string, g.Rows())
	for i := range rows {
		rows[i] = make([]string, cols)
		for j := range rows[i] {
			rows[i][j] = strings.ReplaceAll(g.Cell(i, j), "\n", " ")
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return styleKey
		})
	return t.String()
}
