// Package table builds and renders the pairwise results matrix players can
// consult before choosing a move.
package table

import (
	"strings"

	"github.com/lox/fairplay/internal/moveset"
)

// cornerLabel is the fixed top-left header cell. The leading space keeps
// the column visually offset from the terminal edge.
const cornerLabel = " User/Computer"

// Matrix is the full (N+1)x(N+1) results grid: a header row and column of
// move names plus one outcome cell per ordered pair, from the row move's
// perspective. Immutable once built.
type Matrix struct {
	cells [][]string
}

// Build computes the matrix for the given move set with O(N^2) resolver
// calls.
func Build(set *moveset.MoveSet) *Matrix {
	moves := set.Moves()
	cells := make([][]string, len(moves)+1)

	header := make([]string, len(moves)+1)
	header[0] = cornerLabel
	copy(header[1:], moves)
	cells[0] = header

	for i, rowMove := range moves {
		row := make([]string, len(moves)+1)
		row[0] = rowMove
		for j, colMove := range moves {
			row[j+1] = set.DetermineWinner(rowMove, colMove).String()
		}
		cells[i+1] = row
	}

	return &Matrix{cells: cells}
}

// Size returns the grid dimension including the header row and column.
func (m *Matrix) Size() int {
	return len(m.cells)
}

// Cell returns the raw cell value at row i, column j (header included).
func (m *Matrix) Cell(i, j int) string {
	return m.cells[i][j]
}

// Format renders the matrix as a monospaced grid. Each column is padded to
// the width of its widest cell, columns are joined with " | ", and a rule
// of dashes separates the header row from the data rows.
func (m *Matrix) Format() string {
	widths := make([]int, len(m.cells[0]))
	for _, row := range m.cells {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, row := range m.cells {
		padded := make([]string, len(row))
		for j, cell := range row {
			padded[j] = cell + strings.Repeat(" ", widths[j]-len(cell))
		}
		line := strings.Join(padded, " | ")
		b.WriteString(line)
		b.WriteByte('\n')
		if i == 0 {
			b.WriteString(strings.Repeat("-", len(line)))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
