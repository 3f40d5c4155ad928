package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is one square of the grid. The zero value is empty; any other color
// means the square is occupied by a locked block of that color.
type Cell struct {
	Color core.Color
}

// Empty reports whether nothing has been locked into the cell.
func (c Cell) Empty() bool {
	return c.Color == core.ColorDefault
}

// Grid is the fixed-size matrix of locked cells. Row 0 is the top.
// Dimensions never change after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", rows, cols))
	}
	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col). Callers must bounds-check first;
// an out-of-range address panics.
func (g *Grid) At(row, col int) Cell {
	g.mustInBounds(row, col)
	return g.cells[row][col]
}

// Set stores a color at (row, col). An out-of-range address panics.
func (g *Grid) Set(row, col int, color core.Color) {
	g.mustInBounds(row, col)
	g.cells[row][col] = Cell{Color: color}
}

// IsRowFull reports whether every column of the row is occupied.
func (g *Grid) IsRowFull(row int) bool {
	g.mustInBounds(row, 0)
	for _, c := range g.cells[row] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// RemoveRow deletes the row and inserts an empty row at the top.
// Rows above the removed one shift down by one; rows below keep their index.
func (g *Grid) RemoveRow(row int) {
	g.mustInBounds(row, 0)
	copy(g.cells[1:row+1], g.cells[:row])
	g.cells[0] = make([]Cell, g.cols)
}

// Row returns a copy of one row.
func (g *Grid) Row(row int) []Cell {
	g.mustInBounds(row, 0)
	out := make([]Cell, g.cols)
	copy(out, g.cells[row])
	return out
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([][]Cell, g.rows)}
	for r, row := range g.cells {
		out.cells[r] = make([]Cell, g.cols)
		copy(out.cells[r], row)
	}
	return out
}

func (g *Grid) mustInBounds(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}
