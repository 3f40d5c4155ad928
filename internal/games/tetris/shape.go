package tetris

import (
	"fmt"
	"iter"
	"strings"
)

// Kind identifies one of the seven shape templates.
type Kind int

// Template order matches the spawn table; Random.Intn(NumKinds) indexes it.
const (
	KindI Kind = iota
	KindO
	KindZ
	KindS
	KindT
	KindL
	KindJ

	NumKinds = 7
)

// String returns the conventional letter for the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Template returns the spawn orientation of the shape.
func (k Kind) Template() Matrix {
	if k < 0 || int(k) >= len(templates) {
		panic(fmt.Sprintf("tetris: unknown shape kind %d", int(k)))
	}
	return templates[k]
}

var templates = [NumKinds]Matrix{
	KindI: NewMatrix([][]int{{1, 1, 1, 1}}),
	KindO: NewMatrix([][]int{{1, 1}, {1, 1}}),
	KindZ: NewMatrix([][]int{{1, 1, 0}, {0, 1, 1}}),
	KindS: NewMatrix([][]int{{0, 1, 1}, {1, 1, 0}}),
	KindT: NewMatrix([][]int{{1, 1, 1}, {0, 1, 0}}),
	KindL: NewMatrix([][]int{{1, 1, 1}, {0, 0, 1}}),
	KindJ: NewMatrix([][]int{{1, 1, 1}, {1, 0, 0}}),
}

// Direction selects a rotation sense.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Matrix is an immutable bit matrix describing which cells of a piece's
// bounding box are filled. The zero value is an empty 0x0 matrix.
type Matrix struct {
	rows, cols int
	bits       []bool // row-major, never mutated after construction
}

// NewMatrix builds a matrix from rows of 0/1 values.
// Ragged or non-binary input is a programming error and panics.
func NewMatrix(rows [][]int) Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("tetris: shape matrix must not be empty")
	}
	m := Matrix{
		rows: len(rows),
		cols: len(rows[0]),
		bits: make([]bool, len(rows)*len(rows[0])),
	}
	for r, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("tetris: ragged shape matrix: row %d has %d columns, want %d", r, len(row), m.cols))
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				m.bits[r*m.cols+c] = true
			default:
				panic(fmt.Sprintf("tetris: shape bit (%d,%d) is %d, want 0 or 1", r, c, v))
			}
		}
	}
	return m
}

// Rows returns the height of the bounding box.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the width of the bounding box.
func (m Matrix) Cols() int { return m.cols }

// At reports whether the cell at (r, c) is filled.
func (m Matrix) At(r, c int) bool {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false
	}
	return m.bits[r*m.cols+c]
}

// Cells yields the (row, col) offset of every filled cell, top to bottom.
func (m Matrix) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, set := range m.bits {
			if set && !yield(i/m.cols, i%m.cols) {
				return
			}
		}
	}
}

// Rotate returns a new matrix turned a quarter in the given direction.
// An R x C matrix becomes C x R. Clockwise moves cell (r, c) to
// (c, R-1-r); counterclockwise is its exact inverse.
func (m Matrix) Rotate(dir Direction) Matrix {
	out := Matrix{
		rows: m.cols,
		cols: m.rows,
		bits: make([]bool, len(m.bits)),
	}
	for r, c := range m.Cells() {
		var nr, nc int
		switch dir {
		case Clockwise:
			nr, nc = c, m.rows-1-r
		case CounterClockwise:
			nr, nc = m.cols-1-c, r
		default:
			panic(fmt.Sprintf("tetris: unknown rotation direction %d", int(dir)))
		}
		out.bits[nr*out.cols+nc] = true
	}
	return out
}

// Equal reports whether two matrices have the same size and bits.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// String renders the matrix with '#' for filled and '.' for empty cells.
func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < m.cols; c++ {
			if m.At(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
