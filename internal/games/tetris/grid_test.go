package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// gridFromRows builds a grid from strings where '.' is empty and any other
// byte is a red block.
func gridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			if line[c] != '.' {
				g.Set(r, c, core.ColorRed)
			}
		}
	}
	return g
}

// gridRows renders a grid back into the gridFromRows notation.
func gridRows(g *Grid) []string {
	out := make([]string, g.Rows())
	for r := range out {
		b := make([]byte, g.Cols())
		for c := range b {
			b[c] = '.'
			if !g.At(r, c).Empty() {
				b[c] = '#'
			}
		}
		out[r] = string(b)
	}
	return out
}

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid(20, 13)

	require.Equal(t, 20, g.Rows())
	require.Equal(t, 13, g.Cols())
	assert.Equal(t, 0, g.FilledCount())
	for r := 0; r < g.Rows(); r++ {
		assert.False(t, g.IsRowFull(r))
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 5) })
	assert.Panics(t, func() { NewGrid(5, -1) })
}

func TestGridSetAndAt(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(2, 3, core.ColorBlue)

	assert.Equal(t, core.ColorBlue, g.At(2, 3).Color)
	assert.True(t, g.At(0, 0).Empty())
	assert.Equal(t, 1, g.FilledCount())
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(4, 4)

	assert.Panics(t, func() { g.At(-1, 0) })
	assert.Panics(t, func() { g.At(0, 4) })
	assert.Panics(t, func() { g.Set(4, 0, core.ColorRed) })
	assert.Panics(t, func() { g.RemoveRow(4) })
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(3, 5)

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(2, 4))
	assert.False(t, g.InBounds(-1, 0))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, 5))
}

func TestGridIsRowFull(t *testing.T) {
	g := gridFromRows(
		"....",
		"##.#",
		"####",
	)

	assert.False(t, g.IsRowFull(0))
	assert.False(t, g.IsRowFull(1))
	assert.True(t, g.IsRowFull(2))
}

func TestGridRemoveRow(t *testing.T) {
	g := gridFromRows(
		"#...",
		".#..",
		"####",
		"...#",
	)

	g.RemoveRow(2)

	assert.Equal(t, []string{
		"....",
		"#...",
		".#..",
		"...#",
	}, gridRows(g))
}

func TestGridRemoveTopRow(t *testing.T) {
	g := gridFromRows(
		"####",
		"#...",
	)

	g.RemoveRow(0)

	assert.Equal(t, []string{"....", "#..."}, gridRows(g))
}

func TestGridRowIsCopy(t *testing.T) {
	g := gridFromRows("##", "..")

	row := g.Row(0)
	row[0] = Cell{}

	assert.False(t, g.At(0, 0).Empty())
}

func TestGridClone(t *testing.T) {
	g := gridFromRows("#.", ".#")
	c := g.Clone()
	c.Set(0, 1, core.ColorGreen)

	assert.True(t, g.At(0, 1).Empty(), "clone should not share storage")
	assert.Equal(t, core.ColorGreen, c.At(0, 1).Color)
}
