package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	require.Equal(t, 6, s.Width())
	require.Equal(t, 3, s.Height())
	assert.Equal(t, "      \n      \n      ", s.String())
	assert.Equal(t, NewRect(0, 0, 6, 3), s.Bounds())
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.Height())
	assert.Equal(t, "", s.String())
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '█', ColorCyan)
	s.Set(3, 3, 'x')

	assert.Equal(t, Cell{Rune: '█', Color: ColorCyan}, s.GetCell(1, 2))
	assert.Equal(t, Cell{Rune: 'x', Color: ColorDefault}, s.GetCell(3, 3))

	// Writes outside the buffer are dropped and reads return a blank.
	s.SetColored(4, 0, 'z', ColorRed)
	s.SetColored(0, -1, 'z', ColorRed)
	assert.Equal(t, blankCell, s.GetCell(4, 0))
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.NotContains(t, s.String(), "z")
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(s.Bounds(), '#', ColorGray)
	s.Clear()
	assert.Equal(t, "   \n   ", s.String())
	assert.Equal(t, blankCell, s.GetCell(2, 1))
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(1, 0, "Score", ColorWhite)
	s.DrawText(5, 1, "Lines") // clipped to "Lin"

	assert.Equal(t, " Score  ", s.Row(0))
	assert.Equal(t, "     Lin", s.Row(1))
	assert.Equal(t, ColorWhite, s.GetCell(5, 0).Color)
}

func TestScreenDrawTextCountsRunes(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawText(0, 0, "·█x")
	assert.Equal(t, 'x', s.Get(2, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(13, 1)
	s.DrawTextCentered(0, "GAME OVER", ColorRed)

	assert.Equal(t, "  GAME OVER  ", s.Row(0))
	assert.Equal(t, ColorRed, s.GetCell(2, 0).Color)
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGreen)

	assert.Equal(t, "     \n ### \n ### \n     ", s.String())
	assert.Equal(t, ColorGreen, s.GetCell(3, 2).Color)
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	want := "┌────┐\n" +
		"│    │\n" +
		"│    │\n" +
		"└────┘"
	assert.Equal(t, want, s.String())
	assert.Equal(t, ColorGray, s.GetCell(0, 0).Color)
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "abcdef")
	s.DrawText(0, 2, "ghijkl")

	s.Resize(3, 2)
	assert.Equal(t, "abc\n   ", s.String())

	s.Resize(5, 3)
	assert.Equal(t, "abc  \n     \n     ", s.String())

	s.Resize(5, 3)
	assert.Equal(t, 5, s.Width(), "same size is a no-op")
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 1)
	assert.Equal(t, "    ", s.Row(-1))
	assert.Equal(t, "    ", s.Row(1))
}
