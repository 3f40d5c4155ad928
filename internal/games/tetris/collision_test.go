package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCollision(t *testing.T) {
	g := gridFromRows(
		"....",
		"....",
		"....",
		"....",
		"#...",
	)
	horizontal := KindI.Template()
	vertical := horizontal.Rotate(Clockwise)

	tests := []struct {
		name  string
		shape Matrix
		row   int
		col   int
		want  bool
	}{
		{"free", horizontal, 0, 0, false},
		{"resting on floor", horizontal, 3, 0, false},
		{"left wall", horizontal, 0, -1, true},
		{"right wall", horizontal, 0, 1, true},
		{"below floor", horizontal, 5, 0, true},
		{"locked cell", vertical, 1, 0, true},
		{"beside locked cell", vertical, 1, 1, false},
		{"partly above top", vertical, -2, 3, false},
		{"entirely above top", vertical, -10, 2, false},
		{"above top over locked column", vertical, -3, 0, false},
		{"above top but off the side", vertical, -5, -1, true},
		{"above top past right wall", horizontal, -1, 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasCollision(tc.shape, tc.row, tc.col, g))
		})
	}
}

func TestHasCollisionEveryCellChecked(t *testing.T) {
	g := gridFromRows(
		"....",
		"..#.",
	)
	// Only the stem of the T reaches row 1.
	shape := KindT.Template()

	assert.False(t, HasCollision(shape, 0, 0, g))
	assert.True(t, HasCollision(shape, 0, 1, g))
}

func TestPieceCollides(t *testing.T) {
	g := NewGrid(4, 4)
	p := NewPiece(KindO, Palette[0], 4)

	assert.False(t, p.Collides(g))
	p.Row = 3
	assert.True(t, p.Collides(g))
}
