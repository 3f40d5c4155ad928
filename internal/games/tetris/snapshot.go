package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	Lines     int
	Filled    int // Locked cells on the grid
	Kind      Kind
	Color     core.Color
	Row       int
	Col       int
	ShapeRows int
	ShapeCols int
	Quit      bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	filled := 0
	if g.grid != nil {
		filled = g.grid.FilledCount()
	}
	return Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Score:     g.score,
		Lines:     g.lines,
		Filled:    filled,
		Kind:      g.piece.Kind,
		Color:     g.piece.Color,
		Row:       g.piece.Row,
		Col:       g.piece.Col,
		ShapeRows: g.piece.Shape.Rows(),
		ShapeCols: g.piece.Shape.Cols(),
		Quit:      g.quit,
	}
}
