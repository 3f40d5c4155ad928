// Package tetris implements the falling-block puzzle game: a grid of locked
// cells, one falling piece the player shifts and rotates, gravity on a timer,
// and full rows cleared for score.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Registry identity.
const (
	GameID    = "tetris"
	GameTitle = "Tetris"
)

// State is the controller's position in the spawn/fall/game-over cycle.
type State int

const (
	StateSpawning State = iota
	StateFalling
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Random supplies uniform choices for spawning. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Game owns the grid, the active piece and the score for one session.
type Game struct {
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	rng        Random

	grid  *Grid
	piece Piece
	state State

	score  int
	lines  int
	fallMs float64 // Milliseconds accumulated toward the next gravity step
	tick   uint64
	quit   bool
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: GameTitle}, func(s registry.Settings) (registry.Game, error) {
		cfg, err := config.LoadTetris(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(s.Difficulty)
		if !ok {
			return nil, fmt.Errorf("tetris: unknown difficulty %q", s.Difficulty)
		}
		config.ApplyTetrisPreset(&cfg, preset)
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return GameTitle }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.TetrisConfig { return g.cfg }

// Reset starts a new game seeded from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetWithRandom(rand.New(rand.NewSource(cfg.Seed)))
}

// ResetWithRandom starts a new game drawing shapes and colors from rng.
func (g *Game) ResetWithRandom(rng Random) {
	g.rng = rng
	g.grid = NewGrid(g.cfg.Rows(), g.cfg.Cols())
	g.score = 0
	g.lines = 0
	g.fallMs = 0
	g.tick = 0
	g.quit = false
	g.state = StateSpawning
	g.spawn()
}

// spawn picks a color and then a shape, places the piece at the top
// center and starts it falling. A blocked spawn is not checked here; it
// locks on the next gravity step and ends the game.
func (g *Game) spawn() {
	color := Palette[g.rng.Intn(len(Palette))]
	kind := Kind(g.rng.Intn(NumKinds))
	g.piece = NewPiece(kind, color, g.grid.Cols())
	g.state = StateFalling
}

// Step advances the game by one tick: queued actions first, in arrival
// order, then gravity.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.grid == nil || g.state == StateGameOver || g.quit {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for _, a := range in.Actions {
		g.apply(a)
	}

	result := core.StepResult{}
	result.Locked, result.Cleared = g.fall(elapsed)
	result.State = g.State()
	return result
}

// apply handles one player action. Moves that would collide are undone.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.shift(0, -1)
	case core.ActionRight:
		g.shift(0, 1)
	case core.ActionSoftDrop:
		g.shift(1, 0)
	case core.ActionRotateCW:
		g.rotate()
	case core.ActionQuit:
		g.quit = true
	}
}

// shift moves the piece by (dr, dc) and reverts on collision.
func (g *Game) shift(dr, dc int) bool {
	g.piece.Row += dr
	g.piece.Col += dc
	if g.piece.Collides(g.grid) {
		g.piece.Row -= dr
		g.piece.Col -= dc
		return false
	}
	return true
}

// rotate turns the piece clockwise, restoring the previous shape on collision.
func (g *Game) rotate() bool {
	prev := g.piece.Shape
	g.piece.Shape = g.piece.Rotated(Clockwise)
	if g.piece.Collides(g.grid) {
		g.piece.Shape = prev
		return false
	}
	return true
}

// fall accumulates elapsed time and drops the piece one row once the
// threshold is crossed. It reports whether the piece locked and how many
// rows that cleared.
func (g *Game) fall(elapsed time.Duration) (bool, int) {
	if elapsed > 0 {
		g.fallMs += float64(elapsed) / float64(time.Millisecond)
	}

	threshold := g.difficulty.FallSpeed(g.cfg.Timing.FallSpeed, g.score, int(g.tick))
	if g.fallMs/float64(g.cfg.Timing.FallUnitMs) < threshold {
		return false, 0
	}
	g.fallMs = 0

	g.piece.Row++
	if !g.piece.Collides(g.grid) {
		return false, 0
	}
	g.piece.Row--
	return true, g.lock()
}

// lock merges the piece, clears rows, and either ends the game or spawns
// the next piece.
func (g *Game) lock() int {
	Place(g.piece, g.grid)
	cleared := ClearFullRows(g.grid)
	g.lines += cleared
	g.score += cleared * g.cfg.Scoring.LineBonus

	if g.piece.Row <= 0 {
		g.state = StateGameOver
		return cleared
	}
	g.state = StateSpawning
	g.spawn()
	return cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.state == StateGameOver,
		Quit:     g.quit,
	}
}

// Phase returns the controller state.
func (g *Game) Phase() State { return g.state }

// Frame captures what a renderer needs for one tick. The grid is a copy.
type Frame struct {
	Grid  *Grid
	Piece Piece
	Score int
	Lines int
	State State
	Quit  bool
}

// Ended reports whether the frame is the final one of the session.
func (f Frame) Ended() bool {
	return f.State == StateGameOver || f.Quit
}

// Frame returns a snapshot of the grid, active piece and score.
func (g *Game) Frame() Frame {
	if g.grid == nil {
		return Frame{}
	}
	return Frame{
		Grid:  g.grid.Clone(),
		Piece: g.piece,
		Score: g.score,
		Lines: g.lines,
		State: g.state,
		Quit:  g.quit,
	}
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	NewScreenRenderer(dst).Draw(g.Frame())
}
