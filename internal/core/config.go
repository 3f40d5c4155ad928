package core

// RuntimeConfig is what the terminal layer knows when a session starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Ticks per second
	Seed     int64 // Spawn RNG seed; 0 asks the platform to pick one
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game the platform needs to drive a session.
type GameState struct {
	Score    int
	Lines    int // Rows cleared so far
	GameOver bool
	Quit     bool // The player asked to leave
}

// Ended reports whether the session should wind down.
func (s GameState) Ended() bool {
	return s.GameOver || s.Quit
}

// StepResult reports what one tick did.
type StepResult struct {
	State   GameState
	Locked  bool // A piece was merged into the grid
	Cleared int  // Rows removed by that merge
}
