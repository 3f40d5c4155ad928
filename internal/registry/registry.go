// Package registry maps game IDs to factories. Game packages register in
// init, so the command line only needs a blank import to offer a game.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is a playable simulation. Implementations hold pure logic; the
// platform supplies input, timing and the terminal.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick. Actions are applied in arrival order and
	// elapsed is the wall time since the previous tick.
	Step(in core.InputFrame, elapsed time.Duration) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Settings carries the command-line choices a factory may need.
type Settings struct {
	ConfigPath string // Custom config file, empty for the default search order
	Difficulty string // Difficulty preset name, empty for the default
}

// Factory builds a game from user settings.
type Factory func(s Settings) (Game, error)

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. Registering the same ID twice panics.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds the game registered under id.
func Create(id string, s Settings) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	g, err := e.factory(s)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
