package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func TestGamesTable(t *testing.T) {
	out := gamesTable([]registry.GameInfo{{ID: "tetris", Title: "Tetris"}})

	for _, want := range []string{"ID", "Title", "tetris", "Tetris"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTetrisRegistered(t *testing.T) {
	if !registry.Exists("tetris") {
		t.Fatal("tetris should register itself when the command is built")
	}
}
