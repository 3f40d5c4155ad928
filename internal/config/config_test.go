package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultGridSize(t *testing.T) {
	cfg := DefaultTetrisConfig()

	if cfg.Rows() != 20 {
		t.Errorf("Rows() = %d, expected 20", cfg.Rows())
	}
	if cfg.Cols() != 13 {
		t.Errorf("Cols() = %d, expected 13", cfg.Cols())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if embedded != DefaultTetrisConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", embedded, DefaultTetrisConfig())
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("window:\n  width: 300\nscoring:\n  line_bonus: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Cols() != 10 {
		t.Errorf("Cols() = %d, expected 10", cfg.Cols())
	}
	if cfg.Rows() != 20 {
		t.Errorf("Rows() should keep default 20, got %d", cfg.Rows())
	}
	if cfg.Scoring.LineBonus != 40 {
		t.Errorf("LineBonus = %d, expected 40", cfg.Scoring.LineBonus)
	}
	if cfg.Timing.FallSpeed != 0.5 {
		t.Errorf("FallSpeed should keep default 0.5, got %g", cfg.Timing.FallSpeed)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadTetrisInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTetris(path)
	var vErr ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Code != "GRID_TOO_SMALL" {
		t.Errorf("Code = %q, expected GRID_TOO_SMALL", vErr.Code)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		code   string
	}{
		{"zero block", func(c *TetrisConfig) { c.Window.BlockSize = 0 }, "INVALID_BLOCK_SIZE"},
		{"short window", func(c *TetrisConfig) { c.Window.Height = 90 }, "GRID_TOO_SMALL"},
		{"zero fall speed", func(c *TetrisConfig) { c.Timing.FallSpeed = 0 }, "INVALID_FALL_SPEED"},
		{"zero fall unit", func(c *TetrisConfig) { c.Timing.FallUnitMs = 0 }, "INVALID_FALL_SPEED"},
		{"negative hold", func(c *TetrisConfig) { c.Timing.GameOverMs = -1 }, "INVALID_GAME_OVER_MS"},
		{"negative bonus", func(c *TetrisConfig) { c.Scoring.LineBonus = -100 }, "INVALID_LINE_BONUS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Code != tc.code {
				t.Errorf("Code = %q, expected %q", vErr.Code, tc.code)
			}
		})
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %g, expected 0.7", cfg.Difficulty.InitialLevel)
	}

	ApplyTetrisPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) should be accepted", s)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(\"insane\") should be rejected")
	}
}

func TestFallSpeed(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty

	d := NewDifficultyManager(cfg)
	if got := d.FallSpeed(0.5, 100000, 0); got != 0.5 {
		t.Errorf("disabled FallSpeed = %g, expected 0.5", got)
	}

	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	if got := d.FallSpeed(0.5, 0, 0); got != 0.5 {
		t.Errorf("FallSpeed at level 0 = %g, expected 0.5", got)
	}
	// Max level with multiplier 2 triples the drop rate
	if got := d.FallSpeed(0.6, cfg.Progression.MaxAt, 0); got < 0.1999 || got > 0.2001 {
		t.Errorf("FallSpeed at max level = %g, expected 0.2", got)
	}
	// Progress is clamped past max_at
	if d.Level(cfg.Progression.MaxAt*10, 0) != 1.0 {
		t.Errorf("Level should clamp to 1.0, got %g", d.Level(cfg.Progression.MaxAt*10, 0))
	}
}
