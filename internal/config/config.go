// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris game.
package config

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WindowConfig describes the play field in pixels. The grid dimensions are
// derived from it by integer division with the block size.
type WindowConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BlockSize int `yaml:"block_size"`
}

// TimingConfig defines gravity and end-of-game timing.
type TimingConfig struct {
	FallSpeed  float64 `yaml:"fall_speed"`   // Threshold in fall units
	FallUnitMs int     `yaml:"fall_unit_ms"` // Milliseconds per fall unit
	GameOverMs int     `yaml:"game_over_ms"` // How long the game over notice stays up
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	LineBonus int `yaml:"line_bonus"` // Points per cleared row
}

// Rows returns the number of grid rows.
func (c TetrisConfig) Rows() int {
	if c.Window.BlockSize <= 0 {
		return 0
	}
	return c.Window.Height / c.Window.BlockSize
}

// Cols returns the number of grid columns.
func (c TetrisConfig) Cols() int {
	if c.Window.BlockSize <= 0 {
		return 0
	}
	return c.Window.Width / c.Window.BlockSize
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fall rate multiplier added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
// The empty preset counts as fixed so the stock game keeps a constant speed.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
