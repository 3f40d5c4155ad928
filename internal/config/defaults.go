package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration: a 400x600
// window with 30-pixel blocks, a 0.5 fall threshold over 500 ms units and
// 100 points per cleared row.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Window: WindowConfig{
			Width:     400,
			Height:    600,
			BlockSize: 30,
		},
		Timing: TimingConfig{
			FallSpeed:  0.5,
			FallUnitMs: 500,
			GameOverMs: 2000,
		},
		Scoring: ScoringConfig{
			LineBonus: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}
