package config

// Progression types understood by DifficultyManager.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyManager turns score or elapsed ticks into a gravity threshold.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager. InitialLevel is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = min(max(cfg.InitialLevel, 0), 1)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty in [InitialLevel, 1]. It rises linearly with
// score or ticks, depending on the progression type, and tops out at MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	if !d.cfg.Enabled {
		return start
	}

	var reached int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		reached = score
	case ProgressionTime:
		reached = ticks
	default:
		return start
	}

	span := max(d.cfg.Progression.MaxAt, 1)
	progress := min(max(float64(reached)/float64(span), 0), 1)
	return start + progress*(1-start)
}

// FallSpeed returns the gravity threshold for the current difficulty.
// At level L the threshold is base / (1 + L*SpeedMultiplier), so the piece
// drops more often as the level rises. Disabled progression returns base.
func (d *DifficultyManager) FallSpeed(base float64, score, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base / (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}
