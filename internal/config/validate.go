package config

import "fmt"

// Smallest grid that still fits every shape template in every rotation.
const (
	minCols = 4
	minRows = 4
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Window.BlockSize <= 0 {
		return ValidationError{
			Code:    "INVALID_BLOCK_SIZE",
			Message: fmt.Sprintf("block_size must be positive, got %d", c.Window.BlockSize),
		}
	}
	if c.Cols() < minCols || c.Rows() < minRows {
		return ValidationError{
			Code: "GRID_TOO_SMALL",
			Message: fmt.Sprintf("window %dx%d with block %d gives a %dx%d grid, need at least %dx%d",
				c.Window.Width, c.Window.Height, c.Window.BlockSize, c.Cols(), c.Rows(), minCols, minRows),
		}
	}
	if c.Timing.FallSpeed <= 0 || c.Timing.FallUnitMs <= 0 {
		return ValidationError{
			Code:    "INVALID_FALL_SPEED",
			Message: fmt.Sprintf("fall_speed and fall_unit_ms must be positive, got %g and %d", c.Timing.FallSpeed, c.Timing.FallUnitMs),
		}
	}
	if c.Timing.GameOverMs < 0 {
		return ValidationError{
			Code:    "INVALID_GAME_OVER_MS",
			Message: fmt.Sprintf("game_over_ms must not be negative, got %d", c.Timing.GameOverMs),
		}
	}
	if c.Scoring.LineBonus < 0 {
		return ValidationError{
			Code:    "INVALID_LINE_BONUS",
			Message: fmt.Sprintf("line_bonus must not be negative, got %d", c.Scoring.LineBonus),
		}
	}
	return nil
}
