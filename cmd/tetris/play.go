package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// defaultHold is used for games that do not configure a game over delay.
const defaultHold = 2 * time.Second

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The only game is tetris, which is also the default.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Down/S/J    - Soft drop
  Up/W/K      - Rotate clockwise
  Ctrl+S      - Save a screenshot to ~/.tetris/screenshots
  Q/Esc       - Quit (shows the final score)
  Ctrl+C      - Exit immediately

Difficulty options:
  easy   - Start slow, speed up with score
  normal - Start at 30% difficulty, speed up with score
  hard   - Start at 70% difficulty, speed up with score
  fixed  - Constant speed (the default)

Examples:
  tetris play
  tetris play tetris --difficulty hard
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := tetris.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Settings{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	hold := defaultHold
	if tg, ok := game.(*tetris.Game); ok {
		gc := tg.Config()
		hold = time.Duration(gc.Timing.GameOverMs) * time.Millisecond
		logger.Info("config loaded",
			"rows", gc.Rows(),
			"cols", gc.Cols(),
			"fall_speed", gc.Timing.FallSpeed,
			"difficulty", flagDifficulty,
		)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	runErr := tui.Run(game, cfg, tui.Options{
		HoldFor: hold,
		Logger:  logger,
	})
	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
