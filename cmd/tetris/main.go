// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play a game
//	tetris play [game]       - Play a game (default: tetris)
//	tetris list              - List available games
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Load a custom config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-file <path>       - Write the session log to a file
//	--log-level <level>     - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris drops one piece at a time onto a 13x20 board. Shift and
rotate it into place; every full row you complete is cleared for 100 points.
The game ends when a piece locks at the top of the board.

Available commands:
  play     - Play a game (the default)
  list     - Show all available games

Examples:
  tetris
  tetris --seed 42
  tetris play --difficulty hard
  tetris --config ./my-tetris.yaml --log-file tetris.log`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the session log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
