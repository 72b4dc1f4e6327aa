// snake is a terminal Snake game with three variants: a bare minimal one,
// a standard one with a HUD, and an enhanced one with menus, difficulties,
// special food, high scores and sound.
//
// Usage:
//
//	snake                      - Play the enhanced variant
//	snake list                 - List available variants
//	snake play [variant]       - Play a variant
//	snake menu                 - Pick a variant interactively
//	snake scores [difficulty]  - Show high scores
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--scores <path>   - High score file (.json, or .db for SQLite)
//	--config <path>   - Custom snake.yaml
//	--log-file <path> - Log destination (default: ~/.snake/snake.log)
//	--mute            - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagScoresPath string
	flagConfig     string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores

Running snake without a command plays the enhanced variant.

Examples:
  snake
  snake play minimal
  snake menu --fps 30
  snake scores Hard
  snake --scores ./scores.db`,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

func runRoot(cmd *cobra.Command, _ []string) error {
	return runPlay(cmd, []string{snake.DefaultVariant})
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", storage.DefaultPath, "Path to the high score file (.json or .db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Path to the log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
