package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: enhanced).

Variants:
  minimal   - Bare board, walls kill, no score display
  standard  - Wrapping board with a score line
  enhanced  - Menus, difficulties, special food, high scores and sound

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Select menu item
  Esc/P            - Pause (enhanced), quit (minimal, standard)
  R                - Restart after game over
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.snake/screenshots

Examples:
  snake play
  snake play minimal
  snake play enhanced --seed 42 --mute`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runPlay,
	SilenceUsage: true,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := snake.DefaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", gameID)
	}

	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(gameID, s.env)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	s.env.Logger.Info("starting", "variant", gameID, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), s.env.Logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
