package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the high score table for every difficulty, or for one.

Examples:
  snake scores
  snake scores Hard
  snake scores --interactive`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runScores,
	SilenceUsage: true,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a TUI table")
}

func runScores(_ *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	difficulties := s.difficulties()
	if len(args) > 0 {
		idx := slices.IndexFunc(difficulties, func(d string) bool {
			return strings.EqualFold(d, args[0])
		})
		if idx < 0 {
			return fmt.Errorf("unknown difficulty %q (want one of %s)", args[0], strings.Join(difficulties, ", "))
		}
		difficulties = difficulties[idx : idx+1]
	}

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(s.env.Scores, difficulties, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("High Scores - %s\n", d)
		fmt.Println()

		entries := s.env.Scores.Entries(d)
		if len(entries) == 0 {
			fmt.Println("  No scores recorded yet.")
			continue
		}

		fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "----", "-----", "----")
		for rank, e := range entries {
			fmt.Printf("  %-4d  %-10s  %-8d  %s\n", rank+1, e.Name, e.Score, e.Date)
		}
	}
	return nil
}
