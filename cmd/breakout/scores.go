package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcadeworks/tui-breakout/internal/platform/tui"
	"github.com/arcadeworks/tui-breakout/internal/storage"
)

var flagScoresProfile string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse recorded high scores",
	Long: `Open an interactive table of recorded session scores.

Examples:
  breakout scores
  breakout scores --difficulty hard`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresProfile, "difficulty", "normal", "Difficulty profile to show scores for")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "err", err)
	}
	defer store.Close()

	if err := tui.RunScores(store, flagScoresProfile); err != nil {
		logger.Fatal("cannot show scores", "err", err)
	}
}
