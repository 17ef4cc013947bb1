// breakout is a terminal Breakout game built on a deterministic
// fixed-timestep simulation core.
//
// Usage:
//
//	breakout play             - Play the game
//	breakout scores           - Browse recorded high scores
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.breakout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal rendition of the classic brick breaker,
driven by a deterministic fixed-timestep simulation.

Controls:
  Left/Right (or A/D)  - Move the paddle
  P/Esc                - Pause
  R                    - Restart
  Q/Ctrl+C             - Quit

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml
  breakout scores`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
