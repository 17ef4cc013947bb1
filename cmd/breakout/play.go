package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/tui-breakout/internal/config"
	"github.com/arcadeworks/tui-breakout/internal/core"
	"github.com/arcadeworks/tui-breakout/internal/platform/tui"
	"github.com/arcadeworks/tui-breakout/internal/sim"
	"github.com/arcadeworks/tui-breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Difficulty options:
  easy   - Wider paddle, slower ball
  normal - Default configuration
  hard   - Narrower paddle, faster ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newSessionLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.SetOutput(os.Stderr)
		logger.Fatal("cannot load config", "err", err)
	}

	profile := "normal"
	if flagDifficulty != "" {
		profile = flagDifficulty
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Configuration errors are programmer/config mistakes: abort loudly
	// before the terminal enters the alternate screen.
	simulation, err := sim.New(cfg, logger)
	if err != nil {
		logger.SetOutput(os.Stderr)
		logger.Fatal("invalid configuration", "err", err)
	}

	rc := core.DefaultRuntimeConfig()
	rc.TickRate = cfg.Sim.TickRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(simulation, store, profile, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newSessionLogger writes structured logs to ~/.breakout/session.log so
// warnings from the simulation don't tear the alternate-screen UI. Falls
// back to a silent logger when the file cannot be opened.
func newSessionLogger() *log.Logger {
	out := io.Writer(io.Discard)
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".breakout")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			path := filepath.Join(dir, "session.log")
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				out = f
			}
		}
	}
	return log.New(out)
}
