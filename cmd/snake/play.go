package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal. The game waits for space before moving.

Controls:
  W/A/S/D or arrows  - Steer
  Space/Enter        - Start or resume
  P/Esc              - Pause
  R                  - Restart
  Tab                - High scores for this run of the program
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Logs are discarded unless --log-file is set, since the game owns the
terminal.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	_, rules, err := loadRules()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Scores live in memory for the life of the process
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "grid", rules.GridSize, "tick", rules.TickInterval, "seed", rt.Seed)

	if err := tui.Run(rules, rt, tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
