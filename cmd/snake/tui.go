package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play full-screen",
	Long: `Play in a full-screen terminal UI. Each key press is one turn;
the snake does not move on its own.

Controls:
  Arrows/hjkl/WASD - Move
  R                - New game (after the game ends)
  Tab              - Show or hide history
  Q/Ctrl+C         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadApp()
	if err != nil {
		return err
	}

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config:   cfg,
		Logger:   logger,
		Seed:     seed(),
		Frontend: "tui",
		Width:    width,
		Height:   height,
	}

	if store := openStore(cfg, logger); store != nil {
		defer store.Close()
		opts.Store = store
	}

	return tui.Run(opts)
}
