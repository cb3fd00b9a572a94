package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/platform/console"
	"github.com/vovakirdan/term-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the console",
	Long: `Play the console game. The board is printed before every move and one
command is read per line.

Commands (exact, lowercase):
  up, down, left, right

Anything else is ignored. The game ends when the snake hits a wall or itself,
or fills the board. End of input quits.

Examples:
  snake play
  snake play --seed 7
  printf 'left\nleft\n' | snake play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadApp()
	if err != nil {
		return err
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	game := console.New(snake.New(newRand()), os.Stdin, os.Stdout, cfg,
		console.WithLogger(logger),
		console.WithKeyWait(console.TerminalKeyWait(os.Stdin)),
	)

	res, runErr := game.Run(cmd.Context())

	if res.Finished() && store != nil {
		_, err := store.SaveResult(storage.Result{
			SessionID: res.SessionID,
			Frontend:  "console",
			Outcome:   string(res.Status),
			Cause:     string(res.Cause),
			Turns:     res.Turns,
		})
		if err != nil {
			logger.Warn("could not save result", "session", res.SessionID, "error", err)
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
