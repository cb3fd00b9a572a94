// snake is a turn-based Snake game on an 8x8 board, played by typing moves.
//
// Usage:
//
//	snake                    - Play in the console (same as "snake play")
//	snake play               - Play in the console, one typed command per turn
//	snake tui                - Play full-screen with arrow keys
//	snake serve              - Start SSH server for remote play
//	snake history            - Show the win/loss record
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set history database path (default: ~/.snake/history.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on an 8x8 board, one move per command",
	Long: `Snake is played one turn at a time: every command moves the snake one cell.
Eat the food to grow, avoid the walls and your own body, fill the board to win.

Available commands:
  play     - Console game, type up/down/left/right (default)
  tui      - Full-screen game with arrow keys
  serve    - Start SSH server for remote play
  history  - Show past games

Examples:
  snake
  snake --seed 42
  snake tui
  snake serve --ssh :2222
  snake history --limit 20`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadApp loads the configuration, applies flag overrides and builds the logger.
func loadApp() (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	if flagLogLevel != "" {
		if _, err := config.ParseLevel(flagLogLevel); err != nil {
			return cfg, nil, err
		}
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}

	return cfg, config.NewLogger(os.Stderr, cfg.Log.Level), nil
}

// openStore opens the history database. Games still run without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := openHistory(cfg)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.Storage.DB, "error", err)
		return nil
	}
	return store
}

// openHistory resolves the configured database path and opens it.
func openHistory(cfg config.Config) (*storage.Store, error) {
	path, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// seed returns the --seed value, or a time-based one.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seed()))
}
