package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past games",
	Long: `Display the win/loss record and the most recent finished games.

Examples:
  snake history
  snake history --limit 25
  snake history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent games to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadApp()
	if err != nil {
		return err
	}

	store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	rec, err := store.Record()
	if err != nil {
		return err
	}
	results, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Played %d  Won %d  Lost %d\n", rec.Played, rec.Won, rec.Lost)
	if !rec.LastPlayed.IsZero() {
		fmt.Printf("Last played %s\n", rec.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake' to play the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-6s  %-10s  %-5s  %s\n", "Date", "Result", "Cause", "Turns", "Via")
	fmt.Printf("  %-16s  %-6s  %-10s  %-5s  %s\n", "----", "------", "-----", "-----", "---")

	for _, r := range results {
		fmt.Printf("  %-16s  %-6s  %-10s  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Outcome,
			strings.ReplaceAll(r.Cause, "_", " "),
			r.Turns,
			r.Frontend,
		)
	}
	return nil
}
