package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/contribrun/contribrun/internal/platform/tui"
	"github.com/contribrun/contribrun/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the best recorded runs.

By default an interactive scoreboard opens; --plain prints a plain
text table instead, suitable for piping.

Examples:
  contribrun scores
  contribrun scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printPlainScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printPlainScores prints the top runs as a plain table.
func printPlainScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Contribution Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'contribrun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-4s  %-8s  %s\n", "Rank", "Score", "Lvl", "Columns", "Date")
	fmt.Printf("  %-4s  %-10s  %-4s  %-8s  %s\n", "----", "-----", "---", "-------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-4d  %-8d  %s\n", i+1, entry.Score, entry.Difficulty, entry.Columns, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetRunStats(); statsErr == nil {
		fmt.Printf("Best: %d over %d runs\n", stats.HighScore, stats.RunCount)
	}
}
