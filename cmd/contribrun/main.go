// contribrun is a terminal endless runner played on a contribution graph.
//
// Usage:
//
//	contribrun play          - Play the game
//	contribrun scores        - Show best runs
//	contribrun serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.contribrun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/contribrun/contribrun/internal/games/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "contribrun",
	Short: "Contribution Runner - an endless runner in your terminal",
	Long: `Contribution Runner is a terminal endless runner. The playfield is a
scrolling contribution graph; run across the green tiles, jump the gaps,
and survive as long as you can.

Available commands:
  play     - Play the game
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  contribrun play
  contribrun play --difficulty hard
  contribrun scores
  contribrun serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.contribrun/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
