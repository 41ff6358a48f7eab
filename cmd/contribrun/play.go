package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/contribrun/contribrun/internal/core"
	"github.com/contribrun/contribrun/internal/games/runner"
	"github.com/contribrun/contribrun/internal/platform/tui"
	"github.com/contribrun/contribrun/internal/registry"
	"github.com/contribrun/contribrun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump (tap)
  C          - Hold to charge a jump, release to launch
  Down/S     - Slide
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot

Difficulty options:
  easy   - Start at level 0, progresses with score
  normal - Start at level 1, progresses with score
  hard   - Start at level 2, progresses with score
  fixed  - No progression, stays at the config's initial level

Examples:
  contribrun play
  contribrun play --difficulty hard
  contribrun play --seed 42
  contribrun play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Feed the stored best into the HUD
	if store != nil {
		if best, hsErr := store.HighScore(); hsErr == nil {
			runner.SetHighScore(best)
		}
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
