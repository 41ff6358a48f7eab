// Package runner implements a contribution-graph endless runner. The
// player sprints over a scrolling field of green activity tiles, jumping
// gaps and ledges with buffered, double and charged jumps. All game
// logic lives in internal/sim; this package adapts it to the registry
// interface and renders it.
package runner

import (
	"fmt"

	"github.com/contribrun/contribrun/internal/config"
	"github.com/contribrun/contribrun/internal/core"
	"github.com/contribrun/contribrun/internal/registry"
	"github.com/contribrun/contribrun/internal/sim"
)

// Game implements the contribution runner game logic.
type Game struct {
	session  *sim.Session
	runtime  core.RuntimeConfig
	cfg      config.RunnerConfig
	paused   bool
	tickSecs float64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var highScore int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetHighScore provides the stored best score for HUD display.
func SetHighScore(score int) {
	highScore = score
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Contribution Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickSecs = 1.0 / float64(tickRate)

	g.session = sim.NewSession(cfg.ToSim(), runtime.Seed)
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if g.session.State() == sim.StateGameOver {
		if in.Has(core.ActionRestart) {
			g.session.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Forward input edges before advancing so press timing lands on the
	// tick it arrived with.
	if in.Has(core.ActionJumpPress) {
		g.session.JumpPressed()
	}
	if in.Has(core.ActionJumpRelease) {
		g.session.JumpReleased()
	}
	if in.Has(core.ActionSlidePress) {
		g.session.SlidePressed()
	}
	if in.Has(core.ActionSlideRelease) {
		g.session.SlideReleased()
	}

	g.session.Tick(g.tickSecs)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == sim.StateGameOver,
		Paused:   g.paused,
	}
}

// Snapshot exposes the underlying simulation snapshot for diagnostics.
func (g *Game) Snapshot() sim.Snapshot {
	if g.session == nil {
		return sim.Snapshot{}
	}
	return g.session.Snapshot()
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

func formatCharge(charge, max float64) string {
	if max <= 0 {
		return ""
	}
	pct := int(charge / max * 100)
	return fmt.Sprintf(" Charge: %d%% ", pct)
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
