package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/contribrun/contribrun/internal/core"
	"github.com/contribrun/contribrun/internal/registry"
	"github.com/contribrun/contribrun/internal/sim"
	"github.com/contribrun/contribrun/internal/storage"
)

// keyReleaseLull is how long keyboard auto-repeat must stay silent
// before a synthesized release edge is emitted for a held key. It must
// exceed the terminal's initial repeat delay, which is commonly around
// half a second.
const keyReleaseLull = 600 * time.Millisecond

// holdState tracks one hold-mapped key between its press edge and the
// synthesized release.
type holdState struct {
	active   bool
	lastSeen time.Time
}

// snapshotter is implemented by games that expose simulation snapshots,
// used to enrich saved run records.
type snapshotter interface {
	Snapshot() sim.Snapshot
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	jumpHold   holdState
	slideHold  holdState
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Tap keys produce a press and
// release edge on the same tick; hold keys produce a press edge now and
// a release once auto-repeat stops arriving.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(msg) {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit

	case KeyScreenshot:
		m.saveScreenshot()

	case KeyJumpTap:
		m.inputFrame.Set(core.ActionJumpPress)
		m.inputFrame.Set(core.ActionJumpRelease)

	case KeyJumpHold:
		if !m.jumpHold.active {
			m.inputFrame.Set(core.ActionJumpPress)
		}
		m.jumpHold.active = true
		m.jumpHold.lastSeen = time.Now()

	case KeySlideHold:
		if !m.slideHold.active {
			m.inputFrame.Set(core.ActionSlidePress)
		}
		m.slideHold.active = true
		m.slideHold.lastSeen = time.Now()

	case KeyPause:
		m.inputFrame.Set(core.ActionPause)

	case KeyRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.synthesizeReleases()

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// synthesizeReleases emits release edges for hold keys whose auto-repeat
// has gone quiet.
func (m *Model) synthesizeReleases() {
	now := time.Now()

	if m.jumpHold.active && now.Sub(m.jumpHold.lastSeen) > keyReleaseLull {
		m.inputFrame.Set(core.ActionJumpRelease)
		m.jumpHold.active = false
	}
	if m.slideHold.active && now.Sub(m.slideHold.lastSeen) > keyReleaseLull {
		m.inputFrame.Set(core.ActionSlideRelease)
		m.slideHold.active = false
	}
}

// saveRun persists the finished run, enriched with simulation details
// when the game exposes them.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	entry := storage.RunEntry{
		Score: m.gameState.Score,
		Seed:  m.config.Seed,
	}
	if sg, ok := m.game.(snapshotter); ok {
		snap := sg.Snapshot()
		entry.Difficulty = snap.Difficulty
		entry.Columns = snap.ColumnsGenerated
		entry.Ticks = snap.Tick
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(entry)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".contribrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
