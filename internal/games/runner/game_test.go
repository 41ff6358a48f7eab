package runner

import (
	"strings"
	"testing"

	"github.com/contribrun/contribrun/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  120,
		ScreenH:  30,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameMetadata(t *testing.T) {
	g := New()
	if g.ID() != "runner" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("title should not be empty")
	}
}

func TestGameResetInitializes(t *testing.T) {
	g := newTestGame(1)

	state := g.State()
	if state.GameOver || state.Paused || state.Score != 0 {
		t.Errorf("fresh game state = %+v", state)
	}

	snap := g.Snapshot()
	if snap.LiveTiles == 0 {
		t.Error("reset should fill the runway with tiles")
	}
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New()

	// Must not panic and must report a zero state.
	result := g.Step(emptyFrame())
	if result.State.Score != 0 || result.State.GameOver {
		t.Errorf("state before reset = %+v", result.State)
	}
}

func TestGameScoreAccrues(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 120; i++ {
		g.Step(emptyFrame())
	}
	if g.State().Score <= 0 {
		t.Error("score should accrue while surviving the runway")
	}
}

func TestGamePauseStopsSimulation(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 30; i++ {
		g.Step(emptyFrame())
	}
	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Error("pause action should pause the game")
	}

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(emptyFrame())
	}
	if g.Snapshot() != before {
		t.Error("simulation should freeze while paused")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
	g.Step(emptyFrame())
	if g.Snapshot() == before {
		t.Error("simulation should advance after resuming")
	}
}

func TestGameDeterminism(t *testing.T) {
	const seed = 99
	run := func() []int {
		g := newTestGame(seed)
		scores := make([]int, 0, 600)
		for i := 0; i < 600; i++ {
			f := emptyFrame()
			if i%45 == 0 {
				f.Set(core.ActionJumpPress)
				f.Set(core.ActionJumpRelease)
			}
			if i%200 == 130 {
				f.Set(core.ActionSlidePress)
			}
			if i%200 == 160 {
				f.Set(core.ActionSlideRelease)
			}
			g.Step(f)
			scores = append(scores, g.State().Score)
		}
		return scores
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: score %d vs %d", i, a[i], b[i])
		}
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(1)

	// Hold slide forever and never jump; the first gap ends the run.
	g.Step(frameWith(core.ActionSlidePress))
	for i := 0; i < 20000 && !g.State().GameOver; i++ {
		g.Step(emptyFrame())
	}
	if !g.State().GameOver {
		t.Fatal("game never ended")
	}

	// Non-restart input is ignored after game over.
	g.Step(frameWith(core.ActionJumpPress, core.ActionJumpRelease))
	if !g.State().GameOver {
		t.Error("jump input should not revive a finished game")
	}

	g.Step(frameWith(core.ActionRestart))
	state := g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("state after restart = %+v", state)
	}
}

func TestGameRenderDrawsTilesAndHUD(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 10; i++ {
		g.Step(emptyFrame())
	}

	screen := core.NewScreen(120, 30)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, string(TileChar)) {
		t.Error("render should draw runway tiles")
	}
	if !strings.Contains(out, "Score:") {
		t.Error("render should draw the HUD score")
	}
}

func TestGameRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(1)
	g.Step(frameWith(core.ActionSlidePress))
	for i := 0; i < 20000 && !g.State().GameOver; i++ {
		g.Step(emptyFrame())
	}
	if !g.State().GameOver {
		t.Fatal("game never ended")
	}

	screen := core.NewScreen(120, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("render should show the game over overlay")
	}
}

func TestGameRenderPausedOverlay(t *testing.T) {
	g := newTestGame(1)
	g.Step(frameWith(core.ActionPause))

	screen := core.NewScreen(120, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("render should show the pause overlay")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(1)
	g.Step(emptyFrame())

	// Must not panic on screens far smaller than the viewport.
	screen := core.NewScreen(8, 3)
	g.Render(screen)
}
