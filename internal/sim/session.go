package sim

import (
	"math"
	"math/rand"
)

// State is the top-level session state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is one run of the game: a player, a scrolling obstacle world,
// score and the jump state machine, advanced by Tick. All mutation
// happens synchronously inside Tick on a single logical thread; hosts
// that render asynchronously must treat a Tick as atomic.
type Session struct {
	cfg Config
	rng *rand.Rand

	state  State
	tick   uint64
	now    float64 // Simulated milliseconds; the monotonic clock for buffers
	score  float64
	player Player
	jump   jumpMachine
	world  *World
}

// NewSession creates a session and fills the initial runway.
func NewSession(cfg Config, seed int64) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s
}

// reset reconstructs all per-session state to initial values.
func (s *Session) reset() {
	s.state = StateRunning
	s.tick = 0
	s.now = 0
	s.score = 0

	s.jump = newJumpMachine(s.cfg.Jump)
	s.world = NewWorld(s.cfg.Grid, s.cfg.View, NewGenerator(s.cfg.Gen, s.rng))
	s.world.Init(s.DifficultyLevel())

	// Start standing on the ramp-up runway's top row.
	topRow := s.cfg.Grid.Rows - 1
	rowTop := s.world.rowCenterY(topRow) - s.cfg.Grid.TileEdge/2
	s.player = Player{
		X:        s.cfg.Physics.PlayerStartX,
		Y:        rowTop - s.cfg.Grid.TileEdge/2,
		Squash:   1,
		Grounded: true,
	}
}

// Tick advances the simulation by dt seconds. Negative elapsed time is
// clamped to zero. In GameOver the call is a no-op; restarting goes
// through Restart.
func (s *Session) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if s.state != StateRunning {
		return
	}

	s.tick++
	s.now += dt * 1000

	level := s.DifficultyLevel()
	s.jump.step(&s.player, s.now, dt)
	s.resolveCollisions()
	s.player.integrate(s.cfg.Physics, dt)
	s.world.Advance(dt, s.cfg.Physics.ScrollSpeed, level)
	s.score += s.cfg.Score.Rate * dt

	s.checkTerminal()
}

// checkTerminal ends the session when the player falls through the
// bottom or is pushed fully off the left edge.
func (s *Session) checkTerminal() {
	p := &s.player
	if p.Y > s.cfg.View.Height+s.cfg.Physics.FallKillMargin ||
		p.X < -s.cfg.Grid.TileEdge {
		s.state = StateGameOver
		p.VX = 0
		p.VY = 0
	}
}

// JumpPressed records a jump press edge, stamped with the sim clock so
// the buffer window can honor slightly-early presses.
func (s *Session) JumpPressed() {
	if s.state != StateRunning {
		return
	}
	s.jump.press(s.now)
}

// JumpReleased records a jump release edge.
func (s *Session) JumpReleased() {
	if s.state != StateRunning {
		return
	}
	s.jump.release()
}

// SlidePressed starts sliding, which gates jump attempts and cancels a
// charge in progress.
func (s *Session) SlidePressed() {
	if s.state != StateRunning {
		return
	}
	s.player.Sliding = true
}

// SlideReleased stops sliding.
func (s *Session) SlideReleased() {
	s.player.Sliding = false
}

// Restart reconstructs the session. Only meaningful in GameOver.
func (s *Session) Restart() {
	if s.state != StateGameOver {
		return
	}
	s.reset()
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Score returns the floored survival score.
func (s *Session) Score() int {
	return int(math.Floor(s.score))
}

// DifficultyLevel derives the generation difficulty from score. It is
// non-decreasing within a session and feeds only the generator.
func (s *Session) DifficultyLevel() int {
	lvl := s.cfg.Gen.InitialDifficulty
	if s.cfg.Gen.DifficultyEnabled && s.cfg.Gen.DifficultyScoreStep > 0 {
		lvl += int(math.Floor(s.score / s.cfg.Gen.DifficultyScoreStep))
	}
	return lvl
}

// Charge returns the current jump charge resource.
func (s *Session) Charge() float64 {
	return s.jump.charge
}

// Player returns a copy of the player entity for rendering.
func (s *Session) Player() Player {
	return s.player
}

// Tiles returns the live obstacle tiles for rendering and tests.
func (s *Session) Tiles() []Tile {
	return s.world.Tiles()
}

// Config returns the session's tuning.
func (s *Session) Config() Config {
	return s.cfg
}

// DrainEvents returns and clears pending render-sink events.
func (s *Session) DrainEvents() []Event {
	return s.world.drainEvents()
}
