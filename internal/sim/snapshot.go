package sim

// Snapshot captures the observable session state for rendering,
// determinism tests and replay comparison.
type Snapshot struct {
	Tick       uint64
	State      State
	Score      int
	Difficulty int

	PlayerX  float64
	PlayerY  float64
	PlayerVX float64
	PlayerVY float64
	Angle    float64
	Squash   float64
	Grounded bool
	Charging bool
	Sliding  bool
	Charge   float64

	LiveTiles        int
	ColumnsGenerated int
	WorldOffset      float64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Score:      s.Score(),
		Difficulty: s.DifficultyLevel(),

		PlayerX:  s.player.X,
		PlayerY:  s.player.Y,
		PlayerVX: s.player.VX,
		PlayerVY: s.player.VY,
		Angle:    s.player.Angle,
		Squash:   s.player.Squash,
		Grounded: s.player.Grounded,
		Charging: s.player.Charging,
		Sliding:  s.player.Sliding,
		Charge:   s.jump.charge,

		LiveTiles:        len(s.world.tiles),
		ColumnsGenerated: s.world.gen.State().TotalGenerated,
		WorldOffset:      s.world.offset,
	}
}
