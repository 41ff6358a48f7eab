package sim

import "testing"

// collisionSession builds a session with a hand-placed tile set so each
// resolution rule can be exercised in isolation.
func collisionSession(t *testing.T, tiles []Tile) *Session {
	t.Helper()
	s := NewSession(DefaultConfig(), 1)
	s.world.tiles = tiles
	return s
}

func TestCollisionLandOnTileTop(t *testing.T) {
	tile := Tile{X: 100, Y: 200}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	// Falling, bottom just penetrated the tile top.
	s.player = Player{X: 100, Y: tile.Y - half - half + 4, VY: 120, Squash: 1}

	s.resolveCollisions()

	p := s.player
	if !p.Grounded {
		t.Fatal("player should be grounded")
	}
	if p.Y != tile.Y-half-half {
		t.Errorf("Y = %f, want %f", p.Y, tile.Y-half-half)
	}
	if p.VY != 0 {
		t.Errorf("VY = %f, want 0", p.VY)
	}
}

func TestCollisionLandingStopsMomentumAndAligns(t *testing.T) {
	tile := Tile{X: 100, Y: 200}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	s.player = Player{X: 100, Y: tile.Y - half - half + 2, VX: 90, VY: 120, Angle: 47, Squash: 1}

	s.resolveCollisions()

	p := s.player
	if p.VX != 0 {
		t.Errorf("touchdown should zero VX, got %f", p.VX)
	}
	if !p.Aligning {
		t.Error("touchdown should start align rotation")
	}
}

func TestCollisionCeiling(t *testing.T) {
	tile := Tile{X: 100, Y: 100}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	// Rising, top just penetrated the tile bottom.
	s.player = Player{X: 100, Y: tile.Y + half + half - 4, VY: -200, Squash: 1}

	s.resolveCollisions()

	p := s.player
	if p.Y != tile.Y+half+half {
		t.Errorf("Y = %f, want %f", p.Y, tile.Y+half+half)
	}
	if p.VY != 0 {
		t.Errorf("ceiling hit should zero VY, got %f", p.VY)
	}
	if p.Grounded {
		t.Error("ceiling hit must not ground the player")
	}
}

func TestCollisionSideClamp(t *testing.T) {
	tile := Tile{X: 200, Y: 200}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	// Moving right into the tile's left face, vertically centered on it.
	s.player = Player{X: tile.X - half - half + 5, Y: tile.Y, VX: 150, Squash: 1}

	s.resolveCollisions()

	p := s.player
	if p.X != tile.X-half-half {
		t.Errorf("X = %f, want clamp to %f", p.X, tile.X-half-half)
	}
	if p.VX != 0 {
		t.Errorf("side contact should zero VX, got %f", p.VX)
	}
}

func TestCollisionSimplePushback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.SimplePushback = true
	s := NewSession(cfg, 1)
	tile := Tile{X: 200, Y: 200}
	s.world.tiles = []Tile{tile}
	half := cfg.Grid.TileEdge / 2

	startX := tile.X - half - half + 5
	s.player = Player{X: startX, Y: tile.Y, VX: 150, Squash: 1}

	s.resolveCollisions()

	p := s.player
	if p.X != startX-cfg.Physics.SideNudge {
		t.Errorf("X = %f, want nudge to %f", p.X, startX-cfg.Physics.SideNudge)
	}
	if p.VX != 0 {
		t.Errorf("side contact should zero VX, got %f", p.VX)
	}
}

func TestCollisionNearMissLanding(t *testing.T) {
	tile := Tile{X: 100, Y: 200}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	// Falling with a 2px gap to the tile top, inside the tolerance band.
	s.player = Player{X: 100, Y: tile.Y - half - half - 2, VY: 120, Squash: 1}

	s.resolveCollisions()

	p := s.player
	if !p.Grounded {
		t.Fatal("near-miss within tolerance should land")
	}
	if p.Y != tile.Y-half-half {
		t.Errorf("Y = %f, want snap to %f", p.Y, tile.Y-half-half)
	}
}

func TestCollisionNearMissIgnoredWhileRising(t *testing.T) {
	tile := Tile{X: 100, Y: 200}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	s.player = Player{X: 100, Y: tile.Y - half - half - 2, VY: -120, Squash: 1}

	s.resolveCollisions()

	if s.player.Grounded {
		t.Error("rising player must not snap to a tile top")
	}
}

func TestCollisionNearMissOutsideTolerance(t *testing.T) {
	tile := Tile{X: 100, Y: 200}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	// 10px above the tile top, outside the tolerance band.
	s.player = Player{X: 100, Y: tile.Y - half - half - 10, VY: 120, Squash: 1}

	s.resolveCollisions()

	if s.player.Grounded {
		t.Error("a gap outside the tolerance must not land")
	}
}

func TestCollisionHighestTopWins(t *testing.T) {
	s := NewSession(DefaultConfig(), 1)
	pitch := s.cfg.Grid.Pitch()
	half := s.cfg.Grid.TileEdge / 2

	// Both columns qualify: the higher top is penetrated by 2px, the
	// lower one sits 2px below the player's bottom, inside the near-miss
	// tolerance.
	high := Tile{X: 100 + pitch/2, Y: 170}
	low := Tile{X: 100, Y: 174}
	s.world.tiles = []Tile{low, high}

	s.player = Player{X: 100 + pitch/4, Y: high.Y - half - half + 2, VY: 120, Squash: 1}

	s.resolveCollisions()

	p := s.player
	if !p.Grounded {
		t.Fatal("player should land")
	}
	if p.Y != high.Y-half-half {
		t.Errorf("Y = %f, want the higher top %f", p.Y, high.Y-half-half)
	}
}

func TestCollisionStandingContactStaysGrounded(t *testing.T) {
	tile := Tile{X: 100, Y: 200}
	s := collisionSession(t, []Tile{tile})
	half := s.cfg.Grid.TileEdge / 2

	// At rest, bottom flush with the tile top.
	s.player = Player{X: 100, Y: tile.Y - half - half, VY: 0, Grounded: true, Squash: 1}

	for i := 0; i < 5; i++ {
		s.resolveCollisions()
		if !s.player.Grounded {
			t.Fatalf("standing player lost grounding on pass %d", i)
		}
	}
}

func TestCollisionNoTilesNoGrounding(t *testing.T) {
	s := collisionSession(t, nil)
	s.player = Player{X: 100, Y: 100, VY: 50, Grounded: true, Squash: 1}

	s.resolveCollisions()

	if s.player.Grounded {
		t.Error("player with no support should lose grounding")
	}
}
