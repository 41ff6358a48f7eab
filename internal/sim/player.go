package sim

import "math"

// squashMinScale is the displayed vertical extent at a full charge hold,
// as a fraction of the tile edge.
const squashMinScale = 0.10

// Player is the single controllable entity. Position is the center of
// its tile-sized bounding box; +y points down. The angle accumulates
// without wrapping so airborne spin carries across jumps.
type Player struct {
	X, Y   float64
	VX, VY float64
	Angle  float64 // Degrees, unbounded accumulator
	Squash float64 // Displayed vertical scale in [squashMinScale, 1]

	Grounded bool
	Aligning bool // Rotating toward the nearest right angle after landing
	Charging bool
	Sliding  bool
}

// integrate advances the player's continuous state by dt seconds.
// Gravity only applies while airborne; grounding itself is decided by
// the collision resolver before this runs.
func (p *Player) integrate(phys PhysicsConfig, dt float64) {
	if !p.Grounded {
		p.VY += phys.Gravity * dt
		if p.VY > phys.MaxFallSpeed {
			p.VY = phys.MaxFallSpeed
		}
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.rotate(phys, dt)
}

// rotate spins the player while airborne and aligns it to the nearest
// right angle after landing, taking the shorter angular direction.
func (p *Player) rotate(phys PhysicsConfig, dt float64) {
	if !p.Grounded {
		p.Angle += phys.SpinRate * dt
		return
	}
	if !p.Aligning {
		return
	}

	target := math.Round(p.Angle/90) * 90
	diff := target - p.Angle
	step := phys.AlignRate * dt
	if math.Abs(diff) <= phys.AlignSnapDeg || step >= math.Abs(diff) {
		p.Angle = target
		p.Aligning = false
		return
	}
	if diff < 0 {
		step = -step
	}
	p.Angle += step
}

// bounds returns the player's AABB edges. The collision box is always
// the full tile edge; squash affects the displayed pose only.
func (p *Player) bounds(edge float64) (left, right, top, bottom float64) {
	half := edge / 2
	return p.X - half, p.X + half, p.Y - half, p.Y + half
}
