package sim

import (
	"math"
	"testing"
)

func TestPlayerGravityWhileAirborne(t *testing.T) {
	phys := DefaultConfig().Physics
	p := Player{Y: 100, Squash: 1}

	p.integrate(phys, 0.1)

	if p.VY != phys.Gravity*0.1 {
		t.Errorf("VY = %f, want %f", p.VY, phys.Gravity*0.1)
	}
	if p.Y <= 100 {
		t.Errorf("gravity should move player down, Y = %f", p.Y)
	}
}

func TestPlayerFallSpeedClamped(t *testing.T) {
	phys := DefaultConfig().Physics
	p := Player{VY: phys.MaxFallSpeed}

	p.integrate(phys, 0.1)

	if p.VY > phys.MaxFallSpeed {
		t.Errorf("VY = %f exceeds terminal velocity %f", p.VY, phys.MaxFallSpeed)
	}
}

func TestPlayerNoGravityWhileGrounded(t *testing.T) {
	phys := DefaultConfig().Physics
	p := Player{Y: 100, Grounded: true}

	p.integrate(phys, 0.1)

	if p.VY != 0 {
		t.Errorf("grounded player gained VY = %f", p.VY)
	}
	if p.Y != 100 {
		t.Errorf("grounded player moved to Y = %f", p.Y)
	}
}

func TestPlayerSpinsWhileAirborne(t *testing.T) {
	phys := DefaultConfig().Physics
	p := Player{}

	p.integrate(phys, 0.25)

	want := phys.SpinRate * 0.25
	if p.Angle != want {
		t.Errorf("Angle = %f, want %f", p.Angle, want)
	}
}

func TestPlayerAlignSnapsWithinWindow(t *testing.T) {
	phys := DefaultConfig().Physics
	p := Player{Grounded: true, Aligning: true, Angle: 87}

	p.rotate(phys, 1.0/240)

	if p.Angle != 90 {
		t.Errorf("Angle = %f, want snap to 90", p.Angle)
	}
	if p.Aligning {
		t.Error("Aligning should clear after the snap")
	}
}

func TestPlayerAlignMovesTowardNearestRightAngle(t *testing.T) {
	phys := DefaultConfig().Physics

	// 130 degrees is nearer 90 than 180, so alignment rotates backward.
	p := Player{Grounded: true, Aligning: true, Angle: 130}
	p.rotate(phys, 1.0/60)

	want := 130 - phys.AlignRate/60
	if math.Abs(p.Angle-want) > 1e-9 {
		t.Errorf("Angle = %f, want %f", p.Angle, want)
	}
	if !p.Aligning {
		t.Error("alignment should still be in progress")
	}
}

func TestPlayerAlignFinishesWhenStepOvershoots(t *testing.T) {
	phys := DefaultConfig().Physics
	p := Player{Grounded: true, Aligning: true, Angle: 80}

	// A large dt makes the step exceed the remaining 10 degrees.
	p.rotate(phys, 0.1)

	if p.Angle != 90 {
		t.Errorf("Angle = %f, want 90", p.Angle)
	}
}

func TestPlayerBoundsAreFullTile(t *testing.T) {
	p := Player{X: 100, Y: 200, Squash: 0.1}

	left, right, top, bottom := p.bounds(24)

	if left != 88 || right != 112 || top != 188 || bottom != 212 {
		t.Errorf("bounds = (%f, %f, %f, %f), squash must not shrink the collision box",
			left, right, top, bottom)
	}
}
