package sim

import (
	"math"

	"github.com/contribrun/contribrun/internal/core"
)

// jumpMachine interprets press/release edges into jump intents. The
// layering keeps taps responsive: a tap always produces an immediate
// free jump, while a deliberate hold at full charge pays the whole
// resource for a stronger launch.
type jumpMachine struct {
	cfg JumpConfig

	charge float64 // Resource in [0, ChargeMax]
	held   bool

	hasBuffered bool
	bufferedAt  float64 // ms of sim time

	holdTracking bool
	holdStartAt  float64 // ms

	chargeDuration float64 // Seconds of accumulated charge hold
	lastGroundedAt float64 // ms; grace window reference

	pressed  bool // Edge flags for the current tick
	released bool
}

func newJumpMachine(cfg JumpConfig) jumpMachine {
	return jumpMachine{
		cfg:            cfg,
		charge:         cfg.ChargeMax,
		lastGroundedAt: 0,
	}
}

// press records a press edge at the given sim time. The timestamp feeds
// the jump buffer so a slightly-early press still lands a jump once
// grounding is confirmed.
func (j *jumpMachine) press(now float64) {
	j.held = true
	j.pressed = true
	j.hasBuffered = true
	j.bufferedAt = now
}

// release records a release edge.
func (j *jumpMachine) release() {
	j.held = false
	j.released = true
}

// step runs one tick of the state machine against the player's grounded
// state from the previous collision pass. Transition rules apply in
// priority order; see the charge / double / ground jump branches below.
func (j *jumpMachine) step(p *Player, now, dt float64) {
	// Time-based resource recovery, suspended while a charge is held.
	if !p.Charging {
		j.charge = core.ClampF(j.charge+j.cfg.ChargeRecoveryRate*dt, 0, j.cfg.ChargeMax)
	}

	if p.Grounded {
		j.lastGroundedAt = now
	}

	// Sliding gates all jump attempts and force-cancels a charge.
	if p.Sliding {
		if p.Charging {
			p.Charging = false
			p.Squash = 1
			j.chargeDuration = 0
		}
		j.holdTracking = false
		j.hasBuffered = false
		j.clearEdges()
		return
	}

	if p.Charging {
		j.stepCharging(p, dt)
		j.clearEdges()
		return
	}

	// Double jump: only once clearly airborne (past the grace window),
	// still rising, and with enough resource to pay the fixed cost.
	if j.pressed && !p.Grounded &&
		now-j.lastGroundedAt > j.cfg.GraceWindowMS &&
		p.VY < 0 &&
		j.charge >= j.cfg.DoubleJumpCost {
		p.VY = j.cfg.JumpVelocity
		p.VX = 0
		j.charge -= j.cfg.DoubleJumpCost
		j.hasBuffered = false
		j.clearEdges()
		return
	}

	// Ground jump attempt: a fresh press or a still-valid buffered press
	// while grounded or within the grace window.
	effectiveGrounded := p.Grounded || now-j.lastGroundedAt <= j.cfg.GraceWindowMS
	pressValid := j.pressed || (j.hasBuffered && now-j.bufferedAt <= j.cfg.BufferWindowMS)
	if pressValid && effectiveGrounded && !j.holdTracking {
		j.hasBuffered = false
		if j.charge < j.cfg.ChargeMax {
			// Below full charge a press is always an immediate free jump;
			// responsiveness beats the charge mechanic.
			j.freeJump(p)
		} else {
			j.holdTracking = true
			j.holdStartAt = now
		}
	}

	if j.holdTracking {
		switch {
		case j.held && p.Grounded &&
			now-j.holdStartAt >= j.cfg.HoldThresholdMS &&
			j.charge >= j.cfg.ChargeMax:
			// Deliberate hold at full charge: start charging. The hold
			// time already spent counts toward the charge.
			p.Charging = true
			j.chargeDuration = (now - j.holdStartAt) / 1000
			j.holdTracking = false
		case j.released:
			// Released before the threshold: just a regular free jump.
			j.freeJump(p)
			j.holdTracking = false
		}
	}

	j.clearEdges()
}

// stepCharging accumulates hold time and launches on release.
func (j *jumpMachine) stepCharging(p *Player, dt float64) {
	if j.held && p.Grounded {
		j.chargeDuration = math.Min(j.chargeDuration+dt, j.cfg.MaxChargeTime)
	}

	if j.released {
		ratio := math.Min(j.chargeDuration/j.cfg.MaxChargeTime, 1)
		p.VY = core.Lerp(j.cfg.MinChargeVelocity, j.cfg.MaxChargeVelocity, ratio)
		p.VX = core.Lerp(0, j.cfg.MaxChargeBoost, ratio)
		if j.chargeDuration > 0 {
			// A launched charge jump always costs the full resource.
			j.charge = 0
		}
		p.Charging = false
		p.Grounded = false
		p.Squash = 1
		j.chargeDuration = 0
		return
	}

	// Drive the squash animation from the hold fraction.
	frac := math.Min(j.chargeDuration/j.cfg.MaxChargeTime, 1)
	p.Squash = 1 - (1-squashMinScale)*frac
}

// freeJump launches the no-cost tap jump.
func (j *jumpMachine) freeJump(p *Player) {
	p.VY = j.cfg.JumpVelocity
	p.Grounded = false
}

func (j *jumpMachine) clearEdges() {
	j.pressed = false
	j.released = false
}
