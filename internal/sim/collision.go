package sim

// resolveCollisions tests the player's bounding box against every live
// tile and resolves each overlap along the axis of least penetration.
// Landing candidates are collected across the whole scan so the player
// snaps to the highest qualifying tile top; ties keep the first-seen
// tile, which is fine since only the extremal value matters.
func (s *Session) resolveCollisions() {
	p := &s.player
	grid := s.cfg.Grid
	phys := s.cfg.Physics
	edge := grid.TileEdge
	half := edge / 2

	landTop := 0.0
	haveLanding := false
	consider := func(top float64) {
		if !haveLanding || top < landTop {
			landTop = top
			haveLanding = true
		}
	}

	pLeft, pRight, pTop, pBottom := p.bounds(edge)

	for _, t := range s.world.Tiles() {
		tLeft := t.X - half
		tRight := t.X + half
		tTop := t.Y - half
		tBottom := t.Y + half

		overlapX := pLeft < tRight && tLeft < pRight
		overlapY := pTop < tBottom && tTop < pBottom

		if overlapX && overlapY {
			penTop := pBottom - tTop
			penBottom := tBottom - pTop
			penLeft := pRight - tLeft
			penRight := tRight - pLeft

			minPen := penTop
			axis := axisTop
			if penBottom < minPen {
				minPen, axis = penBottom, axisBottom
			}
			if penLeft < minPen {
				minPen, axis = penLeft, axisLeft
			}
			if penRight < minPen {
				axis = axisRight
			}

			switch axis {
			case axisTop:
				if p.VY >= 0 {
					consider(tTop)
				}
			case axisBottom:
				if p.VY <= 0 {
					p.Y = tBottom + half
					p.VY = 0
					pLeft, pRight, pTop, pBottom = p.bounds(edge)
				}
			case axisLeft:
				if phys.SimplePushback {
					p.X -= phys.SideNudge
				} else {
					p.X = tLeft - half
				}
				p.VX = 0
				pLeft, pRight, pTop, pBottom = p.bounds(edge)
			case axisRight:
				if phys.SimplePushback {
					p.X -= phys.SideNudge
				} else {
					p.X = tRight + half
				}
				p.VX = 0
				pLeft, pRight, pTop, pBottom = p.bounds(edge)
			}
			continue
		}

		// Near-miss: horizontally overlapping and not rising, with the
		// tile top within tolerance of the player's bottom, counts as a
		// landing. This both avoids a one-tick float before the snap and
		// keeps a standing player (zero gap, zero velocity) grounded.
		if overlapX && p.VY >= 0 {
			gap := tTop - pBottom
			if gap >= phys.LandToleranceLow && gap <= phys.LandToleranceHigh {
				consider(tTop)
			}
		}
	}

	wasGrounded := p.Grounded
	if haveLanding {
		p.Y = landTop - half
		p.VY = 0
		if !wasGrounded {
			// Horizontal momentum decays on touchdown; the spin hands
			// over to the align-to-axis rotation.
			p.VX = 0
			p.Aligning = true
			s.jump.lastGroundedAt = s.now
			if !p.Charging {
				p.Squash = 1
			}
		}
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}

// collision resolution axes; order breaks exact penetration ties.
type collisionAxis int

const (
	axisTop collisionAxis = iota
	axisBottom
	axisLeft
	axisRight
)
