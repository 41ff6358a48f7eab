package sim

import (
	"math/rand"

	"github.com/contribrun/contribrun/internal/core"
)

// GenState carries the generator's cross-column memory. It resets only
// on session restart.
type GenState struct {
	ConsecutiveEmpty int // Current run of height-0 columns
	TotalGenerated   int // Columns generated this session
	PatternRemaining int // Pending repeat columns at PatternHeight
	PatternHeight    int
	PrevHeight       int
}

// Generator produces column heights under the generation constraints:
// a fixed ramp-up runway, a bounded height delta between neighbours,
// a capped run of empty columns and randomly scheduled repeat plateaus.
type Generator struct {
	cfg   GenConfig
	rng   *rand.Rand
	state GenState
}

// NewGenerator creates a generator drawing from the given RNG.
func NewGenerator(cfg GenConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// State returns a copy of the generator's memory.
func (g *Generator) State() GenState {
	return g.state
}

// NextHeight produces the next column height in [0, MaxHeight] for the
// given difficulty level. Rules apply in order: ramp-up, pending pattern,
// bounded draw, empty-run cap, pattern scheduling.
func (g *Generator) NextHeight(level int) int {
	st := &g.state

	// Initial safe runway.
	if st.TotalGenerated < g.cfg.RampUpColumns {
		return g.commit(g.cfg.MaxHeight)
	}

	// Pending repeat plateau.
	if st.PatternRemaining > 0 {
		st.PatternRemaining--
		return g.commit(st.PatternHeight)
	}

	delta := g.cfg.BaseHeightDelta + level
	lo := core.Max(0, st.PrevHeight-delta)
	hi := core.Min(g.cfg.MaxHeight, st.PrevHeight+delta)
	h := g.drawBounded(lo, hi)

	// Empty-run cap: never more than MaxEmptyRun consecutive 0-columns.
	if h == 0 {
		st.ConsecutiveEmpty++
		if st.ConsecutiveEmpty > g.cfg.MaxEmptyRun {
			h = g.uniformIn(1, core.Max(1, hi))
			st.ConsecutiveEmpty = 0
		}
	}

	// Pattern scheduling. Plateaus only make sense for solid columns,
	// so height-0 columns never seed a pattern.
	if h > 0 {
		freq := g.cfg.PatternBaseFreq + 2*level
		roll := 1 + g.rng.Intn(freq)
		repeats := 0
		switch {
		case roll == freq:
			repeats = g.cfg.LongPatternRepeats
		case roll <= g.cfg.PatternLowRoll:
			repeats = 1
		case g.cfg.AlwaysRepeat:
			repeats = 1
		}
		if repeats > 0 {
			st.PatternRemaining = repeats
			st.PatternHeight = h
		}
	}

	return g.commit(h)
}

// drawBounded draws uniformly from [0, MaxHeight], retrying up to
// RetryLimit times for a value within [lo, hi] and clamping the final
// draw if the retries run out. Bounded retry then clamp, never an
// unbounded loop.
func (g *Generator) drawBounded(lo, hi int) int {
	h := 0
	for attempt := 0; attempt < g.cfg.RetryLimit; attempt++ {
		h = g.rng.Intn(g.cfg.MaxHeight + 1)
		if h >= lo && h <= hi {
			return h
		}
	}
	return core.Clamp(h, lo, hi)
}

// uniformIn draws uniformly from [lo, hi].
func (g *Generator) uniformIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// commit records the chosen height and returns it.
func (g *Generator) commit(h int) int {
	if h != 0 {
		g.state.ConsecutiveEmpty = 0
	}
	g.state.PrevHeight = h
	g.state.TotalGenerated++
	return h
}
