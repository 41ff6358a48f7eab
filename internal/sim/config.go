// Package sim implements the runner simulation: procedural column
// generation over a contribution-style grid, player movement with
// buffered/double/charge jumps, penetration-based collision resolution,
// and the scrolling, scoring and difficulty progression that tie them
// together. The package is self-contained and host-agnostic: the platform
// drives it through Tick, JumpPressed/JumpReleased and Snapshot, so the
// whole simulation is deterministic given a seed and an input script.
package sim

// GridConfig describes the contribution-grid geometry in world pixels.
// The pitch (edge plus gap) is the step between adjacent grid positions
// on both axes and is fixed for a session.
type GridConfig struct {
	TileEdge float64 // Side length of one square tile
	TileGap  float64 // Spacing between adjacent tiles
	Rows     int     // Rows per column (bottom row is index 0)
}

// Pitch returns the grid step: tile edge plus gap.
func (g GridConfig) Pitch() float64 {
	return g.TileEdge + g.TileGap
}

// ViewConfig is the logical viewport the simulation runs in, in world
// pixels. The platform projects it onto whatever screen it has.
type ViewConfig struct {
	Width  float64
	Height float64
}

// PhysicsConfig holds movement and collision tuning.
type PhysicsConfig struct {
	Gravity      float64 // Downward acceleration, px/s^2
	MaxFallSpeed float64 // Terminal velocity, px/s
	ScrollSpeed  float64 // World scroll speed, px/s
	SpinRate     float64 // Airborne rotation, degrees/s
	AlignRate    float64 // Landing align rotation, degrees/s
	AlignSnapDeg float64 // Snap window around the nearest right angle
	PlayerStartX float64 // Nominal player column, px from the left edge

	// SimplePushback selects the reduced-feature side rule: instead of
	// clamping against a tile's side face, side contact nudges the player
	// SideNudge pixels to the left. Repeated contact walks the player
	// toward the left kill boundary.
	SimplePushback bool
	SideNudge      float64

	// Near-miss landing tolerance: while falling, a tile whose top is
	// within [LandToleranceLow, LandToleranceHigh] px of the player's
	// bottom counts as an imminent landing.
	LandToleranceLow  float64
	LandToleranceHigh float64

	// FallKillMargin is how far below the viewport bottom the player may
	// fall before the session ends.
	FallKillMargin float64
}

// JumpConfig holds the jump state machine tuning.
type JumpConfig struct {
	JumpVelocity      float64 // Free (tap) jump launch velocity, negative = up
	MinChargeVelocity float64 // Charge jump at zero hold
	MaxChargeVelocity float64 // Charge jump at full hold
	MaxChargeBoost    float64 // Horizontal boost at full hold, px/s

	BufferWindowMS  float64 // How long an early press is remembered
	GraceWindowMS   float64 // Post-grounded window where jumps still count
	HoldThresholdMS float64 // Hold time before a full-charge press starts charging
	MaxChargeTime   float64 // Seconds of hold for a maximal charge jump

	ChargeMax          float64 // Charge resource ceiling
	DoubleJumpCost     float64 // Fixed resource cost of a double jump
	ChargeRecoveryRate float64 // Resource regained per second
}

// GenConfig holds the column generator tuning. The difficulty level
// derived from score widens the height delta and shifts the pattern
// frequency bound; it never loosens the empty-run or ramp-up rules.
type GenConfig struct {
	MaxHeight       int // Highest generatable column (equals grid rows)
	RampUpColumns   int // Leading columns forced to MaxHeight
	MaxEmptyRun     int // Longest allowed run of height-0 columns
	BaseHeightDelta int // Height delta bound at difficulty 0
	RetryLimit      int // Bounded retries before clamping a draw

	PatternBaseFreq    int  // Pattern roll upper bound at difficulty 0
	PatternLowRoll     int  // Rolls at or below this schedule one repeat
	LongPatternRepeats int  // Repeats scheduled by the maximum roll
	AlwaysRepeat       bool // Every column schedules at least one repeat

	DifficultyEnabled   bool
	DifficultyScoreStep float64 // Score per difficulty level
	InitialDifficulty   int     // Preset offset added to the derived level
}

// ScoreConfig holds survival scoring tuning.
type ScoreConfig struct {
	Rate float64 // Points per second of survival
}

// Config aggregates all simulation tuning. Sessions copy it at
// construction; it is never mutated afterwards.
type Config struct {
	Grid    GridConfig
	View    ViewConfig
	Physics PhysicsConfig
	Jump    JumpConfig
	Gen     GenConfig
	Score   ScoreConfig
}

// DefaultConfig returns tuning that plays well at 60 ticks per second on
// a 960x288 logical viewport.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			TileEdge: 24,
			TileGap:  6,
			Rows:     7,
		},
		View: ViewConfig{
			Width:  960,
			Height: 288,
		},
		Physics: PhysicsConfig{
			Gravity:           1500,
			MaxFallSpeed:      900,
			ScrollSpeed:       150,
			SpinRate:          360,
			AlignRate:         720,
			AlignSnapDeg:      5,
			PlayerStartX:      180,
			SimplePushback:    false,
			SideNudge:         2,
			LandToleranceLow:  -1,
			LandToleranceHigh: 3,
			FallKillMargin:    50,
		},
		Jump: JumpConfig{
			JumpVelocity:       -480,
			MinChargeVelocity:  -500,
			MaxChargeVelocity:  -780,
			MaxChargeBoost:     260,
			BufferWindowMS:     100,
			GraceWindowMS:      100,
			HoldThresholdMS:    150,
			MaxChargeTime:      1.5,
			ChargeMax:          100,
			DoubleJumpCost:     50,
			ChargeRecoveryRate: 12,
		},
		Gen: GenConfig{
			MaxHeight:           7,
			RampUpColumns:       30,
			MaxEmptyRun:         2,
			BaseHeightDelta:     2,
			RetryLimit:          10,
			PatternBaseFreq:     10,
			PatternLowRoll:      5,
			LongPatternRepeats:  3,
			AlwaysRepeat:        true,
			DifficultyEnabled:   true,
			DifficultyScoreStep: 200,
			InitialDifficulty:   0,
		},
		Score: ScoreConfig{
			Rate: 10,
		},
	}
}
