// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import "github.com/contribrun/contribrun/internal/sim"

// RunnerConfig contains all tuning for the runner game.
type RunnerConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	View       ViewConfig       `yaml:"view"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Jump       JumpConfig       `yaml:"jump"`
	Generation GenerationConfig `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Score      ScoreConfig      `yaml:"score"`
}

// GridConfig defines the contribution-grid geometry in world pixels.
type GridConfig struct {
	TileEdge float64 `yaml:"tile_edge"`
	TileGap  float64 `yaml:"tile_gap"`
	Rows     int     `yaml:"rows"`
}

// ViewConfig defines the logical viewport the simulation runs in.
type ViewConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines movement and collision parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	ScrollSpeed    float64 `yaml:"scroll_speed"`
	SpinRate       float64 `yaml:"spin_rate"`
	AlignRate      float64 `yaml:"align_rate"`
	AlignSnapDeg   float64 `yaml:"align_snap_deg"`
	PlayerStartX   float64 `yaml:"player_start_x"`
	SimplePushback bool    `yaml:"simple_pushback"`
	SideNudge      float64 `yaml:"side_nudge"`
	LandTolLow     float64 `yaml:"land_tolerance_low"`
	LandTolHigh    float64 `yaml:"land_tolerance_high"`
	FallKillMargin float64 `yaml:"fall_kill_margin"`
}

// JumpConfig defines the jump state machine parameters.
type JumpConfig struct {
	Velocity          float64 `yaml:"velocity"`
	MinChargeVelocity float64 `yaml:"min_charge_velocity"`
	MaxChargeVelocity float64 `yaml:"max_charge_velocity"`
	MaxChargeBoost    float64 `yaml:"max_charge_boost"`
	BufferMS          float64 `yaml:"buffer_ms"`
	GraceMS           float64 `yaml:"grace_ms"`
	HoldThresholdMS   float64 `yaml:"hold_threshold_ms"`
	MaxChargeTime     float64 `yaml:"max_charge_time"`
	ChargeMax         float64 `yaml:"charge_max"`
	DoubleJumpCost    float64 `yaml:"double_jump_cost"`
	ChargeRecovery    float64 `yaml:"charge_recovery"`
}

// GenerationConfig defines the column generator parameters.
type GenerationConfig struct {
	RampUpColumns      int  `yaml:"ramp_up_columns"`
	MaxEmptyRun        int  `yaml:"max_empty_run"`
	BaseHeightDelta    int  `yaml:"base_height_delta"`
	RetryLimit         int  `yaml:"retry_limit"`
	PatternBaseFreq    int  `yaml:"pattern_base_freq"`
	PatternLowRoll     int  `yaml:"pattern_low_roll"`
	LongPatternRepeats int  `yaml:"long_pattern_repeats"`
	AlwaysRepeat       bool `yaml:"always_repeat"`
}

// DifficultyConfig defines difficulty progression.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	ScoreStep    float64 `yaml:"score_step"`
	InitialLevel int     `yaml:"initial_level"`
}

// ScoreConfig defines survival scoring.
type ScoreConfig struct {
	Rate float64 `yaml:"rate"`
}

// ToSim converts the YAML configuration into the simulation's tuning.
func (c RunnerConfig) ToSim() sim.Config {
	return sim.Config{
		Grid: sim.GridConfig{
			TileEdge: c.Grid.TileEdge,
			TileGap:  c.Grid.TileGap,
			Rows:     c.Grid.Rows,
		},
		View: sim.ViewConfig{
			Width:  c.View.Width,
			Height: c.View.Height,
		},
		Physics: sim.PhysicsConfig{
			Gravity:           c.Physics.Gravity,
			MaxFallSpeed:      c.Physics.MaxFallSpeed,
			ScrollSpeed:       c.Physics.ScrollSpeed,
			SpinRate:          c.Physics.SpinRate,
			AlignRate:         c.Physics.AlignRate,
			AlignSnapDeg:      c.Physics.AlignSnapDeg,
			PlayerStartX:      c.Physics.PlayerStartX,
			SimplePushback:    c.Physics.SimplePushback,
			SideNudge:         c.Physics.SideNudge,
			LandToleranceLow:  c.Physics.LandTolLow,
			LandToleranceHigh: c.Physics.LandTolHigh,
			FallKillMargin:    c.Physics.FallKillMargin,
		},
		Jump: sim.JumpConfig{
			JumpVelocity:       c.Jump.Velocity,
			MinChargeVelocity:  c.Jump.MinChargeVelocity,
			MaxChargeVelocity:  c.Jump.MaxChargeVelocity,
			MaxChargeBoost:     c.Jump.MaxChargeBoost,
			BufferWindowMS:     c.Jump.BufferMS,
			GraceWindowMS:      c.Jump.GraceMS,
			HoldThresholdMS:    c.Jump.HoldThresholdMS,
			MaxChargeTime:      c.Jump.MaxChargeTime,
			ChargeMax:          c.Jump.ChargeMax,
			DoubleJumpCost:     c.Jump.DoubleJumpCost,
			ChargeRecoveryRate: c.Jump.ChargeRecovery,
		},
		Gen: sim.GenConfig{
			MaxHeight:           c.Grid.Rows,
			RampUpColumns:       c.Generation.RampUpColumns,
			MaxEmptyRun:         c.Generation.MaxEmptyRun,
			BaseHeightDelta:     c.Generation.BaseHeightDelta,
			RetryLimit:          c.Generation.RetryLimit,
			PatternBaseFreq:     c.Generation.PatternBaseFreq,
			PatternLowRoll:      c.Generation.PatternLowRoll,
			LongPatternRepeats:  c.Generation.LongPatternRepeats,
			AlwaysRepeat:        c.Generation.AlwaysRepeat,
			DifficultyEnabled:   c.Difficulty.Enabled,
			DifficultyScoreStep: c.Difficulty.ScoreStep,
			InitialDifficulty:   c.Difficulty.InitialLevel,
		},
		Score: sim.ScoreConfig{
			Rate: c.Score.Rate,
		},
	}
}
