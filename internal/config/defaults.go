package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with defaults/runner.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
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
			Gravity:        1500,
			MaxFallSpeed:   900,
			ScrollSpeed:    150,
			SpinRate:       360,
			AlignRate:      720,
			AlignSnapDeg:   5,
			PlayerStartX:   180,
			SimplePushback: false,
			SideNudge:      2,
			LandTolLow:     -1,
			LandTolHigh:    3,
			FallKillMargin: 50,
		},
		Jump: JumpConfig{
			Velocity:          -480,
			MinChargeVelocity: -500,
			MaxChargeVelocity: -780,
			MaxChargeBoost:    260,
			BufferMS:          100,
			GraceMS:           100,
			HoldThresholdMS:   150,
			MaxChargeTime:     1.5,
			ChargeMax:         100,
			DoubleJumpCost:    50,
			ChargeRecovery:    12,
		},
		Generation: GenerationConfig{
			RampUpColumns:      30,
			MaxEmptyRun:        2,
			BaseHeightDelta:    2,
			RetryLimit:         10,
			PatternBaseFreq:    10,
			PatternLowRoll:     5,
			LongPatternRepeats: 3,
			AlwaysRepeat:       true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			ScoreStep:    200,
			InitialLevel: 0,
		},
		Score: ScoreConfig{
			Rate: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
