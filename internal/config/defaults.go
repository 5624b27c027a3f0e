package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the canonical rules: a 20x10 board, Slow start,
// lock delay 3 and the standard evaluator weights.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows:     20,
			Cols:     10,
			SpawnRow: 0,
			SpawnCol: 3,
		},
		Timing: TimingConfig{
			LockDelay:     3,
			StallLimit:    10,
			MaxFrameDelta: 33,
		},
		Speeds: SpeedsConfig{
			Initial:    "slow",
			Slow:       SpeedTier{IntervalMS: 400, Multiplier: 0.75},
			Normal:     SpeedTier{IntervalMS: 120, Multiplier: 1},
			Fast:       SpeedTier{IntervalMS: 55, Multiplier: 1.5},
			Impossible: SpeedTier{IntervalMS: 18, Multiplier: 2},
		},
		Scoring: ScoringConfig{
			LinePoints:    100,
			TetrisBonus:   800,
			LineBonusRate: 0.001,
		},
		AI: AIConfig{
			Weights: WeightsConfig{
				AggregateHeight:   0.7,
				Holes:             7,
				Bumpiness:         1.5,
				WellDepth:         1.2,
				Blockades:         2,
				SurvivalHeight:    7,
				SurvivalLineBonus: 200,
				TetrisBonus:       3000,
				NonTetrisPenalty:  400,
				SetupBonus:        800,
				SetupDepth:        4,
			},
			MinCol: -2,
		},
		Slide: SlideConfig{
			Range:      3,
			FallWeight: 2,
			LineWeight: 50,
		},
		Attract: AttractConfig{
			RestartAfter: 3,
			DemoSpeed:    "fast",
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:     "none",
				Step:     10,
				MaxSpeed: "impossible",
			},
		},
	}
}
