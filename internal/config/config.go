// Package config provides YAML-based tuning for the game and its autonomous
// player, plus difficulty presets and speed progression.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// TetrisConfig contains all tunable parameters.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Speeds     SpeedsConfig     `yaml:"speeds"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	AI         AIConfig         `yaml:"ai"`
	Slide      SlideConfig      `yaml:"slide"`
	Attract    AttractConfig    `yaml:"attract"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the grid size and spawn position.
type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	SpawnRow int `yaml:"spawn_row"`
	SpawnCol int `yaml:"spawn_col"`
}

// TimingConfig controls locking and frame handling.
type TimingConfig struct {
	LockDelay     int `yaml:"lock_delay"`      // Grounded gravity steps before merge
	StallLimit    int `yaml:"stall_limit"`     // Idle automated ticks before a forced merge
	MaxFrameDelta int `yaml:"max_frame_delta"` // Milliseconds; longer frames are clamped
}

// SpeedTier is one gravity tier.
type SpeedTier struct {
	IntervalMS int     `yaml:"interval_ms"`
	Multiplier float64 `yaml:"multiplier"`
}

// SpeedsConfig lists the four tiers and the one a game starts on.
type SpeedsConfig struct {
	Initial    string    `yaml:"initial"`
	Slow       SpeedTier `yaml:"slow"`
	Normal     SpeedTier `yaml:"normal"`
	Fast       SpeedTier `yaml:"fast"`
	Impossible SpeedTier `yaml:"impossible"`
}

// ScoringConfig sets line-clear rewards.
type ScoringConfig struct {
	LinePoints    int     `yaml:"line_points"`
	TetrisBonus   int     `yaml:"tetris_bonus"`
	LineBonusRate float64 `yaml:"line_bonus_rate"` // Added to the multiplier per line cleared
}

// AIConfig holds evaluator weights and search bounds.
type AIConfig struct {
	Weights WeightsConfig `yaml:"weights"`
	MinCol  int           `yaml:"min_col"`
}

// WeightsConfig mirrors engine.Weights.
type WeightsConfig struct {
	AggregateHeight   float64 `yaml:"aggregate_height"`
	Holes             float64 `yaml:"holes"`
	Bumpiness         float64 `yaml:"bumpiness"`
	WellDepth         float64 `yaml:"well_depth"`
	Blockades         float64 `yaml:"blockades"`
	SurvivalHeight    int     `yaml:"survival_height"`
	SurvivalLineBonus float64 `yaml:"survival_line_bonus"`
	TetrisBonus       float64 `yaml:"tetris_bonus"`
	NonTetrisPenalty  float64 `yaml:"non_tetris_penalty"`
	SetupBonus        float64 `yaml:"setup_bonus"`
	SetupDepth        int     `yaml:"setup_depth"`
}

// SlideConfig tunes the smart slide.
type SlideConfig struct {
	Range      int     `yaml:"range"`
	FallWeight float64 `yaml:"fall_weight"`
	LineWeight float64 `yaml:"line_weight"`
	Manual     bool    `yaml:"manual"` // Also slide pieces a human is steering
}

// AttractConfig drives the demo cycle of the self-playing mode.
type AttractConfig struct {
	RestartAfter float64 `yaml:"restart_after"` // Seconds in attract mode before a new demo game
	DemoSpeed    string  `yaml:"demo_speed"`
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how the speed tier advances during a game.
type ProgressionConfig struct {
	Type     string `yaml:"type"`      // "lines", "score", or "none"
	Step     int    `yaml:"step"`      // Lines or points per tier
	MaxSpeed string `yaml:"max_speed"` // Highest tier progression may reach
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialSpeedForPreset returns the starting tier of a preset. Fixed keeps the
// configured tier, reported as ok == false.
func InitialSpeedForPreset(preset DifficultyPreset) (engine.Speed, bool) {
	switch preset {
	case DifficultyEasy:
		return engine.SpeedSlow, true
	case DifficultyNormal:
		return engine.SpeedNormal, true
	case DifficultyHard:
		return engine.SpeedFast, true
	default:
		return engine.SpeedSlow, false
	}
}

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialSpeed parses Speeds.Initial, falling back to Slow.
func (c TetrisConfig) InitialSpeed() engine.Speed {
	if s, ok := engine.ParseSpeed(c.Speeds.Initial); ok {
		return s
	}
	return engine.SpeedSlow
}

// DemoSpeed parses Attract.DemoSpeed, falling back to Fast.
func (c TetrisConfig) DemoSpeed() engine.Speed {
	if s, ok := engine.ParseSpeed(c.Attract.DemoSpeed); ok {
		return s
	}
	return engine.SpeedFast
}

// RestartAfter returns the attract delay as a duration.
func (c TetrisConfig) RestartAfter() time.Duration {
	return time.Duration(c.Attract.RestartAfter * float64(time.Second))
}

// Engine converts the configuration to engine rules.
func (c TetrisConfig) Engine() engine.Config {
	w := c.AI.Weights
	return engine.Config{
		Rows:          c.Board.Rows,
		Cols:          c.Board.Cols,
		SpawnRow:      c.Board.SpawnRow,
		SpawnCol:      c.Board.SpawnCol,
		LockDelay:     c.Timing.LockDelay,
		StallLimit:    c.Timing.StallLimit,
		MaxFrameDelta: time.Duration(c.Timing.MaxFrameDelta) * time.Millisecond,
		Speeds: engine.SpeedTable{
			engine.SpeedSlow:       c.Speeds.Slow.tier(),
			engine.SpeedNormal:     c.Speeds.Normal.tier(),
			engine.SpeedFast:       c.Speeds.Fast.tier(),
			engine.SpeedImpossible: c.Speeds.Impossible.tier(),
		},
		InitialSpeed:  c.InitialSpeed(),
		LinePoints:    c.Scoring.LinePoints,
		TetrisBonus:   c.Scoring.TetrisBonus,
		LineBonusRate: c.Scoring.LineBonusRate,
		Weights: engine.Weights{
			AggregateHeight:   w.AggregateHeight,
			Holes:             w.Holes,
			Bumpiness:         w.Bumpiness,
			WellDepth:         w.WellDepth,
			Blockades:         w.Blockades,
			SurvivalHeight:    w.SurvivalHeight,
			SurvivalLineBonus: w.SurvivalLineBonus,
			TetrisBonus:       w.TetrisBonus,
			NonTetrisPenalty:  w.NonTetrisPenalty,
			SetupBonus:        w.SetupBonus,
			SetupDepth:        w.SetupDepth,
		},
		Search: engine.SearchOptions{MinCol: c.AI.MinCol, FallbackCol: c.Board.SpawnCol},
		Slide: engine.SlideConfig{
			Range:      c.Slide.Range,
			FallWeight: c.Slide.FallWeight,
			LineWeight: c.Slide.LineWeight,
			Manual:     c.Slide.Manual,
		},
	}
}

func (t SpeedTier) tier() engine.SpeedTier {
	return engine.SpeedTier{
		Interval:   time.Duration(t.IntervalMS) * time.Millisecond,
		Multiplier: t.Multiplier,
	}
}

// Validate reports every value the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Rows < 4 || c.Board.Cols < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Rows, c.Board.Cols))
	}
	if c.Board.SpawnCol < 0 || c.Board.SpawnCol >= c.Board.Cols {
		errs = append(errs, fmt.Errorf("spawn_col %d outside board", c.Board.SpawnCol))
	}
	if c.Board.SpawnRow < 0 || c.Board.SpawnRow >= c.Board.Rows {
		errs = append(errs, fmt.Errorf("spawn_row %d outside board", c.Board.SpawnRow))
	}
	if c.Timing.LockDelay < 1 {
		errs = append(errs, fmt.Errorf("lock_delay must be positive, got %d", c.Timing.LockDelay))
	}
	for name, tier := range map[string]SpeedTier{
		"slow": c.Speeds.Slow, "normal": c.Speeds.Normal,
		"fast": c.Speeds.Fast, "impossible": c.Speeds.Impossible,
	} {
		if tier.IntervalMS <= 0 {
			errs = append(errs, fmt.Errorf("speeds.%s.interval_ms must be positive", name))
		}
	}
	if c.Speeds.Initial != "" {
		if _, ok := engine.ParseSpeed(c.Speeds.Initial); !ok {
			errs = append(errs, fmt.Errorf("unknown initial speed %q", c.Speeds.Initial))
		}
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "lines", "score":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
