package engine

import (
	"strings"
	"time"
)

// Speed selects a gravity interval and a score multiplier.
type Speed int

// Speed tiers, slowest first. The zero value is the default tier.
const (
	SpeedSlow Speed = iota
	SpeedNormal
	SpeedFast
	SpeedImpossible

	speedCount
)

// Speeds lists every valid tier in ascending order.
var Speeds = [speedCount]Speed{SpeedSlow, SpeedNormal, SpeedFast, SpeedImpossible}

// Valid reports whether s names a known tier.
func (s Speed) Valid() bool {
	return s >= SpeedSlow && s < speedCount
}

// Normalize maps unknown tiers to SpeedNormal.
func (s Speed) Normalize() Speed {
	if !s.Valid() {
		return SpeedNormal
	}
	return s
}

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "Slow"
	case SpeedNormal:
		return "Normal"
	case SpeedFast:
		return "Fast"
	case SpeedImpossible:
		return "Impossible"
	default:
		return "Unknown"
	}
}

// ParseSpeed accepts a tier name (case-insensitive) or its 1-based index.
func ParseSpeed(name string) (Speed, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "slow", "1":
		return SpeedSlow, true
	case "normal", "2":
		return SpeedNormal, true
	case "fast", "3":
		return SpeedFast, true
	case "impossible", "4":
		return SpeedImpossible, true
	}
	return SpeedNormal, false
}

// SpeedTier is the gravity interval and score multiplier of one tier.
type SpeedTier struct {
	Interval   time.Duration
	Multiplier float64
}

// SpeedTable maps every tier to its parameters.
type SpeedTable [speedCount]SpeedTier

// DefaultSpeedTable returns the canonical tiers.
func DefaultSpeedTable() SpeedTable {
	return SpeedTable{
		SpeedSlow:       {Interval: 400 * time.Millisecond, Multiplier: 0.75},
		SpeedNormal:     {Interval: 120 * time.Millisecond, Multiplier: 1},
		SpeedFast:       {Interval: 55 * time.Millisecond, Multiplier: 1.5},
		SpeedImpossible: {Interval: 18 * time.Millisecond, Multiplier: 2},
	}
}

// Tier returns the parameters for s, treating unknown tiers as SpeedNormal.
func (t SpeedTable) Tier(s Speed) SpeedTier {
	return t[s.Normalize()]
}
