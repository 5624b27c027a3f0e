package config

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// DifficultyManager decides the speed tier as a game progresses.
type DifficultyManager struct {
	cfg     DifficultyConfig
	initial engine.Speed
	ceiling engine.Speed
}

// NewDifficultyManager creates a manager that starts games at initial.
func NewDifficultyManager(cfg DifficultyConfig, initial engine.Speed) *DifficultyManager {
	ceiling, ok := engine.ParseSpeed(cfg.Progression.MaxSpeed)
	if !ok {
		ceiling = engine.SpeedImpossible
	}
	return &DifficultyManager{
		cfg:     cfg,
		initial: initial.Normalize(),
		ceiling: ceiling,
	}
}

// SetInitial overrides the starting tier.
func (d *DifficultyManager) SetInitial(s engine.Speed) {
	d.initial = s.Normalize()
}

// Initial returns the starting tier.
func (d *DifficultyManager) Initial() engine.Speed {
	return d.initial
}

// IsEnabled returns whether progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	t := d.cfg.Progression.Type
	return d.cfg.Enabled && t != "none" && t != "" && d.cfg.Progression.Step > 0
}

// Speed returns the tier for a game that has cleared lines and scored score.
// One tier is gained per progression step, never past the ceiling and never
// below the starting tier.
func (d *DifficultyManager) Speed(lines, score int) engine.Speed {
	if !d.IsEnabled() || d.initial >= d.ceiling {
		return d.initial
	}

	var progress int
	switch d.cfg.Progression.Type {
	case "lines":
		progress = lines
	case "score":
		progress = score
	default:
		return d.initial
	}

	s := d.initial + engine.Speed(max(0, progress)/d.cfg.Progression.Step)
	return min(s, d.ceiling)
}
