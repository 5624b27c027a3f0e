package config

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestDifficultyManagerSpeed(t *testing.T) {
	lines := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", Step: 10, MaxSpeed: "fast"},
	}
	score := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", Step: 1000},
	}

	tests := []struct {
		name         string
		cfg          DifficultyConfig
		initial      engine.Speed
		lines, score int
		want         engine.Speed
	}{
		{"start", lines, engine.SpeedSlow, 0, 0, engine.SpeedSlow},
		{"one step", lines, engine.SpeedSlow, 10, 0, engine.SpeedNormal},
		{"capped at max", lines, engine.SpeedSlow, 95, 0, engine.SpeedFast},
		{"initial above ceiling", lines, engine.SpeedImpossible, 50, 0, engine.SpeedImpossible},
		{"score based", score, engine.SpeedNormal, 0, 2500, engine.SpeedImpossible},
		{"disabled", DifficultyConfig{Progression: lines.Progression}, engine.SpeedNormal, 90, 0, engine.SpeedNormal},
		{"type none", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none", Step: 1}}, engine.SpeedSlow, 90, 0, engine.SpeedSlow},
		{"zero step", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "lines"}}, engine.SpeedSlow, 90, 0, engine.SpeedSlow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg, tc.initial)
			if got := d.Speed(tc.lines, tc.score); got != tc.want {
				t.Errorf("Speed(%d, %d) = %v, want %v", tc.lines, tc.score, got, tc.want)
			}
		})
	}
}

func TestDifficultyManagerToggle(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty, engine.SpeedSlow)
	if d.IsEnabled() {
		t.Fatal("default progression should be off")
	}
	if got := d.Speed(100, 100000); got != engine.SpeedSlow {
		t.Errorf("disabled Speed = %v, want Slow", got)
	}

	d.SetInitial(engine.Speed(77))
	if d.Initial() != engine.SpeedNormal {
		t.Errorf("invalid initial became %v, want Normal", d.Initial())
	}
}
