package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := ParseTetris(defaultTetrisYAML)
	require.NoError(t, err)
	require.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestEngineConversionMatchesCanonicalRules(t *testing.T) {
	got := DefaultTetrisConfig().Engine()
	want := engine.DefaultConfig()

	require.Equal(t, want.Rows, got.Rows)
	require.Equal(t, want.Cols, got.Cols)
	require.Equal(t, want.SpawnCol, got.SpawnCol)
	require.Equal(t, want.LockDelay, got.LockDelay)
	require.Equal(t, want.StallLimit, got.StallLimit)
	require.Equal(t, want.Speeds, got.Speeds)
	require.Equal(t, want.InitialSpeed, got.InitialSpeed)
	require.Equal(t, want.LinePoints, got.LinePoints)
	require.Equal(t, want.TetrisBonus, got.TetrisBonus)
	require.Equal(t, want.Weights, got.Weights)
	require.Equal(t, want.Slide, got.Slide)
	require.Equal(t, -2, got.Search.MinCol)
	require.Equal(t, 33*time.Millisecond, got.MaxFrameDelta)
}

func TestLoadTetrisCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte(`
speeds:
  initial: fast
ai:
  weights:
    holes: 9.5
slide:
  manual: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	require.Equal(t, engine.SpeedFast, cfg.InitialSpeed())
	require.Equal(t, 9.5, cfg.AI.Weights.Holes)
	require.True(t, cfg.Slide.Manual)
	// Untouched keys keep their defaults.
	require.Equal(t, 20, cfg.Board.Rows)
	require.Equal(t, 1.5, cfg.AI.Weights.Bumpiness)
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config: read")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o600))
	_, err = LoadTetris(bad)
	require.ErrorContains(t, err, "config: parse")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("board:\n  cols: 2\n"), 0o600))
	_, err = LoadTetris(invalid)
	require.ErrorContains(t, err, "board must be at least 4x4")
}

func TestLoadTetrisFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	require.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		errMsg string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"spawn outside", func(c *TetrisConfig) { c.Board.SpawnCol = 10 }, "spawn_col"},
		{"zero lock delay", func(c *TetrisConfig) { c.Timing.LockDelay = 0 }, "lock_delay"},
		{"bad tier", func(c *TetrisConfig) { c.Speeds.Fast.IntervalMS = 0 }, "speeds.fast"},
		{"bad initial", func(c *TetrisConfig) { c.Speeds.Initial = "warp" }, "initial speed"},
		{"bad progression", func(c *TetrisConfig) { c.Difficulty.Progression.Type = "time" }, "progression"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantSpeed   engine.Speed
		wantEnabled bool
	}{
		{DifficultyEasy, engine.SpeedSlow, true},
		{DifficultyNormal, engine.SpeedNormal, true},
		{DifficultyHard, engine.SpeedFast, true},
		{DifficultyFixed, engine.SpeedSlow, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)
			require.Equal(t, tt.wantSpeed, cfg.InitialSpeed())
			require.Equal(t, tt.wantEnabled, cfg.Difficulty.Enabled)
			if tt.wantEnabled {
				require.Equal(t, "lines", cfg.Difficulty.Progression.Type)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	require.Equal(t, DifficultyFixed, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	require.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	require.Error(t, err)
}
