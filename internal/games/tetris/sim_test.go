package tetris

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestSimulateIsReproducible(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	opts := SimOptions{Games: 4, Workers: 3, MaxPieces: 40, Seed: 7, Speed: engine.SpeedImpossible}

	var calls atomic.Int32
	first, err := Simulate(context.Background(), cfg, opts, func(SimResult) { calls.Add(1) })
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if calls.Load() != 4 {
		t.Errorf("onResult called %d times, want 4", calls.Load())
	}

	opts.Workers = 1
	second, err := Simulate(context.Background(), cfg, opts, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results depend on worker count (-first +second):\n%s", diff)
	}

	for i, r := range first {
		if r.Game != i || r.Seed != 7+int64(i) {
			t.Errorf("result %d = game %d seed %d", i, r.Game, r.Seed)
		}
		if r.Capped && r.Pieces != 40 {
			t.Errorf("capped game %d stopped at %d pieces", i, r.Pieces)
		}
	}
}

func TestSimulateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Simulate(ctx, config.DefaultTetrisConfig(), SimOptions{Games: 2, Workers: 2, Speed: engine.SpeedFast}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize([]SimResult{
		{Score: 400, Lines: 4, Tetrises: 1},
		{Score: 200, Lines: 2, Capped: true},
	})
	want := SimSummary{Games: 2, Capped: 1, BestScore: 400, MeanScore: 300, MeanLines: 3, Tetrises: 1}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
	if (Summarize(nil) != SimSummary{}) {
		t.Error("empty summary should be zero")
	}
}
