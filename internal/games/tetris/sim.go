package tetris

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// SimOptions controls a headless run of the autonomous player.
type SimOptions struct {
	Games     int
	Workers   int
	MaxPieces int // 0 plays every game to its end
	Seed      int64
	Speed     engine.Speed
}

// SimResult is the outcome of one headless game.
type SimResult struct {
	Game     int
	Seed     int64
	Score    int
	Lines    int
	Tetrises int
	Pieces   int
	Capped   bool // stopped at MaxPieces rather than by a game over
}

// SimSummary aggregates a set of results.
type SimSummary struct {
	Games     int
	Capped    int
	BestScore int
	MeanScore float64
	MeanLines float64
	Tetrises  int
}

// Simulate plays opts.Games independent games with automation on, at most
// opts.Workers at a time. Game i uses seed opts.Seed+i, so a run is
// reproducible. onResult, if set, is called as each game finishes and may be
// called from several goroutines. Results are returned in game order.
func Simulate(ctx context.Context, cfg config.TetrisConfig, opts SimOptions, onResult func(SimResult)) ([]SimResult, error) {
	if opts.Games <= 0 {
		return nil, nil
	}
	results := make([]SimResult, opts.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))
	for i := range opts.Games {
		g.Go(func() error {
			res, err := simulateOne(ctx, cfg.Engine(), i, opts)
			if err != nil {
				return err
			}
			results[i] = res
			if onResult != nil {
				onResult(res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulateOne(ctx context.Context, ecfg engine.Config, game int, opts SimOptions) (SimResult, error) {
	seed := opts.Seed + int64(game)
	res := SimResult{Game: game, Seed: seed}

	var over *engine.GameOver
	eng := engine.New(ecfg, rand.New(rand.NewSource(seed)), engine.Hooks{
		OnGameOver: func(g engine.GameOver) { over = &g },
	})
	eng.SetSpeed(opts.Speed)
	eng.SetAutomation(true)
	eng.Start()

	delta := ecfg.MaxFrameDelta
	for tick := 0; over == nil; tick++ {
		if tick%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("sim: game %d: %w", game, err)
			}
		}
		if opts.MaxPieces > 0 && eng.Pieces() >= opts.MaxPieces {
			res.Score, res.Lines, res.Tetrises, res.Pieces = eng.Score(), eng.Lines(), eng.Tetrises(), eng.Pieces()
			res.Capped = true
			return res, nil
		}
		eng.Tick(delta)
	}

	res.Score, res.Lines, res.Tetrises, res.Pieces = over.FinalScore, over.Lines, over.Tetrises, over.Pieces
	return res, nil
}

// Summarize aggregates results.
func Summarize(results []SimResult) SimSummary {
	var s SimSummary
	var score, lines int
	for _, r := range results {
		s.Games++
		if r.Capped {
			s.Capped++
		}
		s.BestScore = max(s.BestScore, r.Score)
		s.Tetrises += r.Tetrises
		score += r.Score
		lines += r.Lines
	}
	if s.Games > 0 {
		s.MeanScore = float64(score) / float64(s.Games)
		s.MeanLines = float64(lines) / float64(s.Games)
	}
	return s
}
