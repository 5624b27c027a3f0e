package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var (
	flagSimGames  int
	flagWorkers   int
	flagMaxPieces int
	flagSimSpeed  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games of the autonomous player",
	Long: `Play a batch of games with the autonomous player and no screen,
logging each result and a summary. Game i uses seed --seed+i, so a batch
is reproducible. Tuning comes from --config like a normal game.

Examples:
  tetris sim
  tetris sim --games 100 --workers 8 --max-pieces 1000
  tetris sim --config ./weights.yaml --seed 42`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 10, "Number of games")
	simCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Games played in parallel")
	simCmd.Flags().IntVar(&flagMaxPieces, "max-pieces", 500, "Stop a game after this many pieces (0 = play to the end)")
	simCmd.Flags().StringVar(&flagSimSpeed, "speed", "impossible", "Speed tier: slow, normal, fast, impossible")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris-sim",
	})

	tuning, err := loadTuning("")
	if err != nil {
		logger.Fatal("cannot load tuning", "err", err)
	}
	speed, ok := engine.ParseSpeed(flagSimSpeed)
	if !ok {
		logger.Fatal("unknown speed", "speed", flagSimSpeed)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := tetris.SimOptions{
		Games:     flagSimGames,
		Workers:   flagWorkers,
		MaxPieces: flagMaxPieces,
		Seed:      seed,
		Speed:     speed,
	}
	logger.Info("starting", "games", opts.Games, "workers", opts.Workers, "speed", speed, "seed", seed)

	start := time.Now()
	results, err := tetris.Simulate(ctx, tuning, opts, func(r tetris.SimResult) {
		logger.Info("game finished", "game", r.Game, "seed", r.Seed, "score", r.Score,
			"lines", r.Lines, "tetrises", r.Tetrises, "pieces", r.Pieces, "capped", r.Capped)
	})
	if err != nil {
		logger.Error("simulation stopped", "err", err)
		os.Exit(1)
	}

	sum := tetris.Summarize(results)
	logger.Info("summary",
		"games", sum.Games,
		"capped", sum.Capped,
		"best", sum.BestScore,
		"mean_score", sum.MeanScore,
		"mean_lines", sum.MeanLines,
		"tetrises", sum.Tetrises,
		"elapsed", time.Since(start).Round(time.Millisecond))
}
