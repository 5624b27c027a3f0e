// tetris is a terminal falling-block puzzle with a built-in autonomous player.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play (default mode: tetris)
//	tetris menu              - Pick a mode interactively
//	tetris scores [mode]     - Show high scores
//	tetris serve             - Start SSH server for remote play
//	tetris sim               - Run headless AI games and report results
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.tetris/scores.db)
//	--config <path>  - Load tuning from a YAML file
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling blocks in your terminal, with a computer that plays too",
	Long: `A terminal falling-block puzzle. Play yourself, hand the piece to the
built-in player at any time with T, or watch it play on its own.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Benchmark the autonomous player headlessly

Examples:
  tetris play
  tetris play tetris_auto --speed fast
  tetris menu
  tetris serve --ssh :2222
  tetris sim --games 50 --workers 8`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadTuning reads the tuning file, applies a difficulty preset and hands the
// result to the game package.
func loadTuning(preset string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		p, err := config.ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		config.ApplyTetrisPreset(&cfg, p)
	}
	tetris.Configure(cfg)
	return cfg, nil
}

// applySelection hands a speed picked in the selector to the next game.
func applySelection(cfg config.TetrisConfig, sel *tui.SpeedSelection) {
	cfg.Difficulty.Enabled = sel.Progression
	if sel.Progression && (cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none") {
		cfg.Difficulty.Progression.Type = "lines"
	}
	tetris.Configure(cfg)
	tetris.SetStartSpeed(sel.Speed)
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is reported and play goes on
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// defaultPlayer names local human scores.
func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
