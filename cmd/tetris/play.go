package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagDifficulty string
	flagSpeed      string
	flagAuto       bool
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start a game. The default mode is "tetris"; "tetris_auto" runs the
self-playing demo that restarts on its own after each game over.

Controls:
  Left/Right, A/D, H/L  - Move
  Up/W/K/X              - Rotate
  Down/S/J              - Soft drop
  Space                 - Hard drop
  T                     - Toggle the autonomous player
  1-4                   - Slow, Normal, Fast, Impossible
  P                     - Pause
  Enter                 - Play again (after game over)
  R                     - Restart
  Q/Ctrl+C              - Quit

Without --speed a tier selector is shown first.

Difficulty options:
  easy   - Start slow, speed up as lines are cleared
  normal - Start normal, speed up as lines are cleared
  hard   - Start fast, speed up as lines are cleared
  fixed  - No progression, stays at the configured tier

Examples:
  tetris play
  tetris play --speed fast
  tetris play --auto --speed impossible
  tetris play --difficulty easy --name ann
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Starting speed: slow, normal, fast, impossible")
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Watch the autonomous player (same as mode tetris_auto)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name recorded with your scores (default: login name)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagAuto {
		gameID = "tetris_auto"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	tuning, err := loadTuning(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	switch {
	case flagSpeed != "":
		speed, ok := engine.ParseSpeed(flagSpeed)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown speed %q\n", flagSpeed)
			os.Exit(1)
		}
		tetris.SetStartSpeed(speed)
	case flagDifficulty == "":
		sel, quit, selErr := tui.RunSpeedSelector(tuning, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if quit || sel == nil {
			return
		}
		applySelection(tuning, sel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := flagName
	if player == "" {
		player = defaultPlayer()
	}

	if _, err := tui.Run(game, store, cfg, player); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
