package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modes and speed tiers",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	cfg, err := loadTuning("")
	if err != nil {
		return
	}
	table := cfg.Engine().Speeds

	fmt.Println()
	fmt.Println("Speed tiers:")
	for _, s := range engine.Speeds {
		tier := table.Tier(s)
		fmt.Printf("  %d  %-10s %4dms  x%.2f\n", int(s)+1, s, tier.Interval.Milliseconds(), tier.Multiplier)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play <id>' to play.")
}
