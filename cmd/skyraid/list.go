package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered Sky Raid variant with its best recorded time.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := map[string]*storage.GameStats{}
	if store := openStore(); store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "----")
	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok && s.RunsCount > 0 {
			best = shooter.FormatElapsed(s.Longest)
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, g.ID, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'skyraid play <id>' or 'skyraid window <id>' to play.")
}
