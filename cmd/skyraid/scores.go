package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the longest runs of a variant",
	Long: `Display the longest runs recorded for the specified variant, with
totals across all runs.

Examples:
  skyraid scores shooter
  skyraid scores shooter --recent
  skyraid scores shooter_compact --limit 25
  skyraid scores shooter --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the longest")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireVariant(gameID)
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs of %s.\n", title)
		return
	}

	heading := "Longest Runs"
	query := store.TopRuns
	if flagRecent {
		heading = "Recent Runs"
		query = store.RecentRuns
	}

	runs, err := query(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyraid play %s' to set the first time!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-5s  %s\n", "Rank", "Time", "Enemies", "Rocks", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-5s  %s\n", "----", "----", "-------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-7d  %-5d  %s\n",
			i+1,
			shooter.FormatElapsed(r.Duration),
			r.EnemiesDestroyed,
			r.ObstaclesDestroyed,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil || stats == nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d   Best: %s   Average: %s\n",
		stats.RunsCount,
		shooter.FormatElapsed(stats.Longest),
		shooter.FormatElapsed(stats.Average),
	)
	fmt.Printf("Destroyed: %d enemies, %d rocks\n", stats.EnemiesDestroyed, stats.ObstaclesDestroyed)
}
