package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/platform/tui"
	"github.com/vovakirdan/skyraid/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Start playing the specified variant in this terminal.

Controls:
  Mouse        - Steer (the ship follows the cursor); click to start and fire
  Left/Right   - Nudge the ship
  Space        - Toggle fire
  Enter        - Start / continue after game over
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Schedules tighten half as fast, 5 lives
  normal - The config file as written
  hard   - Starts two minutes into the schedule, 2 lives
  fixed  - Spawn and fire intervals never tighten

Examples:
  skyraid play shooter
  skyraid play shooter_compact --difficulty hard
  skyraid play shooter --config ./my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireVariant(gameID)

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
