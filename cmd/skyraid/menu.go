package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/platform/tui"
	"github.com/vovakirdan/skyraid/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start Sky Raid in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the run history.
Quitting a game returns to the menu.

Examples:
  skyraid menu
  skyraid menu --fps 30
  skyraid menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("run history failed", "error", sbErr)
			}
			if !goBack {
				return
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		// A fixed --seed replays the same run every time.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("game failed", "game", result.GameID, "error", err)
		}
	}
}
