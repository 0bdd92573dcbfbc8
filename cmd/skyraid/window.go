package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/platform/desktop"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Play a variant in a desktop window",
	Long: `Open a window and play the specified variant on its full pixel surface.

Sprites are read from the assets directory (player.png, player_bullet.png,
enemy.png, enemy_bullet.png, obstacle.png) and sound cues from
enemy_fire.wav, enemy_destroyed.wav and obstacle_destroyed.wav. Missing
sprites are drawn as rectangles; missing sounds are synthesized.

Controls:
  Mouse / touch  - Steer, press to start and hold to fire
  Space          - Hold to fire
  Enter          - Start / continue after game over
  P              - Pause
  M              - Toggle sound
  Esc            - Close the window

Examples:
  skyraid window shooter
  skyraid window shooter_compact --assets ./assets`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with sprite and sound files")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireVariant(gameID)

	assets := flagAssets
	if info, err := os.Stat(assets); err != nil || !info.IsDir() {
		logger.Warn("assets directory not found, using placeholders", "dir", assets)
		assets = ""
	}

	store := openStore()
	runErr := desktop.Run(desktop.Options{
		GameID:    gameID,
		AssetsDir: assets,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		Store:     store,
		Logger:    logger,
	})
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
