// skyraid is a vertical shooter for the terminal and the desktop.
//
// Usage:
//
//	skyraid list                - List available variants
//	skyraid play <variant>      - Play in the terminal
//	skyraid window <variant>    - Play in a desktop window
//	skyraid menu                - Pick variants interactively
//	skyraid serve               - Start SSH server for remote play
//	skyraid scores <variant>    - Show the longest runs of a variant
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skyraid/runs.db)
//	--config <path>       - Custom game config (YAML or TOML)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "skyraid",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyraid",
	Short: "Sky Raid - a vertical shooter for terminals and windows",
	Long: `Sky Raid puts you at the controls of a ship at the bottom of the sky.
Steer with the mouse, hold fire, and survive enemy volleys and falling
rocks for as long as you can.

Available commands:
  list     - Show all variants
  play     - Play a variant in this terminal
  window   - Play a variant in a desktop window
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the longest runs

Examples:
  skyraid list
  skyraid play shooter
  skyraid window shooter_compact
  skyraid serve --ssh :2222
  skyraid scores shooter`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if flagConfig != "" {
			if err := checkConfig(flagConfig); err != nil {
				logger.Warn("config file ignored, using defaults", "path", flagConfig, "error", err)
			}
		}
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyraid/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// requireVariant exits with a hint when id is not registered.
func requireVariant(id string) {
	if registry.Exists(id) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'skyraid list' to see available variants.")
	os.Exit(1)
}

// checkConfig loads path for every registered variant and returns the
// first failure.
func checkConfig(path string) error {
	for _, g := range registry.List() {
		if _, err := config.LoadShooter(g.ID, path); err != nil {
			return err
		}
	}
	return nil
}

// openStore opens the runs database. Play works without one, so a
// failure is only a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime settings for a terminal session from the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = terminalSize()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
