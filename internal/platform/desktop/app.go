// Package desktop runs Sky Raid in an Ebitengine window on a real pixel
// surface, with sprites, sound cues, mouse and touch input.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

// AppName names the per-user settings directory.
const AppName = "skyraid"

// Debug font cell size used to lay out HUD text.
const (
	glyphW = 6
	glyphH = 16
)

// Options configures a desktop session.
type Options struct {
	GameID    string
	AssetsDir string // directory holding sprite PNGs and cue WAVs
	TickRate  int
	Seed      int64
	Store     *storage.Store // may be nil
	Logger    *log.Logger    // may be nil
}

// App is the ebiten.Game driving one shooter variant.
type App struct {
	game     *shooter.Game
	sprites  SpriteSet
	settings *SettingsStore
	store    *storage.Store
	logger   *log.Logger

	frame     core.InputFrame
	pointer   pointerTracker
	keys      []ebiten.Key
	canvas    canvas
	lastRunID string
}

// NewApp creates the variant and puts it on its title screen. Sprites
// start unloaded; Run loads them in the background.
func NewApp(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rg, err := registry.Create(opts.GameID)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	game, ok := rg.(*shooter.Game)
	if !ok {
		return nil, fmt.Errorf("desktop: %s has no pixel surface", opts.GameID)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// The surface size comes from the variant's config, not the window.
	rc := core.DefaultConfig()
	if opts.TickRate > 0 {
		rc.TickRate = opts.TickRate
	}
	rc.Seed = seed
	game.Reset(rc)

	sprites := NewSpriteSet()
	game.SetAssets(sprites.Assets())

	return &App{
		game:     game,
		sprites:  sprites,
		settings: NewSettingsStore(nil),
		store:    opts.Store,
		logger:   logger,
		frame:    core.NewInputFrame(),
	}, nil
}

// Update advances the game one tick. Escape closes the window.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		on := a.settings.ToggleSound()
		a.logger.Info("sound toggled", "enabled", on)
	}

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	readKeys(&a.frame, a.keys)
	applyPointer(&a.frame, a.pointer.sample())

	a.step()
	return nil
}

// step runs the simulation on the collected frame and clears it.
func (a *App) step() {
	if a.game.Step(a.frame).Ended {
		a.saveRun()
	}
	a.frame.Clear()
}

func (a *App) saveRun() {
	stats := a.game.RunStats()
	a.logger.Info("run ended",
		"game", a.game.ID(),
		"time", shooter.FormatElapsed(stats.Duration),
		"enemies", stats.EnemiesDestroyed,
		"obstacles", stats.ObstaclesDestroyed,
	)
	if a.store == nil {
		return
	}
	id, err := a.store.SaveRun(storage.Run{
		GameID:             a.game.ID(),
		Duration:           stats.Duration,
		EnemiesDestroyed:   stats.EnemiesDestroyed,
		ObstaclesDestroyed: stats.ObstaclesDestroyed,
	})
	if err != nil {
		a.logger.Warn("could not save run", "error", err)
		return
	}
	a.lastRunID = id
}

// Draw paints the playfield, the HUD and any visible panel.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.dst = screen
	a.game.DrawFrame(&a.canvas)

	w, _ := a.game.Surface()
	hud := a.game.HUD()
	ebitenutil.DebugPrintAt(screen, hud.Text(shooter.FieldLives), 10, 10)
	if a.game.Phase() != shooter.StateNotStarted {
		clock := shooter.FormatElapsed(a.game.Elapsed())
		ebitenutil.DebugPrintAt(screen, clock, int(w)-10-len(clock)*glyphW, 10)
	}

	a.drawPanel(screen, overlayLines(a.game))
}

// overlayLines returns the text of the visible panel, if any.
func overlayLines(g *shooter.Game) []string {
	hud := g.HUD()
	switch {
	case hud.Visible(shooter.PanelTitle):
		if !g.CanStart() {
			return []string{"SKY RAID", "", "Loading..."}
		}
		return []string{"SKY RAID", "", "Click to start"}
	case hud.Visible(shooter.PanelGameOver):
		return []string{"GAME OVER", "", hud.Text(shooter.FieldTime), "", "Click to continue"}
	case g.State().Paused:
		return []string{"PAUSED", "", "Press P to resume"}
	}
	return nil
}

// drawPanel prints lines centered on the surface.
func (a *App) drawPanel(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	w, h := a.game.Surface()
	top := int(h)/2 - len(lines)*glyphH/2
	for i, l := range lines {
		x := int(w)/2 - len(l)*glyphW/2
		ebitenutil.DebugPrintAt(screen, l, x, top+i*glyphH)
	}
}

// Layout keeps the logical screen at the surface size; Ebitengine scales
// it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.game.Surface()
	return int(w), int(h)
}

// LastRunID returns the storage ID of the most recently saved run.
func (a *App) LastRunID() string {
	return a.lastRunID
}

// Run opens a window and plays until it is closed.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	logger := app.logger

	settings, err := OpenSettings(AppName)
	if err != nil {
		logger.Warn("settings not persisted", "error", err)
	}
	app.settings = settings

	var assets fs.FS
	if opts.AssetsDir != "" {
		assets = os.DirFS(opts.AssetsDir)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if assets == nil {
			app.sprites.settleMissing()
			return
		}
		if err := app.sprites.Load(ctx, assets, logger); err != nil {
			logger.Warn("drawing placeholder rectangles", "error", err)
		}
	}()

	app.game.SetAudio(NewSound(audio.NewContext(sampleRate), assets, settings, logger))

	w, h := app.game.Surface()
	scale := settings.Get().WindowScale
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	runErr := ebiten.RunGame(app)
	if err := settings.Save(); err != nil {
		logger.Warn("could not save settings", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", runErr)
	}
	return nil
}
