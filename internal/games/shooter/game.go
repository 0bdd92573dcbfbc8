// Package shooter implements Sky Raid, a vertical shooter. The player ship
// follows the pointer along the bottom of the surface, fires upward, and
// survives enemy volleys and falling obstacles for as long as possible.
package shooter

import (
	"time"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values keep the
// config file's schedule.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// nudgeSteps is how many keyboard nudges cross the whole surface.
const nudgeSteps = 24

// Game implements one shooter variant.
type Game struct {
	id    string
	title string

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager
	tickStep   time.Duration

	// Subsystems
	rng     *rng
	spawner *Spawner
	mover   *Mover
	assets  Assets
	audio   AudioSink
	hud     *HUD

	// Session
	world              World
	state              State
	paused             bool
	tick               uint64
	now                time.Duration // Session clock; advances only while running
	intervals          config.Intervals
	lives              int
	invincibleUntil    time.Duration
	shooting           bool
	lastPlayerShot     time.Duration
	enemiesDestroyed   int
	obstaclesDestroyed int
}

// New creates the Sky Raid variant.
func New() *Game {
	return newVariant(config.ShooterID, "Sky Raid")
}

// NewCompact creates the Sky Raid (Compact) variant.
func NewCompact() *Game {
	return newVariant(config.ShooterCompactID, "Sky Raid (Compact)")
}

func newVariant(id, title string) *Game {
	return &Game{
		id:     id,
		title:  title,
		assets: GlyphAssets(),
		audio:  silentAudio{},
		hud:    NewHUD(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetAssets replaces the sprite handles, including those of live entities.
func (g *Game) SetAssets(a Assets) {
	g.assets = a
	w := &g.world
	w.Player.Image = a.Player
	for _, list := range [][]Entity{w.Bullets, w.EnemyBullets, w.Enemies, w.Obstacles} {
		for i := range list {
			list[i].Image = a.ForKind(list[i].Kind)
		}
	}
}

// SetAudio routes sound cues to a.
func (g *Game) SetAudio(a AudioSink) {
	if a == nil {
		a = silentAudio{}
	}
	g.audio = a
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadShooter(g.id, configPath)
	if err != nil {
		cfg = config.DefaultFor(g.id)
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith is Reset with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.ShooterConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.cfg = cfg
	g.tickStep = time.Second / time.Duration(runtime.TickRate)
	g.difficulty = config.NewDifficultyManager(cfg.Schedule, cfg.Difficulty)

	g.rng = newRNG(runtime.Seed)
	g.spawner = NewSpawner(cfg, g.rng)
	g.mover = NewMover(cfg, g.rng)

	g.hud = NewHUD()
	g.ResetSession()
	g.state = StateNotStarted
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle pause toggle
	if in.Has(core.ActionPause) && g.state == StateRunning {
		g.paused = !g.paused
	}

	g.handleInput(in)

	if g.state == StateNotStarted && g.cfg.Start.Mode == config.StartAuto && g.CanStart() {
		g.Start()
	}

	if g.state != StateRunning || g.paused {
		return core.StepResult{State: g.State()}
	}

	ended := g.advance()
	return core.StepResult{State: g.State(), Ended: ended}
}

// handleInput applies start/return triggers, the shooting flag and
// player movement.
func (g *Game) handleInput(in core.InputFrame) {
	p := in.Pointer
	if p.Pressed && !g.bounds().Contains(p.X, p.Y) {
		// Presses on the HUD row or the letterbox margins do nothing.
		p.Pressed = false
	}

	switch g.state {
	case StateNotStarted:
		trigger := in.Has(core.ActionConfirm) || (p.Pressed && g.cfg.Start.Mode == config.StartPointer)
		if trigger && g.CanStart() {
			g.Start()
		}
	case StateEnded:
		// The press that leaves the game-over panel does not fire.
		if p.Pressed || in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.ReturnToTitle()
		}
		return
	}

	if p.Pressed {
		g.shooting = true
	}
	if p.Released {
		g.shooting = false
	}

	if g.state != StateRunning || g.paused {
		return
	}

	if in.Has(core.ActionFire) {
		g.shooting = !g.shooting
	}
	if p.Present && (p.Pressed || p.Moved) {
		g.movePlayerTo(p.X)
	}

	step := g.cfg.Surface.Width / nudgeSteps
	cx, _ := g.world.Player.Rect().Center()
	if in.Has(core.ActionLeft) {
		g.movePlayerTo(cx - step)
	}
	if in.Has(core.ActionRight) {
		g.movePlayerTo(cx + step)
	}
}

// bounds is the playfield in surface coordinates.
func (g *Game) bounds() core.Rect {
	return core.NewRect(0, 0, g.cfg.Surface.Width, g.cfg.Surface.Height)
}

// movePlayerTo centres the ship on x, kept inside the surface.
func (g *Game) movePlayerTo(x float64) {
	p := &g.world.Player
	p.X = core.ClampF(x-p.W/2, 0, g.cfg.Surface.Width-p.W)
}

// advance runs one simulation tick of a live run.
// Returns true when the run ended on this tick.
func (g *Game) advance() bool {
	g.tick++
	g.now += g.tickStep
	now := g.now

	if g.difficulty.IsEnabled() {
		g.intervals = g.difficulty.At(now)
	}

	// A fresh burst moves on the tick it is fired.
	g.mover.MoveBullets(&g.world)
	g.mover.MoveEnemies(&g.world)
	g.fireEnemies(now, g.intervals.EnemyFire)
	g.mover.MoveEnemyBullets(&g.world)
	g.mover.MoveObstacles(&g.world)

	g.spawner.Update(&g.world, now, g.intervals, g.assets)
	g.firePlayer(now)

	g.resolveCollisions(now)

	if g.lives <= 0 {
		g.End()
		return true
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.now / time.Second),
		GameOver: g.state == StateEnded,
		Paused:   g.paused,
	}
}

// Phase returns the session phase.
func (g *Game) Phase() State {
	return g.state
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Elapsed returns the play time of the current or last run.
func (g *Game) Elapsed() time.Duration {
	return g.now
}

// HUD returns the text fields and panels for frontends to display.
func (g *Game) HUD() *HUD {
	return g.hud
}

// Surface returns the logical surface size in pixels.
func (g *Game) Surface() (w, h float64) {
	return g.cfg.Surface.Width, g.cfg.Surface.Height
}

// Config returns the active configuration.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// RunStats summarises a run for the history table.
type RunStats struct {
	Duration           time.Duration
	EnemiesDestroyed   int
	ObstaclesDestroyed int
}

// RunStats returns the statistics of the current or last run.
func (g *Game) RunStats() RunStats {
	return RunStats{
		Duration:           g.now,
		EnemiesDestroyed:   g.enemiesDestroyed,
		ObstaclesDestroyed: g.obstaclesDestroyed,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(config.ShooterID, func() registry.Game {
		return New()
	})
	registry.Register(config.ShooterCompactID, func() registry.Game {
		return NewCompact()
	})
}
