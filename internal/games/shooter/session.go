package shooter

import (
	"time"
)

// State is the session phase.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateEnded
)

// String returns the phase name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ResetSession puts every piece of mutable session state back to its
// initial value and refreshes the lives text. Panels are left alone.
func (g *Game) ResetSession() {
	g.world.Clear()
	g.world.Player = g.newPlayer()

	g.lives = g.cfg.Player.Lives
	g.invincibleUntil = 0
	g.shooting = false
	g.lastPlayerShot = longAgo
	g.paused = false
	g.tick = 0
	g.now = 0
	g.enemiesDestroyed = 0
	g.obstaclesDestroyed = 0
	g.spawner.Reset()
	g.intervals = g.difficulty.At(0)

	g.hud.SetText(FieldLives, LivesText(g.lives))
}

// Start begins a run from a clean session.
func (g *Game) Start() {
	g.ResetSession()
	g.hud.SetVisible(PanelTitle, false)
	g.hud.SetVisible(PanelGameOver, false)
	g.state = StateRunning
}

// Damage costs the player one life and opens the invincibility window.
// Lives never drop below zero.
func (g *Game) Damage(now time.Duration) {
	if g.lives > 0 {
		g.lives--
	}
	g.hud.SetText(FieldLives, LivesText(g.lives))
	g.invincibleUntil = now + g.cfg.Player.Invincibility()
}

// End freezes the run and shows the game-over panel with the elapsed time.
func (g *Game) End() {
	g.state = StateEnded
	g.shooting = false
	g.hud.SetText(FieldTime, TimeText(g.now))
	g.hud.SetVisible(PanelGameOver, true)
}

// ReturnToTitle leaves the game-over panel for the title screen.
func (g *Game) ReturnToTitle() {
	g.ResetSession()
	g.hud.SetVisible(PanelGameOver, false)
	g.hud.SetVisible(PanelTitle, true)
	g.state = StateNotStarted
}

// CanStart reports whether a start trigger would be honoured.
func (g *Game) CanStart() bool {
	return !g.cfg.Start.WaitForAssets || g.assets.AllReady()
}

func (g *Game) invincible(now time.Duration) bool {
	return now < g.invincibleUntil
}

func (g *Game) newPlayer() Entity {
	pc := g.cfg.Player
	x := g.cfg.Surface.Width/2 - pc.Width/2
	y := g.cfg.Surface.Height - pc.BottomOffset
	return NewEntity(KindPlayer, x, y, pc.Width, pc.Height, g.assets.Player)
}
