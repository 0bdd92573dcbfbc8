package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/storage"
)

var testConfig = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  40,
	TickRate: 60,
	Seed:     7,
}

// endingGame ends on its first step and reports fixed run stats.
type endingGame struct {
	steps int
}

func (g *endingGame) ID() string               { return "ending" }
func (g *endingGame) Title() string            { return "Ending" }
func (g *endingGame) Reset(core.RuntimeConfig) {}
func (g *endingGame) Render(dst *core.Screen)  { dst.Clear() }
func (g *endingGame) State() core.GameState    { return core.GameState{GameOver: g.steps > 0} }
func (g *endingGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State(), Ended: g.steps == 1}
}

func (g *endingGame) RunStats() shooter.RunStats {
	return shooter.RunStats{Duration: 42 * time.Second, EnemiesDestroyed: 3, ObstaclesDestroyed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func newShooterModel(t *testing.T) (Model, *shooter.Game) {
	t.Helper()
	g := shooter.New()
	m := NewModel(g, nil, testConfig)
	m.Init()
	return m, g
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m, _ := newShooterModel(t)
		m, cmd := update(t, m, msg)
		if !m.IsQuitting() || cmd == nil {
			t.Errorf("%q: quitting=%v cmd=%v, want quit", msg.String(), m.IsQuitting(), cmd)
		}
		if m.View() != "" {
			t.Errorf("%q: View() should be empty after quit", msg.String())
		}
	}
}

func TestModelMousePressStartsRun(t *testing.T) {
	m, g := newShooterModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if g.Phase() != shooter.StateRunning {
		t.Fatalf("phase = %v, want running", g.Phase())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.inputFrame.Pointer.Pressed {
		t.Error("pointer edges should be cleared after a tick")
	}
}

func TestModelWheelDoesNotPress(t *testing.T) {
	m, g := newShooterModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	update(t, m, TickMsg(time.Now()))

	if g.Phase() != shooter.StateNotStarted {
		t.Errorf("phase = %v, want not started", g.Phase())
	}
}

func TestModelMouseIgnoredWithoutMapper(t *testing.T) {
	m := NewModel(&endingGame{}, nil, testConfig)
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.inputFrame.Pointer.Present {
		t.Error("games without a pointer mapping should not receive pointer input")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, g := newShooterModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(time.Now()))
	if g.Phase() != shooter.StateRunning {
		t.Fatalf("phase = %v, want running", g.Phase())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if g.Phase() != shooter.StateRunning {
		t.Errorf("resize reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 50 {
		t.Errorf("screen = %dx%d, want 120x50", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackKey(t *testing.T) {
	t.Run("standalone quits from title", func(t *testing.T) {
		m, _ := newShooterModel(t)
		m, cmd := update(t, m, runeKey('b'))
		if !m.IsQuitting() || cmd == nil {
			t.Error("back on the title screen should quit a standalone game")
		}
	})

	t.Run("embedded returns to menu", func(t *testing.T) {
		m, _ := newShooterModel(t)
		m = m.Embedded()
		m, _ = update(t, m, runeKey('b'))
		if !m.BackToMenu() || m.IsQuitting() {
			t.Errorf("BackToMenu=%v IsQuitting=%v, want true/false", m.BackToMenu(), m.IsQuitting())
		}
	})

	t.Run("ignored during a run", func(t *testing.T) {
		m, _ := newShooterModel(t)
		m = m.Embedded()
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = update(t, m, TickMsg(time.Now()))
		m, _ = update(t, m, runeKey('b'))
		if m.BackToMenu() {
			t.Error("back should not leave a live run")
		}
	})
}

func TestModelSavesRunOnEnd(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := NewModel(&endingGame{}, store, testConfig)
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	if m.LastRunID() == "" {
		t.Fatal("expected a saved run")
	}

	runs, err := store.TopRuns("ending", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want exactly 1", len(runs))
	}
	r := runs[0]
	if r.ID != m.LastRunID() || r.Duration != 42*time.Second || r.EnemiesDestroyed != 3 || r.ObstaclesDestroyed != 1 {
		t.Errorf("saved run = %+v", r)
	}
}

func TestModelViewRendersGame(t *testing.T) {
	m, _ := newShooterModel(t)
	if view := m.View(); view == "" {
		t.Error("View() should render the title screen")
	}
}
