package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

// runReporter is implemented by games that summarise finished runs.
type runReporter interface {
	RunStats() shooter.RunStats
}

// phaseReporter exposes whether a run is live.
type phaseReporter interface {
	Phase() shooter.State
}

// Model is the Bubble Tea model for one game on a terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastRunID  string
	embedded   bool // back returns to a menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game. A zero seed is replaced with the clock.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithLogger returns a copy of m that reports storage failures to l.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// Embedded returns a copy of m whose back key leaves the game instead of
// quitting the program.
func (m Model) Embedded() Model {
	m.embedded = true
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.live() {
			return m, nil
		}
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse turns mouse cells into pointer events on the game surface.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mapper, ok := m.game.(registry.PointerMapper)
	if !ok {
		return m, nil
	}
	x, y := mapper.ScreenToSurface(msg.X, msg.Y, m.screen.Width(), m.screen.Height())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.PointerPress(x, y)
		}
	case tea.MouseActionMotion:
		m.inputFrame.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.inputFrame.PointerRelease()
	}
	return m, nil
}

// handleResize processes window resize events. The game surface has a
// fixed size, so the run keeps going and only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Ended {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// live reports whether a run is in progress and not paused.
func (m Model) live() bool {
	if m.gameState.GameOver || m.gameState.Paused {
		return false
	}
	if p, ok := m.game.(phaseReporter); ok {
		return p.Phase() == shooter.StateRunning
	}
	return true
}

// saveRun records the run that just ended.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Duration: time.Duration(m.gameState.Score) * time.Second,
	}
	if r, ok := m.game.(runReporter); ok {
		stats := r.RunStats()
		run.Duration = stats.Duration
		run.EnemiesDestroyed = stats.EnemiesDestroyed
		run.ObstaclesDestroyed = stats.ObstaclesDestroyed
	}

	id, err := m.store.SaveRun(run)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save run", "game", run.GameID, "error", err)
		}
		return
	}
	m.lastRunID = id
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyraid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the storage ID of the most recently saved run.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts a Bubble Tea program for game on the local terminal.
// Mouse motion is reported without a held button so the ship can follow
// the cursor.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
