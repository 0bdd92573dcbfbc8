package desktop

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/skyraid/internal/games/shooter"
	"github.com/vovakirdan/skyraid/internal/storage"
)

func newTestApp(t *testing.T, id string) *App {
	t.Helper()
	app, err := NewApp(Options{GameID: id, TickRate: 60, Seed: 3, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewApp(%q): %v", id, err)
	}
	return app
}

func TestNewAppUnknownGame(t *testing.T) {
	if _, err := NewApp(Options{GameID: "missing"}); err == nil {
		t.Error("expected an error for an unknown variant")
	}
}

func TestAppLayoutMatchesSurface(t *testing.T) {
	tests := []struct {
		id   string
		w, h int
	}{
		{"shooter", 600, 900},
		{"shooter_compact", 450, 800},
	}
	for _, tt := range tests {
		app := newTestApp(t, tt.id)
		if w, h := app.Layout(1920, 1080); w != tt.w || h != tt.h {
			t.Errorf("%s: Layout = %dx%d, want %dx%d", tt.id, w, h, tt.w, tt.h)
		}
	}
}

func TestAppWaitsForSprites(t *testing.T) {
	app := newTestApp(t, "shooter")

	if lines := overlayLines(app.game); len(lines) == 0 || lines[len(lines)-1] != "Loading..." {
		t.Errorf("overlay = %v, want the loading hint", lines)
	}

	app.frame.PointerPress(300, 800)
	app.step()
	if app.game.Phase() != shooter.StateNotStarted {
		t.Fatal("a press before sprites settle must not start the run")
	}

	app.sprites.settleMissing()
	app.frame.PointerPress(300, 800)
	app.step()
	if app.game.Phase() != shooter.StateRunning {
		t.Fatalf("phase = %v, want running", app.game.Phase())
	}
	if lines := overlayLines(app.game); lines != nil {
		t.Errorf("overlay during a run = %v, want none", lines)
	}
}

func TestAppCompactAutoStarts(t *testing.T) {
	app := newTestApp(t, "shooter_compact")
	app.step()
	if app.game.Phase() != shooter.StateRunning {
		t.Errorf("phase = %v, want running", app.game.Phase())
	}
}

func TestAppSaveRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	app := newTestApp(t, "shooter_compact")
	app.store = store
	for range 90 {
		app.step()
	}
	app.saveRun()

	if app.LastRunID() == "" {
		t.Fatal("expected a run ID")
	}
	best, err := store.BestRun("shooter_compact")
	if err != nil || best == nil {
		t.Fatalf("BestRun = %v, %v", best, err)
	}
	if want := app.game.Elapsed().Truncate(time.Millisecond); best.Duration != want {
		t.Errorf("saved duration %v, want %v", best.Duration, want)
	}
}
