package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/storage"
)

func TestRunRows(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	rows := RunRows([]storage.Run{
		{Duration: 125 * time.Second, EnemiesDestroyed: 4, ObstaclesDestroyed: 2, CreatedAt: created},
		{Duration: 59 * time.Second, CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"#1", "02:05", "4", "2", "Mar 09 14:05"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 column %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][1] != "00:59" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestScoreboardCyclesVariants(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if len(m.games) < 2 {
		t.Fatalf("expected both variants registered, got %d", len(m.games))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 1 {
		t.Errorf("cursor after tab = %d, want 1", m.gameCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if want := len(m.games) - 1; m.gameCursor != want {
		t.Errorf("cursor after wrapping back = %d, want %d", m.gameCursor, want)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
