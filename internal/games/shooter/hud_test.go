package shooter

import (
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{125 * time.Second, "02:05"},
		{time.Hour, "60:00"},
		{-time.Second, "00:00"},
	}

	for _, tc := range tests {
		if got := FormatElapsed(tc.d); got != tc.expected {
			t.Errorf("FormatElapsed(%v) = %q, expected %q", tc.d, got, tc.expected)
		}
	}

	if got := TimeText(125 * time.Second); got != "Time: 02:05" {
		t.Errorf("TimeText = %q", got)
	}
}

func TestHUDPanels(t *testing.T) {
	h := NewHUD()
	if !h.Visible(PanelTitle) || h.Visible(PanelGameOver) {
		t.Error("new HUD should show only the title panel")
	}

	h.SetVisible(PanelTitle, false)
	h.SetVisible(PanelGameOver, true)
	h.SetText(FieldLives, LivesText(2))

	if h.Visible(PanelTitle) || !h.Visible(PanelGameOver) {
		t.Error("panel visibility not updated")
	}
	if h.Text(FieldLives) != "Lives: 2" {
		t.Errorf("lives text = %q", h.Text(FieldLives))
	}
}
