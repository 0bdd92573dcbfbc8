package shooter

import (
	"fmt"
	"time"
)

// Field is a HUD text output.
type Field string

const (
	FieldLives Field = "lives"
	FieldTime  Field = "time"
)

// Panel is a full-screen overlay that can be shown or hidden.
type Panel string

const (
	PanelTitle    Panel = "title"
	PanelGameOver Panel = "game_over"
)

// HUD holds the text fields and panel visibility a frontend displays.
type HUD struct {
	text    map[Field]string
	visible map[Panel]bool
}

// NewHUD returns a HUD with the title panel showing.
func NewHUD() *HUD {
	return &HUD{
		text:    map[Field]string{},
		visible: map[Panel]bool{PanelTitle: true},
	}
}

// SetText replaces a field's text.
func (h *HUD) SetText(f Field, s string) {
	h.text[f] = s
}

// Text returns a field's text.
func (h *HUD) Text(f Field) string {
	return h.text[f]
}

// SetVisible shows or hides a panel.
func (h *HUD) SetVisible(p Panel, v bool) {
	h.visible[p] = v
}

// Visible reports whether a panel is showing.
func (h *HUD) Visible(p Panel) bool {
	return h.visible[p]
}

// LivesText formats the lives field.
func LivesText(lives int) string {
	return fmt.Sprintf("Lives: %d", lives)
}

// FormatElapsed renders a duration as MM:SS with whole seconds.
// Minutes keep growing past 99.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// TimeText formats the end-of-run time field.
func TimeText(d time.Duration) string {
	return "Time: " + FormatElapsed(d)
}
