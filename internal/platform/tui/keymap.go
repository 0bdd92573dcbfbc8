package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Terminals report no key-up events, so holding fire is a toggle on Space.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"left":  core.ActionLeft,
			"h":     core.ActionLeft,
			"a":     core.ActionLeft,
			"right": core.ActionRight,
			"l":     core.ActionRight,
			"d":     core.ActionRight,
			" ":     core.ActionFire,
			"space": core.ActionFire,
			"enter": core.ActionConfirm,
			"p":     core.ActionPause,
			"esc":   core.ActionPause,
			"r":     core.ActionRestart,
			"b":     core.ActionBack,
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}
	if a, ok := km.bindings[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
