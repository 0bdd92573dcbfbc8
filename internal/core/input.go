package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - nudge the pointer left
	ActionRight          // Right arrow, D - nudge the pointer right
	ActionFire           // Space - toggle continuous fire (terminals have no key-up)
	ActionConfirm        // Enter - start a run / return to the title screen
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - return to the title screen after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is the normalized state of a mouse or touch contact for one tick.
// Coordinates are in surface units (the same units as RuntimeConfig.ScreenW/H).
type Pointer struct {
	X, Y     float64
	Present  bool // A position has been reported at least once
	Down     bool // Button held or finger on the surface
	Pressed  bool // Went down during this tick
	Released bool // Went up during this tick
	Moved    bool // Position changed during this tick
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame plus the pointer state.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer carries mouse/touch position and button edges.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PointerPress records a press at (x, y).
func (f *InputFrame) PointerPress(x, y float64) {
	f.PointerMove(x, y)
	f.Pointer.Down = true
	f.Pointer.Pressed = true
}

// PointerMove records a position update.
func (f *InputFrame) PointerMove(x, y float64) {
	if !f.Pointer.Present || f.Pointer.X != x || f.Pointer.Y != y {
		f.Pointer.Moved = true
	}
	f.Pointer.X = x
	f.Pointer.Y = y
	f.Pointer.Present = true
}

// PointerRelease records the end of a press.
func (f *InputFrame) PointerRelease() {
	f.Pointer.Down = false
	f.Pointer.Released = true
}

// Clear resets all actions and pointer edges for the next frame.
// Pointer position and held state persist across frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
	f.Pointer.Released = false
	f.Pointer.Moved = false
}
