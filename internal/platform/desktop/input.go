package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyraid/internal/core"
)

// pointerSample is one frame of raw mouse or touch state, in surface
// coordinates.
type pointerSample struct {
	x, y     float64
	present  bool
	pressed  bool
	released bool
}

// pointerTracker follows the left mouse button and the first finger.
// While a finger is down it takes precedence over the mouse.
type pointerTracker struct {
	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
	lastX    float64
	lastY    float64
}

// sample reads this frame's pointer state from Ebitengine.
func (p *pointerTracker) sample() pointerSample {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			return pointerSample{x: p.lastX, y: p.lastY, present: true, released: true}
		}
		x, y := ebiten.TouchPosition(p.touchID)
		p.lastX, p.lastY = float64(x), float64(y)
		return pointerSample{x: p.lastX, y: p.lastY, present: true}
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touchID = p.touchIDs[0]
		p.touching = true
		x, y := ebiten.TouchPosition(p.touchID)
		p.lastX, p.lastY = float64(x), float64(y)
		return pointerSample{x: p.lastX, y: p.lastY, present: true, pressed: true}
	}

	x, y := ebiten.CursorPosition()
	p.lastX, p.lastY = float64(x), float64(y)
	return pointerSample{
		x:        p.lastX,
		y:        p.lastY,
		present:  true,
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// applyPointer feeds a sample into frame.
func applyPointer(frame *core.InputFrame, s pointerSample) {
	if !s.present {
		return
	}
	if s.pressed {
		frame.PointerPress(s.x, s.y)
	} else {
		frame.PointerMove(s.x, s.y)
	}
	if s.released {
		frame.PointerRelease()
	}
}

// keyActions maps just-pressed keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyEnter:      core.ActionConfirm,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
}

// readKeys sets the actions of keys pressed this frame. Space has real
// key-up events here, so pressing and releasing it both toggle fire and
// holding it shoots.
func readKeys(frame *core.InputFrame, pressed []ebiten.Key) {
	for _, k := range pressed {
		if a, ok := keyActions[k]; ok {
			frame.Set(a)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		frame.Set(core.ActionFire)
	}
}
