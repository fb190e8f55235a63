package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionTouch
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to logical actions and tracks
// their state between frames. Bindings are fixed.
type InputManager struct {
	mu sync.RWMutex

	keyToAction          map[glfw.Key]Action
	mouseButtonToActions map[glfw.MouseButton]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with the default bindings
func NewInputManager() *InputManager {
	return &InputManager{
		keyToAction: map[glfw.Key]Action{
			glfw.KeyEscape: ActionQuit,
			glfw.KeyQ:      ActionQuit,
			glfw.KeyP:      ActionPause,
			glfw.KeySpace:  ActionPause,
		},
		mouseButtonToActions: map[glfw.MouseButton]Action{
			glfw.MouseButtonLeft: ActionTouch,
		},
	}
}

// update records an edge for act. Callers hold the lock.
func (im *InputManager) update(act Action, pressed bool) {
	if act <= ActionNone || act >= ActionCount {
		return
	}
	if pressed && !im.currentState[act] {
		im.justPressed[act] = true
	}
	if !pressed && im.currentState[act] {
		im.justReleased[act] = true
	}
	im.currentState[act] = pressed
}

// HandleKeyEvent processes a key callback and returns the matching event.
// Unbound keys produce a key event with ActionNone.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) Event {
	pressed := action == glfw.Press || action == glfw.Repeat

	im.mu.Lock()
	act := im.keyToAction[key]
	im.update(act, pressed)
	im.mu.Unlock()

	return Event{Kind: KindKey, Action: act, Pressed: pressed}
}

// HandleMouseButtonEvent processes a button callback at cursor position
// (x, y). A bound button press is reported as a motion event, the way a
// touch screen would report it.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action, x, y float64) (Event, bool) {
	pressed := action == glfw.Press

	im.mu.Lock()
	act, ok := im.mouseButtonToActions[button]
	if ok {
		im.update(act, pressed)
	}
	im.mu.Unlock()

	if !ok || !pressed {
		return Event{}, false
	}
	return Event{Kind: KindMotion, Action: act, Pressed: true, X: float32(x), Y: float32(y)}, true
}

// HandleCursorEvent reports a drag while the touch action is held.
func (im *InputManager) HandleCursorEvent(x, y float64) (Event, bool) {
	if !im.IsActive(ActionTouch) {
		return Event{}, false
	}
	return Event{Kind: KindMotion, Action: ActionTouch, Pressed: true, X: float32(x), Y: float32(y)}, true
}

// IsActive reports whether the action is currently held
func (im *InputManager) IsActive(act Action) bool {
	if act <= ActionNone || act >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[act]
}

// JustPressed reports whether the action went down since the last PostUpdate
func (im *InputManager) JustPressed(act Action) bool {
	if act <= ActionNone || act >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[act]
}

// JustReleased reports whether the action went up since the last PostUpdate
func (im *InputManager) JustReleased(act Action) bool {
	if act <= ActionNone || act >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[act]
}

// PostUpdate clears edge flags, call once per frame after processing input
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.justPressed = [ActionCount]bool{}
	im.justReleased = [ActionCount]bool{}
}
