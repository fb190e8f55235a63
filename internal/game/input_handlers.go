package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cardboard/internal/host"
	"cardboard/internal/input"
)

// SetupInputHandlers turns window callbacks into host events. Quit keys and
// closing the window request destruction, pause keys toggle focus the way
// the window losing focus would.
func SetupInputHandlers(window *glfw.Window, im *input.InputManager, queue *host.Queue) {
	paused := false
	setPaused := func(p bool) {
		if p == paused {
			return
		}
		paused = p
		if p {
			queue.Push(host.Event{Kind: host.KindLostFocus})
		} else {
			queue.Push(host.Event{Kind: host.KindGainedFocus})
		}
	}

	window.SetCloseCallback(func(w *glfw.Window) {
		queue.Push(host.Event{Kind: host.KindDestroyRequested})
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		setPaused(!focused)
	})

	window.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		if iconified {
			queue.Push(host.Event{Kind: host.KindSaveState})
		}
		setPaused(iconified)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		queue.Push(host.Event{Kind: host.KindResize, Width: width, Height: height})
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		ev := im.HandleKeyEvent(key, action)
		switch {
		case im.JustPressed(input.ActionQuit):
			queue.Push(host.Event{Kind: host.KindDestroyRequested})
		case im.JustPressed(input.ActionPause):
			setPaused(!paused)
		}
		im.PostUpdate()
		queue.Push(host.Event{Kind: host.KindInput, Input: ev})
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		if ev, ok := im.HandleMouseButtonEvent(button, action, x, y); ok {
			queue.Push(host.Event{Kind: host.KindInput, Input: ev})
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if ev, ok := im.HandleCursorEvent(x, y); ok {
			queue.Push(host.Event{Kind: host.KindInput, Input: ev})
		}
	})
}
