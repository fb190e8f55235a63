// Package host defines what the engine needs from the platform: a drawable
// surface, a queue of lifecycle and input events, and an opaque saved state
// blob that survives the window going away.
package host

import (
	"fmt"

	"cardboard/internal/input"
)

// Kind is the type of a host event.
type Kind int

const (
	KindInitWindow Kind = iota
	KindTermWindow
	KindGainedFocus
	KindLostFocus
	KindSaveState
	KindInput
	KindDestroyRequested
	KindResize
)

var kindNames = [...]string{
	KindInitWindow:       "InitWindow",
	KindTermWindow:       "TermWindow",
	KindGainedFocus:      "GainedFocus",
	KindLostFocus:        "LostFocus",
	KindSaveState:        "SaveState",
	KindInput:            "Input",
	KindDestroyRequested: "DestroyRequested",
	KindResize:           "Resize",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one notification from the host. Input is set for KindInput,
// Width and Height for KindResize.
type Event struct {
	Kind          Kind
	Input         input.Event
	Width, Height int
}

// Surface is the window the engine draws into.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	SwapBuffers()
}
