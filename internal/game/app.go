package game

import (
	"log"

	"cardboard/internal/host"
	"cardboard/internal/profiling"
)

// App runs the engine from host events on a single thread.
type App struct {
	engine  *Engine
	queue   *host.Queue
	surface host.Surface
	atlas   []byte
	limiter *FPSLimiter

	// saved is the blob from the last SaveState, handed back on InitWindow
	saved            []byte
	destroyRequested bool
}

func NewApp(engine *Engine, queue *host.Queue, surface host.Surface, atlas []byte) *App {
	return &App{
		engine:  engine,
		queue:   queue,
		surface: surface,
		atlas:   atlas,
		limiter: NewFPSLimiter(),
	}
}

// Step runs one loop iteration: lifecycle events, then input, then a frame.
// It returns true once the engine has been torn down after a destroy
// request. An error means the engine could not be initialized.
func (a *App) Step() (bool, error) {
	profiling.ResetFrame()
	if a.destroyRequested {
		a.engine.Term()
		return true, nil
	}

	var err error
	func() {
		defer profiling.Track("app.lifecycle")()
		a.queue.DrainLifecycle(func(ev host.Event) {
			if err != nil {
				return
			}
			err = a.handleLifecycle(ev)
		})
	}()
	if err != nil {
		return false, err
	}

	func() {
		defer profiling.Track("app.input")()
		a.queue.DrainInput(func(ev host.Event) {
			a.engine.HandleInput(ev.Input)
		})
	}()

	if a.destroyRequested {
		a.engine.Term()
		return true, nil
	}
	a.engine.UpdateDraw()
	return false, nil
}

func (a *App) handleLifecycle(ev host.Event) error {
	switch ev.Kind {
	case host.KindInitWindow:
		if err := a.engine.Init(a.surface, a.atlas); err != nil {
			return err
		}
		a.engine.RestoreState(a.saved)
	case host.KindTermWindow:
		a.engine.Term()
	case host.KindGainedFocus:
		a.engine.GainedFocus()
	case host.KindLostFocus:
		a.engine.LostFocus()
	case host.KindSaveState:
		a.saved = a.engine.SaveState()
	case host.KindResize:
		if err := a.engine.SetViewport(ev.Width, ev.Height); err != nil {
			log.Printf("game: resize to %dx%d: %v", ev.Width, ev.Height, err)
		}
	case host.KindDestroyRequested:
		a.destroyRequested = true
	case host.KindInput:
		a.engine.HandleInput(ev.Input)
	}
	return nil
}

// Run calls poll and Step until the app is done, pacing iterations with the
// frame limiter.
func (a *App) Run(poll func()) error {
	for {
		poll()
		done, err := a.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		a.limiter.Wait(a.engine.Animating())
	}
}
