package main

import (
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"cardboard/internal/assets"
	"cardboard/internal/config"
	"cardboard/internal/game"
	"cardboard/internal/geom"
	"cardboard/internal/gles"
	"cardboard/internal/host"
	"cardboard/internal/input"
	"cardboard/internal/world"
)

// inputQueueSize bounds pending input events between two frames.
const inputQueueSize = 256

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	window, err := game.SetupWindow()
	if err != nil {
		glfw.Terminate()
		panic(err)
	}

	queue := host.NewQueue(inputQueueSize)
	done := make(chan struct{})

	// a signal asks the loop to shut down and waits until the window is gone
	closer.Bind(func() {
		queue.Push(host.Event{Kind: host.KindDestroyRequested})
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			log.Printf("cardboard: shutdown timed out")
		}
	})

	err = run(window, queue)
	game.TeardownWindow(window)
	close(done)

	if err != nil {
		log.Printf("cardboard: %v", err)
		closer.Exit(1)
	}
}

func run(window *glfw.Window, queue *host.Queue) error {
	api, err := gles.Init()
	if err != nil {
		return err
	}

	w := world.New(geom.Point2{}, config.GetHorizonRadius())
	engine := game.NewEngine(api, w)
	app := game.NewApp(engine, queue, game.WindowSurface{Window: window}, assets.Atlas)

	game.SetupInputHandlers(window, input.NewInputManager(), queue)

	queue.Push(host.Event{Kind: host.KindInitWindow})
	queue.Push(host.Event{Kind: host.KindGainedFocus})

	return app.Run(glfw.PollEvents)
}
