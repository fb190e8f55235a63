package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cardboard/internal/config"
)

// SetupWindow opens a window with an OpenGL ES 2.0 context and makes the
// context current. glfw must be initialized.
func SetupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err := glfw.CreateWindow(900, 600, "cardboard", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if config.GetVSync() {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return window, nil
}

// WindowSurface adapts a glfw window to host.Surface.
type WindowSurface struct {
	Window *glfw.Window
}

func (s WindowSurface) Size() (int, int) {
	return s.Window.GetFramebufferSize()
}

func (s WindowSurface) SwapBuffers() {
	s.Window.SwapBuffers()
}

// TeardownWindow releases the context before the window and the window
// before glfw itself.
func TeardownWindow(window *glfw.Window) {
	glfw.DetachCurrentContext()
	window.Destroy()
	glfw.Terminate()
}
