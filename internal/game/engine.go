package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/time/rate"

	"cardboard/internal/assets"
	"cardboard/internal/config"
	"cardboard/internal/fps"
	"cardboard/internal/geom"
	"cardboard/internal/graphics"
	"cardboard/internal/host"
	"cardboard/internal/input"
	"cardboard/internal/meshing"
	"cardboard/internal/profiling"
	"cardboard/internal/world"
)

// rotationStep turns the camera once around every 600 drawn frames.
const rotationStep = 2 * math.Pi / 600

var skyColor = [4]float32{0.5, 0.69, 1.0, 1.0}

type chunkMesh struct {
	chunk   world.Chunk
	buffers *graphics.MeshBuffers
}

// Engine owns the GPU resources for one world and draws it from a slowly
// turning camera. All methods must be called from the thread that owns the
// GL context.
type Engine struct {
	api    graphics.API
	world  *world.World
	camera *graphics.Camera

	surface host.Surface
	program *graphics.Program
	texture *graphics.Texture
	meshes  []chunkMesh

	monitor   *fps.Monitor
	state     host.SavedState
	animating bool

	frameWarn *rate.Limiter
}

// NewEngine prepares to render w. No GL calls are made until Init.
func NewEngine(api graphics.API, w *world.World) *Engine {
	eye, _ := w.Eye()
	return &Engine{
		api:       api,
		world:     w,
		camera:    graphics.NewCamera(eye, 0, 0),
		monitor:   fps.New(nil),
		frameWarn: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Init creates every GPU resource and sizes the viewport to surface. On
// error everything created so far has been released. Resources from an
// earlier Init without Term are released first.
func (e *Engine) Init(surface host.Surface, atlas []byte) error {
	if e.surface != nil {
		e.Term()
	}
	start := time.Now()
	if err := e.init(surface, atlas); err != nil {
		e.Term()
		return err
	}
	log.Printf("engine: renderer initialized in %.3fms, %d chunk meshes (%s)",
		float64(time.Since(start).Microseconds())/1000, len(e.meshes), profiling.TopN(3))
	return nil
}

func (e *Engine) init(surface host.Surface, atlas []byte) error {
	e.surface = surface

	e.api.ClearColor(skyColor[0], skyColor[1], skyColor[2], skyColor[3])
	if err := e.api.Enable(graphics.CullFace); err != nil {
		return err
	}
	if err := e.api.Enable(graphics.DepthTest); err != nil {
		return err
	}
	if err := e.api.DepthFunc(graphics.LEqual); err != nil {
		return err
	}

	bm, err := graphics.DecodeAtlas(atlas)
	if err != nil {
		return err
	}
	if e.texture, err = graphics.NewTexture(e.api, bm); err != nil {
		return err
	}
	if e.program, err = graphics.NewProgram(e.api, assets.VertexShader, assets.FragmentShader); err != nil {
		return err
	}
	if err = e.program.Use(); err != nil {
		return err
	}
	if err = e.texture.Bind(0); err != nil {
		return err
	}
	if err = e.program.SetTextureUnit(0); err != nil {
		return err
	}

	if err = e.buildMeshes(); err != nil {
		return err
	}

	width, height := surface.Size()
	return e.SetViewport(width, height)
}

// buildMeshes meshes every chunk on a worker pool, then uploads them on the
// calling thread in generation order.
func (e *Engine) buildMeshes() error {
	defer profiling.Track("engine.buildMeshes")()

	chunks := e.world.Chunks()
	pool := meshing.NewWorkerPool(config.GetMeshWorkers(), len(chunks))
	defer pool.Shutdown()

	built, err := pool.BuildAll(e.world, chunks)
	if err != nil {
		return err
	}

	defer profiling.Track("engine.upload")()
	for i, c := range chunks {
		if built[i].IndexCount() == 0 {
			continue
		}
		buffers, err := graphics.UploadMesh(e.api, built[i])
		if err != nil {
			return fmt.Errorf("%v: %w", c, err)
		}
		e.meshes = append(e.meshes, chunkMesh{chunk: c, buffers: buffers})
	}
	return nil
}

// SetViewport resizes the viewport and projection.
func (e *Engine) SetViewport(width, height int) error {
	if err := e.api.Viewport(0, 0, int32(width), int32(height)); err != nil {
		return err
	}
	e.camera.SetViewport(width, height)
	return nil
}

// GainedFocus starts animating and measuring frame rate.
func (e *Engine) GainedFocus() {
	e.animating = true
	e.monitor.Start()
}

// LostFocus stops animating and logs the partial frame rate window.
func (e *Engine) LostFocus() {
	e.animating = false
	if stats, ok := e.monitor.Stop(); ok {
		log.Printf("engine: FPS %v", stats)
	}
}

// Animating reports whether frames are being drawn.
func (e *Engine) Animating() bool {
	return e.animating
}

// UpdateDraw advances the camera one step and draws a frame.
func (e *Engine) UpdateDraw() {
	if !e.animating {
		return
	}
	e.camera.FOV.IncCenterAngle(rotationStep)
	e.Draw()
}

// Draw renders the chunks in view and presents the frame. It does nothing
// while paused or without a surface. A GL error abandons the frame.
func (e *Engine) Draw() {
	if !e.animating || e.surface == nil {
		return
	}
	defer profiling.Track("engine.Draw")()

	if err := e.drawFrame(); err != nil {
		if e.frameWarn.Allow() {
			log.Printf("engine: frame abandoned: %v", err)
		}
		return
	}
	e.surface.SwapBuffers()

	if stats, ok := e.monitor.Tick(); ok {
		log.Printf("engine: FPS %v, slowest this frame: %s", stats, profiling.TopN(2))
	}
}

func (e *Engine) drawFrame() error {
	if err := e.api.Clear(graphics.ColorBufferBit | graphics.DepthBufferBit); err != nil {
		return err
	}
	if _, ok := e.world.Eye(); !ok {
		return nil
	}
	if err := e.program.SetMVPMatrix(e.camera.MVP()); err != nil {
		return err
	}
	for _, m := range e.meshes {
		if !e.camera.FOV.ChunkVisible(m.chunk.BlockBounds()) {
			continue
		}
		if err := m.buffers.Draw(); err != nil {
			return fmt.Errorf("%v: %w", m.chunk, err)
		}
	}
	return nil
}

// Term releases GPU resources in reverse order of creation and detaches the
// surface. Calling it again is harmless.
func (e *Engine) Term() {
	e.LostFocus()
	if e.program == nil && e.texture == nil && len(e.meshes) == 0 && e.surface == nil {
		return
	}
	if e.program != nil {
		e.program.Release()
		e.program = nil
	}
	for i := len(e.meshes) - 1; i >= 0; i-- {
		e.meshes[i].buffers.Release()
	}
	if n := len(e.meshes); n > 0 {
		log.Printf("engine: deleted buffers of %d chunk meshes", n)
	}
	e.meshes = nil
	if e.texture != nil {
		e.texture.Release()
		e.texture = nil
	}
	e.surface = nil
	log.Printf("engine: renderer terminated")
}

// HandleInput consumes motion events and remembers their position. Key
// events are left to the host.
func (e *Engine) HandleInput(ev input.Event) bool {
	switch ev.Kind {
	case input.KindKey:
		return false
	case input.KindMotion:
		log.Printf("engine: touch at (%.1f, %.1f)", ev.X, ev.Y)
		e.state.X = int32(ev.X)
		e.state.Y = int32(ev.Y)
		return true
	default:
		panic(fmt.Sprintf("engine: unknown input event kind %v", ev.Kind))
	}
}

// SaveState serializes the camera heading and the last touch.
func (e *Engine) SaveState() []byte {
	e.state.Angle = mgl32.RadToDeg(e.camera.FOV.CenterAngle)
	blob, err := e.state.MarshalBinary()
	if err != nil {
		// fixed-size struct, cannot happen
		panic(err)
	}
	return blob
}

// RestoreState applies a blob from SaveState. Blobs of the wrong size are
// ignored.
func (e *Engine) RestoreState(blob []byte) {
	if len(blob) != host.SavedStateSize {
		if len(blob) > 0 {
			log.Printf("engine: ignoring %d byte saved state", len(blob))
		}
		return
	}
	e.state = host.RestoreSavedState(blob)
	e.camera.FOV.CenterAngle = geom.NormalizeAngle(mgl32.DegToRad(e.state.Angle))
}

// State returns the current saved state without serializing it.
func (e *Engine) State() host.SavedState {
	s := e.state
	s.Angle = mgl32.RadToDeg(e.camera.FOV.CenterAngle)
	return s
}

// VisibleChunks lists the chunks with meshes that the camera can see.
func (e *Engine) VisibleChunks() []world.Chunk {
	var out []world.Chunk
	for _, m := range e.meshes {
		if e.camera.FOV.ChunkVisible(m.chunk.BlockBounds()) {
			out = append(out, m.chunk)
		}
	}
	return out
}

// MeshCount returns the number of uploaded chunk meshes.
func (e *Engine) MeshCount() int {
	return len(e.meshes)
}
