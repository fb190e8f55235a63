package game

import (
	"math"
	"slices"
	"testing"

	"cardboard/internal/assets"
	"cardboard/internal/geom"
	"cardboard/internal/graphics"
	"cardboard/internal/graphics/graphicstest"
	"cardboard/internal/host"
	"cardboard/internal/input"
	"cardboard/internal/world"
)

type fakeSurface struct {
	width, height int
	swaps         int
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }
func (s *fakeSurface) SwapBuffers()     { s.swaps++ }

// oneBlockWorld has a single block under the camera, giving one mesh of 36
// indices.
func oneBlockWorld() *world.World {
	return world.FromBlocks(geom.Point2{}, []world.Block{{}})
}

func newTestEngine(t *testing.T, w *world.World) (*Engine, *graphicstest.Recorder, *fakeSurface) {
	t.Helper()
	rec := graphicstest.NewRecorder()
	surface := &fakeSurface{width: 900, height: 600}
	e := NewEngine(rec, w)
	if err := e.Init(surface, assets.Atlas); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return e, rec, surface
}

func indexOf(t *testing.T, ops []string, op string) int {
	t.Helper()
	i := slices.Index(ops, op)
	if i < 0 {
		t.Fatalf("%s not called in %v", op, ops)
	}
	return i
}

func TestEngineInitOrder(t *testing.T) {
	e, rec, _ := newTestEngine(t, oneBlockWorld())
	defer e.Term()

	ops := rec.Ops()
	order := []string{"ClearColor", "Enable", "DepthFunc", "GenTexture", "CompileShader", "LinkProgram", "UseProgram", "ActiveTexture", "Uniform1i", "GenBuffer", "Viewport"}
	prev := -1
	for _, op := range order {
		i := indexOf(t, ops, op)
		if i <= prev {
			t.Errorf("%s at %d, want after %s", op, i, order[max(0, slices.Index(order, op)-1)])
		}
		prev = i
	}
	if got := rec.Count("Enable"); got != 2 {
		t.Errorf("Enable called %d times, want 2", got)
	}
	if rec.LastViewport != [4]int32{0, 0, 900, 600} {
		t.Errorf("viewport = %v", rec.LastViewport)
	}
	if e.MeshCount() != 1 {
		t.Errorf("MeshCount = %d, want 1", e.MeshCount())
	}
}

func TestEngineSkipsEmptyMeshes(t *testing.T) {
	e, rec, _ := newTestEngine(t, world.FromBlocks(geom.Point2{}, nil))
	defer e.Term()
	if e.MeshCount() != 0 {
		t.Errorf("MeshCount = %d, want 0", e.MeshCount())
	}
	if rec.Count("GenBuffer") != 0 {
		t.Errorf("GenBuffer called %d times", rec.Count("GenBuffer"))
	}
}

func TestEngineDrawWhilePaused(t *testing.T) {
	e, rec, surface := newTestEngine(t, oneBlockWorld())
	defer e.Term()
	rec.Reset()

	e.Draw()
	e.UpdateDraw()
	if len(rec.Calls) != 0 || surface.swaps != 0 {
		t.Errorf("paused engine drew: %v, %d swaps", rec.Ops(), surface.swaps)
	}
}

func TestEngineDrawsVisibleChunks(t *testing.T) {
	e, rec, surface := newTestEngine(t, oneBlockWorld())
	defer e.Term()
	e.GainedFocus()
	rec.Reset()

	before := e.State().Angle
	e.UpdateDraw()

	if surface.swaps != 1 {
		t.Fatalf("swaps = %d, want 1", surface.swaps)
	}
	if !slices.Equal(rec.DrawCalls, []int32{36}) {
		t.Errorf("draw calls = %v, want [36]", rec.DrawCalls)
	}
	if rec.Count("Clear") != 1 || rec.Count("UniformMatrix4") != 1 {
		t.Errorf("ops = %v", rec.Ops())
	}
	want := float32(360.0 / 600)
	if got := e.State().Angle - before; math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("angle advanced %v degrees, want %v", got, want)
	}
	if got := e.VisibleChunks(); !slices.Equal(got, []world.Chunk{{}}) {
		t.Errorf("VisibleChunks = %v", got)
	}
}

func TestEngineDrawWithoutEye(t *testing.T) {
	// the only block is away from the start column
	w := world.FromBlocks(geom.Point2{}, []world.Block{{X: 3, Y: 0, Z: 1}})
	e, rec, surface := newTestEngine(t, w)
	defer e.Term()
	e.GainedFocus()
	rec.Reset()

	e.Draw()
	if surface.swaps != 1 {
		t.Errorf("swaps = %d, want 1", surface.swaps)
	}
	if rec.Count("Clear") != 1 {
		t.Errorf("Clear called %d times", rec.Count("Clear"))
	}
	if rec.Count("DrawElements") != 0 || rec.Count("UniformMatrix4") != 0 {
		t.Errorf("drew without an eye: %v", rec.Ops())
	}
}

func TestEngineFrameErrorSkipsSwap(t *testing.T) {
	e, rec, surface := newTestEngine(t, oneBlockWorld())
	defer e.Term()
	e.GainedFocus()
	rec.Fail["DrawElements"] = graphics.InvalidOperation

	e.Draw()
	if surface.swaps != 0 {
		t.Errorf("swapped an abandoned frame")
	}
}

func TestEngineTermReleasesInReverse(t *testing.T) {
	w := world.FromBlocks(geom.Point2{}, []world.Block{{}, {X: 17}})
	e, rec, _ := newTestEngine(t, w)
	if e.MeshCount() != 2 {
		t.Fatalf("MeshCount = %d, want 2", e.MeshCount())
	}
	if rec.Live() == 0 {
		t.Fatal("nothing allocated")
	}
	rec.Reset()

	e.Term()
	if rec.Live() != 0 {
		t.Errorf("%d objects still live", rec.Live())
	}
	ops := rec.Ops()
	detach := indexOf(t, ops, "DetachShader")
	program := indexOf(t, ops, "DeleteProgram")
	shader := indexOf(t, ops, "DeleteShader")
	buffer := indexOf(t, ops, "DeleteBuffer")
	texture := indexOf(t, ops, "DeleteTexture")
	if !(detach < program && program < shader && shader < buffer && buffer < texture) {
		t.Errorf("release order %v", ops)
	}

	// second mesh was created last so its buffers go first
	var deleted []uint32
	for _, c := range rec.Calls {
		if c.Op == "DeleteBuffer" {
			deleted = append(deleted, c.Args[0].(uint32))
		}
	}
	if len(deleted) != 4 || deleted[0] < deleted[2] {
		t.Errorf("deleted buffers %v", deleted)
	}

	rec.Reset()
	e.Term()
	if len(rec.Calls) != 0 {
		t.Errorf("second Term made calls: %v", rec.Ops())
	}
}

func TestEngineFailedInitReleasesEverything(t *testing.T) {
	for _, op := range []string{"LinkProgram", "UniformLocation", "BufferData", "Viewport"} {
		t.Run(op, func(t *testing.T) {
			rec := graphicstest.NewRecorder()
			rec.Fail[op] = graphics.InvalidOperation
			e := NewEngine(rec, oneBlockWorld())
			if err := e.Init(&fakeSurface{width: 10, height: 10}, assets.Atlas); err == nil {
				t.Fatal("Init succeeded")
			}
			if rec.Live() != 0 {
				t.Errorf("%d objects leaked", rec.Live())
			}
		})
	}
}

func TestEngineFailedInitBadAtlas(t *testing.T) {
	rec := graphicstest.NewRecorder()
	e := NewEngine(rec, oneBlockWorld())
	if err := e.Init(&fakeSurface{}, []byte("not a png")); err == nil {
		t.Fatal("Init succeeded")
	}
	if rec.Live() != 0 {
		t.Errorf("%d objects leaked", rec.Live())
	}
}

func TestEngineHandleInput(t *testing.T) {
	e := NewEngine(graphicstest.NewRecorder(), oneBlockWorld())

	if e.HandleInput(input.Event{Kind: input.KindKey, Action: input.ActionPause, Pressed: true}) {
		t.Error("key event consumed")
	}
	if !e.HandleInput(input.Event{Kind: input.KindMotion, X: 12.7, Y: 40}) {
		t.Error("motion event not consumed")
	}
	if s := e.State(); s.X != 12 || s.Y != 40 {
		t.Errorf("touch = (%d, %d), want (12, 40)", s.X, s.Y)
	}

	defer func() {
		if recover() == nil {
			t.Error("unknown kind did not panic")
		}
	}()
	e.HandleInput(input.Event{Kind: input.Kind(7)})
}

func TestEngineSaveRestoreState(t *testing.T) {
	e := NewEngine(graphicstest.NewRecorder(), oneBlockWorld())
	e.HandleInput(input.Event{Kind: input.KindMotion, X: 5, Y: 6})
	e.camera.FOV.IncCenterAngle(math.Pi / 2)

	blob := e.SaveState()
	if len(blob) != host.SavedStateSize {
		t.Fatalf("blob is %d bytes", len(blob))
	}

	other := NewEngine(graphicstest.NewRecorder(), oneBlockWorld())
	other.RestoreState(blob)
	got := other.State()
	if got.X != 5 || got.Y != 6 || math.Abs(float64(got.Angle-90)) > 1e-3 {
		t.Errorf("restored %+v", got)
	}

	other.RestoreState(blob[:5])
	if other.State() != got {
		t.Errorf("short blob changed state to %+v", other.State())
	}
}

func TestEngineReinitWithoutTerm(t *testing.T) {
	e, rec, _ := newTestEngine(t, oneBlockWorld())
	live := rec.Live()

	if err := e.Init(&fakeSurface{width: 900, height: 600}, assets.Atlas); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if rec.Live() != live {
		t.Errorf("%d objects live after reinit, want %d", rec.Live(), live)
	}
	if e.MeshCount() != 1 {
		t.Errorf("MeshCount = %d after reinit, want 1", e.MeshCount())
	}

	e.GainedFocus()
	rec.Reset()
	e.Draw()
	if !slices.Equal(rec.DrawCalls, []int32{36}) {
		t.Errorf("draw calls = %v, want [36]", rec.DrawCalls)
	}

	e.Term()
	if rec.Live() != 0 {
		t.Errorf("%d objects live after Term", rec.Live())
	}
}
