package meshing

import (
	"encoding/binary"
	"math"
	"testing"

	"cardboard/internal/geom"
	"cardboard/internal/world"
)

func TestVertexLayout(t *testing.T) {
	if VertexStride != 16 {
		t.Errorf("VertexStride = %d, want 16", VertexStride)
	}
	if TexCoordOffset != 12 {
		t.Errorf("TexCoordOffset = %d, want 12", TexCoordOffset)
	}
}

// TestSingleBlockMesh verifies an isolated cube emits all six faces
func TestSingleBlockMesh(t *testing.T) {
	w := world.FromBlocks(geom.Point2{}, []world.Block{{}})
	vs := BuildChunkMesh(w.Blocks(world.Chunk{}), w)

	if vs.VertexCount() != 24 {
		t.Errorf("vertices = %d, want 24", vs.VertexCount())
	}
	if vs.IndexCount() != 36 {
		t.Errorf("indices = %d, want 36", vs.IndexCount())
	}
}

// TestAdjacentBlocksHideSharedFaces verifies the touching faces are culled
func TestAdjacentBlocksHideSharedFaces(t *testing.T) {
	w := world.FromBlocks(geom.Point2{}, []world.Block{{X: 0}, {X: 1}})
	vs := BuildChunkMesh(w.Blocks(world.Chunk{}), w)

	if vs.VertexCount() != 40 {
		t.Errorf("vertices = %d, want 40", vs.VertexCount())
	}
	if vs.IndexCount() != 60 {
		t.Errorf("indices = %d, want 60", vs.IndexCount())
	}
}

// Faces between chunks are culled using the neighbor chunk's blocks.
func TestNeighborChunkHidesFace(t *testing.T) {
	w := world.FromBlocks(geom.Point2{}, []world.Block{{X: 8}, {X: 9}})
	vs := BuildChunkMesh(w.Blocks(world.Chunk{}), w)
	if vs.VertexCount() != 20 {
		t.Errorf("vertices = %d, want 20", vs.VertexCount())
	}
}

func TestIndicesStayInRange(t *testing.T) {
	blocks := []world.Block{{}, {X: 2}, {Y: 3}, {X: -4, Z: 5}}
	w := world.FromBlocks(geom.Point2{}, blocks)
	vs := BuildChunkMesh(w.Blocks(world.Chunk{}), w)
	for i, idx := range vs.Indices() {
		if int(idx) >= vs.VertexCount() {
			t.Fatalf("index %d = %d out of %d vertices", i, idx, vs.VertexCount())
		}
	}
	if vs.IndexCount()%6 != 0 || vs.VertexCount()%4 != 0 {
		t.Errorf("partial quad: %d vertices, %d indices", vs.VertexCount(), vs.IndexCount())
	}
}

func TestAddQuadTranslatesTemplate(t *testing.T) {
	faces := CubeFaces()
	vs := NewVertices(1)
	vs.AddQuad(&faces[FaceUp], world.Block{X: 3, Y: -2, Z: 7})

	want := [4][3]float32{
		{2.5, -1.5, 7.5},
		{3.5, -1.5, 7.5},
		{3.5, -1.5, 6.5},
		{2.5, -1.5, 6.5},
	}
	for i, v := range vs.Vertices() {
		if v.Position != want[i] {
			t.Errorf("vertex %d at %v, want %v", i, v.Position, want[i])
		}
		if v.TexCoord != faces[FaceUp].Vertices[i].TexCoord {
			t.Errorf("vertex %d tex %v changed", i, v.TexCoord)
		}
	}
	wantIdx := []uint16{0, 1, 3, 3, 1, 2}
	for i, idx := range vs.Indices() {
		if idx != wantIdx[i] {
			t.Errorf("index %d = %d, want %d", i, idx, wantIdx[i])
		}
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	for i, f := range CubeFaces() {
		d := f.Direction.Vec3()
		for _, v := range f.Vertices {
			p := v.Position
			if p[0]*d[0]+p[1]*d[1]+p[2]*d[2] != 0.5 {
				t.Errorf("%v: vertex %v not on the face plane", Face(i), p)
			}
		}
		// counterclockwise seen from outside: (v1-v0) x (v3-v0) points along d
		a, b, c := f.Vertices[0].Position, f.Vertices[1].Position, f.Vertices[3].Position
		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := [3]float32{e1[1]*e2[2] - e1[2]*e2[1], e1[2]*e2[0] - e1[0]*e2[2], e1[0]*e2[1] - e1[1]*e2[0]}
		if n[0]*d[0]+n[1]*d[1]+n[2]*d[2] <= 0 {
			t.Errorf("%v: winding faces inward", Face(i))
		}
	}
}

func TestCubeFaceTiles(t *testing.T) {
	faces := CubeFaces()
	tile := func(f Face) (minS, minT uint16) {
		minS, minT = math.MaxUint16, math.MaxUint16
		for _, v := range faces[f].Vertices {
			minS = min(minS, v.TexCoord[0])
			minT = min(minT, v.TexCoord[1])
		}
		return minS, minT
	}
	if s, tt := tile(FaceDown); s != 0 || tt != 0 {
		t.Errorf("down tile origin = (%#x, %#x), want top-left", s, tt)
	}
	if s, tt := tile(FaceUp); s != 0 || tt != 0x7FFF {
		t.Errorf("up tile origin = (%#x, %#x), want bottom-left", s, tt)
	}
	for _, f := range []Face{FaceLeft, FaceRight, FaceForward, FaceBack} {
		if s, tt := tile(f); s != 0x7FFF || tt != 0x7FFF {
			t.Errorf("%v tile origin = (%#x, %#x), want bottom-right", f, s, tt)
		}
	}
}

func TestVertexBytes(t *testing.T) {
	faces := CubeFaces()
	vs := NewVertices(1)
	vs.AddQuad(&faces[FaceLeft], world.Block{})

	raw := vs.VertexBytes()
	if len(raw) != 4*VertexStride {
		t.Fatalf("len = %d, want %d", len(raw), 4*VertexStride)
	}
	if got := math.Float32frombits(binary.NativeEndian.Uint32(raw[0:])); got != -0.5 {
		t.Errorf("first x = %v, want -0.5", got)
	}
	if got := binary.NativeEndian.Uint16(raw[TexCoordOffset:]); got != 0x7FFF {
		t.Errorf("first s = %#x, want 0x7fff", got)
	}
	if len(vs.IndexBytes()) != 12 {
		t.Errorf("index bytes = %d, want 12", len(vs.IndexBytes()))
	}
	if NewVertices(0).VertexBytes() != nil {
		t.Error("empty mesh should have no vertex bytes")
	}
}

func TestAddQuadPanicsOnOverflow(t *testing.T) {
	faces := CubeFaces()
	vs := NewVertices(0)
	for vs.VertexCount()+4 <= MaxVertices {
		vs.AddQuad(&faces[FaceUp], world.Block{})
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic past 65535 vertices")
		}
	}()
	vs.AddQuad(&faces[FaceUp], world.Block{})
}
