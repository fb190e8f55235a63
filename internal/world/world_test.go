package world

import (
	"slices"
	"testing"

	"cardboard/internal/config"
	"cardboard/internal/geom"
)

func TestNewPartitionsBlocksIntoChunks(t *testing.T) {
	w := New(geom.Point2{}, 17)

	chunks := w.Chunks()
	if len(chunks) != 9 {
		t.Fatalf("got %d chunks, want 9", len(chunks))
	}
	if chunks[0] != (Chunk{}) {
		t.Errorf("first chunk = %v, want origin", chunks[0])
	}

	total := 0
	for c, blocks := range w.ChunkBlocks() {
		bounds := c.BlockBounds()
		for _, b := range blocks {
			if !bounds.Contains(b) {
				t.Fatalf("block %v listed under %v but outside its bounds", b, c)
			}
			if !w.Contains(b) {
				t.Fatalf("block %v missing from block set", b)
			}
		}
		total += len(blocks)
	}
	if total != w.Len() {
		t.Errorf("chunk lists hold %d blocks, set holds %d", total, w.Len())
	}
}

func TestNewPlacesEyeOnTopOfStartColumn(t *testing.T) {
	w := New(geom.Point2{}, 17)
	eye, ok := w.Eye()
	if !ok {
		t.Fatal("expected an eye block above the origin")
	}
	if eye.X != 0 || eye.Z != 0 {
		t.Errorf("eye = %v, want column (0, 0)", eye)
	}
	if !w.Contains(eye) {
		t.Error("eye block is not solid")
	}
	bounds := Chunk{}.BlockBounds()
	for y := eye.Y + 1; y <= bounds.Max.Y; y++ {
		if w.Contains(Block{X: 0, Y: y, Z: 0}) {
			t.Errorf("block above eye at y=%d", y)
		}
	}
}

// The column test pairs block x with start z and block z with start x.
func TestEyeColumnUsesSwappedAxes(t *testing.T) {
	blocks := []Block{{X: -2, Y: 0, Z: 3}, {X: -2, Y: 4, Z: 3}, {X: 3, Y: 7, Z: -2}}
	w := FromBlocks(geom.Point2{X: 3, Z: -2}, blocks)
	eye, ok := w.Eye()
	if !ok {
		t.Fatal("expected an eye")
	}
	if eye != (Block{X: -2, Y: 4, Z: 3}) {
		t.Errorf("eye = %v, want (-2, 4, 3)", eye)
	}
}

func TestFromBlocksWithoutEye(t *testing.T) {
	w := FromBlocks(geom.Point2{}, []Block{{X: 5, Y: 0, Z: 5}})
	if _, ok := w.Eye(); ok {
		t.Error("no block in the start column, eye should be unset")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, want 1", w.Len())
	}
}

func TestFromBlocksOriginFirst(t *testing.T) {
	w := FromBlocks(geom.Point2{}, []Block{{X: 20, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}})
	chunks := w.Chunks()
	if len(chunks) != 2 || chunks[0] != (Chunk{}) || chunks[1] != (Chunk{X: 1}) {
		t.Errorf("chunks = %v, want origin then (1,0,0)", chunks)
	}
}

func TestParallelGenerationMatchesSequential(t *testing.T) {
	gen := NewGenerator(config.NoiseSimplex, 1, 4, 16)
	chunks := ChunksWithinRadius(geom.Point2{}, 17)

	seq := newWorld()
	seq.generateChunks(gen, chunks, 1)
	par := newWorld()
	par.generateChunks(gen, chunks, 4)

	if !slices.Equal(seq.Chunks(), par.Chunks()) {
		t.Fatalf("chunk order differs: %v vs %v", seq.Chunks(), par.Chunks())
	}
	for _, c := range chunks {
		if !slices.Equal(seq.Blocks(c), par.Blocks(c)) {
			t.Errorf("blocks of %v differ", c)
		}
	}
}

func TestChunksReturnsCopy(t *testing.T) {
	w := FromBlocks(geom.Point2{}, []Block{{}})
	c := w.Chunks()
	c[0] = Chunk{X: 9}
	if w.Chunks()[0] != (Chunk{}) {
		t.Error("Chunks() leaked internal slice")
	}
}
