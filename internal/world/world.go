package world

import (
	"iter"
	"log"
	"slices"
	"time"

	"github.com/alitto/pond/v2"

	"cardboard/internal/config"
	"cardboard/internal/geom"
	"cardboard/internal/profiling"
)

// World is the immutable set of solid blocks generated around a start
// position, partitioned into chunks.
type World struct {
	blocks map[Block]struct{}
	chunks map[Chunk][]Block
	order  []Chunk
	eye    Block
	hasEye bool
}

func newWorld() *World {
	return &World{
		blocks: make(map[Block]struct{}),
		chunks: make(map[Chunk][]Block),
	}
}

// New generates the origin chunk, places the eye above it, then generates
// every chunk within radius of start.
func New(start geom.Point2, radius float32) *World {
	defer profiling.Track("world.New")()
	t0 := time.Now()
	gen := NewGeneratorFromConfig()
	w := newWorld()

	origin := Chunk{}
	w.addChunk(origin, gen.GenerateBlocks(origin.BlockBounds()))
	w.placeEye(start)

	chunks := ChunksWithinRadius(start, radius)
	w.generateChunks(gen, chunks, config.GetGenerationWorkers())

	log.Printf("world: %d chunks, %d blocks in %v", len(w.order), len(w.blocks), time.Since(t0))
	return w
}

// FromBlocks builds a world from an explicit block list, assigning each block
// to the chunk that owns it. The eye is placed as for New.
func FromBlocks(start geom.Point2, blocks []Block) *World {
	w := newWorld()
	byChunk := make(map[Chunk][]Block)
	var order []Chunk
	for _, b := range blocks {
		c := ChunkOf(b)
		if _, ok := byChunk[c]; !ok {
			order = append(order, c)
		}
		byChunk[c] = append(byChunk[c], b)
	}
	// origin first, matching generation order
	if i := slices.Index(order, Chunk{}); i > 0 {
		order = slices.Delete(order, i, i+1)
		order = slices.Insert(order, 0, Chunk{})
	}
	for _, c := range order {
		w.addChunk(c, byChunk[c])
	}
	w.placeEye(start)
	return w
}

// generateChunks fills chunks concurrently. Results are merged in the order
// of chunks so the world is identical to a sequential build.
func (w *World) generateChunks(gen *Generator, chunks []Chunk, workers int) {
	results := make([][]Block, len(chunks))

	pool := pond.NewPool(workers)
	for i, c := range chunks {
		pool.Submit(func() {
			results[i] = gen.GenerateBlocks(c.BlockBounds())
		})
	}
	pool.StopAndWait()

	for i, c := range chunks {
		w.addChunk(c, results[i])
	}
}

func (w *World) addChunk(c Chunk, blocks []Block) {
	if _, ok := w.chunks[c]; !ok {
		w.order = append(w.order, c)
	}
	kept := w.chunks[c]
	for _, b := range blocks {
		if _, dup := w.blocks[b]; dup {
			continue
		}
		w.blocks[b] = struct{}{}
		kept = append(kept, b)
	}
	w.chunks[c] = kept
}

// placeEye picks the highest origin-chunk block in the column under start.
// The column test compares block x with start.Z and block z with start.X.
func (w *World) placeEye(start geom.Point2) {
	for _, b := range w.chunks[Chunk{}] {
		if float32(b.X) != start.Z || float32(b.Z) != start.X {
			continue
		}
		if !w.hasEye || b.Y > w.eye.Y {
			w.eye = b
			w.hasEye = true
		}
	}
}

// Contains reports whether b is solid.
func (w *World) Contains(b Block) bool {
	_, ok := w.blocks[b]
	return ok
}

// Len returns the number of solid blocks.
func (w *World) Len() int {
	return len(w.blocks)
}

// Eye returns the block the camera stands on, if the start column had one.
func (w *World) Eye() (Block, bool) {
	return w.eye, w.hasEye
}

// Chunks returns the loaded chunks in generation order, origin first.
func (w *World) Chunks() []Chunk {
	return slices.Clone(w.order)
}

// Blocks returns the blocks of c. The slice must not be modified.
func (w *World) Blocks(c Chunk) []Block {
	return w.chunks[c]
}

// ChunkBlocks iterates the loaded chunks in generation order.
func (w *World) ChunkBlocks() iter.Seq2[Chunk, []Block] {
	return func(yield func(Chunk, []Block) bool) {
		for _, c := range w.order {
			if !yield(c, w.chunks[c]) {
				return
			}
		}
	}
}
