package world

import (
	"fmt"
	"math"

	"cardboard/internal/geom"
)

// ChunkSize is the edge length of a chunk in blocks. It is odd so that the
// chunk at the origin is centered on block (0, 0, 0).
const ChunkSize = 17

const chunkHalf = (ChunkSize - 1) / 2

// Chunk addresses a ChunkSize^3 box of blocks centered on
// (X*ChunkSize, Y*ChunkSize, Z*ChunkSize).
type Chunk struct {
	X, Y, Z int
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Center returns the block at the middle of the chunk.
func (c Chunk) Center() Block {
	return Block{X: c.X * ChunkSize, Y: c.Y * ChunkSize, Z: c.Z * ChunkSize}
}

// BlockBounds returns the inclusive box of blocks the chunk owns.
func (c Chunk) BlockBounds() geom.Box3 {
	center := c.Center()
	half := Block{X: chunkHalf, Y: chunkHalf, Z: chunkHalf}
	return geom.Box3{Min: center.Sub(half), Max: center.Add(half)}
}

// CoordToChunk maps a world coordinate to the index of the chunk whose
// center is nearest, rounding half away from zero.
func CoordToChunk(c float32) int {
	return int(math.Round(float64(c) / ChunkSize))
}

// ChunkOf returns the chunk owning b.
func ChunkOf(b Block) Chunk {
	return Chunk{
		X: floorDiv(b.X+chunkHalf, ChunkSize),
		Y: floorDiv(b.Y+chunkHalf, ChunkSize),
		Z: floorDiv(b.Z+chunkHalf, ChunkSize),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// WithinRadius reports whether any corner of the xz footprint of chunk
// (cx, cz) lies within r of start. The footprint spans ChunkSize/2 on each
// side of the chunk center.
func WithinRadius(start geom.Point2, r float32, cx, cz int) bool {
	const half = float32(ChunkSize) / 2
	x := float32(cx * ChunkSize)
	z := float32(cz * ChunkSize)
	corners := [4]geom.Point2{
		{X: x - half, Z: z - half},
		{X: x + half, Z: z - half},
		{X: x + half, Z: z + half},
		{X: x - half, Z: z + half},
	}
	for _, c := range corners {
		d := c.Sub(start)
		if d.Dot(d) <= r*r {
			return true
		}
	}
	return false
}

// ChunksWithinRadius lists the y=0 chunks around start in generation order,
// row by row along z then x, excluding the origin chunk.
//
// The x range upper bound is derived from start.Z. Starts are always on the
// origin in practice, which makes the two axes interchangeable.
func ChunksWithinRadius(start geom.Point2, r float32) []Chunk {
	minX := CoordToChunk(start.X - r)
	maxX := CoordToChunk(start.Z + r)
	minZ := CoordToChunk(start.Z - r)
	maxZ := CoordToChunk(start.Z + r)

	var chunks []Chunk
	for cz := minZ; cz <= maxZ; cz++ {
		for cx := minX; cx <= maxX; cx++ {
			if cx == 0 && cz == 0 {
				continue
			}
			if !WithinRadius(start, r, cx, cz) {
				continue
			}
			chunks = append(chunks, Chunk{X: cx, Y: 0, Z: cz})
		}
	}
	return chunks
}
