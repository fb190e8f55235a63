package world

import (
	"testing"

	"cardboard/internal/config"
	"cardboard/internal/geom"
)

func BenchmarkGenerateChunk(b *testing.B) {
	gen := NewGenerator(config.NoiseSimplex, 1, 4, 16)
	box := Chunk{}.BlockBounds()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.GenerateBlocks(box)
	}
}

// Benchmark the full startup world at the default horizon
func BenchmarkNewWorld(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(geom.Point2{}, 60)
	}
}
