package meshing

import (
	"testing"

	"cardboard/internal/config"
	"cardboard/internal/world"
)

func BenchmarkBuildChunkMesh(b *testing.B) {
	gen := world.NewGenerator(config.NoiseSimplex, 1, 4, 16)
	box := world.Chunk{}.BlockBounds()
	blocks := gen.GenerateBlocks(box)
	set := make(blockSet, len(blocks))
	for _, bl := range blocks {
		set[bl] = struct{}{}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildChunkMesh(blocks, set)
	}
}

type blockSet map[world.Block]struct{}

func (s blockSet) Contains(b world.Block) bool {
	_, ok := s[b]
	return ok
}
