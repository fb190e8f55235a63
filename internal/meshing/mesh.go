package meshing

import "cardboard/internal/world"

// Occupancy answers whether a lattice point holds a solid block.
type Occupancy interface {
	Contains(b world.Block) bool
}

// BuildChunkMesh emits one quad per face of blocks whose neighbor in occ is
// empty. Neighbors are looked up across chunk borders.
func BuildChunkMesh(blocks []world.Block, occ Occupancy) *Vertices {
	vs := NewVertices(len(blocks))
	for _, b := range blocks {
		for i := range cubeFaces {
			face := &cubeFaces[i]
			if occ.Contains(b.Add(face.Direction)) {
				continue
			}
			vs.AddQuad(face, b)
		}
	}
	return vs
}
