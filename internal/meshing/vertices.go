package meshing

import (
	"fmt"
	"unsafe"

	"cardboard/internal/world"
)

// Vertices accumulates quads for one chunk.
type Vertices struct {
	vertices []Vertex
	indices  []uint16
}

// NewVertices preallocates for about half the faces of blockCount cubes.
func NewVertices(blockCount int) *Vertices {
	return &Vertices{
		vertices: make([]Vertex, 0, 12*blockCount),
		indices:  make([]uint16, 0, 18*blockCount),
	}
}

// AddQuad appends face translated to b. It panics once the chunk would need
// more vertices than a 16-bit index can address.
func (vs *Vertices) AddQuad(face *CubeFace, b world.Block) {
	base := len(vs.vertices)
	if base+len(face.Vertices) > MaxVertices {
		panic(fmt.Sprintf("meshing: vertex count %d exceeds 16-bit indices", base+len(face.Vertices)))
	}
	offset := b.Vec3()
	for _, fv := range face.Vertices {
		fv.Position[0] += offset[0]
		fv.Position[1] += offset[1]
		fv.Position[2] += offset[2]
		vs.vertices = append(vs.vertices, fv)
	}
	for _, i := range QuadIndices {
		vs.indices = append(vs.indices, uint16(base)+i)
	}
}

func (vs *Vertices) Vertices() []Vertex { return vs.vertices }
func (vs *Vertices) Indices() []uint16  { return vs.indices }
func (vs *Vertices) VertexCount() int   { return len(vs.vertices) }
func (vs *Vertices) IndexCount() int    { return len(vs.indices) }

// VertexBytes views the vertex data as the bytes the driver reads.
func (vs *Vertices) VertexBytes() []byte {
	if len(vs.vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs.vertices))), len(vs.vertices)*VertexStride)
}

// IndexBytes views the index data as the bytes the driver reads.
func (vs *Vertices) IndexBytes() []byte {
	if len(vs.indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs.indices))), len(vs.indices)*2)
}
