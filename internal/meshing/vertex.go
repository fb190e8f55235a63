// Package meshing turns chunks of solid blocks into indexed triangle lists
// that contain only the faces exposed to air.
package meshing

import (
	"math"
	"unsafe"
)

// Vertex is one corner of a face as laid out in the vertex buffer: a
// position followed by fixed-point texture coordinates, where 0xFFFF maps
// to 1.0 once normalized by the driver.
type Vertex struct {
	Position [3]float32
	TexCoord [2]uint16
}

const (
	// VertexStride is the size of a Vertex in bytes.
	VertexStride = int(unsafe.Sizeof(Vertex{}))
	// TexCoordOffset is the byte offset of TexCoord inside a Vertex.
	TexCoordOffset = int(unsafe.Offsetof(Vertex{}.TexCoord))

	// MaxVertices is the largest vertex count a 16-bit index can address.
	MaxVertices = math.MaxUint16
)
