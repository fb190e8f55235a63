package meshing

import "cardboard/internal/world"

// Fixed-point texture coordinates for the atlas quadrant corners.
const (
	tex0    uint16 = 0
	texHalf uint16 = 0x7FFF
	texOne  uint16 = 0xFFFF
)

// Face identifies one side of a unit cube.
type Face int

const (
	FaceLeft Face = iota
	FaceRight
	FaceDown
	FaceUp
	FaceForward
	FaceBack
)

var faceNames = [...]string{"left", "right", "down", "up", "forward", "back"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "unknown"
	}
	return faceNames[f]
}

// CubeFace is the template for one side of a cube centered on the origin.
// Direction points at the neighbor that hides the face when solid.
type CubeFace struct {
	Direction world.Block
	Vertices  [4]Vertex
}

// QuadIndices splits a face's four vertices into two triangles.
var QuadIndices = [6]uint16{0, 1, 3, 3, 1, 2}

func v(x, y, z float32, s, t uint16) Vertex {
	return Vertex{Position: [3]float32{x, y, z}, TexCoord: [2]uint16{s, t}}
}

// The down face samples the top-left atlas tile, the up face the bottom-left
// tile and every side the bottom-right tile. Winding is counterclockwise
// seen from outside the cube.
var cubeFaces = [6]CubeFace{
	FaceLeft: {
		Direction: world.Block{X: -1},
		Vertices: [4]Vertex{
			v(-0.5, -0.5, -0.5, texHalf, texOne),
			v(-0.5, -0.5, 0.5, texOne, texOne),
			v(-0.5, 0.5, 0.5, texOne, texHalf),
			v(-0.5, 0.5, -0.5, texHalf, texHalf),
		},
	},
	FaceRight: {
		Direction: world.Block{X: 1},
		Vertices: [4]Vertex{
			v(0.5, -0.5, 0.5, texHalf, texOne),
			v(0.5, -0.5, -0.5, texOne, texOne),
			v(0.5, 0.5, -0.5, texOne, texHalf),
			v(0.5, 0.5, 0.5, texHalf, texHalf),
		},
	},
	FaceDown: {
		Direction: world.Block{Y: -1},
		Vertices: [4]Vertex{
			v(-0.5, -0.5, -0.5, tex0, texHalf),
			v(0.5, -0.5, -0.5, texHalf, texHalf),
			v(0.5, -0.5, 0.5, texHalf, tex0),
			v(-0.5, -0.5, 0.5, tex0, tex0),
		},
	},
	FaceUp: {
		Direction: world.Block{Y: 1},
		Vertices: [4]Vertex{
			v(-0.5, 0.5, 0.5, tex0, texOne),
			v(0.5, 0.5, 0.5, texHalf, texOne),
			v(0.5, 0.5, -0.5, texHalf, texHalf),
			v(-0.5, 0.5, -0.5, tex0, texHalf),
		},
	},
	FaceForward: {
		Direction: world.Block{Z: -1},
		Vertices: [4]Vertex{
			v(0.5, -0.5, -0.5, texHalf, texOne),
			v(-0.5, -0.5, -0.5, texOne, texOne),
			v(-0.5, 0.5, -0.5, texOne, texHalf),
			v(0.5, 0.5, -0.5, texHalf, texHalf),
		},
	},
	FaceBack: {
		Direction: world.Block{Z: 1},
		Vertices: [4]Vertex{
			v(-0.5, -0.5, 0.5, texHalf, texOne),
			v(0.5, -0.5, 0.5, texOne, texOne),
			v(0.5, 0.5, 0.5, texOne, texHalf),
			v(-0.5, 0.5, 0.5, texHalf, texHalf),
		},
	},
}

// CubeFaces returns a copy of the six face templates in Face order.
func CubeFaces() [6]CubeFace {
	return cubeFaces
}
