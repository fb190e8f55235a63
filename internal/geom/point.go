// Package geom holds the small set of integer and planar primitives shared by
// the world, visibility and rendering code.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Point2 is a point on the horizontal xz plane.
type Point2 struct {
	X, Z float32
}

// Sub returns the vector from q to p.
func (p Point2) Sub(q Point2) mgl32.Vec2 {
	return mgl32.Vec2{p.X - q.X, p.Z - q.Z}
}

// Add offsets p by v.
func (p Point2) Add(v mgl32.Vec2) Point2 {
	return Point2{X: p.X + v[0], Z: p.Z + v[1]}
}

// Dist returns the euclidean distance between p and q.
func (p Point2) Dist(q Point2) float32 {
	return p.Sub(q).Len()
}

// Point3 is a point on the integer lattice.
type Point3 struct {
	X, Y, Z int
}

func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// XZ drops the vertical axis.
func (p Point3) XZ() Point2 {
	return Point2{X: float32(p.X), Z: float32(p.Z)}
}

func (p Point3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

const twoPi = 2 * math.Pi

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(a float32) float32 {
	r := float32(math.Mod(float64(a), twoPi))
	if r < 0 {
		r += twoPi
	}
	// float32 rounding can land exactly on 2π
	if r >= twoPi {
		r = 0
	}
	return r
}
