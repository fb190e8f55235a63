package geom

import "fmt"

// Box3 is an inclusive axis-aligned box on the integer lattice.
type Box3 struct {
	Min, Max Point3
}

// NewBox3 returns the box spanning min..max. It panics if any axis of min is
// greater than the matching axis of max.
func NewBox3(min, max Point3) Box3 {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		panic(fmt.Sprintf("geom: inverted box %v..%v", min, max))
	}
	return Box3{Min: min, Max: max}
}

func (b Box3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the two boxes share at least one lattice point.
func (b Box3) Intersects(o Box3) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// Size returns the number of lattice points along each axis.
func (b Box3) Size() Point3 {
	return Point3{
		X: b.Max.X - b.Min.X + 1,
		Y: b.Max.Y - b.Min.Y + 1,
		Z: b.Max.Z - b.Min.Z + 1,
	}
}

func (b Box3) Volume() int {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Footprint returns the four xz corners of the box in counterclockwise order
// starting from the minimum corner.
func (b Box3) Footprint() [4]Point2 {
	return [4]Point2{
		{X: float32(b.Min.X), Z: float32(b.Min.Z)},
		{X: float32(b.Max.X), Z: float32(b.Min.Z)},
		{X: float32(b.Max.X), Z: float32(b.Max.Z)},
		{X: float32(b.Min.X), Z: float32(b.Max.Z)},
	}
}
