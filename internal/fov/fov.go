// Package fov decides which parts of the xz plane a camera can see.
//
// Angles are in radians, measured clockwise from the -z axis toward +x, and
// kept normalized to [0, 2π).
package fov

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cardboard/internal/geom"
)

// FOV is a horizontal wedge with its apex at Vertex.
type FOV struct {
	Vertex      geom.Point2
	CenterAngle float32
	ViewAngle   float32
}

// New returns a field of view. viewAngle must be in (0, 2π).
func New(vertex geom.Point2, centerAngle, viewAngle float32) FOV {
	if !(viewAngle > 0 && viewAngle < 2*math.Pi) {
		panic(fmt.Sprintf("fov: view angle %v outside (0, 2π)", viewAngle))
	}
	return FOV{
		Vertex:      vertex,
		CenterAngle: geom.NormalizeAngle(centerAngle),
		ViewAngle:   viewAngle,
	}
}

// IncCenterAngle rotates the view clockwise by delta.
func (f *FOV) IncCenterAngle(delta float32) {
	f.CenterAngle = geom.NormalizeAngle(f.CenterAngle + delta)
}

// CenterDirection is the unit vector along the center of the view.
func (f FOV) CenterDirection() mgl32.Vec2 {
	s, c := math.Sincos(float64(f.CenterAngle))
	return mgl32.Vec2{float32(s), float32(-c)}
}

func (f FOV) angleTo(p geom.Point2) float32 {
	d := p.Sub(f.Vertex)
	return geom.NormalizeAngle(float32(math.Atan2(float64(d[0]), float64(-d[1]))))
}

// PointVisible reports whether p lies inside the wedge, edges included.
func (f FOV) PointVisible(p geom.Point2) bool {
	a := f.angleTo(p)
	left := geom.NormalizeAngle(f.CenterAngle - f.ViewAngle/2)
	right := geom.NormalizeAngle(f.CenterAngle + f.ViewAngle/2)
	if left <= right {
		return left <= a && a <= right
	}
	// wedge straddles the zero direction
	if a >= left {
		return a <= right+2*math.Pi
	}
	a += 2 * math.Pi
	return left <= a && a <= right+2*math.Pi
}

// exterior returns the two wedges that cover everything outside f: the one
// counterclockwise past the right edge and the one clockwise past the left
// edge. Both are bounded by the direction opposite the center.
func (f FOV) exterior() (FOV, FOV) {
	width := (2*math.Pi - f.ViewAngle) / 2
	quarter := f.ViewAngle / 4
	return New(f.Vertex, f.CenterAngle+math.Pi/2+quarter, width),
		New(f.Vertex, f.CenterAngle-math.Pi/2-quarter, width)
}

// SegmentVisible reports whether any point of s lies inside the wedge.
func (f FOV) SegmentVisible(s geom.Segment2) bool {
	if f.PointVisible(s.Start) || f.PointVisible(s.End) {
		return true
	}
	// Both ends are outside. A segment wholly inside one exterior wedge
	// cannot cross into the view.
	a, b := f.exterior()
	if a.PointVisible(s.Start) && a.PointVisible(s.End) {
		return false
	}
	if b.PointVisible(s.Start) && b.PointVisible(s.End) {
		return false
	}
	// The ends straddle the view. Either the segment passes in front of the
	// vertex and crosses the center ray, or it passes behind and misses.
	ray := geom.Ray2{Origin: f.Vertex, Dir: f.CenterDirection()}
	_, hit := ray.IntersectSegment(s)
	return hit
}

// ChunkVisible reports whether any edge of the xz footprint of bounds is
// visible. The vertical extent is ignored.
func (f FOV) ChunkVisible(bounds geom.Box3) bool {
	corners := bounds.Footprint()
	for i := range corners {
		edge := geom.Segment2{Start: corners[i], End: corners[(i+1)%len(corners)]}
		if f.SegmentVisible(edge) {
			return true
		}
	}
	return false
}
