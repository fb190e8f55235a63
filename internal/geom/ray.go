package geom

import "github.com/go-gl/mathgl/mgl32"

// Segment2 is a closed line segment on the xz plane.
type Segment2 struct {
	Start, End Point2
}

func (s Segment2) Reversed() Segment2 {
	return Segment2{Start: s.End, End: s.Start}
}

// Ray2 is a half-line on the xz plane. Dir need not be normalized.
type Ray2 struct {
	Origin Point2
	Dir    mgl32.Vec2
}

// perpDot is the z component of the 3D cross product of a and b.
func perpDot(a, b mgl32.Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

// IntersectSegment returns the first point where the ray meets the segment.
// Parallel non-collinear inputs never intersect. When the segment lies on the
// ray's line the result is the origin if the segment straddles it, otherwise
// the segment endpoint nearest the origin that lies ahead of it.
func (r Ray2) IntersectSegment(s Segment2) (Point2, bool) {
	seg := s.End.Sub(s.Start)
	cross1 := perpDot(r.Dir, seg)
	qmp := s.Start.Sub(r.Origin)
	cross2 := perpDot(qmp, r.Dir)

	if cross1 == 0 {
		if cross2 != 0 {
			return Point2{}, false
		}
		dot1 := qmp.Dot(r.Dir)
		dot2 := s.End.Sub(r.Origin).Dot(r.Dir)
		switch {
		case (dot1 <= 0 && dot2 >= 0) || (dot1 >= 0 && dot2 <= 0):
			return r.Origin, true
		case dot1 > 0 && dot2 > 0:
			if dot1 <= dot2 {
				return s.Start, true
			}
			return s.End, true
		default:
			return Point2{}, false
		}
	}

	t := perpDot(qmp, seg) / cross1
	u := cross2 / cross1
	if t < 0 || u < 0 || u > 1 {
		return Point2{}, false
	}
	return r.Origin.Add(r.Dir.Mul(t)), true
}
