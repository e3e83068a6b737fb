package bezpath

import "math"

// Line is a parametric line through Origin in direction Vector. When
// Infinite is false the line is treated as the segment from Origin to
// Origin+Vector; when true it extends in both directions.
type Line struct {
	Origin   Point
	Vector   Point
	Infinite bool
}

// NewLine builds a finite line segment from p0 to p1.
func NewLine(p0, p1 Point) Line {
	return Line{Origin: p0, Vector: p1.Sub(p0)}
}

// NewInfiniteLine builds an infinite line through p0 in the direction
// of p1-p0.
func NewInfiniteLine(p0, p1 Point) Line {
	return Line{Origin: p0, Vector: p1.Sub(p0), Infinite: true}
}

// Start returns the segment's start point (Origin).
func (l Line) Start() Point { return l.Origin }

// End returns the segment's end point (Origin+Vector). Meaningless for
// an infinite line beyond giving a second point on it.
func (l Line) End() Point { return l.Origin.Add(l.Vector) }

// Eval evaluates the line at parameter t; t=0 is Origin, t=1 is End().
func (l Line) Eval(t float64) Point {
	return l.Origin.Add(l.Vector.Mul(t))
}

// Side returns -1, 0, or 1 according to whether point is to the right
// of, on, or to the left of the line (treated as infinite for this
// test), using the sign of the cross product.
func (l Line) Side(point Point) int {
	v := point.Sub(l.Origin)
	cross := l.Vector.Cross(v)
	if cross > Epsilon {
		return 1
	}
	if cross < -Epsilon {
		return -1
	}
	return 0
}

// SignedDistance returns the signed perpendicular distance from point
// to the (infinite extension of the) line.
func (l Line) SignedDistance(point Point) float64 {
	len := l.Vector.Length()
	if len == 0 {
		return point.Sub(l.Origin).Length()
	}
	v := point.Sub(l.Origin)
	return l.Vector.Cross(v) / len
}

// Distance returns the unsigned perpendicular distance from point to
// the line.
func (l Line) Distance(point Point) float64 {
	return math.Abs(l.SignedDistance(point))
}

// Intersect finds the intersection of l with other. When asInfinite is
// true, both lines are treated as infinite regardless of their
// Infinite field; otherwise a segment-only intersection is required.
// Returns (point, true) on success; (zero, false) for parallel lines
// or an out-of-segment intersection.
func (l Line) Intersect(other Line, asInfinite bool) (Point, bool) {
	cross := l.Vector.Cross(other.Vector)
	if IsZero(cross) {
		return Point{}, false // parallel (or colinear, handled by caller)
	}
	d := other.Origin.Sub(l.Origin)
	t := d.Cross(other.Vector) / cross
	u := d.Cross(l.Vector) / cross

	inf := asInfinite || (l.Infinite && other.Infinite)
	if !inf {
		const eps = CurveTimeEpsilon
		if !l.Infinite && (t < -eps || t > 1+eps) {
			return Point{}, false
		}
		if !other.Infinite && (u < -eps || u > 1+eps) {
			return Point{}, false
		}
	}
	return l.Eval(t), true
}

// IsCollinear reports whether l and other point in parallel directions.
func (l Line) IsCollinear(other Line) bool {
	return l.Vector.IsCollinear(other.Vector)
}

// IsOrthogonal reports whether l and other are perpendicular.
func (l Line) IsOrthogonal(other Line) bool {
	return l.Vector.IsOrthogonal(other.Vector)
}

// BoundingBox returns the axis-aligned bounding box of the segment
// form of the line (Origin to End()).
func (l Line) BoundingBox() Rect {
	return NewRect(l.Start(), l.End())
}

// Length returns the length of Vector (the segment's length).
func (l Line) Length() float64 {
	return l.Vector.Length()
}

// Midpoint returns the midpoint of the segment form of the line.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// Reversed returns a copy of the line with start/end swapped.
func (l Line) Reversed() Line {
	return Line{Origin: l.End(), Vector: l.Vector.Mul(-1), Infinite: l.Infinite}
}
