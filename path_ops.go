package bezpath

import "math"

// Path measurements: area, bounding box, flattening, and arc length,
// all derived from the path's curve list (Curves()).

// Area returns the signed area enclosed by the path using Green's
// theorem. Positive for clockwise paths, negative for counter-
// clockwise. Open paths are implicitly closed by a straight segment
// from the last anchor back to the first for this computation.
func (p *Path) Area() float64 {
	curves := p.curvesClosed()
	var area float64
	for _, c := range curves {
		area += cubicArea(c.P0, c.P1, c.P2, c.P3)
	}
	return area
}

// curvesClosed returns Curves(), adding the implicit closing curve
// when the path is open but has at least two segments (used by
// measurements that only make sense on a closed contour).
func (p *Path) curvesClosed() []CubicBez {
	curves := p.Curves()
	if p.closed || len(p.segments) < 2 {
		return curves
	}
	first, last := p.segments[0], p.segments[len(p.segments)-1]
	curves = append(curves, CubicBez{P0: last.Anchor, P1: last.Anchor, P2: first.Anchor, P3: first.Anchor})
	return curves
}

// cubicArea computes the signed-area contribution of a cubic Bezier
// segment via the exact polynomial integral of (x dy - y dx)/2.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// IsClockwise reports whether the path's implied closed contour winds
// clockwise (positive signed area).
func (p *Path) IsClockwise() bool {
	return p.Area() > 0
}

// SetClockwise reverses the path in place if needed so that its
// winding direction matches clockwise.
func (p *Path) SetClockwise(clockwise bool) {
	if p.IsClockwise() != clockwise {
		rev := p.Reversed()
		p.segments = rev.segments
		p.closed = rev.closed
		p.relink()
		p.start, p.current = rev.start, rev.current
	}
}

// BoundingBox returns the tight axis-aligned bounding box of the path,
// computed from each curve's analytic bounding box.
func (p *Path) BoundingBox() Rect {
	if len(p.segments) == 0 {
		return Rect{}
	}
	if len(p.segments) == 1 {
		return NewRect(p.segments[0].Anchor, p.segments[0].Anchor)
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	for _, c := range p.Curves() {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}

// Flatten returns a polyline approximation of the path's curves,
// including the starting anchor, accurate to within tolerance.
func (p *Path) Flatten(tolerance float64) []Point {
	var points []Point
	p.FlattenCallback(tolerance, func(pt Point) {
		points = append(points, pt)
	})
	return points
}

// FlattenCallback invokes fn for each point of the flattened path,
// starting with the first anchor.
func (p *Path) FlattenCallback(tolerance float64, fn func(pt Point)) {
	if len(p.segments) == 0 {
		return
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}
	fn(p.segments[0].Anchor)
	for _, c := range p.Curves() {
		flattenCubicRecursive(c, tolerance, fn)
	}
}

func flattenCubicRecursive(c CubicBez, tolerance float64, fn func(pt Point)) {
	if c.IsFlatEnough(tolerance) {
		fn(c.P3)
		return
	}
	left, right := c.Subdivide()
	flattenCubicRecursive(left, tolerance, fn)
	flattenCubicRecursive(right, tolerance, fn)
}

// Length returns the total arc length of the path's curves (and, if
// closed, the closing curve).
func (p *Path) Length() float64 {
	var length float64
	for _, c := range p.Curves() {
		length += c.Length()
	}
	return length
}

// PointAt returns the point on the path at the given arc-length
// offset from the start, together with whether offset fell within
// [0, Length()].
func (p *Path) PointAt(offset float64) (Point, bool) {
	c, t, ok := p.curveAndTimeAt(offset)
	if !ok {
		return Point{}, false
	}
	return c.Eval(t), true
}

// TangentAt returns the unit tangent vector on the path at the given
// arc-length offset from the start.
func (p *Path) TangentAt(offset float64) (Vec2, bool) {
	c, t, ok := p.curveAndTimeAt(offset)
	if !ok {
		return Vec2{}, false
	}
	return c.Tangent(t).Normalize(), true
}

// NormalAt returns the unit normal vector on the path at the given
// arc-length offset from the start.
func (p *Path) NormalAt(offset float64) (Vec2, bool) {
	c, t, ok := p.curveAndTimeAt(offset)
	if !ok {
		return Vec2{}, false
	}
	return c.Normal(t), true
}

func (p *Path) curveAndTimeAt(offset float64) (CubicBez, float64, bool) {
	curves := p.Curves()
	if len(curves) == 0 || offset < -GeometricEpsilon {
		return CubicBez{}, 0, false
	}
	remaining := offset
	for _, c := range curves {
		l := c.Length()
		if remaining <= l+GeometricEpsilon {
			t, ok := c.GetTimeAt(math.Max(0, remaining), 0)
			if !ok {
				t = 1
			}
			return c, t, true
		}
		remaining -= l
	}
	last := curves[len(curves)-1]
	return last, 1, true
}

// ReduceOption configures Path.Reduce.
type ReduceOption func(*reduceOptions)

type reduceOptions struct {
	simplify bool
}

// WithReduceSimplify additionally runs Path.Simplify after removing
// degenerate segments.
func WithReduceSimplify(enabled bool) ReduceOption {
	return func(o *reduceOptions) { o.simplify = enabled }
}

// Reduce removes segments that contribute nothing to the path's shape:
// zero-length segments coincident with a neighbor, and straight,
// handle-free segments that lie exactly on the chord between their
// neighbors (a redundant point on an otherwise-straight run). At least
// two segments are always kept so the path never collapses to a point.
func (p *Path) Reduce(opts ...ReduceOption) {
	var o reduceOptions
	for _, opt := range opts {
		opt(&o)
	}

	for i := 0; i < len(p.segments) && len(p.segments) > 2; {
		s := p.segments[i]
		prev, next := s.Previous(), s.Next()
		if prev == nil || next == nil || prev == s || next == s {
			i++
			continue
		}
		redundant := !s.HasHandleIn() && !s.HasHandleOut() &&
			(s.Anchor.GetDistance(prev.Anchor, false) <= Epsilon ||
				s.Anchor.GetDistance(next.Anchor, false) <= Epsilon ||
				NewLine(prev.Anchor, next.Anchor).Distance(s.Anchor) <= GeometricEpsilon)
		if redundant {
			p.RemoveSegment(i)
			continue
		}
		i++
	}

	if o.simplify {
		p.Simplify(2.5)
	}
}

// Smooth recomputes every segment's handles from its neighbors via
// Segment.Smooth, reshaping the path into a smooth curve through its
// existing anchors.
func (p *Path) Smooth(kind SmoothType, factor float64) {
	for _, s := range p.segments {
		s.Smooth(kind, factor)
	}
}

// Simplify is a thin entry point for path-fitting simplification
// (reducing the segment count while staying within tolerance of the
// original curve). The actual curve-fitting algorithm is an external
// collaborator (spec §1 Non-goals) not implemented by this engine;
// Simplify reports false (no change made) rather than silently
// approximating with a lesser algorithm.
func (p *Path) Simplify(tolerance float64) bool {
	return false
}
