package bezpath

import "math"

// Path is an open or closed sequence of Segments. Consecutive segments
// define either a straight line (both adjoining handles zero) or a
// cubic Bezier curve.
type Path struct {
	segments []*Segment
	closed   bool

	start   Point // anchor of the current subpath's first segment
	current Point // anchor most recently added

	fillRule FillRule
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{segments: make([]*Segment, 0, 8)}
}

// NewPathFromSegments builds a path directly from an existing segment
// slice, taking ownership of it. Used internally by the Boolean
// engine when assembling traced result paths.
func NewPathFromSegments(segments []*Segment, closed bool) *Path {
	p := &Path{segments: segments, closed: closed}
	p.relink()
	if n := len(segments); n > 0 {
		p.start = segments[0].Anchor
		p.current = segments[n-1].Anchor
	}
	return p
}

func (p *Path) relink() {
	for i, s := range p.segments {
		s.path = p
		s.index = i
	}
}

// segmentAt returns the segment at index i, wrapping around when the
// path is closed; returns nil for an out-of-range index on an open
// path or when there are fewer than 2 segments.
func (p *Path) segmentAt(i int) *Segment {
	n := len(p.segments)
	if n == 0 {
		return nil
	}
	if p.closed {
		i = ((i % n) + n) % n
		return p.segments[i]
	}
	if i < 0 || i >= n {
		return nil
	}
	return p.segments[i]
}

// Segments returns the path's segments in order. The returned slice
// must not be mutated directly; use the Path mutation methods.
func (p *Path) Segments() []*Segment { return p.segments }

// SegmentCount returns the number of segments.
func (p *Path) SegmentCount() int { return len(p.segments) }

// IsClosed reports whether the path is closed.
func (p *Path) IsClosed() bool { return p.closed }

// SetClosed sets whether the path is closed.
func (p *Path) SetClosed(closed bool) {
	p.closed = closed
}

// FillRule returns the fill rule used by Contains when no override is
// passed.
func (p *Path) FillRule() FillRule { return p.fillRule }

// SetFillRule sets the default fill rule used by Contains.
func (p *Path) SetFillRule(rule FillRule) { p.fillRule = rule }

func (p *Path) addSegment(s *Segment) *Segment {
	s.path = p
	s.index = len(p.segments)
	p.segments = append(p.segments, s)
	return s
}

// AddSegment appends a pre-built segment to the path.
func (p *Path) AddSegment(s *Segment) *Segment {
	return p.addSegment(s)
}

// InsertSegment inserts a segment at index i, shifting later segments
// up by one.
func (p *Path) InsertSegment(i int, s *Segment) *Segment {
	s.path = p
	p.segments = append(p.segments, nil)
	copy(p.segments[i+1:], p.segments[i:])
	p.segments[i] = s
	p.relink()
	return s
}

// RemoveSegment removes the segment at index i.
func (p *Path) RemoveSegment(i int) {
	p.segments = append(p.segments[:i], p.segments[i+1:]...)
	p.relink()
}

// MoveTo starts a new subpath at (x, y). In this package a Path holds
// a single subpath; calling MoveTo on a non-empty path starts a fresh
// segment chain, discarding any previous segments (mirroring the
// single-contour convention used by the rest of the Boolean engine,
// which models multi-contour shapes as CompoundPath).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = p.segments[:0]
	p.closed = false
	p.addSegment(NewSegment(pt, Point{}, Point{}))
	p.start = pt
	p.current = pt
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.addSegment(NewSegment(pt, Point{}, Point{}))
	p.current = pt
}

// QuadraticTo appends a quadratic Bezier curve, stored internally as
// the equivalent cubic via degree elevation.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	prev := p.current
	c1 := prev.Add(ctrl.Sub(prev).Mul(2.0 / 3.0))
	c2 := pt.Add(ctrl.Sub(pt).Mul(2.0 / 3.0))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// CubicTo appends a cubic Bezier curve ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)

	if n := len(p.segments); n > 0 {
		last := p.segments[n-1]
		last.HandleOut = ctrl1.Sub(last.Anchor)
	}
	seg := NewSegment(pt, ctrl2.Sub(pt), Point{})
	p.addSegment(seg)
	p.current = pt
}

// Close marks the path as closed, connecting the last segment back to
// the first with a curve (using the first segment's HandleIn, if any
// was set via a loop back to it).
func (p *Path) Close() {
	p.closed = true
	p.current = p.start
}

// Clear removes all segments from the path.
func (p *Path) Clear() {
	p.segments = p.segments[:0]
	p.closed = false
	p.start = Point{}
	p.current = Point{}
}

// CurrentPoint returns the anchor most recently added.
func (p *Path) CurrentPoint() Point { return p.current }

// HasCurrentPoint reports whether the path has at least one segment.
func (p *Path) HasCurrentPoint() bool { return len(p.segments) > 0 }

// Curves returns the list of cubic Beziers joining consecutive
// segments (and, if closed, the closing curve from the last segment
// back to the first).
func (p *Path) Curves() []CubicBez {
	n := len(p.segments)
	if n < 2 {
		return nil
	}
	count := n - 1
	if p.closed {
		count = n
	}
	curves := make([]CubicBez, 0, count)
	for i := 0; i < count; i++ {
		a := p.segments[i]
		b := p.segmentAt(i + 1)
		curves = append(curves, CubicBez{
			P0: a.Anchor,
			P1: a.HandleOutPoint(),
			P2: b.HandleInPoint(),
			P3: b.Anchor,
		})
	}
	return curves
}

// Transform applies m to every segment, returning a new path.
func (p *Path) Transform(m Matrix) *Path {
	result := p.Clone()
	for _, s := range result.segments {
		s.Transform(m)
	}
	return result
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	segs := make([]*Segment, len(p.segments))
	for i, s := range p.segments {
		segs[i] = s.Clone()
	}
	result := NewPathFromSegments(segs, p.closed)
	result.start = p.start
	result.current = p.current
	result.fillRule = p.fillRule
	return result
}

// Reversed returns a new path with segment order and handle direction
// reversed, tracing the same boundary the opposite way.
func (p *Path) Reversed() *Path {
	n := len(p.segments)
	segs := make([]*Segment, n)
	for i, s := range p.segments {
		c := s.Clone()
		c.Reverse()
		segs[n-1-i] = c
	}
	result := NewPathFromSegments(segs, p.closed)
	if n > 0 {
		result.start = segs[0].Anchor
		result.current = segs[n-1].Anchor
	}
	return result
}

// Rectangle adds a closed rectangular subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a closed circular subpath approximated with four cubic
// Beziers using the Kappa control-point ratio.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed elliptical subpath.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * Kappa
	oy := ry * Kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc appends a circular arc from angle1 to angle2 (radians) around
// (cx, cy), split into sub-arcs of at most 90 degrees each.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.segments) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// RoundedRectangle adds a rectangle with rounded corners of radius r.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}
