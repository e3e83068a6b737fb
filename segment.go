package bezpath

// Segment is a single point on a Path together with the incoming and
// outgoing Bezier handles that control the shape of the curves on
// either side of it. HandleIn and HandleOut are stored as offsets
// relative to Anchor; a zero handle means the curve on that side is a
// straight line rather than a Bezier.
type Segment struct {
	Anchor    Point
	HandleIn  Point
	HandleOut Point

	path  *Path
	index int
}

// NewSegment creates a standalone segment with the given anchor and
// relative handle offsets.
func NewSegment(anchor, handleIn, handleOut Point) *Segment {
	return &Segment{Anchor: anchor, HandleIn: handleIn, HandleOut: handleOut}
}

// Path returns the path the segment currently belongs to, or nil if
// it has not been added to one.
func (s *Segment) Path() *Path { return s.path }

// Index returns the segment's position within its owning path's
// segment list.
func (s *Segment) Index() int { return s.index }

// HasHandleIn reports whether the incoming handle is non-zero.
func (s *Segment) HasHandleIn() bool { return !s.HandleIn.IsZero() }

// HasHandleOut reports whether the outgoing handle is non-zero.
func (s *Segment) HasHandleOut() bool { return !s.HandleOut.IsZero() }

// HandleInPoint returns the absolute position of the incoming handle.
func (s *Segment) HandleInPoint() Point { return s.Anchor.Add(s.HandleIn) }

// HandleOutPoint returns the absolute position of the outgoing handle.
func (s *Segment) HandleOutPoint() Point { return s.Anchor.Add(s.HandleOut) }

// Previous returns the segment before this one in its path, wrapping
// around for a closed path. Returns nil if unattached or the path has
// fewer than two segments.
func (s *Segment) Previous() *Segment {
	if s.path == nil {
		return nil
	}
	return s.path.segmentAt(s.index - 1)
}

// Next returns the segment after this one in its path, wrapping
// around for a closed path. Returns nil if unattached or the path has
// fewer than two segments.
func (s *Segment) Next() *Segment {
	if s.path == nil {
		return nil
	}
	return s.path.segmentAt(s.index + 1)
}

// CurveOut returns the cubic Bezier from this segment to the next, or
// (CubicBez{}, false) if there is no next segment (open path, last
// segment).
func (s *Segment) CurveOut() (CubicBez, bool) {
	next := s.Next()
	if next == nil {
		return CubicBez{}, false
	}
	return CubicBez{
		P0: s.Anchor,
		P1: s.HandleOutPoint(),
		P2: next.HandleInPoint(),
		P3: next.Anchor,
	}, true
}

// CurveIn returns the cubic Bezier from the previous segment to this
// one, or (CubicBez{}, false) if there is no previous segment.
func (s *Segment) CurveIn() (CubicBez, bool) {
	prev := s.Previous()
	if prev == nil {
		return CubicBez{}, false
	}
	return prev.CurveOut()
}

// Reverse swaps the incoming and outgoing handles, used when a path's
// direction is reversed.
func (s *Segment) Reverse() {
	s.HandleIn, s.HandleOut = s.HandleOut, s.HandleIn
}

// Clone returns a detached copy of the segment (not attached to any
// path).
func (s *Segment) Clone() *Segment {
	return &Segment{Anchor: s.Anchor, HandleIn: s.HandleIn, HandleOut: s.HandleOut}
}

// Transform applies m to the segment's anchor and both handle offsets
// (handles are transformed as vectors, ignoring translation).
func (s *Segment) Transform(m Matrix) {
	s.Anchor = m.TransformPoint(s.Anchor)
	s.HandleIn = m.TransformVector(s.HandleIn)
	s.HandleOut = m.TransformVector(s.HandleOut)
}

// SmoothType selects the tangent-estimation formula Segment.Smooth
// uses to derive handles from a segment's neighbors.
type SmoothType int

const (
	// SmoothCatmullRom fits a uniform Catmull-Rom spline through the
	// segment and its immediate neighbors, giving both handles the
	// same length (mirrored around the anchor).
	SmoothCatmullRom SmoothType = iota
	// SmoothGeometric weights the tangent by the chord lengths to
	// each neighbor, letting the incoming and outgoing handles differ
	// in length when the neighbors are unevenly spaced.
	SmoothGeometric
)

// Smooth recomputes the segment's handles from its Previous and Next
// neighbors so the path passes through it smoothly, per type (default
// SmoothCatmullRom) scaled by factor (default 1 when 0). Segments at
// an open path's ends (missing a neighbor) have their handle on the
// missing side cleared instead of estimated. A no-op on a detached or
// neighborless segment.
func (s *Segment) Smooth(kind SmoothType, factor float64) {
	if factor == 0 {
		factor = 1
	}
	prev, next := s.Previous(), s.Next()
	if prev == nil && next == nil {
		return
	}
	if prev == nil {
		s.HandleIn = Point{}
		if next != nil {
			s.HandleOut = next.Anchor.Sub(s.Anchor).Mul(factor / 3)
		}
		return
	}
	if next == nil {
		s.HandleOut = Point{}
		s.HandleIn = prev.Anchor.Sub(s.Anchor).Mul(factor / 3)
		return
	}

	switch kind {
	case SmoothGeometric:
		d1 := s.Anchor.Distance(prev.Anchor)
		d2 := s.Anchor.Distance(next.Anchor)
		if d1 <= Epsilon || d2 <= Epsilon {
			s.HandleIn, s.HandleOut = Point{}, Point{}
			return
		}
		toPrev := prev.Anchor.Sub(s.Anchor).Normalize()
		toNext := next.Anchor.Sub(s.Anchor).Normalize()
		// Weighted bisector of the two chord directions, oriented from
		// prev to next, so a straight run of evenly-spaced points
		// produces zero curvature.
		dir := toNext.Sub(toPrev).Normalize()
		s.HandleIn = dir.Negate().Mul(factor * d1 / 3)
		s.HandleOut = dir.Mul(factor * d2 / 3)
	default: // SmoothCatmullRom
		tangent := next.Anchor.Sub(prev.Anchor)
		s.HandleOut = tangent.Mul(factor / 6)
		s.HandleIn = tangent.Mul(-factor / 6)
	}
}
