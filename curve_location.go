package bezpath

// CurveLocation identifies a point on a path by the curve (segment
// pair) it falls on and the curve-time parameter within it. Locations
// near t=1 are re-anchored to t=0 of the following curve so that two
// locations referring to the same geometric point always compare
// equal regardless of which side of a segment boundary they were
// found from.
type CurveLocation struct {
	path    *Path
	segment *Segment // the segment starting the curve this location is on
	time    float64
	point   Point

	// linked is the location paired with this one by linkLocations.
	// linkLocations joins exactly two locations to each other; a later
	// call on either location replaces its earlier link, so three or
	// more locations at one point do not form a chain that reaches
	// them all.
	linked *CurveLocation
	// twin is the corresponding location on the other path of an
	// intersection pair.
	twin *CurveLocation
}

// NewCurveLocation constructs a location on the curve starting at
// segment, at parameter t. A t within CurveTimeEpsilon of 1 is
// re-expressed as t=0 on the next segment, keeping locations at
// shared segment boundaries canonical.
func NewCurveLocation(path *Path, segment *Segment, t float64) *CurveLocation {
	if t >= 1-CurveTimeEpsilon {
		if next := segment.Next(); next != nil {
			segment, t = next, 0
		} else {
			t = 1
		}
	} else if t <= CurveTimeEpsilon {
		t = 0
	}

	loc := &CurveLocation{path: path, segment: segment, time: t}
	if c, ok := segment.CurveOut(); ok {
		loc.point = c.Eval(t)
	} else {
		loc.point = segment.Anchor
	}
	return loc
}

// Path returns the owning path.
func (l *CurveLocation) Path() *Path { return l.path }

// Segment returns the segment that starts the curve this location
// lies on.
func (l *CurveLocation) Segment() *Segment { return l.segment }

// Index returns the index of Segment() within its path.
func (l *CurveLocation) Index() int { return l.segment.Index() }

// Time returns the curve-time parameter in [0, 1]; it is 1 only at
// the end of an open path's last curve.
func (l *CurveLocation) Time() float64 { return l.time }

// Point returns the location's world-space point.
func (l *CurveLocation) Point() Point { return l.point }

// Curve returns the cubic Bezier this location lies on.
func (l *CurveLocation) Curve() (CubicBez, bool) {
	return l.segment.CurveOut()
}

// Offset returns the arc-length offset of this location from the
// start of its curve.
func (l *CurveLocation) Offset() float64 {
	c, ok := l.Curve()
	if !ok {
		return 0
	}
	return c.GetLength(0, l.time)
}

// PathOffset returns the arc-length offset of this location from the
// start of its owning path.
func (l *CurveLocation) PathOffset() float64 {
	var offset float64
	for _, c := range l.path.Curves() {
		if c.P0 == l.segment.Anchor {
			return offset + l.Offset()
		}
		offset += c.Length()
	}
	return offset
}

// Equals reports whether l and other refer to the same point on the
// same path within GeometricEpsilon, ignoring which curve/segment
// each nominally sits on (so a location re-anchored at a segment
// boundary still matches one expressed on the adjoining curve).
func (l *CurveLocation) Equals(other *CurveLocation) bool {
	if other == nil || l.path != other.path {
		return false
	}
	return l.point.GetDistance(other.point, false) <= GeometricEpsilon
}

// IsTouching reports whether the intersection at this location is a
// tangential touch rather than a transversal crossing: the two
// curves' tangents at the shared point are (anti)parallel.
func (l *CurveLocation) IsTouching() bool {
	if l.twin == nil {
		return false
	}
	c1, ok1 := l.Curve()
	c2, ok2 := l.twin.Curve()
	if !ok1 || !ok2 {
		return false
	}
	t1 := c1.Tangent(l.time)
	t2 := c2.Tangent(l.twin.time)
	if t1.IsZero() {
		t1 = Vec2(c1.P3.Sub(c1.P0))
	}
	if t2.IsZero() {
		t2 = Vec2(c2.P3.Sub(c2.P0))
	}
	if t1.IsZero() || t2.IsZero() {
		return false
	}
	return t1.Normalize().Approx(t2.Normalize(), TrigonometricEpsilon) ||
		t1.Normalize().Approx(t2.Normalize().Neg(), TrigonometricEpsilon)
}

// IsCrossing reports whether the intersection at this location is a
// transversal crossing (the complement of IsTouching, when a twin is
// set).
func (l *CurveLocation) IsCrossing() bool {
	return l.twin != nil && !l.IsTouching()
}

// linkLocations links a and b to each other.
func linkLocations(a, b *CurveLocation) {
	a.linked, b.linked = b, a
}

// insertLocationSorted inserts loc into locs, sorted by (segment
// index, time). If an existing entry on the same segment is at the
// same point (within GeometricEpsilon), loc is not added and the
// slice is returned unchanged. Returns the updated slice.
func insertLocationSorted(locs []*CurveLocation, loc *CurveLocation) []*CurveLocation {
	for _, existing := range locs {
		if existing.segment == loc.segment && existing.Equals(loc) {
			return locs
		}
	}
	i := 0
	for i < len(locs) {
		a, b := locs[i], loc
		if a.segment.Index() > b.segment.Index() ||
			(a.segment.Index() == b.segment.Index() && a.time > b.time) {
			break
		}
		i++
	}
	locs = append(locs, nil)
	copy(locs[i+1:], locs[i:])
	locs[i] = loc
	return locs
}
