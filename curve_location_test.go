package bezpath

import "testing"

func straightSquarePath() *Path {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	return p
}

func TestNewCurveLocation_ReanchorsNearOne(t *testing.T) {
	p := straightSquarePath()
	seg := p.Segments()[0]

	loc := NewCurveLocation(p, seg, 1-CurveTimeEpsilon/2)
	if loc.segment != seg.Next() {
		t.Fatalf("expected re-anchor to the next segment, got segment %d", loc.Index())
	}
	if loc.time != 0 {
		t.Fatalf("expected re-anchored time 0, got %v", loc.time)
	}
}

func TestNewCurveLocation_SnapsNearZero(t *testing.T) {
	p := straightSquarePath()
	seg := p.Segments()[0]

	loc := NewCurveLocation(p, seg, CurveTimeEpsilon/2)
	if loc.time != 0 {
		t.Fatalf("expected time snapped to 0, got %v", loc.time)
	}
	if loc.segment != seg {
		t.Fatalf("expected location to stay on the original segment")
	}
}

func TestCurveLocation_Equals(t *testing.T) {
	p := straightSquarePath()
	seg := p.Segments()[0]

	a := NewCurveLocation(p, seg, 0.5)
	b := NewCurveLocation(p, seg, 0.5)
	if !a.Equals(b) {
		t.Fatalf("identical (path, segment, time) locations should be equal")
	}

	q := straightSquarePath()
	c := NewCurveLocation(q, q.Segments()[0], 0.5)
	if a.Equals(c) {
		t.Fatalf("locations on different path instances should not be equal")
	}
}

func TestCurveLocation_IsTouchingVsCrossing(t *testing.T) {
	// Two lines that cross transversally.
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(10, 10)
	b := NewPath()
	b.MoveTo(0, 10)
	b.LineTo(10, 0)

	la := NewCurveLocation(a, a.Segments()[0], 0.5)
	lb := NewCurveLocation(b, b.Segments()[0], 0.5)
	la.twin, lb.twin = lb, la

	if la.IsTouching() {
		t.Errorf("perpendicular crossing lines should not be classified as touching")
	}
	if !la.IsCrossing() {
		t.Errorf("perpendicular crossing lines should be classified as crossing")
	}

	// Two lines tangent at a shared point, running in the same direction.
	c := NewPath()
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	d := NewPath()
	d.MoveTo(5, 0)
	d.LineTo(15, 0)

	lc := NewCurveLocation(c, c.Segments()[0], 0.5)
	ld := NewCurveLocation(d, d.Segments()[0], 0.0)
	lc.twin, ld.twin = ld, lc

	if !lc.IsTouching() {
		t.Errorf("collinear overlapping lines should be classified as touching, not crossing")
	}
	if lc.IsCrossing() {
		t.Errorf("collinear overlapping lines should not be classified as crossing")
	}
}

func TestLinkLocations(t *testing.T) {
	p := straightSquarePath()
	seg := p.Segments()[0]
	a := NewCurveLocation(p, seg, 0.25)
	b := NewCurveLocation(p, seg, 0.75)

	linkLocations(a, b)
	if a.linked != b || b.linked != a {
		t.Fatalf("linkLocations should join both locations' chains")
	}
}

func TestInsertLocationSorted_OrdersAndDedups(t *testing.T) {
	p := straightSquarePath()
	segs := p.Segments()

	var locs []*CurveLocation
	locs = insertLocationSorted(locs, NewCurveLocation(p, segs[2], 0.5))
	locs = insertLocationSorted(locs, NewCurveLocation(p, segs[0], 0.5))
	locs = insertLocationSorted(locs, NewCurveLocation(p, segs[1], 0.1))

	if len(locs) != 3 {
		t.Fatalf("expected 3 distinct locations, got %d", len(locs))
	}
	for i := 1; i < len(locs); i++ {
		prevIdx, curIdx := locs[i-1].Index(), locs[i].Index()
		if prevIdx > curIdx {
			t.Fatalf("locations not sorted by segment index: %d before %d", prevIdx, curIdx)
		}
	}

	// Re-inserting a near-duplicate of an existing point should merge,
	// not grow the slice.
	dup := NewCurveLocation(p, segs[0], 0.5+CurveTimeEpsilon/2)
	locs = insertLocationSorted(locs, dup)
	if len(locs) != 3 {
		t.Fatalf("expected duplicate insertion to merge, slice grew to %d", len(locs))
	}
}

func TestCurveLocation_OffsetAndPathOffset(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	seg0 := p.Segments()[0]
	loc := NewCurveLocation(p, seg0, 0.5)
	if got := loc.Offset(); got < 4.999 || got > 5.001 {
		t.Errorf("Offset() on first curve at t=0.5 = %v, want ~5", got)
	}

	seg1 := p.Segments()[1]
	loc2 := NewCurveLocation(p, seg1, 0.5)
	if got := loc2.PathOffset(); got < 14.999 || got > 15.001 {
		t.Errorf("PathOffset() on second curve at t=0.5 = %v, want ~15", got)
	}
}
