package bezpath

import "math"

// clipPair is one candidate (parameter-range) pair carried through the
// fat-line clipping recursion.
type clipPair struct {
	t1a, t1b float64
	t2a, t2b float64
}

// GetCurveIntersections returns the parameter pairs (t1, t2) at which
// curve c1 (over the sub-range [t1a,t1b]) and c2 (over [t2a,t2b])
// cross, found via Sederberg-Nishita fat-line clipping. maxDepth
// bounds the recursion (the spec default is 40); once exceeded the
// remaining interval is reported if the curves' points at its
// midpoints lie within 10*GeometricEpsilon, and dropped otherwise.
func GetCurveIntersections(c1, c2 CubicBez, maxDepth int) []clipPair {
	if c1.IsStraight() && c2.IsStraight() {
		if t1, t2, ok := straightStraightIntersection(c1, c2); ok {
			return []clipPair{{t1, t1, t2, t2}}
		}
		return nil
	}

	var results []clipPair
	clipRecursive(c1, c2, 0, 1, 0, 1, maxDepth, &results)
	return dedupClipPairs(results)
}

func straightStraightIntersection(c1, c2 CubicBez) (float64, float64, bool) {
	l1 := NewLine(c1.P0, c1.P3)
	l2 := NewLine(c2.P0, c2.P3)
	p, ok := l1.Intersect(l2, false)
	if !ok {
		return 0, 0, false
	}
	t1, ok1 := c1.GetTimeOf(p)
	t2, ok2 := c2.GetTimeOf(p)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return t1, t2, true
}

// clipRecursive narrows [t1a,t1b]x[t2a,t2b] using c2's fat line to
// clip c1 and vice versa, alternating each round, until both ranges
// are tight enough to report as an intersection or one range has
// collapsed to nothing (no intersection in this branch).
func clipRecursive(c1, c2 CubicBez, t1a, t1b, t2a, t2b float64, depth int, out *[]clipPair) {
	if depth <= 0 {
		mid1, mid2 := 0.5*(t1a+t1b), 0.5*(t2a+t2b)
		if c1.Eval(mid1).GetDistance(c2.Eval(mid2), false) <= GeometricEpsilon*10 {
			*out = append(*out, clipPair{t1a, t1b, t2a, t2b})
		}
		return
	}

	sub1 := c1.Subsegment(t1a, t1b)
	sub2 := c2.Subsegment(t2a, t2b)

	if !sub1.BoundingBox().Expand(GeometricEpsilon).Intersects(sub2.BoundingBox().Expand(GeometricEpsilon)) {
		return
	}

	if sub1.IsFlatEnough(GeometricEpsilon) && sub2.IsFlatEnough(GeometricEpsilon) {
		if t1, t2, ok := straightStraightIntersection(sub1, sub2); ok {
			*out = append(*out, clipPair{
				t1a + t1*(t1b-t1a), t1a + t1*(t1b-t1a),
				t2a + t2*(t2b-t2a), t2a + t2*(t2b-t2a),
			})
		}
		return
	}

	// Clip c1's parameter range using c2's fat line.
	nt1a, nt1b, ok := clipRange(sub1, sub2)
	if !ok {
		return
	}
	newT1a := t1a + nt1a*(t1b-t1a)
	newT1b := t1a + nt1b*(t1b-t1a)

	// Clip c2's range using the (already narrowed) c1.
	narrowed1 := c1.Subsegment(newT1a, newT1b)
	nt2a, nt2b, ok := clipRange(sub2, narrowed1)
	if !ok {
		return
	}
	newT2a := t2a + nt2a*(t2b-t2a)
	newT2b := t2a + nt2b*(t2b-t2a)

	progress := (newT1b-newT1a) < 0.8*(t1b-t1a) || (newT2b-newT2a) < 0.8*(t2b-t2a)
	if !progress {
		// Clipping stalled: split the wider interval and recurse on
		// both halves.
		if (t1b - t1a) > (t2b - t2a) {
			midT1 := 0.5 * (newT1a + newT1b)
			clipRecursive(c1, c2, newT1a, midT1, newT2a, newT2b, depth-1, out)
			clipRecursive(c1, c2, midT1, newT1b, newT2a, newT2b, depth-1, out)
		} else {
			midT2 := 0.5 * (newT2a + newT2b)
			clipRecursive(c1, c2, newT1a, newT1b, newT2a, midT2, depth-1, out)
			clipRecursive(c1, c2, newT1a, newT1b, midT2, newT2b, depth-1, out)
		}
		return
	}

	clipRecursive(c1, c2, newT1a, newT1b, newT2a, newT2b, depth-1, out)
}

// clipRange computes the portion of target's parameter range [0,1]
// whose control polygon lies within against's fat-line bounds,
// returning (0, 0, false) when nothing survives.
func clipRange(target, against CubicBez) (float64, float64, bool) {
	min, max := against.GetFatLineBounds()
	line := NewLine(against.P0, against.P3)

	d0 := line.SignedDistance(target.P0)
	d1 := line.SignedDistance(target.P1)
	d2 := line.SignedDistance(target.P2)
	d3 := line.SignedDistance(target.P3)

	ts := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	ds := []float64{d0, d1, d2, d3}

	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for i := 0; i < len(ts); i++ {
		if ds[i] >= min && ds[i] <= max {
			found = true
			if ts[i] < lo {
				lo = ts[i]
			}
			if ts[i] > hi {
				hi = ts[i]
			}
		}
	}
	// Also clip along the segment between every pair of control
	// points against min/max (every convex-hull edge is among them).
	for i := 0; i < len(ts)-1; i++ {
		for j := i + 1; j < len(ts); j++ {
			for _, bound := range []float64{min, max} {
				if (ds[i] < bound) != (ds[j] < bound) {
					frac := (bound - ds[i]) / (ds[j] - ds[i])
					t := ts[i] + frac*(ts[j]-ts[i])
					found = true
					if t < lo {
						lo = t
					}
					if t > hi {
						hi = t
					}
				}
			}
		}
	}
	if !found {
		return 0, 0, false
	}
	return Clamp(lo, 0, 1), Clamp(hi, 0, 1), true
}

func dedupClipPairs(pairs []clipPair) []clipPair {
	var out []clipPair
	for _, p := range pairs {
		dup := false
		for _, q := range out {
			if math.Abs(p.t1a-q.t1a) <= CurveTimeEpsilon*10 && math.Abs(p.t2a-q.t2a) <= CurveTimeEpsilon*10 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// GetIntersections returns every CurveLocation pair at which paths p
// and q cross or touch, with twins linked to each other. When q is
// nil or equal to p, self-intersections of p are found instead.
func GetIntersections(p, q *Path, maxDepth int) []*CurveLocation {
	self := q == nil || q == p
	var locs []*CurveLocation

	pCurves := p.Curves()
	var qCurves []CubicBez
	if !self {
		qCurves = q.Curves()
	}

	if self {
		for i, c := range pCurves {
			class := c.Classify()
			if class.Kind != KindLoop || len(class.Roots) < 2 {
				continue
			}
			seg := p.segmentAt(i)
			l1 := NewCurveLocation(p, seg, class.Roots[0])
			l2 := NewCurveLocation(p, seg, class.Roots[1])
			linkLocations(l1, l2)
			l1.twin, l2.twin = l2, l1
			locs = insertLocationSorted(locs, l1)
			locs = insertLocationSorted(locs, l2)
		}
	}

	for i, c1 := range pCurves {
		jStart := 0
		if self {
			jStart = i
		}
		other := qCurves
		if self {
			other = pCurves
		}
		for j := jStart; j < len(other); j++ {
			if self && j == i {
				continue // a curve's own loop self-intersection is found above via Classify
			}
			c2 := other[j]
			if self && j == i+1 {
				// Adjacent curves share an endpoint; skip the trivial
				// shared-point "intersection".
				continue
			}
			pairs := GetCurveIntersections(c1, c2, maxDepth)
			for _, pr := range pairs {
				seg1 := p.segmentAt(i)
				var path2 *Path
				var seg2 *Segment
				if self {
					path2 = p
					seg2 = p.segmentAt(j)
				} else {
					path2 = q
					seg2 = q.segmentAt(j)
				}
				l1 := NewCurveLocation(p, seg1, pr.t1a)
				l2 := NewCurveLocation(path2, seg2, pr.t2a)
				linkLocations(l1, l2)
				l1.twin, l2.twin = l2, l1
				locs = insertLocationSorted(locs, l1)
				if !self {
					locs = insertLocationSorted(locs, l2)
				}
			}
		}
	}
	return locs
}
