package bezpath

import "math"

// traceKey rounds a point to a grid fine enough to recognize a shared
// intersection location while still being tolerant of the rounding
// that accumulates through repeated curve subdivision.
func traceKey(p Point) [2]int64 {
	const scale = 1e6
	return [2]int64{int64(math.Round(p.X * scale)), int64(math.Round(p.Y * scale))}
}

// segEntry carries one candidate segment through the trace: which
// path it came from, whether its outgoing curve survives in the
// result, and whether it must be walked backwards.
type segEntry struct {
	path    *Path
	seg     *Segment
	fromA   bool
	keep    bool
	reverse bool
}

// tracePaths marches the kept, correctly-oriented curve segments of
// ca (operand A's contours) and cb (operand B's) into one or more
// closed result contours, assembling them into a CompoundPath.
// Segments are classified by keepSegment using the other operand's
// combined winding number at a point just inside each curve, then
// linked into contours by following each path's own segment order
// and, at shared intersection points, crossing over to the other
// operand's kept segments when continuing on the current path would
// leave a kept curve stranded.
func tracePaths(ca, cb contours, op Operator, opts booleanOptions) (*CompoundPath, error) {
	opts.op = op
	var entries []*segEntry
	for _, pa := range ca {
		entries = append(entries, classifySegments(pa, cb, true, opts)...)
	}
	for _, pb := range cb {
		entries = append(entries, classifySegments(pb, ca, false, opts)...)
	}

	byStart := map[[2]int64][]*segEntry{}
	anyKeep := false
	for _, e := range entries {
		byStart[traceKey(e.seg.Anchor)] = append(byStart[traceKey(e.seg.Anchor)], e)
		anyKeep = anyKeep || e.keep
	}

	visited := map[*Segment]bool{}
	result := NewCompoundPath()

	for _, e := range entries {
		if !e.keep || visited[e.seg] {
			continue
		}
		contour := traceContour(e, byStart, visited, len(entries)+1)
		if contour != nil && contour.SegmentCount() >= 2 {
			result.Add(contour)
		}
	}

	if result.Count() == 0 {
		if !anyKeep {
			// No segment qualified for the result at all: a legitimate
			// empty outcome (e.g. Subtract/Exclude of identical or
			// fully-cancelling operands), not a tracing failure.
			return result, nil
		}
		return nil, newGeometryError(operatorName(op), ErrStateCorrupt, "boolean trace produced no contours")
	}
	result.Reorient()
	return result, nil
}

// coincidentForward reports whether curve a exactly overlays curve b
// (same endpoints and midpoint within GeometricEpsilon), the signature
// of two operands that were drawn along the very same edge.
func coincidentForward(a, b CubicBez) bool {
	return a.P0.GetDistance(b.P0, false) <= GeometricEpsilon &&
		a.P3.GetDistance(b.P3, false) <= GeometricEpsilon &&
		a.Eval(0.5).GetDistance(b.Eval(0.5), false) <= GeometricEpsilon
}

// findCoincidentCurve reports whether curve c lies exactly on top of
// some curve belonging to other's contours, and whether it runs in
// the same direction. Plain cross-operand intersection clipping
// cannot classify fully coincident edges (their "just inside" probe
// point sits on both shapes' boundaries at once), so tracePaths
// handles this degenerate case directly instead of going through
// windingAt.
func findCoincidentCurve(c CubicBez, other contours) (found, sameDirection bool) {
	for _, p := range other {
		for _, oc := range p.Curves() {
			if coincidentForward(c, oc) {
				return true, true
			}
			if coincidentForward(c, oc.Reversed()) {
				return true, false
			}
		}
	}
	return false, false
}

// keepCoincidentSegment decides whether to keep a segment whose curve
// exactly overlays a curve from the other operand. Opposite-direction
// coincidences (a shell edge lying on a hole edge traced the other
// way) bound zero area between the two and are always dropped;
// same-direction coincidences keep exactly one copy (operand A's) for
// the set-union-shaped operators and cancel entirely for subtract and
// exclude, since the duplicated edge contributes no net boundary.
func keepCoincidentSegment(op Operator, fromA, sameDirection bool) (keep, reverse bool) {
	if !sameDirection {
		return false, false
	}
	switch op {
	case OpUnite, OpIntersect, OpDivide:
		return fromA, false
	default: // OpSubtract, OpExclude
		return false, false
	}
}

func classifySegments(path *Path, other contours, fromA bool, opts booleanOptions) []*segEntry {
	if path == nil {
		return nil
	}
	entries := make([]*segEntry, 0, path.SegmentCount())
	for _, s := range path.Segments() {
		c, ok := s.CurveOut()
		if !ok {
			continue
		}
		if other == nil {
			entries = append(entries, &segEntry{path: path, seg: s, fromA: fromA, keep: true})
			continue
		}
		if found, sameDir := findCoincidentCurve(c, other); found {
			keep, reverse := keepCoincidentSegment(opts.op, fromA, sameDir)
			entries = append(entries, &segEntry{path: path, seg: s, fromA: fromA, keep: keep, reverse: reverse})
			continue
		}
		wOther := windingAt(c, other, opts)
		keep, reverse := keepSegment(opts.op, fromA, wOther)
		entries = append(entries, &segEntry{path: path, seg: s, fromA: fromA, keep: keep, reverse: reverse})
	}
	return entries
}

func traceContour(start *segEntry, byStart map[[2]int64][]*segEntry, visited map[*Segment]bool, stepBudget int) *Path {
	result := NewPath()
	cur := start
	startKey := traceKey(start.seg.Anchor)

	for steps := 0; steps < stepBudget; steps++ {
		if visited[cur.seg] {
			break
		}
		visited[cur.seg] = true

		c, ok := cur.seg.CurveOut()
		if !ok {
			break
		}
		if cur.reverse {
			c = c.Reversed()
		}
		appendCurveSegment(result, c)

		endKey := traceKey(c.P3)
		if endKey == startKey && result.SegmentCount() > 1 {
			result.SetClosed(true)
			return result
		}

		next := chooseNext(cur, endKey, byStart, visited)
		if next == nil {
			break
		}
		cur = next
	}
	if result.SegmentCount() > 1 {
		result.SetClosed(true)
	}
	return result
}

// chooseNext picks the segment to continue a trace with after
// arriving at endKey via cur: prefer the same path's own successor
// when it is kept and unvisited (the common case away from
// intersections), otherwise cross to a kept, unvisited candidate
// starting at the same point on the other path.
func chooseNext(cur *segEntry, endKey [2]int64, byStart map[[2]int64][]*segEntry, visited map[*Segment]bool) *segEntry {
	own := cur.seg.Next()
	if own != nil && !visited[own] {
		if e := findEntry(byStart[endKey], own); e != nil && e.keep {
			return e
		}
	}
	for _, cand := range byStart[endKey] {
		if cand.seg == own || visited[cand.seg] || !cand.keep {
			continue
		}
		return cand
	}
	if own != nil && !visited[own] {
		if e := findEntry(byStart[endKey], own); e != nil {
			return e
		}
	}
	return nil
}

func findEntry(candidates []*segEntry, seg *Segment) *segEntry {
	for _, e := range candidates {
		if e.seg == seg {
			return e
		}
	}
	return nil
}

// appendCurveSegment adds a segment to result whose outgoing curve
// reproduces c, reusing the previous segment's anchor as c's start
// point when it already matches (continuing a contour) rather than
// inserting a duplicate coincident segment.
func appendCurveSegment(result *Path, c CubicBez) {
	if result.SegmentCount() == 0 {
		s := NewSegment(c.P0, Point{}, c.P1.Sub(c.P0))
		result.AddSegment(s)
	} else {
		last := result.Segments()[result.SegmentCount()-1]
		last.HandleOut = c.P1.Sub(c.P0)
	}
	end := NewSegment(c.P3, c.P2.Sub(c.P3), Point{})
	result.AddSegment(end)
}
