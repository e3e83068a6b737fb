package bezpath

// Operator identifies which Boolean combination tracePaths should
// produce from a pair of prepared, divided, winding-annotated paths.
type Operator int

const (
	OpUnite Operator = iota
	OpIntersect
	OpSubtract
	OpExclude
	OpDivide
)

// keepSegment decides, for a curve segment that originated on operand
// A (fromA true) or B (fromA false), whether it belongs in the result
// of op given the winding number of the *other* operand at a point
// just inside this segment's curve, and whether the segment's
// direction must be reversed in the result (used when subtracting a
// region, which flips the subtracted operand's contribution).
//
// wOther is the other path's winding number sampled at a point just
// inside this segment's curve; it is 0 when the segment's curve lies
// outside the other shape entirely.
func keepSegment(op Operator, fromA bool, wOther int) (keep, reverse bool) {
	switch op {
	case OpUnite:
		return wOther == 0, false
	case OpIntersect:
		return wOther != 0, false
	case OpSubtract:
		if fromA {
			return wOther == 0, false
		}
		return wOther != 0, true
	case OpExclude:
		return true, fromA && wOther != 0 || !fromA && wOther != 0
	case OpDivide:
		return true, false
	default:
		return false, false
	}
}

// preparePath clones path and, when requested, inserts a segment at
// each of its own self-intersection points before the cross-operand
// pass runs. The contour is not re-stitched and no piece is dropped,
// so a self-intersecting contour stays self-intersecting.
func preparePath(path *Path, o booleanOptions, maxDepth int) *Path {
	clone := path.Clone()
	if !o.resolveSelfIntersections {
		return clone
	}
	locs := GetIntersections(clone, nil, maxDepth)
	if len(locs) == 0 {
		return clone
	}
	divideLocations(locs, func(*CurveLocation) bool { return true })
	return clone
}

// divideLocations splits each location's owning path at its curve
// time, inserting a new segment so the location becomes an existing
// segment boundary. Locations are grouped by path and processed from
// the highest segment index down so earlier insertions don't shift
// the indices of locations still to be processed. include filters
// which locations actually cause a split (e.g. only crossings, not
// tangential touches). Returns every segment created by a split.
func divideLocations(locs []*CurveLocation, include func(*CurveLocation) bool) []*Segment {
	byPath := map[*Path][]*CurveLocation{}
	for _, l := range locs {
		if include == nil || include(l) {
			byPath[l.path] = append(byPath[l.path], l)
		}
	}

	var created []*Segment
	for path, pathLocs := range byPath {
		// Sort descending by (segment index, time) so insertion never
		// invalidates a not-yet-processed location's indices.
		for i := 1; i < len(pathLocs); i++ {
			for j := i; j > 0; j-- {
				a, b := pathLocs[j-1], pathLocs[j]
				if less := a.segment.Index() < b.segment.Index() ||
					(a.segment.Index() == b.segment.Index() && a.time < b.time); !less {
					break
				}
				pathLocs[j-1], pathLocs[j] = pathLocs[j], pathLocs[j-1]
			}
		}
		for _, l := range pathLocs {
			if l.time <= CurveTimeEpsilon {
				continue // already a segment boundary
			}
			seg := splitCurveAt(path, l.segment, l.time)
			created = append(created, seg)
		}
	}
	return created
}

// splitCurveAt inserts a new segment at parameter t on the curve
// starting at `from`, via de Casteljau subdivision, and returns it.
func splitCurveAt(path *Path, from *Segment, t float64) *Segment {
	c, ok := from.CurveOut()
	if !ok {
		return from
	}
	left := c.Subsegment(0, t)
	right := c.Subsegment(t, 1)
	next := from.Next()

	// Handles are stored as offsets from their own segment's anchor.
	newSeg := NewSegment(left.P3, left.P2.Sub(left.P3), right.P1.Sub(right.P0))
	from.HandleOut = left.P1.Sub(left.P0)
	if next != nil {
		next.HandleIn = right.P2.Sub(right.P3)
	}

	path.InsertSegment(from.Index()+1, newSeg)
	return newSeg
}

// windingSource is anything runBoolean can sample a winding number
// from: a single Path or a whole CompoundPath of them.
type windingSource interface {
	Winding(pt Point) int
}

// windingAt samples source's winding number at a point just inside
// the given curve, offset along its normal, and folds it down to a
// 0/1 membership test under an even-odd fill rule.
func windingAt(c CubicBez, source windingSource, opts booleanOptions) int {
	if source == nil {
		return 0
	}
	pt := getInteriorPoint(c)
	w := source.Winding(pt)
	if opts.fillRule == EvenOdd {
		if w%2 != 0 {
			return 1
		}
		return 0
	}
	return w
}

// contours is a PathItem's flattened list of constituent Paths (as
// returned by preparePath), together usable as a single windingSource.
type contours []*Path

func (cs contours) Winding(pt Point) int {
	var w int
	for _, p := range cs {
		w += p.Winding(pt)
	}
	return w
}

// prepareContours clones every contour of item and resolves each
// one's self-intersections per o.
func prepareContours(item PathItem, o booleanOptions) contours {
	var out contours
	for _, p := range item.paths() {
		out = append(out, preparePath(p, o, o.maxClipDepth))
	}
	return out
}

// runBoolean executes the shared Boolean pipeline: prepare both
// operands' contours, find every cross-operand intersection, divide
// both sides at those intersections, then trace the result.
func runBoolean(a, b PathItem, op Operator, opts ...BooleanOption) (*CompoundPath, error) {
	if a == nil || totalSegments(a) < 2 {
		return nil, newGeometryError(operatorName(op), ErrInputInvalid, "operand A has fewer than 2 segments")
	}
	if b == nil || totalSegments(b) < 2 {
		return nil, newGeometryError(operatorName(op), ErrInputInvalid, "operand B has fewer than 2 segments")
	}
	o := resolveBooleanOptions(opts)
	o.op = op

	ca := prepareContours(a, o)
	cb := prepareContours(b, o)

	for _, pa := range ca {
		for _, pb := range cb {
			locs := GetIntersections(pa, pb, o.maxClipDepth)
			divideLocations(locs, func(*CurveLocation) bool { return true })
		}
	}

	return tracePaths(ca, cb, op, o)
}

func totalSegments(item PathItem) int {
	var n int
	for _, p := range item.paths() {
		n += p.SegmentCount()
	}
	return n
}

func operatorName(op Operator) string {
	switch op {
	case OpUnite:
		return "Unite"
	case OpIntersect:
		return "Intersect"
	case OpSubtract:
		return "Subtract"
	case OpExclude:
		return "Exclude"
	case OpDivide:
		return "Divide"
	default:
		return "Boolean"
	}
}

// Unite returns the union of p and other.
func (p *Path) Unite(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(p, other, OpUnite, opts...)
}

// Intersect returns the intersection of p and other.
func (p *Path) Intersect(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(p, other, OpIntersect, opts...)
}

// Subtract returns p with other's area removed.
func (p *Path) Subtract(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(p, other, OpSubtract, opts...)
}

// Exclude returns the symmetric difference of p and other.
func (p *Path) Exclude(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(p, other, OpExclude, opts...)
}

// Divide returns p split into its union and intersection faces
// against other, packaged together as a single CompoundPath.
func (p *Path) Divide(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(p, other, OpDivide, opts...)
}

// Unite returns the union of cp and other. CompoundPath carries the
// same Boolean entry points as Path so a chained result like
// P.Unite(Q) can itself be united with R.
func (cp *CompoundPath) Unite(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(cp, other, OpUnite, opts...)
}

// Intersect returns the intersection of cp and other.
func (cp *CompoundPath) Intersect(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(cp, other, OpIntersect, opts...)
}

// Subtract returns cp with other's area removed.
func (cp *CompoundPath) Subtract(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(cp, other, OpSubtract, opts...)
}

// Exclude returns the symmetric difference of cp and other.
func (cp *CompoundPath) Exclude(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(cp, other, OpExclude, opts...)
}

// Divide returns cp split into its union and intersection faces
// against other, packaged together as a single CompoundPath.
func (cp *CompoundPath) Divide(other PathItem, opts ...BooleanOption) (*CompoundPath, error) {
	return runBoolean(cp, other, OpDivide, opts...)
}

// GetIntersections returns the intersection locations between cp and
// other's contours (or cp's self-intersections, if other is nil).
func (cp *CompoundPath) GetIntersections(other PathItem, opts ...BooleanOption) []*CurveLocation {
	o := resolveBooleanOptions(opts)
	if other == nil {
		var locs []*CurveLocation
		for _, p := range cp.children {
			locs = append(locs, GetIntersections(p, nil, o.maxClipDepth)...)
		}
		return locs
	}
	var locs []*CurveLocation
	for _, p := range cp.children {
		for _, q := range other.paths() {
			locs = append(locs, GetIntersections(p, q, o.maxClipDepth)...)
		}
	}
	return locs
}

// GetIntersections returns the intersection locations between p and
// other's contours (or p's self-intersections, if other is nil).
func (p *Path) GetIntersections(other PathItem, opts ...BooleanOption) []*CurveLocation {
	o := resolveBooleanOptions(opts)
	if other == nil {
		return GetIntersections(p, nil, o.maxClipDepth)
	}
	var locs []*CurveLocation
	for _, q := range other.paths() {
		locs = append(locs, GetIntersections(p, q, o.maxClipDepth)...)
	}
	return locs
}
