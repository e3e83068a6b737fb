package bezpath

// PathItem is the shared contract of Path and CompoundPath: anything
// a Boolean operation can take as an operand or hand back as a
// result.
type PathItem interface {
	Area() float64
	Length() float64
	BoundingBox() Rect
	Winding(pt Point) int
	Contains(pt Point, opts ...BooleanOption) bool
	FillRule() FillRule
	SetFillRule(rule FillRule)
	ToSVG() string

	// paths returns the item's contours: a single-element slice for a
	// Path, one element per child for a CompoundPath.
	paths() []*Path
}

func (p *Path) paths() []*Path { return []*Path{p} }

// CompoundPath is an ordered collection of Path contours that behaves
// as one shape: container contours and the holes cut into them.
// Boolean operations on CompoundPath operands combine the winding of
// every child when deciding what to keep, and Reorient arranges the
// children (outer shells before the holes they contain, with
// alternating orientation) to match the compound's fill rule.
type CompoundPath struct {
	children []*Path
	fillRule FillRule
}

// NewCompoundPath returns an empty compound path.
func NewCompoundPath() *CompoundPath {
	return &CompoundPath{fillRule: NonZero}
}

// NewCompoundPathFromPaths wraps the given contours as a compound
// path, taking ownership of the slice.
func NewCompoundPathFromPaths(children ...*Path) *CompoundPath {
	return &CompoundPath{children: children, fillRule: NonZero}
}

// Add appends a contour to the compound path.
func (cp *CompoundPath) Add(p *Path) {
	cp.children = append(cp.children, p)
}

// Count returns the number of child contours.
func (cp *CompoundPath) Count() int { return len(cp.children) }

// Children returns the compound path's contours.
func (cp *CompoundPath) Children() []*Path { return cp.children }

func (cp *CompoundPath) paths() []*Path { return cp.children }

// FillRule returns the compound path's fill rule.
func (cp *CompoundPath) FillRule() FillRule { return cp.fillRule }

// SetFillRule sets the compound path's fill rule and propagates it to
// every child, since containment and reorientation both need it.
func (cp *CompoundPath) SetFillRule(rule FillRule) {
	cp.fillRule = rule
	for _, c := range cp.children {
		c.SetFillRule(rule)
	}
}

// Area returns the sum of the children's signed areas: positive outer
// shells plus negative holes cancel to the compound's net area.
func (cp *CompoundPath) Area() float64 {
	var total float64
	for _, c := range cp.children {
		total += c.Area()
	}
	return total
}

// Length returns the combined arc length of every child contour.
func (cp *CompoundPath) Length() float64 {
	var total float64
	for _, c := range cp.children {
		total += c.Length()
	}
	return total
}

// BoundingBox returns the union of every child's bounding box.
func (cp *CompoundPath) BoundingBox() Rect {
	if len(cp.children) == 0 {
		return Rect{}
	}
	bbox := cp.children[0].BoundingBox()
	for _, c := range cp.children[1:] {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}

// Winding returns the sum of every child's winding number at pt, the
// quantity a Boolean operation consults when treating a CompoundPath
// as the "other" operand.
func (cp *CompoundPath) Winding(pt Point) int {
	var w int
	for _, c := range cp.children {
		w += c.Winding(pt)
	}
	return w
}

// Contains reports whether pt lies inside the compound shape under
// the given fill rule (nonzero by default), combining every child's
// winding before applying the rule so that holes correctly subtract.
func (cp *CompoundPath) Contains(pt Point, opts ...BooleanOption) bool {
	o := resolveBooleanOptions(opts)
	w := cp.Winding(pt)
	if o.fillRule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// Reorient sorts the compound path's children so that outer shells
// precede the holes nested inside them and fixes each child's
// winding direction to match the fill rule convention (shells
// clockwise, holes counter-clockwise under NonZero; alternating
// parity under EvenOdd). It is the final step of every Boolean
// operation's result assembly.
func (cp *CompoundPath) Reorient() {
	if len(cp.children) <= 1 {
		if len(cp.children) == 1 {
			cp.children[0].SetClockwise(true)
		}
		return
	}

	depth := make([]int, len(cp.children))
	for i, a := range cp.children {
		if a.SegmentCount() == 0 {
			continue
		}
		sample := a.Segments()[0].Anchor
		for j, b := range cp.children {
			if i == j || b.SegmentCount() == 0 {
				continue
			}
			if b.Contains(sample) {
				depth[i]++
			}
		}
	}

	for i, c := range cp.children {
		c.SetClockwise(depth[i]%2 == 0)
	}

	ordered := make([]*Path, len(cp.children))
	copy(ordered, cp.children)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && depth[j] < depth[j-1]; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
			depth[j], depth[j-1] = depth[j-1], depth[j]
		}
	}
	cp.children = ordered
}
