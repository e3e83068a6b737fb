package bezpath

import "math"

// Winding computes the winding number of pt relative to the path's
// implied closed contour, by casting a horizontal ray to the right
// and summing signed crossings against each curve's monotone pieces.
// A point exactly on the boundary gets no special treatment: the
// half-open y-range test can count it either way. Contains is the
// method that treats boundary points as outside.
func (p *Path) Winding(pt Point) int {
	var winding int
	for _, c := range p.curvesClosed() {
		for _, mono := range c.GetMonoCurves() {
			winding += monoWinding(mono, pt)
		}
	}
	return winding
}

// monoWinding returns the signed crossing contribution of a single
// y-monotone curve against a rightward ray from pt.
func monoWinding(c CubicBez, pt Point) int {
	y0, y3 := c.P0.Y, c.P3.Y
	if y0 == y3 {
		return 0 // horizontal, no crossing
	}

	upward := y0 < y3
	if upward {
		if pt.Y < y0 || pt.Y >= y3 {
			return 0
		}
	} else {
		if pt.Y < y3 || pt.Y >= y0 {
			return 0
		}
	}

	t, ok := monoTimeAtY(c, pt.Y)
	if !ok {
		return 0
	}
	x := c.Eval(t).X
	if x <= pt.X {
		return 0
	}
	if upward {
		return 1
	}
	return -1
}

// monoTimeAtY inverts a y-monotone cubic to find the parameter at
// which it crosses the horizontal line y=target, via bisection (the
// curve is monotone so the sign of y(t)-target is unambiguous).
func monoTimeAtY(c CubicBez, target float64) (float64, bool) {
	f := func(t float64) float64 { return c.Eval(t).Y - target }
	lo, hi := 0.0, 1.0
	flo := f(lo)
	if math.Abs(flo) <= GeometricEpsilon {
		return lo, true
	}
	fhi := f(hi)
	if math.Abs(fhi) <= GeometricEpsilon {
		return hi, true
	}
	if (flo < 0) == (fhi < 0) {
		return 0, false
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		fm := f(mid)
		if math.Abs(fm) <= 1e-12 {
			return mid, true
		}
		if (fm < 0) == (flo < 0) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), true
}

// Contains reports whether pt lies inside the path's implied closed
// contour under the path's configured fill rule (NonZero by default).
// A point exactly on the boundary is considered outside.
func (p *Path) Contains(pt Point, opts ...BooleanOption) bool {
	o := resolveBooleanOptions(opts)
	for _, c := range p.curvesClosed() {
		if _, on := c.GetTimeOf(pt); on {
			return false
		}
	}
	w := p.Winding(pt)
	switch o.fillRule {
	case EvenOdd:
		return w%2 != 0
	default:
		return w != 0
	}
}

// getInteriorPoint returns a point guaranteed to be strictly inside
// the curve's left half, used to seed winding propagation for a newly
// traced segment: the curve's midpoint offset along its normal by a
// small epsilon.
func getInteriorPoint(c CubicBez) Point {
	mid := c.Eval(0.5)
	n := c.Normal(0.5)
	if n.IsZero() {
		return mid
	}
	return mid.Add(n.Mul(GeometricEpsilon * 10).ToPoint())
}
