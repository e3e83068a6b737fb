package bezpath

import "math"

// CurveKind classifies the shape of a cubic Bezier's parametric curve
// per the Loop-Blinn classification used to drive flattening and
// intersection heuristics.
type CurveKind int

const (
	KindLine CurveKind = iota
	KindQuadratic
	KindSerpentine
	KindCusp
	KindLoop
	KindArch
)

func (k CurveKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindQuadratic:
		return "quadratic"
	case KindSerpentine:
		return "serpentine"
	case KindCusp:
		return "cusp"
	case KindLoop:
		return "loop"
	case KindArch:
		return "arch"
	default:
		return "unknown"
	}
}

// Classification describes the result of classifying a cubic curve.
type Classification struct {
	Kind  CurveKind
	Roots []float64 // self-intersection/inflection parameters, when applicable
}

// IsStraight reports whether the curve's handles lie on the chord from
// P0 to P3 (within GeometricEpsilon), making the curve effectively a
// line segment regardless of its control points.
func (c CubicBez) IsStraight() bool {
	return c.isStraightFast()
}

// isStraightFast is the cheap collinearity test used internally by
// length/time inversion before falling back to full classification.
func (c CubicBez) isStraightFast() bool {
	chord := c.P3.Sub(c.P0)
	if chord.IsZero() {
		return c.P1.Sub(c.P0).IsZero() && c.P2.Sub(c.P0).IsZero()
	}
	line := NewLine(c.P0, c.P3)
	return line.Distance(c.P1) <= GeometricEpsilon && line.Distance(c.P2) <= GeometricEpsilon
}

// area2 returns twice the signed area of triangle (a,b,c): the
// z-component of (b-a) x (c-a). Built entirely from point differences,
// it is invariant under translating a, b, and c by the same vector.
func area2(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Classify determines the curve's shape using the Loop-Blinn
// discriminant of the cubic's implicitization, per "Resolution
// Independent Curve Rendering using Programmable Graphics Hardware"
// (Loop & Blinn, 2005). It degenerates safely to KindLine for
// (near-)straight curves.
func (c CubicBez) Classify() Classification {
	if c.IsStraight() {
		return Classification{Kind: KindLine}
	}

	// a1, a2, a3 are twice the signed areas of the three triangles
	// formed by the control points taken three at a time
	// (Loop & Blinn's a1 = b0.(b3 x b2), a2 = b1.(b0 x b3),
	// a3 = b2.(b1 x b0) in homogeneous coordinates). Each is a
	// function of point differences only, so translating the whole
	// curve leaves a1, a2, a3 — and everything derived from them —
	// unchanged.
	p0, p1, p2, p3 := c.P0, c.P1, c.P2, c.P3
	a1 := area2(p0, p3, p2)
	a2 := area2(p1, p0, p3)
	a3 := area2(p2, p1, p0)

	d1 := a1 - 2*a2 + 3*a3
	d2 := -a2 + 3*a3
	d3 := 3 * a3

	discriminant := 3*d2*d2 - 4*d1*d3
	switch {
	case math.Abs(d1) < Epsilon && math.Abs(d2) < Epsilon && math.Abs(d3) < Epsilon:
		return Classification{Kind: KindQuadratic}
	case discriminant > Epsilon:
		return Classification{Kind: KindSerpentine}
	case discriminant < -Epsilon:
		roots := c.selfIntersectionRoots()
		if len(roots) == 2 {
			return Classification{Kind: KindLoop, Roots: roots}
		}
		return Classification{Kind: KindArch}
	default:
		return Classification{Kind: KindCusp}
	}
}

// selfIntersectionRoots computes the two parameter values t1 != t2 at
// which the curve passes through the same point, exactly.
//
// Writing B(t) = P0 + c1*t + c2*t^2 + c3*t^3 in power-basis form,
// B(t1) - B(t2) factors as (t1-t2) * (c1 + c2*S + c3*Q), where
// S = t1+t2 and Q = t1^2+t1*t2+t2^2 = S^2 - t1*t2. For t1 != t2, a
// double point requires the bracketed vector to vanish — two linear
// scalar equations (x and y) in the two unknowns S and Q, solved
// directly via Cramer's rule. With S and the product P = S^2-Q in
// hand, t1 and t2 are the roots of z^2 - S*z + P = 0.
func (c CubicBez) selfIntersectionRoots() []float64 {
	p0, p1, p2, p3 := c.P0, c.P1, c.P2, c.P3
	c1 := p1.Sub(p0).Mul(3)
	c2 := p2.Sub(p1.Mul(2)).Add(p0).Mul(3)
	c3 := p3.Sub(p2.Mul(3)).Add(p1.Mul(3)).Sub(p0)

	det := c2.Cross(c3)
	if math.Abs(det) < Epsilon {
		return nil
	}
	sSum := -c1.Cross(c3) / det
	q := c1.Cross(c2) / det
	product := sSum*sSum - q

	roots := SolveQuadratic(1, -sSum, product)
	var out []float64
	for _, t := range roots {
		if t > CurveTimeEpsilon && t < 1-CurveTimeEpsilon {
			out = append(out, t)
		}
	}
	if len(out) != 2 {
		return nil
	}
	return out
}

// IsFlatEnough reports whether the curve deviates from its chord by no
// more than tolerance, the standard termination test for recursive
// subdivision (flattening, fat-line clipping, offsetting).
func (c CubicBez) IsFlatEnough(tolerance float64) bool {
	if c.P0.GetDistance(c.P3, false) <= Epsilon {
		// Degenerate chord: flatness measured against the start point.
		d1 := c.P1.GetDistance(c.P0, false)
		d2 := c.P2.GetDistance(c.P0, false)
		return d1 <= tolerance && d2 <= tolerance
	}
	line := NewLine(c.P0, c.P3)
	return line.Distance(c.P1) <= tolerance && line.Distance(c.P2) <= tolerance
}

// GetFatLineBounds returns the fat-line band [min, max] of signed
// distances from the line through P0 and P3 used by curve-curve
// fat-line clipping. It starts from the minimum and maximum signed
// distance of the control points, widens the band to include 0, and
// scales each non-zero side by 3/4.
func (c CubicBez) GetFatLineBounds() (min, max float64) {
	line := NewLine(c.P0, c.P3)
	d0 := line.SignedDistance(c.P0)
	d1 := line.SignedDistance(c.P1)
	d2 := line.SignedDistance(c.P2)
	d3 := line.SignedDistance(c.P3)

	min, max = d0, d0
	for _, d := range []float64{d1, d2, d3} {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	// Cubics bulge at most 3/4 of the control-point deviation beyond
	// the endpoints; tighten the fat line accordingly (Sederberg &
	// Nishita's bound).
	if min > 0 {
		min = 0
	} else {
		min *= 0.75
	}
	if max < 0 {
		max = 0
	} else {
		max *= 0.75
	}
	return min, max
}

// GetMonoCurves splits the curve at its X and Y extrema so that each
// returned sub-curve is monotone in both axes. This is required by
// ray-cast winding computation, which assumes each curve it scans
// crosses any horizontal ray at most once.
func (c CubicBez) GetMonoCurves() []CubicBez {
	ts := c.Extrema()
	if len(ts) == 0 {
		return []CubicBez{c}
	}

	var out []CubicBez
	prev := 0.0
	for _, t := range ts {
		if t <= prev+CurveTimeEpsilon || t >= 1-CurveTimeEpsilon {
			continue
		}
		out = append(out, c.Subsegment(prev, t))
		prev = t
	}
	out = append(out, c.Subsegment(prev, 1))
	return out
}
