package bezpath

import "math"

// Curvature returns the signed curvature of the cubic at parameter t:
// (x'y'' - y'x'') / (x'^2 + y'^2)^(3/2). Returns 0 for a straight
// curve (zero first derivative denominator).
func (c CubicBez) Curvature(t float64) float64 {
	d1 := c.Deriv()
	d2 := d1.Deriv2()

	dp := d1.Eval(t)
	ddp := d2

	denom := dp.X*dp.X + dp.Y*dp.Y
	if denom == 0 {
		return 0
	}
	num := dp.X*ddp.Y - dp.Y*ddp.X
	return num / math.Pow(denom, 1.5)
}

// Deriv2 returns the (constant) second derivative vector of a
// quadratic Bezier, i.e. the derivative of q.Deriv().
func (q QuadBez) Deriv2() Point {
	return Point{
		X: 2 * (q.P2.X - 2*q.P1.X + q.P0.X),
		Y: 2 * (q.P2.Y - 2*q.P1.Y + q.P0.Y),
	}
}

// GetLength returns the arc length of the curve restricted to [a, b],
// approximated with Gauss-Legendre quadrature over the speed function
// sqrt(x'^2+y'^2). The quadrature order scales with how sharply the
// curve turns, estimated from the control-polygon's total turning.
func (c CubicBez) GetLength(a, b float64) float64 {
	return c.arcLength(a, b)
}

// Length returns the arc length of the whole curve (0 to 1).
func (c CubicBez) Length() float64 {
	return c.arcLength(0, 1)
}

func (c CubicBez) arcLength(a, b float64) float64 {
	n := c.lengthQuadratureOrder()
	d := c.Deriv()
	speed := func(t float64) float64 {
		p := d.Eval(t)
		return math.Sqrt(p.X*p.X + p.Y*p.Y)
	}
	return Integrate(speed, a, b, n)
}

// lengthQuadratureOrder picks a Gauss-Legendre order based on a rough
// estimate of the curve's total turning angle: curves that bend a lot
// need a higher order to integrate accurately.
func (c CubicBez) lengthQuadratureOrder() int {
	p0, p1, p2, p3 := c.P0, c.P1, c.P2, c.P3
	turn := p1.Sub(p0).Angle2(p2.Sub(p1)) + p2.Sub(p1).Angle2(p3.Sub(p2))
	switch {
	case turn > 2:
		return 16
	case turn > 0.5:
		return 8
	default:
		return 4
	}
}

// Angle2 returns the unsigned angle in radians between vectors p and q,
// using atan2 of the cross/dot pair (robust near 0 and pi).
func (p Point) Angle2(q Point) float64 {
	return math.Atan2(math.Abs(p.Cross(q)), p.Dot(q))
}

// GetTimeAt returns the parameter t at which the arc length from
// `start` equals `offset`, or (0, false) if offset falls outside
// [0, length] (with GEOMETRIC_EPSILON slack). Straight curves are
// resolved directly from the chord length; curved ones use a
// Newton-refined inverse of the arc-length integral.
func (c CubicBez) GetTimeAt(offset float64, start float64) (float64, bool) {
	total := c.GetLength(0, 1)
	if offset < -GeometricEpsilon || offset > total+GeometricEpsilon {
		return 0, false
	}
	target := c.GetLength(0, start) + offset
	if target <= GeometricEpsilon {
		return 0, true
	}
	if target >= total-GeometricEpsilon {
		return 1, true
	}

	if c.isStraightFast() {
		if total == 0 {
			return 0, true
		}
		return Clamp(target/total, 0, 1), true
	}

	f := func(t float64) float64 { return c.GetLength(0, t) - target }
	df := func(t float64) float64 {
		p := c.Deriv().Eval(t)
		return math.Sqrt(p.X*p.X + p.Y*p.Y)
	}
	t, _ := FindRoot(f, df, Clamp(target/total, 0, 1), 0, 1, 32, 1e-10)
	return Clamp(t, 0, 1), true
}

// GetTimeOf returns the parameter t for which the curve passes through
// point within GeometricEpsilon, or (0, false) if no such t exists.
// Endpoints are checked first since they are the most common case in
// intersection/division bookkeeping.
func (c CubicBez) GetTimeOf(point Point) (float64, bool) {
	if point.GetDistance(c.P0, false) <= GeometricEpsilon {
		return 0, true
	}
	if point.GetDistance(c.P3, false) <= GeometricEpsilon {
		return 1, true
	}
	// Coarse sample-then-refine search.
	const samples = 32
	bestT, bestD := 0.0, math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		d := c.Eval(t).GetDistance(point, true)
		if d < bestD {
			bestD, bestT = d, t
		}
	}
	lo := math.Max(0, bestT-1.0/samples)
	hi := math.Min(1, bestT+1.0/samples)
	f := func(t float64) float64 {
		p := c.Eval(t)
		return p.Sub(point).Dot(c.Tangent(t).ToPoint())
	}
	df := func(t float64) float64 {
		const h = 1e-6
		return (f(math.Min(1, t+h)) - f(math.Max(0, t-h))) / (2 * h)
	}
	t, _ := FindRoot(f, df, bestT, lo, hi, 24, 1e-12)
	t = Clamp(t, 0, 1)
	if c.Eval(t).GetDistance(point, false) <= GeometricEpsilon {
		return t, true
	}
	return 0, false
}
