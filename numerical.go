package bezpath

import "math"

// Numerical constants used throughout the package. Downstream behavior
// (intersection merging, curve-time clamping, classification) depends on
// these exact values.
const (
	// Epsilon is the general-purpose tolerance for "is this zero".
	Epsilon = 1e-12
	// MachineEpsilon bounds the smallest representable relative error.
	MachineEpsilon = 1.12e-16
	// CurveTimeEpsilon bounds how close a curve-time parameter may get to
	// 0 or 1 before it is treated as an existing endpoint.
	CurveTimeEpsilon = 1e-8
	// GeometricEpsilon is the tolerance used for point/point and
	// point/curve coincidence tests in world coordinates.
	GeometricEpsilon = 1e-7
	// TrigonometricEpsilon bounds the scale-invariant cross-product test
	// used by collinearity/orthogonality checks.
	TrigonometricEpsilon = 1e-8
	// Kappa is the cubic-Bezier control point offset that best
	// approximates a quarter circle of unit radius.
	Kappa = 0.5522847498307936
)

// IsZero reports whether x is within Epsilon of zero.
func IsZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// IsMachineZero reports whether x is within MachineEpsilon of zero.
func IsMachineZero(x float64) bool {
	return math.Abs(x) <= MachineEpsilon
}

// Clamp restricts x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// GetNormalizationFactor returns a power-of-two scale factor that
// normalizes abnormally small or large magnitudes among values before
// they are fed into a polynomial root solver. Returns 0 when none of
// the values are abnormal (the common case), signaling "no scaling
// needed".
func GetNormalizationFactor(values ...float64) float64 {
	var max float64
	var min = math.Inf(1)
	for _, v := range values {
		av := math.Abs(v)
		if av == 0 {
			continue
		}
		if av > max {
			max = av
		}
		if av < min {
			min = av
		}
	}
	if max == 0 || (max < 1e8 && min > 1e-8) {
		return 0
	}
	exp := -math.Round(math.Log2(max))
	return math.Ldexp(1, int(exp))
}

// gaussLegendre holds abscissae/weights for n-point Gauss-Legendre
// quadrature on [-1, 1], for n in {2,4,8,16} (even counts only, as used
// by curve arc-length integration).
var gaussLegendre = map[int][2][]float64{
	2: {
		{-0.5773502691896257, 0.5773502691896257},
		{1.0, 1.0},
	},
	4: {
		{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526},
		{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538},
	},
	8: {
		{-0.9602898564975363, -0.7966664774136267, -0.5255324099163290, -0.1834346424956498,
			0.1834346424956498, 0.5255324099163290, 0.7966664774136267, 0.9602898564975363},
		{0.1012285362903763, 0.2223810344533745, 0.3137066458778873, 0.3626837833783620,
			0.3626837833783620, 0.3137066458778873, 0.2223810344533745, 0.1012285362903763},
	},
	16: {
		{-0.9894009349916499, -0.9445750230732326, -0.8656312023878318, -0.7554044083550030,
			-0.6178762444026438, -0.4580167776572274, -0.2816035507792589, -0.0950125098376374,
			0.0950125098376374, 0.2816035507792589, 0.4580167776572274, 0.6178762444026438,
			0.7554044083550030, 0.8656312023878318, 0.9445750230732326, 0.9894009349916499},
		{0.0271524594117541, 0.0622535239386479, 0.0951585116824928, 0.1246289712555339,
			0.1495959888165767, 0.1691565193950025, 0.1826034150449236, 0.1894506104550685,
			0.1894506104550685, 0.1826034150449236, 0.1691565193950025, 0.1495959888165767,
			0.1246289712555339, 0.0951585116824928, 0.0622535239386479, 0.0271524594117541},
	},
}

// Integrate approximates the definite integral of f over [a, b] using
// n-point Gauss-Legendre quadrature. n is rounded up to the nearest
// available order in {2, 4, 8, 16}.
func Integrate(f func(float64) float64, a, b float64, n int) float64 {
	order := 2
	for _, o := range []int{2, 4, 8, 16} {
		if o >= n {
			order = o
			break
		}
		order = o
	}
	table := gaussLegendre[order]
	xs, ws := table[0], table[1]

	mid := 0.5 * (a + b)
	half := 0.5 * (b - a)
	var sum float64
	for i, x := range xs {
		sum += ws[i] * f(mid+half*x)
	}
	return sum * half
}

// FindRoot locates a root of f (with derivative df) near x0 within
// [a, b] using Newton-Raphson, falling back to bisection whenever a
// Newton step would leave the bracket or the derivative is zero.
// Returns the root and whether the bracket [a,b] straddled a sign
// change to begin with (false means the caller's initial guess must be
// trusted as-is).
func FindRoot(f, df func(float64) float64, x0, a, b float64, maxIter int, tol float64) (float64, bool) {
	lo, hi := a, b
	flo, fhi := f(lo), f(hi)
	bracketed := (flo < 0) != (fhi < 0)

	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) <= tol {
			return x, bracketed
		}
		if bracketed {
			if fx < 0 {
				lo = x
			} else {
				hi = x
			}
		}
		var next float64
		deriv := df(x)
		if deriv != 0 {
			next = x - fx/deriv
		}
		if deriv == 0 || next <= lo || next >= hi {
			if !bracketed {
				return x, false
			}
			// Newton step unavailable or left the bracket: bisect.
			next = 0.5 * (lo + hi)
		}
		if math.Abs(next-x) <= tol {
			return next, bracketed
		}
		x = next
	}
	return x, bracketed
}
