package bezpath

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Angle returns the angle of the vector from the origin to p, in
// degrees, within [-180, 180].
func (p Point) Angle() float64 {
	return p.AngleInRadians() * 180 / math.Pi
}

// AngleInRadians returns the angle of the vector from the origin to p,
// in radians.
func (p Point) AngleInRadians() float64 {
	return math.Atan2(p.Y, p.X)
}

// DirectedAngle returns the signed angle in degrees from p to q,
// positive counter-clockwise.
func (p Point) DirectedAngle(q Point) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q)) * 180 / math.Pi
}

// NormalizeTo returns a vector in the same direction as p scaled to
// the given length. The zero vector normalizes to itself.
func (p Point) NormalizeTo(length float64) Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Mul(length / l)
}

// Rotate rotates p by angle degrees around center (around the origin
// if center is not given).
func (p Point) Rotate(angleDeg float64, center ...Point) Point {
	c := Point{}
	if len(center) > 0 {
		c = center[0]
	}
	rad := angleDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	d := p.Sub(c)
	return Point{
		X: c.X + d.X*cos - d.Y*sin,
		Y: c.Y + d.X*sin + d.Y*cos,
	}
}

// Project returns the projection of p onto q.
func (p Point) Project(q Point) Point {
	if q.IsZero() {
		return Point{}
	}
	scale := p.Dot(q) / q.Dot(q)
	return q.Mul(scale)
}

// GetDistance returns the distance between p and q. When squared is
// true, returns the squared distance (avoids a sqrt).
func (p Point) GetDistance(q Point, squared bool) float64 {
	d := p.Sub(q)
	ls := d.LengthSquared()
	if squared {
		return ls
	}
	return math.Sqrt(ls)
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// IsClose reports whether p and q are within tolerance of each other.
func (p Point) IsClose(q Point, tolerance float64) bool {
	return p.GetDistance(q, false) <= tolerance
}

// IsCollinear reports whether the vectors p and q are parallel, using
// a scale-invariant cross-product test.
func (p Point) IsCollinear(q Point) bool {
	return IsCollinear(p.X, p.Y, q.X, q.Y)
}

// IsCollinear reports whether vectors (x1,y1) and (x2,y2) are
// parallel within TrigonometricEpsilon, using the scale-invariant test
// |cross| / sqrt(|a|^2 * |b|^2) <= TrigonometricEpsilon.
func IsCollinear(x1, y1, x2, y2 float64) bool {
	l1 := x1*x1 + y1*y1
	l2 := x2*x2 + y2*y2
	if l1 == 0 || l2 == 0 {
		return true
	}
	cross := x1*y2 - y1*x2
	return math.Abs(cross)/math.Sqrt(l1*l2) <= TrigonometricEpsilon
}

// IsOrthogonal reports whether p and q are perpendicular.
func (p Point) IsOrthogonal(q Point) bool {
	l1 := p.LengthSquared()
	l2 := q.LengthSquared()
	if l1 == 0 || l2 == 0 {
		return true
	}
	return math.Abs(p.Dot(q))/math.Sqrt(l1*l2) <= TrigonometricEpsilon
}

// Round rounds both components to the nearest integer.
func (p Point) Round() Point { return Point{X: math.Round(p.X), Y: math.Round(p.Y)} }

// Ceil rounds both components up.
func (p Point) Ceil() Point { return Point{X: math.Ceil(p.X), Y: math.Ceil(p.Y)} }

// Floor rounds both components down.
func (p Point) Floor() Point { return Point{X: math.Floor(p.X), Y: math.Floor(p.Y)} }

// Abs returns a point with the absolute value of each component.
func (p Point) Abs() Point { return Point{X: math.Abs(p.X), Y: math.Abs(p.Y)} }

// Negate returns the negation of p.
func (p Point) Negate() Point { return Point{X: -p.X, Y: -p.Y} }

// Modulo returns the componentwise floating-point remainder of p by m.
func (p Point) Modulo(m Point) Point {
	return Point{X: math.Mod(p.X, m.X), Y: math.Mod(p.Y, m.Y)}
}

// Quadrant returns the quadrant p lies in: 1 (+x,+y), 2 (-x,+y),
// 3 (-x,-y), 4 (+x,-y). The origin is considered quadrant 1.
func (p Point) Quadrant() int {
	if p.X >= 0 {
		if p.Y >= 0 {
			return 1
		}
		return 4
	}
	if p.Y >= 0 {
		return 2
	}
	return 3
}

// IsInQuadrant reports whether p lies in the given quadrant (1-4).
func (p Point) IsInQuadrant(q int) bool {
	return p.Quadrant() == q
}

// Transform applies an affine matrix to p.
func (p Point) Transform(m Matrix) Point {
	return m.TransformPoint(p)
}
