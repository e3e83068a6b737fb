package bezpath

import (
	"math"
	"testing"

	"github.com/akavel/polyclip-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

func TestBoolean_IdempotenceUniteIntersect(t *testing.T) {
	p := rectPath(0, 0, 10, 10)

	union, err := p.Unite(p.Clone())
	require.NoError(t, err)
	require.Equal(t, 1, union.Count())
	assert.InDelta(t, math.Abs(p.Area()), math.Abs(union.Area()), 1e-6)

	inter, err := p.Intersect(p.Clone())
	require.NoError(t, err)
	require.Equal(t, 1, inter.Count())
	assert.InDelta(t, math.Abs(p.Area()), math.Abs(inter.Area()), 1e-6)
}

func TestBoolean_IdempotenceSubtractExclude(t *testing.T) {
	p := rectPath(0, 0, 10, 10)

	diff, err := p.Subtract(p.Clone())
	require.NoError(t, err)
	assert.Equal(t, 0, diff.Count())

	xor, err := p.Exclude(p.Clone())
	require.NoError(t, err)
	assert.Equal(t, 0, xor.Count())
}

func TestBoolean_DisjointUnionAreaConservation(t *testing.T) {
	a := rectPath(0, 0, 10, 10)
	b := rectPath(100, 100, 20, 5)

	union, err := a.Unite(b)
	require.NoError(t, err)
	assert.Equal(t, 2, union.Count())
	assert.InDelta(t, math.Abs(a.Area())+math.Abs(b.Area()), math.Abs(union.Area()), 1e-6)
}

// S1 from spec.md §8: a 200x200 square with a 100x100 square hole.
func TestBoolean_SubtractCutsHole(t *testing.T) {
	p := rectPath(0, 0, 200, 200)
	q := rectPath(50, 50, 100, 100)

	diff, err := p.Subtract(q)
	require.NoError(t, err)
	assert.Equal(t, 2, diff.Count())
	assert.InDelta(t, math.Abs(p.Area())-math.Abs(q.Area()), math.Abs(diff.Area()), 1e-6)

	assert.True(t, diff.Contains(Pt(10, 10)), "corner of the shell should remain inside")
	assert.False(t, diff.Contains(Pt(100, 100)), "the cut hole's interior should not be contained")
}

// S2 from spec.md §8: corner-overlapping squares, intersect is the
// 50x100 overlap rectangle.
func TestBoolean_IntersectCornerOverlap(t *testing.T) {
	p := rectPath(0, 0, 200, 200)
	q := rectPath(150, 50, 100, 100)

	inter, err := p.Intersect(q)
	require.NoError(t, err)
	assert.InDelta(t, 5000, math.Abs(inter.Area()), 1e-4)
}

func TestBoolean_Commutativity(t *testing.T) {
	p := rectPath(0, 0, 200, 200)
	q := rectPath(150, 50, 100, 100)

	pq, err := p.Intersect(q)
	require.NoError(t, err)
	qp, err := q.Intersect(p)
	require.NoError(t, err)

	assert.InDelta(t, math.Abs(pq.Area()), math.Abs(qp.Area()), 1e-6)
}

// Property 4: union is associative modulo canonicalization. Exercises
// CompoundPath's own Unite method, since the left-hand grouping's
// intermediate P.Unite(Q) result is itself a CompoundPath that must be
// uniteable with R.
func TestBoolean_UniteAssociative(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	q := rectPath(5, 5, 10, 10)
	r := rectPath(50, 50, 10, 10)

	pq, err := p.Unite(q)
	require.NoError(t, err)
	left, err := pq.Unite(r)
	require.NoError(t, err)

	qr, err := q.Unite(r)
	require.NoError(t, err)
	right, err := p.Unite(qr)
	require.NoError(t, err)

	assert.InDelta(t, math.Abs(left.Area()), math.Abs(right.Area()), 1e-6)
}

// Property 7: intersection point sets are symmetric in operand order.
func TestBoolean_GetIntersectionsSymmetric(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	q := NewPath()
	q.MoveTo(5, -5)
	q.LineTo(15, 5)
	q.LineTo(5, 15)
	q.LineTo(-5, 5)
	q.Close()

	pq := p.GetIntersections(q)
	qp := q.GetIntersections(p)

	require.NotEmpty(t, pq)
	require.Equal(t, len(pq), len(qp))

	for _, a := range pq {
		found := false
		for _, b := range qp {
			if a.Point().GetDistance(b.Point(), false) <= GeometricEpsilon*10 {
				found = true
				break
			}
		}
		assert.True(t, found, "point %v from p.GetIntersections(q) missing from q.GetIntersections(p)", a.Point())
	}
}

func TestBoolean_InputValidation(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	empty := NewPath()
	empty.MoveTo(0, 0)

	_, err := p.Unite(empty)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputInvalid)
}

func TestBoolean_DivideKeepsAllSegments(t *testing.T) {
	p := rectPath(0, 0, 200, 200)
	q := rectPath(150, 50, 100, 100)

	parts, err := p.Divide(q)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, parts.Count(), 1)
}

// Cross-checks bezpath's union area against polyclip-go's
// Martinez-Rueda polygon clipper on a pair of disjoint axis-aligned
// rectangles, where Bezier curvature plays no role and the two
// engines' results must agree on area.
func TestBoolean_AgreesWithPolyclipOracle(t *testing.T) {
	a := rectPath(0, 0, 10, 10)
	b := rectPath(20, 0, 10, 10)

	union, err := a.Unite(b)
	require.NoError(t, err)

	oracle := rectPolygon(0, 0, 10, 10).Construct(polyclip.UNION, rectPolygon(20, 0, 10, 10))
	oracleArea := polygonArea(oracle)

	assert.InDelta(t, oracleArea, math.Abs(union.Area()), 1e-6)
}

func rectPolygon(x, y, w, h float64) polyclip.Polygon {
	return polyclip.Polygon{{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}}
}

// polygonArea sums the shoelace area of every contour in poly.
func polygonArea(poly polyclip.Polygon) float64 {
	var total float64
	for _, c := range poly {
		var area float64
		n := len(c)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			area += c[i].X*c[j].Y - c[j].X*c[i].Y
		}
		total += math.Abs(area) / 2
	}
	return total
}
