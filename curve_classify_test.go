package bezpath

import (
	"math"
	"testing"
)

// translate returns a copy of c shifted by (dx, dy). Classify must
// report the same Kind (and, for a loop, the same roots) for a curve
// and any translated copy of it, since shape classification cannot
// depend on where the curve sits in the plane.
func translate(c CubicBez, dx, dy float64) CubicBez {
	d := Pt(dx, dy)
	return NewCubicBez(c.P0.Add(d), c.P1.Add(d), c.P2.Add(d), c.P3.Add(d))
}

func TestClassify_Serpentine(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0))
	got := c.Classify()
	if got.Kind != KindSerpentine {
		t.Fatalf("Classify() = %v, want KindSerpentine", got.Kind)
	}

	moved := translate(c, 1000, -500).Classify()
	if moved.Kind != KindSerpentine {
		t.Errorf("translated copy Classify() = %v, want KindSerpentine (translation must not change shape class)", moved.Kind)
	}
}

func TestClassify_Cusp(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(1, 0), Pt(0, -1), Pt(0.75, 0))
	got := c.Classify()
	if got.Kind != KindCusp {
		t.Fatalf("Classify() = %v, want KindCusp", got.Kind)
	}

	moved := translate(c, -37, 42).Classify()
	if moved.Kind != KindCusp {
		t.Errorf("translated copy Classify() = %v, want KindCusp (translation must not change shape class)", moved.Kind)
	}
}

func TestClassify_Arch(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	got := c.Classify()
	if got.Kind != KindArch {
		t.Fatalf("Classify() = %v, want KindArch", got.Kind)
	}
	if len(got.Roots) != 0 {
		t.Errorf("KindArch should report no roots, got %v", got.Roots)
	}

	moved := translate(c, 250, 250).Classify()
	if moved.Kind != KindArch {
		t.Errorf("translated copy Classify() = %v, want KindArch (translation must not change shape class)", moved.Kind)
	}
}

func TestClassify_LoopReturnsTwoInteriorRoots(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(-0.28, -1.0/3.0), Pt(-0.56, -1.0/3.0), Pt(0.16, 0))
	got := c.Classify()
	if got.Kind != KindLoop {
		t.Fatalf("Classify() = %v, want KindLoop", got.Kind)
	}
	if len(got.Roots) != 2 {
		t.Fatalf("KindLoop should report exactly two roots, got %v", got.Roots)
	}

	lo, hi := got.Roots[0], got.Roots[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	const tol = 1e-6
	if math.Abs(lo-0.2) > tol || math.Abs(hi-0.8) > tol {
		t.Errorf("loop roots = (%v, %v), want approximately (0.2, 0.8)", lo, hi)
	}

	p1 := c.Eval(lo)
	p2 := c.Eval(hi)
	if p1.GetDistance(p2, false) > GeometricEpsilon*10 {
		t.Errorf("self-intersection roots do not meet at the same point: %v vs %v", p1, p2)
	}

	moved := c.Classify()
	movedCurve := translate(c, 5000, -5000)
	movedClass := movedCurve.Classify()
	if movedClass.Kind != KindLoop || len(movedClass.Roots) != 2 {
		t.Fatalf("translated copy Classify() = %v, want KindLoop with two roots", movedClass.Kind)
	}
	mlo, mhi := movedClass.Roots[0], movedClass.Roots[1]
	if mlo > mhi {
		mlo, mhi = mhi, mlo
	}
	olo, ohi := moved.Roots[0], moved.Roots[1]
	if olo > ohi {
		olo, ohi = ohi, olo
	}
	if math.Abs(mlo-olo) > tol || math.Abs(mhi-ohi) > tol {
		t.Errorf("translating the curve changed its loop roots: got (%v,%v), want (%v,%v)", mlo, mhi, olo, ohi)
	}
}

func TestIsStraight_CollinearHandles(t *testing.T) {
	line := NewCubicBez(Pt(0, 0), Pt(3, 3), Pt(7, 7), Pt(10, 10))
	if !line.IsStraight() {
		t.Errorf("curve with handles on its chord should be straight")
	}

	curved := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	if curved.IsStraight() {
		t.Errorf("curve with handles off its chord should not be straight")
	}
}

func TestIsStraight_ZeroLengthChord(t *testing.T) {
	degenerate := NewCubicBez(Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5))
	if !degenerate.IsStraight() {
		t.Errorf("a fully collapsed point curve should be straight")
	}
}

func TestClassify_StraightIsKindLine(t *testing.T) {
	line := NewCubicBez(Pt(0, 0), Pt(3, 3), Pt(7, 7), Pt(10, 10))
	got := line.Classify()
	if got.Kind != KindLine {
		t.Errorf("Classify() on a straight curve = %v, want KindLine", got.Kind)
	}
}

func TestClassify_CurvedIsNotKindLine(t *testing.T) {
	curved := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	got := curved.Classify()
	if got.Kind == KindLine {
		t.Errorf("Classify() on a clearly curved shape should not report KindLine")
	}
}

func TestIsFlatEnough(t *testing.T) {
	flat := NewCubicBez(Pt(0, 0), Pt(3, 0.0001), Pt(7, 0.0001), Pt(10, 0))
	if !flat.IsFlatEnough(0.01) {
		t.Errorf("nearly-straight curve should be flat enough at tolerance 0.01")
	}

	bulgy := NewCubicBez(Pt(0, 0), Pt(3, 10), Pt(7, 10), Pt(10, 0))
	if bulgy.IsFlatEnough(0.01) {
		t.Errorf("strongly bulging curve should not be flat enough at tolerance 0.01")
	}
}

func TestGetFatLineBounds_StraightCurveIsZero(t *testing.T) {
	line := NewCubicBez(Pt(0, 0), Pt(3, 3), Pt(7, 7), Pt(10, 10))
	min, max := line.GetFatLineBounds()
	if min != 0 || max != 0 {
		t.Errorf("GetFatLineBounds() on a straight curve = (%v,%v), want (0,0)", min, max)
	}
}

func TestGetFatLineBounds_CurvedBoundsStraddleZero(t *testing.T) {
	curved := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	min, max := curved.GetFatLineBounds()
	if min > 0 || max < 0 {
		t.Errorf("GetFatLineBounds() = (%v,%v), want min<=0<=max", min, max)
	}
}

func TestGetMonoCurves_SplitsAtExtrema(t *testing.T) {
	// An S-curve with two interior Y extrema (t≈0.211 and t≈0.789)
	// and an X double root at t=0.5.
	s := NewCubicBez(Pt(0, 0), Pt(10, 10), Pt(0, -10), Pt(10, 0))
	pieces := s.GetMonoCurves()
	if len(pieces) < 2 {
		t.Fatalf("expected the S-curve to split into at least 2 monotone pieces, got %d", len(pieces))
	}
	// Extrema() also reports roots at t=0 and t=1, which every piece
	// split at an extremum has; only interior ones are wrong here.
	for _, piece := range pieces {
		for _, e := range piece.Extrema() {
			if e > CurveTimeEpsilon && e < 1-CurveTimeEpsilon {
				t.Errorf("monotone piece %v should have no interior extrema, found %v", piece, piece.Extrema())
			}
		}
	}
}

func TestGetMonoCurves_AlreadyMonotoneIsUnchanged(t *testing.T) {
	line := NewCubicBez(Pt(0, 0), Pt(3, 3), Pt(7, 7), Pt(10, 10))
	pieces := line.GetMonoCurves()
	if len(pieces) != 1 {
		t.Fatalf("expected a straight curve to remain a single monotone piece, got %d", len(pieces))
	}
}
