package bezpath

import "testing"

func TestDefaultBooleanOptions(t *testing.T) {
	o := resolveBooleanOptions(nil)
	if o.fillRule != NonZero {
		t.Errorf("fillRule = %v, want NonZero", o.fillRule)
	}
	if o.maxClipDepth != 40 {
		t.Errorf("maxClipDepth = %d, want 40", o.maxClipDepth)
	}
	if !o.resolveSelfIntersections {
		t.Error("resolveSelfIntersections = false, want true")
	}
}

func TestWithFillRule(t *testing.T) {
	o := resolveBooleanOptions([]BooleanOption{WithFillRule(EvenOdd)})
	if o.fillRule != EvenOdd {
		t.Errorf("fillRule = %v, want EvenOdd", o.fillRule)
	}
}

func TestWithMaxClipDepth(t *testing.T) {
	o := resolveBooleanOptions([]BooleanOption{WithMaxClipDepth(10)})
	if o.maxClipDepth != 10 {
		t.Errorf("maxClipDepth = %d, want 10", o.maxClipDepth)
	}

	// Non-positive depths are ignored, keeping the default.
	o = resolveBooleanOptions([]BooleanOption{WithMaxClipDepth(0)})
	if o.maxClipDepth != 40 {
		t.Errorf("maxClipDepth = %d, want default 40", o.maxClipDepth)
	}
}

func TestWithResolveSelfIntersections(t *testing.T) {
	o := resolveBooleanOptions([]BooleanOption{WithResolveSelfIntersections(false)})
	if o.resolveSelfIntersections {
		t.Error("resolveSelfIntersections = true, want false")
	}
}

func TestBooleanOptionsCombine(t *testing.T) {
	o := resolveBooleanOptions([]BooleanOption{
		WithFillRule(EvenOdd),
		WithMaxClipDepth(8),
		WithResolveSelfIntersections(false),
	})
	if o.fillRule != EvenOdd || o.maxClipDepth != 8 || o.resolveSelfIntersections {
		t.Errorf("combined options not all applied: %+v", o)
	}
}
