package bezpath

// FillRule selects how winding numbers are interpreted when testing
// containment or propagating winding during a Boolean operation.
type FillRule int

const (
	// NonZero treats a point as inside when its winding number is
	// non-zero. The default for both PathItem.Contains and Boolean ops.
	NonZero FillRule = iota
	// EvenOdd treats a point as inside when its winding number is odd,
	// ignoring the sign and magnitude of overlapping windings.
	EvenOdd
)

// BooleanOption configures a Boolean operation (Unite/Intersect/
// Subtract/Exclude/Divide) or a Contains query.
//
// Example:
//
//	union, err := a.Unite(b, bezpath.WithFillRule(bezpath.EvenOdd))
type BooleanOption func(*booleanOptions)

// booleanOptions holds the resolved configuration for a Boolean
// operation after all BooleanOption values have been applied.
type booleanOptions struct {
	fillRule                 FillRule
	maxClipDepth             int
	resolveSelfIntersections bool

	// op is set internally by runBoolean after the options are
	// resolved from user-supplied BooleanOption values; it is not
	// configurable through a With* option itself.
	op Operator
}

// defaultBooleanOptions returns the default options: non-zero fill
// rule, a recursion cap of 40 fat-line clipping iterations, and
// self-intersection resolution enabled (matching the teacher's
// "safe by default, opt out for speed" convention).
func defaultBooleanOptions() booleanOptions {
	return booleanOptions{
		fillRule:                 NonZero,
		maxClipDepth:             40,
		resolveSelfIntersections: true,
	}
}

// WithFillRule overrides the default non-zero fill rule.
func WithFillRule(rule FillRule) BooleanOption {
	return func(o *booleanOptions) {
		o.fillRule = rule
	}
}

// WithMaxClipDepth bounds the recursion depth of fat-line curve-curve
// clipping; at the cap a remaining interval is kept only if the
// curves' midpoints lie within 10*GeometricEpsilon. The default of
// 40 is generous; lower it to trade intersection precision for speed
// on pathological inputs.
func WithMaxClipDepth(depth int) BooleanOption {
	return func(o *booleanOptions) {
		if depth > 0 {
			o.maxClipDepth = depth
		}
	}
}

// WithResolveSelfIntersections controls whether each operand path is
// first split at its own self-intersections before the operation
// runs. Disable only when the caller already knows both operands are
// simple (self-intersection-free) paths, to skip the extra pass.
func WithResolveSelfIntersections(enabled bool) BooleanOption {
	return func(o *booleanOptions) {
		o.resolveSelfIntersections = enabled
	}
}

func resolveBooleanOptions(opts []BooleanOption) booleanOptions {
	o := defaultBooleanOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
