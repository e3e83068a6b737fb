// Package bezpath implements 2D vector-path Boolean geometry: curve
// intersection, path subdivision, winding-number propagation, and path
// tracing for union, intersection, subtraction, exclusion, and
// division of paths built from lines and cubic Bezier curves.
//
// # Overview
//
// A Path is a sequence of Segments, each carrying an anchor point and
// incoming/outgoing Bezier handles. Consecutive segments define either
// a straight line (both handles zero) or a cubic curve. Paths combine
// into CompoundPaths to represent shapes with holes.
//
// # Quick Start
//
//	a := bezpath.BuildPath().Circle(0, 0, 50).Build()
//	b := bezpath.BuildPath().Circle(30, 0, 50).Build()
//
//	union, err := a.Unite(b)
//
// # Boolean operations
//
// Unite, Intersect, Subtract, Exclude, and Divide all follow the same
// pipeline: resolve self-intersections in each operand, find all
// curve-curve intersections between the operands, divide both paths
// at those intersections, propagate winding numbers across the
// resulting segment graph, and trace the segments whose winding
// satisfies the requested operation into the result's boundary.
//
// # Architecture
//
// The package is organized by concern, all in the root package:
//   - Geometry primitives: Point, Vec2, Matrix, Rect, Line
//   - Curve algebra: CubicBez, QuadBez (curve.go, curve_eval.go, curve_classify.go)
//   - Path structure: Segment, Path, CompoundPath
//   - Intersection: fat-line clipping (intersect.go), CurveLocation (curve_location.go)
//   - Winding and containment (winding.go)
//   - Boolean engine: divide/propagate/trace (boolean.go, boolean_trace.go)
//   - SVG path data import/export (svg.go)
//
// # Coordinate system
//
// Uses standard computer graphics coordinates: origin at top-left, X
// increases right, Y increases down. Angles are in degrees unless a
// method name says otherwise (AngleInRadians), 0 pointing right and
// increasing toward +Y (clockwise on screen, since Y points down).
//
// # Numerical model
//
// All Boolean-relevant computation is performed in float64 using the
// epsilon constants defined in numerical.go (Epsilon, CurveTimeEpsilon,
// GeometricEpsilon, TrigonometricEpsilon). There is no pixel-space or
// rasterization concern in this package: it operates purely on curve
// parameters and world coordinates.
package bezpath
