// Package curvegen generates point sequences that approximate curves defined by
// a 2D control polygon. It implements a handful of classical algorithms so that
// their output can be compared side by side: parametric evaluation (Bézier,
// Hermite) and iterative subdivision (cubic B-spline, Chaikin corner cutting).
//
// # Algorithms
//
// All algorithms share the [CurveFunc] signature: they take a control polygon
// and a non-negative iteration count and return a new slice of points, meant to
// be drawn as a polyline. The iteration count means different things to
// different families:
//
//   - [Bezier], [Hermite], [HermiteCopyEdges] and [HermiteAutoLoop] use it as a
//     sampling density. Bezier produces iterations+2 samples of the whole
//     curve, the Hermite family iterations+2 samples per segment.
//   - [BSpline], [BSplineAutoLoop] and [CornerCut] use it as subdivision depth.
//     Every round roughly doubles the number of points, so callers must bound
//     it. [OutputLen] computes the resulting length up front.
//
// The variants that reach the polygon's endpoints or close the curve are
// compositions: [PadEdges] or [PadLoop] builds a new control polygon, which is
// then handed to the base algorithm.
//
// # Blending
//
// Every algorithm blends points with [Blend], which computes a·t + b·(1−t).
// The weight on the first argument is t, not 1−t. This is observable: [Bezier]
// traces its curve from the last control point towards the first.
//
// # Dispatch
//
// [Algorithm] enumerates the algorithms and maps each to its function. Use
// [ParseAlgorithm] to look one up by name and [MakeCurve] to run it with
// argument checking:
//
//	alg, err := curvegen.ParseAlgorithm("bspline-autoloop")
//	if err != nil {
//		return err
//	}
//	pts, err := curvegen.MakeCurve(alg, ctrl, 4)
//
// The evaluators themselves panic when given a negative iteration count;
// MakeCurve returns [ErrNegativeIterations] instead.
//
// # Drawing
//
// This package does not draw. [Polyline] turns an output sequence into path
// elements, and [SVG] and [WriteSVG] format those as SVG path data. [Bounds]
// and [Affine] help with fitting curves into a viewport.
//
// # Concurrency
//
// All evaluators are pure functions without shared state and may be called
// concurrently.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Hermite Curves] on cubic.org
//   - [Subdivision], Stanford CS468 lecture slides (Chaikin, slide 22; cubic
//     B-spline masks, slide 25)
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Hermite Curves]: http://cubic.org/docs/hermite.htm
// [Subdivision]: http://graphics.stanford.edu/courses/cs468-10-fall/LectureSlides/10_Subdivision.pdf
package curvegen
