package curvegen

// Bezier samples the Bézier curve defined by the control polygon ctrl using De
// Casteljau's algorithm.
//
// The curve is evaluated at iterations+2 uniformly spaced parameter values
// t = i/(iterations+1), for i = 0, …, iterations+1. Evaluation repeatedly
// replaces the working polygon with the [Blend] of each pair of adjacent
// points until two points remain, whose blend is the sample.
//
// Because of the weighting used by Blend, the first sample is the last control
// point and the last sample is the first control point; the curve is traced
// backwards relative to the usual parametrization.
//
// An empty polygon yields an empty result. A single point yields that point,
// regardless of iterations.
func Bezier(ctrl []Point, iterations int) []Point {
	checkIterations(iterations)
	switch len(ctrl) {
	case 0:
		return []Point{}
	case 1:
		return []Point{ctrl[0]}
	}

	n := iterations + 1
	out := make([]Point, 0, n+1)
	// Scratch space for the reduction; ctrl itself is never written to.
	work := make([]Point, len(ctrl)-1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, deCasteljau(ctrl, work, t))
	}
	return out
}

// deCasteljau evaluates the curve defined by ctrl at t, using work (of length
// at least len(ctrl)-1) as scratch space. len(ctrl) must be at least 2.
func deCasteljau(ctrl, work []Point, t float64) Point {
	src := ctrl
	for len(src) > 2 {
		dst := work[:len(src)-1]
		for i := range dst {
			dst[i] = Blend(src[i], src[i+1], t)
		}
		src = dst
	}
	return Blend(src[0], src[1], t)
}
