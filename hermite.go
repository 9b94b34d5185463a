package curvegen

// Hermite interpolates the interior points of ctrl with cubic Hermite
// segments whose tangents are estimated Catmull-Rom style.
//
// The tangent at an interior point i is (ctrl[i+1] − ctrl[i−1]) / 2. The first
// and last control points only serve as neighbors for those tangents; no
// segment starts or ends at them. Each segment between ctrl[k] and ctrl[k+1],
// for 1 ≤ k ≤ len(ctrl)−3, is sampled at iterations+2 uniformly spaced
// parameter values, both ends included. Segment samples are concatenated in
// order, so the point where two segments meet appears twice.
//
// Fewer than three control points yield an empty result. Exactly three yield
// the middle point.
//
// Use [HermiteCopyEdges] to reach the first and last control points and
// [HermiteAutoLoop] to produce a closed curve.
func Hermite(ctrl []Point, iterations int) []Point {
	checkIterations(iterations)
	switch {
	case len(ctrl) < 3:
		return []Point{}
	case len(ctrl) == 3:
		return []Point{ctrl[1]}
	}

	// tangents[i] belongs to ctrl[i+1]; the endpoints have none.
	tangents := make([]Vec2, len(ctrl)-2)
	for i := range tangents {
		tangents[i] = ctrl[i+2].Sub(ctrl[i]).Div(2)
	}

	steps := iterations + 1
	out := make([]Point, 0, (len(ctrl)-3)*(steps+1))
	for k := 1; k < len(ctrl)-2; k++ {
		p0, p1 := ctrl[k], ctrl[k+1]
		m0, m1 := tangents[k-1], tangents[k]
		for i := 0; i <= steps; i++ {
			s := float64(i) / float64(steps)
			out = append(out, hermitePoint(p0, p1, m0, m1, s))
		}
	}
	return out
}

// hermitePoint evaluates the cubic Hermite segment from p0 to p1 with
// tangents m0 and m1 at s ∈ [0, 1].
func hermitePoint(p0, p1 Point, m0, m1 Vec2, s float64) Point {
	s2 := s * s
	s3 := s2 * s
	h1 := 2*s3 - 3*s2 + 1
	h2 := -2*s3 + 3*s2
	h3 := s3 - 2*s2 + s
	h4 := s3 - s2
	return Point{
		X: h1*p0.X + h2*p1.X + h3*m0.X + h4*m1.X,
		Y: h1*p0.Y + h2*p1.Y + h3*m0.Y + h4*m1.Y,
	}
}

// HermiteCopyEdges is [Hermite] applied to [PadEdges](ctrl). Duplicating the
// endpoints makes them interior, so the curve passes through every control
// point.
//
// Empty input yields an empty result and a single point yields that point.
func HermiteCopyEdges(ctrl []Point, iterations int) []Point {
	checkIterations(iterations)
	if len(ctrl) < 2 {
		return degenerate(ctrl)
	}
	return Hermite(PadEdges(ctrl), iterations)
}

// HermiteAutoLoop is [Hermite] applied to [PadLoop](ctrl), producing a closed
// curve through every control point.
//
// Empty input yields an empty result and a single point yields that point.
func HermiteAutoLoop(ctrl []Point, iterations int) []Point {
	checkIterations(iterations)
	if len(ctrl) < 2 {
		return degenerate(ctrl)
	}
	return Hermite(PadLoop(ctrl), iterations)
}
