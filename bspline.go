package curvegen

// BSpline refines the control polygon ctrl towards a uniform cubic B-spline by
// applying iterations rounds of subdivision.
//
// Each round maps a polygon of L points to one of 2(L−1)−1 points using the
// Catmull-Clark curve masks: new point 2j is the midpoint of pⱼ and pⱼ₊₁
// (the ½–½ mask), and new point 2j+1 is pⱼ/8 + 6pⱼ₊₁/8 + pⱼ₊₂/8 (the ⅛–⁶⁄₈–⅛
// mask), which replaces pⱼ₊₁. The endpoints are not retained, so the curve
// shrinks away from the first and last control points; see [BSplineAutoLoop]
// for a closed variant.
//
// A polygon of zero or one points is left as is by every round. Two points
// collapse to their midpoint after one round.
func BSpline(ctrl []Point, iterations int) []Point {
	checkIterations(iterations)
	cur := degenerate(ctrl)
	for range iterations {
		if len(cur) < 2 {
			break
		}
		next := make([]Point, 2*(len(cur)-1)-1)
		for s := range next {
			j := s / 2
			if s%2 == 0 {
				next[s] = Blend(cur[j], cur[j+1], 1.0/2.0)
			} else {
				next[s] = Blend(Blend(cur[j], cur[j+2], 1.0/2.0), cur[j+1], 1.0/4.0)
			}
		}
		cur = next
	}
	return cur
}

// BSplineAutoLoop is [BSpline] applied to [PadLoop](ctrl), producing a closed
// curve.
//
// Empty input yields an empty result and a single point yields that point.
func BSplineAutoLoop(ctrl []Point, iterations int) []Point {
	checkIterations(iterations)
	if len(ctrl) < 2 {
		return degenerate(ctrl)
	}
	return BSpline(PadLoop(ctrl), iterations)
}
