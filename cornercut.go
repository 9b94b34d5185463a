package curvegen

// CornerCut applies iterations rounds of Chaikin's corner cutting to ctrl.
//
// Each round replaces every edge (a, b) of the polygon with the two points
// ¾a + ¼b and ¼a + ¾b, in that order, so a polygon of L points becomes one of
// 2(L−1) points. The result converges to a quadratic B-spline.
//
// A polygon of zero or one points has no edges and is left as is.
func CornerCut(ctrl []Point, iterations int) []Point {
	checkIterations(iterations)
	cur := degenerate(ctrl)
	for range iterations {
		if len(cur) < 2 {
			break
		}
		next := make([]Point, 0, 2*(len(cur)-1))
		for p := 0; p < len(cur)-1; p++ {
			a, b := cur[p], cur[p+1]
			next = append(next,
				Blend(a, b, 3.0/4.0),
				Blend(a, b, 1.0/4.0))
		}
		cur = next
	}
	return cur
}
