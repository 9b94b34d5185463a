package curvegen

// PadEdges returns ctrl with its first and last points duplicated:
//
//	[p₀, p₀, p₁, …, pₙ₋₁, pₙ₋₁]
//
// Algorithms that only visit interior points reach the polygon's endpoints when
// given the padded polygon. Polygons with fewer than two points are returned
// as a copy, unpadded.
func PadEdges(ctrl []Point) []Point {
	if len(ctrl) < 2 {
		return degenerate(ctrl)
	}
	out := make([]Point, len(ctrl)+2)
	out[0] = ctrl[0]
	copy(out[1:], ctrl)
	out[len(out)-1] = ctrl[len(ctrl)-1]
	return out
}

// PadLoop returns ctrl wrapped around on itself:
//
//	[pₙ₋₁, p₀, p₁, …, pₙ₋₁, p₀, p₁]
//
// Every input point then has neighbors on both sides, and the segment from
// pₙ₋₁ back to p₀ is represented, so algorithms that only visit interior points
// produce a closed loop. Polygons with fewer than two points are returned as a
// copy, unpadded.
func PadLoop(ctrl []Point) []Point {
	if len(ctrl) < 2 {
		return degenerate(ctrl)
	}
	out := make([]Point, len(ctrl)+3)
	out[0] = ctrl[len(ctrl)-1]
	copy(out[1:], ctrl)
	out[len(out)-2] = ctrl[0]
	out[len(out)-1] = ctrl[1]
	return out
}

// degenerate returns a copy of a polygon with zero or one points. It is the
// result every algorithm except [Hermite] produces for such polygons.
func degenerate(ctrl []Point) []Point {
	out := make([]Point, len(ctrl))
	copy(out, ctrl)
	return out
}
