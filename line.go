package curvegen

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at t ∈ [0, 1] along the line, from P0 at t = 0 to P1
// at t = 1.
//
// Eval uses the conventional parametrization, unlike [Blend].
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

// Nearest returns the squared distance from pt to the closest point on the
// line, and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// PolylineLength returns the total length of the polyline through pts. Closed
// polylines include the segment from the last point back to the first.
func PolylineLength(pts []Point, closed bool) float64 {
	var sum float64
	for i := 1; i < len(pts); i++ {
		sum += Line{pts[i-1], pts[i]}.Length()
	}
	if closed && len(pts) > 1 {
		sum += Line{pts[len(pts)-1], pts[0]}.Length()
	}
	return sum
}
