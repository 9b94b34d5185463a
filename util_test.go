package curvegen

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-12
})

// distToPolyline returns the distance from pt to the closest segment of the
// polyline through pts.
func distToPolyline(pt Point, pts []Point) float64 {
	if len(pts) == 1 {
		return pt.Distance(pts[0])
	}
	best := math.Inf(1)
	for i := 0; i < len(pts)-1; i++ {
		distSq, _ := Line{pts[i], pts[i+1]}.Nearest(pt)
		best = min(best, math.Sqrt(distSq))
	}
	return best
}
