package curvegen

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBezierDegenerate(t *testing.T) {
	diff(t, []Point{}, Bezier(nil, 3), cmpopts.EquateEmpty())
	diff(t, []Point{Pt(1, 2)}, Bezier([]Point{Pt(1, 2)}, 0))
	diff(t, []Point{Pt(1, 2)}, Bezier([]Point{Pt(1, 2)}, 10))
}

func TestBezier(t *testing.T) {
	tests := []struct {
		ctrl       []Point
		iterations int
		want       []Point
	}{
		{
			// Samples run from the last control point to the first.
			[]Point{Pt(0, 0), Pt(10, 0)},
			0,
			[]Point{Pt(10, 0), Pt(0, 0)},
		},
		{
			[]Point{Pt(0, 0), Pt(10, 0)},
			1,
			[]Point{Pt(10, 0), Pt(5, 0), Pt(0, 0)},
		},
		{
			[]Point{Pt(0, 0), Pt(10, 10), Pt(20, 0)},
			1,
			[]Point{Pt(20, 0), Pt(10, 5), Pt(0, 0)},
		},
		{
			[]Point{Pt(0, 0), Pt(0, 8), Pt(8, 8), Pt(8, 0)},
			1,
			// B(½) of a cubic is (p₀ + 3p₁ + 3p₂ + p₃) / 8.
			[]Point{Pt(8, 0), Pt(4, 6), Pt(0, 0)},
		},
	}
	for _, tt := range tests {
		diff(t, tt.want, Bezier(tt.ctrl, tt.iterations))
	}
}

func TestBezierSampleCount(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, 0), Pt(7, 2)}
	for n := range 10 {
		got := Bezier(ctrl, n)
		if len(got) != n+2 {
			t.Errorf("iterations=%d: got %d samples, want %d", n, len(got), n+2)
		}
		diff(t, ctrl[len(ctrl)-1], got[0])
		diff(t, ctrl[0], got[len(got)-1])
	}
}

func TestBezierMatchesBernstein(t *testing.T) {
	// With the reversed blend, the sample at t lies at the conventional
	// parameter 1−t.
	ctrl := []Point{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, 0)}
	const n = 6
	got := Bezier(ctrl, n)
	for i, pt := range got {
		u := 1 - float64(i)/(n+1)
		mt := 1 - u
		b0 := mt * mt * mt
		b1 := 3 * mt * mt * u
		b2 := 3 * mt * u * u
		b3 := u * u * u
		want := Pt(
			b0*ctrl[0].X+b1*ctrl[1].X+b2*ctrl[2].X+b3*ctrl[3].X,
			b0*ctrl[0].Y+b1*ctrl[1].Y+b2*ctrl[2].Y+b3*ctrl[3].Y,
		)
		diff(t, want, pt, pointComparer)
	}
}
