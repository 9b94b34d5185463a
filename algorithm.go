package curvegen

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

var (
	// ErrNegativeIterations is returned (or, from the evaluators themselves,
	// panicked with) when the iteration count is negative.
	ErrNegativeIterations = errors.New("negative iteration count")
	// ErrUnknownAlgorithm is returned for Algorithm values outside the
	// enumeration and for names [ParseAlgorithm] does not recognize.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// CurveFunc generates an output point sequence from a control polygon.
//
// Implementations are pure: they never modify ctrl, always return a freshly
// allocated slice, and produce identical output for identical input. The
// meaning of iterations depends on the algorithm; for [Bezier] and the Hermite
// family it is the sampling density per segment, for [BSpline] and
// [CornerCut] it is the subdivision depth.
type CurveFunc func(ctrl []Point, iterations int) []Point

var (
	_ CurveFunc = Bezier
	_ CurveFunc = Hermite
	_ CurveFunc = HermiteCopyEdges
	_ CurveFunc = HermiteAutoLoop
	_ CurveFunc = CornerCut
	_ CurveFunc = BSpline
	_ CurveFunc = BSplineAutoLoop
)

// Algorithm identifies one of the curve generation algorithms.
type Algorithm int

const (
	AlgBezier Algorithm = iota
	AlgHermite
	AlgHermiteCopyEdges
	AlgHermiteAutoLoop
	AlgCornerCut
	AlgBSpline
	AlgBSplineAutoLoop

	numAlgorithms
)

var algorithmFuncs = [numAlgorithms]CurveFunc{
	AlgBezier:           Bezier,
	AlgHermite:          Hermite,
	AlgHermiteCopyEdges: HermiteCopyEdges,
	AlgHermiteAutoLoop:  HermiteAutoLoop,
	AlgCornerCut:        CornerCut,
	AlgBSpline:          BSpline,
	AlgBSplineAutoLoop:  BSplineAutoLoop,
}

var algorithmNames = [numAlgorithms]string{
	AlgBezier:           "bezier",
	AlgHermite:          "hermite",
	AlgHermiteCopyEdges: "hermite-copy-edges",
	AlgHermiteAutoLoop:  "hermite-autoloop",
	AlgCornerCut:        "corner-cut",
	AlgBSpline:          "bspline",
	AlgBSplineAutoLoop:  "bspline-autoloop",
}

// Algorithms returns all algorithms, in the order they are enumerated.
func Algorithms() []Algorithm {
	out := make([]Algorithm, numAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// Valid reports whether alg is one of the enumerated algorithms.
func (alg Algorithm) Valid() bool {
	return alg >= 0 && alg < numAlgorithms
}

func (alg Algorithm) String() string {
	if !alg.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(alg))
	}
	return algorithmNames[alg]
}

// Func returns the function implementing alg, or nil if alg is not valid.
func (alg Algorithm) Func() CurveFunc {
	if !alg.Valid() {
		return nil
	}
	return algorithmFuncs[alg]
}

// Closed reports whether the output of alg ends where it starts, so that it
// may be drawn as a closed path without adding a segment that is not on the
// curve.
//
// Only [AlgHermiteAutoLoop] qualifies. The output of [AlgBSplineAutoLoop]
// traces the whole loop and then overlaps its own beginning, so it is already
// visually closed when drawn as an open polyline.
func (alg Algorithm) Closed() bool {
	return alg == AlgHermiteAutoLoop
}

// MarshalText implements encoding.TextMarshaler.
func (alg Algorithm) MarshalText() ([]byte, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	return []byte(alg.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseAlgorithm].
func (alg *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*alg = v
	return nil
}

// ParseAlgorithm returns the algorithm with the given name. Matching ignores
// case as well as hyphens, underscores and spaces, so "bspline-autoloop",
// "BSplineAutoLoop" and "bspline_auto_loop" are all accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalizeName(name)
	for i, n := range algorithmNames {
		if normalizeName(n) == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// MakeCurve runs alg on ctrl. Unlike calling the evaluators directly, it
// reports invalid arguments as errors instead of panicking.
func MakeCurve(alg Algorithm, ctrl []Point, iterations int) ([]Point, error) {
	fn := alg.Func()
	if fn == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%s: %w: %d", alg, ErrNegativeIterations, iterations)
	}
	out := fn(ctrl, iterations)
	Logger().Debug("curve generated",
		slog.String("algorithm", alg.String()),
		slog.Int("controlPoints", len(ctrl)),
		slog.Int("iterations", iterations),
		slog.Int("points", len(out)))
	return out, nil
}

// MakeCurve is shorthand for MakeCurve(alg, ctrl, iterations).
func (alg Algorithm) MakeCurve(ctrl []Point, iterations int) ([]Point, error) {
	return MakeCurve(alg, ctrl, iterations)
}

// OutputLen returns the number of points alg produces for a control polygon of
// n points and the given iteration count, without running the algorithm.
// Subdivision algorithms grow geometrically with iterations; lengths that do
// not fit in an int are reported as math.MaxInt. Callers can use OutputLen to
// bound memory use before calling [MakeCurve].
//
// OutputLen returns -1 if alg is invalid or n or iterations is negative.
func OutputLen(alg Algorithm, n, iterations int) int {
	if !alg.Valid() || n < 0 || iterations < 0 {
		return -1
	}
	switch alg {
	case AlgBezier:
		if n < 2 {
			return n
		}
		return satAdd(iterations, 2)
	case AlgHermite:
		return hermiteLen(n, iterations)
	case AlgHermiteCopyEdges:
		if n < 2 {
			return n
		}
		return hermiteLen(n+2, iterations)
	case AlgHermiteAutoLoop:
		if n < 2 {
			return n
		}
		return hermiteLen(n+3, iterations)
	case AlgCornerCut:
		return subdivLen(n, iterations, func(l int) int { return satMul(2, l-1) })
	case AlgBSpline:
		return bsplineLen(n, iterations)
	case AlgBSplineAutoLoop:
		if n < 2 {
			return n
		}
		return bsplineLen(n+3, iterations)
	default:
		panic("unreachable")
	}
}

func hermiteLen(n, iterations int) int {
	switch {
	case n < 3:
		return 0
	case n == 3:
		return 1
	}
	return satMul(n-3, satAdd(iterations, 2))
}

func bsplineLen(n, iterations int) int {
	return subdivLen(n, iterations, func(l int) int {
		d := satMul(2, l-1)
		if d == math.MaxInt {
			return d
		}
		return d - 1
	})
}

// subdivLen applies step to n iterations times, stopping early once the length
// reaches a fixed point or saturates.
func subdivLen(n, iterations int, step func(int) int) int {
	l := n
	for range iterations {
		if l < 2 || l == math.MaxInt {
			break
		}
		next := step(l)
		if next == l {
			break
		}
		l = next
	}
	return l
}

func satAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satMul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

func checkIterations(iterations int) {
	if iterations < 0 {
		panic(fmt.Errorf("curvegen: %w: %d", ErrNegativeIterations, iterations))
	}
}
