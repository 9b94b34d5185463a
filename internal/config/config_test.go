package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/curvegen"
	"honnef.co/go/curvegen/internal/pointio"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, curvegen.AlgBezier, cfg.Curvegen.Algorithm)
	assert.Equal(t, 1, cfg.Curvegen.Iterations)
	assert.Equal(t, pointio.FormatText, cfg.Curvegen.Format)
	assert.Equal(t, DefaultMaxPoints, cfg.Curvegen.MaxPoints)
	assert.True(t, cfg.Transform.IsIdentity())
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
[curvegen]
algorithm = BSplineAutoLoop
iterations = 4
format = svg
precision = 3
max-points = 500

[transform]
flip-y = true
scale-x = 2
translate-y = 10
`)
	require.NoError(t, err)
	assert.Equal(t, curvegen.AlgBSplineAutoLoop, cfg.Curvegen.Algorithm)
	assert.Equal(t, 4, cfg.Curvegen.Iterations)
	assert.Equal(t, pointio.FormatSVG, cfg.Curvegen.Format)
	assert.Equal(t, 3, cfg.Curvegen.Precision)
	assert.Equal(t, 500, cfg.Curvegen.MaxPoints)

	// Unset variables keep their defaults.
	assert.Equal(t, 1.0, cfg.Transform.ScaleY)

	aff := cfg.Transform.Affine()
	assert.Equal(t, curvegen.Pt(2, 8), curvegen.Pt(1, 2).Transform(aff))
	assert.False(t, cfg.Transform.IsIdentity())
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse("[curvegen]\nalgorithm = corner-cut\n")
	require.NoError(t, err)
	assert.Equal(t, curvegen.AlgCornerCut, cfg.Curvegen.Algorithm)
	assert.Equal(t, 1, cfg.Curvegen.Iterations)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown algorithm", "[curvegen]\nalgorithm = nurbs\n"},
		{"negative iterations", "[curvegen]\niterations = -1\n"},
		{"negative max points", "[curvegen]\nmax-points = -5\n"},
		{"unknown format", "[curvegen]\nformat = png\n"},
		{"zero scale", "[transform]\nscale-x = 0\n"},
		{"unknown variable", "[curvegen]\ndensity = 3\n"},
		{"syntax", "[curvegen\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Curvegen.Algorithm = curvegen.Algorithm(100)
	assert.ErrorIs(t, cfg.Validate(), curvegen.ErrUnknownAlgorithm)

	cfg = Default()
	cfg.Curvegen.Precision = -1
	assert.ErrorContains(t, cfg.Validate(), "curvegen.precision")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curvegen.gcfg")
	require.NoError(t, os.WriteFile(path, []byte("[curvegen]\nalgorithm = hermite\niterations = 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, curvegen.AlgHermite, cfg.Curvegen.Algorithm)
	assert.Equal(t, 7, cfg.Curvegen.Iterations)

	_, err = Load(filepath.Join(dir, "missing.gcfg"))
	assert.Error(t, err)
}
