// Package config loads curvegen settings from gcfg (INI-style) files.
//
// A complete file looks like this:
//
//	[curvegen]
//	algorithm = bspline-autoloop
//	iterations = 3
//	format = text
//	precision = 0
//	max-points = 1000000
//
//	[transform]
//	flip-y = false
//	scale-x = 1
//	scale-y = 1
//	translate-x = 0
//	translate-y = 0
//
// Every variable is optional; missing ones keep their [Default] values.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"honnef.co/go/curvegen"
	"honnef.co/go/curvegen/internal/pointio"
)

// DefaultMaxPoints bounds the output of subdivision algorithms, whose size
// doubles with every iteration.
const DefaultMaxPoints = 1 << 20

type Config struct {
	Curvegen  CurvegenConfig
	Transform TransformConfig
}

type CurvegenConfig struct {
	Algorithm  curvegen.Algorithm
	Iterations int
	Format     pointio.Format
	Precision  int
	// Zero disables the limit.
	MaxPoints int `gcfg:"max-points"`
}

// TransformConfig maps input coordinates before curve generation. The
// transform flips (if requested), then scales, then translates.
type TransformConfig struct {
	FlipY      bool    `gcfg:"flip-y"`
	ScaleX     float64 `gcfg:"scale-x"`
	ScaleY     float64 `gcfg:"scale-y"`
	TranslateX float64 `gcfg:"translate-x"`
	TranslateY float64 `gcfg:"translate-y"`
}

// Default returns the configuration used when no file is given. Its algorithm
// and iteration count match the defaults of the interactive comparison tool:
// Bézier with one iteration.
func Default() *Config {
	return &Config{
		Curvegen: CurvegenConfig{
			Algorithm:  curvegen.AlgBezier,
			Iterations: 1,
			Format:     pointio.FormatText,
			MaxPoints:  DefaultMaxPoints,
		},
		Transform: TransformConfig{
			ScaleX: 1,
			ScaleY: 1,
		},
	}
}

// Load reads the file at path on top of [Default] and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse is like [Load] but reads the configuration from a string.
func Parse(s string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(cfg, s); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all values are in range.
func (cfg *Config) Validate() error {
	c := &cfg.Curvegen
	if !c.Algorithm.Valid() {
		return fmt.Errorf("curvegen.algorithm: %w: %d", curvegen.ErrUnknownAlgorithm, int(c.Algorithm))
	}
	if c.Iterations < 0 {
		return fmt.Errorf("curvegen.iterations must be non-negative, but is %d", c.Iterations)
	}
	if c.Precision < 0 {
		return fmt.Errorf("curvegen.precision must be non-negative, but is %d", c.Precision)
	}
	if c.MaxPoints < 0 {
		return fmt.Errorf("curvegen.max-points must be non-negative, but is %d", c.MaxPoints)
	}
	if c.Format < pointio.FormatText || c.Format > pointio.FormatSVG {
		return fmt.Errorf("curvegen.format: unknown format %v", c.Format)
	}

	t := &cfg.Transform
	if t.ScaleX == 0 || t.ScaleY == 0 {
		return fmt.Errorf("transform scale must be non-zero, but is (%g, %g)", t.ScaleX, t.ScaleY)
	}
	return nil
}

// Affine returns the transform as an affine map.
func (t TransformConfig) Affine() curvegen.Affine {
	aff := curvegen.Identity
	if t.FlipY {
		aff = curvegen.FlipY
	}
	return aff.
		ThenScale(t.ScaleX, t.ScaleY).
		ThenTranslate(curvegen.Vec(t.TranslateX, t.TranslateY))
}

// IsIdentity reports whether the transform leaves points unchanged.
func (t TransformConfig) IsIdentity() bool {
	return t.Affine() == curvegen.Identity
}
