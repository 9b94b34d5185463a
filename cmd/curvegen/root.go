package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/curvegen"
	"honnef.co/go/curvegen/internal/config"
	"honnef.co/go/curvegen/internal/pointio"
)

// errTooManyPoints is returned when a run would exceed the configured
// max-points limit.
var errTooManyPoints = errors.New("output would exceed max-points")

type options struct {
	configPath string
	algorithm  string
	iterations int
	format     string
	precision  int
	maxPoints  int
	verbose    bool

	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "curvegen",
		Short:         "Generate curves from control polygons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			curvegen.SetLogger(opts.log)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "read settings from this gcfg `file`")
	pf.IntVarP(&opts.iterations, "iterations", "n", 1, "iteration count (sampling density or subdivision depth)")
	pf.IntVar(&opts.maxPoints, "max-points", config.DefaultMaxPoints, "refuse to generate more points than this (0 disables the limit)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to standard error")

	root.AddCommand(newGenCmd(opts), newCompareCmd(opts), newListCmd())
	return root
}

// settings merges the config file, if any, with flags that were set
// explicitly.
func (opts *options) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		alg, err := curvegen.ParseAlgorithm(opts.algorithm)
		if err != nil {
			return nil, err
		}
		cfg.Curvegen.Algorithm = alg
	}
	if flags.Changed("iterations") {
		cfg.Curvegen.Iterations = opts.iterations
	}
	if flags.Changed("format") {
		f, err := pointio.ParseFormat(opts.format)
		if err != nil {
			return nil, err
		}
		cfg.Curvegen.Format = f
	}
	if flags.Changed("precision") {
		cfg.Curvegen.Precision = opts.precision
	}
	if flags.Changed("max-points") {
		cfg.Curvegen.MaxPoints = opts.maxPoints
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readControlPoints reads the control polygon from the named file, or from
// standard input, and applies the configured transform.
func readControlPoints(cmd *cobra.Command, args []string, t config.TransformConfig) ([]curvegen.Point, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "<stdin>"
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}
	pts, err := pointio.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if !t.IsIdentity() {
		pts = curvegen.TransformPoints(pts, t.Affine())
	}
	return pts, nil
}

// checkSize rejects runs whose output would exceed maxPoints. It also rejects
// iteration counts above maxPoints: subdivision stops growing once the polygon
// is down to a couple of points, but every round still costs an allocation.
func checkSize(alg curvegen.Algorithm, n, iterations, maxPoints int) error {
	if maxPoints == 0 {
		return nil
	}
	if iterations > maxPoints {
		return fmt.Errorf("%s with %d iterations: %w (%d iterations > %d)",
			alg, iterations, errTooManyPoints, iterations, maxPoints)
	}
	if l := curvegen.OutputLen(alg, n, iterations); l > maxPoints {
		return fmt.Errorf("%s with %d control points and %d iterations: %w (%d > %d)",
			alg, n, iterations, errTooManyPoints, l, maxPoints)
	}
	return nil
}
