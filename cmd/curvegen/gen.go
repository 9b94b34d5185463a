package main

import (
	"github.com/spf13/cobra"

	"honnef.co/go/curvegen"
	"honnef.co/go/curvegen/internal/pointio"
)

func newGenCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [file]",
		Short: "Generate a curve with one algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			ctrl, err := readControlPoints(cmd, args, cfg.Transform)
			if err != nil {
				return err
			}
			c := cfg.Curvegen
			if err := checkSize(c.Algorithm, len(ctrl), c.Iterations, c.MaxPoints); err != nil {
				return err
			}
			pts, err := curvegen.MakeCurve(c.Algorithm, ctrl, c.Iterations)
			if err != nil {
				return err
			}
			opts.log.Debug("writing curve", "format", c.Format.String(), "points", len(pts))
			return pointio.Write(cmd.OutOrStdout(), pts, pointio.WriteOptions{
				Format:    c.Format,
				Closed:    c.Algorithm.Closed(),
				Precision: c.Precision,
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.algorithm, "algorithm", "a", curvegen.AlgBezier.String(), "curve algorithm (see 'curvegen list')")
	f.StringVarP(&opts.format, "format", "f", pointio.FormatText.String(), "output format: text, yaml or svg")
	f.IntVarP(&opts.precision, "precision", "p", 0, "maximum decimals per coordinate (0 for exact)")
	return cmd
}
