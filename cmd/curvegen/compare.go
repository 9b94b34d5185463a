package main

import (
	"fmt"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"honnef.co/go/curvegen"
)

type comparison struct {
	alg    curvegen.Algorithm
	points []curvegen.Point
	err    error
}

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [file]",
		Short: "Run every algorithm on the same control polygon and summarize the results",
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
			results := compareAll(ctrl, cfg.Curvegen.Iterations, cfg.Curvegen.MaxPoints)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tPOINTS\tLENGTH\tBOUNDS\tCLOSED")
			for _, res := range results {
				if res.err != nil {
					opts.log.Warn("skipped algorithm", "algorithm", res.alg.String(), "err", res.err)
					fmt.Fprintf(tw, "%s\t-\t-\t-\t%t\n", res.alg, res.alg.Closed())
					continue
				}
				bounds := "-"
				if r, ok := curvegen.Bounds(res.points); ok {
					bounds = r.String()
				}
				closed := res.alg.Closed()
				fmt.Fprintf(tw, "%s\t%d\t%.6g\t%s\t%t\n",
					res.alg, len(res.points), curvegen.PolylineLength(res.points, closed), bounds, closed)
			}
			return tw.Flush()
		},
	}
}

// compareAll runs every algorithm concurrently. Results are returned in
// enumeration order. Algorithms whose output would exceed maxPoints are not
// run.
func compareAll(ctrl []curvegen.Point, iterations, maxPoints int) []comparison {
	algs := curvegen.Algorithms()
	results := make([]comparison, len(algs))
	var wg sync.WaitGroup
	for i, alg := range algs {
		results[i].alg = alg
		if err := checkSize(alg, len(ctrl), iterations, maxPoints); err != nil {
			results[i].err = err
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i].points, results[i].err = curvegen.MakeCurve(alg, ctrl, iterations)
		}()
	}
	wg.Wait()
	return results
}
