package pointio

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"honnef.co/go/curvegen"
)

// WriteOptions controls [Write].
type WriteOptions struct {
	Format Format
	// Closed closes the SVG path. Other formats ignore it.
	Closed bool
	// Precision is the maximum number of decimals per coordinate. Zero means
	// as many as needed to round-trip.
	Precision int
}

// Write writes pts to w in the requested format.
func Write(w io.Writer, pts []curvegen.Point, opts WriteOptions) error {
	switch opts.Format {
	case FormatText:
		for _, pt := range pts {
			x, y := pt.Splat()
			if _, err := fmt.Fprintf(w, "%s %s\n", formatFloat(x, opts.Precision), formatFloat(y, opts.Precision)); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		return writeYAML(w, pts, opts.Precision)
	case FormatSVG:
		err := curvegen.WriteSVG(w, curvegen.Polyline(pts, opts.Closed), curvegen.SVGOptions{MaxPrecision: opts.Precision})
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	default:
		return fmt.Errorf("unknown output format %v", opts.Format)
	}
}

func writeYAML(w io.Writer, pts []curvegen.Point, prec int) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, len(pts))}
	for _, pt := range pts {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.SequenceNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: formatFloat(pt.X, prec)},
				{Kind: yaml.ScalarNode, Value: formatFloat(pt.Y, prec)},
			},
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}

func formatFloat(f float64, prec int) string {
	if prec <= 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}
