// Package pointio reads control polygons and writes generated curves.
package pointio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/curvegen"
)

// ErrNonFinite is returned by [Read] for points with a NaN or infinite
// coordinate.
var ErrNonFinite = errors.New("coordinate is not finite")

// Read parses a control polygon from r.
//
// YAML and JSON input may be a sequence of [x, y] pairs, a sequence of
// {x: …, y: …} mappings, or a mapping whose "points" key holds either. Any
// other input is parsed as text: one point per line, two numbers separated by
// whitespace or a comma. Blank lines and everything after a '#' are ignored.
//
// Points with a NaN or infinite coordinate are rejected with [ErrNonFinite].
func Read(r io.Reader) ([]curvegen.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Content) == 1 {
		switch root := doc.Content[0]; root.Kind {
		case yaml.SequenceNode, yaml.MappingNode:
			return decodeYAML(root)
		}
	}
	return readText(data)
}

func decodeYAML(root *yaml.Node) ([]curvegen.Point, error) {
	seq := root
	if root.Kind == yaml.MappingNode {
		seq = nil
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "points" {
				seq = root.Content[i+1]
				break
			}
		}
		if seq == nil {
			return nil, fmt.Errorf("line %d: mapping has no \"points\" key", root.Line)
		}
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: points must be a sequence", seq.Line)
	}

	pts := make([]curvegen.Point, 0, len(seq.Content))
	for i, item := range seq.Content {
		pt, err := decodePoint(item)
		if err == nil {
			err = checkFinite(pt)
		}
		if err != nil {
			return nil, fmt.Errorf("point %d (line %d): %w", i, item.Line, err)
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

func decodePoint(n *yaml.Node) (curvegen.Point, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := n.Decode(&xy); err != nil {
			return curvegen.Point{}, err
		}
		if len(xy) != 2 {
			return curvegen.Point{}, fmt.Errorf("want 2 coordinates, got %d", len(xy))
		}
		return curvegen.Pt(xy[0], xy[1]), nil
	case yaml.MappingNode:
		var xy struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := n.Decode(&xy); err != nil {
			return curvegen.Point{}, err
		}
		if xy.X == nil || xy.Y == nil {
			return curvegen.Point{}, fmt.Errorf("both x and y are required")
		}
		return curvegen.Pt(*xy.X, *xy.Y), nil
	default:
		return curvegen.Point{}, fmt.Errorf("want [x, y] or {x, y}, got %q", n.Value)
	}
}

func checkFinite(pt curvegen.Point) error {
	if pt.IsNaN() || pt.IsInf() {
		return fmt.Errorf("%w: %s", ErrNonFinite, pt)
	}
	return nil
}

func readText(data []byte) ([]curvegen.Point, error) {
	pts := []curvegen.Point{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 coordinates, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pt := curvegen.Pt(x, y)
		if err := checkFinite(pt); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, pt)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}
