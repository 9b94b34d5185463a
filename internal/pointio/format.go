package pointio

import (
	"fmt"
	"strings"
)

// Format selects how output points are written.
type Format int

const (
	// FormatText writes one "x y" pair per line.
	FormatText Format = iota
	// FormatYAML writes a YAML sequence of [x, y] pairs, which can be read
	// back with [Read].
	FormatYAML
	// FormatSVG writes SVG path data.
	FormatSVG
)

var formatNames = [...]string{
	FormatText: "text",
	FormatYAML: "yaml",
	FormatSVG:  "svg",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given name. "txt" and "yml" are
// accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "svg":
		return FormatSVG, nil
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseFormat].
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
