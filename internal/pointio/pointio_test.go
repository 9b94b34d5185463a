package pointio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/curvegen"
)

var triangle = []curvegen.Point{curvegen.Pt(0, 0), curvegen.Pt(4, 0), curvegen.Pt(4, 4.5)}

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"yaml pairs", "- [0, 0]\n- [4, 0]\n- [4, 4.5]\n"},
		{"yaml maps", "- {x: 0, y: 0}\n- {x: 4, y: 0}\n- x: 4\n  y: 4.5\n"},
		{"yaml points key", "name: triangle\npoints:\n  - [0, 0]\n  - [4, 0]\n  - [4, 4.5]\n"},
		{"json pairs", "[[0, 0], [4, 0], [4, 4.5]]"},
		{"json points key", `{"points": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 4, "y": 4.5}]}`},
		{"text", "0 0\n4 0\n4 4.5\n"},
		{"text commas", "0,0\n4, 0\n4,4.5"},
		{"text comments", "# triangle\n0 0  # origin\n\n4 0\n\t4\t4.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, triangle, got)
		})
	}
}

func TestReadEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "# nothing\n", "[]", "points: []"} {
		got, err := Read(strings.NewReader(in))
		require.NoError(t, err, "input %q", in)
		assert.Empty(t, got, "input %q", in)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"short pair", "- [0, 0]\n- [4]\n", "point 1 (line 2)"},
		{"missing y", "- {x: 1}\n", "both x and y"},
		{"scalar item", "- 3\n", "point 0"},
		{"no points key", "foo: bar\n", "no \"points\" key"},
		{"points not a sequence", "points: 3\n", "must be a sequence"},
		{"text columns", "0 0\n1 2 3\n", "line 2"},
		{"text number", "0 0\nx 1\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadNonFinite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"text nan", "0 0\nNaN 1\n", "line 2"},
		{"text inf", "0 0\n4 0\n4 -Inf\n", "line 3"},
		{"yaml nan", "- [0, 0]\n- [.nan, 1]\n", "point 1 (line 2)"},
		{"yaml inf", "points:\n  - {x: .inf, y: 0}\n", "point 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			require.ErrorIs(t, err, ErrNonFinite)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, triangle, WriteOptions{Format: FormatText}))
	assert.Equal(t, "0 0\n4 0\n4 4.5\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, triangle[2:], WriteOptions{Format: FormatText, Precision: 2}))
	assert.Equal(t, "4.00 4.50\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, triangle, WriteOptions{Format: FormatYAML}))
	assert.Equal(t, "- [0, 0]\n- [4, 0]\n- [4, 4.5]\n", buf.String())

	// Output can be fed back in as input.
	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, triangle, got)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, triangle, WriteOptions{Format: FormatSVG, Closed: true}))
	assert.Equal(t, "M0,0 L4,0 L4,4.5 Z\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, triangle, WriteOptions{Format: FormatSVG}))
	assert.Equal(t, "M0,0 L4,0 L4,4.5\n", buf.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, triangle, WriteOptions{Format: Format(9)}))
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatText, FormatYAML, FormatSVG} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = ParseFormat("png")
	assert.Error(t, err)
	assert.Equal(t, "Format(7)", Format(7).String())
}
