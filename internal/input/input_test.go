package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	text := `3 rbox 4 D3
4
0 0 0
1 0 0

0 1 0 0 0 1
`
	points, err := ReadText(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, "rbox 4 D3", points.Comment)
	assert.Equal(t, 3, points.Dim)
	assert.Equal(t, 4, points.Count())
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1}, points.Coords)
}

func TestReadTextErrors(t *testing.T) {
	cases := []struct {
		name, text, message string
	}{
		{"empty", "", "missing dimension"},
		{"bad dimension", "x\n1\n0\n", `invalid dimension "x"`},
		{"zero dimension", "0\n1\n0\n", `invalid dimension "0"`},
		{"missing count", "2\n", "missing point count"},
		{"bad count", "2\nmany\n", `invalid point count "many"`},
		{"bad coordinate", "2\n1\n0 y\n", `invalid coordinate "y"`},
		{"too few", "2\n2\n0 0 1\n", "expected 4 coordinates for 2 points, found 3"},
		{"too many", "2\n1\n0 0 1\n", "expected 2 coordinates for 1 points, found 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(c.text))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}

const svg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <polygon points="0,0 4,0 4,4" />
  <polyline points="5 5, 6 6" />
  <circle cx="2" cy="3" r="1" />
  <circle r="1" />
</svg>`

func TestReadSVG(t *testing.T) {
	points, err := ReadSVG(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, 2, points.Dim)
	assert.Equal(t, []float64{0, 0, 4, 0, 4, 4, 5, 5, 6, 6, 2, 3, 0, 0}, points.Coords)
}

func TestReadSVGErrors(t *testing.T) {
	cases := []struct {
		name, svg, message string
	}{
		{"no shapes", `<svg><rect width="1" height="1" /></svg>`, "no polygons"},
		{"odd points", `<svg><polygon points="0,0 1" /></svg>`, "odd number of coordinates"},
		{"bad circle", `<svg><circle cx="a" cy="0" /></svg>`, `invalid cx attribute "a" on circle`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ReadSVG(strings.NewReader(c.svg))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "square.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("2\n4\n0 0\n1 0\n1 1\n0 1\n"), 0o644))
	svgPath := filepath.Join(dir, "shapes.SVG")
	require.NoError(t, os.WriteFile(svgPath, []byte(svg), 0o644))

	points, err := ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, "square.txt", points.Comment, "named after the file when there is no comment")
	assert.Equal(t, 4, points.Count())

	points, err = ReadFile(svgPath)
	require.NoError(t, err)
	assert.Equal(t, 7, points.Count())

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
