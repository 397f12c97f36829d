package hullbridge

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawPNG(t *testing.T) {
	cases := []struct {
		name          string
		dim           int
		coords        []float64
		command       string
		width, height int
	}{
		{"square", 2, []float64{0, 0, 2, 0, 2, 2, 0, 2}, "", 300, 300},
		{"tetrahedron", 3, tetrahedron, "", 250, 250},
		{"delaunay", 2, squareWithCenter, "d Qz", 300, 300},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Hull(c.name, c.dim, len(c.coords)/c.dim, c.coords, c.command)
			require.NoError(t, err)
			defer closeRunner(t, r)

			path := filepath.Join(t.TempDir(), c.name+".png")
			require.NoError(t, r.DrawPNG(path, 50))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()
			img, err := png.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, c.width, img.Bounds().Dx())
			assert.Equal(t, c.height, img.Bounds().Dy())
		})
	}
}
