package hullbridge

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the hull so edge strokes are not clipped
const drawPadding = 100

// DrawPNG draws the selected facets, projected onto the x-y plane, and saves
// them as a PNG. scale is the number of pixels per unit.
func (r *Runner) DrawPNG(path string, scale float64) error {
	facets := r.Facets()
	vertices := facets.Vertices()
	if len(vertices) == 0 {
		return newUsageError(10023, "nothing to draw. Call Run first.")
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, v := range vertices {
		p := v.Point().Coordinates()
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for f := range facets.All() {
		first := true
		for v := range f.Vertices().All() {
			p := v.Point().Coordinates()
			if first {
				c.MoveTo(p[0], p[1])
				first = false
			} else {
				c.LineTo(p[0], p[1])
			}
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.3)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, v := range vertices {
		p := v.Point().Coordinates()
		c.DrawCircle(p[0], p[1], 4/scale)
		c.Fill()
	}

	return errors.Wrap(c.SavePNG(path), "could not save hull drawing")
}
