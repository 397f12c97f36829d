// Package view presents the kernel's collections as read-only, bounds checked
// sequences without copying them.
//
// Every value in this package borrows kernel memory. A view is only valid
// while the State it was made from is alive, which for views handed out by a
// hullbridge.Runner means until the Runner is closed. Views do not check this.
package view

import (
	"io"
	"math"

	"github.com/osuushi/hullbridge/kernel"
)

// Element is implemented by the element views: Point, Facet, Vertex and Ridge.
// The zero value of an element is the default returned for out of range
// positions, and reports false from IsValid.
type Element[E any] interface {
	Equal(E) bool
	IsValid() bool

	state() *kernel.State
	identifier(n *Numbering) string
	format(w io.Writer, n *Numbering)
}

// Point is a run of Dimension() coordinates. Points that belong to the kernel
// alias its coordinate array.
type Point struct {
	qh     *kernel.State
	coords []float64
}

func pointAt(qh *kernel.State, p *float64) Point {
	if p == nil {
		return Point{}
	}
	return Point{qh, qh.PointCoords(p)}
}

// NewPoint makes a point that does not belong to any kernel, for example to
// search a collection for a coordinate tuple. The slice is not copied.
func NewPoint(coords []float64) Point {
	return Point{coords: coords}
}

func (p Point) Dimension() int {
	return len(p.coords)
}

// Coordinates aliases the point's storage and must not be modified.
func (p Point) Coordinates() []float64 {
	return p.coords
}

func (p Point) IsValid() bool {
	return len(p.coords) > 0
}

// Equal compares dimension and coordinates. Two points at different addresses
// can be equal.
func (p Point) Equal(o Point) bool {
	if len(p.coords) != len(o.coords) {
		return false
	}
	for k, c := range p.coords {
		if c != o.coords[k] {
			return false
		}
	}
	return true
}

// SameAs reports whether both points start at the same address.
func (p Point) SameAs(o Point) bool {
	if !p.IsValid() || !o.IsValid() {
		return p.IsValid() == o.IsValid()
	}
	return &p.coords[0] == &o.coords[0] && len(p.coords) == len(o.coords)
}

// ID is the index of the point in the kernel's input, -1 if the point is not
// an input point of its kernel.
func (p Point) ID() int {
	if p.qh == nil || !p.IsValid() {
		return -1
	}
	return p.qh.PointID(&p.coords[0])
}

func (p Point) Distance(o Point) float64 {
	var sum float64
	for k, c := range p.coords {
		d := c - o.coords[k]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (p Point) state() *kernel.State { return p.qh }

func (p Point) identifier(n *Numbering) string {
	return label("p", n.Point(p))
}

func (p Point) format(w io.Writer, n *Numbering) {
	io.WriteString(w, p.identifier(n)+":")
	writeCoordinates(w, p.coords)
	io.WriteString(w, "\n")
}
