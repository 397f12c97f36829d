package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/hullbridge/dbg"
	"github.com/osuushi/hullbridge/kernel"
)

// Facet, Vertex and Ridge are identified by the node they view. Two views are
// equal only if they view the same node.

type Facet struct {
	qh *kernel.State
	f  *kernel.Facet
}

func facetAt(qh *kernel.State, f *kernel.Facet) Facet {
	if f == nil {
		return Facet{}
	}
	return Facet{qh, f}
}

func (f Facet) IsValid() bool      { return f.f != nil }
func (f Facet) Equal(o Facet) bool { return f.f == o.f }

// Next and Previous step along the facet list. Stepping off either end gives
// the zero Facet.
func (f Facet) Next() Facet {
	if f.f == nil {
		return Facet{}
	}
	return facetAt(f.qh, f.f.Next)
}

func (f Facet) Previous() Facet {
	if f.f == nil {
		return Facet{}
	}
	return facetAt(f.qh, f.f.Previous)
}

func (f Facet) IsGood() bool          { return f.f != nil && f.f.Good }
func (f Facet) IsUpperDelaunay() bool { return f.f != nil && f.f.UpperDelaunay }
func (f Facet) IsTopOrient() bool     { return f.f != nil && f.f.TopOrient }
func (f Facet) IsSimplicial() bool    { return f.f != nil && f.f.Simplicial }

// Normal aliases kernel memory.
func (f Facet) Normal() []float64 {
	if f.f == nil {
		return nil
	}
	return f.f.Normal
}

func (f Facet) Offset() float64 {
	if f.f == nil {
		return 0
	}
	return f.f.Offset
}

func (f Facet) Center() Point {
	if f.f == nil {
		return Point{}
	}
	return Point{f.qh, f.f.Center}
}

// Area is only known once the runner has computed areas.
func (f Facet) Area() (float64, bool) {
	if f.f == nil || !f.f.IsArea {
		return 0, false
	}
	return f.f.Area, true
}

// Distance is the signed distance of p above the facet's hyperplane.
func (f Facet) Distance(p Point) float64 {
	dist := f.Offset()
	for k, n := range f.Normal() {
		dist += n * p.coords[k]
	}
	return dist
}

func (f Facet) Vertices() VertexSet {
	if f.f == nil {
		return VertexSet{}
	}
	return NewVertexSet(f.qh, f.f.Vertices)
}

func (f Facet) Neighbors() FacetSet {
	if f.f == nil {
		return FacetSet{}
	}
	return NewFacetSet(f.qh, f.f.Neighbors)
}

func (f Facet) Ridges() RidgeSet {
	if f.f == nil {
		return RidgeSet{}
	}
	return NewRidgeSet(f.qh, f.f.Ridges)
}

// DbgName is a memorable, colored name for debugging. Green facets are good,
// cyan ones are upper Delaunay, red ones are neither.
func (f Facet) DbgName() string {
	name := dbg.Name(f.f)
	switch {
	case f.IsGood():
		return aurora.Green(name).String()
	case f.IsUpperDelaunay():
		return aurora.Cyan(name).String()
	}
	return aurora.Red(name).String()
}

func (f Facet) state() *kernel.State { return f.qh }

func (f Facet) identifier(n *Numbering) string {
	return label("f", n.Facet(f))
}

func (f Facet) format(w io.Writer, n *Numbering) {
	fmt.Fprintf(w, "- %s\n", f.identifier(n))
	var flags []string
	for _, flag := range []struct {
		set  bool
		name string
	}{
		{f.IsGood(), "good"},
		{f.IsUpperDelaunay(), "upperDelaunay"},
		{f.IsTopOrient(), "top"},
		{f.IsSimplicial(), "simplicial"},
	} {
		if flag.set {
			flags = append(flags, flag.name)
		}
	}
	fmt.Fprintf(w, "    - flags: %s\n", strings.Join(flags, " "))
	io.WriteString(w, "    - normal:")
	writeCoordinates(w, f.Normal())
	fmt.Fprintf(w, "\n    - offset: %g\n", f.Offset())
	io.WriteString(w, "    - center:")
	writeCoordinates(w, f.Center().coords)
	io.WriteString(w, "\n")
	if area, ok := f.Area(); ok {
		fmt.Fprintf(w, "    - area: %g\n", area)
	}
	fmt.Fprintf(w, "    - vertices: %s\n", identifiers(f.Vertices().All(), n))
	fmt.Fprintf(w, "    - neighboring facets: %s\n", identifiers(f.Neighbors().All(), n))
}

type Vertex struct {
	qh *kernel.State
	v  *kernel.Vertex
}

func vertexAt(qh *kernel.State, v *kernel.Vertex) Vertex {
	if v == nil {
		return Vertex{}
	}
	return Vertex{qh, v}
}

func (v Vertex) IsValid() bool       { return v.v != nil }
func (v Vertex) Equal(o Vertex) bool { return v.v == o.v }

func (v Vertex) Next() Vertex {
	if v.v == nil {
		return Vertex{}
	}
	return vertexAt(v.qh, v.v.Next)
}

func (v Vertex) Previous() Vertex {
	if v.v == nil {
		return Vertex{}
	}
	return vertexAt(v.qh, v.v.Previous)
}

func (v Vertex) Point() Point {
	if v.v == nil {
		return Point{}
	}
	return pointAt(v.qh, v.v.Point)
}

// Neighbors is empty until the runner has defined vertex neighbors.
func (v Vertex) Neighbors() FacetSet {
	if v.v == nil {
		return FacetSet{}
	}
	return NewFacetSet(v.qh, v.v.Neighbors)
}

func (v Vertex) DbgName() string {
	return aurora.Yellow(dbg.Name(v.v)).String()
}

func (v Vertex) state() *kernel.State { return v.qh }

func (v Vertex) identifier(n *Numbering) string {
	return label("v", n.Vertex(v))
}

func (v Vertex) format(w io.Writer, n *Numbering) {
	p := v.Point()
	fmt.Fprintf(w, "- %s (%s):", v.identifier(n), p.identifier(n))
	writeCoordinates(w, p.coords)
	io.WriteString(w, "\n")
	if v.v != nil && v.v.Neighbors != nil {
		fmt.Fprintf(w, "    - neighborFacets: %s\n", identifiers(v.Neighbors().All(), n))
	}
}

type Ridge struct {
	qh *kernel.State
	r  *kernel.Ridge
}

func ridgeAt(qh *kernel.State, r *kernel.Ridge) Ridge {
	if r == nil {
		return Ridge{}
	}
	return Ridge{qh, r}
}

func (r Ridge) IsValid() bool      { return r.r != nil }
func (r Ridge) Equal(o Ridge) bool { return r.r == o.r }

func (r Ridge) Top() Facet {
	if r.r == nil {
		return Facet{}
	}
	return facetAt(r.qh, r.r.Top)
}

func (r Ridge) Bottom() Facet {
	if r.r == nil {
		return Facet{}
	}
	return facetAt(r.qh, r.r.Bottom)
}

// OtherFacet is the facet across the ridge from f.
func (r Ridge) OtherFacet(f Facet) Facet {
	if r.Top().Equal(f) {
		return r.Bottom()
	}
	return r.Top()
}

func (r Ridge) Vertices() VertexSet {
	if r.r == nil {
		return VertexSet{}
	}
	return NewVertexSet(r.qh, r.r.Vertices)
}

func (r Ridge) state() *kernel.State { return r.qh }

func (r Ridge) identifier(n *Numbering) string {
	return label("r", n.Ridge(r))
}

func (r Ridge) format(w io.Writer, n *Numbering) {
	fmt.Fprintf(w, "- %s tops %s bottoms %s vertices: %s\n",
		r.identifier(n),
		r.Top().identifier(n),
		r.Bottom().identifier(n),
		identifiers(r.Vertices().All(), n))
}
