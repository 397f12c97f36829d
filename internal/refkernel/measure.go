package refkernel

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/osuushi/hullbridge/kernel"
)

// In 2-d, the "area" of a hull is its perimeter and the "volume" is its area.
// Volume is the sum of the cones from an interior point over every facet.
func (*Kernel) ComputeAreaVolume(st *kernel.State) {
	if st.HasAreaVolume {
		return
	}
	requireHull(st, "area")

	interior := make([]float64, st.HullDim)
	for v := st.VertexList; v != st.VertexTail; v = v.Next {
		for k, c := range st.PointCoords(v.Point) {
			interior[k] += c / float64(st.NumVertices)
		}
	}

	st.TotArea, st.TotVol = 0, 0
	for f := st.FacetList; f != st.FacetTail; f = f.Next {
		f.Area = facetArea(st, f)
		f.IsArea = true
		st.TotArea += f.Area
		st.TotVol += -signedDistance(f, interior) * f.Area / float64(st.HullDim)
	}
	st.HasAreaVolume = true
}

func facetArea(st *kernel.State, f *kernel.Facet) float64 {
	slots := f.Vertices.Slots()
	coords := func(i int) []float64 {
		return st.PointCoords(slots[i].Point)
	}
	switch st.HullDim {
	case 2:
		a, b := coords(0), coords(1)
		return r2.Norm(r2.Sub(r2.Vec{X: b[0], Y: b[1]}, r2.Vec{X: a[0], Y: a[1]}))
	case 3:
		vec := func(i int) r3.Vector {
			c := coords(i)
			return r3.Vector{X: c[0], Y: c[1], Z: c[2]}
		}
		return vec(1).Sub(vec(0)).Cross(vec(2).Sub(vec(0))).Norm() / 2
	}
	st.Fprintf(6055, "qhull internal error: no facet area in dimension %d\n", st.HullDim)
	st.Errexit(kernel.ErrQhull)
	return math.NaN()
}

func (*Kernel) ComputeVertexNeighbors(st *kernel.State) {
	if st.HasVertexNeighbors {
		return
	}
	requireHull(st, "vertex neighbors")

	for v := st.VertexList; v != st.VertexTail; v = v.Next {
		v.Neighbors = kernel.NewSet[kernel.Facet](st.HullDim)
	}
	for f := st.FacetList; f != st.FacetTail; f = f.Next {
		for _, v := range f.Vertices.Slots() {
			if v == nil {
				break
			}
			v.Neighbors.Append(f)
		}
	}
	st.HasVertexNeighbors = true
}

func requireHull(st *kernel.State, what string) {
	if !st.Initialized || st.NumFacets == 0 {
		st.Fprintf(6056, "qhull error: cannot compute %s before the hull is built\n", what)
		st.Errexit(kernel.ErrQhull)
	}
}
