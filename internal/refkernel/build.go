package refkernel

import (
	"github.com/osuushi/hullbridge/kernel"
)

// The builder works on site indices and plain slices while the hull is under
// construction, and only writes kernel nodes once the hull is final.

type builder struct {
	st    *kernel.State
	sites [][]float64
	// Distance below which a point is considered to lie on a hyperplane.
	eps float64

	faces  []*face
	ridges []ridge
}

type face struct {
	// Site indices, ordered so that the normal points out of the hull.
	v      []int
	normal []float64
	offset float64
	// Neighbor j is the face opposite v[j].
	neighbors []int
	dead      bool
}

type ridge struct {
	top, bottom int
	v           []int
}

func newBuilder(st *kernel.State, sites [][]float64) *builder {
	return &builder{st: st, sites: sites, eps: distanceTolerance(sites)}
}

func (b *builder) distance(f *face, p []float64) float64 {
	dist := f.offset
	for k, n := range f.normal {
		dist += n * p[k]
	}
	return dist
}

func (b *builder) flat(shape string) {
	b.st.Fprintf(6154, "qhull precision error: initial simplex is flat (the input is %s)\n", shape)
	b.st.Errexit(kernel.ErrSingular)
}

func (b *builder) emit() {
	st := b.st

	used := make([]bool, len(b.sites))
	for _, f := range b.faces {
		if !f.dead {
			for _, v := range f.v {
				used[v] = true
			}
		}
	}
	// Vertices are listed in input order
	vertices := map[int]*kernel.Vertex{}
	for i, u := range used {
		if u {
			vertices[i] = &kernel.Vertex{Point: &b.sites[i][0]}
			st.AppendVertex(vertices[i])
		}
	}

	facets := make([]*kernel.Facet, len(b.faces))
	for i, f := range b.faces {
		if f.dead {
			continue
		}
		facet := &kernel.Facet{
			Normal:     f.normal,
			Offset:     f.offset,
			Center:     b.center(f),
			Vertices:   kernel.NewSet[kernel.Vertex](len(f.v)),
			Neighbors:  kernel.NewSet[kernel.Facet](len(f.neighbors)),
			Good:       true,
			TopOrient:  true,
			Simplicial: true,
		}
		if st.Delaunay && f.normal[st.HullDim-1] >= 0 {
			facet.Good = false
			facet.UpperDelaunay = true
		}
		for _, v := range f.v {
			facet.Vertices.Append(vertices[v])
		}
		facets[i] = facet
		st.AppendFacet(facet)
	}

	for i, f := range b.faces {
		if f.dead {
			continue
		}
		for _, n := range f.neighbors {
			facets[i].Neighbors.Append(facets[n])
		}
	}

	for _, r := range b.ridges {
		kr := &kernel.Ridge{
			Top:      facets[r.top],
			Bottom:   facets[r.bottom],
			Vertices: kernel.NewSet[kernel.Vertex](len(r.v)),
		}
		for _, v := range r.v {
			kr.Vertices.Append(vertices[v])
		}
		for _, f := range []*kernel.Facet{kr.Top, kr.Bottom} {
			if f.Ridges == nil {
				f.Ridges = kernel.NewSet[kernel.Ridge](st.HullDim)
			}
			f.Ridges.Append(kr)
		}
	}
}

func (b *builder) center(f *face) []float64 {
	center := make([]float64, len(b.sites[f.v[0]]))
	for _, v := range f.v {
		for k, c := range b.sites[v] {
			center[k] += c / float64(len(f.v))
		}
	}
	return center
}
