package refkernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hullbridge/kernel"
)

// Run a kernel operation the way the bridge does, returning the exit status.
func protected(st *kernel.State, fn func()) (status int) {
	st.NoErrexit = false
	defer func() {
		st.NoErrexit = true
		status = kernel.HandleExit(recover())
	}()
	fn()
	return kernel.ErrNone
}

func run(t *testing.T, dim int, coords []float64, command string) (*kernel.State, int) {
	t.Helper()
	k := New()
	st := &kernel.State{}
	k.Init(st)
	status := protected(st, func() {
		k.Run(st, "test", dim, len(coords)/dim, coords, "qhull "+command)
	})
	return st, status
}

func facets(st *kernel.State) []*kernel.Facet {
	var result []*kernel.Facet
	for f := st.FacetList; f != st.FacetTail; f = f.Next {
		result = append(result, f)
	}
	return result
}

var tetrahedron = []float64{
	0, 0, 0,
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

func TestTetrahedron(t *testing.T) {
	st, status := run(t, 3, tetrahedron, "")
	require.Equal(t, kernel.ErrNone, status, st.Message())
	assert.Equal(t, 4, st.NumFacets)
	assert.Equal(t, 4, st.NumVertices)
	assert.Equal(t, 3, st.HullDim)
	assert.False(t, st.HasMessage())

	for _, f := range facets(st) {
		assert.Equal(t, 3, f.Vertices.Size())
		assert.Equal(t, 3, f.Neighbors.Size())
		assert.Equal(t, 3, f.Ridges.Size())
		assert.True(t, f.Good)
		// Every vertex of the hull is on or behind every facet
		for i := 0; i < 4; i++ {
			assert.LessOrEqual(t, signedDistance(f, tetrahedron[i*3:i*3+3]), 1e-9)
		}
		for _, n := range f.Neighbors.Slots()[:3] {
			assert.NotSame(t, f, n)
		}
	}

	k := New()
	require.Equal(t, kernel.ErrNone, protected(st, func() { k.ComputeAreaVolume(st) }))
	assert.InDelta(t, 1.0/6, st.TotVol, 1e-12)
	assert.InDelta(t, 1.5+math.Sqrt(3)/2, st.TotArea, 1e-12)
}

func TestCubeWithInteriorPoints(t *testing.T) {
	var coords []float64
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				coords = append(coords, x, y, z)
			}
		}
	}
	coords = append(coords, 0, 0, 0, 0.5, 0.25, -0.5)

	st, status := run(t, 3, coords, "Tv")
	require.Equal(t, kernel.ErrNone, status, st.Message())
	// The cube's faces are split into two triangles each
	assert.Equal(t, 12, st.NumFacets)
	assert.Equal(t, 8, st.NumVertices)

	k := New()
	require.Equal(t, kernel.ErrNone, protected(st, func() { k.ComputeAreaVolume(st) }))
	assert.InDelta(t, 8, st.TotVol, 1e-9)
	assert.InDelta(t, 24, st.TotArea, 1e-9)
}

func TestSquare(t *testing.T) {
	coords := []float64{0, 0, 2, 0, 2, 2, 0, 2, 1, 1, 1, 0}
	st, status := run(t, 2, coords, "")
	require.Equal(t, kernel.ErrNone, status, st.Message())
	assert.Equal(t, 4, st.NumFacets)
	assert.Equal(t, 4, st.NumVertices)

	k := New()
	require.Equal(t, kernel.ErrNone, protected(st, func() { k.ComputeAreaVolume(st) }))
	assert.InDelta(t, 8, st.TotArea, 1e-12, "perimeter")
	assert.InDelta(t, 4, st.TotVol, 1e-12, "enclosed area")

	for _, f := range facets(st) {
		assert.Equal(t, 2, f.Ridges.Size())
		assert.Equal(t, 1, f.Ridges.Slots()[0].Vertices.Size())
	}
}

func TestDelaunay(t *testing.T) {
	// A square with a point in the middle triangulates into four triangles
	coords := []float64{0, 0, 2, 0, 2, 2, 0, 2, 1, 1}
	st, status := run(t, 2, coords, "d Qz")
	require.Equal(t, kernel.ErrNone, status, st.Message())
	assert.True(t, st.Delaunay)
	assert.True(t, st.OnlyGood)
	assert.Equal(t, 3, st.HullDim)
	assert.Equal(t, 1, st.OtherPoints.Size())

	good := 0
	for _, f := range facets(st) {
		if f.Good {
			good++
			assert.False(t, f.UpperDelaunay)
		} else {
			assert.True(t, f.UpperDelaunay)
		}
	}
	assert.Equal(t, 4, good)
	// The point at infinity is a vertex
	assert.Equal(t, 6, st.NumVertices)
	assert.Equal(t, 5, st.PointID(st.OtherPoints.Slots()[0]))
}

func TestVertexNeighbors(t *testing.T) {
	st, status := run(t, 3, tetrahedron, "")
	require.Equal(t, kernel.ErrNone, status)

	k := New()
	require.Equal(t, kernel.ErrNone, protected(st, func() { k.ComputeVertexNeighbors(st) }))
	assert.True(t, st.HasVertexNeighbors)
	for v := st.VertexList; v != st.VertexTail; v = v.Next {
		assert.Equal(t, 3, v.Neighbors.Size())
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name    string
		dim     int
		coords  []float64
		command string
		status  int
		code    int
	}{
		{"collinear 2-d", 2, []float64{0, 0, 1, 1, 2, 2, 3, 3}, "", kernel.ErrSingular, 6154},
		{"coplanar 3-d", 3, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0}, "", kernel.ErrSingular, 6154},
		{"collinear 3-d", 3, []float64{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3}, "", kernel.ErrSingular, 6154},
		{"too few points", 3, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, "", kernel.ErrInput, 6214},
		{"unsupported dimension", 4, make([]float64, 20), "", kernel.ErrInput, 6052},
		{"unsupported option", 3, tetrahedron, "Fd", kernel.ErrInput, 6029},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st, status := run(t, c.dim, c.coords, c.command)
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.code, st.Status())
			assert.NotEmpty(t, st.Message())
			assert.Equal(t, 0, st.NumFacets)
		})
	}
}

func TestUnknownOptionWarns(t *testing.T) {
	st, status := run(t, 3, tetrahedron, "Zq")
	require.Equal(t, kernel.ErrNone, status)
	assert.Equal(t, "QH7035 qhull warning: unknown option 'Zq' ignored\n", st.Message())
	assert.Equal(t, kernel.ErrNone, st.Status())
}

func TestAreaBeforeRun(t *testing.T) {
	k := New()
	st := &kernel.State{}
	k.Init(st)
	status := protected(st, func() { k.ComputeAreaVolume(st) })
	assert.Equal(t, kernel.ErrQhull, status)
	assert.Equal(t, 6056, st.Status())
}
