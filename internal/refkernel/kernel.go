// Package refkernel is a small convex hull kernel with the calling conventions
// of the kernel package. It builds hulls in two and three dimensions and
// Delaunay triangulations in one and two, which is enough to drive and test
// the bridge. It does not merge facets, so every facet is a simplex.
package refkernel

import (
	"math"
	"strings"

	"github.com/osuushi/hullbridge/kernel"
)

// Options the kernel refuses outright.
var unsupportedOptions = map[string]bool{"Fd": true, "TI": true}

// Options that are accepted but change nothing here.
var ignoredOptions = map[string]bool{"Qt": true, "Qx": true, "Qbb": true, "Pp": true, "QJ": true}

type Kernel struct{}

func New() *Kernel {
	return &Kernel{}
}

func (*Kernel) Init(st *kernel.State) {
	st.NoErrexit = true
	st.InitLists()
}

func (*Kernel) Release(st *kernel.State) {
	st.Release()
}

func (k *Kernel) Run(st *kernel.State, comment string, dim, count int, coords []float64, command string) {
	st.Command = command
	st.InputComment = comment
	initFlags(st, command)

	if dim < 1 {
		st.Fprintf(6050, "qhull input error: dimension %d must be positive\n", dim)
		st.Errexit(kernel.ErrInput)
	}
	if count < 0 || len(coords) < dim*count {
		st.Fprintf(6051, "qhull input error: %d coordinates given for %d points of dimension %d\n", len(coords), count, dim)
		st.Errexit(kernel.ErrInput)
	}
	hullDim := dim
	if st.Delaunay {
		hullDim++
	}
	if hullDim < 2 || hullDim > 3 {
		st.Fprintf(6052, "qhull input error: hull dimension %d is not supported by this kernel\n", hullDim)
		st.Errexit(kernel.ErrInput)
	}
	if count < hullDim+1 {
		st.Fprintf(6214, "qhull input error: not enough points(%d) to construct initial simplex (need %d)\n", count, hullDim+1)
		st.Errexit(kernel.ErrInput)
	}

	st.HullDim = hullDim
	st.NumPoints = count
	if st.Delaunay {
		st.FirstPoint = liftToParaboloid(coords, dim, count)
	} else {
		st.FirstPoint = coords[:dim*count:dim*count]
	}

	sites := make([][]float64, 0, count+1)
	for i := 0; i < count; i++ {
		sites = append(sites, st.FirstPoint[i*hullDim:(i+1)*hullDim:(i+1)*hullDim])
	}
	if st.AddInfinity {
		if st.Delaunay {
			infinity := pointAtInfinity(sites)
			st.OtherPoints = kernel.NewSet[float64](1)
			st.OtherPoints.Append(&infinity[0])
			sites = append(sites, infinity)
		} else {
			st.Fprintf(7036, "qhull warning: option 'Qz' only applies to Delaunay triangulations\n")
		}
	}
	st.Initialized = true

	b := newBuilder(st, sites)
	if hullDim == 2 {
		b.hull2()
	} else {
		b.hull3()
	}
	b.emit()

	if st.Verify {
		checkPoints(st, sites)
	}
}

func initFlags(st *kernel.State, command string) {
	fields := strings.Fields(command)
	if len(fields) > 0 && fields[0] == "qhull" {
		fields = fields[1:]
	}
	for _, option := range fields {
		switch {
		case unsupportedOptions[option]:
			st.Fprintf(6029, "qhull option error: option '%s' is not used with this program\n", option)
			st.Errexit(kernel.ErrInput)
		case option == "d":
			st.Delaunay = true
			st.OnlyGood = true
		case option == "Qz":
			st.AddInfinity = true
		case option == "Tv":
			st.Verify = true
		case ignoredOptions[option]:
		default:
			st.Fprintf(7035, "qhull warning: unknown option '%s' ignored\n", option)
		}
	}
}

// Delaunay sites are lifted onto the paraboloid x_d = |x|^2. The lower hull of
// the lifted points projects to the Delaunay triangulation.
func liftToParaboloid(coords []float64, dim, count int) []float64 {
	lifted := make([]float64, 0, (dim+1)*count)
	for i := 0; i < count; i++ {
		site := coords[i*dim : (i+1)*dim]
		var sum float64
		for _, c := range site {
			sum += c * c
		}
		lifted = append(lifted, site...)
		lifted = append(lifted, sum)
	}
	return lifted
}

// The point at infinity sits above the centroid of the sites, higher than any
// lifted site, so that it joins only upper Delaunay facets.
func pointAtInfinity(sites [][]float64) []float64 {
	dim := len(sites[0])
	infinity := make([]float64, dim)
	maxLift := math.Inf(-1)
	for _, site := range sites {
		for k := 0; k < dim-1; k++ {
			infinity[k] += site[k] / float64(len(sites))
		}
		maxLift = math.Max(maxLift, site[dim-1])
	}
	infinity[dim-1] = 2*math.Abs(maxLift) + 1
	return infinity
}

func checkPoints(st *kernel.State, sites [][]float64) {
	tolerance := distanceTolerance(sites) * 10
	for f := st.FacetList; f != st.FacetTail; f = f.Next {
		for i, site := range sites {
			if dist := signedDistance(f, site); dist > tolerance {
				st.Fprintf(6113, "qhull precision error: point p%d is outside facet by %g\n", i, dist)
				st.Errexit(kernel.ErrPrec)
			}
		}
	}
}

func signedDistance(f *kernel.Facet, p []float64) float64 {
	dist := f.Offset
	for k, n := range f.Normal {
		dist += n * p[k]
	}
	return dist
}

// Tolerances are relative to the magnitude of the input.
func distanceTolerance(sites [][]float64) float64 {
	var maxAbs float64
	for _, site := range sites {
		for _, c := range site {
			maxAbs = math.Max(maxAbs, math.Abs(c))
		}
	}
	return 1e-10 * math.Max(maxAbs, 1)
}
