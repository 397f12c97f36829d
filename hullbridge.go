// Package hullbridge runs a convex hull kernel and presents its results
// without copying them.
//
// The kernel keeps everything in one state and reports fatal errors by
// unwinding rather than returning. A Runner owns one such state, turns those
// exits into ordinary errors, and hands out read-only views of the facets,
// vertices and points the kernel built. Views borrow the Runner's memory and
// are only valid until it is closed.
package hullbridge

import "github.com/osuushi/hullbridge/view"

type Point = view.Point
type Facet = view.Facet
type Vertex = view.Vertex
type Ridge = view.Ridge
type FacetList = view.FacetList
type VertexList = view.VertexList

// Volume is a shortcut for the volume of the hull of count points of dim
// coordinates each. The Runner it uses is closed before returning.
func Volume(dim, count int, coords []float64, command string, opts ...Option) (volume float64, err error) {
	r, err := Hull("", dim, count, coords, command, opts...)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := r.Close(); err == nil {
			err = closeErr
		}
	}()
	return r.Volume()
}
