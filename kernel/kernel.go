package kernel

// Kernel is the set of entry points the bridge calls. Every method except Init
// and Release may call st.Errexit, and so must only be called inside a
// protected region.
type Kernel interface {
	// Init prepares a freshly allocated State.
	Init(st *State)

	// Run parses the command, takes the input points, and builds the hull.
	// coords holds count points of dim coordinates each and is not copied
	// unless the kernel has to transform it.
	Run(st *State, comment string, dim, count int, coords []float64, command string)

	// ComputeAreaVolume fills in facet areas, TotArea and TotVol. It is a no-op
	// once HasAreaVolume is set.
	ComputeAreaVolume(st *State)

	// ComputeVertexNeighbors fills in each vertex's neighbor facets. It is a
	// no-op once HasVertexNeighbors is set.
	ComputeVertexNeighbors(st *State)

	// Release frees the State's storage.
	Release(st *State)
}
