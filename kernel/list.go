package kernel

// The facet and vertex lists end in a sentinel node rather than nil. The
// sentinel is a real node that is never part of the hull, so "one past the
// last facet" can be handled like any other position. An empty list is one
// whose head is its sentinel.
//
// This is the same layout as a circular list with a dummy head, except that the
// sentinel's Next is nil so that walking off the end is obvious.

// InitLists discards any existing facets and vertices and installs fresh
// sentinels.
func (st *State) InitLists() {
	st.FacetTail = &Facet{}
	st.FacetList = st.FacetTail
	st.NumFacets = 0

	st.VertexTail = &Vertex{}
	st.VertexList = st.VertexTail
	st.NumVertices = 0
}

// AppendFacet inserts f before the sentinel.
func (st *State) AppendFacet(f *Facet) {
	tail := st.FacetTail
	f.Next = tail
	f.Previous = tail.Previous
	if tail.Previous != nil {
		tail.Previous.Next = f
	} else {
		st.FacetList = f
	}
	tail.Previous = f
	st.NumFacets++
}

// AppendVertex inserts v before the sentinel.
func (st *State) AppendVertex(v *Vertex) {
	tail := st.VertexTail
	v.Next = tail
	v.Previous = tail.Previous
	if tail.Previous != nil {
		tail.Previous.Next = v
	} else {
		st.VertexList = v
	}
	tail.Previous = v
	st.NumVertices++
}
