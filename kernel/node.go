package kernel

// Nodes carry no identity numbers. A node is identified by its address, and
// any numbering shown to a user is assigned at display time.

type Facet struct {
	Previous, Next *Facet

	// Outward unit normal. The signed distance of a point p from the facet's
	// hyperplane is dot(Normal, p) + Offset.
	Normal []float64
	Offset float64
	// Centroid of the facet's vertices.
	Center []float64
	// Valid once IsArea is set.
	Area float64

	Vertices  *Set[Vertex]
	Neighbors *Set[Facet]
	Ridges    *Set[Ridge]

	Good          bool
	UpperDelaunay bool
	TopOrient     bool
	Simplicial    bool
	IsArea        bool
}

type Vertex struct {
	Previous, Next *Vertex

	// First coordinate of the vertex's point. The point has State.HullDim
	// coordinates laid out contiguously from here.
	Point *float64
	// Set by ComputeVertexNeighbors.
	Neighbors *Set[Facet]
}

// Ridges are the (d-1)-faces shared by two neighboring facets.
type Ridge struct {
	Top, Bottom *Facet
	Vertices    *Set[Vertex]
}
