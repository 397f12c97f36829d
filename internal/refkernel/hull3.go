package refkernel

import (
	"math"

	"github.com/golang/geo/r3"
)

// Directed edge a->b of a face, in the face's outward winding. Each edge of a
// closed hull appears once in each direction.
type edge [2]int

// Incremental hull. Each point that sees part of the hull replaces the visible
// faces with a cone of new faces from the point to the horizon.
func (b *builder) hull3() {
	vec := func(i int) r3.Vector {
		return r3.Vector{X: b.sites[i][0], Y: b.sites[i][1], Z: b.sites[i][2]}
	}

	simplex := b.initialSimplex(vec)
	interior := vec(simplex[0]).Add(vec(simplex[1])).Add(vec(simplex[2])).Add(vec(simplex[3])).Mul(0.25)

	edges := map[edge]int{}
	addFace := func(a, c, d int) {
		normal := vec(c).Sub(vec(a)).Cross(vec(d).Sub(vec(a)))
		if norm := normal.Norm(); norm > 0 {
			normal = normal.Mul(1 / norm)
		}
		f := &face{
			v:      []int{a, c, d},
			normal: []float64{normal.X, normal.Y, normal.Z},
			offset: -normal.Dot(vec(a)),
		}
		b.faces = append(b.faces, f)
		index := len(b.faces) - 1
		for j := range f.v {
			edges[edge{f.v[j], f.v[(j+1)%3]}] = index
		}
	}

	// Wind the first four faces away from the interior point
	s := simplex
	for _, tri := range [][3]int{{s[0], s[1], s[2]}, {s[0], s[1], s[3]}, {s[0], s[2], s[3]}, {s[1], s[2], s[3]}} {
		a, c, d := tri[0], tri[1], tri[2]
		normal := vec(c).Sub(vec(a)).Cross(vec(d).Sub(vec(a)))
		if normal.Dot(interior.Sub(vec(a))) > 0 {
			c, d = d, c
		}
		addFace(a, c, d)
	}

	inSimplex := map[int]bool{s[0]: true, s[1]: true, s[2]: true, s[3]: true}
	for p := range b.sites {
		if inSimplex[p] {
			continue
		}
		visible := map[int]bool{}
		for i, f := range b.faces {
			if !f.dead && b.distance(f, b.sites[p]) > b.eps {
				visible[i] = true
			}
		}
		if len(visible) == 0 {
			continue
		}

		var horizon []edge
		for i := range b.faces {
			if !visible[i] {
				continue
			}
			f := b.faces[i]
			for j := range f.v {
				e := edge{f.v[j], f.v[(j+1)%3]}
				if !visible[edges[edge{e[1], e[0]}]] {
					horizon = append(horizon, e)
				}
			}
		}
		for i := range visible {
			f := b.faces[i]
			f.dead = true
			for j := range f.v {
				e := edge{f.v[j], f.v[(j+1)%3]}
				if edges[e] == i {
					delete(edges, e)
				}
			}
		}
		for _, e := range horizon {
			addFace(e[0], e[1], p)
		}
	}

	for i, f := range b.faces {
		if f.dead {
			continue
		}
		f.neighbors = make([]int, 3)
		for j := range f.v {
			// The face opposite v[j] shares the edge v[j+1]->v[j+2], reversed
			across := edge{f.v[(j+2)%3], f.v[(j+1)%3]}
			f.neighbors[j] = edges[across]
		}
		for j := range f.v {
			e := edge{f.v[j], f.v[(j+1)%3]}
			if e[0] < e[1] {
				b.ridges = append(b.ridges, ridge{top: i, bottom: edges[edge{e[1], e[0]}], v: []int{e[0], e[1]}})
			}
		}
	}
}

// Four affinely independent sites, chosen to be far apart.
func (b *builder) initialSimplex(vec func(int) r3.Vector) [4]int {
	var s [4]int
	for i := range b.sites {
		p, q := vec(i), vec(s[0])
		if p.X < q.X || (p.X == q.X && (p.Y < q.Y || (p.Y == q.Y && p.Z < q.Z))) {
			s[0] = i
		}
	}

	farthest := func(measure func(int) float64) (int, float64) {
		best, bestValue := -1, 0.0
		for i := range b.sites {
			if v := measure(i); v > bestValue {
				best, bestValue = i, v
			}
		}
		return best, bestValue
	}

	var dist float64
	s[1], dist = farthest(func(i int) float64 {
		return vec(i).Sub(vec(s[0])).Norm()
	})
	if dist <= b.eps {
		b.flat("a single point")
	}

	axis := vec(s[1]).Sub(vec(s[0])).Normalize()
	s[2], dist = farthest(func(i int) float64 {
		return vec(i).Sub(vec(s[0])).Cross(axis).Norm()
	})
	if dist <= b.eps {
		b.flat("collinear")
	}

	normal := vec(s[1]).Sub(vec(s[0])).Cross(vec(s[2]).Sub(vec(s[0]))).Normalize()
	s[3], dist = farthest(func(i int) float64 {
		return math.Abs(vec(i).Sub(vec(s[0])).Dot(normal))
	})
	if dist <= b.eps {
		b.flat("coplanar")
	}
	return s
}
