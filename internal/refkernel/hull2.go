package refkernel

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Andrew's monotone chain. Facets of a 2-d hull are edges, listed
// counterclockwise.
func (b *builder) hull2() {
	vec := func(i int) r2.Vec {
		return r2.Vec{X: b.sites[i][0], Y: b.sites[i][1]}
	}
	// Twice the area of the triangle o, a, c. Positive for a left turn.
	turn := func(o, a, c int) float64 {
		return r2.Cross(r2.Sub(vec(a), vec(o)), r2.Sub(vec(c), vec(o)))
	}

	order := make([]int, len(b.sites))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		p, q := vec(order[i]), vec(order[j])
		if p.X != q.X {
			return p.X < q.X
		}
		return p.Y < q.Y
	})

	// Turns smaller than this are straight
	span := r2.Norm(r2.Sub(vec(order[len(order)-1]), vec(order[0])))
	minTurn := b.eps * math.Max(span, 1)

	chain := func(indexes []int) []int {
		var hull []int
		for _, i := range indexes {
			for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], i) <= minTurn {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, i)
		}
		return hull[:len(hull)-1]
	}
	reversed := make([]int, len(order))
	for i, v := range order {
		reversed[len(order)-1-i] = v
	}
	hull := append(chain(order), chain(reversed)...)
	if len(hull) < 3 {
		b.flat("collinear")
	}

	n := len(hull)
	for i := 0; i < n; i++ {
		a, c := hull[i], hull[(i+1)%n]
		edge := r2.Sub(vec(c), vec(a))
		length := r2.Norm(edge)
		normal := r2.Vec{X: edge.Y / length, Y: -edge.X / length}
		b.faces = append(b.faces, &face{
			v:      []int{a, c},
			normal: []float64{normal.X, normal.Y},
			offset: -r2.Dot(normal, vec(a)),
			// Opposite a is the next edge, opposite c the previous one
			neighbors: []int{(i + 1) % n, (i + n - 1) % n},
		})
		b.ridges = append(b.ridges, ridge{top: i, bottom: (i + 1) % n, v: []int{c}})
	}
}
