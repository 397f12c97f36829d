package view

import (
	"iter"
	"slices"

	"github.com/osuushi/hullbridge/kernel"
)

// Points views a contiguous array of coordinates as points of one dimension.
type Points struct {
	qh     *kernel.State
	dim    int
	coords []float64
}

// NewPoints views the kernel's input points.
func NewPoints(qh *kernel.State) Points {
	n := min(qh.NumPoints*qh.HullDim, len(qh.FirstPoint))
	return Points{qh, qh.HullDim, qh.FirstPoint[:n:n]}
}

func (ps Points) Dimension() int { return ps.dim }

func (ps Points) Count() int {
	if ps.dim <= 0 {
		return 0
	}
	return len(ps.coords) / ps.dim
}

func (ps Points) IsEmpty() bool { return ps.Count() == 0 }

func (ps Points) Value(index int) Point {
	return ps.ValueOr(index, Point{})
}

func (ps Points) ValueOr(index int, defaultValue Point) Point {
	if index < 0 || index >= ps.Count() {
		return defaultValue
	}
	start := index * ps.dim
	return Point{ps.qh, ps.coords[start : start+ps.dim : start+ps.dim]}
}

func (ps Points) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < ps.Count(); i++ {
			if !yield(ps.Value(i)) {
				return
			}
		}
	}
}

func (ps Points) Backward() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := ps.Count() - 1; i >= 0; i-- {
			if !yield(ps.Value(i)) {
				return
			}
		}
	}
}

func (ps Points) Slice() []Point                  { return slices.Collect(ps.All()) }
func (ps Points) Contains(p Point) bool           { return contains(ps.All(), p) }
func (ps Points) CountOf(p Point) int             { return countOf(ps.All(), p) }
func (ps Points) IndexOf(p Point) int             { return indexOf(ps.All(), p) }
func (ps Points) LastIndexOf(p Point) int         { return lastIndexOf(ps.Backward(), ps.Count(), p) }
func (ps Points) Iterator() *IndexIterator[Point] { return newIndexIterator(ps.Value, ps.Count()) }

func (ps Points) Equal(o Points) bool {
	return ps.dim == o.dim && ps.Count() == o.Count() && equalSequences(ps.All(), o.All())
}

func (ps Points) Print(label string, n *Numbering) Printout {
	return printAll(ps.qh, label, n, ps.All())
}

func (ps Points) PrintIdentifiers(label string, n *Numbering) Printout {
	return printIdentifiers(ps.qh, label, n, ps.All())
}

func (ps Points) String() string {
	return ps.Print("", nil).String()
}
