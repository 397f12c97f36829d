package view

import (
	"iter"
	"slices"

	"github.com/osuushi/hullbridge/kernel"
)

// SetView is a read-only view of a kernel set.
//
// Count reads the set's header every time. Value instead checks the index
// against the end of the element slots as they were when the view was made,
// which saves reading the header on every access. Both agree unless the
// kernel changes the set while the view is in use, which it does not do after
// a run.
type SetView[E Element[E], T any] struct {
	qh    *kernel.State
	set   *kernel.Set[T]
	elems []*T
	wrap  func(*kernel.State, *T) E
}

type (
	FacetSet  = SetView[Facet, kernel.Facet]
	VertexSet = SetView[Vertex, kernel.Vertex]
	RidgeSet  = SetView[Ridge, kernel.Ridge]
)

func newSetView[E Element[E], T any](qh *kernel.State, set *kernel.Set[T], wrap func(*kernel.State, *T) E) SetView[E, T] {
	slots := set.Slots()
	var elems []*T
	if len(slots) > 0 {
		// Everything before the sentinel slot
		end := len(slots) - 1
		elems = slots[:end:end]
	}
	return SetView[E, T]{qh, set, elems, wrap}
}

func NewFacetSet(qh *kernel.State, set *kernel.Set[kernel.Facet]) FacetSet {
	return newSetView(qh, set, facetAt)
}

func NewVertexSet(qh *kernel.State, set *kernel.Set[kernel.Vertex]) VertexSet {
	return newSetView(qh, set, vertexAt)
}

func NewRidgeSet(qh *kernel.State, set *kernel.Set[kernel.Ridge]) RidgeSet {
	return newSetView(qh, set, ridgeAt)
}

func (s SetView[E, T]) Count() int {
	return s.set.Size()
}

func (s SetView[E, T]) IsEmpty() bool {
	return s.Count() == 0
}

// Value returns the zero element when index is out of range.
func (s SetView[E, T]) Value(index int) E {
	var zero E
	return s.ValueOr(index, zero)
}

// ValueOr returns defaultValue when index is out of range.
func (s SetView[E, T]) ValueOr(index int, defaultValue E) E {
	if index < 0 || index >= len(s.elems) {
		return defaultValue
	}
	return s.wrap(s.qh, s.elems[index])
}

func (s SetView[E, T]) First() E { return s.Value(0) }
func (s SetView[E, T]) Last() E  { return s.Value(len(s.elems) - 1) }

func (s SetView[E, T]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, p := range s.elems {
			if !yield(s.wrap(s.qh, p)) {
				return
			}
		}
	}
}

func (s SetView[E, T]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s.elems) - 1; i >= 0; i-- {
			if !yield(s.wrap(s.qh, s.elems[i])) {
				return
			}
		}
	}
}

// Slice copies the element views, not the elements.
func (s SetView[E, T]) Slice() []E {
	return slices.Collect(s.All())
}

func (s SetView[E, T]) Contains(x E) bool { return contains(s.All(), x) }
func (s SetView[E, T]) CountOf(x E) int   { return countOf(s.All(), x) }

// IndexOf is the first index of x, or -1.
func (s SetView[E, T]) IndexOf(x E) int { return indexOf(s.All(), x) }

// LastIndexOf is the last index of x, or -1.
func (s SetView[E, T]) LastIndexOf(x E) int {
	return lastIndexOf(s.Backward(), len(s.elems), x)
}

// Equal compares element by element, never by address, so views of two
// different sets with the same elements are equal.
func (s SetView[E, T]) Equal(o SetView[E, T]) bool {
	if s.Count() != o.Count() {
		return false
	}
	return equalSequences(s.All(), o.All())
}

func (s SetView[E, T]) Iterator() *IndexIterator[E] {
	return newIndexIterator[E](s.Value, len(s.elems))
}

// Print dumps every element. A nil Numbering starts a fresh one.
func (s SetView[E, T]) Print(label string, n *Numbering) Printout {
	return printAll(s.qh, label, n, s.All())
}

func (s SetView[E, T]) PrintIdentifiers(label string, n *Numbering) Printout {
	return printIdentifiers(s.qh, label, n, s.All())
}

func (s SetView[E, T]) String() string {
	return s.Print("", nil).String()
}

// PointSet is a set of points of one dimension, such as the kernel's other
// points.
type PointSet struct {
	SetView[Point, float64]
}

func NewPointSet(qh *kernel.State, set *kernel.Set[float64]) PointSet {
	return PointSet{newSetView(qh, set, pointAt)}
}

func (s PointSet) Dimension() int {
	if s.qh == nil {
		return 0
	}
	return s.qh.HullDim
}

func (s PointSet) Equal(o PointSet) bool {
	return s.Dimension() == o.Dimension() && s.SetView.Equal(o.SetView)
}
