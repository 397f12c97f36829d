package view

import (
	"iter"
	"slices"

	"github.com/osuushi/hullbridge/kernel"
)

type listNode[E any] interface {
	Element[E]
	Next() E
	Previous() E
}

// LinkedList views the nodes from begin up to, but not including, the
// sentinel end. The sentinel is a real node, so End is a valid position.
//
// Count uses the kernel's running counter for lists made by NewFacetList and
// NewVertexList. Lists made with NewLinkedList count by walking, which is
// O(n).
type LinkedList[E listNode[E]] struct {
	qh         *kernel.State
	begin, end E
	tally      func() int
}

type VertexList = LinkedList[Vertex]

func NewLinkedList[E listNode[E]](begin, end E) LinkedList[E] {
	return LinkedList[E]{qh: begin.state(), begin: begin, end: end}
}

// NewVertexList views all of the kernel's vertices.
func NewVertexList(qh *kernel.State) VertexList {
	return VertexList{
		qh:    qh,
		begin: vertexAt(qh, qh.VertexList),
		end:   vertexAt(qh, qh.VertexTail),
		tally: func() int { return qh.NumVertices },
	}
}

func (l LinkedList[E]) Begin() E { return l.begin }
func (l LinkedList[E]) End() E   { return l.end }

func (l LinkedList[E]) IsEmpty() bool {
	return l.begin.Equal(l.end)
}

func (l LinkedList[E]) Count() int {
	if l.tally != nil {
		return l.tally()
	}
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// First and Last return the zero element for an empty list.
func (l LinkedList[E]) First() E {
	if l.IsEmpty() {
		var zero E
		return zero
	}
	return l.begin
}

func (l LinkedList[E]) Last() E {
	if l.IsEmpty() {
		var zero E
		return zero
	}
	return l.end.Previous()
}

func (l LinkedList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := l.begin; e.IsValid() && !e.Equal(l.end); e = e.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

func (l LinkedList[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := l.end; e.IsValid() && !e.Equal(l.begin); {
			e = e.Previous()
			if !yield(e) {
				return
			}
		}
	}
}

func (l LinkedList[E]) Slice() []E                 { return slices.Collect(l.All()) }
func (l LinkedList[E]) Contains(x E) bool          { return contains(l.All(), x) }
func (l LinkedList[E]) CountOf(x E) int            { return countOf(l.All(), x) }
func (l LinkedList[E]) IndexOf(x E) int            { return indexOf(l.All(), x) }
func (l LinkedList[E]) LastIndexOf(x E) int        { return lastIndexOf(l.Backward(), l.Count(), x) }
func (l LinkedList[E]) Iterator() *ListIterator[E] { return newListIterator(l.begin, l.end, nil) }

// Equal compares the lists node by node.
func (l LinkedList[E]) Equal(o LinkedList[E]) bool {
	return equalSequences(l.All(), o.All())
}

func (l LinkedList[E]) Print(label string, n *Numbering) Printout {
	return printAll(l.qh, label, n, l.All())
}

func (l LinkedList[E]) PrintIdentifiers(label string, n *Numbering) Printout {
	return printIdentifiers(l.qh, label, n, l.All())
}

func (l LinkedList[E]) String() string {
	return l.Print("", nil).String()
}

// FacetList is a list of facets that, unless SelectAll is called, only shows
// good facets. Equal ignores the selection and compares every node.
type FacetList struct {
	LinkedList[Facet]
	selectAll bool
}

// NewFacetList views all of the kernel's facets, selecting only good ones.
func NewFacetList(qh *kernel.State) FacetList {
	return FacetList{LinkedList: LinkedList[Facet]{
		qh:    qh,
		begin: facetAt(qh, qh.FacetList),
		end:   facetAt(qh, qh.FacetTail),
		tally: func() int { return qh.NumFacets },
	}}
}

// Equal ignores both lists' selection.
func (l FacetList) Equal(o FacetList) bool {
	return l.LinkedList.Equal(o.LinkedList)
}

func (l *FacetList) SelectAll()       { l.selectAll = true }
func (l *FacetList) SelectGood()      { l.selectAll = false }
func (l FacetList) IsSelectAll() bool { return l.selectAll }

func (l FacetList) keep() func(Facet) bool {
	if l.selectAll {
		return nil
	}
	return Facet.IsGood
}

func (l FacetList) All() iter.Seq[Facet] {
	keep := l.keep()
	if keep == nil {
		return l.LinkedList.All()
	}
	return func(yield func(Facet) bool) {
		for f := range l.LinkedList.All() {
			if keep(f) && !yield(f) {
				return
			}
		}
	}
}

func (l FacetList) Backward() iter.Seq[Facet] {
	keep := l.keep()
	if keep == nil {
		return l.LinkedList.Backward()
	}
	return func(yield func(Facet) bool) {
		for f := range l.LinkedList.Backward() {
			if keep(f) && !yield(f) {
				return
			}
		}
	}
}

// Count is the number of selected facets. It can be zero for a list that is
// not empty.
func (l FacetList) Count() int {
	if l.selectAll {
		return l.LinkedList.Count()
	}
	n := 0
	for range l.All() {
		n++
	}
	return n
}

func (l FacetList) Slice() []Facet          { return slices.Collect(l.All()) }
func (l FacetList) Contains(f Facet) bool   { return contains(l.All(), f) }
func (l FacetList) CountOf(f Facet) int     { return countOf(l.All(), f) }
func (l FacetList) IndexOf(f Facet) int     { return indexOf(l.All(), f) }
func (l FacetList) LastIndexOf(f Facet) int { return lastIndexOf(l.Backward(), l.Count(), f) }

func (l FacetList) Iterator() *ListIterator[Facet] {
	return newListIterator(l.begin, l.end, l.keep())
}

// Vertices lists each vertex of the selected facets once, in the order they
// are first reached.
func (l FacetList) Vertices() []Vertex {
	seen := map[*kernel.Vertex]bool{}
	var result []Vertex
	for f := range l.All() {
		for v := range f.Vertices().All() {
			if !seen[v.v] {
				seen[v.v] = true
				result = append(result, v)
			}
		}
	}
	return result
}

func (l FacetList) Print(label string, n *Numbering) Printout {
	return printAll(l.qh, label, n, l.All())
}

func (l FacetList) PrintIdentifiers(label string, n *Numbering) Printout {
	return printIdentifiers(l.qh, label, n, l.All())
}

func (l FacetList) String() string {
	return l.Print("", nil).String()
}
