package view

// Iterator is a cursor that sits between elements. A fresh iterator is before
// the first element; ToBack moves it after the last.
//
// Calling Next when HasNext is false, or Previous when HasPrevious is false,
// is a mistake. It returns the zero element and leaves the cursor where it
// is.
type Iterator[E any] interface {
	HasNext() bool
	Next() E
	PeekNext() E
	HasPrevious() bool
	Previous() E
	PeekPrevious() E

	// FindNext moves forward until it has passed an element equal to x. On
	// failure the cursor ends up after the last element.
	FindNext(x E) bool
	// FindPrevious moves backward until it is just before an element equal to
	// x. On failure the cursor ends up before the first element.
	FindPrevious(x E) bool

	ToFront()
	ToBack()
}

var (
	_ Iterator[Point] = (*IndexIterator[Point])(nil)
	_ Iterator[Facet] = (*ListIterator[Facet])(nil)
)

// IndexIterator walks a random access view.
type IndexIterator[E Element[E]] struct {
	value func(int) E
	n     int
	i     int
}

func newIndexIterator[E Element[E]](value func(int) E, n int) *IndexIterator[E] {
	return &IndexIterator[E]{value: value, n: n}
}

func (it *IndexIterator[E]) HasNext() bool     { return it.i < it.n }
func (it *IndexIterator[E]) HasPrevious() bool { return it.i > 0 }
func (it *IndexIterator[E]) PeekNext() E       { return it.value(it.i) }
func (it *IndexIterator[E]) PeekPrevious() E   { return it.value(it.i - 1) }
func (it *IndexIterator[E]) ToFront()          { it.i = 0 }
func (it *IndexIterator[E]) ToBack()           { it.i = it.n }

func (it *IndexIterator[E]) Next() E {
	if !it.HasNext() {
		var zero E
		return zero
	}
	it.i++
	return it.value(it.i - 1)
}

func (it *IndexIterator[E]) Previous() E {
	if !it.HasPrevious() {
		var zero E
		return zero
	}
	it.i--
	return it.value(it.i)
}

func (it *IndexIterator[E]) FindNext(x E) bool {
	for it.HasNext() {
		if it.Next().Equal(x) {
			return true
		}
	}
	return false
}

func (it *IndexIterator[E]) FindPrevious(x E) bool {
	for it.HasPrevious() {
		if it.Previous().Equal(x) {
			return true
		}
	}
	return false
}

// ListIterator walks a linked list from its first node to its sentinel. If
// keep is set, nodes it rejects are stepped over.
type ListIterator[E listNode[E]] struct {
	begin, end E
	cur        E
	keep       func(E) bool
}

func newListIterator[E listNode[E]](begin, end E, keep func(E) bool) *ListIterator[E] {
	return &ListIterator[E]{begin: begin, end: end, cur: begin, keep: keep}
}

func (it *ListIterator[E]) skip(e E) bool {
	return it.keep != nil && !it.keep(e)
}

// Moves the cursor past rejected nodes so that cur is either the sentinel or
// the node Next will return.
func (it *ListIterator[E]) settle() {
	for !it.cur.Equal(it.end) && it.skip(it.cur) {
		it.cur = it.cur.Next()
	}
}

func (it *ListIterator[E]) previous() (E, bool) {
	for p := it.cur; !p.Equal(it.begin); {
		p = p.Previous()
		if !it.skip(p) {
			return p, true
		}
	}
	var zero E
	return zero, false
}

func (it *ListIterator[E]) HasNext() bool {
	it.settle()
	return !it.cur.Equal(it.end)
}

func (it *ListIterator[E]) Next() E {
	if !it.HasNext() {
		var zero E
		return zero
	}
	e := it.cur
	it.cur = it.cur.Next()
	return e
}

func (it *ListIterator[E]) PeekNext() E {
	if !it.HasNext() {
		var zero E
		return zero
	}
	return it.cur
}

func (it *ListIterator[E]) HasPrevious() bool {
	_, ok := it.previous()
	return ok
}

func (it *ListIterator[E]) Previous() E {
	p, ok := it.previous()
	if ok {
		it.cur = p
	}
	return p
}

func (it *ListIterator[E]) PeekPrevious() E {
	p, _ := it.previous()
	return p
}

func (it *ListIterator[E]) FindNext(x E) bool {
	for it.HasNext() {
		if it.Next().Equal(x) {
			return true
		}
	}
	return false
}

func (it *ListIterator[E]) FindPrevious(x E) bool {
	for it.HasPrevious() {
		if it.Previous().Equal(x) {
			return true
		}
	}
	return false
}

func (it *ListIterator[E]) ToFront() { it.cur = it.begin }
func (it *ListIterator[E]) ToBack()  { it.cur = it.end }
