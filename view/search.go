package view

import "iter"

// Searches are linear scans using the element's Equal.

func contains[E Element[E]](seq iter.Seq[E], x E) bool {
	for e := range seq {
		if e.Equal(x) {
			return true
		}
	}
	return false
}

func countOf[E Element[E]](seq iter.Seq[E], x E) int {
	n := 0
	for e := range seq {
		if e.Equal(x) {
			n++
		}
	}
	return n
}

func indexOf[E Element[E]](seq iter.Seq[E], x E) int {
	index := 0
	for e := range seq {
		if e.Equal(x) {
			return index
		}
		index++
	}
	return -1
}

// lastIndexOf scans backward from the end, so count must be the length of
// the sequence.
func lastIndexOf[E Element[E]](backward iter.Seq[E], count int, x E) int {
	index := count - 1
	for e := range backward {
		if e.Equal(x) {
			return index
		}
		index--
	}
	return -1
}

// equalSequences compares two sequences of the same length element by
// element.
func equalSequences[E Element[E]](a, b iter.Seq[E]) bool {
	nextB, stop := iter.Pull(b)
	defer stop()
	for e := range a {
		o, ok := nextB()
		if !ok || !e.Equal(o) {
			return false
		}
	}
	_, more := nextB()
	return !more
}
