package kernel

// Set is the kernel's variable length array of element pointers. The header
// holds the element count, and the slot after the last element is always a nil
// sentinel, so the array can be walked without reading the header.
//
// A nil *Set is a valid empty set.
type Set[T any] struct {
	size int
	e    []*T
}

func NewSet[T any](capacity int) *Set[T] {
	return &Set[T]{e: make([]*T, 1, capacity+1)}
}

// Append adds an element before the sentinel. Appending nil is a kernel bug.
func (s *Set[T]) Append(x *T) {
	if x == nil {
		panic("kernel: nil element appended to set")
	}
	s.e[s.size] = x
	s.e = append(s.e, nil)
	s.size++
}

// Size reads the header.
func (s *Set[T]) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Slots returns the element slots followed by the nil sentinel. The returned
// slice aliases the set.
func (s *Set[T]) Slots() []*T {
	if s == nil {
		return nil
	}
	return s.e[:s.size+1]
}
