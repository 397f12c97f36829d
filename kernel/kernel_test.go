package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var empty *Set[Facet]
	assert.Equal(t, 0, empty.Size())
	assert.Nil(t, empty.Slots())

	s := NewSet[Facet](1)
	require.Len(t, s.Slots(), 1)
	assert.Nil(t, s.Slots()[0])

	a, b, c := &Facet{}, &Facet{}, &Facet{}
	s.Append(a)
	s.Append(b)
	s.Append(c) // past the initial capacity
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []*Facet{a, b, c, nil}, s.Slots())

	assert.Panics(t, func() { s.Append(nil) })
}

func TestLists(t *testing.T) {
	st := &State{}
	st.InitLists()
	require.NotNil(t, st.FacetTail)
	assert.Same(t, st.FacetTail, st.FacetList)
	assert.Same(t, st.VertexTail, st.VertexList)

	facets := []*Facet{{}, {}, {}}
	for _, f := range facets {
		st.AppendFacet(f)
	}
	assert.Equal(t, 3, st.NumFacets)
	assert.Same(t, facets[0], st.FacetList)

	// Walk forward to the sentinel, then back to the head
	var forward []*Facet
	f := st.FacetList
	for ; f != st.FacetTail; f = f.Next {
		forward = append(forward, f)
	}
	assert.Equal(t, facets, forward)
	assert.Nil(t, f.Next)
	assert.Nil(t, st.FacetList.Previous)
	assert.Same(t, facets[2], st.FacetTail.Previous)

	v := &Vertex{}
	st.AppendVertex(v)
	assert.Equal(t, 1, st.NumVertices)
	assert.Same(t, v, st.VertexList)
	assert.Same(t, st.VertexTail, v.Next)
}

func TestMessages(t *testing.T) {
	st := &State{}
	assert.False(t, st.HasMessage())

	st.Fprintf(7035, "qhull warning: unknown option '%s'\n", "Zz")
	assert.True(t, st.HasMessage())
	assert.Equal(t, ErrNone, st.Status(), "warnings do not set the status")

	st.Fprintf(6154, "qhull precision error: initial simplex is flat\n")
	assert.Equal(t, 6154, st.Status())
	assert.Equal(t,
		"QH7035 qhull warning: unknown option 'Zz'\nQH6154 qhull precision error: initial simplex is flat\n",
		st.Message())

	msg := st.TakeMessage()
	assert.Contains(t, msg, "QH6154")
	assert.False(t, st.HasMessage())
	assert.Equal(t, ErrNone, st.Status())
}

func TestHandleExit(t *testing.T) {
	testFn := func(st *State, status int, realPanic bool) (result int) {
		defer func() {
			result = HandleExit(recover())
		}()
		if realPanic {
			panic("true panic")
		}
		if status != ErrNone {
			st.Errexit(status)
		}
		return ErrNone
	}

	t.Run("with exit", func(t *testing.T) {
		st := &State{}
		assert.Equal(t, ErrSingular, testFn(st, ErrSingular, false))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(&State{}, ErrNone, true)
		})
	})

	t.Run("no exit", func(t *testing.T) {
		assert.Equal(t, ErrNone, testFn(&State{}, ErrNone, false))
	})

	t.Run("outside a protected region", func(t *testing.T) {
		st := &State{NoErrexit: true}
		st.Fprintf(6000, "fatal\n")
		assert.PanicsWithError(t, "kernel: exit status 1 outside a protected region: QH6000 fatal\n", func() {
			testFn(st, ErrInput, false)
		})
	})
}

func TestRelease(t *testing.T) {
	st := &State{FirstPoint: []float64{1, 2}, HasAreaVolume: true, Initialized: true}
	st.InitLists()
	st.AppendFacet(&Facet{})
	st.Fprintf(7000, "kept\n")

	st.Release()
	assert.Nil(t, st.FirstPoint)
	assert.Equal(t, 0, st.NumFacets)
	assert.Same(t, st.FacetTail, st.FacetList)
	assert.False(t, st.HasAreaVolume)
	assert.False(t, st.Initialized)
	assert.True(t, st.HasMessage())
}
