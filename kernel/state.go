// Package kernel describes the memory layout and entry points of the geometry
// kernel that the hullbridge package drives. The kernel keeps all of its
// results in one State value, reports fatal errors by unwinding to the caller
// with Errexit instead of returning, and buffers its diagnostic text until the
// caller collects it.
//
// Nothing here computes geometry. Implementations of Kernel do that.
package kernel

import (
	"fmt"
	"strings"
)

// Status codes passed to Errexit.
const (
	ErrNone     = 0
	ErrInput    = 1
	ErrSingular = 2
	ErrPrec     = 3
	ErrMem      = 4
	ErrQhull    = 5

	// Reported by the caller when a protected region could not be entered.
	TryError = 71
)

// State is one instance of the kernel's global state. It is not safe for
// concurrent use, and a State must only ever be driven by one caller.
type State struct {
	HullDim   int
	NumPoints int
	// Input points, NumPoints*HullDim coordinates. May alias the caller's
	// buffer.
	FirstPoint []float64
	// Points created by the kernel that are not in FirstPoint.
	OtherPoints *Set[float64]

	FacetList, FacetTail   *Facet
	NumFacets              int
	VertexList, VertexTail *Vertex
	NumVertices            int

	// Option flags set from the command string.
	Delaunay    bool
	OnlyGood    bool
	AddInfinity bool
	Verify      bool

	Command      string
	InputComment string

	HasAreaVolume      bool
	HasVertexNeighbors bool
	TotArea            float64
	TotVol             float64

	// True while no protected region is armed. Errexit outside a protected
	// region is fatal.
	NoErrexit bool
	// Set once the kernel has accepted its input.
	Initialized bool

	message strings.Builder
	status  int
}

// Fprintf appends a coded message to the diagnostic buffer. Codes in the
// error ranges become the kernel's status code.
func (st *State) Fprintf(code int, format string, args ...interface{}) {
	if code > 0 {
		fmt.Fprintf(&st.message, "QH%d ", code)
	}
	fmt.Fprintf(&st.message, format, args...)
	if isErrorCode(code) {
		st.status = code
	}
}

func isErrorCode(code int) bool {
	return (code >= 6000 && code < 7000) || code >= 10000
}

func (st *State) HasMessage() bool {
	return st.message.Len() > 0
}

func (st *State) Message() string {
	return st.message.String()
}

// TakeMessage returns the buffered text and clears the buffer and status.
func (st *State) TakeMessage() string {
	s := st.message.String()
	st.ClearMessage()
	return s
}

func (st *State) ClearMessage() {
	st.message.Reset()
	st.status = ErrNone
}

// Status is the code of the last error message, or ErrNone.
func (st *State) Status() int {
	return st.status
}

// SetStatus overrides the status code without adding text.
func (st *State) SetStatus(code int) {
	st.status = code
}

// Release drops everything the kernel allocated. The State must not be run
// again afterwards. Buffered messages survive so that the owner can still
// report them.
func (st *State) Release() {
	st.FirstPoint = nil
	st.OtherPoints = nil
	st.InitLists()
	st.HasAreaVolume = false
	st.HasVertexNeighbors = false
	st.Initialized = false
}
