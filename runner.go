package hullbridge

import (
	"io"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/hullbridge/kernel"
	"github.com/osuushi/hullbridge/view"
)

// hullState is the kernel's state plus what the Runner tracks about it. The
// kernel only ever sees &hullState.State, so State has to be the first field.
type hullState struct {
	kernel.State

	runCalled bool
	// Set when the kernel fails. The kernel's lists are then only fit to be
	// released.
	failed bool
	origin []float64
}

func checkLayout(qh *hullState) error {
	base := uintptr(unsafe.Pointer(&qh.State))
	self := uintptr(unsafe.Pointer(qh))
	if base != self {
		return errors.WithStack(&LayoutError{Code: 10074, Offset: base - self})
	}
	return nil
}

// Runner owns one kernel state. It runs the kernel once and then hands out
// views of the result.
//
// A Runner must be closed. Views it hands out borrow its memory and must not
// be used after Close. A Runner is not safe for concurrent use, but separate
// Runners are independent.
type Runner struct {
	qh *hullState
	// Empty state viewed in place of qh once the kernel has failed.
	blank *kernel.State

	kernel kernel.Kernel
	log    *zap.Logger
	sink   io.Writer
	closed bool
}

func New(opts ...Option) (*Runner, error) {
	r := defaultRunner()
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}

	r.qh = &hullState{}
	if err := checkLayout(r.qh); err != nil {
		return nil, err
	}
	r.kernel.Init(&r.qh.State)

	r.blank = &kernel.State{}
	r.blank.InitLists()
	return r, nil
}

// Hull makes a Runner and runs it. If the run fails, the Runner is closed and
// only the error is returned.
func Hull(comment string, dim, count int, coords []float64, command string, opts ...Option) (*Runner, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Run(comment, dim, count, coords, command); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Runner) state() *kernel.State {
	return &r.qh.State
}

// The state that views are made from.
func (r *Runner) readable() *kernel.State {
	if r.closed || r.qh.failed {
		return r.blank
	}
	return r.state()
}

func (r *Runner) checkInitialized() error {
	if r.closed || r.qh.failed || !r.qh.Initialized {
		return newUsageError(10023, "kernel not initialized. Call Run first.")
	}
	return nil
}

// Records a failure returned by raise.
func (r *Runner) fail(operation string, err error) error {
	var kernelErr *KernelError
	if errors.As(err, &kernelErr) {
		r.qh.failed = true
	}
	r.log.Warn("kernel call failed", zap.String("operation", operation), zap.Error(err))
	return err
}

// Run builds the hull of count points of dim coordinates each. coords is not
// copied, and must not change while the Runner is open. command holds the
// kernel's options, such as "d Qz" for a Delaunay triangulation.
//
// Run may only be called once.
func (r *Runner) Run(comment string, dim, count int, coords []float64, command string) error {
	if r.closed {
		return newUsageError(10023, "runner is closed")
	}
	if r.qh.runCalled {
		return newUsageError(10027, "Run called twice. Only one call allowed.")
	}
	r.qh.runCalled = true

	st, k := r.state(), r.kernel
	command = "qhull " + command
	r.log.Debug("running kernel",
		zap.String("comment", comment),
		zap.Int("dimension", dim),
		zap.Int("points", count),
		zap.String("command", command))

	status := protect(st, func() {
		k.Run(st, comment, dim, count, coords, command)
	})
	r.qh.origin = make([]float64, st.HullDim)
	if err := raise(st, status); err != nil {
		return r.fail("run", err)
	}

	r.log.Debug("kernel run complete",
		zap.Int("hullDimension", st.HullDim),
		zap.Int("facets", st.NumFacets),
		zap.Int("vertices", st.NumVertices))
	return nil
}

func (r *Runner) computeAreaVolume() error {
	if err := r.checkInitialized(); err != nil {
		return err
	}
	st, k := r.state(), r.kernel
	if st.HasAreaVolume {
		return nil
	}
	status := protect(st, func() {
		k.ComputeAreaVolume(st)
	})
	if err := raise(st, status); err != nil {
		return r.fail("area", err)
	}
	r.log.Debug("computed area and volume", zap.Float64("area", st.TotArea), zap.Float64("volume", st.TotVol))
	return nil
}

// Area is the surface area of the hull, or its perimeter in 2-d. It is
// computed on first use.
func (r *Runner) Area() (float64, error) {
	if err := r.computeAreaVolume(); err != nil {
		return 0, err
	}
	return r.qh.TotArea, nil
}

// Volume is the volume of the hull, or its area in 2-d. It is computed on
// first use.
func (r *Runner) Volume() (float64, error) {
	if err := r.computeAreaVolume(); err != nil {
		return 0, err
	}
	return r.qh.TotVol, nil
}

// DefineVertexNeighborFacets fills in Vertex.Neighbors. Calling it again does
// nothing.
func (r *Runner) DefineVertexNeighborFacets() error {
	if err := r.checkInitialized(); err != nil {
		return err
	}
	st, k := r.state(), r.kernel
	if st.HasVertexNeighbors {
		return nil
	}
	status := protect(st, func() {
		k.ComputeVertexNeighbors(st)
	})
	if err := raise(st, status); err != nil {
		return r.fail("vertex neighbors", err)
	}
	return nil
}

// Facets shows only good facets until SelectAll is called on the result.
func (r *Runner) Facets() view.FacetList {
	return view.NewFacetList(r.readable())
}

func (r *Runner) Vertices() view.VertexList {
	return view.NewVertexList(r.readable())
}

// Points are the input points. For a Delaunay triangulation they have been
// lifted to the paraboloid, and have one more coordinate than the input.
func (r *Runner) Points() view.Points {
	return view.NewPoints(r.readable())
}

// OtherPoints are points the kernel added, such as the point at infinity.
func (r *Runner) OtherPoints() view.PointSet {
	qh := r.readable()
	return view.NewPointSet(qh, qh.OtherPoints)
}

// Origin is the zero point of the hull's dimension. It is nil before Run.
func (r *Runner) Origin() view.Point {
	return view.NewPoint(r.qh.origin)
}

func (r *Runner) Dimension() int {
	return r.readable().HullDim
}

// Numbering returns a fresh numbering for printing this Runner's views.
func (r *Runner) Numbering() *view.Numbering {
	return view.NewNumbering(r.readable())
}

// HasMessage reports whether the kernel left informational messages behind.
func (r *Runner) HasMessage() bool {
	return r.qh.HasMessage()
}

func (r *Runner) TakeMessage() string {
	return r.qh.TakeMessage()
}

// Close releases the kernel's memory. Messages that were never taken are
// written to the diagnostic sink first. Closing twice does nothing.
func (r *Runner) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	st := r.state()
	var err error
	if st.HasMessage() {
		message := st.TakeMessage()
		r.log.Warn("kernel output at close", zap.String("message", message))
		_, err = io.WriteString(r.sink, "\nQhull output at end\n"+message)
		err = errors.Wrap(err, "could not flush kernel output")
	}
	r.kernel.Release(st)
	return err
}
