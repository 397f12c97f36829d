package hullbridge

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hullbridge/kernel"
)

func armedState() *kernel.State {
	st := &kernel.State{NoErrexit: true}
	st.InitLists()
	return st
}

func TestProtect(t *testing.T) {
	t.Run("normal return", func(t *testing.T) {
		st := armedState()
		called := false
		status := protect(st, func() {
			assert.False(t, st.NoErrexit, "armed inside the region")
			called = true
		})
		assert.True(t, called)
		assert.Equal(t, kernel.ErrNone, status)
		assert.True(t, st.NoErrexit)
	})

	t.Run("exit", func(t *testing.T) {
		st := armedState()
		reached := false
		status := protect(st, func() {
			st.Fprintf(6154, "flat\n")
			st.Errexit(kernel.ErrSingular)
			reached = true
		})
		assert.False(t, reached)
		assert.Equal(t, kernel.ErrSingular, status)
		assert.True(t, st.NoErrexit)
	})

	t.Run("nested", func(t *testing.T) {
		st := armedState()
		var inner int
		innerCalled := false
		status := protect(st, func() {
			inner = protect(st, func() { innerCalled = true })
		})
		assert.Equal(t, kernel.ErrNone, status)
		assert.Equal(t, kernel.TryError, inner)
		assert.False(t, innerCalled)
		assert.True(t, st.NoErrexit)
	})

	t.Run("foreign panic", func(t *testing.T) {
		st := armedState()
		assert.PanicsWithValue(t, "boom", func() {
			protect(st, func() { panic("boom") })
		})
		assert.True(t, st.NoErrexit, "disarmed even though the panic was passed on")
	})
}

func TestRaise(t *testing.T) {
	t.Run("success keeps informational messages", func(t *testing.T) {
		st := armedState()
		st.Fprintf(7035, "warning\n")
		assert.NoError(t, raise(st, kernel.ErrNone))
		assert.Equal(t, "QH7035 warning\n", st.Message())
	})

	t.Run("exit becomes a kernel error", func(t *testing.T) {
		st := armedState()
		st.Fprintf(6154, "flat\n")
		err := raise(st, kernel.ErrSingular)

		var kernelErr *KernelError
		require.True(t, errors.As(err, &kernelErr))
		assert.Equal(t, &KernelError{Code: 6154, Status: kernel.ErrSingular, Message: "QH6154 flat\n"}, kernelErr)
		assert.False(t, st.HasMessage(), "message moved into the error")
		assert.Equal(t, kernel.ErrNone, st.Status())
		assert.EqualError(t, err, "hullbridge kernel error QH6154 (exit status 2): QH6154 flat")
	})

	t.Run("exit without a message code", func(t *testing.T) {
		st := armedState()
		err := raise(st, kernel.ErrQhull)
		var kernelErr *KernelError
		require.True(t, errors.As(err, &kernelErr))
		assert.Equal(t, 10073, kernelErr.Code)
		assert.Equal(t, kernel.ErrQhull, kernelErr.Status)
	})

	t.Run("error message without an exit", func(t *testing.T) {
		st := armedState()
		st.Fprintf(6999, "kernel gave up quietly\n")
		err := raise(st, kernel.ErrNone)
		var kernelErr *KernelError
		require.True(t, errors.As(err, &kernelErr))
		assert.Equal(t, 6999, kernelErr.Code)
		assert.Equal(t, kernel.ErrNone, kernelErr.Status)
	})

	t.Run("nested region", func(t *testing.T) {
		st := armedState()
		st.Fprintf(7035, "outer region's warning\n")
		err := raise(st, kernel.TryError)
		var usageErr *UsageError
		require.True(t, errors.As(err, &usageErr))
		assert.Equal(t, 10071, usageErr.Code)
		assert.True(t, st.HasMessage(), "the outer region's messages are left alone")
	})
}
