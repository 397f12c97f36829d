package kernel

import "github.com/pkg/errors"

// The kernel's algorithms are deeply recursive, and it has no way to return
// errors from them. A fatal error unwinds straight back to the innermost
// protected region instead. The region is armed by clearing NoErrexit, and
// recovers the Exit value with HandleExit.

// Exit is the value carried by the panic that Errexit raises.
type Exit struct {
	Status int
}

// Errexit abandons the current kernel operation. The message explaining why
// must already be in the buffer.
func (st *State) Errexit(status int) {
	if status == ErrNone {
		status = ErrQhull
	}
	if st.NoErrexit {
		// Nothing to unwind to. This is the kernel's exit(), and is not meant to
		// be recovered.
		panic(errors.Errorf("kernel: exit status %d outside a protected region: %s", status, st.Message()))
	}
	panic(Exit{Status: status})
}

// HandleExit converts the result of recover() into an exit status. Panics
// that did not come from Errexit are re-raised.
func HandleExit(r interface{}) int {
	if r == nil {
		return ErrNone
	}
	if exit, ok := r.(Exit); ok {
		return exit.Status
	}
	panic(r)
}
