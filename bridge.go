package hullbridge

import (
	"github.com/osuushi/hullbridge/kernel"
)

// The kernel gives up on fatal errors by unwinding to the innermost protected
// region rather than returning. protect is that region, and raise turns what
// it left behind into an error.
//
// Nothing that needs cleaning up may be created inside fn, because an exit
// skips straight past it. Callers build everything fn needs beforehand, and
// build errors only after protect has returned.

// protect runs fn with the kernel's exit target armed, and returns the status
// fn exited with. Regions do not nest. If one is already armed, fn is not
// called at all and the status is kernel.TryError.
//
// The target is disarmed however fn ends. Panics other than kernel exits are
// passed on.
func protect(qh *kernel.State, fn func()) (status int) {
	if !qh.NoErrexit {
		return kernel.TryError
	}
	qh.NoErrexit = false
	defer func() {
		qh.NoErrexit = true
		status = kernel.HandleExit(recover())
	}()
	fn()
	return kernel.ErrNone
}

// raise converts the result of protect into an error. Messages left by a
// successful region are informational and stay in the buffer for the caller
// to collect. Messages explaining a failure are moved into the error.
//
// A kernel that logs an error message but returns normally has still failed.
func raise(qh *kernel.State, status int) error {
	if status == kernel.TryError {
		return newUsageError(10071, "cannot call the kernel while another kernel call is in progress")
	}
	if status == kernel.ErrNone && qh.Status() == kernel.ErrNone {
		return nil
	}
	code := qh.Status()
	if code == kernel.ErrNone {
		code = 10073
	}
	return newKernelError(code, status, qh.TakeMessage())
}
