package hullbridge

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// All errors returned by this package carry a stack trace from
// github.com/pkg/errors. Use errors.As to get at the typed error.

// UsageError means the caller broke one of the Runner's rules, such as calling
// Run twice or asking for the volume before a successful Run.
type UsageError struct {
	Code    int
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("hullbridge usage error QH%d: %s", e.Code, e.Message)
}

func newUsageError(code int, message string) error {
	return errors.WithStack(&UsageError{Code: code, Message: message})
}

// KernelError means the kernel failed. Code is the code of the kernel's last
// error message, Status is the status it exited with, and Message is its
// buffered text, verbatim.
//
// After a KernelError the Runner only hands out empty views, and only Close
// does anything useful.
type KernelError struct {
	Code    int
	Status  int
	Message string
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("hullbridge kernel error QH%d (exit status %d): %s",
		e.Code, e.Status, strings.TrimRight(e.Message, "\n"))
}

func newKernelError(code, status int, message string) error {
	return errors.WithStack(&KernelError{Code: code, Status: status, Message: message})
}

// LayoutError means the kernel state embedded in the Runner is not where the
// kernel expects it. This is a build problem and never goes away on retry.
type LayoutError struct {
	Code   int
	Offset uintptr
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("hullbridge layout error QH%d: kernel state is %d bytes into the runner's state, not at its start", e.Code, e.Offset)
}
