package hullbridge

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/osuushi/hullbridge/internal/refkernel"
	"github.com/osuushi/hullbridge/kernel"
)

type Option func(*Runner)

// WithKernel replaces the built in kernel.
func WithKernel(k kernel.Kernel) Option {
	return func(r *Runner) {
		r.kernel = k
	}
}

// WithLogger sets the logger. The default logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// WithDiagnosticSink sets where kernel messages that nobody collected are
// written when the Runner is closed. The default is os.Stderr.
func WithDiagnosticSink(w io.Writer) Option {
	return func(r *Runner) {
		r.sink = w
	}
}

func defaultRunner() *Runner {
	return &Runner{
		kernel: refkernel.New(),
		log:    zap.NewNop(),
		sink:   os.Stderr,
	}
}
