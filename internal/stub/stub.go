// Package stub is the window backend for platforms that render straight to
// an EGL device output. There is no native window: Create hands back a fixed
// logical surface so upper layers keep a single code path.
package stub

import (
	"log/slog"

	"github.com/1broseidon/platwin/internal/platform"
)

// Fixed output resolution reported regardless of the requested size.
const (
	Width  = 1920
	Height = 1080
)

// nativeWindow is non-zero so callers that treat zero as invalid keep working.
const nativeWindow uintptr = 1

// Window is a logical stand-in for a native window.
type Window struct {
	logger *slog.Logger
	closed bool
}

var _ platform.Backend = (*Window)(nil)

// Create never fails. Options are accepted and ignored apart from the logger.
func Create(opts platform.Options) (*Window, error) {
	w := &Window{logger: opts.Log()}
	w.logger.Info("stub window created", "width", Width, "height", Height)
	return w, nil
}

// PumpEvents does nothing; there is no event source.
func (w *Window) PumpEvents() {}

// Size returns the fixed device-output resolution.
func (w *Window) Size() (int, int) { return Width, Height }

// ShouldClose only becomes true after Destroy.
func (w *Window) ShouldClose() bool { return w.closed }

func (w *Window) Handle() platform.Handle {
	return platform.Handle{
		NativeWindow: nativeWindow,
		System:       platform.SystemNone,
	}
}

// Destroy releases nothing.
func (w *Window) Destroy() {
	w.closed = true
	w.logger.Info("stub window destroyed")
}
