// Package dispmanx implements the window backend for the Raspberry Pi
// VideoCore display manager. There is no window manager: the "window" is a
// full-screen dispmanx element covering the physical display.
//
// The requested size is always ignored. The element and the reported size
// are the physical display resolution, so Options are never rejected for
// their dimensions.
//
// Dispmanx has no close event. ShouldClose only turns true through Destroy;
// callers need their own shutdown signal, such as SIGINT.
package dispmanx

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/platwin/internal/platform"
)

// videoCore is the VideoCore host interface one Window owns.
type videoCore interface {
	// openDisplay initialises the host and opens display 0.
	openDisplay() (uintptr, error)
	displaySize() (width, height int, err error)
	// addElement adds a full-screen element on layer 0 in one update and
	// returns a pointer to the EGL_DISPMANX_WINDOW_T describing it.
	addElement(width, height int) (uintptr, error)
	removeElement() error
	// closeDisplay closes the display and deinitialises the host.
	closeDisplay() error
}

// Window is a full-screen dispmanx element.
type Window struct {
	vc            videoCore
	display       uintptr
	nativeWindow  uintptr
	logger        *slog.Logger
	width, height int
	pumps         uint64
	closed        bool
}

var _ platform.Backend = (*Window)(nil)

// Create opens the display and covers it with a single element.
func Create(opts platform.Options) (*Window, error) {
	return create(newVideoCore(), opts)
}

func create(vc videoCore, opts platform.Options) (*Window, error) {
	logger := opts.Log()

	display, err := vc.openDisplay()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", platform.ErrDisplayConnection, err)
	}

	width, height, err := vc.displaySize()
	if err != nil {
		closeDisplay(vc, logger)
		return nil, fmt.Errorf("%w: query display size: %v", platform.ErrDisplayConnection, err)
	}
	if width <= 0 || height <= 0 {
		closeDisplay(vc, logger)
		return nil, fmt.Errorf("%w: display reports size %dx%d", platform.ErrDisplayConnection, width, height)
	}
	if opts.Width != width || opts.Height != height {
		logger.Debug("requested size ignored on dispmanx",
			"requested_width", opts.Width,
			"requested_height", opts.Height,
			"width", width,
			"height", height)
	}

	nativeWindow, err := vc.addElement(width, height)
	if err != nil {
		closeDisplay(vc, logger)
		return nil, fmt.Errorf("%w: %v", platform.ErrWindowCreation, err)
	}

	logger.Info("dispmanx element created", "width", width, "height", height)

	return &Window{
		vc:           vc,
		display:      display,
		nativeWindow: nativeWindow,
		logger:       logger,
		width:        width,
		height:       height,
	}, nil
}

func closeDisplay(vc videoCore, logger *slog.Logger) {
	if err := vc.closeDisplay(); err != nil {
		logger.Warn("failed to close dispmanx display", "error", err)
	}
}

// PumpEvents only counts calls; dispmanx delivers no events.
func (w *Window) PumpEvents() {
	w.pumps++
}

// Size returns the physical display resolution queried at creation.
func (w *Window) Size() (int, int) { return w.width, w.height }

func (w *Window) ShouldClose() bool { return w.closed }

// Handle carries the dispmanx display handle; EGL on this platform is
// initialised with EGL_DEFAULT_DISPLAY and the EGL_DISPMANX_WINDOW_T pointer.
func (w *Window) Handle() platform.Handle {
	return platform.Handle{
		NativeDisplay: w.display,
		NativeWindow:  w.nativeWindow,
		System:        platform.SystemDispmanx,
	}
}

// Destroy removes the element, then closes the display.
func (w *Window) Destroy() {
	w.closed = true
	if err := w.vc.removeElement(); err != nil {
		w.logger.Warn("failed to remove dispmanx element", "error", err)
	}
	closeDisplay(w.vc, w.logger)
	w.logger.Info("dispmanx element destroyed", "pumps", w.pumps)
}
