// Package win32 implements the window backend on top of the Win32 message
// queue. Win32 queues belong to the thread that created the window, so
// Create pins the calling goroutine to its OS thread until Destroy.
package win32

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/1broseidon/platwin/internal/platform"
)

// Window is a top-level Win32 window.
type Window struct {
	api    api
	hwnd   uintptr
	opts   platform.Options
	logger *slog.Logger

	width  int
	height int
	closed bool
}

var _ platform.Backend = (*Window)(nil)

// classRegistration registers the window class at most once per process and
// remembers the outcome.
type classRegistration struct {
	once sync.Once
	err  error
}

func (c *classRegistration) register(a api) error {
	c.once.Do(func() {
		c.err = a.registerClass(className)
	})
	return c.err
}

var windowClass = &classRegistration{}

var (
	// live maps HWND to *Window for the window procedure.
	live sync.Map

	// creating holds the window whose CreateWindowExW call is in flight.
	// Messages sent during creation arrive before the HWND is known.
	creating   atomic.Pointer[Window]
	creationMu sync.Mutex
)

// Create registers the window class if needed and opens a window whose
// client area is opts.Width x opts.Height, or the whole primary display
// when opts.Fullscreen is set.
func Create(opts platform.Options) (*Window, error) {
	return create(nativeAPI, opts)
}

func create(a api, opts platform.Options) (*Window, error) {
	if err := opts.ValidateSize(); err != nil {
		return nil, err
	}
	if err := a.available(); err != nil {
		return nil, fmt.Errorf("%w: %v", platform.ErrDisplayConnection, err)
	}

	runtime.LockOSThread()
	created := false
	defer func() {
		if !created {
			runtime.UnlockOSThread()
		}
	}()

	if err := windowClass.register(a); err != nil {
		return nil, fmt.Errorf("%w: register window class: %v", platform.ErrWindowCreation, err)
	}

	w := &Window{
		api:    a,
		opts:   opts,
		logger: opts.Log(),
		width:  opts.Width,
		height: opts.Height,
	}

	var style uint32 = wsOverlappedWindow
	x, y := cwUseDefault, cwUseDefault
	outerWidth, outerHeight := a.adjustWindowRect(opts.Width, opts.Height, style, 0)
	if opts.Fullscreen {
		style = wsPopup
		x, y = 0, 0
		w.width, w.height = a.screenSize()
		outerWidth, outerHeight = w.width, w.height
	}

	creationMu.Lock()
	creating.Store(w)
	hwnd, err := a.createWindow(className, opts.Title, style, 0, x, y, outerWidth, outerHeight)
	creating.Store(nil)
	creationMu.Unlock()
	if err != nil {
		if w.hwnd != 0 {
			live.Delete(w.hwnd)
		}
		return nil, fmt.Errorf("%w: %v", platform.ErrWindowCreation, err)
	}

	w.hwnd = hwnd
	live.Store(hwnd, w)
	a.showWindow(hwnd)
	created = true

	w.logger.Info("win32 window created",
		"hwnd", hwnd,
		"width", w.width,
		"height", w.height,
		"fullscreen", opts.Fullscreen)
	return w, nil
}

// windowProc is the process-wide window procedure.
func windowProc(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	w := lookup(hwnd)
	if w == nil {
		return nativeAPI.defWindowProc(hwnd, message, wParam, lParam)
	}
	if w.handleMessage(message, wParam, lParam) {
		return 0
	}
	return w.api.defWindowProc(hwnd, message, wParam, lParam)
}

func lookup(hwnd uintptr) *Window {
	if v, ok := live.Load(hwnd); ok {
		return v.(*Window)
	}
	if w := creating.Load(); w != nil {
		w.hwnd = hwnd
		live.Store(hwnd, w)
		return w
	}
	return nil
}

// handleMessage reports whether the message was consumed. WM_CLOSE is
// consumed so DefWindowProc does not destroy the window behind the owner's back.
func (w *Window) handleMessage(message uint32, wParam, lParam uintptr) bool {
	switch message {
	case wmSize:
		if wParam == sizeMinimized {
			return false
		}
		width, height := loword(lParam), hiword(lParam)
		if width == w.width && height == w.height {
			return false
		}
		w.width, w.height = width, height
		w.logger.Debug("win32 window resized", "hwnd", w.hwnd, "width", width, "height", height)
		w.opts.Emit(platform.ResizeEvent{Width: width, Height: height})
		return false
	case wmClose:
		w.requestClose("WM_CLOSE")
		return true
	case wmKeyDown:
		w.opts.Emit(platform.KeyEvent{Code: uint32(wParam), Name: keyName(uint32(wParam))})
		return false
	}
	return false
}

func (w *Window) requestClose(reason string) {
	if w.closed {
		return
	}
	w.closed = true
	w.logger.Info("win32 close requested", "hwnd", w.hwnd, "reason", reason)
	w.opts.Emit(platform.CloseRequestEvent{})
}

// PumpEvents dispatches every message already queued for this thread.
// WM_QUIT is posted to the thread rather than a window, so only the window
// whose PumpEvents dequeues it is marked closed. Other windows on the same
// thread keep their own state.
func (w *Window) PumpEvents() {
	var m msg
	for w.api.peekMessage(&m) {
		if m.message == wmQuit {
			w.requestClose("WM_QUIT")
			continue
		}
		w.api.dispatchMessage(&m)
	}
}

// Size returns the client-area size from the last WM_SIZE.
func (w *Window) Size() (int, int) { return w.width, w.height }

func (w *Window) ShouldClose() bool { return w.closed }

func (w *Window) Handle() platform.Handle {
	return platform.Handle{
		NativeWindow: w.hwnd,
		System:       platform.SystemWin32,
	}
}

// Destroy destroys the window and releases the OS thread pinned by Create.
// The window class stays registered for later windows.
func (w *Window) Destroy() {
	w.closed = true
	if err := w.api.destroyWindow(w.hwnd); err != nil {
		w.logger.Warn("failed to destroy win32 window", "hwnd", w.hwnd, "error", err)
	}
	live.Delete(w.hwnd)
	runtime.UnlockOSThread()

	w.logger.Info("win32 window destroyed", "hwnd", w.hwnd)
}
