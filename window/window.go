// Package window creates and manages a single native window that a rendering
// layer can put an EGL surface on.
//
// Exactly one backend is compiled in, chosen by build constraints:
//
//	GOOS=windows                     Win32
//	GOOS=linux                       X11
//	GOOS=linux, -tags raspi          VideoCore dispmanx (needs cgo)
//	-tags jetson                     headless EGL device output (stub)
//
// Window is an alias of the selected backend's concrete type, so calls are
// direct and there is no runtime backend registry. Building for any other
// target fails to compile.
//
// A Window belongs to the goroutine that created it:
//
//	w, err := window.Create(window.Options{Width: 800, Height: 600, Title: "demo"})
//	if err != nil {
//		return err
//	}
//	defer w.Destroy()
//	for !w.ShouldClose() {
//		w.PumpEvents()
//		render(w.Handle())
//	}
package window

import "github.com/1broseidon/platwin/internal/platform"

type (
	Options           = platform.Options
	Handle            = platform.Handle
	WindowSystem      = platform.WindowSystem
	Event             = platform.Event
	ResizeEvent       = platform.ResizeEvent
	CloseRequestEvent = platform.CloseRequestEvent
	KeyEvent          = platform.KeyEvent
)

const (
	SystemNone     = platform.SystemNone
	SystemWin32    = platform.SystemWin32
	SystemX11      = platform.SystemX11
	SystemDispmanx = platform.SystemDispmanx
)

// Errors returned by Create. Match them with errors.Is.
var (
	ErrDisplayConnection = platform.ErrDisplayConnection
	ErrWindowCreation    = platform.ErrWindowCreation
	ErrInvalidOptions    = platform.ErrInvalidOptions
)

var _ platform.Backend = (*Window)(nil)

// System is the window-system tag every Handle from this build carries.
var System = Platform.WindowSystem()
