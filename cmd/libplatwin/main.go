//go:build export

// Command libplatwin builds the C shared library:
//
//	go build -tags export -buildmode=c-shared -o libplatwin.so ./cmd/libplatwin
//
// Windows are referred to by opaque non-zero handles. Every call other than
// PlatformWindowCreate tolerates unknown handles. The entry points only
// convert C types; the behaviour lives in internal/export.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/1broseidon/platwin/internal/config"
	"github.com/1broseidon/platwin/internal/export"
	"github.com/1broseidon/platwin/internal/platform"
	"github.com/1broseidon/platwin/window"
)

var windows = export.NewTable(createWindow, newLogger())

// createWindow keeps a nil *window.Window from becoming a non-nil Backend.
func createWindow(opts platform.Options) (platform.Backend, error) {
	w, err := window.Create(opts)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// newLogger logs to stderr at warn unless PLATWIN_LOG_LEVEL says otherwise.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if env := os.Getenv("PLATWIN_LOG_LEVEL"); env != "" {
		if parsed, err := config.ParseLogLevel(env); err == nil {
			level = parsed
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// PlatformWindowCreate returns 0 on failure and stores the reason in
// errorCode when it is non-NULL. A NULL display selects the default.
//
//export PlatformWindowCreate
func PlatformWindowCreate(width, height C.int, title *C.char, fullscreen C.int, display *C.char, errorCode *C.int) C.uintptr_t {
	h, code := windows.Create(platform.Options{
		Width:      int(width),
		Height:     int(height),
		Title:      goString(title),
		Fullscreen: fullscreen != 0,
		Display:    goString(display),
	})
	if errorCode != nil {
		*errorCode = C.int(code)
	}
	return C.uintptr_t(h)
}

//export PlatformWindowPumpEvents
func PlatformWindowPumpEvents(handle C.uintptr_t) {
	windows.PumpEvents(uintptr(handle))
}

//export PlatformWindowGetWidth
func PlatformWindowGetWidth(handle C.uintptr_t) C.int {
	width, _ := windows.Size(uintptr(handle))
	return C.int(width)
}

//export PlatformWindowGetHeight
func PlatformWindowGetHeight(handle C.uintptr_t) C.int {
	_, height := windows.Size(uintptr(handle))
	return C.int(height)
}

//export PlatformWindowShouldClose
func PlatformWindowShouldClose(handle C.uintptr_t) C.int {
	if windows.ShouldClose(uintptr(handle)) {
		return 1
	}
	return 0
}

//export PlatformWindowGetNativeWindow
func PlatformWindowGetNativeWindow(handle C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(windows.Handle(uintptr(handle)).NativeWindow)
}

//export PlatformWindowGetNativeDisplay
func PlatformWindowGetNativeDisplay(handle C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(windows.Handle(uintptr(handle)).NativeDisplay)
}

// PlatformWindowGetWindowSystem returns 0 NONE, 1 WIN32, 2 X11, 3 DISPMANX.
//
//export PlatformWindowGetWindowSystem
func PlatformWindowGetWindowSystem(handle C.uintptr_t) C.int {
	return C.int(windows.Handle(uintptr(handle)).System)
}

// PlatformWindowGetDisplayName returns the X display string the window was
// opened on, or NULL when there is none. Release it with
// PlatformWindowFreeString.
//
//export PlatformWindowGetDisplayName
func PlatformWindowGetDisplayName(handle C.uintptr_t) *C.char {
	name := windows.Handle(uintptr(handle)).DisplayName
	if name == "" {
		return nil
	}
	return C.CString(name)
}

//export PlatformWindowFreeString
func PlatformWindowFreeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export PlatformWindowDestroy
func PlatformWindowDestroy(handle C.uintptr_t) {
	windows.Destroy(uintptr(handle))
}

func main() {}
