//go:build !windows

package win32

import "errors"

var errNotWindows = errors.New("win32 backend requires windows")

// unavailableAPI lets the backend compile and fail cleanly off Windows.
type unavailableAPI struct{}

var nativeAPI api = unavailableAPI{}

func (unavailableAPI) available() error {
	return errNotWindows
}

func (unavailableAPI) registerClass(string) error {
	return errNotWindows
}

func (unavailableAPI) screenSize() (int, int) {
	return 0, 0
}

func (unavailableAPI) adjustWindowRect(width, height int, _, _ uint32) (int, int) {
	return width, height
}

func (unavailableAPI) createWindow(string, string, uint32, uint32, int, int, int, int) (uintptr, error) {
	return 0, errNotWindows
}

func (unavailableAPI) showWindow(uintptr) {}

func (unavailableAPI) peekMessage(*msg) bool {
	return false
}

func (unavailableAPI) dispatchMessage(*msg) {}

func (unavailableAPI) defWindowProc(uintptr, uint32, uintptr, uintptr) uintptr {
	return 0
}

func (unavailableAPI) destroyWindow(uintptr) error {
	return errNotWindows
}
