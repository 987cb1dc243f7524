//go:build windows && !jetson

package window

import (
	"github.com/1broseidon/platwin/internal/platform"
	"github.com/1broseidon/platwin/internal/win32"
)

// Platform is the platform this binary was built for.
const Platform = platform.Win32

// Window is the Win32 window.
type Window = win32.Window

// Create opens a Win32 window owned by the calling goroutine's OS thread.
func Create(opts Options) (*Window, error) {
	return win32.Create(opts)
}
