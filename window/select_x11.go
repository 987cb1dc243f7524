//go:build linux && !raspi && !jetson

package window

import (
	"github.com/1broseidon/platwin/internal/platform"
	"github.com/1broseidon/platwin/internal/x11"
)

// Platform is the platform this binary was built for.
const Platform = platform.Linux

// Window is the X11 window.
type Window = x11.Window

// Create opens a connection to the X server and maps a new window.
func Create(opts Options) (*Window, error) {
	return x11.Create(opts)
}
