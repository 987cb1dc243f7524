//go:build linux && raspi && !jetson

package window

import (
	"github.com/1broseidon/platwin/internal/dispmanx"
	"github.com/1broseidon/platwin/internal/platform"
)

// Platform is the platform this binary was built for.
const Platform = platform.Raspi

// Window is the full-screen dispmanx element.
type Window = dispmanx.Window

// Create covers the physical display with a dispmanx element. The
// requested size is ignored.
func Create(opts Options) (*Window, error) {
	return dispmanx.Create(opts)
}
