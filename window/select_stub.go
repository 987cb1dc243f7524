//go:build jetson

package window

import (
	"github.com/1broseidon/platwin/internal/platform"
	"github.com/1broseidon/platwin/internal/stub"
)

// Platform is the platform this binary was built for.
const Platform = platform.Jetson

// Window is the headless stand-in.
type Window = stub.Window

// Create returns a fixed-size logical window with no native object.
func Create(opts Options) (*Window, error) {
	return stub.Create(opts)
}
