package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/platwin/internal/platform"
)

// Connection owns one X11 connection. Every Window opens its own.
type Connection struct {
	XUtil   *xgbutil.XUtil
	Root    xproto.Window
	Display string
}

// NewConnection connects to the named display, or $DISPLAY when empty.
func NewConnection(display string) (*Connection, error) {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("%w: x11 display %q: %v", platform.ErrDisplayConnection, display, err)
	}

	// Loads the keyboard mapping used to name key presses.
	keybind.Initialize(xu)

	return &Connection{
		XUtil:   xu,
		Root:    xu.RootWin(),
		Display: display,
	}, nil
}

// Atom interns name.
func (c *Connection) Atom(name string) (xproto.Atom, error) {
	atom, err := xprop.Atm(c.XUtil, name)
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	return atom, nil
}

// ScreenSize returns the root screen size in pixels.
func (c *Connection) ScreenSize() (int, int) {
	s := c.XUtil.Screen()
	return int(s.WidthInPixels), int(s.HeightInPixels)
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
