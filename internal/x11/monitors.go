package x11

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/xgb/randr"
)

// Monitor represents a physical display
type Monitor struct {
	ID      int
	Name    string
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	// Without a primary output every monitor reports Primary false.
	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:      i,
			Name:    outputName,
			X:       int(crtcInfo.X),
			Y:       int(crtcInfo.Y),
			Width:   int(crtcInfo.Width),
			Height:  int(crtcInfo.Height),
			Primary: primary != 0 && slices.Contains(crtcInfo.Outputs, primary),
		})
	}

	return monitors, nil
}

// FullscreenMonitor returns the area a fullscreen window covers.
func (c *Connection) FullscreenMonitor() Monitor {
	width, height := c.ScreenSize()
	screen := Monitor{Name: "screen", Width: width, Height: height}

	monitors, err := c.GetMonitors()
	if err != nil {
		return screen
	}
	return pickFullscreenMonitor(monitors, screen)
}

// pickFullscreenMonitor chooses the RandR primary monitor, then the first
// active monitor when no output is primary, then the whole root screen when
// RandR reports nothing.
func pickFullscreenMonitor(monitors []Monitor, screen Monitor) Monitor {
	for _, mon := range monitors {
		if mon.Primary {
			return mon
		}
	}
	if len(monitors) > 0 {
		return monitors[0]
	}
	return screen
}
