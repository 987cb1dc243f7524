package platform

import (
	"fmt"
	"strings"
)

// Platform is a build target name. Each one maps to exactly one backend.
type Platform string

const (
	Win32  Platform = "win32"
	Linux  Platform = "linux"
	Raspi  Platform = "raspi"
	Jetson Platform = "jetson"
)

// Platforms lists every recognised platform in a stable order.
var Platforms = []Platform{Win32, Linux, Raspi, Jetson}

// ParsePlatform resolves a platform name. Unknown names are a configuration
// error and wrap ErrUnsupportedPlatform.
func ParsePlatform(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of: %s)", ErrUnsupportedPlatform, name, platformList())
}

// WindowSystem reports the window-system tag produced by the platform's backend.
func (p Platform) WindowSystem() WindowSystem {
	switch p {
	case Win32:
		return SystemWin32
	case Linux:
		return SystemX11
	case Raspi:
		return SystemDispmanx
	default:
		return SystemNone
	}
}

// BuildTags returns the extra go build tags that select the platform's
// backend, on top of the GOOS constraint.
func (p Platform) BuildTags() []string {
	switch p {
	case Raspi:
		return []string{"raspi"}
	case Jetson:
		return []string{"jetson"}
	default:
		return nil
	}
}

func platformList() string {
	names := make([]string, 0, len(Platforms))
	for _, p := range Platforms {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
