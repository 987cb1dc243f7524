package platform

import (
	"fmt"
	"log/slog"
)

// WindowSystem tags which native windowing technology a Handle belongs to.
type WindowSystem int

const (
	SystemNone WindowSystem = iota
	SystemWin32
	SystemX11
	SystemDispmanx
)

func (s WindowSystem) String() string {
	switch s {
	case SystemNone:
		return "NONE"
	case SystemWin32:
		return "WIN32"
	case SystemX11:
		return "X11"
	case SystemDispmanx:
		return "DISPMANX"
	default:
		return fmt.Sprintf("WindowSystem(%d)", int(s))
	}
}

// VulkanInstanceExtensions lists the instance extensions a Vulkan renderer
// must enable to create a surface for windows of this system. It is nil
// when no Vulkan surface type exists for the system.
func (s WindowSystem) VulkanInstanceExtensions() []string {
	switch s {
	case SystemWin32:
		return []string{"VK_KHR_win32_surface", "VK_KHR_surface"}
	case SystemX11:
		return []string{"VK_KHR_xlib_surface", "VK_KHR_surface"}
	default:
		return nil
	}
}

// Options describes the window to create. It is read once by Create.
type Options struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool

	// Display names the X display to connect to. Empty means $DISPLAY.
	// Ignored by every backend except X11.
	Display string

	// Logger receives lifecycle logs. Nil discards them.
	Logger *slog.Logger

	// OnEvent, when set, is called from PumpEvents for every resize, close
	// request and key press the backend observes.
	OnEvent func(Event)
}

// ValidateSize rejects non-positive dimensions.
func (o Options) ValidateSize() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidOptions, o.Width, o.Height)
	}
	return nil
}

// Log returns the configured logger or a logger that drops everything.
func (o Options) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Emit forwards ev to OnEvent when a callback is registered.
func (o Options) Emit(ev Event) {
	if o.OnEvent != nil {
		o.OnEvent(ev)
	}
}

// Handle is a non-owning copy of the native state a rendering layer needs to
// create a surface. Copying it does not duplicate the native resources; the
// Window that produced it owns them until Destroy.
type Handle struct {
	NativeDisplay uintptr
	NativeWindow  uintptr
	System        WindowSystem

	// DisplayName is the X display string on X11. The X11 backend speaks
	// the wire protocol directly and has no Xlib Display pointer, so EGL
	// consumers open their own connection to this display.
	DisplayName string
}

// Backend is the lifecycle every window backend implements.
//
// A Window is owned by one goroutine from Create to Destroy. PumpEvents
// never blocks. ShouldClose is monotonic. Destroy releases the native
// window before the native display connection and must be called once.
type Backend interface {
	PumpEvents()
	Size() (width, height int)
	ShouldClose() bool
	Handle() Handle
	Destroy()
}
