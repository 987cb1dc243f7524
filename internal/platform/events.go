package platform

// Event is delivered to Options.OnEvent during PumpEvents.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new client-area size.
type ResizeEvent struct {
	Width  int
	Height int
}

// CloseRequestEvent reports that the user or window manager asked the window
// to close. The window stays alive until Destroy.
type CloseRequestEvent struct{}

// KeyEvent reports a key press while the window has focus. Code is the
// native code (X keycode or Win32 virtual-key); Name is a portable name such
// as "Escape" or "a" and may be empty for keys without one.
type KeyEvent struct {
	Code uint32
	Name string
}

func (ResizeEvent) isEvent()       {}
func (CloseRequestEvent) isEvent() {}
func (KeyEvent) isEvent()          {}
