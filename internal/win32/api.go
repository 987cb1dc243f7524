package win32

// Window messages and styles used by the backend.
const (
	wmSize  = 0x0005
	wmClose = 0x0010
	wmQuit  = 0x0012

	wmKeyDown = 0x0100

	sizeMinimized = 1

	wsOverlappedWindow = 0x00CF0000
	wsPopup            = 0x80000000

	// cwUseDefault is CW_USEDEFAULT as a signed 32-bit coordinate.
	cwUseDefault = -0x80000000
)

const className = "PlatwinWindowClass"

// msg mirrors the Win32 MSG structure.
type msg struct {
	hwnd     uintptr
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

type point struct {
	x, y int32
}

// api is the set of user32 calls the backend makes. Windows builds use
// user32.dll; every other build gets an api that reports the display as
// unavailable.
type api interface {
	available() error
	registerClass(name string) error
	screenSize() (width, height int)
	adjustWindowRect(width, height int, style, exStyle uint32) (outerWidth, outerHeight int)
	createWindow(class, title string, style, exStyle uint32, x, y, width, height int) (uintptr, error)
	showWindow(hwnd uintptr)
	peekMessage(m *msg) bool
	dispatchMessage(m *msg)
	defWindowProc(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr
	destroyWindow(hwnd uintptr) error
}

func loword(v uintptr) int { return int(uint16(v)) }
func hiword(v uintptr) int { return int(uint16(v >> 16)) }
