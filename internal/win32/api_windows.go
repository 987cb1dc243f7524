//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW   = user32.NewProc("RegisterClassExW")
	procCreateWindowExW    = user32.NewProc("CreateWindowExW")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procDestroyWindow      = user32.NewProc("DestroyWindow")
	procShowWindow         = user32.NewProc("ShowWindow")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procGetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	procAdjustWindowRectEx = user32.NewProc("AdjustWindowRectEx")
	procLoadCursorW        = user32.NewProc("LoadCursorW")
	procGetModuleHandleW   = kernel32.NewProc("GetModuleHandleW")
)

const (
	csOwnDC       = 0x0020
	idcArrow      = 32512
	colorWindow   = 5
	pmRemove      = 0x0001
	swShowDefault = 10
	smCxScreen    = 0
	smCyScreen    = 1
)

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

type rect struct {
	left, top, right, bottom int32
}

type user32API struct{}

var nativeAPI api = user32API{}

func (user32API) available() error {
	return user32.Load()
}

func (user32API) registerClass(name string) error {
	className, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	instance, _, _ := procGetModuleHandleW.Call(0)
	cursor, _, _ := procLoadCursorW.Call(0, idcArrow)

	wc := wndClassEx{
		style:      csOwnDC,
		wndProc:    windows.NewCallback(wndProc),
		instance:   windows.Handle(instance),
		cursor:     windows.Handle(cursor),
		background: windows.Handle(colorWindow + 1),
		className:  className,
	}
	wc.size = uint32(unsafe.Sizeof(wc))

	atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return fmt.Errorf("RegisterClassExW: %w", err)
	}
	return nil
}

func wndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	return windowProc(hwnd, uint32(message), wParam, lParam)
}

func (user32API) screenSize() (int, int) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	return int(int32(w)), int(int32(h))
}

func (user32API) adjustWindowRect(width, height int, style, exStyle uint32) (int, int) {
	r := rect{right: int32(width), bottom: int32(height)}
	ok, _, _ := procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&r)), uintptr(style), 0, uintptr(exStyle))
	if ok == 0 {
		return width, height
	}
	return int(r.right - r.left), int(r.bottom - r.top)
}

func (user32API) createWindow(class, title string, style, exStyle uint32, x, y, width, height int) (uintptr, error) {
	classPtr, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return 0, err
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	instance, _, _ := procGetModuleHandleW.Call(0)

	hwnd, _, err := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(classPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(style),
		uintptr(x), uintptr(y),
		uintptr(width), uintptr(height),
		0, // parent
		0, // menu
		instance,
		0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowExW: %w", err)
	}
	return hwnd, nil
}

func (user32API) showWindow(hwnd uintptr) {
	procShowWindow.Call(hwnd, swShowDefault)
}

func (user32API) peekMessage(m *msg) bool {
	r, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(m)), 0, 0, 0, pmRemove)
	return r != 0
}

func (user32API) dispatchMessage(m *msg) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(m)))
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(m)))
}

func (user32API) defWindowProc(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procDefWindowProcW.Call(hwnd, uintptr(message), wParam, lParam)
	return r
}

func (user32API) destroyWindow(hwnd uintptr) error {
	ok, _, err := procDestroyWindow.Call(hwnd)
	if ok == 0 {
		return fmt.Errorf("DestroyWindow: %w", err)
	}
	return nil
}
