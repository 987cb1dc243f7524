//go:build linux && raspi && cgo

package dispmanx

/*
#cgo CFLAGS: -I/opt/vc/include -I/opt/vc/include/interface/vcos/pthreads -I/opt/vc/include/interface/vmcs_host/linux
#cgo LDFLAGS: -L/opt/vc/lib -lbcm_host -lvcos -lvchiq_arm
#include <stdlib.h>
#include <bcm_host.h>
#include <EGL/egl.h>

static DISPMANX_ELEMENT_HANDLE_T add_fullscreen_element(DISPMANX_DISPLAY_HANDLE_T display, uint32_t width, uint32_t height) {
	VC_RECT_T dst, src;
	vc_dispmanx_rect_set(&dst, 0, 0, width, height);
	// Source rectangles are 16.16 fixed point.
	vc_dispmanx_rect_set(&src, 0, 0, width << 16, height << 16);

	DISPMANX_UPDATE_HANDLE_T update = vc_dispmanx_update_start(0);
	if (update == DISPMANX_NO_HANDLE) {
		return DISPMANX_NO_HANDLE;
	}
	DISPMANX_ELEMENT_HANDLE_T element = vc_dispmanx_element_add(
		update, display, 0, &dst, DISPMANX_NO_HANDLE, &src,
		DISPMANX_PROTECTION_NONE, NULL, NULL, DISPMANX_NO_ROTATE);
	if (vc_dispmanx_update_submit_sync(update) != 0) {
		return DISPMANX_NO_HANDLE;
	}
	return element;
}

static int remove_element(DISPMANX_ELEMENT_HANDLE_T element) {
	DISPMANX_UPDATE_HANDLE_T update = vc_dispmanx_update_start(0);
	if (update == DISPMANX_NO_HANDLE) {
		return -1;
	}
	int result = vc_dispmanx_element_remove(update, element);
	int submit = vc_dispmanx_update_submit_sync(update);
	return result != 0 ? result : submit;
}

static EGL_DISPMANX_WINDOW_T *new_native_window(DISPMANX_ELEMENT_HANDLE_T element, int width, int height) {
	EGL_DISPMANX_WINDOW_T *win = malloc(sizeof(EGL_DISPMANX_WINDOW_T));
	if (win == NULL) {
		return NULL;
	}
	win->element = element;
	win->width = width;
	win->height = height;
	return win;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

type bcmHost struct {
	display C.DISPMANX_DISPLAY_HANDLE_T
	window  *C.EGL_DISPMANX_WINDOW_T
}

func newVideoCore() videoCore {
	return &bcmHost{}
}

func (b *bcmHost) openDisplay() (uintptr, error) {
	C.bcm_host_init()
	b.display = C.vc_dispmanx_display_open(0)
	if b.display == C.DISPMANX_NO_HANDLE {
		C.bcm_host_deinit()
		return 0, errors.New("vc_dispmanx_display_open failed (is the VideoCore service running?)")
	}
	return uintptr(b.display), nil
}

func (b *bcmHost) displaySize() (int, int, error) {
	var width, height C.uint32_t
	if rc := C.graphics_get_display_size(0, &width, &height); rc < 0 {
		return 0, 0, fmt.Errorf("graphics_get_display_size returned %d", int(rc))
	}
	return int(width), int(height), nil
}

func (b *bcmHost) addElement(width, height int) (uintptr, error) {
	element := C.add_fullscreen_element(b.display, C.uint32_t(width), C.uint32_t(height))
	if element == C.DISPMANX_NO_HANDLE {
		return 0, errors.New("vc_dispmanx_element_add failed")
	}
	b.window = C.new_native_window(element, C.int(width), C.int(height))
	if b.window == nil {
		C.remove_element(element)
		return 0, errors.New("failed to allocate EGL_DISPMANX_WINDOW_T")
	}
	return uintptr(unsafe.Pointer(b.window)), nil
}

func (b *bcmHost) removeElement() error {
	if b.window == nil {
		return nil
	}
	rc := C.remove_element(b.window.element)
	C.free(unsafe.Pointer(b.window))
	b.window = nil
	if rc != 0 {
		return fmt.Errorf("vc_dispmanx_element_remove returned %d", int(rc))
	}
	return nil
}

func (b *bcmHost) closeDisplay() error {
	rc := C.vc_dispmanx_display_close(b.display)
	C.bcm_host_deinit()
	if rc != 0 {
		return fmt.Errorf("vc_dispmanx_display_close returned %d", int(rc))
	}
	return nil
}
