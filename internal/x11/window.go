package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/platwin/internal/platform"
)

// maxDimension is the largest width or height the X protocol can carry.
const maxDimension = 1<<16 - 1

// Window is a top-level X11 window with its own server connection.
type Window struct {
	conn   *Connection
	id     xproto.Window
	queue  eventQueue
	opts   platform.Options
	logger *slog.Logger

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom
	keyName        func(state uint16, code xproto.Keycode) string

	width  int
	height int
	closed bool
}

var _ platform.Backend = (*Window)(nil)

// Create connects to the X server and maps a new top-level window.
//
// The window subscribes to structure notifications and to the
// WM_DELETE_WINDOW protocol, so a user-initiated close arrives as a client
// message instead of the window manager killing the connection.
func Create(opts platform.Options) (*Window, error) {
	if err := opts.ValidateSize(); err != nil {
		return nil, err
	}
	if opts.Width > maxDimension || opts.Height > maxDimension {
		return nil, fmt.Errorf("%w: size %dx%d exceeds X11 limit %d", platform.ErrInvalidOptions, opts.Width, opts.Height, maxDimension)
	}

	conn, err := NewConnection(opts.Display)
	if err != nil {
		return nil, err
	}

	w, err := createWindow(conn, opts)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return w, nil
}

func createWindow(conn *Connection, opts platform.Options) (*Window, error) {
	logger := opts.Log()

	protocols, err := conn.Atom("WM_PROTOCOLS")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", platform.ErrWindowCreation, err)
	}
	deleteWindow, err := conn.Atom("WM_DELETE_WINDOW")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", platform.ErrWindowCreation, err)
	}

	x, y, width, height := 0, 0, opts.Width, opts.Height
	if opts.Fullscreen {
		mon := conn.FullscreenMonitor()
		x, y, width, height = mon.X, mon.Y, mon.Width, mon.Height
		logger.Debug("fullscreen monitor selected", "monitor", mon.Name, "width", width, "height", height)
	}

	win, err := xwindow.Generate(conn.XUtil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to allocate window id: %v", platform.ErrWindowCreation, err)
	}

	// Value list order follows the bit positions of the mask (low -> high).
	err = win.CreateChecked(conn.Root, x, y, width, height,
		xproto.CwBackPixel|xproto.CwEventMask,
		0, uint32(xproto.EventMaskStructureNotify|xproto.EventMaskKeyPress))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", platform.ErrWindowCreation, err)
	}

	if err := setProperties(conn, win.Id, opts); err != nil {
		xproto.DestroyWindow(conn.XUtil.Conn(), win.Id)
		return nil, fmt.Errorf("%w: %v", platform.ErrWindowCreation, err)
	}

	win.Map()
	conn.XUtil.Sync()

	w := newWindow(xutilQueue{xu: conn.XUtil}, win.Id, protocols, deleteWindow, width, height, opts)
	w.conn = conn
	w.keyName = func(state uint16, code xproto.Keycode) string {
		return keybind.LookupString(conn.XUtil, state, code)
	}

	logger.Info("x11 window created",
		"window_id", uint32(win.Id),
		"display", conn.Display,
		"width", width,
		"height", height,
		"fullscreen", opts.Fullscreen)

	return w, nil
}

func setProperties(conn *Connection, id xproto.Window, opts platform.Options) error {
	xu := conn.XUtil

	if err := icccm.WmProtocolsSet(xu, id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}
	if err := icccm.WmHintsSet(xu, id, &icccm.Hints{Flags: icccm.HintInput, Input: 1}); err != nil {
		return fmt.Errorf("failed to set WM_HINTS: %w", err)
	}

	if opts.Title != "" {
		if err := icccm.WmNameSet(xu, id, opts.Title); err != nil {
			return fmt.Errorf("failed to set WM_NAME: %w", err)
		}
		// Not every window manager reads _NET_WM_NAME; WM_NAME above covers them.
		if err := ewmh.WmNameSet(xu, id, opts.Title); err != nil {
			return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
		}
	}

	if opts.Fullscreen {
		if err := ewmh.WmStateSet(xu, id, []string{"_NET_WM_STATE_FULLSCREEN"}); err != nil {
			return fmt.Errorf("failed to set _NET_WM_STATE: %w", err)
		}
	}
	return nil
}

func newWindow(queue eventQueue, id xproto.Window, protocols, deleteWindow xproto.Atom, width, height int, opts platform.Options) *Window {
	return &Window{
		id:             id,
		queue:          queue,
		opts:           opts,
		logger:         opts.Log(),
		wmProtocols:    protocols,
		wmDeleteWindow: deleteWindow,
		width:          width,
		height:         height,
	}
}

// PumpEvents handles every event the server has already sent and returns.
func (w *Window) PumpEvents() {
	w.queue.Read()
	for !w.queue.Empty() {
		ev, xerr := w.queue.Dequeue()
		if xerr != nil {
			w.logger.Debug("x11 protocol error", "window_id", uint32(w.id), "error", xerr)
			continue
		}
		if ev != nil {
			w.handleEvent(ev)
		}
	}
}

func (w *Window) handleEvent(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if e.Window != w.id {
			return
		}
		width, height := int(e.Width), int(e.Height)
		if width == w.width && height == w.height {
			return
		}
		w.width, w.height = width, height
		w.logger.Debug("x11 window resized", "window_id", uint32(w.id), "width", width, "height", height)
		w.opts.Emit(platform.ResizeEvent{Width: width, Height: height})

	case xproto.ClientMessageEvent:
		if e.Window != w.id || e.Type != w.wmProtocols || e.Format != 32 {
			return
		}
		if len(e.Data.Data32) == 0 || xproto.Atom(e.Data.Data32[0]) != w.wmDeleteWindow {
			return
		}
		w.requestClose("WM_DELETE_WINDOW")

	case xproto.KeyPressEvent:
		if e.Event != w.id {
			return
		}
		ev := platform.KeyEvent{Code: uint32(e.Detail)}
		if w.keyName != nil {
			ev.Name = w.keyName(e.State, e.Detail)
		}
		w.opts.Emit(ev)

	case xproto.DestroyNotifyEvent:
		if e.Window == w.id {
			w.requestClose("DestroyNotify")
		}
	}
}

func (w *Window) requestClose(reason string) {
	if w.closed {
		return
	}
	w.closed = true
	w.logger.Info("x11 close requested", "window_id", uint32(w.id), "reason", reason)
	w.opts.Emit(platform.CloseRequestEvent{})
}

// Size returns the size from the last ConfigureNotify, or the created size.
func (w *Window) Size() (int, int) { return w.width, w.height }

func (w *Window) ShouldClose() bool { return w.closed }

func (w *Window) Handle() platform.Handle {
	h := platform.Handle{
		NativeWindow: uintptr(w.id),
		System:       platform.SystemX11,
	}
	if w.conn != nil {
		h.DisplayName = w.conn.Display
	}
	return h
}

// Destroy unmaps and destroys the window, then closes the connection.
func (w *Window) Destroy() {
	w.closed = true
	if w.conn == nil {
		return
	}

	xc := w.conn.XUtil.Conn()
	xproto.UnmapWindow(xc, w.id)
	if err := xproto.DestroyWindowChecked(xc, w.id).Check(); err != nil {
		w.logger.Warn("failed to destroy x11 window", "window_id", uint32(w.id), "error", err)
	}
	w.conn.Close()

	w.logger.Info("x11 window destroyed", "window_id", uint32(w.id))
}
