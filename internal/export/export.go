// Package export keeps the state behind the C entry points in cmd/libplatwin.
// C callers hold small integer handles; windows stay on the Go side. Every
// method except Create tolerates unknown or released handles.
package export

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/1broseidon/platwin/internal/platform"
)

// Error codes returned across the C boundary.
const (
	CodeOK                = 0
	CodeDisplayConnection = 1
	CodeWindowCreation    = 2
	CodeInvalidOptions    = 3
	CodeUnknown           = -1
)

// ErrorCode maps a Create error onto its C error code.
func ErrorCode(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, platform.ErrDisplayConnection):
		return CodeDisplayConnection
	case errors.Is(err, platform.ErrWindowCreation):
		return CodeWindowCreation
	case errors.Is(err, platform.ErrInvalidOptions):
		return CodeInvalidOptions
	default:
		return CodeUnknown
	}
}

// CreateFunc opens a window with the compiled-in backend.
type CreateFunc func(platform.Options) (platform.Backend, error)

// Table maps opaque handles to live windows. Handle 0 is never issued so C
// code can treat it as null. The mutex guards the map only; each window is
// still driven by one caller.
type Table struct {
	create CreateFunc
	logger *slog.Logger

	mu      sync.Mutex
	next    uintptr
	windows map[uintptr]platform.Backend
}

func NewTable(create CreateFunc, logger *slog.Logger) *Table {
	return &Table{
		create:  create,
		logger:  logger,
		windows: make(map[uintptr]platform.Backend),
	}
}

// Create opens a window and returns its handle and error code. The handle
// is 0 whenever the code is not CodeOK.
func (t *Table) Create(opts platform.Options) (uintptr, int) {
	if opts.Logger == nil {
		opts.Logger = t.logger
	}
	w, err := t.create(opts)
	if err != nil {
		opts.Log().Error("platform window create failed", "error", err)
		return 0, ErrorCode(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.windows[t.next] = w
	return t.next, CodeOK
}

func (t *Table) lookup(h uintptr) (platform.Backend, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.windows[h]
	return w, ok
}

func (t *Table) PumpEvents(h uintptr) {
	if w, ok := t.lookup(h); ok {
		w.PumpEvents()
	}
}

// Size reports 0x0 for unknown handles.
func (t *Table) Size(h uintptr) (int, int) {
	w, ok := t.lookup(h)
	if !ok {
		return 0, 0
	}
	return w.Size()
}

// ShouldClose reports true for unknown handles so render loops driven by a
// stale handle terminate.
func (t *Table) ShouldClose(h uintptr) bool {
	w, ok := t.lookup(h)
	return !ok || w.ShouldClose()
}

// Handle returns the zero Handle, tagged NONE, for unknown handles.
func (t *Table) Handle(h uintptr) platform.Handle {
	w, ok := t.lookup(h)
	if !ok {
		return platform.Handle{System: platform.SystemNone}
	}
	return w.Handle()
}

// Destroy releases h and destroys its window. Destroying a handle twice is
// a no-op.
func (t *Table) Destroy(h uintptr) {
	t.mu.Lock()
	w, ok := t.windows[h]
	delete(t.windows, h)
	t.mu.Unlock()
	if ok {
		w.Destroy()
	}
}
