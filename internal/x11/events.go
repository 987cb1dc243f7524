package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// eventQueue is the slice of xgbutil's event queue the window needs.
type eventQueue interface {
	// Read moves every event already received from the server into the
	// queue without waiting for more.
	Read()
	Empty() bool
	Dequeue() (xgb.Event, xgb.Error)
}

type xutilQueue struct {
	xu *xgbutil.XUtil
}

func (q xutilQueue) Read() {
	xevent.Read(q.xu, false)
}

func (q xutilQueue) Empty() bool {
	return xevent.Empty(q.xu)
}

func (q xutilQueue) Dequeue() (xgb.Event, xgb.Error) {
	return xevent.Dequeue(q.xu)
}
