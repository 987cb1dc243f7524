package win32

import (
	"errors"
	"testing"

	"github.com/1broseidon/platwin/internal/platform"
)

const (
	frameWidth  = 16
	frameHeight = 39
)

// fakeAPI simulates a thread message queue. Sent messages go straight to
// windowProc; posted messages wait for peekMessage.
type fakeAPI struct {
	nextHWND     uintptr
	registered   int
	registerErr  error
	createErr    error
	screenW      int
	screenH      int
	queue        []msg
	destroyed    []uintptr
	defProcCalls []uint32
}

func newFakeAPI() *fakeAPI {
	windowClass = &classRegistration{}
	return &fakeAPI{nextHWND: 0x1000, screenW: 2560, screenH: 1440}
}

func (f *fakeAPI) available() error { return nil }

func (f *fakeAPI) registerClass(string) error {
	f.registered++
	return f.registerErr
}

func (f *fakeAPI) screenSize() (int, int) { return f.screenW, f.screenH }

func (f *fakeAPI) adjustWindowRect(width, height int, style, _ uint32) (int, int) {
	if style == wsPopup {
		return width, height
	}
	return width + frameWidth, height + frameHeight
}

func (f *fakeAPI) createWindow(_, _ string, style, _ uint32, _, _, width, height int) (uintptr, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextHWND++
	hwnd := f.nextHWND
	cw, ch := width, height
	if style != wsPopup {
		cw, ch = width-frameWidth, height-frameHeight
	}
	// Windows sends WM_SIZE before CreateWindowExW returns.
	windowProc(hwnd, wmSize, 0, makeLParam(cw, ch))
	return hwnd, nil
}

func (f *fakeAPI) showWindow(uintptr) {}

func (f *fakeAPI) peekMessage(m *msg) bool {
	if len(f.queue) == 0 {
		return false
	}
	*m = f.queue[0]
	f.queue = f.queue[1:]
	return true
}

func (f *fakeAPI) dispatchMessage(m *msg) {
	windowProc(m.hwnd, m.message, m.wParam, m.lParam)
}

func (f *fakeAPI) defWindowProc(_ uintptr, message uint32, _, _ uintptr) uintptr {
	f.defProcCalls = append(f.defProcCalls, message)
	return 0
}

func (f *fakeAPI) destroyWindow(hwnd uintptr) error {
	f.destroyed = append(f.destroyed, hwnd)
	return nil
}

func (f *fakeAPI) post(hwnd uintptr, message uint32, wParam, lParam uintptr) {
	f.queue = append(f.queue, msg{hwnd: hwnd, message: message, wParam: wParam, lParam: lParam})
}

func makeLParam(lo, hi int) uintptr {
	return uintptr(uint16(hi))<<16 | uintptr(uint16(lo))
}

func TestCreate_SizeMatchesRequest(t *testing.T) {
	f := newFakeAPI()
	w, err := create(f, platform.Options{Width: 800, Height: 600, Title: "t"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	defer w.Destroy()

	if gw, gh := w.Size(); gw != 800 || gh != 600 {
		t.Fatalf("Size() = %dx%d, want 800x600", gw, gh)
	}
	if h := w.Handle(); h.System != platform.SystemWin32 || h.NativeWindow == 0 {
		t.Fatalf("Handle() = %+v", h)
	}
}

func TestResizeMessageUpdatesSize(t *testing.T) {
	f := newFakeAPI()
	var events []platform.Event
	w, err := create(f, platform.Options{
		Width: 800, Height: 600, Title: "t",
		OnEvent: func(ev platform.Event) { events = append(events, ev) },
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	defer w.Destroy()

	f.post(w.hwnd, wmSize, 0, makeLParam(400, 300))
	if gw, gh := w.Size(); gw != 800 || gh != 600 {
		t.Fatalf("size changed before PumpEvents: %dx%d", gw, gh)
	}

	w.PumpEvents()
	if gw, gh := w.Size(); gw != 400 || gh != 300 {
		t.Fatalf("Size() = %dx%d, want 400x300", gw, gh)
	}
	if len(events) != 1 || events[0] != (platform.ResizeEvent{Width: 400, Height: 300}) {
		t.Fatalf("events = %#v", events)
	}
}

func TestMinimizeKeepsLastSize(t *testing.T) {
	f := newFakeAPI()
	w, _ := create(f, platform.Options{Width: 640, Height: 480})
	defer w.Destroy()

	f.post(w.hwnd, wmSize, sizeMinimized, 0)
	w.PumpEvents()
	if gw, gh := w.Size(); gw != 640 || gh != 480 {
		t.Fatalf("Size() = %dx%d after minimize, want 640x480", gw, gh)
	}
}

func TestCloseMessageSetsFlagWithoutDestroying(t *testing.T) {
	f := newFakeAPI()
	w, _ := create(f, platform.Options{Width: 640, Height: 480})

	f.post(w.hwnd, wmClose, 0, 0)
	w.PumpEvents()
	if !w.ShouldClose() {
		t.Fatal("ShouldClose() = false after WM_CLOSE")
	}
	if len(f.destroyed) != 0 {
		t.Fatalf("window destroyed on WM_CLOSE: %v", f.destroyed)
	}
	for _, m := range f.defProcCalls {
		if m == wmClose {
			t.Fatal("WM_CLOSE forwarded to DefWindowProc")
		}
	}

	for i := 0; i < 3; i++ {
		w.PumpEvents()
		if !w.ShouldClose() {
			t.Fatal("ShouldClose() went back to false")
		}
	}

	w.Destroy()
	if len(f.destroyed) != 1 || f.destroyed[0] != w.hwnd {
		t.Fatalf("destroyed = %v, want [%#x]", f.destroyed, w.hwnd)
	}
}

func TestQuitMessageSetsFlag(t *testing.T) {
	f := newFakeAPI()
	w, _ := create(f, platform.Options{Width: 640, Height: 480})
	defer w.Destroy()

	f.post(0, wmQuit, 0, 0)
	w.PumpEvents()
	if !w.ShouldClose() {
		t.Fatal("ShouldClose() = false after WM_QUIT")
	}
}

func TestQuitMessageClosesOnlyTheDequeuingWindow(t *testing.T) {
	f := newFakeAPI()
	first, _ := create(f, platform.Options{Width: 640, Height: 480})
	defer first.Destroy()
	second, _ := create(f, platform.Options{Width: 640, Height: 480})
	defer second.Destroy()

	f.post(0, wmQuit, 0, 0)
	first.PumpEvents()
	second.PumpEvents()
	if !first.ShouldClose() {
		t.Fatal("first.ShouldClose() = false after dequeuing WM_QUIT")
	}
	if second.ShouldClose() {
		t.Fatal("second.ShouldClose() = true for a WM_QUIT it never saw")
	}
}

func TestKeyDownEmitsKeyEvent(t *testing.T) {
	var keys []platform.KeyEvent
	f := newFakeAPI()
	w, _ := create(f, platform.Options{
		Width:  640,
		Height: 480,
		OnEvent: func(ev platform.Event) {
			if k, ok := ev.(platform.KeyEvent); ok {
				keys = append(keys, k)
			}
		},
	})
	defer w.Destroy()

	f.post(w.hwnd, wmKeyDown, 0x1B, 0)
	f.post(w.hwnd, wmKeyDown, 'Q', 0)
	w.PumpEvents()

	want := []platform.KeyEvent{{Code: 0x1B, Name: "Escape"}, {Code: 'Q', Name: "q"}}
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
}

func TestKeyName(t *testing.T) {
	tests := map[uint32]string{
		'A':  "a",
		'7':  "7",
		0x70: "F1",
		0x7B: "F12",
		0x0D: "Return",
		0xFF: "",
	}
	for vk, want := range tests {
		if got := keyName(vk); got != want {
			t.Fatalf("keyName(%#x) = %q, want %q", vk, got, want)
		}
	}
}

func TestWindowClassRegisteredOnce(t *testing.T) {
	f := newFakeAPI()
	for i := 0; i < 3; i++ {
		w, err := create(f, platform.Options{Width: 100, Height: 100})
		if err != nil {
			t.Fatalf("create #%d error: %v", i, err)
		}
		w.Destroy()
	}
	if f.registered != 1 {
		t.Fatalf("registerClass called %d times, want 1", f.registered)
	}
}

func TestRegistrationFailureIsRemembered(t *testing.T) {
	f := newFakeAPI()
	f.registerErr = errors.New("class exists")

	for i := 0; i < 2; i++ {
		_, err := create(f, platform.Options{Width: 100, Height: 100})
		if !errors.Is(err, platform.ErrWindowCreation) {
			t.Fatalf("create error = %v, want ErrWindowCreation", err)
		}
	}
	if f.registered != 1 {
		t.Fatalf("registerClass called %d times, want 1", f.registered)
	}
}

func TestCreateWindowFailure(t *testing.T) {
	f := newFakeAPI()
	f.createErr = errors.New("access denied")
	_, err := create(f, platform.Options{Width: 100, Height: 100})
	if !errors.Is(err, platform.ErrWindowCreation) {
		t.Fatalf("create error = %v, want ErrWindowCreation", err)
	}
}

func TestInvalidSize(t *testing.T) {
	f := newFakeAPI()
	_, err := create(f, platform.Options{Width: 0, Height: 100})
	if !errors.Is(err, platform.ErrInvalidOptions) {
		t.Fatalf("create error = %v, want ErrInvalidOptions", err)
	}
	if f.registered != 0 {
		t.Fatal("class registered for invalid options")
	}
}

func TestFullscreenUsesDisplayResolution(t *testing.T) {
	f := newFakeAPI()
	w, err := create(f, platform.Options{Width: 800, Height: 600, Fullscreen: true})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	defer w.Destroy()

	if gw, gh := w.Size(); gw != 2560 || gh != 1440 {
		t.Fatalf("Size() = %dx%d, want 2560x1440", gw, gh)
	}
}

func TestPumpEventsOnEmptyQueue(t *testing.T) {
	f := newFakeAPI()
	w, _ := create(f, platform.Options{Width: 320, Height: 200})
	defer w.Destroy()

	for i := 0; i < 100; i++ {
		w.PumpEvents()
	}
	if w.ShouldClose() {
		t.Fatal("ShouldClose() = true without a close message")
	}
}

func TestTwoWindowsRouteMessagesIndependently(t *testing.T) {
	f := newFakeAPI()
	a, _ := create(f, platform.Options{Width: 100, Height: 100})
	defer a.Destroy()
	b, _ := create(f, platform.Options{Width: 200, Height: 200})
	defer b.Destroy()

	f.post(b.hwnd, wmClose, 0, 0)
	f.post(a.hwnd, wmSize, 0, makeLParam(50, 60))
	a.PumpEvents()

	if a.ShouldClose() {
		t.Fatal("window a closed by message for b")
	}
	if !b.ShouldClose() {
		t.Fatal("window b did not see its WM_CLOSE")
	}
	if gw, gh := a.Size(); gw != 50 || gh != 60 {
		t.Fatalf("a.Size() = %dx%d, want 50x60", gw, gh)
	}
}
