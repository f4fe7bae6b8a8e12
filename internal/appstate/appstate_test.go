package appstate

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/liv/internal/asset"
	"github.com/example/liv/internal/config"
	"github.com/example/liv/internal/notify"
	"github.com/example/liv/internal/platform"
	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/shader"
	"github.com/example/liv/internal/theme"
	"github.com/example/liv/internal/viewport"
	"github.com/example/liv/internal/viewstate"
)

type recordingDevice struct {
	calls      []string
	version    shader.Version
	compiled   []string
	released   int
	transforms []viewport.Transform
	drawErr    error
}

func (d *recordingDevice) Acquire(int, int)        { d.calls = append(d.calls, "acquire") }
func (d *recordingDevice) Clear(color.Color)       { d.calls = append(d.calls, "clear") }
func (d *recordingDevice) Version() shader.Version { return d.version }
func (d *recordingDevice) Release(shader.Program)  { d.released++ }
func (d *recordingDevice) Use(shader.Program)      { d.calls = append(d.calls, "use") }

func (d *recordingDevice) Compile(t shader.Tier) (shader.Program, error) {
	d.compiled = append(d.compiled, t.Name)
	return shader.Program(len(d.compiled)), nil
}

func (d *recordingDevice) DrawImage(t viewport.Transform, _ render.Filter) error {
	d.calls = append(d.calls, "image")
	d.transforms = append(d.transforms, t)
	return d.drawErr
}

func (d *recordingDevice) DrawOverlay(*image.RGBA) error {
	d.calls = append(d.calls, "overlay")
	return nil
}

func (d *recordingDevice) Present() error {
	d.calls = append(d.calls, "present")
	return nil
}

func (d *recordingDevice) frames() int {
	n := 0
	for _, c := range d.calls {
		if c == "present" {
			n++
		}
	}
	return n
}

// fakeWindow replays queued events and reports a close once they run out.
type fakeWindow struct {
	events []interface{}
}

func (w *fakeWindow) NextEvent() interface{} {
	if len(w.events) == 0 {
		return lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev
}

func (w *fakeWindow) Send(ev interface{}) { w.events = append(w.events, ev) }

func testImage(w, h int, c color.Color) *asset.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return &asset.Image{Path: "/tmp/a.png", Format: "png", Pixels: img}
}

func newSession(t *testing.T, cfg *config.Config) (*AppState, *recordingDevice, *frameRenderer) {
	t.Helper()
	if cfg == nil {
		cfg = config.New()
	}
	a := New(WithImage(testImage(100, 100, color.RGBA{255, 0, 0, 255})), WithConfig(cfg))
	dev := &recordingDevice{version: shader.Version{API: shader.OpenGL, Major: 3, Minor: 3}}
	r := newFrameRenderer(dev, a.Image, theme.Default(), render.Linear)
	return a, dev, r
}

func sizeEvent(w, h int) size.Event { return size.Event{WidthPx: w, HeightPx: h} }

func TestFrameOrder(t *testing.T) {
	a, dev, r := newSession(t, nil)
	win := &fakeWindow{events: []interface{}{sizeEvent(400, 300)}}
	if err := a.loop(win, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
	want := "acquire clear use image overlay present"
	if got := strings.Join(dev.calls, " "); got != want {
		t.Fatalf("calls = %q, want %q", got, want)
	}
}

func TestNoOverlayWithoutPanels(t *testing.T) {
	cfg := config.New()
	cfg.Panels.ActionBar = false
	a, dev, r := newSession(t, cfg)
	if err := a.loop(&fakeWindow{events: []interface{}{sizeEvent(400, 300)}}, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
	for _, c := range dev.calls {
		if c == "overlay" {
			t.Fatalf("overlay drawn with no visible panel: %v", dev.calls)
		}
	}
}

func TestRedrawCoalescing(t *testing.T) {
	a, dev, r := newSession(t, nil)
	win := &fakeWindow{events: []interface{}{
		sizeEvent(400, 300),
		mouse.Event{X: 1, Y: 1},
		mouse.Event{X: 2, Y: 2},
		mouse.Event{X: 3, Y: 3},
	}}
	if err := a.loop(win, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
	if n := dev.frames(); n != 1 {
		t.Fatalf("rendered %d frames, want 1", n)
	}
}

func TestShaderCompiledOnceAcrossFrames(t *testing.T) {
	a, dev, r := newSession(t, nil)
	win := &fakeWindow{events: []interface{}{
		sizeEvent(400, 300),
		paint.Event{External: true},
		paint.Event{External: true},
	}}
	if err := a.loop(win, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
	if n := dev.frames(); n != 3 {
		t.Fatalf("rendered %d frames, want 3", n)
	}
	if len(dev.compiled) != 1 || dev.compiled[0] != "1.4" {
		t.Fatalf("compiled = %v, want [1.4]", dev.compiled)
	}
}

func TestShaderRecompiledOnTierChange(t *testing.T) {
	_, dev, r := newSession(t, nil)
	st := viewstate.New(viewstate.Panels{})
	st.Width, st.Height = 64, 64
	if _, err := r.render(st); err != nil {
		t.Fatal(err)
	}
	dev.version = shader.Version{API: shader.OpenGL, Major: 4, Minor: 6}
	if _, err := r.render(st); err != nil {
		t.Fatal(err)
	}
	if strings.Join(dev.compiled, ",") != "1.4,4.6" || dev.released != 1 {
		t.Fatalf("compiled = %v released = %d", dev.compiled, dev.released)
	}
	r.release()
	if dev.released != 2 {
		t.Fatalf("released = %d after release, want 2", dev.released)
	}
}

func TestZeroSizeSkipsFrame(t *testing.T) {
	_, dev, r := newSession(t, nil)
	st := viewstate.New(viewstate.DefaultPanels())
	st.Width = 100
	if _, err := r.render(st); err != nil {
		t.Fatal(err)
	}
	if len(dev.calls) != 0 {
		t.Fatalf("calls = %v, want none", dev.calls)
	}
}

func TestEscapeQuitsBeforeRender(t *testing.T) {
	a, dev, r := newSession(t, nil)
	win := &fakeWindow{events: []interface{}{
		sizeEvent(400, 300),
		key.Event{Code: key.CodeEscape, Direction: key.DirPress},
	}}
	if err := a.loop(win, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
	if dev.frames() != 0 {
		t.Fatalf("rendered %d frames after escape", dev.frames())
	}
}

func TestDeviceErrorEndsLoop(t *testing.T) {
	a, dev, r := newSession(t, nil)
	boom := errors.New("boom")
	dev.drawErr = boom
	err := a.loop(&fakeWindow{events: []interface{}{sizeEvent(400, 300)}}, r)
	if !errors.Is(err, boom) {
		t.Fatalf("loop error = %v, want %v", err, boom)
	}
}

func TestActionBarZoomIn(t *testing.T) {
	a, dev, r := newSession(t, nil)
	// The action bar sits at (25, 258) in a 400x300 window; "+" is the
	// second 32px button after a 5px gap.
	plus := mouse.Event{X: 78, Y: 270}
	press := plus
	press.Button = mouse.ButtonLeft
	press.Direction = mouse.DirPress
	win := &fakeWindow{events: []interface{}{
		sizeEvent(400, 300),
		plus,
		paint.Event{External: true},
		press,
	}}
	if err := a.loop(win, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
	if len(dev.transforms) != 3 {
		t.Fatalf("rendered %d frames, want 3", len(dev.transforms))
	}
	last := dev.transforms[len(dev.transforms)-1]
	if math.Abs(float64(last.ScaleY())-1.2) > 1e-5 {
		t.Fatalf("scaleY = %v after clicking +, want 1.2", last.ScaleY())
	}
}

func TestActionBarTogglesDebug(t *testing.T) {
	_, _, r := newSession(t, nil)
	st := viewstate.New(viewstate.DefaultPanels())
	st.Width, st.Height = 400, 300
	st.Pointer.X, st.Pointer.Y = 110, 270
	if _, err := r.render(st); err != nil {
		t.Fatal(err)
	}
	st.Pointer.Down[viewstate.ButtonLeft] = true
	emitted, err := r.render(st)
	if err != nil {
		t.Fatal(err)
	}
	want := viewstate.ToggleEvent{Panel: viewstate.Debug}
	if len(emitted) != 1 || emitted[0] != want {
		t.Fatalf("emitted = %v, want [%v]", emitted, want)
	}
}

func TestCopyActions(t *testing.T) {
	var sent []string
	n := notify.New(notify.DefaultPreferences()).WithSender(func(_, body string, _ platform.Options) error {
		sent = append(sent, body)
		return nil
	})
	n.Enable(notify.EventCopy, true)

	a, _, r := newSession(t, nil)
	a.notifier = n
	var copiedImage *asset.Image
	var copiedPath string
	a.copyImage = func(img *asset.Image) error { copiedImage = img; return nil }
	a.copyPath = func(p string) error { copiedPath = p; return nil }

	win := &fakeWindow{events: []interface{}{
		key.Event{Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress},
		key.Event{Code: key.CodeC, Modifiers: key.ModControl | key.ModShift, Direction: key.DirPress},
	}}
	if err := a.loop(win, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
	if copiedImage != a.Image || copiedPath != "/tmp/a.png" {
		t.Fatalf("copied image=%v path=%q", copiedImage, copiedPath)
	}
	want := []string{"Copied a.png to clipboard", "Copied /tmp/a.png to clipboard"}
	if strings.Join(sent, "|") != strings.Join(want, "|") {
		t.Fatalf("notifications = %q, want %q", sent, want)
	}
}

func TestCopyFailureIsNotFatal(t *testing.T) {
	a, _, r := newSession(t, nil)
	a.copyImage = func(*asset.Image) error { return errors.New("no display") }
	win := &fakeWindow{events: []interface{}{
		key.Event{Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress},
	}}
	if err := a.loop(win, r); err != nil {
		t.Fatalf("loop: %v", err)
	}
}

func TestFrameStats(t *testing.T) {
	var s frameStats
	start := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		s.tick(start.Add(time.Duration(i) * 10 * time.Millisecond))
	}
	if got := s.averageFPS(); math.Abs(got-100) > 1e-6 {
		t.Fatalf("averageFPS = %v, want 100", got)
	}
	s.tick(start.Add(60 * time.Millisecond))
	if got := s.instantFPS(); math.Abs(got-50) > 1e-6 {
		t.Fatalf("instantFPS = %v, want 50", got)
	}
}

func TestFrameStatsWindow(t *testing.T) {
	var s frameStats
	now := time.Unix(0, 0)
	for i := 0; i < fpsWindow+10; i++ {
		now = now.Add(20 * time.Millisecond)
		s.tick(now)
	}
	if s.n != fpsWindow {
		t.Fatalf("n = %d, want %d", s.n, fpsWindow)
	}
	if got := s.averageFPS(); math.Abs(got-50) > 1e-6 {
		t.Fatalf("averageFPS = %v, want 50", got)
	}
}

func TestNewDefaults(t *testing.T) {
	a := New(WithImage(testImage(4, 4, color.White)))
	if a.Backend != BackendGL {
		t.Errorf("backend = %q, want %q", a.Backend, BackendGL)
	}
	if a.Title() != "Liv - a.png" {
		t.Errorf("title = %q", a.Title())
	}
	cfg := config.New()
	cfg.Backend = BackendShiny
	if got := New(WithConfig(cfg)).Backend; got != BackendShiny {
		t.Errorf("backend from config = %q", got)
	}
	if got := New(WithConfig(cfg), WithBackend(BackendGL)).Backend; got != BackendGL {
		t.Errorf("explicit backend = %q", got)
	}
}

func TestRunRejectsUnknownBackend(t *testing.T) {
	closed := false
	a := New(WithImage(testImage(4, 4, color.White)), WithBackend("vulkan"), WithOnClose(func() { closed = true }))
	if err := a.Run(); err == nil || !strings.Contains(err.Error(), "vulkan") {
		t.Fatalf("Run = %v", err)
	}
	if !closed {
		t.Fatal("close callback not called")
	}
}
