//go:build cgo

// Package glview opens a GLFW window with an OpenGL context, translates its
// input into golang.org/x/mobile events and draws the image quad and overlay
// layer with the negotiated shader tier.
package glview

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// DefaultSamples is the multisample count requested for the window.
const DefaultSamples = 2

// Options configures the window.
type Options struct {
	Title string
	// Width and Height are the requested client size. They are limited to
	// the primary monitor; zero means 800x600.
	Width, Height int
	Samples       int
	Icons         []image.Image
}

// Window is an open GLFW window and its GL resources.
type Window struct {
	win *glfw.Window

	mu    sync.Mutex
	queue []interface{}

	gpu gpuState
}

// Open creates the window and makes its context current. The first event
// delivered is the initial size.Event.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}
	samples := opts.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}
	glfw.WindowHint(glfw.Samples, samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, h := limitToMonitor(opts.Width, opts.Height)
	win, err := glfw.CreateWindow(w, h, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(0)
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	if len(opts.Icons) > 0 {
		win.SetIcon(opts.Icons)
	}

	gw := &Window{win: win}
	gw.installCallbacks()
	fbw, fbh := win.GetFramebufferSize()
	gw.push(gw.sizeEvent(fbw, fbh))
	return gw, nil
}

func limitToMonitor(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		w, h = 800, 600
	}
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return w, h
	}
	mode := m.GetVideoMode()
	if mode == nil {
		return w, h
	}
	return min(w, mode.Width), min(h, mode.Height)
}

func (w *Window) push(ev interface{}) {
	w.mu.Lock()
	w.queue = append(w.queue, ev)
	w.mu.Unlock()
}

func (w *Window) pop() (interface{}, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.queue) == 0 {
		return nil, false
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev, true
}

// NextEvent blocks until an event is available.
func (w *Window) NextEvent() interface{} {
	for {
		if ev, ok := w.pop(); ok {
			return ev
		}
		glfw.WaitEvents()
	}
}

// Send queues ev and wakes NextEvent. It is safe to call from any goroutine.
func (w *Window) Send(ev interface{}) {
	w.push(ev)
	glfw.PostEmptyEvent()
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

// Close releases GL resources in reverse acquisition order and destroys the
// window.
func (w *Window) Close() {
	w.gpu.release()
	w.win.Destroy()
	glfw.Terminate()
}
