package appstate

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/shader"
	"github.com/example/liv/internal/theme"
	"github.com/example/liv/internal/viewstate"
)

func TestSoftwareDeviceLetterbox(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	img := testImage(10, 10, red)
	dev := newSoftwareDevice(nil, nil, img.Pixels)
	th := theme.Default()
	r := newFrameRenderer(dev, img, th, render.Nearest)

	st := viewstate.New(viewstate.Panels{})
	st.Width, st.Height = 40, 20
	if _, err := r.render(st); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := dev.frame.RGBAAt(20, 10); got != red {
		t.Errorf("centre = %v, want %v", got, red)
	}
	if got := dev.frame.RGBAAt(2, 10); got != th.Background {
		t.Errorf("letterbox = %v, want %v", got, th.Background)
	}
	if tier, ok := r.shaders.Current(); !ok || !tier.Fallback {
		t.Errorf("software device resolved tier %v, want the fallback", tier.Name)
	}
}

func TestSoftwareDeviceOverlay(t *testing.T) {
	img := testImage(10, 10, color.RGBA{0, 0, 255, 255})
	dev := newSoftwareDevice(nil, nil, img.Pixels)
	dev.Acquire(8, 8)
	dev.Clear(color.Black)

	layer := image.NewRGBA(image.Rect(0, 0, 8, 8))
	white := color.RGBA{255, 255, 255, 255}
	layer.SetRGBA(1, 1, white)
	if err := dev.DrawOverlay(layer); err != nil {
		t.Fatal(err)
	}
	if got := dev.frame.RGBAAt(1, 1); got != white {
		t.Errorf("overlay pixel = %v", got)
	}
	if got := dev.frame.RGBAAt(2, 2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("transparent overlay changed frame: %v", got)
	}
	if dev.Version() != (shader.Version{}) {
		t.Errorf("version = %v, want zero", dev.Version())
	}
	if err := dev.Present(); err != nil {
		t.Errorf("present without window: %v", err)
	}
}

func TestSoftwareDeviceResize(t *testing.T) {
	dev := newSoftwareDevice(nil, nil, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	dev.Acquire(8, 8)
	first := dev.frame
	dev.Acquire(8, 8)
	if dev.frame != first {
		t.Error("same size reallocated the frame")
	}
	dev.Acquire(16, 4)
	if dev.frame.Bounds() != image.Rect(0, 0, 16, 4) {
		t.Errorf("frame bounds = %v", dev.frame.Bounds())
	}
}
