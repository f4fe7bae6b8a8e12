package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"

	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/shader"
	"github.com/example/liv/internal/viewport"
)

// maxShinyWindow bounds the initial software window, which cannot query the
// monitor size.
var maxShinyWindow = image.Pt(1600, 1000)

func (a *AppState) runShiny() error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		size := a.Image.Pixels.Bounds().Size()
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  min(size.X, maxShinyWindow.X),
			Height: min(size.Y, maxShinyWindow.Y),
			Title:  a.Title(),
		})
		if err != nil {
			runErr = fmt.Errorf("new window: %w", err)
			return
		}
		defer w.Release()

		dev := newSoftwareDevice(s, w, a.Image.Pixels)
		defer dev.Close()
		r := newFrameRenderer(dev, a.Image, a.Theme, a.filter())
		r.debug = a.Config.PrintDebugInfo
		defer r.release()
		runErr = a.loop(w, r)
	})
	return runErr
}

// softwareDevice rasterises frames into a shiny buffer with x/image/draw.
// It reports no graphics API, so the renderer resolves the fallback tier.
type softwareDevice struct {
	s   screen.Screen
	w   screen.Window
	buf screen.Buffer

	frame *image.RGBA
	img   *image.RGBA
}

func newSoftwareDevice(s screen.Screen, w screen.Window, img *image.RGBA) *softwareDevice {
	return &softwareDevice{s: s, w: w, img: img}
}

func (d *softwareDevice) Acquire(width, height int) {
	size := image.Pt(width, height)
	if d.frame != nil && d.frame.Bounds().Size() == size {
		return
	}
	if d.buf != nil {
		d.buf.Release()
		d.buf = nil
	}
	if d.s != nil {
		b, err := d.s.NewBuffer(size)
		if err == nil {
			d.buf = b
			d.frame = b.RGBA()
			return
		}
	}
	d.frame = image.NewRGBA(image.Rectangle{Max: size})
}

func (d *softwareDevice) Clear(c color.Color) {
	draw.Draw(d.frame, d.frame.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (d *softwareDevice) Version() shader.Version { return shader.Version{} }

func (d *softwareDevice) Compile(shader.Tier) (shader.Program, error) { return 1, nil }

func (d *softwareDevice) Release(shader.Program) {}

func (d *softwareDevice) Use(shader.Program) {}

func (d *softwareDevice) DrawImage(t viewport.Transform, f render.Filter) error {
	b := d.frame.Bounds()
	ib := d.img.Bounds()
	aff := viewport.Aff3(t, b.Dx(), b.Dy(), ib.Dx(), ib.Dy())
	var interp xdraw.Interpolator = xdraw.ApproxBiLinear
	if f == render.Nearest {
		interp = xdraw.NearestNeighbor
	}
	interp.Transform(d.frame, aff, d.img, ib, xdraw.Over, nil)
	return nil
}

func (d *softwareDevice) DrawOverlay(layer *image.RGBA) error {
	draw.Draw(d.frame, d.frame.Bounds(), layer, layer.Bounds().Min, draw.Over)
	return nil
}

func (d *softwareDevice) Present() error {
	if d.w == nil || d.buf == nil {
		return nil
	}
	d.w.Upload(image.Point{}, d.buf, d.buf.Bounds())
	d.w.Publish()
	return nil
}

// Close releases the frame buffer.
func (d *softwareDevice) Close() {
	if d.buf != nil {
		d.buf.Release()
		d.buf = nil
	}
}
