package appstate

import (
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/example/liv/internal/asset"
	"github.com/example/liv/internal/overlay"
	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/shader"
	"github.com/example/liv/internal/theme"
	"github.com/example/liv/internal/viewport"
	"github.com/example/liv/internal/viewstate"
)

// fpsWindow is the number of frames averaged for the reported frame rate.
const fpsWindow = 120

// frameStats tracks frame timing for the debug panel.
type frameStats struct {
	last   time.Time
	deltas [fpsWindow]time.Duration
	n      int
	next   int
	delta  time.Duration
}

func (s *frameStats) tick(now time.Time) {
	if !s.last.IsZero() {
		s.delta = now.Sub(s.last)
		s.deltas[s.next] = s.delta
		s.next = (s.next + 1) % fpsWindow
		s.n = min(s.n+1, fpsWindow)
	}
	s.last = now
}

// averageFPS is the frame rate over the last fpsWindow frames.
func (s *frameStats) averageFPS() float64 {
	if s.n == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < s.n; i++ {
		sum += s.deltas[i]
	}
	if sum <= 0 {
		return 0
	}
	return float64(s.n) / sum.Seconds()
}

// instantFPS is the frame rate implied by the last delta alone.
func (s *frameStats) instantFPS() float64 {
	if s.delta <= 0 {
		return 0
	}
	return 1 / s.delta.Seconds()
}

// frameRenderer draws one frame of a session onto a Device.
type frameRenderer struct {
	dev     Device
	image   *asset.Image
	theme   *theme.Theme
	filter  render.Filter
	shaders *shader.Cache
	ui      *overlay.Context
	layer   *image.RGBA
	stats   frameStats
	tier    shader.Tier
	debug   bool
	now     func() time.Time
}

func newFrameRenderer(dev Device, img *asset.Image, th *theme.Theme, f render.Filter) *frameRenderer {
	return &frameRenderer{
		dev:     dev,
		image:   img,
		theme:   th,
		filter:  f,
		shaders: shader.NewCache(dev.Compile, dev.Release),
		ui:      overlay.New(th),
		now:     time.Now,
	}
}

// render draws st and returns the events raised by overlay widgets during
// the frame. Frames are skipped while the window has no area.
func (r *frameRenderer) render(st viewstate.State) ([]interface{}, error) {
	if st.Width <= 0 || st.Height <= 0 {
		return nil, nil
	}
	r.stats.tick(r.now())

	r.dev.Acquire(st.Width, st.Height)
	r.dev.Clear(r.theme.Background)

	t := viewport.Fit(
		float32(r.image.Width()), float32(r.image.Height()),
		float32(st.Width), float32(st.Height),
		float32(st.Zoom),
	)
	tier, prog, err := r.shaders.Resolve(r.dev.Version())
	if err != nil {
		return nil, err
	}
	if r.debug && tier.Name != r.tier.Name {
		log.Printf("shader tier %s for %v", tier.Name, r.dev.Version())
	}
	r.tier = tier
	r.dev.Use(prog)
	if err := r.dev.DrawImage(t, r.filter); err != nil {
		return nil, err
	}

	emitted, drawn := r.drawPanels(st)
	if drawn {
		if err := r.dev.DrawOverlay(r.layer); err != nil {
			return nil, err
		}
	}
	if err := r.dev.Present(); err != nil {
		return nil, err
	}
	return emitted, nil
}

// ensureLayer returns a cleared overlay layer of the window size.
func (r *frameRenderer) ensureLayer(w, h int) *image.RGBA {
	if r.layer == nil || r.layer.Bounds().Dx() != w || r.layer.Bounds().Dy() != h {
		r.layer = image.NewRGBA(image.Rect(0, 0, w, h))
		return r.layer
	}
	draw.Draw(r.layer, r.layer.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return r.layer
}

// release frees the cached shader program.
func (r *frameRenderer) release() {
	r.shaders.Release()
}
