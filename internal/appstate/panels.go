package appstate

import (
	"image"
	"log"

	"github.com/example/liv/internal/overlay"
	"github.com/example/liv/internal/shader"
	"github.com/example/liv/internal/viewstate"
)

const (
	actionBarWidth  = 350
	actionBarHeight = 32
	actionBarMargin = 10
	actionButton    = 32
	actionSpacing   = 5

	debugWidth  = 350
	debugHeight = 100
	debugTop    = 10
)

var (
	actionBarPanel = overlay.Panel{
		Title: "Buttons",
		Size:  image.Pt(actionBarWidth, actionBarHeight),
		Cond:  overlay.FirstUse,
		Flags: overlay.Movable | overlay.NoBackground | overlay.NoPadding,
	}
	debugPanel = overlay.Panel{
		Title: "Debug",
		Size:  image.Pt(debugWidth, debugHeight),
		Cond:  overlay.Always,
	}
	metadataPanel = overlay.Panel{
		Title: "Metadata",
		Pos:   image.Pt(10, 10),
		Size:  image.Pt(300, 170),
		Cond:  overlay.FirstUse,
		Flags: overlay.Decorated | overlay.Movable | overlay.Resizable | overlay.Scrollable,
	}
	examplePanel = overlay.Panel{
		Title: "Test window",
		Pos:   image.Pt(60, 60),
		Size:  image.Pt(300, 100),
		Cond:  overlay.FirstUse,
		Flags: overlay.Decorated | overlay.Movable | overlay.Resizable | overlay.Scrollable,
	}
)

// drawPanels draws the visible panels into the overlay layer and returns the
// events their widgets raised. drawn is false when no panel is visible.
func (r *frameRenderer) drawPanels(st viewstate.State) (emitted []interface{}, drawn bool) {
	layer := r.ensureLayer(st.Width, st.Height)
	r.ui.Begin(layer, overlay.Input{
		Pointer: image.Pt(int(st.Pointer.X), int(st.Pointer.Y)),
		Down:    st.Pointer.Down[viewstate.ButtonLeft],
	})
	for _, p := range viewstate.StackOrder {
		if !st.Panels.Visible(p) {
			continue
		}
		drawn = true
		switch p {
		case viewstate.ActionBar:
			emitted = r.actionBar(st, emitted)
		case viewstate.Debug:
			r.debugPanel(st)
		case viewstate.Metadata:
			r.metadataPanel(st)
		case viewstate.Example:
			r.examplePanel(st)
		}
	}
	r.ui.End()
	return emitted, drawn
}

func (r *frameRenderer) actionBar(st viewstate.State, emitted []interface{}) []interface{} {
	p := actionBarPanel
	p.Pos = image.Pt(st.Width/2-actionBarWidth/2, st.Height-actionBarMargin-actionBarHeight)
	size := image.Pt(actionButton, actionButton)
	r.ui.Panel(p, func(w *overlay.Window) {
		if w.Button("-", size) {
			emitted = append(emitted, viewstate.ZoomEvent{Step: -1})
		}
		w.SameLine(actionSpacing)
		if w.Button("+", size) {
			emitted = append(emitted, viewstate.ZoomEvent{Step: 1})
		}
		w.SameLine(actionSpacing)
		if w.Button("D", size) {
			emitted = append(emitted, viewstate.ToggleEvent{Panel: viewstate.Debug})
		}
		w.SameLine(actionSpacing)
		if w.Button("M", size) {
			emitted = append(emitted, viewstate.ToggleEvent{Panel: viewstate.Metadata})
		}
	})
	return emitted
}

func (r *frameRenderer) debugPanel(st viewstate.State) {
	p := debugPanel
	p.Pos = image.Pt(st.Width/2-debugWidth/2, debugTop)
	r.ui.Panel(p, func(w *overlay.Window) {
		w.Text("Debug menu")
		w.Separator()
		free := 0
		if m, ok := r.dev.(memoryReporter); ok {
			if kb, ok := m.FreeVideoMemory(); ok {
				free = kb * 1024 / 1_000_000
			}
		}
		w.Text("Free VRAM: %dMB", free)
		w.SameLine(-1)
		w.Text("Delta: %.4f", r.stats.delta.Seconds())
		w.Text("Reported FPS: %.1f", r.stats.averageFPS())
		w.SameLine(-1)
		w.Text("Calculated FPS: %.1f", r.stats.instantFPS())
		w.Text("%s (tier %s)", r.versionString(), r.tier.Name)
	})
}

func (r *frameRenderer) versionString() string {
	if v, ok := r.dev.(versionReporter); ok {
		if s := v.VersionString(); s != "" {
			return s
		}
	}
	v := r.dev.Version()
	if v == (shader.Version{}) {
		return "software"
	}
	return v.String()
}

func (r *frameRenderer) metadataPanel(st viewstate.State) {
	r.ui.Panel(metadataPanel, func(w *overlay.Window) {
		for _, f := range r.image.Metadata() {
			w.Text("%s: %s", f.Key, f.Value)
		}
		w.Separator()
		w.Text("Zoom: %.0f%%", float32(st.Zoom)*100)
	})
}

func (r *frameRenderer) examplePanel(st viewstate.State) {
	r.ui.Panel(examplePanel, func(w *overlay.Window) {
		w.Text("Hello world!")
		w.Text("This is liv.")
		w.Separator()
		w.Bullet()
		if w.Button("Test", image.Pt(60, 20)) && r.debug {
			log.Printf("test button pressed at %.0f,%.0f", st.Pointer.X, st.Pointer.Y)
		}
		w.Separator()
		w.Text("A minimal image viewer.")
	})
}
