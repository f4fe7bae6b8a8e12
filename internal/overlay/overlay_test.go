package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/example/liv/internal/theme"
)

func frame(c *Context, dst *image.RGBA, in Input, panels ...func()) {
	c.Begin(dst, in)
	for _, p := range panels {
		p()
	}
	c.End()
}

func TestButtonClickFiresOnce(t *testing.T) {
	c := New(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	p := Panel{Title: "A", Pos: image.Pt(10, 10), Size: image.Pt(100, 60), Cond: FirstUse, Flags: Movable}
	var clicks int
	body := func() {
		c.Panel(p, func(w *Window) {
			if w.Button("x", image.Pt(20, 20)) {
				clicks++
			}
		})
	}
	at := image.Pt(25, 25)
	frame(c, dst, Input{Pointer: at}, body)
	frame(c, dst, Input{Pointer: at, Down: true}, body)
	frame(c, dst, Input{Pointer: at, Down: true}, body)
	frame(c, dst, Input{Pointer: at}, body)
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if c.Dragging() {
		t.Fatal("a button press must not start a drag")
	}
	if r, _ := c.PanelRect("A"); r.Min != image.Pt(10, 10) {
		t.Fatalf("panel moved to %v", r.Min)
	}
}

func TestTopmostPanelTakesClick(t *testing.T) {
	c := New(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	var lower, upper bool
	body := func() {
		c.Panel(Panel{Title: "lower", Pos: image.Pt(0, 0), Size: image.Pt(100, 100)}, func(w *Window) {
			lower = w.Button("L", image.Pt(60, 60)) || lower
		})
		c.Panel(Panel{Title: "upper", Pos: image.Pt(0, 0), Size: image.Pt(100, 100)}, func(w *Window) {
			upper = w.Button("U", image.Pt(60, 60)) || upper
		})
	}
	frame(c, dst, Input{Pointer: image.Pt(30, 30)}, body)
	frame(c, dst, Input{Pointer: image.Pt(30, 30), Down: true}, body)
	if lower || !upper {
		t.Fatalf("lower=%v upper=%v, want only upper", lower, upper)
	}
}

func TestDragMovesFirstUsePanel(t *testing.T) {
	c := New(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 300, 300))
	movable := Panel{Title: "M", Pos: image.Pt(10, 10), Size: image.Pt(100, 60), Cond: FirstUse, Flags: Movable}
	pinned := Panel{Title: "P", Pos: image.Pt(150, 150), Size: image.Pt(100, 60), Cond: Always, Flags: Movable}
	body := func() {
		c.Panel(movable, nil)
		c.Panel(pinned, nil)
	}
	frame(c, dst, Input{Pointer: image.Pt(50, 50)}, body)
	frame(c, dst, Input{Pointer: image.Pt(50, 50), Down: true}, body)
	if !c.Dragging() {
		t.Fatal("press on the background did not start a drag")
	}
	frame(c, dst, Input{Pointer: image.Pt(70, 80), Down: true}, body)
	frame(c, dst, Input{Pointer: image.Pt(70, 80)}, body)
	if r, _ := c.PanelRect("M"); r.Min != image.Pt(30, 40) {
		t.Fatalf("movable panel at %v, want (30,40)", r.Min)
	}

	frame(c, dst, Input{Pointer: image.Pt(160, 160), Down: true}, body)
	frame(c, dst, Input{Pointer: image.Pt(200, 200), Down: true}, body)
	frame(c, dst, Input{Pointer: image.Pt(200, 200)}, body)
	if r, _ := c.PanelRect("P"); r.Min != image.Pt(150, 150) {
		t.Fatalf("always-positioned panel moved to %v", r.Min)
	}
}

func TestResizeGrip(t *testing.T) {
	c := New(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 300, 300))
	p := Panel{Title: "R", Pos: image.Pt(0, 0), Size: image.Pt(100, 100), Cond: FirstUse, Flags: Resizable | Decorated}
	body := func() { c.Panel(p, nil) }
	frame(c, dst, Input{Pointer: image.Pt(95, 95)}, body)
	frame(c, dst, Input{Pointer: image.Pt(95, 95), Down: true}, body)
	frame(c, dst, Input{Pointer: image.Pt(145, 125), Down: true}, body)
	frame(c, dst, Input{Pointer: image.Pt(145, 125)}, body)
	if r, _ := c.PanelRect("R"); r.Size() != image.Pt(150, 130) {
		t.Fatalf("size = %v, want 150x130", r.Size())
	}

	frame(c, dst, Input{Pointer: image.Pt(145, 125), Down: true}, body)
	frame(c, dst, Input{Pointer: image.Pt(0, 0), Down: true}, body)
	if r, _ := c.PanelRect("R"); r.Dx() < minPanelSize || r.Dy() < minPanelSize {
		t.Fatalf("size %v below minimum", r.Size())
	}
}

func TestChrome(t *testing.T) {
	th := theme.Default()
	c := New(th)
	red := color.RGBA{255, 0, 0, 255}
	dst := image.NewRGBA(image.Rect(0, 0, 300, 200))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	frame(c, dst, Input{}, func() {
		c.Panel(Panel{Title: "T", Pos: image.Pt(10, 10), Size: image.Pt(120, 80), Flags: Decorated}, nil)
		c.Panel(Panel{Title: "bare", Pos: image.Pt(150, 10), Size: image.Pt(100, 80), Flags: NoBackground}, nil)
	})

	if got := dst.RGBAAt(70, 15); got != th.TitleBackground {
		t.Errorf("title bar pixel = %+v, want %+v", got, th.TitleBackground)
	}
	if got := dst.RGBAAt(70, 60); got == red {
		t.Error("panel background not drawn")
	}
	if got := dst.RGBAAt(200, 50); got != red {
		t.Errorf("NoBackground panel painted %+v", got)
	}
}

func TestContentIsClipped(t *testing.T) {
	c := New(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	frame(c, dst, Input{}, func() {
		c.Panel(Panel{Title: "clip", Pos: image.Pt(0, 0), Size: image.Pt(40, 30), Flags: NoBackground}, func(w *Window) {
			w.Text("a very long line of text that overflows")
			w.Button("wide", image.Pt(150, 40))
		})
	})
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if (x >= 32 || y >= 22) && dst.RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) drawn outside the content area", x, y)
			}
		}
	}
}

func TestLayoutSameLineAndSeparator(t *testing.T) {
	c := New(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 400, 200))
	var rects []image.Rectangle
	frame(c, dst, Input{}, func() {
		c.Panel(Panel{Title: "L", Size: image.Pt(350, 100), Flags: NoPadding | NoBackground}, func(w *Window) {
			rects = append(rects, w.place(image.Pt(32, 32)))
			w.SameLine(5)
			rects = append(rects, w.place(image.Pt(32, 32)))
			w.Separator()
			w.Bullet()
			rects = append(rects, w.place(image.Pt(60, 20)))
		})
	})
	if rects[1].Min != image.Pt(37, 0) {
		t.Fatalf("same-line widget at %v, want (37,0)", rects[1].Min)
	}
	if rects[2].Min.Y <= rects[1].Max.Y || rects[2].Min.X == 0 {
		t.Fatalf("widget after bullet at %v", rects[2].Min)
	}
}
