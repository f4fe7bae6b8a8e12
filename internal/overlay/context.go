package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/theme"
)

// Input is the pointer state sampled for one frame.
type Input struct {
	Pointer image.Point
	// Down reports whether the primary button is held.
	Down bool
}

type dragMode int

const (
	dragMove dragMode = iota
	dragResize
)

type drag struct {
	title string
	mode  dragMode
	grab  image.Point
	from  panelState
}

// Context keeps panel positions and pointer history between frames.
type Context struct {
	theme *theme.Theme
	face  font.Face

	dst      *image.RGBA
	in       Input
	wasDown  bool
	clicked  bool
	captured bool

	panels  map[string]*panelState
	drawn   []drawnPanel
	hovered string
	drag    *drag
}

type drawnPanel struct {
	title string
	rect  image.Rectangle
}

// New returns a context drawing with th. A nil theme uses theme.Default.
func New(th *theme.Theme) *Context {
	if th == nil {
		th = theme.Default()
	}
	return &Context{
		theme:  th,
		face:   basicfont.Face7x13,
		panels: map[string]*panelState{},
	}
}

// Begin starts a frame drawing onto dst.
func (c *Context) Begin(dst *image.RGBA, in Input) {
	c.dst = dst
	c.in = in
	c.clicked = in.Down && !c.wasDown
	c.captured = false

	// Hit testing uses the previous frame's layout, topmost first.
	c.hovered = ""
	for i := len(c.drawn) - 1; i >= 0; i-- {
		if in.Pointer.In(c.drawn[i].rect) {
			c.hovered = c.drawn[i].title
			break
		}
	}
	c.drawn = c.drawn[:0]

	if c.drag != nil {
		if !in.Down {
			c.drag = nil
		} else if st, ok := c.panels[c.drag.title]; ok {
			d := in.Pointer.Sub(c.drag.grab)
			switch c.drag.mode {
			case dragMove:
				st.pos = c.drag.from.pos.Add(d)
			case dragResize:
				st.size = c.drag.from.size.Add(d)
				st.size.X = max(st.size.X, minPanelSize)
				st.size.Y = max(st.size.Y, minPanelSize)
			}
		}
	}
}

// End finishes the frame.
func (c *Context) End() {
	c.wasDown = c.in.Down
	c.dst = nil
}

// Hovered reports whether the pointer was over a panel on the last frame.
func (c *Context) Hovered() bool { return c.hovered != "" }

// PanelRect returns where the titled panel was last placed.
func (c *Context) PanelRect(title string) (image.Rectangle, bool) {
	st, ok := c.panels[title]
	if !ok {
		return image.Rectangle{}, false
	}
	return st.rect(), true
}

// Dragging reports whether a panel is being moved or resized.
func (c *Context) Dragging() bool { return c.drag != nil }

// Panel draws p and runs body to lay out its widgets.
func (c *Context) Panel(p Panel, body func(w *Window)) {
	if c.dst == nil {
		return
	}
	st, ok := c.panels[p.Title]
	if !ok {
		st = &panelState{}
		c.panels[p.Title] = st
	}
	if !ok || p.Cond == Always {
		st.pos, st.size = p.Pos, p.Size
	}
	r := st.rect()
	c.drawn = append(c.drawn, drawnPanel{title: p.Title, rect: r})

	c.drawChrome(p, r)

	w := &Window{
		ctx:     c,
		active:  c.hovered == p.Title && c.drag == nil,
		content: contentRect(p, r),
	}
	w.nextY = w.content.Min.Y
	if clip := w.content.Intersect(c.dst.Bounds()); !clip.Empty() {
		w.canvas = c.dst.SubImage(clip).(*image.RGBA)
	}
	if body != nil && w.canvas != nil {
		body(w)
	}

	if p.has(Resizable) {
		c.drawGrip(r)
	}

	if !c.clicked || c.captured || c.hovered != p.Title || c.drag != nil {
		return
	}
	c.captured = true
	switch {
	case p.has(Resizable) && c.in.Pointer.In(gripRect(r)):
		c.drag = &drag{title: p.Title, mode: dragResize, grab: c.in.Pointer, from: *st}
	case p.has(Movable) && p.Cond != Always:
		c.drag = &drag{title: p.Title, mode: dragMove, grab: c.in.Pointer, from: *st}
	}
}

func (c *Context) drawChrome(p Panel, r image.Rectangle) {
	t := c.theme
	if p.has(Decorated) {
		render.DrawShadow(c.dst, r, render.DefaultShadowOptions())
	}
	if !p.has(NoBackground) {
		bg := scaleAlpha(t.PanelBackground, p.Alpha)
		draw.Draw(c.dst, r, image.NewUniform(bg), image.Point{}, draw.Over)
	}
	if !p.has(Decorated) {
		return
	}
	bar := image.Rect(r.Min.X, r.Min.Y, r.Max.X, min(r.Min.Y+titleBarHeight, r.Max.Y))
	draw.Draw(c.dst, bar, image.NewUniform(t.TitleBackground), image.Point{}, draw.Over)
	c.drawText(c.dst, image.Pt(bar.Min.X+padding, bar.Min.Y+titleBarHeight-5), p.Title, t.TitleText)
	drawRect(c.dst, r, t.PanelBorder)
}

func (c *Context) drawGrip(r image.Rectangle) {
	g := gripRect(r)
	col := c.theme.ButtonBackground
	if c.in.Pointer.In(g) && c.hovered != "" {
		col = c.theme.ButtonBackgroundHover
	}
	for i := 0; i < gripSize; i++ {
		line := image.Rect(g.Max.X-i-1, g.Max.Y-1-(gripSize-1-i), g.Max.X-i, g.Max.Y)
		draw.Draw(c.dst, line, image.NewUniform(col), image.Point{}, draw.Over)
	}
}

func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func drawRect(dst draw.Image, r image.Rectangle, col color.Color) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1), u, image.Point{}, draw.Over)
}
