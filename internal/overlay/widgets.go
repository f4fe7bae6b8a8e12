package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Window lays out widgets inside one panel for the current frame.
type Window struct {
	ctx     *Context
	active  bool
	content image.Rectangle
	canvas  *image.RGBA

	nextY    int
	lineY    int
	lineH    int
	prevMax  image.Point
	sameLine bool
	spacing  int
}

// Content returns the rectangle widgets are clipped to.
func (w *Window) Content() image.Rectangle { return w.content }

func (w *Window) place(size image.Point) image.Rectangle {
	var at image.Point
	if w.sameLine {
		at = image.Pt(w.prevMax.X+w.spacing, w.lineY)
		w.sameLine = false
	} else {
		at = image.Pt(w.content.Min.X, w.nextY)
		w.lineY = at.Y
		w.lineH = 0
	}
	r := image.Rectangle{Min: at, Max: at.Add(size)}
	w.prevMax = r.Max
	w.lineH = max(w.lineH, size.Y)
	w.nextY = w.lineY + w.lineH + itemSpacingY
	return r
}

// SameLine places the next widget to the right of the previous one, spacing
// pixels apart. A negative spacing uses the default item spacing.
func (w *Window) SameLine(spacing int) {
	if spacing < 0 {
		spacing = itemSpacingX
	}
	w.sameLine = true
	w.spacing = spacing
}

// Text draws one line of formatted text.
func (w *Window) Text(format string, args ...interface{}) {
	s := format
	if len(args) > 0 {
		s = fmt.Sprintf(format, args...)
	}
	m := w.ctx.face.Metrics()
	size := image.Pt(font.MeasureString(w.ctx.face, s).Ceil(), m.Height.Ceil())
	r := w.place(size)
	w.ctx.drawText(w.canvas, image.Pt(r.Min.X, r.Min.Y+m.Ascent.Ceil()), s, w.ctx.theme.Foreground)
}

// Separator draws a horizontal rule across the panel.
func (w *Window) Separator() {
	w.sameLine = false
	r := w.place(image.Pt(w.content.Dx(), 1))
	draw.Draw(w.canvas, r, image.NewUniform(w.ctx.theme.Separator), image.Point{}, draw.Over)
}

// Bullet draws a bullet point. The next widget follows on the same line.
func (w *Window) Bullet() {
	h := w.ctx.face.Metrics().Height.Ceil()
	r := w.place(image.Pt(h, h))
	c := r.Min.Add(image.Pt(h/2, h/2))
	dot := image.Rect(c.X-2, c.Y-2, c.X+2, c.Y+2)
	draw.Draw(w.canvas, dot, image.NewUniform(w.ctx.theme.Foreground), image.Point{}, draw.Over)
	w.SameLine(0)
}

// Button draws a labelled button and reports whether it was clicked on this
// frame. A zero size fits the label.
func (w *Window) Button(label string, size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		tw := font.MeasureString(w.ctx.face, label).Ceil()
		size = image.Pt(tw+2*4, w.ctx.face.Metrics().Height.Ceil()+2*3)
	}
	r := w.place(size)
	c := w.ctx
	hover := w.active && c.in.Pointer.In(r.Intersect(w.content))
	clicked := hover && c.clicked && !c.captured
	if clicked {
		c.captured = true
	}
	state := StateDefault
	switch {
	case hover && c.in.Down:
		state = StatePressed
	case hover:
		state = StateHover
	}
	c.drawButton(w.canvas, r, label, state)
	return clicked
}

func (c *Context) drawButton(dst *image.RGBA, r image.Rectangle, label string, state ButtonState) {
	t := c.theme
	bg := t.ButtonBackground
	switch state {
	case StateHover:
		bg = t.ButtonBackgroundHover
	case StatePressed:
		bg = t.ButtonBackgroundPress
	}
	draw.Draw(dst, r, image.NewUniform(bg), image.Point{}, draw.Over)
	drawRect(dst, r, t.ButtonBorder)
	m := c.face.Metrics()
	tw := font.MeasureString(c.face, label).Ceil()
	x := r.Min.X + (r.Dx()-tw)/2
	y := r.Min.Y + (r.Dy()-m.Height.Ceil())/2 + m.Ascent.Ceil()
	c.drawText(dst, image.Pt(x, y), label, t.ButtonText)
}

// drawText draws s with its baseline starting at dot.
func (c *Context) drawText(dst draw.Image, dot image.Point, s string, col color.RGBA) {
	if dst == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
}
