package viewstate

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
)

// Result is the outcome of applying one event.
type Result struct {
	State  State
	Redraw bool
	Quit   bool
	Action Action
}

// Reducer applies input events to a State. The zero value uses no key
// bindings and the default zoom multiplier.
type Reducer struct {
	Keys           Bindings
	ZoomMultiplier float32
}

// NewReducer returns a reducer with the default bindings.
func NewReducer() Reducer {
	return Reducer{Keys: DefaultBindings(), ZoomMultiplier: DefaultZoomMultiplier}
}

func (r Reducer) multiplier() float32 {
	if r.ZoomMultiplier <= 0 {
		return DefaultZoomMultiplier
	}
	return r.ZoomMultiplier
}

// Reduce applies ev to s. Once s is closed every event is ignored.
func (r Reducer) Reduce(s State, ev interface{}) Result {
	if s.Closed {
		return Result{State: s}
	}
	switch e := ev.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			return quit(s)
		}
	case key.Event:
		return r.reduceKey(s, e)
	case size.Event:
		s.Width, s.Height = e.WidthPx, e.HeightPx
	case mouse.Event:
		return r.reduceMouse(s, e)
	case ScrollEvent:
		s.Zoom = s.Zoom.Scroll(e.Delta(), r.multiplier())
	case ZoomEvent:
		s.Zoom = stepZoom(s.Zoom, e.Step)
	case ToggleEvent:
		s.Panels = s.Panels.Toggle(e.Panel)
	}
	return Result{State: s, Redraw: true}
}

func quit(s State) Result {
	s.Closed = true
	return Result{State: s, Quit: true}
}

func stepZoom(z Zoom, step int) Zoom {
	switch {
	case step > 0:
		for i := 0; i < step; i++ {
			z = z.In()
		}
	case step < 0:
		for i := 0; i > step; i-- {
			z = z.Out()
		}
	default:
		z = DefaultZoom
	}
	return z
}

func (r Reducer) reduceKey(s State, e key.Event) Result {
	if e.Code == key.CodeEscape && e.Direction != key.DirRelease {
		return quit(s)
	}
	res := Result{State: s, Redraw: true}
	if e.Direction != key.DirPress {
		return res
	}
	if e.Modifiers&key.ModControl != 0 && e.Code == key.CodeC {
		if e.Modifiers&key.ModShift != 0 {
			res.Action = ActionCopyPath
		} else {
			res.Action = ActionCopyImage
		}
		return res
	}
	if p, ok := r.Keys[e.Code]; ok && e.Code != key.CodeUnknown {
		res.State.Panels = s.Panels.Toggle(p)
		return res
	}
	switch {
	case e.Rune == '+' || e.Rune == '=' || e.Code == key.CodeKeypadPlusSign:
		res.State.Zoom = s.Zoom.In()
	case e.Rune == '-' || e.Code == key.CodeKeypadHyphenMinus:
		res.State.Zoom = s.Zoom.Out()
	case e.Rune == '0' || e.Code == key.Code0:
		res.State.Zoom = DefaultZoom
	}
	return res
}

func (r Reducer) reduceMouse(s State, e mouse.Event) Result {
	s.Pointer.X, s.Pointer.Y = e.X, e.Y
	switch e.Button {
	case mouse.ButtonLeft, mouse.ButtonMiddle, mouse.ButtonRight:
		i := int(e.Button - mouse.ButtonLeft)
		switch e.Direction {
		case mouse.DirPress:
			s.Pointer.Down[i] = true
		case mouse.DirRelease:
			s.Pointer.Down[i] = false
		}
	case mouse.ButtonWheelUp:
		s.Zoom = s.Zoom.Scroll(1, r.multiplier())
	case mouse.ButtonWheelDown:
		s.Zoom = s.Zoom.Scroll(-1, r.multiplier())
	}
	return Result{State: s, Redraw: true}
}
