//go:build cgo

package glview

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/geom"

	"github.com/example/liv/internal/viewstate"
)

func (w *Window) installCallbacks() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(w.sizeEvent(width, height))
	})
	w.win.SetRefreshCallback(func(*glfw.Window) {
		w.push(paint.Event{External: true})
	})
	w.win.SetCloseCallback(func(*glfw.Window) {
		w.push(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead})
	})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			w.push(lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageFocused})
		} else {
			w.push(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageVisible})
		}
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		px, py := w.toPixels(x, y)
		w.push(mouse.Event{X: px, Y: py, Direction: mouse.DirNone})
	})
	w.win.SetMouseButtonCallback(func(gw *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := mouseButton(b)
		if !ok {
			return
		}
		px, py := w.toPixels(gw.GetCursorPos())
		dir := mouse.DirPress
		if action == glfw.Release {
			dir = mouse.DirRelease
		}
		w.push(mouse.Event{X: px, Y: py, Button: btn, Direction: dir, Modifiers: modifiers(mods)})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.push(viewstate.ScrollEvent{X: float32(dx), Y: float32(dy), Unit: viewstate.ScrollLines})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		w.push(keyEvent(k, action, mods))
	})
}

// pixelScale is the framebuffer to window-coordinate ratio on each axis.
func (w *Window) pixelScale() (float32, float32) {
	ww, wh := w.win.GetSize()
	fw, fh := w.win.GetFramebufferSize()
	if ww <= 0 || wh <= 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func (w *Window) toPixels(x, y float64) (float32, float32) {
	sx, sy := w.pixelScale()
	return float32(x) * sx, float32(y) * sy
}

func (w *Window) sizeEvent(width, height int) size.Event {
	sx, _ := w.pixelScale()
	return size.Event{
		WidthPx:     width,
		HeightPx:    height,
		WidthPt:     geom.Pt(float32(width) / sx),
		HeightPt:    geom.Pt(float32(height) / sx),
		PixelsPerPt: sx,
	}
}

func mouseButton(b glfw.MouseButton) (mouse.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return mouse.ButtonLeft, true
	case glfw.MouseButtonMiddle:
		return mouse.ButtonMiddle, true
	case glfw.MouseButtonRight:
		return mouse.ButtonRight, true
	}
	return mouse.ButtonNone, false
}

func modifiers(m glfw.ModifierKey) key.Modifiers {
	var out key.Modifiers
	if m&glfw.ModShift != 0 {
		out |= key.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= key.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= key.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= key.ModMeta
	}
	return out
}

var specialKeys = map[glfw.Key]key.Code{
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeyBackspace:    key.CodeDeleteBackspace,
	glfw.KeyInsert:       key.CodeInsert,
	glfw.KeyDelete:       key.CodeDeleteForward,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyPageUp:       key.CodePageUp,
	glfw.KeyPageDown:     key.CodePageDown,
	glfw.KeyHome:         key.CodeHome,
	glfw.KeyEnd:          key.CodeEnd,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyMinus:        key.CodeHyphenMinus,
	glfw.KeyEqual:        key.CodeEqualSign,
	glfw.KeyKPAdd:        key.CodeKeypadPlusSign,
	glfw.KeyKPSubtract:   key.CodeKeypadHyphenMinus,
	glfw.KeyKP0:          key.CodeKeypad0,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyRightControl: key.CodeRightControl,
}

func keyCode(k glfw.Key) key.Code {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return key.CodeA + key.Code(k-glfw.KeyA)
	case k == glfw.Key0:
		return key.Code0
	case k >= glfw.Key1 && k <= glfw.Key9:
		return key.Code1 + key.Code(k-glfw.Key1)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return key.CodeF1 + key.Code(k-glfw.KeyF1)
	}
	if c, ok := specialKeys[k]; ok {
		return c
	}
	return key.CodeUnknown
}

// keyRune returns the character a US layout produces, or -1.
func keyRune(k glfw.Key, mods glfw.ModifierKey) rune {
	shift := mods&glfw.ModShift != 0
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		if shift {
			return 'A' + rune(k-glfw.KeyA)
		}
		return 'a' + rune(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9 && !shift:
		return '0' + rune(k-glfw.Key0)
	case k == glfw.KeyEqual:
		if shift {
			return '+'
		}
		return '='
	case k == glfw.KeyMinus && !shift:
		return '-'
	case k == glfw.KeyKPAdd:
		return '+'
	case k == glfw.KeyKPSubtract:
		return '-'
	case k == glfw.KeySpace:
		return ' '
	}
	return -1
}

func keyEvent(k glfw.Key, action glfw.Action, mods glfw.ModifierKey) key.Event {
	dir := key.DirPress
	switch action {
	case glfw.Release:
		dir = key.DirRelease
	case glfw.Repeat:
		dir = key.DirNone
	}
	return key.Event{
		Rune:      keyRune(k, mods),
		Code:      keyCode(k),
		Modifiers: modifiers(mods),
		Direction: dir,
	}
}
