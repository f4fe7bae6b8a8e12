// Package overlay draws immediate-mode panels and widgets onto an RGBA layer.
//
// Each frame the caller runs Begin, one Panel call per visible panel in
// stacking order (bottom first), then End. Widget calls inside a panel body
// draw immediately and report interactions for the current frame only.
package overlay

import (
	"image"
)

// Cond says when a panel's Pos and Size are applied.
type Cond int

const (
	// Always applies Pos and Size on every frame.
	Always Cond = iota
	// FirstUse applies them the first time the panel is shown. Later frames
	// keep wherever the user moved or resized it.
	FirstUse
)

// Flags control panel chrome and behaviour.
type Flags uint

const (
	// Movable panels can be dragged from their background.
	Movable Flags = 1 << iota
	// Resizable panels get a grip in the bottom-right corner.
	Resizable
	// Decorated panels get a title bar, a border and a drop shadow.
	Decorated
	// Scrollable marks panels whose content may exceed their size. Content
	// is clipped either way.
	Scrollable
	// NoBackground skips the panel fill.
	NoBackground
	// NoPadding places content flush with the panel edge.
	NoPadding
)

// Panel describes one overlay window.
type Panel struct {
	Title string
	Pos   image.Point
	Size  image.Point
	Cond  Cond
	Flags Flags
	// Alpha scales the background opacity. Zero keeps the theme's value.
	Alpha float64
}

func (p Panel) has(f Flags) bool { return p.Flags&f != 0 }

const (
	titleBarHeight = 19
	padding        = 8
	itemSpacingX   = 8
	itemSpacingY   = 4
	gripSize       = 10
	minPanelSize   = 32
)

type panelState struct {
	pos, size image.Point
}

func (s panelState) rect() image.Rectangle {
	return image.Rectangle{Min: s.pos, Max: s.pos.Add(s.size)}
}

// contentRect is where widgets of a panel with rect r may draw.
func contentRect(p Panel, r image.Rectangle) image.Rectangle {
	if p.has(Decorated) {
		r.Min.Y += titleBarHeight
	}
	if !p.has(NoPadding) {
		r = r.Inset(padding)
	}
	return r
}

func gripRect(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Max.X-gripSize, r.Max.Y-gripSize, r.Max.X, r.Max.Y)
}
