// Package viewstate holds the interactive state of a viewing session and the
// reducer that applies input events to it.
//
// State is a plain value. The reducer is the only code that produces a new
// State; renderers receive copies and cannot change the session.
package viewstate

// Pointer button channels tracked by the reducer.
const (
	ButtonLeft = iota
	ButtonMiddle
	ButtonRight

	buttonCount
)

// Pointer is the last known pointer position in window pixels and the state
// of the three tracked buttons.
type Pointer struct {
	X, Y float32
	Down [buttonCount]bool
}

// State is the mutable view state of a session.
type State struct {
	Zoom    Zoom
	Panels  Panels
	Pointer Pointer

	// Width and Height are the window size in pixels, zero until the window
	// reports its size.
	Width, Height int

	// Closed is set once a close request has been handled.
	Closed bool
}

// New returns the initial state with the given panel flags.
func New(panels Panels) State {
	return State{Zoom: DefaultZoom, Panels: panels}
}

// DefaultPanels returns the panel flags used when none are configured.
func DefaultPanels() Panels {
	var ps Panels
	ps[ActionBar] = true
	return ps
}
