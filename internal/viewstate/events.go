package viewstate

// ScrollUnit says how a scroll delta was measured.
type ScrollUnit int

const (
	// ScrollLines is a delta in lines or wheel notches.
	ScrollLines ScrollUnit = iota
	// ScrollPixels is a precise delta in pixels, as sent by touchpads.
	ScrollPixels
)

// ScrollEvent is a wheel or touchpad scroll.
type ScrollEvent struct {
	X, Y float32
	Unit ScrollUnit
}

// Delta returns the zoom delta in line units. Line scrolls use the vertical
// component; pixel scrolls use the horizontal one divided by
// PixelScrollDivisor.
func (e ScrollEvent) Delta() float32 {
	if e.Unit == ScrollPixels {
		return e.X / PixelScrollDivisor
	}
	return e.Y
}

// ZoomEvent is a discrete zoom step, e.g. from an overlay button. Positive
// steps zoom in, negative steps zoom out and zero resets the zoom.
type ZoomEvent struct {
	Step int
}

// ToggleEvent flips the visibility of a panel.
type ToggleEvent struct {
	Panel Panel
}

// Action is a side effect the loop performs after a reduction.
type Action int

const (
	ActionNone Action = iota
	ActionCopyImage
	ActionCopyPath
)

func (a Action) String() string {
	switch a {
	case ActionCopyImage:
		return "copy image"
	case ActionCopyPath:
		return "copy path"
	default:
		return "none"
	}
}
