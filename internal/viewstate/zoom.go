package viewstate

const (
	// DefaultZoom is the zoom factor a session starts with.
	DefaultZoom Zoom = 1
	// ZoomStep is the factor applied by one discrete zoom in or out.
	ZoomStep = 1.2
	// MinZoom is the smallest zoom factor the model keeps.
	MinZoom Zoom = 0.01
	// DefaultZoomMultiplier is the scroll sensitivity used when none is
	// configured.
	DefaultZoomMultiplier = 10
	// PixelScrollDivisor normalises pixel scroll deltas to line units.
	PixelScrollDivisor = 13
)

// Zoom is a multiplicative scale applied on top of the fit transform.
type Zoom float32

// In returns the zoom one step closer.
func (z Zoom) In() Zoom { return clampZoom(z * ZoomStep) }

// Out returns the zoom one step further away.
func (z Zoom) Out() Zoom { return clampZoom(z / ZoomStep) }

// Scroll applies a scroll delta in line units scaled by multiplier percent.
func (z Zoom) Scroll(delta, multiplier float32) Zoom {
	return clampZoom(z * Zoom(1+delta*multiplier/100))
}

func clampZoom(z Zoom) Zoom {
	// NaN compares false, so it is replaced too.
	if !(z >= MinZoom) {
		return MinZoom
	}
	return z
}
