// Package viewport computes the per-frame transform that fits an image quad
// into the window while keeping the image's aspect ratio.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f64"
)

// Transform is a column-major 4x4 matrix. Only the diagonal is ever set.
type Transform [4][4]float32

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// ScaleX reports the horizontal scale of t.
func (t Transform) ScaleX() float32 { return t[0][0] }

// ScaleY reports the vertical scale of t.
func (t Transform) ScaleY() float32 { return t[1][1] }

// Mat4 returns t in the layout glUniformMatrix4fv expects.
func (t Transform) Mat4() mgl32.Mat4 {
	var m mgl32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = t[c][r]
		}
	}
	return m
}

// Fit returns the scale transform mapping the unit quad of an imageW x imageH
// image into a windowW x windowH window at the given zoom.
//
// The constrained axis is snapped to whole pixels of the window so the image
// edge does not shimmer while the window is resized. Callers must pass
// positive dimensions and a positive zoom.
func Fit(imageW, imageH, windowW, windowH, zoom float32) Transform {
	imageRatio := imageW / imageH
	windowRatio := windowW / windowH

	scaleX := float32(1)
	scaleY := float32(1)
	if imageRatio < windowRatio {
		scaleX = floor32((imageRatio/windowRatio)*windowW) / windowW
	} else {
		scaleY = floor32((windowRatio/imageRatio)*windowH) / windowH
	}

	t := Identity()
	t[0][0] = scaleX * zoom
	t[1][1] = scaleY * zoom
	return t
}

func floor32(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// Aff3 converts t into an affine transform from image pixel space to window
// pixel space. The quad spans [-1, 1] on both axes in device coordinates, so a
// scale of 1 covers the full window and the result is centred.
func Aff3(t Transform, windowW, windowH, imageW, imageH int) f64.Aff3 {
	dstW := float64(t.ScaleX()) * float64(windowW)
	dstH := float64(t.ScaleY()) * float64(windowH)
	sx := dstW / float64(imageW)
	sy := dstH / float64(imageH)
	tx := (float64(windowW) - dstW) / 2
	ty := (float64(windowH) - dstH) / 2
	return f64.Aff3{
		sx, 0, tx,
		0, sy, ty,
	}
}
