package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow drawn under a panel.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns the shadow used under decorated panels.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(4, 4),
		Opacity: 0.45,
	}
}

// ShadowBounds reports the area DrawShadow may touch for r.
func ShadowBounds(r image.Rectangle, opts ShadowOptions) image.Rectangle {
	if r.Empty() || opts.Opacity <= 0 {
		return image.Rectangle{}
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}
	return r.Inset(-radius).Add(opts.Offset)
}

// DrawShadow blurs the silhouette of r and composites it onto dst, offset by
// opts.Offset. Content drawn at r afterwards sits on top of the shadow. The
// shadow is clipped to dst.
func DrawShadow(dst *image.RGBA, r image.Rectangle, opts ShadowOptions) {
	if dst == nil {
		return
	}
	sb := ShadowBounds(r, opts)
	if sb.Empty() || !sb.Overlaps(dst.Bounds()) {
		return
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	mask := image.NewGray(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	for y := radius; y < radius+r.Dy(); y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := radius; x < radius+r.Dx(); x++ {
			row[x] = 0xff
		}
	}
	blurred := blurGray(mask, radius)

	alpha := uint8(opacity*255 + 0.5)
	if alpha == 0 {
		return
	}
	draw.DrawMask(dst, sb, image.NewUniform(color.RGBA{0, 0, 0, alpha}), image.Point{}, blurred, image.Point{}, draw.Over)
}

func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		rowStart := y * src.Stride
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[rowStart+x])
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}

	return dst
}
