// Package asset decodes the image a session displays.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is returned for images with a zero dimension.
var ErrEmpty = errors.New("image has no pixels")

// Image is a decoded image and what is known about its source. It is not
// modified after Load returns.
type Image struct {
	Path       string
	Format     string
	Pixels     *image.RGBA
	FileSize   int64
	ModTime    time.Time
	ColorModel string
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.Pixels.Bounds().Dx() }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.Pixels.Bounds().Dy() }

// Name returns the base name of the source, or "clipboard" when the image did
// not come from a file.
func (i *Image) Name() string {
	if i.Path == "" {
		return "clipboard"
	}
	return filepath.Base(i.Path)
}

// Load reads and decodes the image at path.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	img, err := Decode(data, path)
	if err != nil {
		return nil, err
	}
	if fi, err := os.Stat(path); err == nil {
		img.ModTime = fi.ModTime()
	}
	return img, nil
}

// Decode decodes encoded image bytes. name is recorded as the path.
func Decode(data []byte, name string) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", displayName(name), err)
	}
	img, err := FromImage(src, name)
	if err != nil {
		return nil, err
	}
	img.Format = format
	img.FileSize = int64(len(data))
	return img, nil
}

// FromImage wraps an already decoded image.
func FromImage(src image.Image, name string) (*Image, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode %s: %w", displayName(name), ErrEmpty)
	}
	return &Image{
		Path:       name,
		Pixels:     toRGBA(src),
		ColorModel: colorModelName(src),
	}, nil
}

func displayName(name string) string {
	if name == "" {
		return "image"
	}
	return filepath.Base(name)
}

func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func colorModelName(src image.Image) string {
	switch src.(type) {
	case *image.RGBA:
		return "RGBA"
	case *image.NRGBA:
		return "NRGBA"
	case *image.RGBA64:
		return "RGBA64"
	case *image.NRGBA64:
		return "NRGBA64"
	case *image.Gray:
		return "Gray"
	case *image.Gray16:
		return "Gray16"
	case *image.YCbCr:
		return "YCbCr"
	case *image.CMYK:
		return "CMYK"
	case *image.Paletted:
		return "Paletted"
	case *image.Alpha:
		return "Alpha"
	default:
		return fmt.Sprintf("%T", src)
	}
}
