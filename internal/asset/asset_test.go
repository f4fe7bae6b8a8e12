package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(dir, "sample.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), 12, 5)
	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Width() != 12 || img.Height() != 5 {
		t.Fatalf("size = %dx%d", img.Width(), img.Height())
	}
	if img.Format != "png" || img.ColorModel != "NRGBA" {
		t.Fatalf("format=%q model=%q", img.Format, img.ColorModel)
	}
	if img.FileSize == 0 || img.ModTime.IsZero() {
		t.Fatalf("missing file info: %+v", img)
	}
	if got := img.Pixels.RGBAAt(3, 2); got.R != 3 || got.G != 2 || got.A != 255 {
		t.Fatalf("pixel = %+v", got)
	}
	if img.Name() != "sample.png" {
		t.Fatalf("name = %q", img.Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, image.ErrFormat) {
		t.Fatalf("expected image.ErrFormat, got %v", err)
	}
}

func TestFromImageRejectsEmpty(t *testing.T) {
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 3)), ""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestFromImageRebasesOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 9, 7))
	src.SetGray(5, 5, color.Gray{Y: 200})
	img, err := FromImage(src, "")
	if err != nil {
		t.Fatal(err)
	}
	if img.Pixels.Bounds().Min != (image.Point{}) {
		t.Fatalf("bounds = %v", img.Pixels.Bounds())
	}
	if img.Pixels.RGBAAt(0, 0).R != 200 {
		t.Fatalf("pixel not moved to origin")
	}
	if img.Name() != "clipboard" {
		t.Fatalf("name = %q", img.Name())
	}
}

func TestMetadata(t *testing.T) {
	path := writePNG(t, t.TempDir(), 4, 3)
	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, f := range img.Metadata() {
		got[f.Key] = f.Value
	}
	if got["Dimensions"] != "4x3" || got["Format"] != "png" || got["File"] != "sample.png" {
		t.Fatalf("metadata = %v", got)
	}
	if _, ok := got["Modified"]; !ok {
		t.Fatal("missing modification time")
	}
}

func TestHumanSize(t *testing.T) {
	cases := map[int64]string{
		12:          "12 B",
		2048:        "2.0 KiB",
		5 << 20:     "5.0 MiB",
		3 << 30 / 2: "1.5 GiB",
	}
	for in, want := range cases {
		if got := HumanSize(in); got != want {
			t.Errorf("HumanSize(%d) = %q, want %q", in, got, want)
		}
	}
}
