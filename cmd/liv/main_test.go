package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/liv/internal/config"
)

func testRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	t.Setenv("LIV_THEME", "")
	r := newRoot(config.New())
	var out bytes.Buffer
	r.stdout = &out
	return r, &out
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingArgumentIsUsageError(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	help := uerr.Error()
	for _, want := range []string{"Usage: liv [flags] <image>", "-backend", "-zoom-multiplier"} {
		if !strings.Contains(help, want) {
			t.Errorf("help does not mention %q:\n%s", want, help)
		}
	}
}

func TestViewMissingFile(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run([]string{filepath.Join(t.TempDir(), "missing.png")})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestViewUndecodableFile(t *testing.T) {
	r, _ := testRoot(t)
	path := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.Run([]string{path}); !errors.Is(err, image.ErrFormat) {
		t.Fatalf("expected image.ErrFormat, got %v", err)
	}
}

func TestInfoPrintsMetadata(t *testing.T) {
	r, out := testRoot(t)
	path := writePNG(t, 3, 2)
	if err := r.Run([]string{"info", path}); err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"File: photo.png", "Format: png", "Dimensions: 3x2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestInfoRequiresPath(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run([]string{"info"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "Usage: liv info <image>") {
		t.Fatalf("unexpected help:\n%s", uerr.Error())
	}
}

func TestConfigPrintReflectsFlags(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"-filter", "nearest", "-zoom-multiplier", "20", "-backend", "shiny", "config", "print"}); err != nil {
		t.Fatalf("config print: %v", err)
	}
	for _, want := range []string{"filter = nearest", "zoom_multiplier = 20", "backend = shiny"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestConfigSave(t *testing.T) {
	r, _ := testRoot(t)
	path := filepath.Join(t.TempDir(), "liv", "config.rc")
	t.Setenv("LIV_CONFIG", path)
	if err := r.Run([]string{"-notify-copy", "config", "save"}); err != nil {
		t.Fatalf("config save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("saved config does not parse: %v", err)
	}
	if !cfg.Notify.Copy {
		t.Errorf("notify.copy not saved:\n%s", data)
	}
}

func TestConfigUnknownCommand(t *testing.T) {
	r, _ := testRoot(t)
	if err := r.Run([]string{"config", "frobnicate"}); err == nil || !strings.Contains(err.Error(), "frobnicate") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.HasPrefix(got, "liv version dev") {
		t.Fatalf("version output = %q", got)
	}
}

func TestInvalidFlags(t *testing.T) {
	cases := [][]string{
		{"-zoom-multiplier", "0", "version"},
		{"-filter", "cubic", "version"},
		{"-backend", "vulkan", "version"},
	}
	for _, args := range cases {
		r, _ := testRoot(t)
		if err := r.Run(args); err == nil {
			t.Errorf("Run(%q) succeeded", args)
		}
	}
}

func TestThemePrecedence(t *testing.T) {
	r, _ := testRoot(t)
	r.config.Theme = "dark"
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if r.activeTheme.Name != "Dark" {
		t.Errorf("config theme = %q, want Dark", r.activeTheme.Name)
	}

	r, _ = testRoot(t)
	r.config.Theme = "dark"
	t.Setenv("LIV_THEME", "light")
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if r.activeTheme.Name != "Light" {
		t.Errorf("env theme = %q, want Light", r.activeTheme.Name)
	}

	r = newRoot(config.New())
	r.stdout = &bytes.Buffer{}
	if err := r.Run([]string{"-theme", "dark", "version"}); err != nil {
		t.Fatal(err)
	}
	if r.activeTheme.Name != "Dark" {
		t.Errorf("flag theme = %q, want Dark", r.activeTheme.Name)
	}
}

func TestFromClipboard(t *testing.T) {
	original := readClipboardFn
	t.Cleanup(func() { readClipboardFn = original })

	sentinel := errors.New("no display")
	readClipboardFn = func() (image.Image, error) { return nil, sentinel }
	r, _ := testRoot(t)
	if err := r.Run([]string{"-from-clipboard"}); !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}

	r, _ = testRoot(t)
	if err := r.Run([]string{"-from-clipboard", "photo.png"}); err == nil || !strings.Contains(err.Error(), "-from-clipboard") {
		t.Fatalf("expected conflict error, got %v", err)
	}
}
