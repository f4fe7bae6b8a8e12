//go:build cgo

package appstate

import (
	"fmt"
	"log"

	"github.com/example/liv/assets"
	"github.com/example/liv/internal/glview"
)

func (a *AppState) runGL() error {
	icons, err := assets.Icons()
	if err != nil {
		log.Printf("window icons: %v", err)
	}
	size := a.Image.Pixels.Bounds().Size()
	win, err := glview.Open(glview.Options{
		Title:  a.Title(),
		Width:  size.X,
		Height: size.Y,
		Icons:  icons,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := win.UploadImage(a.Image.Pixels); err != nil {
		return fmt.Errorf("upload texture: %w", err)
	}
	if a.Config.PrintDebugInfo {
		log.Printf("OpenGL %s on %s", win.VersionString(), win.Renderer())
	}
	r := newFrameRenderer(win, a.Image, a.Theme, a.filter())
	r.debug = a.Config.PrintDebugInfo
	defer r.release()
	return a.loop(win, r)
}
