package appstate

import (
	"image"
	"image/color"

	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/shader"
	"github.com/example/liv/internal/viewport"
)

// Device is the drawing surface a backend provides to the frame renderer.
// Calls for one frame arrive in the order Acquire, Clear, Use, DrawImage,
// DrawOverlay, Present.
type Device interface {
	Acquire(width, height int)
	Clear(c color.Color)
	Version() shader.Version
	Compile(t shader.Tier) (shader.Program, error)
	Release(p shader.Program)
	Use(p shader.Program)
	DrawImage(t viewport.Transform, f render.Filter) error
	DrawOverlay(layer *image.RGBA) error
	Present() error
}

// versionReporter is implemented by devices that know their driver string.
type versionReporter interface {
	VersionString() string
}

// memoryReporter is implemented by devices that can report free video
// memory in KiB.
type memoryReporter interface {
	FreeVideoMemory() (int, bool)
}

// eventWindow is the event pump of a backend window.
type eventWindow interface {
	NextEvent() interface{}
	Send(event interface{})
}
