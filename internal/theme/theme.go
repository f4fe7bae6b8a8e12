package theme

import (
	"image/color"
)

// Theme defines the colours of the viewer background and overlay panels.
// Colours are premultiplied.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Cleared behind the image every frame
	Foreground color.RGBA // Panel text

	// Panels
	PanelBackground color.RGBA
	PanelBorder     color.RGBA
	TitleBackground color.RGBA
	TitleText       color.RGBA
	Separator       color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA
}

// Default returns the built-in dark theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{13, 13, 13, 255},
		Foreground:            color.RGBA{230, 230, 230, 255},
		PanelBackground:       color.RGBA{15, 15, 15, 240},
		PanelBorder:           color.RGBA{110, 110, 128, 128},
		TitleBackground:       color.RGBA{41, 74, 122, 255},
		TitleText:             color.RGBA{255, 255, 255, 255},
		Separator:             color.RGBA{110, 110, 128, 128},
		ButtonBackground:      color.RGBA{41, 74, 122, 255},
		ButtonBackgroundHover: color.RGBA{66, 150, 250, 255},
		ButtonBackgroundPress: color.RGBA{15, 135, 250, 255},
		ButtonText:            color.RGBA{255, 255, 255, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
	}
}

// Clone returns a copy of t.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}
