package sdlhost

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors used to draw rows.
type Theme struct {
	BackgroundColor sdl.Color // Window background
	ContentColor    sdl.Color // Row content plate
	FocusColor      sdl.Color // Content plate of the d-pad focused row
	DividerColor    sdl.Color // Line between rows
	SurfaceColor    sdl.Color // Fallback for surfaces without a color
}

// DefaultTheme is a dark theme.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x101010),
		ContentColor:    HexToColor(0x262626),
		FocusColor:      HexToColor(0x3A3A3A),
		DividerColor:    HexToColor(0x000000),
		SurfaceColor:    HexToColor(0x606060),
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// FromRGBA converts a surface color. A fully transparent color is treated as
// unset.
func FromRGBA(c color.RGBA) (sdl.Color, bool) {
	if c.A == 0 {
		return sdl.Color{}, false
	}
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}
