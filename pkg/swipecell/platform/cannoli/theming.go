// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"image/color"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/icon"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/sdlhost"
)

const (
	accent      = 0x008080
	destructive = 0xC0392B
)

// InitCannoliTheme creates a row theme with Cannoli's default colors.
func InitCannoliTheme() sdlhost.Theme {
	return sdlhost.Theme{
		BackgroundColor: sdlhost.HexToColor(0xFFFFFF),
		ContentColor:    sdlhost.HexToColor(0xFFFFFF),
		FocusColor:      sdlhost.HexToColor(0xE0F0F0),
		DividerColor:    sdlhost.HexToColor(0x000000),
		SurfaceColor:    sdlhost.HexToColor(accent),
	}
}

// DeleteSurface returns Cannoli's destructive action surface.
func DeleteSurface(label string) *swipecell.Surface {
	return &swipecell.Surface{Label: label, Icon: icon.Trash, Color: rgba(destructive)}
}

// ArchiveSurface returns Cannoli's archive action surface.
func ArchiveSurface(label string) *swipecell.Surface {
	return &swipecell.Surface{Label: label, Icon: icon.Archive, Color: rgba(accent)}
}

// PinSurface returns Cannoli's pin action surface.
func PinSurface(label string) *swipecell.Surface {
	return &swipecell.Surface{Label: label, Icon: icon.Pin, Color: rgba(accent)}
}

func rgba(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xFF}
}
