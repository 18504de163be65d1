package sdlhost

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/icon"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const iconMargin = 12

// RowRenderer draws swipe rows: the revealed surfaces with their icons and
// the content plate on top. Row content itself is the host's business.
type RowRenderer struct {
	renderer *sdl.Renderer
	icons    *icon.Set
	textures *internal.Cache[*sdl.Texture]
	theme    Theme
}

// NewRowRenderer creates a renderer drawing with r. icons may be nil to draw
// surfaces without icons.
func NewRowRenderer(r *sdl.Renderer, icons *icon.Set, theme Theme) *RowRenderer {
	return &RowRenderer{
		renderer: r,
		icons:    icons,
		textures: internal.NewCacheWithSize(16, func(t *sdl.Texture) { t.Destroy() }),
		theme:    theme,
	}
}

// Theme returns the colors in use.
func (rr *RowRenderer) Theme() Theme {
	return rr.theme
}

// DrawRow draws cell inside bounds at its current offset.
func (rr *RowRenderer) DrawRow(cell *swipecell.Cell, bounds sdl.Rect, focused bool) {
	layout := Layout(bounds, cell.Offset())

	for _, side := range []swipecell.Side{swipecell.SideLeft, swipecell.SideRight} {
		area := layout.Revealed(side)
		surface := cell.Surface(side)
		if area.W <= 0 {
			continue
		}

		fill := rr.theme.SurfaceColor
		if surface != nil {
			if c, ok := FromRGBA(surface.Color); ok {
				fill = c
			}
		}
		rr.fill(area, fill)

		if surface != nil {
			rr.drawIcon(surface, side, area)
		}
	}

	plate := rr.theme.ContentColor
	if focused {
		plate = rr.theme.FocusColor
	}
	rr.fill(layout.Content, plate)

	divider := sdl.Rect{X: bounds.X, Y: bounds.Y + bounds.H - 1, W: bounds.W, H: 1}
	rr.fill(divider, rr.theme.DividerColor)
}

func (rr *RowRenderer) fill(r sdl.Rect, c sdl.Color) {
	rr.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	rr.renderer.FillRect(&r)
}

// drawIcon centers the surface icon in the part of the strip nearest the
// content edge, once enough of the strip is showing.
func (rr *RowRenderer) drawIcon(surface *swipecell.Surface, side swipecell.Side, area sdl.Rect) {
	if rr.icons == nil || surface.Icon == "" {
		return
	}

	size := area.H - 2*iconMargin
	if size <= 0 || area.W < size+2*iconMargin {
		return
	}

	tex, err := rr.iconTexture(surface.Icon, size)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to draw surface icon", "icon", surface.Icon, "error", err)
		return
	}

	dst := sdl.Rect{Y: area.Y + iconMargin, W: size, H: size}
	if side == swipecell.SideLeft {
		dst.X = area.X + iconMargin
	} else {
		dst.X = area.X + area.W - iconMargin - size
	}
	rr.renderer.Copy(tex, nil, &dst)
}

func (rr *RowRenderer) iconTexture(name string, size int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%d", name, size)
	if tex, ok := rr.textures.Get(key); ok {
		return tex, nil
	}

	img, err := rr.icons.Rasterize(name, int(size))
	if err != nil {
		return nil, err
	}

	tex, err := textureFromRGBA(rr.renderer, img)
	if err != nil {
		return nil, swipecell.NewInfrastructureError("create_texture", err)
	}

	rr.textures.Set(key, tex)
	return tex, nil
}

// textureFromRGBA uploads img. image.RGBA stores bytes in R,G,B,A order,
// which SDL calls ABGR8888 on little-endian machines.
func textureFromRGBA(r *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	tex, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}

// Destroy frees cached icon textures.
func (rr *RowRenderer) Destroy() {
	rr.textures.Destroy()
}
