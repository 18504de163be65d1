// Package icon rasterizes the SVG icons drawn on action surfaces. A handful
// of stock icons are embedded; hosts may register their own.
package icon

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"path"
	"sort"
	"strings"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed svg/*.svg
var stock embed.FS

// ErrUnknownIcon is returned for names that were never registered.
var ErrUnknownIcon = errors.New("unknown icon")

// Stock icon names.
const (
	Trash   = "trash"
	Archive = "archive"
	Flag    = "flag"
	Pin     = "pin"
)

// Set holds SVG sources by name and caches their rasterized forms.
type Set struct {
	sources map[string][]byte
	cache   *internal.Cache[*image.RGBA]
}

// NewSet returns a set preloaded with the stock icons.
func NewSet() *Set {
	s := &Set{
		sources: make(map[string][]byte),
		cache:   internal.NewCache[*image.RGBA](nil),
	}

	entries, err := stock.ReadDir("svg")
	if err != nil {
		internal.GetInternalLogger().Error("Failed to read embedded icons", "error", err)
		return s
	}

	for _, entry := range entries {
		data, err := stock.ReadFile(path.Join("svg", entry.Name()))
		if err != nil {
			continue
		}
		s.sources[strings.TrimSuffix(entry.Name(), ".svg")] = data
	}

	return s
}

// Register adds or replaces an icon and clears the raster cache.
func (s *Set) Register(name string, svg []byte) {
	s.sources[name] = svg
	s.cache.Destroy()
}

// Names lists the registered icons in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.sources))
	for name := range s.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (s *Set) Has(name string) bool {
	_, ok := s.sources[name]
	return ok
}

// Rasterize draws the named icon into a size x size image.
func (s *Set) Rasterize(name string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %q: size must be positive, got %d", name, size)
	}

	key := fmt.Sprintf("%s@%d", name, size)
	if img, ok := s.cache.Get(key); ok {
		return img, nil
	}

	src, ok := s.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}

	img, err := render(src, size)
	if err != nil {
		return nil, swipecell.NewInfrastructureError("decode_icon", fmt.Errorf("%s: %w", name, err))
	}

	s.cache.Set(key, img)
	return img, nil
}

// ForSurface rasterizes the icon named by the surface, or returns nil when
// the surface has no icon.
func (s *Set) ForSurface(surface *swipecell.Surface, size int) (*image.RGBA, error) {
	if surface == nil || surface.Icon == "" {
		return nil, nil
	}
	return s.Rasterize(surface.Icon, size)
}

func render(src []byte, size int) (*image.RGBA, error) {
	svg, err := oksvg.ReadIconStream(bytes.NewReader(src), oksvg.StrictErrorMode)
	if err != nil {
		return nil, err
	}

	w, h := float64(size), float64(size)
	svg.SetTarget(0, 0, w, h)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	svg.Draw(raster, 1.0)

	return img, nil
}
