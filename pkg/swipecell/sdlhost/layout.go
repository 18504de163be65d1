package sdlhost

import (
	"math"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/veandco/go-sdl2/sdl"
)

// RowLayout splits a row into the shifted content plate and the revealed
// surface areas. An unrevealed area has zero width.
type RowLayout struct {
	Content sdl.Rect
	Left    sdl.Rect // Right-hand strip uncovered by a leftward drag
	Right   sdl.Rect // Left-hand strip uncovered by a rightward drag
}

// Layout positions a row of the given bounds at offset.
func Layout(row sdl.Rect, offset float64) RowLayout {
	shift := int32(math.Round(offset))
	if shift > row.W {
		shift = row.W
	} else if shift < -row.W {
		shift = -row.W
	}

	l := RowLayout{
		Content: sdl.Rect{X: row.X + shift, Y: row.Y, W: row.W, H: row.H},
		Left:    sdl.Rect{X: row.X + row.W, Y: row.Y, W: 0, H: row.H},
		Right:   sdl.Rect{X: row.X, Y: row.Y, W: 0, H: row.H},
	}

	switch {
	case shift < 0:
		l.Left.X = row.X + row.W + shift
		l.Left.W = -shift
	case shift > 0:
		l.Right.W = shift
	}

	return l
}

// Revealed returns the strip for side, or an empty rect for SideNone.
func (l RowLayout) Revealed(side swipecell.Side) sdl.Rect {
	switch side {
	case swipecell.SideLeft:
		return l.Left
	case swipecell.SideRight:
		return l.Right
	default:
		return sdl.Rect{}
	}
}

func contains(r sdl.Rect, x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
