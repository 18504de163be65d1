package sdlhost

import (
	"io"
	"testing"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	internal.SetLogOutput(io.Discard)
}

func newTestHost(t *testing.T, rows int) (*Host, *time.Time) {
	t.Helper()
	now := t0
	h := newHost(400, 400)
	h.RowHeight = 100
	for i := 0; i < rows; i++ {
		s := swipecell.DefaultSettings()
		s.Clock = func() time.Time { return now }
		cell := swipecell.NewCell(s)
		cell.SetLeftSurface(&swipecell.Surface{Label: "Delete"})
		cell.SetRightSurface(&swipecell.Surface{Label: "Pin"})
		h.AddRow(cell)
	}
	return h, &now
}

func TestHost_RowAt(t *testing.T) {
	h, _ := newTestHost(t, 3)

	assert.Equal(t, 0, h.RowAt(10, 0))
	assert.Equal(t, 1, h.RowAt(399, 150))
	assert.Equal(t, 2, h.RowAt(0, 299))
	assert.Equal(t, -1, h.RowAt(0, 300))
	assert.Equal(t, -1, h.RowAt(400, 50))
}

func TestHost_PointerRoutesToRowUnderPress(t *testing.T) {
	h, now := newTestHost(t, 2)

	h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerDown, X: 300, Y: 150, Time: *now})
	h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerMove, X: 250, Y: 152, Time: now.Add(10 * time.Millisecond)})
	// leaving the row vertically keeps the touch on it
	h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerMove, X: 180, Y: 60, Time: now.Add(20 * time.Millisecond)})
	h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerUp, X: 180, Y: 60, Time: now.Add(30 * time.Millisecond)})

	rows := h.Rows()
	assert.Equal(t, swipecell.SideNone, rows[0].Cell.CurrentSide())
	assert.Equal(t, swipecell.SideLeft, rows[1].Cell.CurrentSide())
}

func TestHost_TapSelects(t *testing.T) {
	h, now := newTestHost(t, 2)
	selected := -1
	h.OnSelect = func(i int) { selected = i }

	h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerDown, X: 50, Y: 20, Time: *now})
	h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerUp, X: 51, Y: 20, Time: *now})

	assert.Equal(t, 0, selected)
}

func TestHost_ButtonsDriveFocusedRow(t *testing.T) {
	h, now := newTestHost(t, 2)

	press := func(sym sdl.Keycode) {
		h.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sym}}, *now)
		h.Update(*now)
		h.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sym}}, *now)
	}

	press(sdl.K_DOWN)
	require.Equal(t, 1, h.Focus())

	press(sdl.K_RIGHT)
	assert.Equal(t, swipecell.SideRight, h.Rows()[1].Cell.CurrentSide())
	assert.Equal(t, swipecell.SideNone, h.Rows()[0].Cell.CurrentSide())

	press(sdl.K_ESCAPE)
	assert.Equal(t, swipecell.SideNone, h.Rows()[1].Cell.CurrentSide())

	press(sdl.K_DOWN)
	assert.Equal(t, 1, h.Focus(), "focus stops at the last row")
}

func TestHost_QuitEvent(t *testing.T) {
	h, now := newTestHost(t, 1)
	assert.True(t, h.HandleEvent(&sdl.QuitEvent{Type: sdl.QUIT}, *now))
}

func TestHost_HeldDPadBlocksSwipeOnSameRow(t *testing.T) {
	h, now := newTestHost(t, 1)
	cell := h.Rows()[0].Cell

	drag := func() {
		h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerDown, X: 300, Y: 50, Time: *now})
		h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerMove, X: 250, Y: 52, Time: now.Add(10 * time.Millisecond)})
		h.HandlePointer(swipecell.PointerEvent{Phase: swipecell.PointerUp, X: 180, Y: 52, Time: now.Add(20 * time.Millisecond)})
	}

	h.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_RIGHT}}, *now)
	drag()
	assert.Equal(t, swipecell.SideNone, cell.CurrentSide())
	assert.Equal(t, swipecell.RecognizerIdle, h.Rows()[0].Recognizer.State())

	h.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_RIGHT}}, *now)
	drag()
	assert.Equal(t, swipecell.SideLeft, cell.CurrentSide())
}
