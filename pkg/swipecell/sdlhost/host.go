// Package sdlhost hosts swipe cells in an SDL2 window: it translates mouse,
// touch, keyboard and controller events, drives the frame loop and draws the
// rows.
package sdlhost

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/icon"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultRowHeight is the height of each row in pixels.
const DefaultRowHeight int32 = 96

// Row is one swipe cell with its input drivers.
type Row struct {
	Cell       *swipecell.Cell
	Recognizer *swipecell.Recognizer
	DPad       *swipecell.DPad
}

// Host lays rows out top to bottom and routes input to them. Pointer input
// goes to the row under the pointer; buttons go to the focused row.
type Host struct {
	RowHeight int32
	OnSelect  func(index int) // Called on a tap or A press

	window     *Window
	renderer   *RowRenderer
	translator *PointerTranslator
	width      int32

	rows   []*Row
	focus  int
	active *Row

	logger *slog.Logger
}

// NewHost creates a host drawing into w.
func NewHost(w *Window, icons *icon.Set, theme Theme) *Host {
	width, height := w.Size()
	h := newHost(width, height)
	h.window = w
	h.renderer = NewRowRenderer(w.Renderer, icons, theme)
	return h
}

func newHost(width, height int32) *Host {
	return &Host{
		RowHeight:  DefaultRowHeight,
		translator: NewPointerTranslator(width, height),
		width:      width,
		logger:     internal.GetInternalLogger(),
	}
}

// AddRow appends a row for cell and returns it.
func (h *Host) AddRow(cell *swipecell.Cell) *Row {
	index := len(h.rows)
	row := &Row{
		Cell:       cell,
		Recognizer: swipecell.NewRecognizer(cell),
		DPad:       swipecell.NewDPad(cell),
	}
	// a held d-pad owns the row; taps select it
	row.Recognizer.RequireExclusive(row.DPad)
	row.Recognizer.OnTap = func() { h.selectRow(index) }
	h.rows = append(h.rows, row)
	return row
}

func (h *Host) Rows() []*Row {
	return h.rows
}

// Focus returns the index of the row receiving button input.
func (h *Host) Focus() int {
	return h.focus
}

// RowBounds returns the screen rectangle of row i.
func (h *Host) RowBounds(i int) sdl.Rect {
	return sdl.Rect{X: 0, Y: int32(i) * h.RowHeight, W: h.width, H: h.RowHeight}
}

// RowAt returns the index of the row containing the point, or -1.
func (h *Host) RowAt(x, y int32) int {
	for i := range h.rows {
		if contains(h.RowBounds(i), x, y) {
			return i
		}
	}
	return -1
}

// HandleEvent processes one SDL event. It returns true when the host should quit.
func (h *Host) HandleEvent(ev sdl.Event, now time.Time) bool {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			h.width = e.Data1
			h.translator.Resize(e.Data1, e.Data2)
		}
	}

	if pe, ok := h.translator.Translate(ev, now); ok {
		h.HandlePointer(pe)
		return false
	}

	if button, held, ok := ButtonFor(ev); ok {
		h.handleButton(button, held)
	}

	return false
}

// HandlePointer routes a pointer sample from any source, such as an evdev
// touchscreen, to the row it started on.
func (h *Host) HandlePointer(pe swipecell.PointerEvent) {
	if pe.Phase == swipecell.PointerDown {
		if h.active != nil {
			return
		}
		i := h.RowAt(int32(pe.X), int32(pe.Y))
		if i < 0 {
			return
		}
		h.active = h.rows[i]
	}

	if h.active == nil {
		return
	}

	h.active.Recognizer.Handle(pe)

	if pe.Phase == swipecell.PointerUp || pe.Phase == swipecell.PointerCancel {
		h.active = nil
	}
}

func (h *Host) handleButton(button constants.VirtualButton, held bool) {
	if len(h.rows) == 0 {
		return
	}
	row := h.rows[h.focus]

	if row.DPad.SetHeld(button, held) || !held {
		return
	}

	switch button {
	case constants.VirtualButtonUp:
		h.moveFocus(-1)
	case constants.VirtualButtonDown:
		h.moveFocus(1)
	case constants.VirtualButtonA:
		h.selectRow(h.focus)
	case constants.VirtualButtonB:
		if row.Cell.CurrentSide() != swipecell.SideNone {
			row.Cell.SetCurrentSide(swipecell.SideNone, row.Cell.Settings().AnimationDuration)
		}
	}
}

func (h *Host) moveFocus(delta int) {
	next := h.focus + delta
	if next < 0 || next >= len(h.rows) {
		return
	}
	h.rows[h.focus].DPad.Reset()
	h.focus = next
	h.logger.Debug("Row focus changed", "focus", next)
}

func (h *Host) selectRow(index int) {
	if h.OnSelect != nil {
		h.OnSelect(index)
	}
}

// Update applies held buttons and advances animations. It returns true while
// anything is still moving.
func (h *Host) Update(now time.Time) bool {
	moving := false
	for _, row := range h.rows {
		row.DPad.Update()
		if row.Cell.Tick(now) || row.Cell.Swiping() {
			moving = true
		}
	}
	return moving
}

// Draw renders every row.
func (h *Host) Draw() {
	r := h.window.Renderer
	bg := h.renderer.Theme().BackgroundColor
	r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	r.Clear()

	for i, row := range h.rows {
		h.renderer.DrawRow(row.Cell, h.RowBounds(i), i == h.focus)
	}
}

// Run drives the frame loop until the window closes or ctx is done. Pointer
// samples arriving on external are handled between SDL events; pass nil when
// there is no other input source.
func (h *Host) Run(ctx context.Context, external <-chan swipecell.PointerEvent) error {
	defer h.renderer.Destroy()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		h.drainExternal(external)

		if ev := sdl.WaitEventTimeout(16); ev != nil {
			for ; ev != nil; ev = sdl.PollEvent() {
				if h.HandleEvent(ev, time.Now()) {
					return nil
				}
			}
		}

		h.Update(time.Now())
		h.Draw()
		h.window.Present()
	}
}

func (h *Host) drainExternal(external <-chan swipecell.PointerEvent) {
	for {
		select {
		case pe, ok := <-external:
			if !ok {
				return
			}
			h.HandlePointer(pe)
		default:
			return
		}
	}
}
