package swipecell

import (
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
)

// DPad drives a cell from held Left/Right buttons on devices without touch.
// Pressing away from the open side closes it and pressing toward it does
// nothing; pressing from rest opens the side
// in that direction if it has a surface. Holding repeats.
type DPad struct {
	cell  *Cell
	input internal.DirectionalInput
}

// NewDPad creates a d-pad driver using the cell's clock and the default
// repeat timing.
func NewDPad(cell *Cell) *DPad {
	return NewDPadWithTiming(cell, constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

func NewDPadWithTiming(cell *Cell, delay, interval time.Duration) *DPad {
	return &DPad{
		cell:  cell,
		input: internal.NewDirectionalInputWithTiming(delay, interval, cell.settings.now),
	}
}

// SetHeld records a button press or release. It returns true for Left and
// Right, which the d-pad handles.
func (d *DPad) SetHeld(button constants.VirtualButton, held bool) bool {
	return d.input.SetHeld(button, held)
}

// Update applies any press or repeat due this frame.
func (d *DPad) Update() {
	var pressed Side
	switch d.input.Update() {
	case internal.DirectionLeft:
		pressed = SideLeft
	case internal.DirectionRight:
		pressed = SideRight
	default:
		return
	}

	if d.cell.Swiping() {
		return
	}

	duration := d.cell.settings.AnimationDuration
	switch d.cell.CurrentSide() {
	case SideNone:
		if d.cell.Presence().Has(pressed) {
			d.cell.SetCurrentSide(pressed, duration)
		}
	case pressed:
		// already open in that direction
	default:
		d.cell.SetCurrentSide(SideNone, duration)
	}
}

// Recognizing reports whether a direction is held. A row's touch recognizer
// treats a held d-pad as a competitor and will not start a swipe.
func (d *DPad) Recognizing() bool {
	return d.input.IsHeld()
}

// Reset forgets held buttons, e.g. when the row loses focus.
func (d *DPad) Reset() {
	d.input.Reset()
}
