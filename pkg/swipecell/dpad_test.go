package swipecell

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
	"github.com/stretchr/testify/assert"
)

func TestDPad_OpenCloseAndRepeat(t *testing.T) {
	cell, _, clock := newTestCell(t, &Surface{}, &Surface{})
	pad := NewDPad(cell)

	assert.True(t, pad.SetHeld(constants.VirtualButtonLeft, true))
	pad.Update()
	assert.Equal(t, SideLeft, cell.CurrentSide())

	pad.Update()
	assert.Equal(t, SideLeft, cell.CurrentSide(), "no repeat before the delay")

	pad.SetHeld(constants.VirtualButtonLeft, false)
	pad.SetHeld(constants.VirtualButtonRight, true)
	pad.Update()
	assert.Equal(t, SideNone, cell.CurrentSide(), "pressing away from the open side closes")

	clock.Advance(constants.DefaultRepeatDelay)
	pad.Update()
	assert.Equal(t, SideRight, cell.CurrentSide(), "holding repeats and opens the other side")
}

func TestDPad_SideWithoutSurface(t *testing.T) {
	cell, rec, _ := newTestCell(t, &Surface{}, nil)
	pad := NewDPad(cell)

	pad.SetHeld(constants.VirtualButtonRight, true)
	pad.Update()

	assert.Equal(t, SideNone, cell.CurrentSide())
	assert.Empty(t, rec.events)
}

func TestDPad_IgnoredWhileSwiping(t *testing.T) {
	cell, _, _ := newTestCell(t, &Surface{}, &Surface{})
	pad := NewDPadWithTiming(cell, 100*time.Millisecond, 20*time.Millisecond)

	cell.Begin()
	pad.SetHeld(constants.VirtualButtonLeft, true)
	pad.Update()

	assert.Equal(t, SideNone, cell.CurrentSide())
	assert.True(t, cell.Swiping())
}

func TestDPad_OtherButtonsIgnored(t *testing.T) {
	cell, _, _ := newTestCell(t, &Surface{}, &Surface{})
	pad := NewDPad(cell)

	assert.False(t, pad.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, pad.SetHeld(constants.VirtualButtonUp, true))
	pad.Update()
	assert.Equal(t, SideNone, cell.CurrentSide())

	pad.SetHeld(constants.VirtualButtonLeft, true)
	pad.Reset()
	pad.Update()
	assert.Equal(t, SideNone, cell.CurrentSide())
}

func TestDPad_HeldDirectionBlocksTouchSwipe(t *testing.T) {
	cell, _, clock := newTestCell(t, &Surface{}, &Surface{})
	pad := NewDPad(cell)
	r := NewRecognizer(cell)
	r.RequireExclusive(pad)

	assert.False(t, pad.Recognizing())
	pad.SetHeld(constants.VirtualButtonRight, true)
	assert.True(t, pad.Recognizing())

	now := clock.Now()
	r.Handle(PointerEvent{Phase: PointerDown, X: 200, Y: 50, Time: now})
	assert.False(t, r.Handle(PointerEvent{Phase: PointerMove, X: 150, Y: 50, Time: now.Add(10 * time.Millisecond)}))
	assert.Equal(t, RecognizerFailed, r.State())
	assert.False(t, cell.Swiping())
}
