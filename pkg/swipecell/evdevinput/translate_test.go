package evdevinput

import (
	"syscall"
	"testing"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(typ evdev.EvType, code evdev.EvCode, value int32, usec int64) *evdev.InputEvent {
	return &evdev.InputEvent{
		Time:  syscall.NsecToTimeval(int64(100*time.Second) + usec*int64(time.Microsecond)),
		Type:  typ,
		Code:  code,
		Value: value,
	}
}

func syn(usec int64) *evdev.InputEvent {
	return input(evdev.EV_SYN, evdev.SYN_REPORT, 0, usec)
}

// feed returns the samples produced by events, in order.
func feed(tr *Translator, events ...*evdev.InputEvent) []swipecell.PointerEvent {
	var out []swipecell.PointerEvent
	for _, ev := range events {
		if pe, ok := tr.Feed(ev); ok {
			out = append(out, pe)
		}
	}
	return out
}

func TestAxis_Scale(t *testing.T) {
	a := Axis{Min: 0, Max: 4095, Size: 640}
	assert.Equal(t, 0.0, a.scale(0))
	assert.InDelta(t, 640.0, a.scale(4095), 1e-9)
	assert.Equal(t, 7.0, Axis{}.scale(7), "degenerate range passes through")
}

func TestTranslator_SingleTouchSequence(t *testing.T) {
	tr := NewTranslator(Axis{Max: 1000, Size: 500}, Axis{Max: 1000, Size: 250})

	samples := feed(tr,
		input(evdev.EV_ABS, evdev.ABS_X, 400, 0),
		input(evdev.EV_ABS, evdev.ABS_Y, 200, 0),
		input(evdev.EV_KEY, evdev.BTN_TOUCH, 1, 0),
		syn(0),
		input(evdev.EV_ABS, evdev.ABS_X, 300, 10000),
		syn(10000),
		syn(15000),
		input(evdev.EV_KEY, evdev.BTN_TOUCH, 0, 20000),
		syn(20000),
	)

	require.Len(t, samples, 3)
	assert.Equal(t, swipecell.PointerDown, samples[0].Phase)
	assert.Equal(t, 200.0, samples[0].X)
	assert.Equal(t, 50.0, samples[0].Y)

	assert.Equal(t, swipecell.PointerMove, samples[1].Phase)
	assert.Equal(t, 150.0, samples[1].X)
	assert.Equal(t, int64(10), samples[1].Time.Sub(samples[0].Time).Milliseconds())

	assert.Equal(t, swipecell.PointerUp, samples[2].Phase)
}

func TestTranslator_MultitouchFollowsFirstSlot(t *testing.T) {
	tr := NewTranslator(Axis{Max: 100, Size: 100}, Axis{Max: 100, Size: 100})

	samples := feed(tr,
		input(evdev.EV_ABS, evdev.ABS_MT_SLOT, 0, 0),
		input(evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, 7, 0),
		input(evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 10, 0),
		input(evdev.EV_ABS, evdev.ABS_MT_POSITION_Y, 10, 0),
		syn(0),
		input(evdev.EV_ABS, evdev.ABS_MT_SLOT, 1, 1000),
		input(evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, 8, 1000),
		input(evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 90, 1000),
		syn(1000),
		input(evdev.EV_ABS, evdev.ABS_MT_SLOT, 0, 2000),
		input(evdev.EV_ABS, evdev.ABS_MT_POSITION_X, 30, 2000),
		syn(2000),
		input(evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID, -1, 3000),
		syn(3000),
	)

	require.Len(t, samples, 3)
	assert.Equal(t, swipecell.PointerDown, samples[0].Phase)
	assert.Equal(t, swipecell.PointerMove, samples[1].Phase)
	assert.Equal(t, 30.0, samples[1].X)
	assert.Equal(t, swipecell.PointerUp, samples[2].Phase)
}

func TestTranslator_Reset(t *testing.T) {
	tr := NewTranslator(Axis{Max: 100, Size: 100}, Axis{Max: 100, Size: 100})
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := tr.Reset(at)
	assert.False(t, ok, "nothing to cancel")

	feed(tr,
		input(evdev.EV_KEY, evdev.BTN_TOUCH, 1, 0),
		syn(0),
	)

	pe, ok := tr.Reset(at)
	require.True(t, ok)
	assert.Equal(t, swipecell.PointerCancel, pe.Phase)
	assert.Equal(t, at, pe.Time)

	samples := feed(tr,
		input(evdev.EV_KEY, evdev.BTN_TOUCH, 0, 1000),
		syn(1000),
	)
	assert.Empty(t, samples, "release after reset is not reported")
}
