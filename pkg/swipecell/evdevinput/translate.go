package evdevinput

import (
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	evdev "github.com/holoplot/go-evdev"
)

// Axis maps a raw absolute axis onto screen pixels.
type Axis struct {
	Min, Max int32   // Raw range reported by the device
	Size     float64 // Screen extent in pixels
}

func (a Axis) scale(raw int32) float64 {
	if a.Max <= a.Min {
		return float64(raw)
	}
	return float64(raw-a.Min) * a.Size / float64(a.Max-a.Min)
}

// Translator folds evdev touch events into pointer samples. Only the first
// multitouch slot is followed. A sample is emitted on each SYN_REPORT that
// changes the contact state or position.
type Translator struct {
	x, y Axis

	slot     int32
	posX     float64
	posY     float64
	touching bool
	down     bool
	moved    bool
}

func NewTranslator(x, y Axis) *Translator {
	return &Translator{x: x, y: y}
}

// Feed consumes one input event.
func (t *Translator) Feed(ev *evdev.InputEvent) (swipecell.PointerEvent, bool) {
	switch ev.Type {
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			t.touching = ev.Value != 0
		}

	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_SLOT:
			t.slot = ev.Value
		case evdev.ABS_MT_TRACKING_ID:
			if t.slot == 0 {
				t.touching = ev.Value >= 0
			}
		case evdev.ABS_X:
			t.setX(ev.Value)
		case evdev.ABS_Y:
			t.setY(ev.Value)
		case evdev.ABS_MT_POSITION_X:
			if t.slot == 0 {
				t.setX(ev.Value)
			}
		case evdev.ABS_MT_POSITION_Y:
			if t.slot == 0 {
				t.setY(ev.Value)
			}
		}

	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return t.report(eventTime(ev))
		}
	}

	return swipecell.PointerEvent{}, false
}

func (t *Translator) setX(raw int32) {
	if x := t.x.scale(raw); x != t.posX {
		t.posX = x
		t.moved = true
	}
}

func (t *Translator) setY(raw int32) {
	if y := t.y.scale(raw); y != t.posY {
		t.posY = y
		t.moved = true
	}
}

func (t *Translator) report(at time.Time) (swipecell.PointerEvent, bool) {
	moved := t.moved
	t.moved = false

	pe := swipecell.PointerEvent{X: t.posX, Y: t.posY, Time: at}
	switch {
	case t.touching && !t.down:
		t.down = true
		pe.Phase = swipecell.PointerDown
	case !t.touching && t.down:
		t.down = false
		pe.Phase = swipecell.PointerUp
	case t.touching && moved:
		pe.Phase = swipecell.PointerMove
	default:
		return swipecell.PointerEvent{}, false
	}
	return pe, true
}

// Reset drops any contact in progress, returning a cancel sample if one was down.
func (t *Translator) Reset(at time.Time) (swipecell.PointerEvent, bool) {
	wasDown := t.down
	t.touching, t.down, t.moved, t.slot = false, false, false, 0
	if !wasDown {
		return swipecell.PointerEvent{}, false
	}
	return swipecell.PointerEvent{Phase: swipecell.PointerCancel, X: t.posX, Y: t.posY, Time: at}, true
}

func eventTime(ev *evdev.InputEvent) time.Time {
	return time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond))
}
