package sdlhost

import (
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// PointerTranslator turns SDL mouse and touch events into pointer samples.
// It follows one pointer at a time: the left mouse button or the first
// finger down. Mouse events synthesized from touches are ignored so a touch
// is not seen twice.
type PointerTranslator struct {
	width, height int32 // Window size, for normalized finger coordinates

	pressed bool
	finger  sdl.FingerID
	touch   bool
}

// NewPointerTranslator creates a translator for a window of the given size.
func NewPointerTranslator(width, height int32) *PointerTranslator {
	return &PointerTranslator{width: width, height: height}
}

// Resize updates the window size used for finger coordinates.
func (t *PointerTranslator) Resize(width, height int32) {
	t.width = width
	t.height = height
}

// Pressed reports whether a pointer is currently down.
func (t *PointerTranslator) Pressed() bool {
	return t.pressed
}

// Translate converts ev, stamping it with now. ok is false for events that
// are not part of the tracked pointer.
func (t *PointerTranslator) Translate(ev sdl.Event, now time.Time) (pe swipecell.PointerEvent, ok bool) {
	switch e := ev.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT || t.touch {
			return pe, false
		}
		x, y := float64(e.X), float64(e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			if t.pressed {
				return pe, false
			}
			t.pressed = true
			return t.event(swipecell.PointerDown, x, y, now), true
		}
		if !t.pressed {
			return pe, false
		}
		t.pressed = false
		return t.event(swipecell.PointerUp, x, y, now), true

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID || !t.pressed || t.touch {
			return pe, false
		}
		return t.event(swipecell.PointerMove, float64(e.X), float64(e.Y), now), true

	case *sdl.TouchFingerEvent:
		x := float64(e.X) * float64(t.width)
		y := float64(e.Y) * float64(t.height)
		switch e.Type {
		case sdl.FINGERDOWN:
			if t.pressed {
				return pe, false
			}
			t.pressed, t.touch, t.finger = true, true, e.FingerID
			return t.event(swipecell.PointerDown, x, y, now), true
		case sdl.FINGERMOTION:
			if !t.touch || e.FingerID != t.finger {
				return pe, false
			}
			return t.event(swipecell.PointerMove, x, y, now), true
		case sdl.FINGERUP:
			if !t.touch || e.FingerID != t.finger {
				return pe, false
			}
			t.pressed, t.touch = false, false
			return t.event(swipecell.PointerUp, x, y, now), true
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST && t.pressed {
			t.pressed, t.touch = false, false
			return t.event(swipecell.PointerCancel, 0, 0, now), true
		}
	}

	return pe, false
}

func (t *PointerTranslator) event(phase swipecell.PointerPhase, x, y float64, now time.Time) swipecell.PointerEvent {
	return swipecell.PointerEvent{Phase: phase, X: x, Y: y, Time: now}
}

// ButtonFor maps keyboard and controller events to virtual buttons. held is
// true for presses. Key repeats are ignored; the d-pad driver repeats on its own.
func ButtonFor(ev sdl.Event) (button constants.VirtualButton, held bool, ok bool) {
	switch e := ev.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return constants.VirtualButtonUnassigned, false, false
		}
		held = e.Type == sdl.KEYDOWN
		switch e.Keysym.Sym {
		case sdl.K_UP:
			button = constants.VirtualButtonUp
		case sdl.K_DOWN:
			button = constants.VirtualButtonDown
		case sdl.K_LEFT:
			button = constants.VirtualButtonLeft
		case sdl.K_RIGHT:
			button = constants.VirtualButtonRight
		case sdl.K_RETURN, sdl.K_a:
			button = constants.VirtualButtonA
		case sdl.K_ESCAPE, sdl.K_b:
			button = constants.VirtualButtonB
		default:
			return constants.VirtualButtonUnassigned, false, false
		}
		return button, held, true

	case *sdl.ControllerButtonEvent:
		held = e.Type == sdl.CONTROLLERBUTTONDOWN
		switch sdl.GameControllerButton(e.Button) {
		case sdl.CONTROLLER_BUTTON_DPAD_UP:
			button = constants.VirtualButtonUp
		case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
			button = constants.VirtualButtonDown
		case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
			button = constants.VirtualButtonLeft
		case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
			button = constants.VirtualButtonRight
		case sdl.CONTROLLER_BUTTON_A:
			button = constants.VirtualButtonA
		case sdl.CONTROLLER_BUTTON_B:
			button = constants.VirtualButtonB
		default:
			return constants.VirtualButtonUnassigned, false, false
		}
		return button, held, true
	}

	return constants.VirtualButtonUnassigned, false, false
}
