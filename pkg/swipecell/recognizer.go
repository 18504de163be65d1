package swipecell

import (
	"math"
	"time"
)

// PointerPhase is the lifecycle stage of a pointer sample.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one raw pointer sample in row coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
	Time  time.Time
}

// RecognizerState tracks what the recognizer has decided about the current touch.
type RecognizerState int

const (
	RecognizerIdle     RecognizerState = iota // No pointer down
	RecognizerPossible                        // Pointer down, inside the dead zone
	RecognizerSwiping                         // Driving a cell drag
	RecognizerFailed                          // Touch belongs to something else until the pointer lifts
)

// Competitor is another input driving the same row, such as the row's DPad.
// Taps are not competitors; they are reported through Recognizer.OnTap.
type Competitor interface {
	Recognizing() bool
}

type pointerSample struct {
	x float64
	t time.Time
}

// Recognizer turns raw pointer events into Cell drag calls. It waits until the
// pointer leaves the dead zone, then claims the touch if the movement is
// mostly horizontal and no competing recognizer is active. Mostly vertical
// movement fails the recognizer so the list can scroll.
type Recognizer struct {
	OnTap func() // Called when the pointer lifts without leaving the dead zone

	cell        *Cell
	state       RecognizerState
	startX      float64
	startY      float64
	samples     []pointerSample
	competitors []Competitor
}

// NewRecognizer creates a recognizer driving cell.
func NewRecognizer(cell *Cell) *Recognizer {
	return &Recognizer{cell: cell}
}

// RequireExclusive registers recognizers that must not be active when a swipe
// begins.
func (r *Recognizer) RequireExclusive(others ...Competitor) {
	r.competitors = append(r.competitors, others...)
}

// ShouldRecognizeSimultaneously always returns false: a swipe never shares
// its touch with another recognizer on the row.
func (r *Recognizer) ShouldRecognizeSimultaneously(other Competitor) bool {
	return false
}

// Recognizing reports whether the recognizer currently owns a touch.
func (r *Recognizer) Recognizing() bool {
	return r.state == RecognizerSwiping
}

func (r *Recognizer) State() RecognizerState {
	return r.state
}

// Handle feeds one pointer event. It returns true when the event was consumed
// by a swipe.
func (r *Recognizer) Handle(ev PointerEvent) bool {
	switch ev.Phase {
	case PointerDown:
		if r.state == RecognizerSwiping {
			return true
		}
		r.state = RecognizerPossible
		r.startX = ev.X
		r.startY = ev.Y
		r.samples = append(r.samples[:0], pointerSample{x: ev.X, t: ev.Time})
		return false

	case PointerMove:
		switch r.state {
		case RecognizerPossible:
			return r.decide(ev)
		case RecognizerSwiping:
			r.addSample(ev)
			r.cell.Change(ev.X - r.startX)
			return true
		}
		return false

	case PointerUp:
		defer r.reset()
		switch r.state {
		case RecognizerPossible:
			if r.OnTap != nil {
				r.OnTap()
			}
		case RecognizerSwiping:
			r.addSample(ev)
			r.cell.End(ev.X-r.startX, r.velocity())
			return true
		}
		return false

	case PointerCancel:
		defer r.reset()
		if r.state == RecognizerSwiping {
			r.cell.Cancel()
			return true
		}
		return false
	}

	return false
}

func (r *Recognizer) decide(ev PointerEvent) bool {
	dx := ev.X - r.startX
	dy := ev.Y - r.startY
	r.addSample(ev)

	if math.Hypot(dx, dy) <= r.cell.Settings().DragDeadZone {
		return false
	}

	if math.Abs(dx) <= math.Abs(dy) || r.competitorActive() {
		r.state = RecognizerFailed
		return false
	}

	r.state = RecognizerSwiping
	r.cell.Begin()
	r.cell.Change(dx)
	return true
}

func (r *Recognizer) competitorActive() bool {
	for _, c := range r.competitors {
		if c.Recognizing() && !r.ShouldRecognizeSimultaneously(c) {
			return true
		}
	}
	return false
}

func (r *Recognizer) addSample(ev PointerEvent) {
	r.samples = append(r.samples, pointerSample{x: ev.X, t: ev.Time})

	window := r.cell.Settings().VelocityWindow
	cutoff := ev.Time.Add(-window)
	drop := 0
	for drop < len(r.samples)-2 && r.samples[drop+1].t.Before(cutoff) {
		drop++
	}
	r.samples = r.samples[drop:]
}

// velocity is the horizontal speed in px/s across the sample window.
func (r *Recognizer) velocity() float64 {
	if len(r.samples) < 2 {
		return 0
	}
	first := r.samples[0]
	last := r.samples[len(r.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}

func (r *Recognizer) reset() {
	r.state = RecognizerIdle
	r.samples = r.samples[:0]
}
