package swipecell

import (
	"math"
	"time"

	"go.uber.org/atomic"
)

// Animator owns an animatable offset. At most one transition is in flight;
// starting another freezes the current one where it is and reports it
// unfinished. Progress only happens in Tick, which the host calls once per
// frame on the UI thread.
//
// Value may be read from any goroutine.
type Animator struct {
	value      atomic.Float64
	generation atomic.Uint64
	active     *transition
	clock      func() time.Time
}

type transition struct {
	from, to   float64
	start      time.Time
	duration   time.Duration
	completion func(finished bool)
}

// NewAnimator creates an animator resting at 0. A nil clock uses time.Now.
func NewAnimator(clock func() time.Time) *Animator {
	if clock == nil {
		clock = time.Now
	}
	return &Animator{clock: clock}
}

// Value returns the current offset.
func (a *Animator) Value() float64 {
	return a.value.Load()
}

// Animating reports whether a transition is in flight.
func (a *Animator) Animating() bool {
	return a.active != nil
}

// Target returns the destination of the in-flight transition.
func (a *Animator) Target() (float64, bool) {
	if a.active == nil {
		return a.value.Load(), false
	}
	return a.active.to, true
}

// Set jumps to v immediately, superseding any transition.
func (a *Animator) Set(v float64) {
	a.Animate(v, 0, nil)
}

// Animate moves the value to target over duration. A duration of zero or less
// applies the change before returning and calls completion(true) synchronously.
// Otherwise completion is called from Tick, or with false if superseded.
//
// If the superseded transition's completion starts yet another transition,
// that later request wins and this one is reported unfinished without starting.
func (a *Animator) Animate(target float64, duration time.Duration, completion func(finished bool)) {
	gen := a.generation.Inc()

	a.Interrupt()

	if a.generation.Load() != gen {
		if completion != nil {
			completion(false)
		}
		return
	}

	if duration <= 0 {
		a.value.Store(target)
		if completion != nil {
			completion(true)
		}
		return
	}

	a.active = &transition{
		from:       a.value.Load(),
		to:         target,
		start:      a.clock(),
		duration:   duration,
		completion: completion,
	}
}

// Interrupt stops the in-flight transition at its current interpolated value
// and calls its completion with false. It is a no-op when idle.
func (a *Animator) Interrupt() {
	t := a.active
	if t == nil {
		return
	}

	a.active = nil
	a.value.Store(t.sample(a.clock()))

	if t.completion != nil {
		t.completion(false)
	}
}

// Tick advances the in-flight transition to now. It returns true while a
// transition remains in flight after the call.
func (a *Animator) Tick(now time.Time) bool {
	t := a.active
	if t == nil {
		return false
	}

	if !now.Before(t.start.Add(t.duration)) {
		a.active = nil
		a.value.Store(t.to)
		if t.completion != nil {
			t.completion(true)
		}
		return a.active != nil
	}

	a.value.Store(t.sample(now))
	return true
}

func (t *transition) sample(now time.Time) float64 {
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return t.from
	}
	if elapsed >= t.duration {
		return t.to
	}
	p := float64(elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*easeInOut(p)
}

// easeInOut is a cubic ease-in-out curve over [0,1].
func easeInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}
