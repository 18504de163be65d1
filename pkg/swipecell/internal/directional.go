package internal

import (
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
)

// Direction is a horizontal d-pad direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held horizontal directions and handles repeat timing.
// The first press fires immediately, holding fires again after repeatDelay and
// then every repeatInterval.
type DirectionalInput struct {
	held struct {
		left, right bool
	}
	pending        Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput(now func() time.Time) DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval, now)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
// A nil clock uses time.Now.
func NewDirectionalInputWithTiming(delay, interval time.Duration, now func() time.Time) DirectionalInput {
	if now == nil {
		now = time.Now
	}
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
		now:            now,
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a horizontal direction.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	var dir Direction
	switch button {
	case constants.VirtualButtonLeft:
		d.held.left = held
		dir = DirectionLeft
	case constants.VirtualButtonRight:
		d.held.right = held
		dir = DirectionRight
	default:
		return false
	}

	if held {
		d.pending = dir
		d.lastRepeatTime = d.now()
	}
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.left || d.held.right
}

// HeldDirection returns the currently held direction, preferring left.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.left {
		return DirectionLeft
	}
	if d.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update returns the direction to act on this frame, or DirectionNone.
// Call it every frame.
func (d *DirectionalInput) Update() Direction {
	if d.pending != DirectionNone {
		dir := d.pending
		d.pending = DirectionNone
		return dir
	}

	if !d.IsHeld() {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.left = false
	d.held.right = false
	d.pending = DirectionNone
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
