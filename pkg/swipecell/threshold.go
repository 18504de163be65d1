package swipecell

import "math"

// Decide picks the resting side for a released drag.
//
// A release past OpenDistanceThreshold commits to the side under the offset.
// A shorter release still commits when the pointer was moving at least
// OpenVelocityThreshold in the same direction as the offset. A side without a
// surface always resolves to SideNone.
func Decide(offset, velocity float64, present Presence, s Settings) Side {
	side := SideForOffset(offset)
	if side == SideNone || !present.Has(side) {
		return SideNone
	}

	if math.Abs(offset) >= s.OpenDistanceThreshold {
		return side
	}

	if math.Abs(velocity) >= s.OpenVelocityThreshold && SideForOffset(velocity) == side {
		return side
	}

	return SideNone
}
