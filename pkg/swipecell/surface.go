package swipecell

import "image/color"

// Surface is the action area revealed beneath the row content on one side.
// A surface belongs to at most one cell side at a time.
type Surface struct {
	Label string     // Action name shown on the surface
	Icon  string     // Icon name resolved by the host's icon set
	Color color.RGBA // Background fill
	Width float64    // Reveal extent; 0 uses Settings.RevealWidth

	cell *Cell
	side Side
}

// Attached reports whether the surface currently belongs to a cell.
func (s *Surface) Attached() bool {
	return s != nil && s.cell != nil
}

// Side returns the side the surface is attached to, or SideNone.
func (s *Surface) Side() Side {
	if !s.Attached() {
		return SideNone
	}
	return s.side
}

// Detach removes the surface from its cell. The presentation layer must call
// this when it stops showing the surface; if that side was open the cell
// closes instantly.
func (s *Surface) Detach() {
	if !s.Attached() {
		return
	}
	s.cell.surfaceDetached(s)
}
