package swipecell

// Side refers to a particular side of a cell. The numeric value is the sign of
// the offset that reveals it.
type Side int

const (
	SideLeft  Side = -1 // Revealed by dragging the content leftwards (negative offset)
	SideNone  Side = 0  // Neither side; the cell's resting state
	SideRight Side = 1  // Revealed by dragging the content rightwards (positive offset)
)

// SideForOffset returns the side implied by the sign of an offset.
func SideForOffset(offset float64) Side {
	switch {
	case offset < 0:
		return SideLeft
	case offset > 0:
		return SideRight
	default:
		return SideNone
	}
}

// Sign returns -1, 0 or 1.
func (s Side) Sign() float64 {
	return float64(s)
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideNone:
		return "none"
	default:
		return "unknown"
	}
}

// Presence records which sides have an action surface configured.
type Presence struct {
	Left  bool
	Right bool
}

// Has reports whether side has a surface. SideNone is always present.
func (p Presence) Has(side Side) bool {
	switch side {
	case SideLeft:
		return p.Left
	case SideRight:
		return p.Right
	default:
		return true
	}
}
