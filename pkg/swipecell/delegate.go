package swipecell

// A Delegate is any value implementing some subset of the handler interfaces
// below. The cell checks each capability before calling it, so a delegate
// only implements what it cares about. The cell does not own its delegate.
type Delegate any

// WillBeginSwipingHandler is called when the user begins swiping the cell.
type WillBeginSwipingHandler interface {
	WillBeginSwiping(cell *Cell)
}

// SwipeHandler is called when the offset follows the user's finger or is set
// without animation.
type SwipeHandler interface {
	DidSwipe(cell *Cell, offset float64, side Side)
}

// ShowSidePolicy is consulted before a swipe opens a side. Returning false
// bounces the cell back to SideNone. Without a policy every side is allowed.
type ShowSidePolicy interface {
	ShouldShowSide(cell *Cell, side Side) bool
}

// CurrentSideChangeHandler is called when the current side changes, before
// the accompanying animation completes.
type CurrentSideChangeHandler interface {
	DidChangeCurrentSide(cell *Cell)
}

// EndSwipingHandler is called when the user stops swiping the cell.
type EndSwipingHandler interface {
	DidEndSwiping(cell *Cell)
}

// HideSideHandler is called when a side is no longer visible.
type HideSideHandler interface {
	DidHideSide(cell *Cell, side Side)
}

// DelegateFuncs adapts plain functions into a Delegate. Nil fields are skipped.
type DelegateFuncs struct {
	OnWillBeginSwiping     func(cell *Cell)
	OnSwipe                func(cell *Cell, offset float64, side Side)
	OnShouldShowSide       func(cell *Cell, side Side) bool
	OnDidChangeCurrentSide func(cell *Cell)
	OnDidEndSwiping        func(cell *Cell)
	OnDidHideSide          func(cell *Cell, side Side)
}

func (d *DelegateFuncs) WillBeginSwiping(cell *Cell) {
	if d.OnWillBeginSwiping != nil {
		d.OnWillBeginSwiping(cell)
	}
}

func (d *DelegateFuncs) DidSwipe(cell *Cell, offset float64, side Side) {
	if d.OnSwipe != nil {
		d.OnSwipe(cell, offset, side)
	}
}

func (d *DelegateFuncs) ShouldShowSide(cell *Cell, side Side) bool {
	if d.OnShouldShowSide != nil {
		return d.OnShouldShowSide(cell, side)
	}
	return true
}

func (d *DelegateFuncs) DidChangeCurrentSide(cell *Cell) {
	if d.OnDidChangeCurrentSide != nil {
		d.OnDidChangeCurrentSide(cell)
	}
}

func (d *DelegateFuncs) DidEndSwiping(cell *Cell) {
	if d.OnDidEndSwiping != nil {
		d.OnDidEndSwiping(cell)
	}
}

func (d *DelegateFuncs) DidHideSide(cell *Cell, side Side) {
	if d.OnDidHideSide != nil {
		d.OnDidHideSide(cell, side)
	}
}

// MultiDelegate fans notifications out to several delegates in order. A side
// is shown only if every policy among them allows it.
type MultiDelegate []Delegate

func (m MultiDelegate) WillBeginSwiping(cell *Cell) {
	for _, d := range m {
		if h, ok := d.(WillBeginSwipingHandler); ok {
			h.WillBeginSwiping(cell)
		}
	}
}

func (m MultiDelegate) DidSwipe(cell *Cell, offset float64, side Side) {
	for _, d := range m {
		if h, ok := d.(SwipeHandler); ok {
			h.DidSwipe(cell, offset, side)
		}
	}
}

func (m MultiDelegate) ShouldShowSide(cell *Cell, side Side) bool {
	for _, d := range m {
		if p, ok := d.(ShowSidePolicy); ok && !p.ShouldShowSide(cell, side) {
			return false
		}
	}
	return true
}

func (m MultiDelegate) DidChangeCurrentSide(cell *Cell) {
	for _, d := range m {
		if h, ok := d.(CurrentSideChangeHandler); ok {
			h.DidChangeCurrentSide(cell)
		}
	}
}

func (m MultiDelegate) DidEndSwiping(cell *Cell) {
	for _, d := range m {
		if h, ok := d.(EndSwipingHandler); ok {
			h.DidEndSwiping(cell)
		}
	}
}

func (m MultiDelegate) DidHideSide(cell *Cell, side Side) {
	for _, d := range m {
		if h, ok := d.(HideSideHandler); ok {
			h.DidHideSide(cell, side)
		}
	}
}
