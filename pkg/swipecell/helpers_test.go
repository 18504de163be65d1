package swipecell

import (
	"io"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
)

func init() {
	internal.SetLogOutput(io.Discard)
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) time.Time {
	f.now = f.now.Add(d)
	return f.now
}

func testSettings(clock *fakeClock) Settings {
	s := DefaultSettings()
	s.Clock = clock.Now
	return s
}

// recorder captures delegate notifications in order.
type recorder struct {
	events []string
	veto   map[Side]bool
}

func (r *recorder) WillBeginSwiping(*Cell) {
	r.events = append(r.events, "willBegin")
}

func (r *recorder) DidSwipe(*Cell, float64, Side) {
	r.events = append(r.events, "didSwipe")
}

func (r *recorder) ShouldShowSide(_ *Cell, side Side) bool {
	r.events = append(r.events, "shouldShow:"+side.String())
	return !r.veto[side]
}

func (r *recorder) DidChangeCurrentSide(c *Cell) {
	r.events = append(r.events, "didChange:"+c.CurrentSide().String())
}

func (r *recorder) DidEndSwiping(*Cell) {
	r.events = append(r.events, "didEnd")
}

func (r *recorder) DidHideSide(_ *Cell, side Side) {
	r.events = append(r.events, "didHide:"+side.String())
}

// without returns the recorded events minus the named ones.
func (r *recorder) without(names ...string) []string {
	out := []string{}
	for _, e := range r.events {
		skip := false
		for _, n := range names {
			if e == n {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.events = nil
}
