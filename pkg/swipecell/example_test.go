package swipecell_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
)

// Example drags a row far enough to open its left action, then closes it
// from code.
func Example() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	settings := swipecell.DefaultSettings()
	settings.Clock = func() time.Time { return now }

	cell := swipecell.NewCell(settings)
	cell.SetLeftSurface(&swipecell.Surface{Label: "Delete"})
	cell.SetDelegate(&swipecell.DelegateFuncs{
		OnDidChangeCurrentSide: func(c *swipecell.Cell) {
			fmt.Println("side:", c.CurrentSide())
		},
		OnDidHideSide: func(c *swipecell.Cell, side swipecell.Side) {
			fmt.Println("hidden:", side)
		},
	})

	cell.Begin()
	cell.Change(-100)
	cell.End(-100, 0)

	// Advance past the animation
	now = now.Add(settings.AnimationDuration)
	cell.Tick(now)
	fmt.Println("offset:", cell.Offset())

	cell.SetCurrentSide(swipecell.SideNone, 0)
	fmt.Println("offset:", cell.Offset())

	// Output:
	// side: left
	// offset: -120
	// side: none
	// hidden: left
	// offset: 0
}

// ExampleMapDelta shows the elastic resistance toward a side without a surface.
func ExampleMapDelta() {
	s := swipecell.DefaultSettings()

	fmt.Println(swipecell.MapDelta(40, true, s))
	fmt.Println(swipecell.MapDelta(40, false, s))
	fmt.Println(swipecell.MapDelta(-40, false, s))

	// Output:
	// 40
	// 15
	// -15
}

// ExampleDecide shows distance and velocity both committing a side.
func ExampleDecide() {
	s := swipecell.DefaultSettings()
	both := swipecell.Presence{Left: true, Right: true}

	fmt.Println(swipecell.Decide(-90, 0, both, s))
	fmt.Println(swipecell.Decide(30, 800, both, s))
	fmt.Println(swipecell.Decide(30, -800, both, s))
	fmt.Println(swipecell.Decide(90, 0, swipecell.Presence{Left: true}, s))

	// Output:
	// left
	// right
	// none
	// none
}
