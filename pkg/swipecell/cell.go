package swipecell

import (
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
	"go.uber.org/atomic"
)

// Cell is the interaction core of a swipeable row. It turns drag input into
// an offset and a current side, animates between resting states, and reports
// every step to its delegate.
//
// A Cell is not safe for concurrent mutation. Drive it from the UI thread;
// Offset and Swiping may be read from anywhere.
type Cell struct {
	settings Settings
	delegate Delegate
	animator *Animator
	logger   *slog.Logger

	left  *Surface
	right *Surface

	currentSide Side
	swiping     atomic.Bool
	session     *session

	// While hold > 0, transition completions are queued so that notifications
	// triggered by an instant transition still arrive after didChangeCurrentSide
	// and didEndSwiping.
	hold     int
	deferred []func()

	// moves counts moveTo calls so a move can tell that a completion it
	// interrupted started a newer one.
	moves uint64
}

// session anchors a drag. start is in raw finger space, before the elastic
// curve; offset is what was displayed when the drag began.
type session struct {
	start  float64
	offset float64
}

// NewCell creates a closed cell with no surfaces. Invalid settings are
// replaced by the defaults and logged.
func NewCell(settings Settings) *Cell {
	logger := internal.GetInternalLogger()

	if err := settings.Validate(); err != nil {
		logger.Warn("Invalid swipe settings; using defaults", "error", err)
		clock := settings.Clock
		settings = DefaultSettings()
		settings.Clock = clock
	}

	return &Cell{
		settings: settings,
		animator: NewAnimator(settings.now),
		logger:   logger,
	}
}

// SetDelegate sets the observer notified of interaction events. Pass nil to
// clear it.
func (c *Cell) SetDelegate(d Delegate) {
	c.delegate = d
}

func (c *Cell) Delegate() Delegate {
	return c.delegate
}

func (c *Cell) Settings() Settings {
	return c.settings
}

// Offset returns the current horizontal displacement of the row content.
func (c *Cell) Offset() float64 {
	return c.animator.Value()
}

// CurrentSide returns the side the cell is open on or heading to. It changes
// before the animation that reveals or hides the side finishes.
func (c *Cell) CurrentSide() Side {
	return c.currentSide
}

// Swiping reports whether a drag is in progress.
func (c *Cell) Swiping() bool {
	return c.swiping.Load()
}

// Animating reports whether an offset transition is in flight.
func (c *Cell) Animating() bool {
	return c.animator.Animating()
}

func (c *Cell) LeftSurface() *Surface {
	return c.left
}

func (c *Cell) RightSurface() *Surface {
	return c.right
}

// Surface returns the surface on side, or nil.
func (c *Cell) Surface(side Side) *Surface {
	switch side {
	case SideLeft:
		return c.left
	case SideRight:
		return c.right
	default:
		return nil
	}
}

// Presence reports which sides have a surface.
func (c *Cell) Presence() Presence {
	return Presence{Left: c.left != nil, Right: c.right != nil}
}

// RevealWidth returns how far the content moves to fully show side.
func (c *Cell) RevealWidth(side Side) float64 {
	s := c.Surface(side)
	if s == nil {
		return 0
	}
	if s.Width > 0 {
		return s.Width
	}
	return c.settings.RevealWidth
}

func (c *Cell) restingOffset(side Side) float64 {
	return side.Sign() * c.RevealWidth(side)
}

// SetLeftSurface attaches the surface revealed by a leftward drag. The
// previous surface, if any, is detached. Passing nil while the left side is
// open closes the cell instantly.
func (c *Cell) SetLeftSurface(s *Surface) {
	c.setSurface(SideLeft, s)
}

// SetRightSurface attaches the surface revealed by a rightward drag. See
// SetLeftSurface.
func (c *Cell) SetRightSurface(s *Surface) {
	c.setSurface(SideRight, s)
}

func (c *Cell) setSurface(side Side, s *Surface) {
	old := c.Surface(side)
	if old == s {
		return
	}

	if s.Attached() {
		s.Detach()
	}

	if old != nil {
		old.cell = nil
		old.side = SideNone
	}

	if side == SideLeft {
		c.left = s
	} else {
		c.right = s
	}

	if s != nil {
		s.cell = c
		s.side = side
	}

	c.logger.Debug("Surface assigned", "side", side, "present", s != nil)

	if c.currentSide != side {
		return
	}

	if s == nil {
		c.moveTo(SideNone, 0, 0, nil)
	} else if !c.Swiping() {
		c.moveTo(side, c.restingOffset(side), 0, nil)
	}
}

func (c *Cell) surfaceDetached(s *Surface) {
	if c.Surface(s.side) != s {
		s.cell = nil
		s.side = SideNone
		return
	}
	c.logger.Debug("Surface detached", "side", s.side)
	c.setSurface(s.side, nil)
}

// Begin starts a drag. Any in-flight transition stops where it is and the
// drag takes over from the current offset. Begin is ignored while a drag is
// already in progress.
func (c *Cell) Begin() {
	if c.session != nil {
		return
	}

	if h, ok := c.delegate.(WillBeginSwipingHandler); ok {
		h.WillBeginSwiping(c)
	}

	c.animator.Interrupt()
	offset := c.animator.Value()
	c.session = &session{start: c.unmap(offset), offset: offset}
	c.swiping.Store(true)

	c.logger.Debug("Swipe began", "offset", offset, "side", c.currentSide)
}

// Change moves the row to follow a drag. translation is the pointer's
// horizontal distance from where the drag began.
func (c *Cell) Change(translation float64) {
	if c.session == nil {
		return
	}
	offset := c.position(translation)
	c.animator.Set(offset)
	c.notifySwipe(offset, SideForOffset(offset))
}

// End finishes a drag. The release offset and velocity (px/s) decide the
// resting side, and the row animates there.
func (c *Cell) End(translation, velocity float64) {
	if c.session == nil {
		return
	}
	offset := c.position(translation)
	c.setImmediate(offset)
	c.finish(offset, velocity)
}

// Cancel abandons a drag, returning the row to where the drag started and
// settling it as a release with no velocity.
func (c *Cell) Cancel() {
	if c.session == nil {
		return
	}
	start := c.session.offset
	c.setImmediate(start)
	c.finish(start, 0)
}

// unmap returns the raw displacement that MapDelta turns into offset, so a
// drag that starts mid-bounce continues from where the row is drawn.
func (c *Cell) unmap(offset float64) float64 {
	if offset == 0 || c.Presence().Has(SideForOffset(offset)) {
		return offset
	}
	return math.Copysign(unelastic(math.Abs(offset), c.settings.BounceElasticity, c.settings.ElasticBound), offset)
}

func (c *Cell) position(translation float64) float64 {
	raw := c.session.start + translation
	return MapDelta(raw, c.Presence().Has(SideForOffset(raw)), c.settings)
}

func (c *Cell) setImmediate(offset float64) {
	if c.animator.Value() == offset && !c.animator.Animating() {
		return
	}
	c.animator.Set(offset)
	c.notifySwipe(offset, SideForOffset(offset))
}

func (c *Cell) finish(offset, velocity float64) {
	target := Decide(offset, velocity, c.Presence(), c.settings)
	if target != SideNone && !c.shouldShowSide(target) {
		c.logger.Debug("Side vetoed by delegate", "side", target)
		target = SideNone
	}

	c.logger.Debug("Swipe ended", "offset", offset, "velocity", velocity, "target", target)

	c.hold++
	c.moveTo(target, c.restingOffset(target), c.settings.AnimationDuration, nil)

	c.session = nil
	c.swiping.Store(false)

	if h, ok := c.delegate.(EndSwipingHandler); ok {
		h.DidEndSwiping(c)
	}
	c.release()
}

// SetCurrentSide opens side, or closes the cell for SideNone, animating over
// duration. A zero duration applies the change immediately. Sides without a
// surface are ignored.
func (c *Cell) SetCurrentSide(side Side, duration time.Duration) {
	if !c.Presence().Has(side) {
		c.logger.Warn("Ignoring side without a surface", "side", side)
		return
	}
	c.moveTo(side, c.restingOffset(side), duration, nil)
}

// SetOffset moves the content to x over duration. The current side follows
// the sign of x; offsets toward a side without a surface resolve to 0.
func (c *Cell) SetOffset(x float64, duration time.Duration) {
	c.SetOffsetWithCompletion(x, duration, nil)
}

// SetOffsetCompletion moves the content to x using the default animation
// duration and calls completion when the move ends or is superseded.
func (c *Cell) SetOffsetCompletion(x float64, completion func(finished bool)) {
	c.SetOffsetWithCompletion(x, c.settings.AnimationDuration, completion)
}

// SetOffsetWithCompletion moves the content to x over duration and calls
// completion exactly once: with true when the move completes, with false if
// another move supersedes it.
func (c *Cell) SetOffsetWithCompletion(x float64, duration time.Duration, completion func(finished bool)) {
	side := SideForOffset(x)
	if !c.Presence().Has(side) {
		c.logger.Debug("Offset toward side without a surface", "offset", x, "side", side)
		side = SideNone
		x = 0
	}
	c.moveTo(side, x, duration, completion)
}

// Tick advances animations to now. Call it once per frame; it returns true
// while the row is still moving.
func (c *Cell) Tick(now time.Time) bool {
	return c.animator.Tick(now)
}

// moveTo is the single path for every resting-state change, gesture or
// programmatic. Any in-flight transition is superseded first, so its
// completion runs before the new state is applied. If that completion starts
// a move of its own, this one reports unfinished and changes nothing.
func (c *Cell) moveTo(side Side, target float64, duration time.Duration, completion func(finished bool)) {
	c.moves++
	move := c.moves

	c.animator.Interrupt()

	// the interrupted completion asked for another move; it wins
	if c.moves != move {
		if completion != nil {
			completion(false)
		}
		return
	}

	previous := c.currentSide
	before := c.animator.Value()

	if side == previous && target == before && !c.animator.Animating() {
		if completion != nil {
			completion(true)
		}
		return
	}

	c.hold++
	c.currentSide = side
	hide := side == SideNone && previous != SideNone

	c.animator.Animate(target, duration, func(finished bool) {
		if !finished {
			if completion != nil {
				completion(false)
			}
			return
		}
		c.runOrDefer(func() {
			if hide {
				c.logger.Debug("Side hidden", "side", previous)
				if h, ok := c.delegate.(HideSideHandler); ok {
					h.DidHideSide(c, previous)
				}
			}
			if completion != nil {
				completion(true)
			}
		})
	})

	if side != previous {
		c.logger.Debug("Current side changed", "from", previous, "to", side)
		if h, ok := c.delegate.(CurrentSideChangeHandler); ok {
			h.DidChangeCurrentSide(c)
		}
	}

	if duration <= 0 {
		if after := c.animator.Value(); after != before {
			c.notifySwipe(after, SideForOffset(after))
		}
	}

	c.release()
}

func (c *Cell) runOrDefer(fn func()) {
	if c.hold > 0 {
		c.deferred = append(c.deferred, fn)
		return
	}
	fn()
}

func (c *Cell) release() {
	c.hold--
	if c.hold > 0 {
		return
	}
	for len(c.deferred) > 0 {
		fn := c.deferred[0]
		c.deferred = c.deferred[1:]
		fn()
	}
}

func (c *Cell) shouldShowSide(side Side) bool {
	if p, ok := c.delegate.(ShowSidePolicy); ok {
		return p.ShouldShowSide(c, side)
	}
	return true
}

func (c *Cell) notifySwipe(offset float64, side Side) {
	if h, ok := c.delegate.(SwipeHandler); ok {
		h.DidSwipe(c, offset, side)
	}
}
