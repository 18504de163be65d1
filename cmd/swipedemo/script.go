package main

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BurntSushi/toml"
)

// Step actions understood by replay scripts.
const (
	actionBegin     = "begin"
	actionChange    = "change"
	actionEnd       = "end"
	actionCancel    = "cancel"
	actionWait      = "wait"
	actionSetSide   = "set_side"
	actionSetOffset = "set_offset"
	actionDetach    = "detach"
)

// frame is the tick interval used while waiting.
const frame = 16 * time.Millisecond

// Script is a headless gesture replay: the surfaces a row starts with and
// the steps applied to it.
type Script struct {
	Left  *SurfaceSpec `toml:"left"`
	Right *SurfaceSpec `toml:"right"`
	Steps []Step       `toml:"step"`
}

type SurfaceSpec struct {
	Label string  `toml:"label"`
	Icon  string  `toml:"icon"`
	Width float64 `toml:"width"`
}

type Step struct {
	Action      string        `toml:"action"`
	Translation float64       `toml:"translation"`
	Velocity    float64       `toml:"velocity"`
	Offset      float64       `toml:"offset"`
	Side        string        `toml:"side"`
	Duration    time.Duration `toml:"duration"`
}

// ParseScript decodes and validates a replay script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	meta, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse script: unknown key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step. Steps naming a side without a surface are
// rejected with swipecell.ErrNoSurface.
func (s *Script) Validate() error {
	present := swipecell.Presence{Left: s.Left != nil, Right: s.Right != nil}

	for i, step := range s.Steps {
		switch step.Action {
		case actionBegin, actionChange, actionEnd, actionCancel, actionSetOffset:
		case actionWait:
			if step.Duration <= 0 {
				return fmt.Errorf("step %d: wait needs a positive duration", i+1)
			}
		case actionSetSide, actionDetach:
			side, err := parseSide(step.Side)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			if !present.Has(side) || (step.Action == actionDetach && side == swipecell.SideNone) {
				return fmt.Errorf("step %d: %s %s: %w", i+1, step.Action, side, swipecell.ErrNoSurface)
			}
			if step.Action == actionDetach {
				// later steps no longer see the surface
				if side == swipecell.SideLeft {
					present.Left = false
				} else {
					present.Right = false
				}
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
	}
	return nil
}

func parseSide(name string) (swipecell.Side, error) {
	switch name {
	case "left":
		return swipecell.SideLeft, nil
	case "right":
		return swipecell.SideRight, nil
	case "none", "":
		return swipecell.SideNone, nil
	default:
		return swipecell.SideNone, fmt.Errorf("unknown side %q", name)
	}
}

func (spec *SurfaceSpec) surface() *swipecell.Surface {
	if spec == nil {
		return nil
	}
	return &swipecell.Surface{Label: spec.Label, Icon: spec.Icon, Width: spec.Width}
}
