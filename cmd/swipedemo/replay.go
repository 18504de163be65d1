package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/announce"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Event is one delegate notification observed during a replay.
type Event struct {
	Step   int     `json:"step"`
	At     string  `json:"at"`
	Name   string  `json:"event"`
	Side   string  `json:"side,omitempty"`
	Offset float64 `json:"offset"`
	Text   string  `json:"text,omitempty"`
}

// Result is the outcome of a replay.
type Result struct {
	Events []Event `json:"events"`
	Side   string  `json:"side"`
	Offset float64 `json:"offset"`
}

type replayer struct {
	start  time.Time
	now    time.Time
	step   int
	cell   *swipecell.Cell
	events []Event
}

func (r *replayer) record(name string, side swipecell.Side, text string) {
	e := Event{
		Step:   r.step,
		At:     r.now.Sub(r.start).String(),
		Name:   name,
		Offset: r.cell.Offset(),
		Text:   text,
	}
	if side != swipecell.SideNone || name == "didChangeCurrentSide" {
		e.Side = side.String()
	}
	r.events = append(r.events, e)
}

// Replay runs script against a fresh cell on a simulated clock. When lang
// is not Und, localized announcements are recorded too.
func Replay(script *Script, settings swipecell.Settings, lang language.Tag) (*Result, error) {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &replayer{start: start, now: start}
	settings.Clock = func() time.Time { return r.now }

	cell := swipecell.NewCell(settings)
	r.cell = cell

	left := script.Left.surface()
	right := script.Right.surface()
	cell.SetLeftSurface(left)
	cell.SetRightSurface(right)

	delegates := swipecell.MultiDelegate{&swipecell.DelegateFuncs{
		OnWillBeginSwiping: func(c *swipecell.Cell) { r.record("willBeginSwiping", swipecell.SideNone, "") },
		OnSwipe: func(c *swipecell.Cell, offset float64, side swipecell.Side) {
			r.record("didSwipe", side, "")
		},
		OnShouldShowSide: func(c *swipecell.Cell, side swipecell.Side) bool {
			r.record("shouldShowSide", side, "")
			return true
		},
		OnDidChangeCurrentSide: func(c *swipecell.Cell) {
			r.record("didChangeCurrentSide", c.CurrentSide(), "")
		},
		OnDidEndSwiping: func(c *swipecell.Cell) { r.record("didEndSwiping", swipecell.SideNone, "") },
		OnDidHideSide: func(c *swipecell.Cell, side swipecell.Side) {
			r.record("didHideSide", side, "")
		},
	}}

	if lang != language.Und {
		a, err := announce.New(lang, func(text string) {
			r.record("announce", swipecell.SideNone, text)
		})
		if err != nil {
			return nil, err
		}
		delegates = append(delegates, a)
	}
	cell.SetDelegate(delegates)

	for i, step := range script.Steps {
		r.step = i + 1
		r.apply(step, left, right)
	}

	return &Result{Events: r.events, Side: cell.CurrentSide().String(), Offset: cell.Offset()}, nil
}

func (r *replayer) apply(step Step, left, right *swipecell.Surface) {
	cell := r.cell
	side, _ := parseSide(step.Side)

	switch step.Action {
	case actionBegin:
		cell.Begin()
	case actionChange:
		cell.Change(step.Translation)
	case actionEnd:
		cell.End(step.Translation, step.Velocity)
	case actionCancel:
		cell.Cancel()
	case actionWait:
		for deadline := r.now.Add(step.Duration); r.now.Before(deadline); {
			next := r.now.Add(frame)
			if next.After(deadline) {
				next = deadline
			}
			r.now = next
			cell.Tick(r.now)
		}
	case actionSetSide:
		cell.SetCurrentSide(side, step.Duration)
	case actionSetOffset:
		cell.SetOffset(step.Offset, step.Duration)
	case actionDetach:
		if side == swipecell.SideLeft {
			left.Detach()
		} else {
			right.Detach()
		}
	}
}

func writeResult(w io.Writer, res *Result, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, e := range res.Events {
		line := fmt.Sprintf("%3d  %-8s %-22s offset=%-8.2f", e.Step, e.At, e.Name, e.Offset)
		if e.Side != "" {
			line += " side=" + e.Side
		}
		if e.Text != "" {
			line += fmt.Sprintf(" text=%q", e.Text)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "final: side=%s offset=%.2f\n", res.Side, res.Offset)
	return err
}

var replayLang string

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml | https://...>",
	Short: "Replay a gesture script headlessly and print delegate events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		data, err := loadScript(ctx, args[0])
		if err != nil {
			return err
		}

		script, err := ParseScript(data)
		if err != nil {
			return err
		}

		lang := language.Und
		if replayLang != "" {
			if lang, err = language.Parse(replayLang); err != nil {
				return fmt.Errorf("invalid --lang: %w", err)
			}
		}

		res, err := Replay(script, settings, lang)
		if err != nil {
			return err
		}

		logger.Debug("Replay finished", "steps", len(script.Steps), "events", len(res.Events))
		return writeResult(cmd.OutOrStdout(), res, jsonOutput)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayLang, "lang", "", "record localized announcements in this language (en, de, fr)")
}
