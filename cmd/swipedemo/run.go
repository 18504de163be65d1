package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/announce"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/evdevinput"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/icon"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/platform/cannoli"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/sdlhost"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	runRows        int
	runTouchDevice string
	runLang        string
	runCannoli     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window with swipeable rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runRows < 1 {
			return fmt.Errorf("--rows must be at least 1")
		}

		lang, err := language.Parse(runLang)
		if err != nil {
			return fmt.Errorf("invalid --lang: %w", err)
		}
		announcer, err := announce.New(lang, nil)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runDemo(ctx, announcer)
	},
}

func init() {
	// SDL requires all calls on the thread that initialized it.
	runtime.LockOSThread()

	runCmd.Flags().IntVar(&runRows, "rows", 6, "number of rows")
	runCmd.Flags().StringVar(&runTouchDevice, "touch-device", "", "evdev touchscreen to read, e.g. /dev/input/event1")
	runCmd.Flags().StringVar(&runLang, "lang", "en", "announcement language")
	runCmd.Flags().BoolVar(&runCannoli, "cannoli", false, "use the Cannoli theme")
}

func runDemo(ctx context.Context, announcer *announce.Announcer) error {
	window, err := sdlhost.OpenWindow("swipedemo", sdlhost.WindowOptions{})
	if err != nil {
		return err
	}
	defer window.Close()

	theme := sdlhost.DefaultTheme()
	if runCannoli {
		theme = cannoli.InitCannoliTheme()
	}

	host := sdlhost.NewHost(window, icon.NewSet(), theme)
	host.OnSelect = func(index int) {
		logger.Info("Row selected", "row", index)
	}

	for i := 0; i < runRows; i++ {
		cell := swipecell.NewCell(settings)
		cell.SetLeftSurface(cannoli.DeleteSurface("Delete"))
		if i%2 == 0 {
			cell.SetRightSurface(cannoli.PinSurface("Pin"))
		} else {
			cell.SetRightSurface(cannoli.ArchiveSurface("Archive"))
		}
		cell.SetDelegate(swipecell.MultiDelegate{rowLogger(i), announcer})
		host.AddRow(cell)
	}

	var touches chan swipecell.PointerEvent
	if runTouchDevice != "" {
		width, height := window.Size()
		reader, err := evdevinput.Open(runTouchDevice, width, height)
		if err != nil {
			return err
		}
		logger.Info("Reading touchscreen", "device", reader.Name())

		touches = make(chan swipecell.PointerEvent, 64)
		go func() {
			if err := reader.Run(ctx, touches); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Touchscreen stopped", "error", err)
			}
		}()
	}

	err = host.Run(ctx, touches)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// rowLogger logs each row's interaction at debug level.
func rowLogger(row int) swipecell.Delegate {
	l := logger.With("row", row)
	return &swipecell.DelegateFuncs{
		OnWillBeginSwiping: func(c *swipecell.Cell) {
			l.Debug("Swipe began", "offset", c.Offset())
		},
		OnDidChangeCurrentSide: func(c *swipecell.Cell) {
			l.Info("Side changed", "side", c.CurrentSide())
		},
		OnDidEndSwiping: func(c *swipecell.Cell) {
			l.Debug("Swipe ended", "side", c.CurrentSide())
		},
		OnDidHideSide: func(c *swipecell.Cell, side swipecell.Side) {
			l.Debug("Side hidden", "side", side)
		},
	}
}
