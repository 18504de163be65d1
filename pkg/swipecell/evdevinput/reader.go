// Package evdevinput reads a Linux touchscreen through evdev and produces
// swipecell pointer samples, for handhelds where SDL does not see the panel.
package evdevinput

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
	evdev "github.com/holoplot/go-evdev"
)

// ErrNotTouchscreen is returned when a device reports no absolute X/Y axes.
var ErrNotTouchscreen = errors.New("device has no absolute position axes")

// Reader owns an open input device.
type Reader struct {
	dev    *evdev.InputDevice
	tr     *Translator
	name   string
	logger *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// Open opens the device at path and scales its axes to a screen of
// width x height pixels.
func Open(path string, width, height int32) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, swipecell.NewInfrastructureError("open_device", err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, swipecell.NewInfrastructureError("open_device", err)
	}

	x, okX := axisFor(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X, float64(width))
	y, okY := axisFor(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y, float64(height))
	if !okX || !okY {
		dev.Close()
		return nil, swipecell.NewInfrastructureError("open_device", ErrNotTouchscreen)
	}

	name, _ := dev.Name()
	logger := internal.GetInternalLogger()
	logger.Debug("Opened touch device", "path", path, "name", name, "x", x, "y", y)

	return &Reader{
		dev:    dev,
		tr:     NewTranslator(x, y),
		name:   name,
		logger: logger,
	}, nil
}

func axisFor(infos map[evdev.EvCode]evdev.AbsInfo, mt, single evdev.EvCode, size float64) (Axis, bool) {
	for _, code := range []evdev.EvCode{mt, single} {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return Axis{Min: info.Minimum, Max: info.Maximum, Size: size}, true
		}
	}
	return Axis{}, false
}

// Name returns the device name reported by the kernel.
func (r *Reader) Name() string {
	return r.name
}

// Run reads events until ctx is done or the device fails, sending each
// pointer sample to out. A contact in progress when Run stops is sent as a
// cancel if out can still take it. Run closes the device before returning.
func (r *Reader) Run(ctx context.Context, out chan<- swipecell.PointerEvent) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			// unblocks ReadOne
			r.Close()
		case <-stop:
		}
	}()
	defer r.Close()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			r.cancelContact(out)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return swipecell.NewInfrastructureError("read_device", err)
		}

		pe, ok := r.tr.Feed(ev)
		if !ok {
			continue
		}

		select {
		case out <- pe:
		case <-ctx.Done():
			r.cancelContact(out)
			return ctx.Err()
		}
	}
}

func (r *Reader) cancelContact(out chan<- swipecell.PointerEvent) {
	pe, ok := r.tr.Reset(time.Now())
	if !ok {
		return
	}
	select {
	case out <- pe:
	default:
		r.logger.Warn("Dropped touch cancel", "device", r.name)
	}
}

// Close releases the device. It is safe to call more than once.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.dev.Close()
	})
	return r.closeErr
}
