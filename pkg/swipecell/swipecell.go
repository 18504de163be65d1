// Package swipecell implements the interaction core of a swipeable list row:
// a row that reveals a left or right action surface as it is dragged
// horizontally, snaps open or closed on release, and reports each step to an
// optional delegate that may also veto opening a side.
//
// Rendering is left to the host. The sdlhost and evdevinput packages provide
// ready-made hosts for SDL windows and Linux touchscreens.
//
// Basic usage:
//
//	cell := swipecell.NewCell(swipecell.DefaultSettings())
//	cell.SetLeftSurface(&swipecell.Surface{Label: "Delete"})
//	cell.SetDelegate(&swipecell.DelegateFuncs{
//	    OnDidChangeCurrentSide: func(c *swipecell.Cell) { ... },
//	})
//
//	recognizer := swipecell.NewRecognizer(cell)
//	for each pointer event: recognizer.Handle(ev)
//	for each frame:         cell.Tick(time.Now()); draw at cell.Offset()
package swipecell

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
	"github.com/BrandonKowalski/swipecell/pkg/swipecell/internal"
)

func init() {
	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(level))
	} else if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before any logging happens.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the library's own diagnostics, which
// default to errors only.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
