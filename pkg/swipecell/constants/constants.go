// Package constants defines shared constants, types, and default tuning values
// used throughout the swipecell packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// SettingsPathEnvVar names the environment variable pointing at a TOML settings file.
const SettingsPathEnvVar = "SWIPECELL_SETTINGS"

// LogLevelEnvVar names the environment variable holding the internal log level.
const LogLevelEnvVar = "SWIPECELL_LOG_LEVEL"

// WindowWidthEnvVar and WindowHeightEnvVar override the demo window size in dev mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Only the buttons the swipe row reacts to are listed.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	default:
		return "Unknown"
	}
}

// Default interaction tuning.
const (
	DefaultAnimationDuration     = 200 * time.Millisecond // Open/close animation length
	DefaultBounceElasticity      = 0.5                    // Slope of the elastic curve at rest, must be < 1
	DefaultElasticBound          = 60.0                   // Distance the elastic curve approaches but never reaches
	DefaultOpenDistanceThreshold = 80.0                   // Release distance that commits a side
	DefaultOpenVelocityThreshold = 500.0                  // Release speed (px/s) that commits a side early
	DefaultRevealWidth           = 120.0                  // Reveal extent for surfaces without their own width
	DefaultDragDeadZone          = 8.0                    // Movement before a pointer is treated as a drag
	DefaultVelocityWindow        = 100 * time.Millisecond // Sample window used for release velocity
)

// Default d-pad timing.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
)
