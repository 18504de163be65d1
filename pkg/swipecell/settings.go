package swipecell

import (
	"fmt"
	"os"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
	"github.com/BurntSushi/toml"
)

// Settings holds the tunable constants of a cell. The zero value is not
// usable; start from DefaultSettings.
type Settings struct {
	AnimationDuration     time.Duration `toml:"animation_duration"`      // Default open/close animation length
	BounceElasticity      float64       `toml:"bounce_elasticity"`       // Elastic slope toward a side without a surface, in (0,1)
	ElasticBound          float64       `toml:"elastic_bound"`           // Distance the elastic curve never reaches
	OpenDistanceThreshold float64       `toml:"open_distance_threshold"` // Release distance that commits a side
	OpenVelocityThreshold float64       `toml:"open_velocity_threshold"` // Release speed (px/s) that commits a side before the distance threshold
	RevealWidth           float64       `toml:"reveal_width"`            // Reveal extent for surfaces with no width of their own
	MaxReveal             float64       `toml:"max_reveal"`              // Clamp for drags toward a configured surface, 0 disables
	DragDeadZone          float64       `toml:"drag_dead_zone"`          // Pointer travel before the recognizer decides
	VelocityWindow        time.Duration `toml:"velocity_window"`         // Sample window for release velocity

	// Clock drives animations. Nil uses time.Now.
	Clock func() time.Time `toml:"-"`
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		AnimationDuration:     constants.DefaultAnimationDuration,
		BounceElasticity:      constants.DefaultBounceElasticity,
		ElasticBound:          constants.DefaultElasticBound,
		OpenDistanceThreshold: constants.DefaultOpenDistanceThreshold,
		OpenVelocityThreshold: constants.DefaultOpenVelocityThreshold,
		RevealWidth:           constants.DefaultRevealWidth,
		DragDeadZone:          constants.DefaultDragDeadZone,
		VelocityWindow:        constants.DefaultVelocityWindow,
	}
}

// Validate reports the first out-of-range value.
func (s Settings) Validate() error {
	switch {
	case s.AnimationDuration < 0:
		return fmt.Errorf("%w: animation_duration must not be negative", ErrInvalidSettings)
	case s.BounceElasticity <= 0 || s.BounceElasticity >= 1:
		return fmt.Errorf("%w: bounce_elasticity must be in (0,1), got %v", ErrInvalidSettings, s.BounceElasticity)
	case s.ElasticBound <= 0:
		return fmt.Errorf("%w: elastic_bound must be positive", ErrInvalidSettings)
	case s.OpenDistanceThreshold <= 0:
		return fmt.Errorf("%w: open_distance_threshold must be positive", ErrInvalidSettings)
	case s.OpenVelocityThreshold <= 0:
		return fmt.Errorf("%w: open_velocity_threshold must be positive", ErrInvalidSettings)
	case s.RevealWidth <= 0:
		return fmt.Errorf("%w: reveal_width must be positive", ErrInvalidSettings)
	case s.MaxReveal < 0:
		return fmt.Errorf("%w: max_reveal must not be negative", ErrInvalidSettings)
	case s.DragDeadZone < 0:
		return fmt.Errorf("%w: drag_dead_zone must not be negative", ErrInvalidSettings)
	case s.VelocityWindow <= 0:
		return fmt.Errorf("%w: velocity_window must be positive", ErrInvalidSettings)
	}
	return nil
}

// ParseSettings decodes TOML on top of DefaultSettings, so a file only needs
// the keys it changes. Unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()

	meta, err := toml.Decode(string(data), &settings)
	if err != nil {
		return Settings{}, NewInfrastructureError("parse_settings", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSettings, undecoded[0].String())
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// LoadSettings reads a TOML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, NewInfrastructureError("load_settings", err)
	}
	return ParseSettings(data)
}

// SettingsFromEnv loads the file named by SWIPECELL_SETTINGS, or returns the
// defaults when the variable is unset.
func SettingsFromEnv() (Settings, error) {
	path := os.Getenv(constants.SettingsPathEnvVar)
	if path == "" {
		return DefaultSettings(), nil
	}
	return LoadSettings(path)
}

func (s Settings) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
