package swipecell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings_Valid(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
}

func TestParseSettings_OverridesDefaults(t *testing.T) {
	s, err := ParseSettings([]byte(`
animation_duration = "350ms"
bounce_elasticity = 0.3
reveal_width = 96.0
`))
	require.NoError(t, err)

	assert.Equal(t, 350*time.Millisecond, s.AnimationDuration)
	assert.Equal(t, 0.3, s.BounceElasticity)
	assert.Equal(t, 96.0, s.RevealWidth)
	assert.Equal(t, constants.DefaultOpenDistanceThreshold, s.OpenDistanceThreshold)
	assert.Equal(t, constants.DefaultVelocityWindow, s.VelocityWindow)
}

func TestParseSettings_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		infra bool
	}{
		{name: "unknown key", input: `bounciness = 2.0`},
		{name: "elasticity out of range", input: `bounce_elasticity = 1.5`},
		{name: "negative duration", input: `animation_duration = "-1s"`},
		{name: "zero reveal width", input: `reveal_width = 0.0`},
		{name: "malformed", input: `reveal_width = = 3`, infra: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.input))
			require.Error(t, err)
			if tt.infra {
				assert.True(t, IsInfrastructureError(err))
			} else {
				assert.ErrorIs(t, err, ErrInvalidSettings)
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swipe.toml")
	require.NoError(t, os.WriteFile(path, []byte("open_distance_threshold = 50.0\n"), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, s.OpenDistanceThreshold)

	_, err = LoadSettings(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	var infra *InfrastructureError
	require.True(t, errors.As(err, &infra))
	assert.Equal(t, "load_settings", infra.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv(constants.SettingsPathEnvVar, "")
	s, err := SettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().RevealWidth, s.RevealWidth)

	path := filepath.Join(t.TempDir(), "swipe.toml")
	require.NoError(t, os.WriteFile(path, []byte("reveal_width = 70.0\n"), 0644))
	t.Setenv(constants.SettingsPathEnvVar, path)

	s, err = SettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 70.0, s.RevealWidth)
}
