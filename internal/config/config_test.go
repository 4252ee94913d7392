package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xrf/xrf/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
elements: [Fe, Cu]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.IncidentEnergy)
	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, "counting", cfg.Weights)
	assert.Equal(t, 24, cfg.Background.Width)
	assert.Equal(t, 0.01, cfg.Calibration.Linear)
	assert.Equal(t, 200, cfg.MaxIterations)
	assert.Equal(t, []string{"Fe", "Cu"}, cfg.Elements)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
incident_energy: 18.0
elements: [Fe, Pb_L, Zr]
profile: adjust_element
energy_low: 2.0
energy_high: 16.0
calibration:
  offset: -0.012
  linear: 0.0105
  quadratic: 1.0e-7
background:
  width: 40
  smooth: 3
weights: none
max_iterations: 50
params:
  Fe_ka1_area: 25000
  compton_angle: 105
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18.0, cfg.IncidentEnergy)
	assert.Equal(t, model.ProfileAdjustElement, cfg.ModelProfile())
	assert.Equal(t, -0.012, cfg.Calibration.Offset)
	assert.Equal(t, 40, cfg.Background.Width)
	assert.Equal(t, "none", cfg.Weights)
	assert.Equal(t, 25000.0, cfg.Params["Fe_ka1_area"])
	assert.Equal(t, 105.0, cfg.Params["compton_angle"])
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
elements: [Fe]
incident_energy: 12.0
`)

	t.Setenv("ALGOXRF_INCIDENT_ENERGY", "17.5")
	t.Setenv("ALGOXRF_PROFILE", "linear")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 17.5, cfg.IncidentEnergy)
	assert.Equal(t, model.ProfileLinear, cfg.ModelProfile())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"no elements", func(c *Config) { c.Elements = nil }, ErrNoElements},
		{"bad incident", func(c *Config) { c.IncidentEnergy = -1 }, ErrBadIncident},
		{"inverted window", func(c *Config) { c.EnergyLow, c.EnergyHigh = 9, 3 }, ErrBadWindow},
		{"bad profile", func(c *Config) { c.Profile = "bogus" }, ErrUnknownProfile},
		{"bad weights", func(c *Config) { c.Weights = "poisson" }, ErrUnknownWeights},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				IncidentEnergy: 12,
				Elements:       []string{"Fe"},
				Profile:        "default",
				EnergyLow:      1,
				EnergyHigh:     11,
				Weights:        "counting",
			}

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	// No config file anywhere: defaults alone fail validation because
	// they carry no element list.
	t.Chdir(t.TempDir())

	_, err := Load("")
	assert.ErrorIs(t, err, ErrNoElements)
}

func TestLoadUnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
