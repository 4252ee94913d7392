// Package config loads fit configuration for the command-line tools from
// YAML files and ALGOXRF_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xrf/xrf/model"
)

// Validation errors.
var (
	ErrNoElements     = errors.New("config: elements must not be empty")
	ErrBadIncident    = errors.New("config: incident_energy must be > 0")
	ErrBadWindow      = errors.New("config: energy window is inverted")
	ErrUnknownProfile = errors.New("config: unknown profile")
	ErrUnknownWeights = errors.New("config: unknown weights mode")
)

// Calibration holds the quadratic channel-to-energy mapping.
type Calibration struct {
	Offset    float64 `koanf:"offset"`
	Linear    float64 `koanf:"linear"`
	Quadratic float64 `koanf:"quadratic"`
}

// Background configures the SNIP background estimator.
type Background struct {
	Width      int `koanf:"width"`
	Iterations int `koanf:"iterations"`
	Smooth     int `koanf:"smooth"`
}

// Config describes one fitting run.
type Config struct {
	IncidentEnergy float64  `koanf:"incident_energy"`
	Elements       []string `koanf:"elements"`

	// Profile selects the bound policy: default, free_more,
	// adjust_element, e_calibration, or linear.
	Profile string `koanf:"profile"`

	// EnergyLow/EnergyHigh clip the fitted range in keV.
	EnergyLow  float64 `koanf:"energy_low"`
	EnergyHigh float64 `koanf:"energy_high"`

	Calibration Calibration `koanf:"calibration"`
	Background  Background  `koanf:"background"`

	// Weights is "none" or "counting".
	Weights       string `koanf:"weights"`
	MaxIterations int    `koanf:"max_iterations"`

	// Params overrides the starting value of named model parameters.
	Params map[string]float64 `koanf:"params"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"incident_energy":       12.0,
		"profile":               "default",
		"energy_low":            1.0,
		"energy_high":           12.0,
		"calibration.offset":    0.0,
		"calibration.linear":    0.01,
		"background.width":      24,
		"background.iterations": 1,
		"weights":               "counting",
		"max_iterations":        200,
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if len(c.Elements) == 0 {
		return ErrNoElements
	}

	if c.IncidentEnergy <= 0 {
		return ErrBadIncident
	}

	if c.EnergyHigh <= c.EnergyLow {
		return fmt.Errorf("%w: [%g, %g]", ErrBadWindow, c.EnergyLow, c.EnergyHigh)
	}

	if _, ok := model.ParseProfile(c.Profile); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, c.Profile)
	}

	if c.Weights != "none" && c.Weights != "counting" {
		return fmt.Errorf("%w: %q", ErrUnknownWeights, c.Weights)
	}

	return nil
}

// ModelProfile returns the parsed bound profile.
func (c *Config) ModelProfile() model.Profile {
	p, _ := model.ParseProfile(c.Profile)
	return p
}
