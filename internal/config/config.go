// Package config provides YAML-based physics tuning for the playground.
// Each planet gets a row of constants that gives its rovers a distinct feel.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned by Validate for physically meaningless rows.
var ErrInvalidTuning = errors.New("config: invalid tuning")

// Tuning is one row of the per-planet physics table.
type Tuning struct {
	MaxSpeed     float64 `yaml:"max_speed"`     // forward top speed, m/s
	Acceleration float64 `yaml:"acceleration"`  // throttle acceleration, m/s²
	Friction     float64 `yaml:"friction"`      // coast-down deceleration, m/s²
	TurnSpeed    float64 `yaml:"turn_speed"`    // yaw rate, rad/s
	Gravity      float64 `yaml:"gravity"`       // m/s²
	HeightSmooth float64 `yaml:"height_smooth"` // grounded height follow rate, 1/s
	TiltSmooth   float64 `yaml:"tilt_smooth"`   // body tilt follow rate, 1/s
}

// Validate checks that every rate is positive.
func (t Tuning) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"max_speed", t.MaxSpeed},
		{"acceleration", t.Acceleration},
		{"friction", t.Friction},
		{"turn_speed", t.TurnSpeed},
		{"gravity", t.Gravity},
		{"height_smooth", t.HeightSmooth},
		{"tilt_smooth", t.TiltSmooth},
	}
	for _, f := range fields {
		if f.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, f.name, f.val)
		}
	}
	return nil
}

// Limits holds the session-level constants shared by every planet.
type Limits struct {
	MaxStep      float64 `yaml:"max_step"`      // largest integration step, seconds
	TargetRadius float64 `yaml:"target_radius"` // distance at which the target counts as reached
}

// PhysicsConfig is the full tuning table.
type PhysicsConfig struct {
	Default Tuning            `yaml:"default"`
	Planets map[string]Tuning `yaml:"planets"`
	Limits  Limits            `yaml:"limits"`
}

// TuningFor returns the row for a planet, falling back to the default row.
func (c PhysicsConfig) TuningFor(planet string) Tuning {
	if t, ok := c.Planets[planet]; ok {
		return t
	}
	return c.Default
}

// Validate checks every row and the limits.
func (c PhysicsConfig) Validate() error {
	if err := c.Default.Validate(); err != nil {
		return fmt.Errorf("default: %w", err)
	}
	for id, t := range c.Planets {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("planet %s: %w", id, err)
		}
	}
	if c.Limits.MaxStep <= 0 || c.Limits.TargetRadius <= 0 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidTuning)
	}
	return nil
}
