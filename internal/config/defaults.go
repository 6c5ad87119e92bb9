package config

import (
	_ "embed"

	"github.com/vovakirdan/rover-playground/internal/core"
)

//go:embed defaults/physics.yaml
var defaultPhysicsYAML []byte

// DefaultPhysicsConfig returns the built-in tuning table.
func DefaultPhysicsConfig() PhysicsConfig {
	earth := Tuning{
		MaxSpeed:     15,
		Acceleration: 22,
		Friction:     10,
		TurnSpeed:    2.2,
		Gravity:      9.81,
		HeightSmooth: 14,
		TiltSmooth:   8,
	}

	return PhysicsConfig{
		Default: earth,
		Planets: map[string]Tuning{
			core.PlanetMars: {
				MaxSpeed:     12,
				Acceleration: 16,
				Friction:     6,
				TurnSpeed:    1.8,
				Gravity:      3.71,
				HeightSmooth: 10,
				TiltSmooth:   6,
			},
			core.PlanetMoon: {
				MaxSpeed:     9,
				Acceleration: 10,
				Friction:     3,
				TurnSpeed:    1.5,
				Gravity:      1.62,
				HeightSmooth: 6,
				TiltSmooth:   4,
			},
			core.PlanetEarth: earth,
			core.PlanetHumanoid: {
				MaxSpeed:     4,
				Acceleration: 8,
				Friction:     12,
				TurnSpeed:    2.6,
				Gravity:      9.81,
				HeightSmooth: 16,
				TiltSmooth:   10,
			},
		},
		Limits: Limits{
			MaxStep:      0.05,
			TargetRadius: 3,
		},
	}
}

// DefaultYAML returns the embedded default physics YAML.
func DefaultYAML() []byte {
	return defaultPhysicsYAML
}
