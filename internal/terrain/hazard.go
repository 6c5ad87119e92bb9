package terrain

import (
	"math"

	"github.com/vovakirdan/rover-playground/internal/core"
)

// Hazard is a localized pit layered on top of a planet's base terrain.
type Hazard struct {
	Name   string
	X, Z   float64
	Radius float64
	Depth  float64
}

var hazards = map[string][]Hazard{
	core.PlanetMars: {
		{Name: "Sinkhole", X: 10, Z: 10, Radius: 15, Depth: 12.0},
	},
}

// Hazards returns the hazard zones of a planet. Most planets have none.
func Hazards(planet string) []Hazard {
	hs := hazards[planet]
	out := make([]Hazard, len(hs))
	copy(out, hs)
	return out
}

// Contains reports whether (x, z) lies inside the hazard footprint.
func (h Hazard) Contains(x, z float64) bool {
	return math.Hypot(x-h.X, z-h.Z) < h.Radius
}

// InHazard returns the hazard containing (x, z), if any.
func InHazard(x, z float64, planet string) (Hazard, bool) {
	for _, h := range hazards[planet] {
		if h.Contains(x, z) {
			return h, true
		}
	}
	return Hazard{}, false
}

// hazardOffset is the summed (negative) contribution of every hazard at (x, z).
func hazardOffset(x, z float64, planet string) float64 {
	off := 0.0
	for _, h := range hazards[planet] {
		d := math.Hypot(x-h.X, z-h.Z)
		if d >= h.Radius {
			continue
		}
		r := d / h.Radius
		off -= math.Max(0, 1-r*r) * h.Depth
	}
	return off
}
