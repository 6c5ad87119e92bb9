// Package terrain implements the procedural height field the rovers drive on.
//
// Heights are a pure function of (x, z, planet). Everything that needs the
// ground (collision, normals, the rendered relief) calls Height, so the
// physics and the picture can never disagree.
package terrain

import (
	"math"

	"github.com/vovakirdan/rover-playground/internal/core"
)

// Crater is a circular depression with a raised lip.
type Crater struct {
	X, Z   float64
	Radius float64
	Depth  float64
}

// Craters on the moon map, center first.
var moonCraters = []Crater{
	{X: 0, Z: 0, Radius: 20, Depth: 4.0},
	{X: -45, Z: 30, Radius: 12, Depth: 2.5},
	{X: 40, Z: -35, Radius: 15, Depth: 3.0},
	{X: 55, Z: 45, Radius: 8, Depth: 1.8},
	{X: -30, Z: -50, Radius: 10, Depth: 2.2},
}

// MoonCraters returns a copy of the crater table used for the moon.
func MoonCraters() []Crater {
	out := make([]Crater, len(moonCraters))
	copy(out, moonCraters)
	return out
}

const (
	canyonHalfWidth = 8.0
	canyonDepth     = 3.0
	valleyHalfWidth = 10.0
	valleyDepth     = 2.5
	craterRimInner  = 0.7
	craterRimPeak   = 0.85
	craterRimWidth  = 0.15
	craterRimHeight = 0.15
)

// Height returns the terrain elevation at (x, z) for the given planet.
// Unknown planets use the earth formula.
func Height(x, z float64, planet string) float64 {
	switch planet {
	case core.PlanetMars:
		return marsHeight(x, z) + hazardOffset(x, z, planet)
	case core.PlanetMoon:
		return moonHeight(x, z)
	default:
		return earthHeight(x, z)
	}
}

func marsBase(x, z float64) float64 {
	// dunes
	h := math.Sin(x/40)*math.Cos(z/35)*3.5 +
		math.Sin(x/30+1.3)*math.Cos(z/45)*2.5
	// ridges
	h += math.Sin(x/12)*math.Cos(z/10)*1.2 +
		math.Sin(x/8+2)*math.Sin(z/9)*0.7
	// grit
	h += math.Sin(x/3)*math.Cos(z/2.5)*0.25 +
		math.Sin(x/2+1)*math.Cos(z/3.2)*0.15
	return h
}

func marsHeight(x, z float64) float64 {
	h := marsBase(x, z)

	canyon := math.Abs(math.Sin(x*0.015+0.5)*30 - z)
	if canyon < canyonHalfWidth {
		h -= (1 - canyon/canyonHalfWidth) * canyonDepth
	}
	return h
}

func moonUndulation(x, z float64) float64 {
	return math.Sin(x/25)*math.Cos(z/30)*1.5 +
		math.Sin(x/15+0.5)*math.Cos(z/18)*0.8 +
		math.Sin(x/4)*math.Cos(z/5)*0.15
}

func moonHeight(x, z float64) float64 {
	h := moonUndulation(x, z)

	for _, c := range moonCraters {
		dist := math.Hypot(x-c.X, z-c.Z)
		if dist >= c.Radius {
			continue
		}
		t := core.ClampF(dist/c.Radius, 0, 1)
		smooth := t * t * (3 - 2*t)
		h -= (1 - smooth) * c.Depth

		if t > craterRimInner && t < 1 {
			h += (1 - math.Abs(t-craterRimPeak)/craterRimWidth) * c.Depth * craterRimHeight
		}
	}
	return h
}

func earthHeight(x, z float64) float64 {
	// rolling hills
	h := math.Sin(x/35)*math.Cos(z/40)*2.0 +
		math.Sin(x/28+1)*math.Cos(z/32+0.5)*2.0
	// bumps
	h += math.Sin(x/10)*math.Cos(z/12)*0.8 +
		math.Sin(x/7+0.3)*math.Sin(z/8)*0.5

	valley := math.Abs(math.Sin(x*0.02+1.0)*25 - z)
	if valley < valleyHalfWidth {
		h -= (1 - valley/valleyHalfWidth) * valleyDepth
	}
	return h
}
