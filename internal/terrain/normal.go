package terrain

import (
	"math"

	"github.com/vovakirdan/rover-playground/internal/core"
)

// NormalEpsilon is the central-difference step in world units.
const NormalEpsilon = 0.5

// Normal returns the unit surface normal at (x, z).
// The Y component before normalization is 1, so the result is always well formed.
func Normal(x, z float64, planet string) core.Vec3 {
	return normalOf(func(x, z float64) float64 { return Height(x, z, planet) }, x, z)
}

func normalOf(height func(x, z float64) float64, x, z float64) core.Vec3 {
	hL := height(x-NormalEpsilon, z)
	hR := height(x+NormalEpsilon, z)
	hN := height(x, z-NormalEpsilon)
	hF := height(x, z+NormalEpsilon)

	nx := (hL - hR) / (2 * NormalEpsilon)
	nz := (hN - hF) / (2 * NormalEpsilon)
	ny := 1.0

	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	return core.Vec3{X: nx / l, Y: ny / l, Z: nz / l}
}

// Steepness is 1 - normal.Y: 0 on flat ground, approaching 1 on a cliff.
func Steepness(n core.Vec3) float64 {
	return 1 - n.Y
}
