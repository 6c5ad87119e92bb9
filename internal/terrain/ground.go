package terrain

import "github.com/vovakirdan/rover-playground/internal/core"

// Ground is the surface a vehicle drives over.
type Ground interface {
	HeightAt(x, z float64) float64
	NormalAt(x, z float64) core.Vec3
}

// Field is the procedural height field of one planet.
type Field struct {
	Planet string
}

// ForPlanet returns the height field for a planet id.
func ForPlanet(planet string) Field {
	return Field{Planet: planet}
}

// HeightAt implements Ground.
func (f Field) HeightAt(x, z float64) float64 {
	return Height(x, z, f.Planet)
}

// NormalAt implements Ground.
func (f Field) NormalAt(x, z float64) core.Vec3 {
	return Normal(x, z, f.Planet)
}

// Flat is level ground at a fixed elevation, used by the humanoid lab.
type Flat struct {
	Elevation float64
}

// HeightAt implements Ground.
func (f Flat) HeightAt(_, _ float64) float64 {
	return f.Elevation
}

// NormalAt implements Ground.
func (f Flat) NormalAt(_, _ float64) core.Vec3 {
	return core.Vec3{Y: 1}
}

// ForDescriptor picks the ground a simulation variant runs on.
func ForDescriptor(d core.Descriptor) Ground {
	if !d.Terrain {
		return Flat{}
	}
	return ForPlanet(d.ID)
}
