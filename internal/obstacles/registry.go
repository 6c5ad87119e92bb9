// Package obstacles generates and caches the rock field scattered over a planet.
//
// Placement is seeded from the planet id, so every consumer (the rover's
// collision pass, the renderer, the CLI) sees the same rocks in the same order.
package obstacles

import (
	"math"
	"sync"

	"github.com/vovakirdan/rover-playground/internal/terrain"
)

// Field layout constants.
const (
	DefaultCount = 45
	FieldSize    = 160.0 // rocks are scattered over a FieldSize square centered on the origin

	minBaseScale   = 0.3
	baseScaleRange = 1.2
	radiusFactor   = 0.8
	radiusPadding  = 0.3
)

// HeightFunc reports terrain elevation for rock placement.
type HeightFunc func(x, z float64, planet string) float64

type cacheKey struct {
	planet string
	count  int
}

// Registry memoizes rock sets per (planet, count).
type Registry struct {
	height HeightFunc

	mu    sync.Mutex
	cache map[cacheKey]*Set
}

// NewRegistry creates a registry that places rocks on the given height function.
// A nil height function uses terrain.Height.
func NewRegistry(height HeightFunc) *Registry {
	if height == nil {
		height = terrain.Height
	}
	return &Registry{
		height: height,
		cache:  make(map[cacheKey]*Set),
	}
}

// Generate returns the rock set for a planet, building it on first request.
// Repeated calls with the same key return the same *Set.
func (r *Registry) Generate(planet string, count int) *Set {
	if count < 0 {
		count = 0
	}
	key := cacheKey{planet: planet, count: count}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.cache[key]; ok {
		return s
	}
	s := r.build(planet, count)
	r.cache[key] = s
	return s
}

// Len returns the number of cached rock sets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func (r *Registry) build(planet string, count int) *Set {
	rng := newLCG(seedFor(planet))
	rocks := make([]Rock, 0, count)
	visuals := make([]Visual, 0, count)

	for i := 0; i < count; i++ {
		x := (rng.next() - 0.5) * FieldSize
		z := (rng.next() - 0.5) * FieldSize
		y := r.height(x, z, planet)

		base := minBaseScale + rng.next()*baseScaleRange
		sx := base * (0.8 + rng.next()*0.4)
		sy := base * (0.6 + rng.next()*0.5)
		sz := base * (0.8 + rng.next()*0.4)
		rot := rng.next() * 2 * math.Pi

		radius := (sx+sz)/2*radiusFactor + radiusPadding

		rocks = append(rocks, Rock{X: x, Z: z, Radius: radius})
		visuals = append(visuals, Visual{
			X: x, Y: y, Z: z,
			ScaleX: sx, ScaleY: sy, ScaleZ: sz,
			Rotation: rot,
		})
	}

	return newSet(planet, rocks, visuals)
}

var defaultRegistry = NewRegistry(nil)

// Generate returns the rock set from the process-wide registry.
func Generate(planet string, count int) *Set {
	return defaultRegistry.Generate(planet, count)
}
