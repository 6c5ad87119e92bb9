package terrain

import (
	"math"
	"sync"
)

// Default mesh extents used by the renderer.
const (
	DefaultMeshSize     = 200.0
	DefaultMeshSegments = 128
)

// Grid is a discrete sampling of a planet's height field over a square
// centered on the origin. It exists for display; Height stays authoritative.
type Grid struct {
	Planet   string
	Size     float64
	Segments int

	heights  []float64 // (Segments+1)^2 samples, row-major by z then x
	min, max float64
}

type gridKey struct {
	planet   string
	size     float64
	segments int
}

var (
	gridMu    sync.Mutex
	gridCache = make(map[gridKey]*Grid)
)

// Sample returns the cached grid for the given planet and extents, building
// it on first use. Segments below 1 are treated as 1.
func Sample(planet string, size float64, segments int) *Grid {
	if segments < 1 {
		segments = 1
	}
	key := gridKey{planet: planet, size: size, segments: segments}

	gridMu.Lock()
	defer gridMu.Unlock()

	if g, ok := gridCache[key]; ok {
		return g
	}
	g := buildGrid(planet, size, segments)
	gridCache[key] = g
	return g
}

func buildGrid(planet string, size float64, segments int) *Grid {
	n := segments + 1
	g := &Grid{
		Planet:   planet,
		Size:     size,
		Segments: segments,
		heights:  make([]float64, n*n),
		min:      math.Inf(1),
		max:      math.Inf(-1),
	}

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			x, z := g.Coord(i, j)
			h := Height(x, z, planet)
			g.heights[j*n+i] = h
			g.min = math.Min(g.min, h)
			g.max = math.Max(g.max, h)
		}
	}
	return g
}

// Coord returns the world position of sample (i, j).
func (g *Grid) Coord(i, j int) (x, z float64) {
	step := g.Size / float64(g.Segments)
	half := g.Size / 2
	return -half + float64(i)*step, -half + float64(j)*step
}

// At returns sample (i, j); indices are clamped to the grid.
func (g *Grid) At(i, j int) float64 {
	n := g.Segments + 1
	i = max(0, min(n-1, i))
	j = max(0, min(n-1, j))
	return g.heights[j*n+i]
}

// MinMax returns the lowest and highest sampled elevations.
func (g *Grid) MinMax() (float64, float64) {
	return g.min, g.max
}

// Mean returns the average sampled elevation.
func (g *Grid) Mean() float64 {
	sum := 0.0
	for _, h := range g.heights {
		sum += h
	}
	return sum / float64(len(g.heights))
}

// HeightAt bilinearly interpolates the samples at a world position.
// Positions outside the grid clamp to its edge.
func (g *Grid) HeightAt(x, z float64) float64 {
	step := g.Size / float64(g.Segments)
	half := g.Size / 2

	fx := (x + half) / step
	fz := (z + half) / step
	fx = math.Max(0, math.Min(float64(g.Segments), fx))
	fz = math.Max(0, math.Min(float64(g.Segments), fz))

	i0, j0 := int(math.Floor(fx)), int(math.Floor(fz))
	tx, tz := fx-float64(i0), fz-float64(j0)

	h00 := g.At(i0, j0)
	h10 := g.At(i0+1, j0)
	h01 := g.At(i0, j0+1)
	h11 := g.At(i0+1, j0+1)

	top := h00 + (h10-h00)*tx
	bottom := h01 + (h11-h01)*tx
	return top + (bottom-top)*tz
}
