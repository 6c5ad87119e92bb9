package obstacles

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Rock is the collision footprint of one obstacle: a circle in the XZ plane.
type Rock struct {
	X, Z   float64
	Radius float64
}

// Visual is what the renderer needs to place a rock mesh.
type Visual struct {
	X, Y, Z                float64
	ScaleX, ScaleY, ScaleZ float64
	Rotation               float64
}

// Set is an immutable rock field. It is safe for concurrent readers.
type Set struct {
	planet    string
	rocks     []Rock
	visuals   []Visual
	index     *rtreego.Rtree
	maxRadius float64
}

// indexed wraps a rock for the spatial index.
type indexed struct {
	idx    int
	bounds rtreego.Rect
}

func (e *indexed) Bounds() rtreego.Rect {
	return e.bounds
}

func newSet(planet string, rocks []Rock, visuals []Visual) *Set {
	s := &Set{
		planet:  planet,
		rocks:   rocks,
		visuals: visuals,
		index:   rtreego.NewTree(2, 4, 16),
	}

	for i, r := range rocks {
		s.maxRadius = max(s.maxRadius, r.Radius)
		bounds, err := footprint(r.X, r.Z, r.Radius)
		if err != nil {
			continue
		}
		s.index.Insert(&indexed{idx: i, bounds: bounds})
	}
	return s
}

// NewSet builds a set from an explicit rock list. Visuals are derived with unit scale.
func NewSet(rocks []Rock) *Set {
	own := make([]Rock, len(rocks))
	copy(own, rocks)
	visuals := make([]Visual, len(rocks))
	for i, r := range own {
		visuals[i] = Visual{X: r.X, Z: r.Z, ScaleX: 1, ScaleY: 1, ScaleZ: 1}
	}
	return newSet("", own, visuals)
}

// footprint is the square bounding box of a circle.
func footprint(x, z, radius float64) (rtreego.Rect, error) {
	side := 2 * radius
	if side <= 0 {
		side = 1e-6
	}
	return rtreego.NewRect(rtreego.Point{x - radius, z - radius}, []float64{side, side})
}

// Planet returns the planet the set was generated for.
func (s *Set) Planet() string {
	return s.planet
}

// Len returns the number of rocks.
func (s *Set) Len() int {
	return len(s.rocks)
}

// Rock returns rock i.
func (s *Set) Rock(i int) Rock {
	return s.rocks[i]
}

// Rocks returns a copy of the collision list.
func (s *Set) Rocks() []Rock {
	out := make([]Rock, len(s.rocks))
	copy(out, s.rocks)
	return out
}

// Visuals returns a copy of the visual list.
func (s *Set) Visuals() []Visual {
	out := make([]Visual, len(s.visuals))
	copy(out, s.visuals)
	return out
}

// Near returns the indices of rocks whose footprint could touch a circle of
// the given reach around (x, z), in ascending list order.
func (s *Set) Near(x, z, reach float64) []int {
	if len(s.rocks) == 0 {
		return nil
	}
	box, err := footprint(x, z, reach)
	if err != nil {
		return nil
	}

	hits := s.index.SearchIntersect(box)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*indexed).idx)
	}
	sort.Ints(out)
	return out
}

// MaxRadius returns the largest rock radius in the set.
func (s *Set) MaxRadius() float64 {
	return s.maxRadius
}
