package obstacles

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/rover-playground/internal/core"
)

func TestGenerateMemoizes(t *testing.T) {
	r := NewRegistry(nil)

	a := r.Generate(core.PlanetMars, DefaultCount)
	b := r.Generate(core.PlanetMars, DefaultCount)

	if a != b {
		t.Fatal("second Generate with the same key should return the cached set")
	}
	if a.Len() != 45 || b.Len() != 45 {
		t.Errorf("expected 45 rocks, got %d and %d", a.Len(), b.Len())
	}
}

func TestGenerateReproducibleAcrossRegistries(t *testing.T) {
	a := NewRegistry(nil).Generate(core.PlanetMoon, 30)
	b := NewRegistry(nil).Generate(core.PlanetMoon, 30)

	if !reflect.DeepEqual(a.Rocks(), b.Rocks()) {
		t.Error("independent registries should produce identical collision lists")
	}
	if !reflect.DeepEqual(a.Visuals(), b.Visuals()) {
		t.Error("independent registries should produce identical visual lists")
	}
}

func TestGenerateKeepsEveryKey(t *testing.T) {
	r := NewRegistry(nil)

	mars := r.Generate(core.PlanetMars, 45)
	moon := r.Generate(core.PlanetMoon, 45)
	marsSmall := r.Generate(core.PlanetMars, 10)

	if r.Len() != 3 {
		t.Errorf("expected 3 cached sets, got %d", r.Len())
	}
	if r.Generate(core.PlanetMars, 45) != mars {
		t.Error("interleaved keys should not evict earlier entries")
	}
	if r.Generate(core.PlanetMoon, 45) != moon {
		t.Error("moon set should still be cached")
	}

	// Same seed, shorter run: the first rocks match.
	for i := 0; i < marsSmall.Len(); i++ {
		if marsSmall.Rock(i) != mars.Rock(i) {
			t.Fatalf("rock %d differs between count=10 and count=45", i)
		}
	}
}

func TestGenerateDiffersByPlanet(t *testing.T) {
	r := NewRegistry(nil)
	mars := r.Generate(core.PlanetMars, 5)
	earth := r.Generate(core.PlanetEarth, 5)

	if reflect.DeepEqual(mars.Rocks(), earth.Rocks()) {
		t.Error("different seed letters should give different layouts")
	}
}

func TestRockBoundsAndRadius(t *testing.T) {
	s := NewRegistry(nil).Generate(core.PlanetEarth, 200)
	half := FieldSize / 2

	for i, v := range s.Visuals() {
		rock := s.Rock(i)
		if math.Abs(rock.X) > half || math.Abs(rock.Z) > half {
			t.Errorf("rock %d at (%f, %f) outside the field", i, rock.X, rock.Z)
		}

		want := (v.ScaleX+v.ScaleZ)/2*radiusFactor + radiusPadding
		if rock.Radius != want {
			t.Errorf("rock %d radius = %f, expected %f", i, rock.Radius, want)
		}

		// base in [0.3, 1.5], sx and sz within [0.8, 1.2] of it.
		if v.ScaleX < 0.3*0.8 || v.ScaleX > 1.5*1.2 {
			t.Errorf("rock %d ScaleX = %f out of range", i, v.ScaleX)
		}
		if v.Rotation < 0 || v.Rotation >= 2*math.Pi {
			t.Errorf("rock %d rotation = %f out of range", i, v.Rotation)
		}
	}
}

func TestVisualsSitOnTerrain(t *testing.T) {
	calls := 0
	height := func(x, z float64, planet string) float64 {
		calls++
		return 7
	}

	s := NewRegistry(height).Generate(core.PlanetMoon, 12)
	if calls != 12 {
		t.Errorf("height should be queried once per rock, got %d", calls)
	}
	for i, v := range s.Visuals() {
		if v.Y != 7 {
			t.Errorf("visual %d Y = %f, expected terrain height 7", i, v.Y)
		}
	}
}

func TestSeedFor(t *testing.T) {
	tests := []struct {
		planet string
		want   int64
	}{
		{"mars", 42 + 'm'},
		{"moon", 42 + 'm'},
		{"earth", 42 + 'e'},
		{"", 42},
	}
	for _, tc := range tests {
		if got := seedFor(tc.planet); got != tc.want {
			t.Errorf("seedFor(%q) = %d, expected %d", tc.planet, got, tc.want)
		}
	}
}

func TestLCGRange(t *testing.T) {
	g := newLCG(seedFor("mars"))
	for i := 0; i < 10000; i++ {
		v := g.next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d = %f outside [0, 1)", i, v)
		}
	}
}

func TestNearMatchesLinearScan(t *testing.T) {
	s := NewRegistry(nil).Generate(core.PlanetMars, DefaultCount)
	const reach = 1.3

	for x := -80.0; x <= 80; x += 4.5 {
		for z := -80.0; z <= 80; z += 4.5 {
			candidates := s.Near(x, z, reach)

			for i := 1; i < len(candidates); i++ {
				if candidates[i] <= candidates[i-1] {
					t.Fatalf("Near(%f,%f) not ascending: %v", x, z, candidates)
				}
			}

			inCandidates := make(map[int]bool, len(candidates))
			for _, c := range candidates {
				inCandidates[c] = true
			}
			for i := 0; i < s.Len(); i++ {
				r := s.Rock(i)
				if math.Hypot(x-r.X, z-r.Z) < reach+r.Radius && !inCandidates[i] {
					t.Fatalf("rock %d overlaps (%f,%f) but Near missed it", i, x, z)
				}
			}
		}
	}
}

func TestNewSet(t *testing.T) {
	s := NewSet([]Rock{{X: 1, Z: 2, Radius: 0.5}, {X: -3, Z: 0, Radius: 1.5}})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	if s.MaxRadius() != 1.5 {
		t.Errorf("MaxRadius() = %f, expected 1.5", s.MaxRadius())
	}
	if got := s.Near(1, 2, 0.1); len(got) != 1 || got[0] != 0 {
		t.Errorf("Near(1,2) = %v, expected [0]", got)
	}

	empty := NewSet(nil)
	if empty.Near(0, 0, 5) != nil {
		t.Error("empty set should have no neighbours")
	}
}
