package missions

import (
	"testing"

	"github.com/vovakirdan/rover-playground/internal/config"
	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/rover"
	"github.com/vovakirdan/rover-playground/internal/terrain"
)

func TestBuiltinsRegistered(t *testing.T) {
	if len(registry.List()) < len(IDs) {
		t.Fatalf("registry has %d entries, want at least %d", len(registry.List()), len(IDs))
	}
	for _, id := range IDs {
		if !registry.Exists(id) {
			t.Errorf("%q not registered", id)
		}
	}
}

func TestDescriptorsArePlayable(t *testing.T) {
	physics := config.DefaultPhysicsConfig()

	for _, id := range IDs {
		t.Run(id, func(t *testing.T) {
			d, err := registry.Get(id)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}

			if d.Name == "" || d.Mission == "" {
				t.Error("missing name or mission text")
			}
			for _, p := range []core.Vec3{d.Start, d.Target} {
				if p.X < -rover.WorldLimit || p.X > rover.WorldLimit || p.Z < -rover.WorldLimit || p.Z > rover.WorldLimit {
					t.Errorf("point %+v outside the world", p)
				}
			}
			if core.PlanarDistance(d.Start, d.Target) < 2*physics.Limits.TargetRadius {
				t.Error("start is already at the target")
			}
			if _, ok := physics.Planets[id]; !ok {
				t.Errorf("no tuning row for %q", id)
			}

			hasReach := false
			for _, o := range d.Objectives {
				if o.Kind == core.ObjectiveReach {
					hasReach = true
				}
				if o.Done {
					t.Errorf("objective %q starts done", o.Task)
				}
			}
			if !hasReach {
				t.Error("no reach objective")
			}
		})
	}
}

func TestStartsOutsideHazards(t *testing.T) {
	for _, id := range IDs {
		d, _ := registry.Get(id)
		if h, in := terrain.InHazard(d.Start.X, d.Start.Z, id); in {
			t.Errorf("%s starts inside %s", id, h.Name)
		}
	}
}

func TestHumanoidHasNoTerrain(t *testing.T) {
	d, _ := registry.Get(core.PlanetHumanoid)
	if d.Terrain || d.RockCount != 0 {
		t.Errorf("humanoid = terrain %v rocks %d, want flat and empty", d.Terrain, d.RockCount)
	}
	if _, flat := terrain.ForDescriptor(d).(terrain.Flat); !flat {
		t.Error("humanoid should drive on flat ground")
	}
}
