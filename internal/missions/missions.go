// Package missions registers the built-in simulation variants.
// Import it for its side effects:
//
//	import _ "github.com/vovakirdan/rover-playground/internal/missions"
package missions

import (
	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/obstacles"
	"github.com/vovakirdan/rover-playground/internal/registry"
)

// IDs lists the built-in variants in menu order.
var IDs = []string{core.PlanetEarth, core.PlanetMoon, core.PlanetMars, core.PlanetHumanoid}

// rockField is the obstacle count every terrain variant uses.
const rockField = obstacles.DefaultCount

func reach(task string) core.Objective {
	return core.Objective{Task: task, Kind: core.ObjectiveReach}
}

func register(d core.Descriptor) {
	registry.Register(d)
}
