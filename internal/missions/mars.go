package missions

import "github.com/vovakirdan/rover-playground/internal/core"

func init() {
	register(core.Descriptor{
		ID:         core.PlanetMars,
		Name:       "Mars: Sinkhole Traverse",
		Mission:    "Cross the canyon to the sample cache. Probe the edge of the sinkhole on the way, but do not fall in.",
		Difficulty: core.DifficultyAdvanced,
		Start:      core.Vec3{X: -40, Z: 55},
		Target:     core.Vec3{X: 50, Z: -45},
		Terrain:    true,
		RockCount:  rockField,
		Objectives: []core.Objective{
			{Task: "Skirt the sinkhole and drive out", Kind: core.ObjectiveHazard},
			{Task: "Log 120 m on the odometer", Kind: core.ObjectiveDistance, Value: 120},
			reach("Reach the sample cache"),
		},
	})
}
