package missions

import "github.com/vovakirdan/rover-playground/internal/core"

func init() {
	register(core.Descriptor{
		ID:         core.PlanetHumanoid,
		Name:       "Humanoid Gait Lab",
		Mission:    "Walk the test platform at a steady pace and stop on the far marker.",
		Difficulty: core.DifficultyBeginner,
		Start:      core.Vec3{},
		Target:     core.Vec3{Z: -25},
		Objectives: []core.Objective{
			{Task: "Reach walking pace of 10 km/h", Kind: core.ObjectiveSpeed, Value: 10},
			reach("Stop on the far marker"),
		},
	})
}
