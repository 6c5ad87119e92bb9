package missions

import "github.com/vovakirdan/rover-playground/internal/core"

func init() {
	register(core.Descriptor{
		ID:         core.PlanetEarth,
		Name:       "Earth: Valley Proving Ground",
		Mission:    "Shake down the rover on familiar ground. Follow the river valley west to the survey marker.",
		Difficulty: core.DifficultyBeginner,
		Start:      core.Vec3{X: 0, Z: 70},
		Target:     core.Vec3{X: -50, Z: -20},
		Terrain:    true,
		RockCount:  rockField,
		Objectives: []core.Objective{
			{Task: "Hit 40 km/h on the flats", Kind: core.ObjectiveSpeed, Value: 40},
			{Task: "Log 80 m on the odometer", Kind: core.ObjectiveDistance, Value: 80},
			reach("Park at the survey marker"),
		},
	})
}
