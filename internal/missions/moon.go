package missions

import "github.com/vovakirdan/rover-playground/internal/core"

func init() {
	register(core.Descriptor{
		ID:         core.PlanetMoon,
		Name:       "Moon: Crater Descent",
		Mission:    "Low gravity and little grip. Ease down into the southeast crater without bouncing off the rim.",
		Difficulty: core.DifficultyIntermediate,
		Start:      core.Vec3{X: -10, Z: 60},
		Target:     core.Vec3{X: 40, Z: -35},
		Terrain:    true,
		RockCount:  rockField,
		Objectives: []core.Objective{
			{Task: "Reach 25 km/h", Kind: core.ObjectiveSpeed, Value: 25},
			reach("Stop at the crater floor"),
		},
	})
}
