package core

// ObjectiveKind selects how a mission objective is evaluated.
type ObjectiveKind string

const (
	ObjectiveReach    ObjectiveKind = "reach"    // get within the target radius
	ObjectiveDistance ObjectiveKind = "distance" // drive at least Value metres
	ObjectiveSpeed    ObjectiveKind = "speed"    // reach a display speed of Value
	ObjectiveHazard   ObjectiveKind = "hazard"   // enter a hazard zone and drive back out
)

// Objective is a single mission task and its completion flag.
type Objective struct {
	Task  string        `yaml:"task"`
	Kind  ObjectiveKind `yaml:"kind"`
	Value float64       `yaml:"value,omitempty"`
	Done  bool          `yaml:"done,omitempty"`
}

// Difficulty is the tier shown next to a mission.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Descriptor identifies one simulation variant. Descriptors are immutable once
// registered; consumers copy Objectives before tracking progress.
type Descriptor struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Mission    string      `yaml:"mission"`
	Difficulty Difficulty  `yaml:"difficulty"`
	Start      Vec3        `yaml:"start"`
	Target     Vec3        `yaml:"target"`
	Objectives []Objective `yaml:"objectives"`

	// Terrain is false for variants that run on flat ground (the humanoid lab).
	Terrain bool `yaml:"terrain"`

	// RockCount is the number of obstacles scattered over the terrain.
	RockCount int `yaml:"rock_count"`
}

// CloneObjectives returns a copy of the objectives with progress cleared.
func (d Descriptor) CloneObjectives() []Objective {
	out := make([]Objective, len(d.Objectives))
	for i, o := range d.Objectives {
		o.Done = false
		out[i] = o
	}
	return out
}

// Identifiers of the built-in simulation variants.
const (
	PlanetMars     = "mars"
	PlanetMoon     = "moon"
	PlanetEarth    = "earth"
	PlanetHumanoid = "humanoid"
)
