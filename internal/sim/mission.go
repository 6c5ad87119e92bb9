package sim

import (
	"sync"

	"github.com/vovakirdan/rover-playground/internal/core"
)

// Mission tracks objective progress for one session.
type Mission struct {
	mu         sync.Mutex
	objectives []core.Objective
	inHazard   bool
	visited    bool
}

// NewMission starts tracking a fresh copy of objs.
func NewMission(objs []core.Objective) *Mission {
	d := core.Descriptor{Objectives: objs}
	return &Mission{objectives: d.CloneObjectives()}
}

// Update evaluates objectives against the latest telemetry and returns the
// indices that completed on this call. Completed objectives stay completed.
func (m *Mission) Update(t Telemetry, targetRadius float64) []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	// A hazard run counts once the rover has been inside a zone and come out.
	if t.InHazard {
		m.visited = true
	}
	escaped := m.visited && m.inHazard && !t.InHazard
	m.inHazard = t.InHazard

	var done []int
	for i := range m.objectives {
		o := &m.objectives[i]
		if o.Done {
			continue
		}

		switch o.Kind {
		case core.ObjectiveReach:
			o.Done = t.TargetReached || t.DistanceToTarget < targetRadius
		case core.ObjectiveDistance:
			o.Done = t.Odometer >= o.Value
		case core.ObjectiveSpeed:
			o.Done = t.Speed >= o.Value
		case core.ObjectiveHazard:
			o.Done = escaped
		}
		if o.Done {
			done = append(done, i)
		}
	}
	return done
}

// Objectives returns a snapshot of objective progress.
func (m *Mission) Objectives() []core.Objective {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]core.Objective, len(m.objectives))
	copy(out, m.objectives)
	return out
}

// Progress returns how many objectives are done out of the total.
func (m *Mission) Progress() (done, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.objectives {
		if o.Done {
			done++
		}
	}
	return done, len(m.objectives)
}

// Complete reports whether every objective is done. A mission without
// objectives is never complete on its own.
func (m *Mission) Complete() bool {
	done, total := m.Progress()
	return total > 0 && done == total
}
