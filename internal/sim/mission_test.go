package sim

import (
	"testing"

	"github.com/vovakirdan/rover-playground/internal/core"
)

func TestMissionHazardNeedsEscape(t *testing.T) {
	m := NewMission([]core.Objective{{Task: "Cross the sinkhole", Kind: core.ObjectiveHazard}})

	steps := []struct {
		inHazard bool
		wantDone bool
	}{
		{false, false},
		{true, false},
		{true, false},
		{false, true},
		{true, true},
	}
	for i, st := range steps {
		m.Update(Telemetry{InHazard: st.inHazard}, 3)
		if got := m.Objectives()[0].Done; got != st.wantDone {
			t.Errorf("step %d: done = %v, want %v", i, got, st.wantDone)
		}
	}
}

func TestMissionUpdateReportsNewlyDone(t *testing.T) {
	m := NewMission([]core.Objective{
		{Task: "reach", Kind: core.ObjectiveReach},
		{Task: "drive", Kind: core.ObjectiveDistance, Value: 10},
		{Task: "speed", Kind: core.ObjectiveSpeed, Value: 20},
	})

	if got := m.Update(Telemetry{DistanceToTarget: 50, Odometer: 12, Speed: 5}, 3); len(got) != 1 || got[0] != 1 {
		t.Errorf("first update = %v, want [1]", got)
	}
	if got := m.Update(Telemetry{DistanceToTarget: 2, Odometer: 13, Speed: 25}, 3); len(got) != 2 {
		t.Errorf("second update = %v, want [0 2]", got)
	}
	if got := m.Update(Telemetry{DistanceToTarget: 50}, 3); len(got) != 0 {
		t.Errorf("third update = %v, want none", got)
	}
	if !m.Complete() {
		t.Error("mission should be complete")
	}
}

func TestMissionEmpty(t *testing.T) {
	m := NewMission(nil)
	m.Update(Telemetry{TargetReached: true}, 3)

	if m.Complete() {
		t.Error("empty mission should never complete on its own")
	}
	if done, total := m.Progress(); done != 0 || total != 0 {
		t.Errorf("Progress() = %d/%d", done, total)
	}
}
