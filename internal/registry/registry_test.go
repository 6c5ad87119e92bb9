package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/rover-playground/internal/core"
)

func register(t *testing.T, d core.Descriptor) {
	t.Helper()
	Register(d)
	t.Cleanup(func() { unregister(d.ID) })
}

func TestRegisterAndGet(t *testing.T) {
	register(t, core.Descriptor{
		ID:         "test-dunes",
		Name:       "Test Dunes",
		Difficulty: core.DifficultyBeginner,
		Target:     core.Vec3{X: 10},
		Objectives: []core.Objective{{Task: "go", Kind: core.ObjectiveReach}},
	})

	if !Exists("test-dunes") {
		t.Fatal("Exists() = false after Register")
	}

	d, err := Get("test-dunes")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if d.Name != "Test Dunes" || d.Target.X != 10 {
		t.Errorf("Get() = %+v", d)
	}

	d.Objectives[0].Done = true
	again, _ := Get("test-dunes")
	if again.Objectives[0].Done {
		t.Error("mutating a returned descriptor changed the registry")
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-world")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Get() error = %v, want ErrUnknown", err)
	}
	if Exists("no-such-world") {
		t.Error("Exists() = true for unknown id")
	}
}

func TestListSorted(t *testing.T) {
	register(t, core.Descriptor{ID: "test-zz", Name: "Z"})
	register(t, core.Descriptor{ID: "test-aa", Name: "A"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}

	found := 0
	for _, info := range list {
		if info.ID == "test-zz" || info.ID == "test-aa" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("List() contained %d test entries, want 2", found)
	}
}

func TestRegisterPanics(t *testing.T) {
	register(t, core.Descriptor{ID: "test-dup"})

	tests := []struct {
		name string
		d    core.Descriptor
	}{
		{"duplicate", core.Descriptor{ID: "test-dup"}},
		{"empty id", core.Descriptor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register(tt.d)
		})
	}
}
