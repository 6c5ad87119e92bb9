// Package registry provides a global registry of simulation descriptors.
// Missions register themselves in init() functions, allowing the platform
// to discover planets without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/rover-playground/internal/core"
)

// ErrUnknown is returned when a simulation id is not registered.
var ErrUnknown = errors.New("registry: unknown simulation")

// Info contains listing metadata about a registered simulation.
type Info struct {
	ID         string
	Name       string
	Difficulty core.Difficulty
}

var (
	descriptors = make(map[string]core.Descriptor)
	mu          sync.RWMutex
)

// Register adds a descriptor to the registry.
// Typically called from a mission's init() function.
// Panics if the id is empty or already registered.
func Register(d core.Descriptor) {
	mu.Lock()
	defer mu.Unlock()

	if d.ID == "" {
		panic("registry: descriptor without id")
	}
	if _, exists := descriptors[d.ID]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", d.ID))
	}

	d.Objectives = d.CloneObjectives()
	descriptors[d.ID] = d
}

// List returns information about all registered simulations, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(descriptors))
	for id, d := range descriptors {
		result = append(result, Info{
			ID:         id,
			Name:       d.Name,
			Difficulty: d.Difficulty,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the descriptor registered under id.
// The returned objectives are a private copy.
func Get(id string) (core.Descriptor, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := descriptors[id]
	if !ok {
		return core.Descriptor{}, fmt.Errorf("%w %q", ErrUnknown, id)
	}

	d.Objectives = d.CloneObjectives()
	return d, nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := descriptors[id]
	return ok
}

// unregister removes id. Used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(descriptors, id)
}
