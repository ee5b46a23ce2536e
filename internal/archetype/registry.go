// Package archetype provides a registry of named level archetypes.
// Each archetype is a preset over the generator configuration, so the CLI
// and viewers can offer "maze" or "arena" without hardcoding parameters.
package archetype

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mapgen/internal/config"
)

// Archetype describes a named layout style.
type Archetype struct {
	ID          string
	Title       string
	Description string

	// Apply adjusts cfg to produce this archetype. Grid size and seed are
	// left alone unless the archetype needs a specific footprint.
	Apply func(cfg *config.GeneratorConfig)
}

var (
	archetypes = make(map[string]Archetype)
	mu         sync.RWMutex
)

// Register adds an archetype to the registry.
// Panics if an archetype with the same ID is already registered.
func Register(a Archetype) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := archetypes[a.ID]; exists {
		panic(fmt.Sprintf("archetype: %q already registered", a.ID))
	}
	if a.Apply == nil {
		panic(fmt.Sprintf("archetype: %q has no Apply func", a.ID))
	}
	archetypes[a.ID] = a
}

// List returns all registered archetypes, sorted by ID.
func List() []Archetype {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Archetype, 0, len(archetypes))
	for _, a := range archetypes {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the archetype with the given ID.
func Get(id string) (Archetype, error) {
	mu.RLock()
	defer mu.RUnlock()

	a, ok := archetypes[id]
	if !ok {
		return Archetype{}, fmt.Errorf("archetype: unknown archetype %q", id)
	}
	return a, nil
}

// Exists checks if an archetype with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := archetypes[id]
	return ok
}

// Apply applies the named archetype to cfg and records it there.
// An empty id leaves cfg untouched.
func Apply(cfg *config.GeneratorConfig, id string) error {
	if id == "" {
		return nil
	}
	a, err := Get(id)
	if err != nil {
		return err
	}
	a.Apply(cfg)
	cfg.Archetype = id
	return nil
}
