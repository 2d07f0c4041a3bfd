// Package registry provides the global character catalog.
// Characters register themselves in init() functions, allowing the platform
// and the simulation to look them up without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/neatza-runners/internal/core"
)

// Character is an immutable catalog entry. One character is picked as the
// player, the rest of the catalog forms the obstacle palette of the run.
type Character struct {
	ID          string     // Unique identifier (e.g., "ramona")
	Name        string     // Short display name (e.g., "Ramona")
	FullName    string     // Name shown on the select screen
	Trait       string     // Flavor text
	Color       core.Color // Terminal cell color
	Hex         string     // True color for lipgloss styles
	Width       float64    // Size in world units
	Height      float64
	Special     string // Special ability name
	SpecialDesc string // One-line ability description
}

var (
	characters []Character
	byID       = make(map[string]int)
	mu         sync.RWMutex
)

// Register adds a character to the catalog.
// Typically called from an init() function.
// Panics if a character with the same ID is already registered.
func Register(c Character) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[c.ID]; exists {
		panic(fmt.Sprintf("registry: character %q already registered", c.ID))
	}

	byID[c.ID] = len(characters)
	characters = append(characters, c)
}

// List returns all registered characters in registration order.
func List() []Character {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Character, len(characters))
	copy(result, characters)
	return result
}

// Get returns the character with the given ID.
// Returns an error if the ID is not registered.
func Get(id string) (Character, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return Character{}, fmt.Errorf("registry: unknown character %q", id)
	}

	return characters[i], nil
}


// Palette returns every registered character except the one with excludeID,
// in registration order. This is the obstacle palette for a run.
func Palette(excludeID string) []Character {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Character, 0, len(characters))
	for _, c := range characters {
		if c.ID != excludeID {
			result = append(result, c)
		}
	}
	return result
}
