// Package registry provides a global registry of touch-capture strategies.
// Strategies register themselves in init() functions, allowing the platform
// to pick one by name or by platform without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/balloon-quiz/internal/balloon"
	"github.com/vovakirdan/balloon-quiz/internal/config"
)

// Info contains metadata about a registered strategy.
type Info struct {
	Name        string
	Description string
}

// Factory creates a fresh strategy instance. Strategies hold per-session
// state, so every game gets its own.
type Factory func() balloon.Strategy

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", name))
	}
	entries[name] = entry{factory: f, description: description}
}

// List returns information about all registered strategies, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for name, e := range entries {
		result = append(result, Info{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates a strategy by name.
func Create(name string) (balloon.Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", name)
	}
	return e.factory(), nil
}

// Exists checks if a strategy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}

// ForPlatform returns the strategy name used on a platform (a GOOS value
// or a device family such as "ios" or "android").
func ForPlatform(platform string) string {
	switch platform {
	case "darwin", "ios":
		return config.TouchInline
	default:
		return config.TouchOverlay
	}
}

// Resolve turns a touch setting into a strategy. "auto" or empty defers
// to ForPlatform.
func Resolve(touch, platform string) (balloon.Strategy, error) {
	if touch == "" || touch == config.TouchAuto {
		touch = ForPlatform(platform)
	}
	return Create(touch)
}
