// Package registry keeps the catalogue of playable game variants.
// Variants register a factory from init(), so frontends can build a game by
// ID without importing its package directly.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/vovakirdan/gravflip/internal/core"
)

// Game is what every frontend drives. Implementations hold pure simulation
// state: no terminal, window or audio handles.
type Game interface {
	// ID returns the unique identifier used on the command line and in
	// stored replays (e.g., "gravity").
	ID() string

	// Title returns a human-readable name (e.g., "Gravity Flip").
	Title() string

	// Reset starts a fresh session. Restarts after a death happen inside
	// Step, so Reset is normally called once.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared character buffer.
	Render(dst *core.Screen)

	// State returns the current score, phase and pause flag.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, un-reset game.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

type entry struct {
	factory Factory
	title   string
}

// Register adds a factory under id. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	ids := lo.Keys(entries)
	slices.Sort(ids)
	return lo.Map(ids, func(id string, _ int) GameInfo {
		return GameInfo{ID: id, Title: entries[id].title}
	})
}

// Create builds a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
