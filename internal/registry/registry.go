// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games contain pure simulation and rendering logic with no terminal
// dependencies. The frame driver handles the clock, input and presentation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy", "pong").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Init loads configuration, seeds the game's generator and starts a
	// fresh game sized to the surface in cfg. Called once.
	Init(cfg core.RuntimeConfig)

	// Resize adopts new surface dimensions (in pixels) and fully resets
	// the game without reseeding.
	Resize(w, h int)

	// Step advances the simulation by dt seconds using the frame's input.
	// The game clamps dt to its own maximum step.
	Step(dt float64, in *core.Tracker) core.StepResult

	// Render paints the current state into dst. It never mutates the game.
	Render(dst *core.Screen)

	// State returns the current externally visible status.
	State() core.GameState

	// Pacing returns the frame rate policy the driver should apply.
	// Before Init it reports the game's built-in defaults.
	Pacing() config.FrameConfig
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
