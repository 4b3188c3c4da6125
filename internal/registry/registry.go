// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate variants without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the interface every engine variant implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
// A Game is not safe for concurrent use; callers serialize Turn and Step.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh board for the given config. The game is Idle afterwards.
	Reset(cfg core.RuntimeConfig) error

	// Start performs the first food placement and moves the game to Running.
	Start() error

	// Turn delivers a directional intent. It takes effect on the next Step.
	Turn(d core.Direction)

	// Step advances the simulation by one fixed tick.
	Step() core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and game-over flag.
	State() core.GameState

	// Snapshot returns the read-only view for render collaborators.
	Snapshot() core.Snapshot

	// Turns returns every intent received so far, for replay.
	Turns() []core.Turn

	// Err returns the fatal condition that ended the run, if any.
	Err() error
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
	titles[id] = f().Title()
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

// NewRun creates, resets and starts a fresh game. Every restart goes through
// here so no state from a previous run is reused.
func NewRun(id string, cfg core.RuntimeConfig) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if err := g.Reset(cfg); err != nil {
		return nil, err
	}
	// A board that is full from the start is still returned so the caller can
	// render the terminal state.
	return g, g.Start()
}
