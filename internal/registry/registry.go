// Package registry maps variant ids to game factories. A registry is built
// from the loaded configuration, allowing the platform to discover and
// instantiate variants without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrUnknownGame is returned by Create for an id that was never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the variant identifier (e.g., "classic", "fixed").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Offer feeds a key press between ticks. It returns true when the
	// platform should step right away instead of waiting for the timer.
	Offer(a core.Action) bool

	// Delay is how long the platform waits before the next tick.
	Delay() time.Duration

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// Snapshot returns a read-only copy of the simulation.
	Snapshot() snake.Snapshot

	// State returns the current game state (score, game over, won).
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID     string
	Title  string
	Width  int
	Height int
	Policy string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry holds the playable variants.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	info      map[string]GameInfo
	def       string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		info:      make(map[string]GameInfo),
	}
}

// Register adds a game factory to the registry. The first registered id
// becomes the default until SetDefault is called.
func (r *Registry) Register(info GameInfo, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info.ID == "" {
		return errors.New("registry: empty game id")
	}
	if _, exists := r.factories[info.ID]; exists {
		return fmt.Errorf("registry: game %q already registered", info.ID)
	}

	r.factories[info.ID] = f
	r.info[info.ID] = info
	if r.def == "" {
		r.def = info.ID
	}
	return nil
}

// SetDefault selects the variant created for an empty id.
func (r *Registry) SetDefault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[id]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	r.def = id
	return nil
}

// Default returns the default variant id.
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// List returns information about all registered games, sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.info))
	for _, info := range r.info {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID. An empty id creates the default.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id == "" {
		id = r.def
	}
	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}
