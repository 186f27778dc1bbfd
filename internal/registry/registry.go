// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the hosts
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hsmto25519/block-game/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every game implements. Games contain pure logic;
// hosts handle input mapping, frame pacing and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "dodger").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session. Called once at start and again when
	// the host restarts after game over.
	Reset(cfg core.RuntimeConfig)

	// Step processes one host frame: input first, then any simulation work
	// that is due.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer. It must not
	// change game state.
	Render(dst *core.Screen)

	// State returns the current summary (score, level, game over).
	State() core.GameState
}

// Options are the user choices forwarded to a factory.
type Options struct {
	ConfigPath string // custom config file, empty for the search path
	Difficulty string // difficulty preset name, empty for the config's own settings
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game. It fails when the options
// produce an unusable configuration.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
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
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(opts)
}
