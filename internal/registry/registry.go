// Package registry is the global table of playable modes. Each mode
// registers a factory from its init function; menus, the CLI and the SSH
// server discover and create modes through it.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/numbermatch/internal/core"
)

// Game is the core interface that every game must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "numbermatch").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Number Match").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Select, Confirm, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that adapt to terminal resizes in place.
// Games without it are reset with the new dimensions.
type Resizer interface {
	Resize(w, h int)
}

// Controller is implemented by games that describe their key bindings.
type Controller interface {
	Controls() string
}

// Scoreboarded is implemented by games that keep several score boards,
// e.g. one per difficulty. BoardID is valid after Reset.
type Scoreboarded interface {
	BoardID() string
}

// Progressive is implemented by games with a persisted progress record.
// AcceptedConsumables marks the purchased power-up kinds a session can use.
type Progressive interface {
	ProgressKey() string
	AcceptedConsumables() core.Consumables
}

// BoardID returns the score board of g: its BoardID when it keeps
// several boards, its ID otherwise.
func BoardID(g Game) string {
	if s, ok := g.(Scoreboarded); ok {
		return s.BoardID()
	}
	return g.ID()
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
	// ProgressKey is the progress record the game reads and writes, empty
	// for games without one. Several games may share a record.
	ProgressKey string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for ids nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory, typically from the game's init function.
// A throwaway instance supplies the title and progress key.
// Panics if the id is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if p, ok := g.(Progressive); ok {
		info.ProgressKey = p.ProgressKey()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// ProgressKeyOf returns the progress record of a game. Unregistered games
// and games without a record fall back to their id.
func ProgressKeyOf(id string) string {
	if info, ok := Lookup(id); ok && info.ProgressKey != "" {
		return info.ProgressKey
	}
	return id
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
