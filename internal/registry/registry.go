// Package registry provides a global registry for bot strategies.
// Bots register themselves in init() functions, allowing the CLI and the
// preview to list and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/pong"
)

// Bot decides paddle commands for one player from the observable game state.
// Bots contain pure logic; the caller turns commands into sensor readings.
type Bot interface {
	// ID returns a unique identifier for this bot (e.g., "tracker").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Decide returns the command for player p given the current snapshot.
	Decide(s pong.Snapshot, p core.Player) core.Command
}

// SkillFunc returns a bot's skill in [0, 1] given its opponent's score and
// the current tick.
type SkillFunc func(opponentScore int, tick uint64) float64

// FixedSkill returns a SkillFunc that never changes.
func FixedSkill(level float64) SkillFunc {
	return func(int, uint64) float64 { return level }
}

// Options configures a new bot instance.
type Options struct {
	Skill SkillFunc
	Seed  int64
}

// BotInfo contains metadata about a registered bot.
type BotInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a bot.
type Factory func(opts Options) Bot

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a bot factory to the registry.
// Panics if a bot with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: bot %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Options{Skill: FixedSkill(1)}).Title()
}

// List returns information about all registered bots, sorted by ID.
func List() []BotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BotInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a bot by its ID.
// A nil Skill in opts means full skill.
func Create(id string, opts Options) (Bot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown bot %q", id)
	}
	if opts.Skill == nil {
		opts.Skill = FixedSkill(1)
	}

	return f(opts), nil
}

// Exists checks if a bot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
