// Package registry provides a global registry of world presets.
// A preset names a play field size; the platform lists presets and builds
// worlds from them without hardcoding dimensions.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/spacetris/internal/world"
)

// Preset describes one playable field.
type Preset struct {
	ID      string
	Title   string
	Rows    int
	Columns int
}

// DefaultID is the preset used when none is named.
const DefaultID = "classic"

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

func init() {
	Register(Preset{ID: "classic", Title: "Classic", Rows: 20, Columns: 10})
	Register(Preset{ID: "compact", Title: "Compact", Rows: 16, Columns: 10})
}

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered or the field is
// too small to spawn a piece.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", p.ID))
	}
	if p.Rows < 4 || p.Columns < 4 {
		panic(fmt.Sprintf("registry: world %q is too small (%dx%d)", p.ID, p.Rows, p.Columns))
	}
	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset with the given ID.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown world %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

// Create builds a world for the preset id. A zero Rows or Columns in cfg is
// taken from the preset; non-zero values are kept as overrides.
func Create(id string, cfg world.Config, opts ...world.Option) (*world.World, error) {
	p, err := Get(id)
	if err != nil {
		return nil, err
	}
	if cfg.Rows == 0 {
		cfg.Rows = p.Rows
	}
	if cfg.Columns == 0 {
		cfg.Columns = p.Columns
	}
	return world.New(cfg, opts...), nil
}
