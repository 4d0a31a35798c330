package catalog

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// HullCatalog is the hull blueprint registry. Concurrency and pointer
// semantics match ComponentCatalog.
type HullCatalog struct {
	mu    sync.RWMutex
	items []*ship.HullBlueprint
	byID  map[string]int

	generation uint64
	defaults   sync.Once

	logger *log.Logger
}

// NewHullCatalog returns an empty hull catalog.
func NewHullCatalog() *HullCatalog {
	return &HullCatalog{
		byID:   make(map[string]int),
		logger: output.CatalogLogger("hulls"),
	}
}

// Find returns the hull with the given id, or nil when none is registered.
func (c *HullCatalog) Find(id string) *ship.HullBlueprint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i, ok := c.byID[id]; ok {
		return c.items[i]
	}
	return nil
}

// Get returns the hull with the given id, or a not-found error.
func (c *HullCatalog) Get(id string) (*ship.HullBlueprint, error) {
	if hull := c.Find(id); hull != nil {
		return hull, nil
	}
	return nil, serrors.NewNotFoundError(
		fmt.Sprintf("hull %q is not registered", id),
		"",
		"run 'shipwright catalog list' to see registered hull ids",
	)
}

// All returns every hull in insertion order. The slice is a copy; the
// pointed-to hulls are shared and must not be mutated.
func (c *HullCatalog) All() []*ship.HullBlueprint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*ship.HullBlueprint, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of registered hulls.
func (c *HullCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Register adds a hull. An existing entry with the same id is overwritten
// (last writer wins, insertion position kept) with a logged warning.
// Reports whether an entry was overwritten.
func (c *HullCatalog) Register(hull ship.HullBlueprint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaced := c.insert(hull)
	c.generation++
	return replaced
}

// insert requires c.mu held for writing.
func (c *HullCatalog) insert(hull ship.HullBlueprint) bool {
	cp := hull
	if i, ok := c.byID[hull.ID]; ok {
		c.logger.Warn("duplicate hull id, overwriting", "id", hull.ID)
		c.items[i] = &cp
		return true
	}
	c.byID[hull.ID] = len(c.items)
	c.items = append(c.items, &cp)
	return false
}

// Replace swaps the whole catalog content in one step.
func (c *HullCatalog) Replace(items []ship.HullBlueprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]*ship.HullBlueprint, 0, len(items))
	c.byID = make(map[string]int, len(items))
	for _, hull := range items {
		c.insert(hull)
	}
	c.generation++
}

// Clear removes every entry. It does not re-arm EnsureDefaults.
func (c *HullCatalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.byID = make(map[string]int)
	c.generation++
}

// Generation returns a counter that increases with every mutation.
func (c *HullCatalog) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// EnsureDefaults registers the built-in hulls when the catalog is empty.
// At most one call has any effect over the catalog's lifetime.
func (c *HullCatalog) EnsureDefaults() {
	c.defaults.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if len(c.items) > 0 {
			return
		}
		for _, hull := range DefaultHulls() {
			c.insert(hull)
		}
		c.generation++
		c.logger.Info("registered fallback hulls", "count", len(c.items))
	})
}
