// Package catalog holds the in-memory component and hull registries. Each
// engine context owns its own catalog instances; there is no package-level
// registry. Catalogs keep stable insertion order, hand out pointers to
// copies they own, and bump a generation counter on every mutation so hot
// reload is observable and stale assembly results are detectable.
package catalog

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// ComponentCatalog is the component blueprint registry.
//
// All methods are safe for concurrent use. Pointers handed out by Find,
// Get, and All keep pointing at the blueprint values that were current at
// call time; later Register or Replace calls swap in fresh values instead
// of mutating shared ones, and the generation counter tells callers their
// snapshot is stale.
type ComponentCatalog struct {
	mu    sync.RWMutex
	items []*ship.ComponentBlueprint
	byID  map[string]int

	generation uint64
	defaults   sync.Once

	logger *log.Logger
}

// NewComponentCatalog returns an empty component catalog.
func NewComponentCatalog() *ComponentCatalog {
	return &ComponentCatalog{
		byID:   make(map[string]int),
		logger: output.CatalogLogger("components"),
	}
}

// Find returns the blueprint with the given id, or nil when none is
// registered.
func (c *ComponentCatalog) Find(id string) *ship.ComponentBlueprint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i, ok := c.byID[id]; ok {
		return c.items[i]
	}
	return nil
}

// Get returns the blueprint with the given id, or a not-found error.
func (c *ComponentCatalog) Get(id string) (*ship.ComponentBlueprint, error) {
	if bp := c.Find(id); bp != nil {
		return bp, nil
	}
	return nil, serrors.NewNotFoundError(
		fmt.Sprintf("component %q is not registered", id),
		"",
		"run 'shipwright catalog list' to see registered component ids",
	)
}

// All returns every blueprint in insertion order. The slice is a copy; the
// pointed-to blueprints are shared and must not be mutated.
func (c *ComponentCatalog) All() []*ship.ComponentBlueprint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*ship.ComponentBlueprint, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of registered blueprints.
func (c *ComponentCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Register adds a blueprint. An existing entry with the same id is
// overwritten in place (last writer wins, insertion position kept) with a
// logged warning. Reports whether an entry was overwritten.
func (c *ComponentCatalog) Register(bp ship.ComponentBlueprint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaced := c.insert(bp)
	c.generation++
	return replaced
}

// insert requires c.mu held for writing.
func (c *ComponentCatalog) insert(bp ship.ComponentBlueprint) bool {
	cp := bp
	if i, ok := c.byID[bp.ID]; ok {
		c.logger.Warn("duplicate component id, overwriting", "id", bp.ID)
		c.items[i] = &cp
		return true
	}
	c.byID[bp.ID] = len(c.items)
	c.items = append(c.items, &cp)
	return false
}

// Replace swaps the whole catalog content in one step. Hot reload uses
// this so readers never observe a partially rebuilt catalog. Duplicate ids
// within items follow the Register overwrite rule.
func (c *ComponentCatalog) Replace(items []ship.ComponentBlueprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]*ship.ComponentBlueprint, 0, len(items))
	c.byID = make(map[string]int, len(items))
	for _, bp := range items {
		c.insert(bp)
	}
	c.generation++
}

// Clear removes every entry. It does not re-arm EnsureDefaults.
func (c *ComponentCatalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.byID = make(map[string]int)
	c.generation++
}

// Generation returns a counter that increases with every mutation.
func (c *ComponentCatalog) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// EnsureDefaults registers the built-in component set when the catalog is
// empty. At most one call has any effect over the catalog's lifetime;
// concurrent callers block until the first completes.
func (c *ComponentCatalog) EnsureDefaults() {
	c.defaults.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if len(c.items) > 0 {
			return
		}
		for _, bp := range DefaultComponents() {
			c.insert(bp)
		}
		c.generation++
		c.logger.Info("registered fallback components", "count", len(c.items))
	})
}
