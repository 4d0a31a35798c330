package shipclass

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// Catalog is the class entry registry. Entries are kept ordered by id so All
// is deterministic across loads regardless of directory iteration order.
//
// All methods are safe for concurrent use. Pointers handed out by Find, Get,
// and All keep pointing at the entry values current at call time; Register
// and Replace swap in fresh values instead of mutating shared ones.
type Catalog struct {
	mu      sync.RWMutex
	entries []*Entry
	byID    map[string]int

	// violations holds taxonomy validation errors keyed by entry id, each
	// line prefixed with its source file path. A load pass updates only the
	// entries it registers, so layered loads keep the records of entries
	// they do not touch; Replace and Clear rebuild the whole map.
	violations map[string][]string

	generation uint64
	defaults   sync.Once

	logger *log.Logger
}

// NewCatalog returns an empty class catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID:       make(map[string]int),
		violations: make(map[string][]string),
		logger:     output.CatalogLogger("classes"),
	}
}

// Find returns the entry with the given id, or nil when none is registered.
func (c *Catalog) Find(id string) *Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i, ok := c.byID[id]; ok {
		return c.entries[i]
	}
	return nil
}

// Get returns the entry with the given id, or a not-found error.
func (c *Catalog) Get(id string) (*Entry, error) {
	if e := c.Find(id); e != nil {
		return e, nil
	}
	return nil, serrors.NewNotFoundError(
		fmt.Sprintf("ship class %q is not registered", id),
		"",
		"run 'shipwright class list' to see registered class ids",
	)
}

// All returns every entry ordered by id. The slice is a copy; the pointed-to
// entries are shared and must not be mutated.
func (c *Catalog) All() []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of registered entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Register adds an entry. An existing entry with the same id is overwritten
// (last writer wins) with a logged warning. Reports whether an entry was
// overwritten.
func (c *Catalog) Register(e Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaced := c.insert(e)
	c.generation++
	return replaced
}

// insert requires c.mu held for writing.
func (c *Catalog) insert(e Entry) bool {
	cp := e
	if i, ok := c.byID[e.ID]; ok {
		c.logger.Warn("duplicate class id, overwriting", "id", e.ID)
		c.entries[i] = &cp
		return true
	}
	c.entries = append(c.entries, &cp)
	c.resort()
	return false
}

// resort requires c.mu held for writing.
func (c *Catalog) resort() {
	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].ID < c.entries[j].ID })
	for i, e := range c.entries {
		c.byID[e.ID] = i
	}
}

// Replace swaps the whole catalog content and the violation list in one
// step. Hot reload uses this so readers never observe a partially rebuilt
// catalog. Duplicate ids within entries follow the Register overwrite rule.
func (c *Catalog) Replace(entries []Entry, violations map[string][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make([]*Entry, 0, len(entries))
	c.byID = make(map[string]int, len(entries))
	for _, e := range entries {
		c.insert(e)
	}
	c.violations = make(map[string][]string, len(violations))
	for id, v := range violations {
		c.record(id, v)
	}
	c.generation++
}

// RecordViolations replaces the recorded validation errors for one entry.
// An empty list clears the record, so re-registering a previously flagged
// entry in clean form removes its stale violations.
func (c *Catalog) RecordViolations(id string, violations []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record(id, violations)
}

// record requires c.mu held for writing.
func (c *Catalog) record(id string, violations []string) {
	if len(violations) == 0 {
		delete(c.violations, id)
		return
	}
	c.violations[id] = append([]string(nil), violations...)
}

// ValidationErrors returns every recorded taxonomy violation, path-prefixed,
// grouped by entry in id order.
func (c *Catalog) ValidationErrors() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.violations))
	for id := range c.violations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []string
	for _, id := range ids {
		out = append(out, c.violations[id]...)
	}
	return out
}

// Clear removes every entry and violation. It does not re-arm
// EnsureDefaults.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.byID = make(map[string]int)
	c.violations = make(map[string][]string)
	c.generation++
}

// Generation returns a counter that increases with every mutation.
func (c *Catalog) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// EnsureDefaults registers the built-in class entries when the catalog is
// empty. At most one call has any effect over the catalog's lifetime;
// concurrent callers block until the first completes.
func (c *Catalog) EnsureDefaults() {
	c.defaults.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if len(c.entries) > 0 {
			return
		}
		for _, e := range DefaultEntries() {
			c.insert(e)
		}
		c.generation++
		c.logger.Info("registered fallback class entries", "count", len(c.entries))
	})
}

// LoadoutRequest builds the assembly request for a class's named default
// loadout: the entry id as hull id, components assigned positionally onto
// the expanded slot ids.
func (c *Catalog) LoadoutRequest(classID, loadoutName string) (ship.AssemblyRequest, error) {
	entry, err := c.Get(classID)
	if err != nil {
		return ship.AssemblyRequest{}, err
	}
	loadout := entry.Loadout(loadoutName)
	if loadout == nil {
		return ship.AssemblyRequest{}, serrors.NewNotFoundError(
			fmt.Sprintf("ship class %q has no loadout %q", classID, loadoutName),
			"",
			"run 'shipwright class show "+classID+"' to see its loadouts",
		)
	}
	return buildLoadoutRequest(entry, loadout), nil
}
