// Package engine wires the assembly core together: one Context owns the
// component, hull, and class catalogs, the content loader with its
// hot-reload indexes, the assembler, and the designer session manager.
//
// There is no package-level mutable state. Tests construct a fresh Context
// per case; the CLI and the serve loop share one per process.
package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/novaengine/shipwright/internal/assembly"
	"github.com/novaengine/shipwright/internal/catalog"
	"github.com/novaengine/shipwright/internal/config"
	"github.com/novaengine/shipwright/internal/content"
	"github.com/novaengine/shipwright/internal/designer"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/shipclass"
)

// Context is the engine's composition root. Construct with New, then Init
// exactly once before assembling.
type Context struct {
	cfg *config.Config

	components *catalog.ComponentCatalog
	hulls      *catalog.HullCatalog
	classes    *shipclass.Catalog

	loader    *content.Loader
	assembler *assembly.Assembler
	designs   *designer.Manager

	mu          sync.Mutex
	initialized bool
	lastSummary *LoadSummary
}

// errNotInitialized guards reload calls against a context that never ran
// Init.
var errNotInitialized = errors.New("engine context is not initialized")

// New builds an uninitialized context over the given configuration.
// Defaults are applied to unset config fields. The content schema is
// compiled here, so New fails only on a broken embedded schema.
func New(cfg *config.Config) (*Context, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	} else {
		cfg.WithDefaults()
	}

	loader, err := content.NewLoader()
	if err != nil {
		return nil, err
	}

	components := catalog.NewComponentCatalog()
	hulls := catalog.NewHullCatalog()
	assembler := assembly.New(components, hulls,
		assembly.WithSuggestionLimit(cfg.Suggestions.Limit))

	return &Context{
		cfg:        cfg,
		components: components,
		hulls:      hulls,
		classes:    shipclass.NewCatalog(),
		loader:     loader,
		assembler:  assembler,
		designs:    designer.NewManager(assembler, cfg.Assets.Designs),
	}, nil
}

// LoadSummary reports what one Init or ReloadTick pass did per content
// kind. Nil reports mean the pass did not touch that kind.
type LoadSummary struct {
	Components *content.Report
	Hulls      *content.Report
	Classes    *content.Report
}

// Errors flattens the load errors of all three reports, in
// components/hulls/classes order.
func (s *LoadSummary) Errors() []error {
	var out []error
	for _, r := range []*content.Report{s.Components, s.Hulls, s.Classes} {
		if r != nil {
			out = append(out, r.Errors()...)
		}
	}
	return out
}

// Init loads the content tree into the catalogs, falling back to the
// built-in defaults for any catalog the content tree leaves empty. Init is
// exactly-once: repeated calls return the first call's summary without
// reloading.
//
// Load failures never fail Init; they are skipped, logged, and reported on
// the summary per the content pipeline policy. The engine is playable with
// no content on disk at all.
func (c *Context) Init(ctx context.Context) (*LoadSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return c.lastSummary, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &LoadSummary{
		Components: c.loader.LoadComponents(c.cfg.Assets.Components, c.components),
		Hulls:      c.loader.LoadHulls(c.cfg.Assets.Ships, c.hulls),
		Classes:    c.loader.LoadClassEntries(c.cfg.Assets.Ships, c.classes),
	}

	c.components.EnsureDefaults()
	c.hulls.EnsureDefaults()
	c.classes.EnsureDefaults()

	output.Debug("engine initialized",
		"components", c.components.Len(),
		"hulls", c.hulls.Len(),
		"classes", c.classes.Len(),
	)

	c.initialized = true
	c.lastSummary = summary
	return summary, nil
}

// ReloadTick polls the content directories and atomically rebuilds any
// catalog whose backing files changed. It reports whether any catalog was
// rebuilt; callers watching Generation can push updates downstream.
//
// The tick blocks on filesystem metadata and file reads; run it off the
// frame-critical path.
func (c *Context) ReloadTick(ctx context.Context) (bool, *LoadSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return false, nil, errNotInitialized
	}
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}

	summary := &LoadSummary{}
	changed := false

	if rebuilt, report := c.loader.ReloadComponents(c.cfg.Assets.Components, c.components); rebuilt {
		summary.Components = report
		changed = true
	}
	if rebuilt, report := c.loader.ReloadHulls(c.cfg.Assets.Ships, c.hulls); rebuilt {
		summary.Hulls = report
		changed = true
	}
	if rebuilt, report := c.loader.ReloadClassEntries(c.cfg.Assets.Ships, c.classes); rebuilt {
		summary.Classes = report
		changed = true
	}

	if changed {
		output.Info("content reloaded",
			"components", c.components.Len(),
			"hulls", c.hulls.Len(),
			"classes", c.classes.Len(),
			"generation", c.generationLocked(),
		)
	}
	return changed, summary, nil
}

// Generation identifies the combined catalog state. Any reload that
// changes any catalog changes the generation; assembly results remember
// the generation they were built against.
func (c *Context) Generation() uint64 {
	return c.components.Generation() + c.hulls.Generation() + c.classes.Generation()
}

func (c *Context) generationLocked() uint64 {
	// Catalog generations have their own locks; c.mu only serializes
	// load passes.
	return c.Generation()
}

// Components returns the component catalog.
func (c *Context) Components() *catalog.ComponentCatalog { return c.components }

// Hulls returns the hull catalog.
func (c *Context) Hulls() *catalog.HullCatalog { return c.hulls }

// Classes returns the ship class catalog.
func (c *Context) Classes() *shipclass.Catalog { return c.classes }

// Assembler returns the assembler bound to this context's catalogs.
func (c *Context) Assembler() *assembly.Assembler { return c.assembler }

// Designs returns the designer session manager.
func (c *Context) Designs() *designer.Manager { return c.designs }

// Config returns the resolved configuration the context was built with.
func (c *Context) Config() *config.Config { return c.cfg }

// Shutdown releases context-owned state. Held assembly results stay
// readable; they reference blueprints the catalogs still own.
func (c *Context) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = false
	c.lastSummary = nil
}
