// Package assembly implements the ship assembly engine. Assemble resolves
// an AssemblyRequest against the component and hull catalogs, enforces the
// hard fit rules slot by slot, evaluates soft compatibility rules,
// aggregates whole-ship metrics, and attaches ranked repair suggestions to
// every failing slot.
//
// Assemble is a pure function of the request and the catalog snapshot it
// runs against: the same inputs produce the same diagnostics in the same
// order. Rule violations surface as diagnostics on the result, never as Go
// errors.
package assembly

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/novaengine/shipwright/internal/catalog"
	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// DefaultSuggestionLimit caps the ranked replacement candidates attached to
// one failing slot.
const DefaultSuggestionLimit = 5

// Option configures an Assembler.
type Option func(*Assembler)

// WithSuggestionLimit overrides the per-slot suggestion cap. Values below
// one are ignored.
func WithSuggestionLimit(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.suggestionLimit = n
		}
	}
}

// Assembler binds the assembly engine to one pair of catalogs. It holds no
// per-call state; a single Assembler is safe for concurrent Assemble calls.
type Assembler struct {
	components *catalog.ComponentCatalog
	hulls      *catalog.HullCatalog

	suggestionLimit int
	logger          *log.Logger
}

// New returns an assembler over the given catalogs.
func New(components *catalog.ComponentCatalog, hulls *catalog.HullCatalog, opts ...Option) *Assembler {
	a := &Assembler{
		components:      components,
		hulls:           hulls,
		suggestionLimit: DefaultSuggestionLimit,
		logger:          output.ScopedLogger("engine", "assembler"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble validates the request and builds the aggregate result.
//
// The diagnostic stream is emitted in a fixed order: hull resolution,
// per-slot checks in hull declaration order, orphan assignments, soft
// compatibility rules, performance warnings. Any Error diagnostic
// short-circuits before soft rules and aggregation, so an invalid result
// carries only the hull baseline metrics and no resolved components.
func (a *Assembler) Assemble(req ship.AssemblyRequest) *ship.AssemblyResult {
	result := &ship.AssemblyResult{
		Subsystems: make(map[ship.Category]*ship.SubsystemSummary),
		Generation: a.components.Generation() + a.hulls.Generation(),
	}

	hull := a.hulls.Find(req.HullID)
	if hull == nil {
		result.Diagnostics.Error(diag.CodeInvalidHullID, "Unknown hull id: "+req.HullID, "")
		return result
	}
	result.Hull = hull
	result.Metrics.SeedHull(hull)

	resolved := make(map[string]*ship.ComponentBlueprint, len(hull.Slots))

	// Manufacturers seen so far, in resolution order. Grows as the slot
	// loop advances so each slot's suggestions only prefer brands already
	// on the ship. A component that fails the category or size check still
	// counts: the player clearly owns it.
	var installed []string

	for i := range hull.Slots {
		slot := &hull.Slots[i]
		componentID, assigned := req.SlotAssignments[slot.SlotID]
		if !assigned {
			if slot.Required {
				result.Diagnostics.Error(diag.CodeSlotMissingRequiredComponent,
					fmt.Sprintf("Required %s has no assigned component.", describeSlot(slot)), slot.SlotID)
				a.suggest(&result.Diagnostics, slot, "Required slot empty", installed)
			} else {
				result.Diagnostics.Warning(diag.CodeSlotMissingRequiredComponent,
					fmt.Sprintf("Optional %s left unfilled.", describeSlot(slot)), slot.SlotID)
			}
			continue
		}

		bp := a.components.Find(componentID)
		if bp == nil {
			result.Diagnostics.Error(diag.CodeComponentNotFound,
				fmt.Sprintf("Unknown component id '%s' assigned to %s.", componentID, describeSlot(slot)),
				slot.SlotID, componentID)
			a.suggest(&result.Diagnostics, slot, "Component id not found", installed)
			continue
		}
		if bp.Manufacturer != "" {
			installed = append(installed, bp.Manufacturer)
		}

		if bp.Category != slot.Category {
			result.Diagnostics.Error(diag.CodeSlotCategoryMismatch,
				fmt.Sprintf("Category mismatch: %s cannot occupy %s.", describeComponent(bp), describeSlot(slot)),
				slot.SlotID, bp.ID)
			a.suggest(&result.Diagnostics, slot, "Category mismatch", installed)
			continue
		}
		if !bp.Size.FitsIn(slot.Size) {
			result.Diagnostics.Error(diag.CodeSlotSizeMismatch,
				fmt.Sprintf("Size mismatch: %s does not fit within %s.", describeComponent(bp), describeSlot(slot)),
				slot.SlotID, bp.ID)
			a.suggest(&result.Diagnostics, slot, "Size mismatch", installed)
			continue
		}
		resolved[slot.SlotID] = bp
	}

	for _, slotID := range orphanAssignments(hull, req.SlotAssignments) {
		result.Diagnostics.Warning(diag.CodeSlotUnusedAssignment,
			fmt.Sprintf("Unused assignment for slot %s (slot not present on hull)", slotID),
			slotID, req.SlotAssignments[slotID])
	}

	if result.Diagnostics.HasErrors() {
		return result
	}

	applySoftRules(result, resolved)

	for i := range hull.Slots {
		slot := &hull.Slots[i]
		bp, ok := resolved[slot.SlotID]
		if !ok {
			continue
		}
		assembled := ship.AssembledComponent{SlotID: slot.SlotID, Blueprint: bp}
		result.Components = append(result.Components, assembled)
		result.Metrics.Add(bp)

		sub := result.Subsystems[bp.Category]
		if sub == nil {
			sub = &ship.SubsystemSummary{Category: bp.Category}
			result.Subsystems[bp.Category] = sub
		}
		sub.Add(assembled)
	}

	a.checkPerformance(result)

	a.logger.Debug("assembled ship",
		"hull", hull.ID,
		"components", len(result.Components),
		"warnings", len(result.Diagnostics.BySeverity(diag.SeverityWarning)))

	return result
}

// checkPerformance emits the whole-ship warnings derived from the
// aggregated metrics.
func (a *Assembler) checkPerformance(result *ship.AssemblyResult) {
	m := &result.Metrics
	if m.NetPowerMW() < 0 {
		result.Diagnostics.Warning(diag.CodePerformancePowerDeficit,
			fmt.Sprintf("Net power deficit: output %s MW < draw %s MW",
				fmtNum(m.PowerOutputMW), fmtNum(m.PowerDrawMW)), "")
	}
	if m.NetHeatMW() < 0 {
		result.Diagnostics.Warning(diag.CodePerformanceHeatAccumulation,
			fmt.Sprintf("Heat accumulation risk: dissipation %s MW < generation %s MW",
				fmtNum(m.HeatDissipationMW), fmtNum(m.HeatGenerationMW)), "")
	}
	if u := m.CrewUtilization(); u > 1 || math.IsNaN(u) {
		result.Diagnostics.Warning(diag.CodePerformanceCrewShortfall,
			fmt.Sprintf("Crew shortfall: required %d personnel, capacity %d",
				m.CrewRequired, m.CrewCapacity), "")
	}
}

// orphanAssignments returns the assignment keys naming no slot on the
// hull, sorted so the diagnostic order is stable across runs.
func orphanAssignments(hull *ship.HullBlueprint, assignments map[string]string) []string {
	var orphans []string
	for slotID := range assignments {
		if !hull.HasSlot(slotID) {
			orphans = append(orphans, slotID)
		}
	}
	sort.Strings(orphans)
	return orphans
}

func describeSlot(s *ship.HullSlot) string {
	return fmt.Sprintf("slot '%s' (%s, size %s)", s.SlotID, s.Category, s.Size)
}

func describeComponent(b *ship.ComponentBlueprint) string {
	return fmt.Sprintf("component '%s' (%s, size %s)", b.DisplayName, b.ID, b.Size)
}

// fmtNum renders a physical quantity for diagnostic text: six significant
// digits, trailing zeros stripped.
func fmtNum(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
