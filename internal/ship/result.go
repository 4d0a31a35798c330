package ship

import (
	"github.com/novaengine/shipwright/internal/diag"
)

// AssembledComponent pairs a slot with the blueprint resolved into it.
// The blueprint pointer is non-owning and refers into the catalog generation
// the assembly ran against.
type AssembledComponent struct {
	SlotID    string
	Blueprint *ComponentBlueprint
}

// SubsystemSummary aggregates the resolved components of one category.
type SubsystemSummary struct {
	Category          Category
	Components        []AssembledComponent
	MassTons          float64
	PowerOutputMW     float64
	PowerDrawMW       float64
	ThrustKN          float64
	HeatGenerationMW  float64
	HeatDissipationMW float64
	CrewRequired      int
	CrewSupport       int
}

// Add accumulates one resolved component into the subsystem.
func (s *SubsystemSummary) Add(c AssembledComponent) {
	b := c.Blueprint
	s.Components = append(s.Components, c)
	s.MassTons += b.MassTons
	s.PowerOutputMW += b.PowerOutputMW
	s.PowerDrawMW += b.PowerDrawMW
	s.ThrustKN += b.ThrustKN
	s.HeatGenerationMW += b.HeatGenerationMW
	s.HeatDissipationMW += b.HeatDissipationMW
	s.CrewRequired += b.CrewRequired
	s.CrewSupport += b.CrewSupport
}

// AssemblyResult is the immutable outcome of one Assemble call: the resolved
// hull, the resolved components in slot declaration order, per-category
// subsystem summaries, whole-ship metrics, and the diagnostic report.
//
// A result with a nil Hull or any Error diagnostic is invalid; aggregate
// metrics of an invalid result must not be used.
type AssemblyResult struct {
	Hull       *HullBlueprint
	Components []AssembledComponent
	Subsystems map[Category]*SubsystemSummary
	Metrics    Metrics

	Diagnostics diag.Report

	// Generation identifies the catalog generation the result was built
	// against. A reload bumps the live generation, marking held results
	// stale.
	Generation uint64
}

// IsValid reports whether the hull resolved and no Error diagnostics were
// emitted.
func (r *AssemblyResult) IsValid() bool {
	return r.Hull != nil && !r.Diagnostics.HasErrors()
}

// Subsystem returns the summary for a category, or nil when no resolved
// component has that category.
func (r *AssemblyResult) Subsystem(c Category) *SubsystemSummary {
	return r.Subsystems[c]
}

// HasSubsystem reports whether any resolved component has the category.
func (r *AssemblyResult) HasSubsystem(c Category) bool {
	_, ok := r.Subsystems[c]
	return ok
}

// SubsystemCategories returns the categories present on the ship in
// canonical category order, for deterministic iteration.
func (r *AssemblyResult) SubsystemCategories() []Category {
	var out []Category
	for _, c := range AllCategories {
		if _, ok := r.Subsystems[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// SlotLabeler returns a labeler that renders slots as
// "<Category> slot '<id>' (<Size>)" using this result's hull, falling back
// to the bare id when the hull or slot is unknown.
func (r *AssemblyResult) SlotLabeler() diag.SlotLabeler {
	return HullSlotLabeler(r.Hull)
}

// HullSlotLabeler builds a diag.SlotLabeler from a hull blueprint. A nil
// hull yields bare-id labels.
func HullSlotLabeler(hull *HullBlueprint) diag.SlotLabeler {
	return func(slotID string) string {
		if hull == nil {
			return "slot '" + slotID + "'"
		}
		s := hull.Slot(slotID)
		if s == nil {
			return "slot '" + slotID + "'"
		}
		label := string(s.Category) + " slot '" + slotID + "' (" + string(s.Size)
		if s.Notes != "" {
			label += ", " + s.Notes
		}
		return label + ")"
	}
}
