package taxonomy

import (
	"fmt"

	"github.com/novaengine/shipwright/internal/ship"
)

// BuildSlotIDs returns the slot ids a slot layout expands to, in declaration
// order. Ids have the form "<Category>_<n>" with n counting per category, so
// positional loadouts map onto them deterministically.
func BuildSlotIDs(specs []SlotSpec) []string {
	total := 0
	for _, s := range specs {
		total += s.Count
	}
	ids := make([]string, 0, total)
	counters := make(map[ship.Category]int, len(specs))
	for _, spec := range specs {
		for i := 0; i < spec.Count; i++ {
			ids = append(ids, fmt.Sprintf("%s_%d", spec.Category, counters[spec.Category]))
			counters[spec.Category]++
		}
	}
	return ids
}

// ExpandHull materializes a hull blueprint from a class definition. Base
// mass and crew come from the baseline minimums, structural integrity is
// ten times the mass ceiling, and heat dissipation matches the class power
// ceiling. Every expanded slot is required; slot ids follow BuildSlotIDs.
func ExpandHull(id string, def *ClassDefinition) ship.HullBlueprint {
	hull := ship.HullBlueprint{
		ID:          id,
		ClassType:   string(def.Type),
		DisplayName: def.DisplayName + " Hull",

		BaseMassTons:          def.Baseline.MinMassTons,
		StructuralIntegrity:   def.Baseline.MaxMassTons * 10,
		BaseCrewRequired:      def.Baseline.MinCrew,
		BaseCrewCapacity:      def.Baseline.MaxCrew,
		BaseHeatGenerationMW:  0,
		BaseHeatDissipationMW: def.Baseline.MaxPowerBudgetMW,
	}

	hull.Slots = make([]ship.HullSlot, 0, def.SlotCount())
	counters := make(map[ship.Category]int, len(def.Slots))
	for _, spec := range def.Slots {
		for i := 0; i < spec.Count; i++ {
			hull.Slots = append(hull.Slots, ship.HullSlot{
				SlotID:   fmt.Sprintf("%s_%d", spec.Category, counters[spec.Category]),
				Category: spec.Category,
				Size:     spec.Size,
				Notes:    spec.Notes,
				Required: true,
			})
			counters[spec.Category]++
		}
	}
	return hull
}
