package shipclass

import (
	"fmt"

	"github.com/novaengine/shipwright/internal/ship"
	"github.com/novaengine/shipwright/internal/taxonomy"
)

// ValidateEntry checks an entry against its class's taxonomy constraint and
// returns every violation found. An empty result means the entry conforms.
// Callers register violating entries anyway, flagged, so the game can launch
// on imperfect content.
func ValidateEntry(e *Entry) []string {
	var violations []string
	add := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	constraint, ok := taxonomy.ConstraintFor(e.Type)
	if !ok {
		add("No taxonomy constraint registered for class type")
		return violations
	}

	if !constraint.MassTons.Contains(e.Baseline.MinMassTons) ||
		!constraint.MassTons.Contains(e.Baseline.MaxMassTons) {
		add("Mass range %g-%g tons violates taxonomy (%g-%g)",
			e.Baseline.MinMassTons, e.Baseline.MaxMassTons,
			constraint.MassTons.Min, constraint.MassTons.Max)
	}
	if !constraint.Crew.Contains(float64(e.Baseline.MinCrew)) ||
		!constraint.Crew.Contains(float64(e.Baseline.MaxCrew)) {
		add("Crew range %d-%d violates taxonomy (%g-%g)",
			e.Baseline.MinCrew, e.Baseline.MaxCrew,
			constraint.Crew.Min, constraint.Crew.Max)
	}
	if !constraint.PowerBudgetMW.Contains(e.Baseline.MinPowerBudgetMW) ||
		!constraint.PowerBudgetMW.Contains(e.Baseline.MaxPowerBudgetMW) {
		add("Power budget %g-%gMW violates taxonomy (%g-%g)",
			e.Baseline.MinPowerBudgetMW, e.Baseline.MaxPowerBudgetMW,
			constraint.PowerBudgetMW.Min, constraint.PowerBudgetMW.Max)
	}

	// Last spec wins on a duplicated category, matching how the variant
	// delta check below resolves its baseline counts.
	hardpointsByCat := make(map[taxonomy.HardpointCategory]taxonomy.HardpointSpec, len(e.Hardpoints))
	for _, hp := range e.Hardpoints {
		hardpointsByCat[hp.Category] = hp
	}
	for _, cat := range taxonomy.AllHardpointCategories {
		expected, required := constraint.Hardpoints[cat]
		if !required {
			continue
		}
		found, present := hardpointsByCat[cat]
		if !present {
			add("Missing hardpoint category %s", cat)
			continue
		}
		if found.Count != expected.Count {
			add("Hardpoint count mismatch for %s: expected %d found %d",
				cat, expected.Count, found.Count)
		}
		if found.Size != expected.Size {
			add("Hardpoint size mismatch for %s: expected %s found %s",
				cat, expected.Size, found.Size)
		}
	}

	slotsByCat := make(map[ship.Category]taxonomy.SlotSpec, len(e.ComponentSlots))
	for _, slot := range e.ComponentSlots {
		slotsByCat[slot.Category] = slot
	}
	for _, cat := range ship.AllCategories {
		expected, required := constraint.Slots[cat]
		if !required {
			continue
		}
		found, present := slotsByCat[cat]
		if !present {
			add("Missing component slot category %s", cat)
			continue
		}
		if found.Count != expected.Count {
			add("Slot count mismatch for %s: expected %d found %d",
				cat, expected.Count, found.Count)
		}
		if found.Size != expected.Size {
			add("Slot size mismatch for %s: expected %s found %s",
				cat, expected.Size, found.Size)
		}
	}

	slotTotal := e.SlotCount()
	for _, loadout := range e.DefaultLoadouts {
		if len(loadout.Components) > slotTotal {
			add("Default loadout '%s' assigns %d components exceeding available slots %d",
				loadout.Name, len(loadout.Components), slotTotal)
		}
	}

	if len(e.Progression) == 0 {
		add("Progression tiers are empty")
	} else {
		expectedTier := e.Progression[0].Tier
		for _, tier := range e.Progression {
			if tier.Tier != expectedTier {
				add("Progression tiers must be sequential. Expected tier %d found %d",
					expectedTier, tier.Tier)
				expectedTier = tier.Tier
			}
			expectedTier++
		}
	}

	if e.Metadata.MinLevel < 1 || e.Metadata.MinLevel > 40 {
		add("Progression metadata minLevel %d outside supported range (1-40)",
			e.Metadata.MinLevel)
	}
	if e.Metadata.BlueprintCost < 0 {
		add("Blueprint cost cannot be negative")
	}

	for _, variant := range e.Variants {
		for _, delta := range variant.HardpointDeltas {
			baseCount := 0
			if spec, present := hardpointsByCat[delta.Category]; present {
				baseCount = spec.Count
			}
			if baseCount+delta.CountDelta < 0 {
				add("Variant '%s' removes too many %s hardpoints",
					variant.Codename, delta.Category)
			}
		}
		for _, delta := range variant.SlotDeltas {
			baseCount := 0
			if spec, present := slotsByCat[delta.Category]; present {
				baseCount = spec.Count
			}
			if baseCount+delta.CountDelta < 0 {
				add("Variant '%s' removes too many %s slots",
					variant.Codename, delta.Category)
			}
		}
	}

	return violations
}
