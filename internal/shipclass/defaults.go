package shipclass

import (
	"strings"

	"github.com/novaengine/shipwright/internal/taxonomy"
)

// fallbackMetadata carries the progression gates for the built-in entries.
var fallbackMetadata = map[taxonomy.ClassType]ProgressionMetadata{
	taxonomy.ClassFighter:    {MinLevel: 1, FactionReputation: 0, BlueprintCost: 0},
	taxonomy.ClassFreighter:  {MinLevel: 3, FactionReputation: 0, BlueprintCost: 1200},
	taxonomy.ClassExplorer:   {MinLevel: 6, FactionReputation: 10, BlueprintCost: 2500},
	taxonomy.ClassIndustrial: {MinLevel: 10, FactionReputation: 20, BlueprintCost: 4000},
	taxonomy.ClassCapital:    {MinLevel: 25, FactionReputation: 75, BlueprintCost: 20000},
}

// fallbackLoadouts names the factory fits for the classes the fallback
// component roster can actually equip. The component lists are positional
// over the expanded slot ids of the matching built-in definition.
var fallbackLoadouts = map[taxonomy.ClassType][]DefaultLoadout{
	taxonomy.ClassFighter: {
		{
			Name:        "Patrol Standard",
			Description: "Factory fit for rapid-response patrol duty.",
			Components: []string{
				"fusion_core_mk1",
				"main_thruster_viper",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"shield_array_light",
				"weapon_twin_cannon",
				"weapon_twin_cannon",
				"sensor_targeting_mk1",
				"support_life_pod",
			},
		},
	},
	taxonomy.ClassFreighter: {
		{
			Name:        "Hauler Standard",
			Description: "Factory fit for intra-system cargo runs.",
			Components: []string{
				"fusion_core_mk2",
				"main_thruster_freighter",
				"main_thruster_freighter",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"rcs_cluster_micro",
				"shield_array_light",
				"cargo_rack_standard",
				"cargo_rack_standard",
				"cargo_rack_standard",
				"crew_quarters_standard",
				"sensor_targeting_mk1",
				"support_basic",
			},
		},
	},
}

// DefaultEntries returns the hard-coded fallback class entries, one per
// built-in class definition. Entry ids pair with the fallback hull ids
// (fighter_mk1, freighter_mk1) so the factory loadouts assemble against the
// fallback catalogs without content on disk; the remaining classes carry no
// loadouts because the fallback roster has nothing in their size bands.
func DefaultEntries() []Entry {
	defs := taxonomy.Definitions()
	out := make([]Entry, 0, len(defs))
	for i := range defs {
		def := &defs[i]

		variants := make([]Variant, 0, len(def.Variants))
		for _, v := range def.Variants {
			variants = append(variants, Variant{
				Faction:     v.Faction,
				Codename:    v.Codename,
				Description: v.Description,
			})
		}

		out = append(out, Entry{
			ID:              strings.ToLower(string(def.Type)) + "_mk1",
			Type:            def.Type,
			DisplayName:     def.DisplayName,
			Concept:         def.Concept,
			Baseline:        def.Baseline,
			Hardpoints:      append([]taxonomy.HardpointSpec(nil), def.Hardpoints...),
			ComponentSlots:  append([]taxonomy.SlotSpec(nil), def.Slots...),
			Progression:     append([]taxonomy.ProgressionTier(nil), def.Progression...),
			Metadata:        fallbackMetadata[def.Type],
			Variants:        variants,
			DefaultLoadouts: append([]DefaultLoadout(nil), fallbackLoadouts[def.Type]...),
		})
	}
	return out
}
