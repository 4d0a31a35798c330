package taxonomy

import "github.com/novaengine/shipwright/internal/ship"

// classDefinitions holds the built-in classes in canonical order. Treated
// as immutable after init; accessors hand out the shared slices.
var classDefinitions = []ClassDefinition{
	{
		Type:        ClassFighter,
		DisplayName: "Fighter",
		Concept: ConceptBrief{
			ElevatorPitch: "Agile interception craft built for rapid-response dogfighting.",
			GameplayHooks: []string{
				"High thrust-to-weight ratio enabling extreme acceleration",
				"Compact profile optimized for carrier deployment",
				"Limited endurance balanced by modular avionics upgrades",
			},
		},
		Baseline: BaselineStats{
			MinMassTons: 25.0, MaxMassTons: 35.0,
			MinCrew: 1, MaxCrew: 2,
			MinPowerBudgetMW: 8.0, MaxPowerBudgetMW: 12.0,
		},
		Hardpoints: []HardpointSpec{
			{HardpointPrimaryWeapon, ship.SizeSmall, 2, "Fixed or gimbaled energy/ballistic cannons"},
			{HardpointUtility, ship.SizeXS, 1, "Countermeasure pod or sensor jammer"},
			{HardpointModule, ship.SizeSmall, 1, "Avionics suite, stealth package, or auxiliary fuel tank"},
		},
		Slots: []SlotSpec{
			{ship.CategoryPowerPlant, ship.SizeSmall, 1, "Compact fusion core"},
			{ship.CategoryMainThruster, ship.SizeSmall, 1, "Main engine block with afterburner"},
			{ship.CategoryManeuverThruster, ship.SizeXS, 4, "Vectored control thrusters"},
			{ship.CategoryShield, ship.SizeSmall, 1, "Lightweight directional shield generator"},
			{ship.CategoryWeapon, ship.SizeSmall, 2, "Weapon cooling/targeting subsystems"},
			{ship.CategorySensor, ship.SizeSmall, 1, "Combat-grade targeting computer"},
			{ship.CategorySupport, ship.SizeXS, 1, "Emergency life-support capsule"},
		},
		Progression: []ProgressionTier{
			{1, "Starter Interceptor", "Entry-level hull unlocked during tutorial arc."},
			{2, "Specialist Interceptor", "Enhanced maneuvering thrusters and avionics."},
			{3, "Elite Strike Fighter", "Modular wing pylons with stealth/strike packages."},
		},
		Variants: []FactionVariant{
			{"Terran Navy", "Raptor", "Balanced stats with missile rack integration."},
			{"Outer Rim Syndicate", "Viper", "Sacrifices armor for boosted engines and smuggling compartment."},
			{"Zenith Collective", "Aurora", "Energy re-routing module for sustained beam weapons."},
		},
	},
	{
		Type:        ClassFreighter,
		DisplayName: "Freighter",
		Concept: ConceptBrief{
			ElevatorPitch: "Versatile cargo hauler that anchors trade routes and logistics chains.",
			GameplayHooks: []string{
				"Modular container bays and detachable cargo pods",
				"Reinforced frames for micro-jump stability",
				"Defensive focus on countermeasures and drone escorts",
			},
		},
		Baseline: BaselineStats{
			MinMassTons: 90.0, MaxMassTons: 120.0,
			MinCrew: 2, MaxCrew: 4,
			MinPowerBudgetMW: 18.0, MaxPowerBudgetMW: 26.0,
		},
		Hardpoints: []HardpointSpec{
			{HardpointPrimaryWeapon, ship.SizeMedium, 1, "Defensive turret covering dorsal arc"},
			{HardpointUtility, ship.SizeSmall, 2, "Countermeasures, tractor beam, or repair drone"},
			{HardpointModule, ship.SizeMedium, 3, "Cargo bay extensions, shield capacitor, drone bay"},
		},
		Slots: []SlotSpec{
			{ship.CategoryPowerPlant, ship.SizeMedium, 1, "High-endurance reactor core"},
			{ship.CategoryMainThruster, ship.SizeMedium, 2, "Dual main engines with cargo-tuned exhaust"},
			{ship.CategoryManeuverThruster, ship.SizeSmall, 6, "Station-keeping thruster clusters"},
			{ship.CategoryShield, ship.SizeMedium, 1, "Omni-directional cargo shield generator"},
			{ship.CategoryCargo, ship.SizeLarge, 3, "Container racks or specialized payload modules"},
			{ship.CategoryCrewQuarters, ship.SizeSmall, 1, "Extended crew habitation module"},
			{ship.CategorySensor, ship.SizeMedium, 1, "Logistics-grade navigation array"},
			{ship.CategorySupport, ship.SizeMedium, 1, "Docking collar or drone control bay"},
		},
		Progression: []ProgressionTier{
			{1, "Light Hauler", "Compact freighters for intra-system trade."},
			{2, "Convoy Freighter", "Detachable cargo pods with improved security."},
			{3, "Heavy Transport", "Jump-capable cargo frames with automated loaders."},
		},
		Variants: []FactionVariant{
			{"Terran Commerce Guild", "Atlas", "Security seals and customs compliance modules."},
			{"Frontier Miners Union", "Prospector", "Swappable mining rigs and ore refining bay."},
			{"Free Traders League", "Nomad", "Expanded crew quarters and smuggling compartments."},
		},
	},
	{
		Type:        ClassExplorer,
		DisplayName: "Explorer",
		Concept: ConceptBrief{
			ElevatorPitch: "Long-range survey vessel outfitted for science expeditions and reconnaissance.",
			GameplayHooks: []string{
				"Extended sensor suites and survey drones",
				"Hybrid drives enabling atmospheric descent",
				"Laboratory-grade module capacity",
			},
		},
		Baseline: BaselineStats{
			MinMassTons: 80.0, MaxMassTons: 95.0,
			MinCrew: 3, MaxCrew: 5,
			MinPowerBudgetMW: 16.0, MaxPowerBudgetMW: 22.0,
		},
		Hardpoints: []HardpointSpec{
			{HardpointPrimaryWeapon, ship.SizeMedium, 1, "Defensive turret or rail repeater"},
			{HardpointUtility, ship.SizeSmall, 3, "Sensor array, drone control, repair beam"},
			{HardpointModule, ship.SizeMedium, 3, "Labs, data core, stealth probe bay"},
		},
		Slots: []SlotSpec{
			{ship.CategoryPowerPlant, ship.SizeMedium, 1, "Efficient long-range reactor"},
			{ship.CategoryMainThruster, ship.SizeMedium, 1, "Hybrid atmospheric/space engine"},
			{ship.CategoryManeuverThruster, ship.SizeSmall, 6, "Precision RCS clusters"},
			{ship.CategoryShield, ship.SizeMedium, 1, "Adaptive shield lattice"},
			{ship.CategorySensor, ship.SizeLarge, 2, "Long-range sensor and science array"},
			{ship.CategorySupport, ship.SizeMedium, 2, "Survey drone racks, repair gantry"},
			{ship.CategoryCrewQuarters, ship.SizeSmall, 1, "Science team habitation pod"},
			{ship.CategoryCargo, ship.SizeMedium, 1, "Sample containment hold"},
		},
		Progression: []ProgressionTier{
			{1, "Survey Corvette", "Planetary mapping contracts and exploration."},
			{2, "Deep-space Scout", "Long-range jump matrix with cloaked probes."},
			{3, "Expedition Cruiser", "Onboard fabrication and anomaly shielding."},
		},
		Variants: []FactionVariant{
			{"Academy of Sciences", "Odyssey", "Enhanced lab capacity and science buffs."},
			{"Free Horizon Cartographers", "Pathfinder", "Jump range bonuses and terrain scanners."},
			{"Shadow Consortium", "Phantom", "Sensor-masking systems and covert data vaults."},
		},
	},
	{
		Type:        ClassIndustrial,
		DisplayName: "Industrial",
		Concept: ConceptBrief{
			ElevatorPitch: "Heavy utility platform supporting mining, salvage, and construction operations.",
			GameplayHooks: []string{
				"High-capacity power distribution for industrial tools",
				"Expanded utility slots for drones and fabrication rigs",
				"Armored hull optimized for hazardous environments",
			},
		},
		Baseline: BaselineStats{
			MinMassTons: 140.0, MaxMassTons: 180.0,
			MinCrew: 4, MaxCrew: 6,
			MinPowerBudgetMW: 24.0, MaxPowerBudgetMW: 34.0,
		},
		Hardpoints: []HardpointSpec{
			{HardpointPrimaryWeapon, ship.SizeMedium, 2, "Defensive cannons covering broad arcs"},
			{HardpointUtility, ship.SizeMedium, 2, "Tractor beams, repair projectors"},
			{HardpointModule, ship.SizeLarge, 4, "Mining rigs, fabrication arrays, salvage bay, shield inducers"},
		},
		Slots: []SlotSpec{
			{ship.CategoryPowerPlant, ship.SizeLarge, 1, "Industrial-grade reactor core"},
			{ship.CategoryMainThruster, ship.SizeLarge, 2, "Heavy-duty propulsion blocks"},
			{ship.CategoryManeuverThruster, ship.SizeMedium, 8, "Directional thruster girdles"},
			{ship.CategoryShield, ship.SizeLarge, 1, "Reinforced containment shields"},
			{ship.CategoryIndustrial, ship.SizeLarge, 4, "Mining lasers, repair gantries, fabrication rigs"},
			{ship.CategoryCargo, ship.SizeLarge, 2, "Bulk ore hoppers or construction material bins"},
			{ship.CategorySupport, ship.SizeMedium, 2, "Drone hangars or crane assemblies"},
			{ship.CategoryCrewQuarters, ship.SizeMedium, 1, "Work crew habitation"},
		},
		Progression: []ProgressionTier{
			{1, "Utility Platform", "Salvage and repair missions in low-risk zones."},
			{2, "Deep-core Miner", "Armored drill heads with ore refineries."},
			{3, "Construction Platform", "Deploys outposts and orbital structures."},
		},
		Variants: []FactionVariant{
			{"Union of Labor", "Forge", "Resilient hull with redundant systems."},
			{"Corporate Combine", "Constructor", "Advanced fabrication modules and supply bonuses."},
			{"Scavenger Clans", "Scrap Queen", "Expanded salvage bays and crane arms."},
		},
	},
	{
		Type:        ClassCapital,
		DisplayName: "Capital",
		Concept: ConceptBrief{
			ElevatorPitch: "Command-and-control flagships capable of projecting force and supporting fleets.",
			GameplayHooks: []string{
				"Multiple subsystem redundancies and distributed crew stations",
				"Acts as mobile base with hangar capacity",
				"Hosts advanced command and logistics suites",
			},
		},
		Baseline: BaselineStats{
			MinMassTons: 600.0, MaxMassTons: 950.0,
			MinCrew: 8, MaxCrew: 18,
			MinPowerBudgetMW: 60.0, MaxPowerBudgetMW: 120.0,
		},
		Hardpoints: []HardpointSpec{
			{HardpointPrimaryWeapon, ship.SizeXL, 6, "Turrets or beam arrays spanning ship arcs"},
			{HardpointUtility, ship.SizeLarge, 4, "Point-defense grids, sensor masts"},
			{HardpointModule, ship.SizeXL, 6, "Hangars, shield amplifiers, command modules, medical bays"},
		},
		Slots: []SlotSpec{
			{ship.CategoryPowerPlant, ship.SizeXL, 2, "Redundant flagship cores"},
			{ship.CategoryMainThruster, ship.SizeXL, 4, "Capital propulsion arrays"},
			{ship.CategoryManeuverThruster, ship.SizeLarge, 12, "Distributed RCS banks"},
			{ship.CategoryShield, ship.SizeXL, 2, "Layered shield projectors"},
			{ship.CategoryHangar, ship.SizeXL, 2, "Strike craft or shuttle hangars"},
			{ship.CategorySupport, ship.SizeLarge, 4, "Command, medical, fabrication suites"},
			{ship.CategorySensor, ship.SizeLarge, 2, "Long-range tactical sensor masts"},
			{ship.CategoryCrewQuarters, ship.SizeLarge, 3, "Distributed crew habitats"},
			{ship.CategoryIndustrial, ship.SizeLarge, 1, "Fleet support fabrication plant"},
		},
		Progression: []ProgressionTier{
			{2, "Escort Carrier", "Accessible via faction reputation milestones."},
			{3, "Battlecruiser", "Command dreadnought unlocked in endgame campaigns."},
			{4, "Legendary Flagship", "Narrative-locked capital hull with unique bonuses."},
		},
		Variants: []FactionVariant{
			{"Terran Navy", "Resolute", "Balanced defenses with fighter bay bonuses."},
			{"Zenith Collective", "Echelon", "Superior energy projectors and psionic shielding."},
			{"Outer Rim Syndicate", "Leviathan", "Heavy armor plating and boarding pods."},
		},
	},
}

// Definitions returns every built-in class definition in canonical order.
// Callers must not mutate the returned slice or its contents.
func Definitions() []ClassDefinition {
	return classDefinitions
}

// Definition returns the built-in definition for the given class.
func Definition(t ClassType) (*ClassDefinition, bool) {
	for i := range classDefinitions {
		if classDefinitions[i].Type == t {
			return &classDefinitions[i], true
		}
	}
	return nil, false
}
