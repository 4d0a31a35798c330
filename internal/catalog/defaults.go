package catalog

import (
	"github.com/novaengine/shipwright/internal/ship"
	"github.com/novaengine/shipwright/internal/taxonomy"
)

// defaultManufacturer is the in-house brand all fallback content ships
// under. Lineage warnings in mixed fits rely on every fallback component
// sharing it.
const defaultManufacturer = "Nova Dynamics"

// withDefaultMeta fills the fields every fallback component shares. A zero
// MaxPowerEnvelopeMW means the component declared no envelope and gets the
// tolerant default.
func withDefaultMeta(bp ship.ComponentBlueprint) ship.ComponentBlueprint {
	bp.SchemaVersion = 1
	if bp.TechTier == 0 {
		bp.TechTier = 1
	}
	bp.Manufacturer = defaultManufacturer
	if bp.MaxPowerEnvelopeMW == 0 {
		bp.MaxPowerEnvelopeMW = ship.DefaultMaxPowerEnvelopeMW
		if bp.OptimalPowerEnvelopeMW == 0 {
			bp.OptimalPowerEnvelopeMW = ship.DefaultOptimalPowerEnvelopeMW
		}
	}
	return bp
}

// DefaultComponents returns the hard-coded fallback component set, in
// catalog insertion order. The set covers every required slot of the
// fallback fighter and freighter hulls.
func DefaultComponents() []ship.ComponentBlueprint {
	raw := []ship.ComponentBlueprint{
		{
			ID:          "fusion_core_mk1",
			DisplayName: "Fusion Core Mk.I",
			Description: "Baseline fighter fusion core.",
			Category:    ship.CategoryPowerPlant,
			Size:        ship.SizeSmall,

			MassTons: 6.5, PowerOutputMW: 10.0, PowerDrawMW: 0.2,
			HeatGenerationMW: 2.5, HeatDissipationMW: 1.5,
			CrewRequired: 1,

			ManufacturerLineage: "Mk.I",
		},
		{
			ID:          "fusion_core_mk2",
			DisplayName: "Fusion Core Mk.II",
			Description: "Enhanced output for larger hulls.",
			Category:    ship.CategoryPowerPlant,
			Size:        ship.SizeMedium,

			MassTons: 11.0, PowerOutputMW: 18.0, PowerDrawMW: 0.3,
			HeatGenerationMW: 6.0, HeatDissipationMW: 2.5,
			CrewRequired: 2,

			TechTier:            2,
			ManufacturerLineage: "Mk.II",
			MaxPowerEnvelopeMW:  ship.DefaultMaxPowerEnvelopeMW, OptimalPowerEnvelopeMW: 60.0,
		},
		{
			ID:          "main_thruster_viper",
			DisplayName: "Viper Main Thruster",
			Description: "High thrust ratio for fighters.",
			Category:    ship.CategoryMainThruster,
			Size:        ship.SizeSmall,

			MassTons: 4.0, PowerDrawMW: 4.0, ThrustKN: 220.0,
			HeatGenerationMW: 5.0, HeatDissipationMW: 1.0,

			ManufacturerLineage: "Mk.I",
			MinPowerEnvelopeMW:  5.0, MaxPowerEnvelopeMW: 25.0, OptimalPowerEnvelopeMW: 10.0,
		},
		{
			ID:          "main_thruster_freighter",
			DisplayName: "Atlas Drive",
			Description: "Cargo-optimized main thruster.",
			Category:    ship.CategoryMainThruster,
			Size:        ship.SizeMedium,

			MassTons: 12.0, PowerDrawMW: 6.0, ThrustKN: 320.0,
			HeatGenerationMW: 10.0, HeatDissipationMW: 2.0,
			CrewRequired: 1,

			ManufacturerLineage: "Mk.II",
			MinPowerEnvelopeMW:  10.0, MaxPowerEnvelopeMW: 40.0, OptimalPowerEnvelopeMW: 20.0,
		},
		{
			ID:          "rcs_cluster_micro",
			DisplayName: "Micro RCS Cluster",
			Description: "Reaction control thrusters for fine maneuvers.",
			Category:    ship.CategoryManeuverThruster,
			Size:        ship.SizeXS,

			MassTons: 0.8, PowerDrawMW: 0.5, ThrustKN: 35.0,
			HeatGenerationMW: 0.3, HeatDissipationMW: 0.3,
		},
		{
			ID:          "shield_array_light",
			DisplayName: "Light Shield Array",
			Description: "Directional shield generator for fighters.",
			Category:    ship.CategoryShield,
			Size:        ship.SizeSmall,

			MassTons: 3.2, PowerDrawMW: 2.5,
			HeatGenerationMW: 3.0, HeatDissipationMW: 0.5,

			Shield: &ship.ShieldSpec{
				CapacityMJ:           150.0,
				RechargeRateMJPerSec: 5.0,
				RechargeDelaySeconds: 3.0,
				DamageAbsorption:     0.8,
			},
		},
		{
			ID:          "shield_array_medium",
			DisplayName: "Medium Shield Array",
			Description: "Balanced shield system for freighters and explorers.",
			Category:    ship.CategoryShield,
			Size:        ship.SizeMedium,

			MassTons: 6.5, PowerDrawMW: 4.0,
			HeatGenerationMW: 5.0, HeatDissipationMW: 1.0,
			CrewRequired: 1,

			Shield: &ship.ShieldSpec{
				CapacityMJ:           300.0,
				RechargeRateMJPerSec: 8.0,
				RechargeDelaySeconds: 4.0,
				DamageAbsorption:     0.85,
			},
		},
		{
			ID:          "shield_array_heavy",
			DisplayName: "Heavy Shield Array",
			Description: "Capital-grade shield with rapid recharge.",
			Category:    ship.CategoryShield,
			Size:        ship.SizeLarge,

			MassTons: 12.0, PowerDrawMW: 8.0,
			HeatGenerationMW: 10.0, HeatDissipationMW: 2.0,
			CrewRequired: 2,

			Shield: &ship.ShieldSpec{
				CapacityMJ:           600.0,
				RechargeRateMJPerSec: 12.0,
				RechargeDelaySeconds: 5.0,
				DamageAbsorption:     0.9,
			},
		},
		{
			ID:          "weapon_cooling_cannon",
			DisplayName: "Cannon Cooling Rack",
			Description: "Stabilizes twin cannon mounts.",
			Category:    ship.CategoryWeapon,
			Size:        ship.SizeSmall,

			MassTons: 2.8, PowerDrawMW: 1.5,
			HeatGenerationMW: 0.8, HeatDissipationMW: 1.2,
		},
		{
			ID:          "weapon_twin_cannon",
			DisplayName: "Twin Cannon",
			Description: "Rapid-fire projectile weapon for fighters.",
			Category:    ship.CategoryWeapon,
			Size:        ship.SizeSmall,

			MassTons: 3.5, PowerDrawMW: 2.0,
			HeatGenerationMW: 2.5, HeatDissipationMW: 1.0,

			ManufacturerLineage: "Mk.I",
			MinPowerEnvelopeMW:  5.0, MaxPowerEnvelopeMW: 25.0, OptimalPowerEnvelopeMW: 10.0,

			Weapon: &ship.WeaponSpec{
				DamagePerShot:           15.0,
				RangeKm:                 5.0,
				FireRatePerSecond:       10.0,
				AmmoCapacity:            200,
				AmmoType:                "projectile",
				ProjectileSpeedKmPerSec: 2.0,
			},
		},
		{
			ID:          "weapon_missile_launcher",
			DisplayName: "Missile Launcher",
			Description: "Guided missile system for fighters.",
			Category:    ship.CategoryWeapon,
			Size:        ship.SizeSmall,

			MassTons: 4.0, PowerDrawMW: 3.0,
			HeatGenerationMW: 3.0, HeatDissipationMW: 1.5,

			Weapon: &ship.WeaponSpec{
				DamagePerShot:           50.0,
				RangeKm:                 10.0,
				FireRatePerSecond:       2.0,
				AmmoCapacity:            8,
				AmmoType:                "missile",
				ProjectileSpeedKmPerSec: 1.5,
			},
		},
		{
			ID:          "weapon_defensive_turret",
			DisplayName: "Defensive Turret",
			Description: "Rotating cannon for freighters and explorers.",
			Category:    ship.CategoryWeapon,
			Size:        ship.SizeMedium,

			MassTons: 8.0, PowerDrawMW: 4.0,
			HeatGenerationMW: 4.0, HeatDissipationMW: 2.0,
			CrewRequired: 1,

			ManufacturerLineage: "Mk.I",
			MinPowerEnvelopeMW:  8.0, MaxPowerEnvelopeMW: 30.0, OptimalPowerEnvelopeMW: 15.0,

			Weapon: &ship.WeaponSpec{
				DamagePerShot:           20.0,
				RangeKm:                 8.0,
				FireRatePerSecond:       5.0,
				AmmoCapacity:            100,
				AmmoType:                "projectile",
				IsTurret:                true,
				TrackingSpeedDegPerSec:  60.0,
				ProjectileSpeedKmPerSec: 1.8,
			},
		},
		{
			ID:          "weapon_beam_array",
			DisplayName: "Beam Array",
			Description: "Energy weapon for capital ships.",
			Category:    ship.CategoryWeapon,
			Size:        ship.SizeLarge,

			MassTons: 12.0, PowerDrawMW: 8.0,
			HeatGenerationMW: 10.0, HeatDissipationMW: 3.0,
			CrewRequired: 2,

			TechTier:            2,
			ManufacturerLineage: "Mk.II",
			MinPowerEnvelopeMW:  12.0, MaxPowerEnvelopeMW: 50.0, OptimalPowerEnvelopeMW: 25.0,

			Weapon: &ship.WeaponSpec{
				DamagePerShot:           30.0,
				RangeKm:                 15.0,
				FireRatePerSecond:       1.0,
				AmmoCapacity:            50,
				AmmoType:                "energy",
				IsTurret:                true,
				TrackingSpeedDegPerSec:  30.0,
				ProjectileSpeedKmPerSec: 300.0,
			},
		},
		{
			ID:          "cargo_rack_standard",
			DisplayName: "Cargo Rack",
			Description: "Standard modular cargo rack.",
			Category:    ship.CategoryCargo,
			Size:        ship.SizeLarge,

			MassTons: 15.0, PowerDrawMW: 1.0,
			HeatGenerationMW: 0.4, HeatDissipationMW: 0.5,
			CrewRequired: 2,
		},
		{
			ID:          "support_life_pod",
			DisplayName: "Emergency Life Support Pod",
			Description: "Sustains crew during hull breaches.",
			Category:    ship.CategorySupport,
			Size:        ship.SizeXS,

			MassTons: 1.2, PowerDrawMW: 0.6,
			HeatGenerationMW: 0.1, HeatDissipationMW: 0.5,
			CrewSupport: 2,
		},
		{
			ID:          "support_basic",
			DisplayName: "Basic Support Module",
			Description: "Minimal support systems.",
			Category:    ship.CategorySupport,
			Size:        ship.SizeXS,

			MassTons: 0.8, PowerDrawMW: 0.3,
			HeatGenerationMW: 0.05, HeatDissipationMW: 0.3,
		},
		{
			ID:          "sensor_targeting_mk1",
			DisplayName: "Combat Sensor Suite",
			Description: "Targeting computer with enhanced tracking.",
			Category:    ship.CategorySensor,
			Size:        ship.SizeSmall,

			MassTons: 1.4, PowerDrawMW: 1.2,
			HeatGenerationMW: 1.5, HeatDissipationMW: 0.5,
		},
		{
			ID:          "crew_quarters_standard",
			DisplayName: "Standard Crew Quarters",
			Description: "Habitation module for extended hauls.",
			Category:    ship.CategoryCrewQuarters,
			Size:        ship.SizeSmall,

			MassTons: 4.5, PowerDrawMW: 0.8,
			HeatGenerationMW: 0.2, HeatDissipationMW: 0.6,
			CrewSupport: 4,
		},
	}

	out := make([]ship.ComponentBlueprint, len(raw))
	for i, bp := range raw {
		out[i] = withDefaultMeta(bp)
	}
	return out
}

// DefaultHulls returns the hard-coded fallback hulls, expanded from the
// built-in fighter and freighter class definitions with the stock
// adjacency wiring attached.
func DefaultHulls() []ship.HullBlueprint {
	fighterDef, _ := taxonomy.Definition(taxonomy.ClassFighter)
	fighter := taxonomy.ExpandHull("fighter_mk1", fighterDef)
	attachAdjacency(&fighter, map[string][]string{
		"PowerPlant_0": {"Weapon_0", "Weapon_1"},
		"Weapon_0":     {"PowerPlant_0", "Weapon_1"},
		"Weapon_1":     {"PowerPlant_0", "Weapon_0"},
	})

	freighterDef, _ := taxonomy.Definition(taxonomy.ClassFreighter)
	freighter := taxonomy.ExpandHull("freighter_mk1", freighterDef)
	attachAdjacency(&freighter, map[string][]string{
		"PowerPlant_0": {"Cargo_0"},
		"Cargo_0":      {"PowerPlant_0"},
	})

	return []ship.HullBlueprint{fighter, freighter}
}

func attachAdjacency(hull *ship.HullBlueprint, adjacency map[string][]string) {
	for i := range hull.Slots {
		if ids, ok := adjacency[hull.Slots[i].SlotID]; ok {
			hull.Slots[i].AdjacentSlotIDs = ids
		}
	}
}
