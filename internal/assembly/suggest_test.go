package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/ship"
)

func suggestionIDs(ranked []diag.Suggestion) []string {
	ids := make([]string, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.ComponentID)
	}
	return ids
}

func TestRankCandidatesWeaponSlot(t *testing.T) {
	a := defaultAssembler()
	slot := &ship.HullSlot{SlotID: "Weapon_0", Category: ship.CategoryWeapon, Size: ship.SizeSmall}

	ranked := a.rankCandidates(slot, []string{"Nova Dynamics"})

	assert.Equal(t, []string{
		"weapon_missile_launcher",
		"weapon_twin_cannon",
		"weapon_cooling_cannon",
	}, suggestionIDs(ranked))

	assert.InDelta(t, 0.925, ranked[0].Score, 1e-9)
	assert.InDelta(t, 0.8728571428571429, ranked[1].Score, 1e-9)
	assert.InDelta(t, 0.8464285714285714, ranked[2].Score, 1e-9)

	for _, s := range ranked {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
		assert.Equal(t, "Compatible component, preferred manufacturer", s.Reasoning)
	}
}

func TestRankCandidatesWithoutManufacturerBonus(t *testing.T) {
	a := defaultAssembler()
	slot := &ship.HullSlot{SlotID: "Weapon_0", Category: ship.CategoryWeapon, Size: ship.SizeSmall}

	ranked := a.rankCandidates(slot, nil)

	// Same order, uniformly 0.3 lower.
	assert.Equal(t, []string{
		"weapon_missile_launcher",
		"weapon_twin_cannon",
		"weapon_cooling_cannon",
	}, suggestionIDs(ranked))
	assert.InDelta(t, 0.625, ranked[0].Score, 1e-9)
	for _, s := range ranked {
		assert.Equal(t, "Compatible component", s.Reasoning)
	}
}

func TestRankCandidatesPowerPlantFirstSlot(t *testing.T) {
	a := defaultAssembler()
	slot := &ship.HullSlot{SlotID: "PowerPlant_0", Category: ship.CategoryPowerPlant, Size: ship.SizeSmall}

	// Nothing resolved yet: no manufacturer bonus for anything.
	ranked := a.rankCandidates(slot, nil)

	require.Len(t, ranked, 1)
	assert.Equal(t, "fusion_core_mk1", ranked[0].ComponentID)
	assert.InDelta(t, 0.4807692307692308, ranked[0].Score, 1e-9)
	assert.Equal(t, "Compatible component", ranked[0].Reasoning)
}

func TestRankCandidatesExcludesWrongCategoryAndSize(t *testing.T) {
	a := defaultAssembler()
	slot := &ship.HullSlot{SlotID: "Shield_0", Category: ship.CategoryShield, Size: ship.SizeMedium}

	ranked := a.rankCandidates(slot, nil)

	// The heavy array is Large and must not appear for a Medium slot; the
	// exact-fit medium array outranks the undersized light one.
	assert.Equal(t, []string{
		"shield_array_medium",
		"shield_array_light",
	}, suggestionIDs(ranked))
}

func TestRankCandidatesRespectsLimit(t *testing.T) {
	components, hulls := defaultCatalogs()
	for _, id := range []string{"wm_a", "wm_b", "wm_c", "wm_d"} {
		bp := customComponent(id, "Aftermarket "+id, ship.CategoryWeapon, ship.SizeSmall)
		bp.PowerDrawMW = 1.0
		components.Register(bp)
	}
	slot := &ship.HullSlot{SlotID: "Weapon_0", Category: ship.CategoryWeapon, Size: ship.SizeSmall}

	// 3 stock + 4 registered = 7 candidates.
	a := New(components, hulls)
	assert.Len(t, a.rankCandidates(slot, nil), DefaultSuggestionLimit)

	capped := New(components, hulls, WithSuggestionLimit(3))
	assert.Len(t, capped.rankCandidates(slot, nil), 3)

	// Non-positive limits are ignored, keeping the default.
	ignored := New(components, hulls, WithSuggestionLimit(0))
	assert.Len(t, ignored.rankCandidates(slot, nil), DefaultSuggestionLimit)
}

func TestRankCandidatesTiesKeepInsertionOrder(t *testing.T) {
	components, hulls := defaultCatalogs()
	for _, id := range []string{"compute_tie_alpha", "compute_tie_beta"} {
		bp := customComponent(id, "Navigation Core", ship.CategoryComputer, ship.SizeSmall)
		bp.MassTons = 2.0
		bp.PowerDrawMW = 1.0
		components.Register(bp)
	}
	a := New(components, hulls)
	slot := &ship.HullSlot{SlotID: "Computer_0", Category: ship.CategoryComputer, Size: ship.SizeSmall}

	ranked := a.rankCandidates(slot, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "compute_tie_alpha", ranked[0].ComponentID)
	assert.Equal(t, "compute_tie_beta", ranked[1].ComponentID)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestSizeFitness(t *testing.T) {
	cases := []struct {
		slot      ship.SlotSize
		candidate ship.SlotSize
		want      float64
	}{
		{ship.SizeXS, ship.SizeXS, 1.0},
		{ship.SizeSmall, ship.SizeSmall, 1.0},
		{ship.SizeSmall, ship.SizeXS, 0.0},
		{ship.SizeMedium, ship.SizeSmall, 0.5},
		{ship.SizeMedium, ship.SizeXS, 0.0},
		{ship.SizeLarge, ship.SizeMedium, 2.0 / 3.0},
		{ship.SizeXXL, ship.SizeXS, 0.0},
		{ship.SizeXXL, ship.SizeXL, 0.8},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, sizeFitness(tc.slot, tc.candidate), 1e-9,
			"slot %s candidate %s", tc.slot, tc.candidate)
	}
}

func TestPowerEfficiency(t *testing.T) {
	massless := &ship.ComponentBlueprint{Category: ship.CategoryWeapon}
	assert.Equal(t, 0.0, powerEfficiency(massless))

	// Output per ton caps at 1 for power plants.
	hotRod := &ship.ComponentBlueprint{Category: ship.CategoryPowerPlant, MassTons: 1.0, PowerOutputMW: 100.0}
	assert.Equal(t, 1.0, powerEfficiency(hotRod))

	core := &ship.ComponentBlueprint{Category: ship.CategoryPowerPlant, MassTons: 6.5, PowerOutputMW: 10.0}
	assert.InDelta(t, 10.0/65.0, powerEfficiency(core), 1e-9)

	// Draw per ton floors at 0 for consumers.
	hog := &ship.ComponentBlueprint{Category: ship.CategorySensor, MassTons: 1.0, PowerDrawMW: 10.0}
	assert.Equal(t, 0.0, powerEfficiency(hog))

	sipper := &ship.ComponentBlueprint{Category: ship.CategorySensor, MassTons: 2.0, PowerDrawMW: 1.0}
	assert.InDelta(t, 0.75, powerEfficiency(sipper), 1e-9)
}

func TestPerformanceFitness(t *testing.T) {
	thruster := &ship.ComponentBlueprint{Category: ship.CategoryMainThruster, ThrustKN: 220.0}
	assert.InDelta(t, 0.44, performanceFitness(thruster), 1e-9)

	overdrive := &ship.ComponentBlueprint{Category: ship.CategoryMainThruster, ThrustKN: 1000.0}
	assert.Equal(t, 1.0, performanceFitness(overdrive))

	shield := &ship.ComponentBlueprint{Category: ship.CategoryShield, Shield: &ship.ShieldSpec{CapacityMJ: 150.0}}
	assert.InDelta(t, 0.75, performanceFitness(shield), 1e-9)

	bareShield := &ship.ComponentBlueprint{Category: ship.CategoryShield}
	assert.Equal(t, 0.0, performanceFitness(bareShield))

	weapon := &ship.ComponentBlueprint{Category: ship.CategoryWeapon, Weapon: &ship.WeaponSpec{DamagePerShot: 50.0}}
	assert.Equal(t, 1.0, performanceFitness(weapon))

	bareWeapon := &ship.ComponentBlueprint{Category: ship.CategoryWeapon}
	assert.Equal(t, 0.0, performanceFitness(bareWeapon))

	// Categories with no headline number sit at the midpoint.
	cargo := &ship.ComponentBlueprint{Category: ship.CategoryCargo}
	assert.Equal(t, neutralPerformance, performanceFitness(cargo))
}

func TestScoreCandidateBoundsOverDefaults(t *testing.T) {
	a := defaultAssembler()

	for _, bp := range a.components.All() {
		slot := &ship.HullSlot{SlotID: "probe", Category: bp.Category, Size: bp.Size}
		score, reasoning := scoreCandidate(slot, bp, []string{"Nova Dynamics"})
		assert.GreaterOrEqual(t, score, 0.0, "component %s", bp.ID)
		assert.LessOrEqual(t, score, 1.0, "component %s", bp.ID)
		assert.Equal(t, "Compatible component, preferred manufacturer", reasoning, "component %s", bp.ID)
	}
}

func TestSuggestionGroupRecordedWithoutCandidates(t *testing.T) {
	components, hulls := defaultCatalogs()
	hulls.Register(ship.HullBlueprint{
		ID:                    "carrier_stub",
		ClassType:             "Capital",
		DisplayName:           "Carrier Stub",
		BaseMassTons:          200.0,
		StructuralIntegrity:   2000.0,
		BaseCrewCapacity:      8,
		BaseHeatDissipationMW: 20.0,
		Slots: []ship.HullSlot{
			{SlotID: "Hangar_0", Category: ship.CategoryHangar, Size: ship.SizeXL, Required: true},
		},
	})
	a := New(components, hulls)

	// No fallback component is a hangar; the group still records the
	// failure reason.
	result := a.Assemble(ship.NewAssemblyRequest("carrier_stub"))

	assert.False(t, result.IsValid())
	require.Len(t, result.Diagnostics.Suggestions, 1)
	group := result.Diagnostics.Suggestions[0]
	assert.Equal(t, "Hangar_0", group.SlotID)
	assert.Equal(t, "Required slot empty", group.Reason)
	assert.Empty(t, group.Ranked)
}

func TestAssembleSuggestionsForOversizedComponent(t *testing.T) {
	a := defaultAssembler()

	// A Medium turret in the fighter's Small weapon slot.
	req := fighterRequest()
	req.Assign("Weapon_0", "weapon_defensive_turret")

	result := a.Assemble(req)
	require.False(t, result.IsValid())

	require.Len(t, result.Diagnostics.Suggestions, 1)
	group := result.Diagnostics.Suggestions[0]
	assert.Equal(t, "Weapon_0", group.SlotID)
	assert.Equal(t, "Size mismatch", group.Reason)
	assert.Equal(t, []string{
		"weapon_missile_launcher",
		"weapon_twin_cannon",
		"weapon_cooling_cannon",
	}, suggestionIDs(group.Ranked))

	// The turret itself resolved nothing, but its manufacturer still
	// counts toward the preference bonus.
	assert.InDelta(t, 0.925, group.Ranked[0].Score, 1e-9)
	assert.Equal(t, "Compatible component, preferred manufacturer", group.Ranked[0].Reasoning)
}
