package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novaengine/shipwright/internal/ship"
)

func TestParseClassType(t *testing.T) {
	tests := []struct {
		input string
		want  ClassType
		ok    bool
	}{
		{"Fighter", ClassFighter, true},
		{"fighter", ClassFighter, true},
		{"FREIGHTER", ClassFreighter, true},
		{"explorer", ClassExplorer, true},
		{"Industrial", ClassIndustrial, true},
		{"capital", ClassCapital, true},
		{"Corvette", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseClassType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHardpointCategory(t *testing.T) {
	tests := []struct {
		input string
		want  HardpointCategory
		ok    bool
	}{
		{"PrimaryWeapon", HardpointPrimaryWeapon, true},
		{"primaryweapon", HardpointPrimaryWeapon, true},
		{"Utility", HardpointUtility, true},
		{"module", HardpointModule, true},
		{"Turret", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseHardpointCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassTypeValid(t *testing.T) {
	for _, c := range AllClassTypes {
		assert.True(t, c.Valid(), "class %s", c)
	}
	assert.False(t, ClassType("Cruiser").Valid())
	assert.False(t, ClassType("").Valid())
}

func TestDefinitionsCoverEveryClass(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, len(AllClassTypes))

	for i, def := range defs {
		assert.Equal(t, AllClassTypes[i], def.Type)
		assert.NotEmpty(t, def.DisplayName)
		assert.NotEmpty(t, def.Concept.ElevatorPitch)
		assert.NotEmpty(t, def.Progression)
		assert.Len(t, def.Variants, 3)
	}
}

func TestDefinitionsLayoutsAreWellFormed(t *testing.T) {
	for _, def := range Definitions() {
		t.Run(string(def.Type), func(t *testing.T) {
			seen := map[HardpointCategory]bool{}
			for _, hp := range def.Hardpoints {
				assert.True(t, hp.Category.Valid())
				assert.True(t, hp.Size.Valid())
				assert.Greater(t, hp.Count, 0)
				seen[hp.Category] = true
			}
			for _, cat := range AllHardpointCategories {
				assert.True(t, seen[cat], "missing hardpoint category %s", cat)
			}

			for _, slot := range def.Slots {
				assert.True(t, slot.Category.Valid())
				assert.True(t, slot.Size.Valid())
				assert.Greater(t, slot.Count, 0)
				assert.NotEmpty(t, slot.Notes)
			}

			assert.Less(t, def.Baseline.MinMassTons, def.Baseline.MaxMassTons)
			assert.LessOrEqual(t, def.Baseline.MinCrew, def.Baseline.MaxCrew)
			assert.Less(t, def.Baseline.MinPowerBudgetMW, def.Baseline.MaxPowerBudgetMW)
		})
	}
}

func TestDefinitionLookup(t *testing.T) {
	def, ok := Definition(ClassFreighter)
	require.True(t, ok)
	assert.Equal(t, "Freighter", def.DisplayName)
	assert.Equal(t, 90.0, def.Baseline.MinMassTons)

	_, ok = Definition(ClassType("Gunship"))
	assert.False(t, ok)
}

func TestSlotCount(t *testing.T) {
	tests := []struct {
		class ClassType
		want  int
	}{
		{ClassFighter, 11},
		{ClassFreighter, 16},
		{ClassExplorer, 15},
		{ClassIndustrial, 21},
		{ClassCapital, 32},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			def, ok := Definition(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.want, def.SlotCount())
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 25, Max: 35}
	assert.True(t, r.Contains(25))
	assert.True(t, r.Contains(30))
	assert.True(t, r.Contains(35))
	assert.False(t, r.Contains(24.9))
	assert.False(t, r.Contains(35.1))
}

func TestConstraintForDerivesFromDefinition(t *testing.T) {
	c, ok := ConstraintFor(ClassFighter)
	require.True(t, ok)

	assert.Equal(t, Range{Min: 25, Max: 35}, c.MassTons)
	assert.Equal(t, Range{Min: 1, Max: 2}, c.Crew)
	assert.Equal(t, Range{Min: 8, Max: 12}, c.PowerBudgetMW)

	assert.Equal(t, Shape{Size: ship.SizeSmall, Count: 2}, c.Hardpoints[HardpointPrimaryWeapon])
	assert.Equal(t, Shape{Size: ship.SizeXS, Count: 1}, c.Hardpoints[HardpointUtility])
	assert.Equal(t, Shape{Size: ship.SizeXS, Count: 4}, c.Slots[ship.CategoryManeuverThruster])
	assert.Equal(t, Shape{Size: ship.SizeSmall, Count: 2}, c.Slots[ship.CategoryWeapon])
}

func TestConstraintForEveryClass(t *testing.T) {
	for _, class := range AllClassTypes {
		c, ok := ConstraintFor(class)
		require.True(t, ok, "class %s", class)
		assert.NotEmpty(t, c.Hardpoints)
		assert.NotEmpty(t, c.Slots)
	}

	_, ok := ConstraintFor(ClassType("Dreadnought"))
	assert.False(t, ok)
}

func TestBuildSlotIDs(t *testing.T) {
	def, ok := Definition(ClassFighter)
	require.True(t, ok)

	ids := BuildSlotIDs(def.Slots)
	want := []string{
		"PowerPlant_0",
		"MainThruster_0",
		"ManeuverThruster_0",
		"ManeuverThruster_1",
		"ManeuverThruster_2",
		"ManeuverThruster_3",
		"Shield_0",
		"Weapon_0",
		"Weapon_1",
		"Sensor_0",
		"Support_0",
	}
	assert.Equal(t, want, ids)
}

func TestExpandHullFighter(t *testing.T) {
	def, ok := Definition(ClassFighter)
	require.True(t, ok)

	hull := ExpandHull("fighter_mk1", def)

	assert.Equal(t, "fighter_mk1", hull.ID)
	assert.Equal(t, "Fighter", hull.ClassType)
	assert.Equal(t, "Fighter Hull", hull.DisplayName)
	assert.Equal(t, 25.0, hull.BaseMassTons)
	assert.Equal(t, 350.0, hull.StructuralIntegrity)
	assert.Equal(t, 1, hull.BaseCrewRequired)
	assert.Equal(t, 2, hull.BaseCrewCapacity)
	assert.Equal(t, 0.0, hull.BaseHeatGenerationMW)
	assert.Equal(t, 12.0, hull.BaseHeatDissipationMW)

	require.Len(t, hull.Slots, 11)
	first := hull.Slots[0]
	assert.Equal(t, "PowerPlant_0", first.SlotID)
	assert.Equal(t, ship.CategoryPowerPlant, first.Category)
	assert.Equal(t, ship.SizeSmall, first.Size)
	assert.Equal(t, "Compact fusion core", first.Notes)
	assert.True(t, first.Required)

	for _, slot := range hull.Slots {
		assert.True(t, slot.Required, "slot %s", slot.SlotID)
	}
}

func TestExpandHullValidatesForEveryClass(t *testing.T) {
	for _, class := range AllClassTypes {
		def, ok := Definition(class)
		require.True(t, ok)

		hull := ExpandHull("test_"+string(class), def)
		assert.NoError(t, hull.Validate(), "class %s", class)
		assert.Len(t, hull.Slots, def.SlotCount())
	}
}
