package shipclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novaengine/shipwright/internal/ship"
	"github.com/novaengine/shipwright/internal/taxonomy"
)

func TestResolveVariantLayoutAppliesDeltas(t *testing.T) {
	e := conformingEntry(t, taxonomy.ClassFighter)
	v := &Variant{
		Faction:  "Outer Rim Syndicate",
		Codename: "Viper",
		HardpointDeltas: []HardpointDelta{
			{Category: taxonomy.HardpointPrimaryWeapon, CountDelta: 1, SizeDelta: ship.SizeMedium},
			{Category: taxonomy.HardpointUtility, CountDelta: -1},
		},
		SlotDeltas: []SlotDelta{
			{Category: ship.CategoryWeapon, CountDelta: -1, Size: ship.SizeMedium},
			{Category: ship.CategoryCargo, CountDelta: 1},
		},
		PassiveBuffs: []PassiveBuff{{Type: "thrust_bonus", Value: 0.15}},
	}

	layout := ResolveVariantLayout(e, v)

	// The utility group drops to zero and is pruned.
	require.Len(t, layout.Hardpoints, 2)
	assert.Equal(t, taxonomy.HardpointPrimaryWeapon, layout.Hardpoints[0].Category)
	assert.Equal(t, 3, layout.Hardpoints[0].Count)
	assert.Equal(t, ship.SizeMedium, layout.Hardpoints[0].Size)
	assert.Equal(t, taxonomy.HardpointModule, layout.Hardpoints[1].Category)

	weapons := findSlot(layout.ComponentSlots, ship.CategoryWeapon)
	require.NotEqual(t, -1, weapons)
	assert.Equal(t, 1, layout.ComponentSlots[weapons].Count)
	assert.Equal(t, ship.SizeMedium, layout.ComponentSlots[weapons].Size)

	// A positive delta on an absent category appends a Small group.
	cargo := findSlot(layout.ComponentSlots, ship.CategoryCargo)
	require.NotEqual(t, -1, cargo)
	assert.Equal(t, 1, layout.ComponentSlots[cargo].Count)
	assert.Equal(t, ship.SizeSmall, layout.ComponentSlots[cargo].Size)

	assert.Equal(t, v.PassiveBuffs, layout.PassiveBuffs)
}

func TestResolveVariantLayoutClampsAndPrunes(t *testing.T) {
	e := conformingEntry(t, taxonomy.ClassFighter)
	v := &Variant{
		Codename: "Stripped",
		HardpointDeltas: []HardpointDelta{
			{Category: taxonomy.HardpointUtility, CountDelta: -5},
		},
		SlotDeltas: []SlotDelta{
			{Category: ship.CategoryHangar, CountDelta: -1},
		},
	}

	layout := ResolveVariantLayout(e, v)

	assert.Equal(t, -1, findHardpoint(layout.Hardpoints, taxonomy.HardpointUtility))
	// A negative delta on an absent category never creates the group.
	assert.Equal(t, -1, findSlot(layout.ComponentSlots, ship.CategoryHangar))
	assert.Len(t, layout.ComponentSlots, len(e.ComponentSlots))
}

func TestResolveVariantLayoutNoDeltas(t *testing.T) {
	e := conformingEntry(t, taxonomy.ClassFighter)
	v := &Variant{Faction: "Terran Navy", Codename: "Raptor"}

	layout := ResolveVariantLayout(e, v)

	assert.Equal(t, e.Hardpoints, layout.Hardpoints)
	assert.Equal(t, e.ComponentSlots, layout.ComponentSlots)
	assert.Empty(t, layout.PassiveBuffs)
}

func TestResolveVariantLayoutLeavesEntryIntact(t *testing.T) {
	e := conformingEntry(t, taxonomy.ClassFighter)
	before := append([]taxonomy.HardpointSpec(nil), e.Hardpoints...)
	v := &Variant{
		Codename: "Ghost",
		HardpointDeltas: []HardpointDelta{
			{Category: taxonomy.HardpointUtility, CountDelta: -1},
		},
	}

	_ = ResolveVariantLayout(e, v)

	assert.Equal(t, before, e.Hardpoints)
}
