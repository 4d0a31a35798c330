package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/ship"
)

func testComponent(id string, category ship.Category, size ship.SlotSize) ship.ComponentBlueprint {
	return ship.ComponentBlueprint{
		ID:                     id,
		DisplayName:            id,
		Category:               category,
		Size:                   size,
		SchemaVersion:          1,
		TechTier:               1,
		MaxPowerEnvelopeMW:     ship.DefaultMaxPowerEnvelopeMW,
		OptimalPowerEnvelopeMW: ship.DefaultOptimalPowerEnvelopeMW,
	}
}

func TestComponentCatalogRegisterAndFind(t *testing.T) {
	cat := NewComponentCatalog()

	replaced := cat.Register(testComponent("reactor_a", ship.CategoryPowerPlant, ship.SizeSmall))
	assert.False(t, replaced)

	found := cat.Find("reactor_a")
	require.NotNil(t, found)
	assert.Equal(t, "reactor_a", found.ID)

	assert.Nil(t, cat.Find("reactor_b"))
}

func TestComponentCatalogGetMiss(t *testing.T) {
	cat := NewComponentCatalog()

	_, err := cat.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrNotFound))
	assert.Contains(t, err.Error(), "missing")
}

func TestComponentCatalogAllKeepsInsertionOrder(t *testing.T) {
	cat := NewComponentCatalog()
	cat.Register(testComponent("c_third", ship.CategoryWeapon, ship.SizeSmall))
	cat.Register(testComponent("a_first", ship.CategoryShield, ship.SizeSmall))
	cat.Register(testComponent("b_second", ship.CategorySensor, ship.SizeSmall))

	all := cat.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c_third", all[0].ID)
	assert.Equal(t, "a_first", all[1].ID)
	assert.Equal(t, "b_second", all[2].ID)
}

func TestComponentCatalogDuplicateOverwrites(t *testing.T) {
	cat := NewComponentCatalog()
	cat.Register(testComponent("dup", ship.CategoryWeapon, ship.SizeSmall))
	cat.Register(testComponent("other", ship.CategoryShield, ship.SizeSmall))

	updated := testComponent("dup", ship.CategoryWeapon, ship.SizeMedium)
	updated.DisplayName = "Updated"
	replaced := cat.Register(updated)

	assert.True(t, replaced)
	assert.Equal(t, 2, cat.Len())

	found := cat.Find("dup")
	require.NotNil(t, found)
	assert.Equal(t, "Updated", found.DisplayName)
	assert.Equal(t, ship.SizeMedium, found.Size)

	// Overwrite keeps the original insertion position
	all := cat.All()
	assert.Equal(t, "dup", all[0].ID)
	assert.Equal(t, "other", all[1].ID)
}

func TestComponentCatalogOverwriteLeavesOldPointersIntact(t *testing.T) {
	cat := NewComponentCatalog()
	cat.Register(testComponent("stable", ship.CategoryWeapon, ship.SizeSmall))

	before := cat.Find("stable")
	require.NotNil(t, before)

	updated := testComponent("stable", ship.CategoryWeapon, ship.SizeLarge)
	cat.Register(updated)

	// The earlier snapshot still reads the old value; only new lookups see
	// the replacement.
	assert.Equal(t, ship.SizeSmall, before.Size)
	assert.Equal(t, ship.SizeLarge, cat.Find("stable").Size)
}

func TestComponentCatalogGeneration(t *testing.T) {
	cat := NewComponentCatalog()
	g0 := cat.Generation()

	cat.Register(testComponent("a", ship.CategoryWeapon, ship.SizeSmall))
	g1 := cat.Generation()
	assert.Greater(t, g1, g0)

	cat.Find("a")
	cat.All()
	assert.Equal(t, g1, cat.Generation())

	cat.Replace([]ship.ComponentBlueprint{testComponent("b", ship.CategoryShield, ship.SizeSmall)})
	g2 := cat.Generation()
	assert.Greater(t, g2, g1)

	cat.Clear()
	assert.Greater(t, cat.Generation(), g2)
}

func TestComponentCatalogReplace(t *testing.T) {
	cat := NewComponentCatalog()
	cat.Register(testComponent("old", ship.CategoryWeapon, ship.SizeSmall))

	cat.Replace([]ship.ComponentBlueprint{
		testComponent("new_a", ship.CategoryShield, ship.SizeSmall),
		testComponent("new_b", ship.CategorySensor, ship.SizeSmall),
	})

	assert.Nil(t, cat.Find("old"))
	assert.NotNil(t, cat.Find("new_a"))
	assert.Equal(t, 2, cat.Len())
}

func TestComponentCatalogEnsureDefaults(t *testing.T) {
	cat := NewComponentCatalog()
	cat.EnsureDefaults()

	assert.Equal(t, len(DefaultComponents()), cat.Len())
	assert.NotNil(t, cat.Find("fusion_core_mk1"))
	assert.NotNil(t, cat.Find("weapon_twin_cannon"))
}

func TestComponentCatalogEnsureDefaultsFiresOnce(t *testing.T) {
	cat := NewComponentCatalog()
	cat.EnsureDefaults()
	require.NotZero(t, cat.Len())

	cat.Clear()
	cat.EnsureDefaults()
	assert.Zero(t, cat.Len())
}

func TestComponentCatalogEnsureDefaultsSkipsSeededCatalog(t *testing.T) {
	cat := NewComponentCatalog()
	cat.Register(testComponent("from_content", ship.CategoryWeapon, ship.SizeSmall))

	cat.EnsureDefaults()

	assert.Equal(t, 1, cat.Len())
	assert.Nil(t, cat.Find("fusion_core_mk1"))
}

func TestHullCatalogRegisterAndGet(t *testing.T) {
	cat := NewHullCatalog()

	hull := ship.HullBlueprint{
		ID:          "test_hull",
		ClassType:   "Fighter",
		DisplayName: "Test Hull",
		Slots: []ship.HullSlot{
			{SlotID: "PowerPlant_0", Category: ship.CategoryPowerPlant, Size: ship.SizeSmall, Required: true},
		},
	}
	replaced := cat.Register(hull)
	assert.False(t, replaced)

	got, err := cat.Get("test_hull")
	require.NoError(t, err)
	assert.Equal(t, "Test Hull", got.DisplayName)

	_, err = cat.Get("absent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrNotFound))
}

func TestHullCatalogEnsureDefaults(t *testing.T) {
	cat := NewHullCatalog()
	cat.EnsureDefaults()

	assert.Equal(t, 2, cat.Len())
	require.NotNil(t, cat.Find("fighter_mk1"))
	require.NotNil(t, cat.Find("freighter_mk1"))

	all := cat.All()
	assert.Equal(t, "fighter_mk1", all[0].ID)
	assert.Equal(t, "freighter_mk1", all[1].ID)
}
