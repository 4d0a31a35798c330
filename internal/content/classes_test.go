package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novaengine/shipwright/internal/catalog"
	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/ship"
	"github.com/novaengine/shipwright/internal/shipclass"
	"github.com/novaengine/shipwright/internal/taxonomy"
	"github.com/novaengine/shipwright/internal/testutil"
)

// classDoc returns a fighter class entry document that conforms to the
// built-in taxonomy. Tests mutate it per case.
func classDoc(id string) map[string]any {
	return map[string]any{
		"id":          id,
		"type":        "Fighter",
		"displayName": "Test Fighter",
		"conceptSummary": map[string]any{
			"elevatorPitch": "Test interceptor.",
		},
		"baseline": map[string]any{
			"minMassTons": 25.0, "maxMassTons": 35.0,
			"minCrew": 1, "maxCrew": 2,
			"minPowerBudgetMW": 8.0, "maxPowerBudgetMW": 12.0,
		},
		"hardpoints": []any{
			map[string]any{"category": "PrimaryWeapon", "size": "Small", "count": 2},
			map[string]any{"category": "Utility", "size": "XS", "count": 1},
			map[string]any{"category": "Module", "size": "Small", "count": 1},
		},
		"componentSlots": []any{
			map[string]any{"category": "PowerPlant", "size": "Small", "count": 1},
			map[string]any{"category": "MainThruster", "size": "Small", "count": 1},
			map[string]any{"category": "ManeuverThruster", "size": "XS", "count": 4},
			map[string]any{"category": "Shield", "size": "Small", "count": 1},
			map[string]any{"category": "Weapon", "size": "Small", "count": 2},
			map[string]any{"category": "Sensor", "size": "Small", "count": 1},
			map[string]any{"category": "Support", "size": "XS", "count": 1},
		},
		"progression": []any{
			map[string]any{"tier": 1, "name": "Starter", "description": "Entry hull."},
			map[string]any{"tier": 2, "name": "Specialist", "description": "Upgraded hull."},
		},
		"progressionMetadata": map[string]any{
			"minLevel": 1, "factionReputation": 0, "blueprintCost": 0,
		},
		"defaultLoadouts": []any{},
	}
}

func TestLoadClassEntriesRegistersAndSkipsHulls(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	testutil.WriteJSON(t, dir, "a_class.json", classDoc("vanguard"))
	testutil.WriteJSON(t, dir, "b_hull.json", hullDoc("interceptor", nil))
	testutil.WriteFile(t, dir, "c_mystery.json", `{"hello": "world"}`)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	assert.True(t, report.OK())
	assert.Equal(t, 1, report.Loaded())
	assert.Equal(t, 2, report.Skipped())
	assert.Equal(t, 0, report.Failed())
	require.Len(t, report.Files, 3)
	assert.Equal(t, "vanguard", report.Files[0].ID)
	assert.True(t, report.Files[1].Skipped, "hull files are another loader's business")
	assert.Nil(t, report.Files[1].Err)
	assert.True(t, report.Files[2].Skipped, "unknown documents are reported by the hull loader")
	assert.Nil(t, report.Files[2].Err)

	assert.Equal(t, 1, cat.Len())
	e := cat.Find("vanguard")
	require.NotNil(t, e)
	assert.False(t, e.Flagged)
	assert.Equal(t, taxonomy.ClassFighter, e.Type)
	assert.Empty(t, cat.ValidationErrors())
}

func TestLoadClassEntriesFlagsViolatingEntry(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	doc := classDoc("gatecrasher")
	doc["progressionMetadata"] = map[string]any{
		"minLevel": 50, "factionReputation": 0, "blueprintCost": 0,
	}
	path := testutil.WriteJSON(t, dir, "gatecrasher.json", doc)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	assert.Equal(t, 1, report.Loaded())
	assert.Equal(t, 1, report.Flagged())
	require.Len(t, report.Files, 1)
	assert.Contains(t, report.Files[0].Flags,
		"Progression metadata minLevel 50 outside supported range (1-40)")

	e := cat.Find("gatecrasher")
	require.NotNil(t, e, "violating entries register anyway")
	assert.True(t, e.Flagged)

	violations := cat.ValidationErrors()
	require.Len(t, violations, 1)
	assert.Equal(t,
		path+": Progression metadata minLevel 50 outside supported range (1-40)",
		violations[0])
}

func TestLoadClassEntriesLayeredLoadsKeepViolations(t *testing.T) {
	dirA, cleanupA := testutil.TempDir(t)
	defer cleanupA()
	doc := classDoc("gatecrasher")
	doc["progressionMetadata"] = map[string]any{
		"minLevel": 50, "factionReputation": 0, "blueprintCost": 0,
	}
	testutil.WriteJSON(t, dirA, "gatecrasher.json", doc)

	dirB, cleanupB := testutil.TempDir(t)
	defer cleanupB()
	testutil.WriteJSON(t, dirB, "clean.json", classDoc("clean"))

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	l.LoadClassEntries(dirA, cat)
	require.NotEmpty(t, cat.ValidationErrors())

	// Layering a clean directory on top leaves the flagged entry registered,
	// and its violation record must stay with it.
	l.LoadClassEntries(dirB, cat)

	require.NotNil(t, cat.Find("gatecrasher"))
	require.NotNil(t, cat.Find("clean"))
	violations := cat.ValidationErrors()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "minLevel 50")

	// Re-registering the entry in corrected form clears its record.
	testutil.WriteJSON(t, dirB, "gatecrasher.json", classDoc("gatecrasher"))
	l.LoadClassEntries(dirB, cat)
	assert.Empty(t, cat.ValidationErrors())
}

func TestLoadClassEntriesUnknownClassType(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	doc := classDoc("corvette_x")
	doc["type"] = "Corvette"
	testutil.WriteJSON(t, dir, "corvette.json", doc)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	assert.False(t, report.OK())
	require.Len(t, report.Files, 1)
	assert.Equal(t, FailureSchema, report.Files[0].Kind)
	assert.Contains(t, report.Files[0].Err.Error(), "Unknown class type 'Corvette'")
	assert.Equal(t, 0, cat.Len())
}

func TestLoadClassEntriesInvalidShapeSpecs(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	badHardpoint := classDoc("bad_hardpoint")
	badHardpoint["hardpoints"] = []any{
		map[string]any{"category": "Turret", "size": "Small", "count": 1},
	}
	testutil.WriteJSON(t, dir, "a_hardpoint.json", badHardpoint)

	badSlot := classDoc("bad_slot")
	badSlot["componentSlots"] = []any{
		map[string]any{"category": "Gadget", "size": "Small", "count": 1},
	}
	testutil.WriteJSON(t, dir, "b_slot.json", badSlot)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	assert.Equal(t, 2, report.Failed())
	require.Len(t, report.Files, 2)
	assert.Contains(t, report.Files[0].Err.Error(), "Invalid hardpoint spec encountered")
	assert.Contains(t, report.Files[1].Err.Error(), "Invalid component slot specification")
	assert.Equal(t, 0, cat.Len())
}

func TestLoadClassEntriesCaseInsensitiveNames(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	doc := classDoc("lowercase")
	doc["type"] = "fighter"
	doc["hardpoints"] = []any{
		map[string]any{"category": "primaryweapon", "size": "small", "count": 2},
		map[string]any{"category": "utility", "size": "xs", "count": 1},
		map[string]any{"category": "module", "size": "small", "count": 1},
	}
	doc["componentSlots"] = []any{
		map[string]any{"category": "powerplant", "size": "small", "count": 1},
		map[string]any{"category": "mainthruster", "size": "small", "count": 1},
		map[string]any{"category": "maneuverthruster", "size": "xs", "count": 4},
		map[string]any{"category": "shield", "size": "small", "count": 1},
		map[string]any{"category": "weapon", "size": "small", "count": 2},
		map[string]any{"category": "sensor", "size": "small", "count": 1},
		map[string]any{"category": "support", "size": "xs", "count": 1},
	}
	testutil.WriteJSON(t, dir, "lowercase.json", doc)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	require.Equal(t, 1, report.Loaded())
	e := cat.Find("lowercase")
	require.NotNil(t, e)
	assert.False(t, e.Flagged, "folded names must land on canonical categories")
	assert.Equal(t, taxonomy.ClassFighter, e.Type)
	assert.Equal(t, ship.CategoryPowerPlant, e.ComponentSlots[0].Category)
	assert.Equal(t, ship.SizeXS, e.ComponentSlots[2].Size)
	assert.Equal(t, taxonomy.HardpointPrimaryWeapon, e.Hardpoints[0].Category)
}

func TestLoadClassEntriesDropsMalformedVariantElements(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	doc := classDoc("variant_host")
	doc["variants"] = []any{
		map[string]any{
			"faction":     "Outer Rim Syndicate",
			"codename":    "Viper",
			"description": "Stripped-down runner.",
			"hardpointDeltas": []any{
				map[string]any{"category": "Utility", "countDelta": 1},
				map[string]any{"category": "Utility"},
				map[string]any{"category": "Turret", "countDelta": 1},
				map[string]any{"category": "Module", "countDelta": 1, "sizeDelta": "Gigantic"},
			},
			"slotDeltas": []any{
				map[string]any{"category": "Cargo", "countDelta": 2, "size": 99},
			},
			"passiveBuffs": []any{
				map[string]any{"type": "sensor_bonus", "value": 1.5},
				map[string]any{"type": "dangling"},
			},
		},
	}
	testutil.WriteJSON(t, dir, "variant_host.json", doc)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	require.Equal(t, 1, report.Loaded(), "malformed variant elements never fail the file")
	e := cat.Find("variant_host")
	require.NotNil(t, e)
	require.Len(t, e.Variants, 1)

	v := e.Variants[0]
	require.Len(t, v.HardpointDeltas, 1)
	assert.Equal(t, taxonomy.HardpointUtility, v.HardpointDeltas[0].Category)
	assert.Equal(t, 1, v.HardpointDeltas[0].CountDelta)

	// A size override of the wrong JSON type is ignored, not fatal.
	require.Len(t, v.SlotDeltas, 1)
	assert.Equal(t, ship.CategoryCargo, v.SlotDeltas[0].Category)
	assert.Equal(t, 2, v.SlotDeltas[0].CountDelta)
	assert.Empty(t, v.SlotDeltas[0].Size)

	require.Len(t, v.PassiveBuffs, 1)
	assert.Equal(t, "sensor_bonus", v.PassiveBuffs[0].Type)
}

func TestLoadClassEntriesIDFallsBackToStem(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	doc := classDoc("")
	delete(doc, "id")
	testutil.WriteJSON(t, dir, "stem_class.json", doc)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	require.Equal(t, 1, report.Loaded())
	assert.Equal(t, "stem_class", report.Files[0].ID)
	assert.NotNil(t, cat.Find("stem_class"))
}

func TestLoadClassEntriesDuplicateIDFirstWins(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	first := classDoc("twin")
	first["displayName"] = "First Twin"
	testutil.WriteJSON(t, dir, "a.json", first)
	second := classDoc("twin")
	second["displayName"] = "Second Twin"
	testutil.WriteJSON(t, dir, "b.json", second)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	assert.Equal(t, 1, report.Loaded())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, FailureDuplicate, report.Files[1].Kind)
	assert.ErrorIs(t, report.Files[1].Err, serrors.ErrDuplicateID)

	e := cat.Find("twin")
	require.NotNil(t, e)
	assert.Equal(t, "First Twin", e.DisplayName)
}

func TestLoadClassEntriesRejectsBrokenDocuments(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	testutil.WriteFile(t, dir, "a_array.json", `[1, 2]`)
	testutil.WriteFile(t, dir, "b_broken.json", `{"type":`)

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	report := l.LoadClassEntries(dir, cat)

	require.Len(t, report.Files, 2)
	assert.Equal(t, FailureSchema, report.Files[0].Kind)
	assert.Contains(t, report.Files[0].Err.Error(), "Root JSON value must be an object")
	assert.Equal(t, FailureParse, report.Files[1].Kind)
	assert.Equal(t, 0, cat.Len())
}

func TestReloadClassEntriesNoChangeIsANoOp(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	testutil.WriteJSON(t, dir, "entry.json", classDoc("steady"))

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	l.LoadClassEntries(dir, cat)
	gen := cat.Generation()

	rebuilt, report := l.ReloadClassEntries(dir, cat)

	assert.False(t, rebuilt)
	assert.Nil(t, report)
	assert.Equal(t, gen, cat.Generation())
}

func TestReloadClassEntriesRebuildsOnChange(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	path := testutil.WriteJSON(t, dir, "alpha.json", classDoc("alpha"))

	l := newTestLoader(t)
	cat := shipclass.NewCatalog()
	l.LoadClassEntries(dir, cat)
	require.Empty(t, cat.ValidationErrors())

	doc := classDoc("alpha")
	doc["displayName"] = "Alpha Revised"
	doc["progressionMetadata"] = map[string]any{
		"minLevel": 50, "factionReputation": 0, "blueprintCost": 0,
	}
	testutil.WriteJSON(t, dir, "alpha.json", doc)
	testutil.Touch(t, path)
	testutil.WriteJSON(t, dir, "beta.json", classDoc("beta"))

	rebuilt, report := l.ReloadClassEntries(dir, cat)

	require.True(t, rebuilt)
	require.NotNil(t, report)
	assert.Equal(t, 2, report.Loaded())
	assert.Equal(t, 2, cat.Len())

	e := cat.Find("alpha")
	require.NotNil(t, e)
	assert.Equal(t, "Alpha Revised", e.DisplayName)
	assert.True(t, e.Flagged)

	violations := cat.ValidationErrors()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "minLevel 50")
}

func TestReloadClassEntriesIndexIsIndependentOfHulls(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	testutil.WriteJSON(t, dir, "hull.json", hullDoc("interceptor", nil))
	testutil.WriteJSON(t, dir, "class.json", classDoc("vanguard"))

	l := newTestLoader(t)
	hulls := catalog.NewHullCatalog()
	classes := shipclass.NewCatalog()
	l.LoadHulls(dir, hulls)
	l.LoadClassEntries(dir, classes)

	testutil.WriteJSON(t, dir, "late_class.json", classDoc("latecomer"))

	// The hull loader polls first and must not swallow the change for the
	// class loader.
	hullRebuilt, _ := l.ReloadHulls(dir, hulls)
	assert.True(t, hullRebuilt)
	classRebuilt, _ := l.ReloadClassEntries(dir, classes)
	assert.True(t, classRebuilt)

	assert.Equal(t, 2, classes.Len())
	assert.NotNil(t, classes.Find("latecomer"))
	assert.Equal(t, 1, hulls.Len())
}
