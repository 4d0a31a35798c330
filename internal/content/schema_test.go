package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/novaengine/shipwright/internal/errors"
)

func TestNewSchemaCompiles(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NotNil(t, s)

	// The per-kind definitions are non-concrete until unified with a
	// document; construction must still resolve them to something usable.
	doc := `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5}`
	assert.NoError(t, s.ValidateComponent([]byte(doc), "probe.json"))
}

func TestValidateComponent(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "minimal valid",
			doc:  `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5}`,
		},
		{
			name: "full weapon",
			doc: `{
				"id": "twin_cannon", "displayName": "Twin Cannon",
				"category": "Weapon", "size": "Small", "massTons": 3.5,
				"powerDrawMW": 2.0, "heatGenerationMW": 2.5, "heatDissipationMW": 1.0,
				"schemaVersion": 1, "techTier": 1, "manufacturer": "Nova Dynamics",
				"weaponDamagePerShot": 15, "weaponRangeKm": 5, "weaponFireRatePerSecond": 10,
				"weaponAmmoCapacity": 200, "weaponAmmoType": "projectile"
			}`,
		},
		{
			name: "weapon category without weapon stats",
			doc:  `{"id": "rack", "displayName": "Cooling Rack", "category": "Weapon", "size": "Small", "massTons": 2.8}`,
		},
		{
			name:    "missing id",
			doc:     `{"displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5}`,
			wantErr: "id",
		},
		{
			name:    "missing massTons",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS"}`,
			wantErr: "massTons",
		},
		{
			name:    "unknown category",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Gadget", "size": "XS", "massTons": 0.5}`,
			wantErr: "category",
		},
		{
			name:    "unknown size",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "Tiny", "massTons": 0.5}`,
			wantErr: "size",
		},
		{
			name:    "negative mass",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": -1}`,
			wantErr: "massTons",
		},
		{
			name:    "weapon stats on a sensor",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5, "weaponDamagePerShot": 10}`,
			wantErr: "weaponDamagePerShot",
		},
		{
			name:    "absorption above one",
			doc:     `{"id": "bubble", "displayName": "Bubble", "category": "Shield", "size": "Small", "massTons": 3, "shieldCapacityMJ": 150, "shieldDamageAbsorption": 1.5}`,
			wantErr: "shieldDamageAbsorption",
		},
		{
			name:    "envelope minimum above maximum",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5, "minPowerEnvelopeMW": 60, "maxPowerEnvelopeMW": 20}`,
			wantErr: "conflicting",
		},
		{
			name:    "envelope minimum above default maximum",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5, "minPowerEnvelopeMW": 2000}`,
			wantErr: "conflicting",
		},
		{
			name:    "unknown top-level key",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5, "warpFactor": 9}`,
			wantErr: "warpFactor",
		},
		{
			name:    "zero schema version",
			doc:     `{"id": "probe", "displayName": "Probe", "category": "Sensor", "size": "XS", "massTons": 0.5, "schemaVersion": 0}`,
			wantErr: "schemaVersion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateComponent([]byte(tt.doc), "test.json")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, serrors.ErrSchema))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateHull(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	valid := `{
		"id": "fighter_mk1", "classType": "Fighter", "displayName": "Fighter Hull",
		"baseMassTons": 25,
		"slots": [
			{"slotId": "PowerPlant_0", "category": "PowerPlant", "size": "Small"},
			{"slotId": "Weapon_0", "category": "Weapon", "size": "Small", "required": false, "adjacentSlotIds": ["PowerPlant_0"]}
		]
	}`
	assert.NoError(t, s.ValidateHull([]byte(valid), "fighter.json"))

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing classType",
			doc:     `{"id": "h", "displayName": "H", "baseMassTons": 1, "slots": []}`,
			wantErr: "classType",
		},
		{
			name:    "unknown class type",
			doc:     `{"id": "h", "classType": "Corvette", "displayName": "H", "baseMassTons": 1, "slots": []}`,
			wantErr: "classType",
		},
		{
			name:    "slot with unknown size",
			doc:     `{"id": "h", "classType": "Fighter", "displayName": "H", "baseMassTons": 1, "slots": [{"slotId": "S_0", "category": "Sensor", "size": "Huge"}]}`,
			wantErr: "size",
		},
		{
			name:    "missing slots",
			doc:     `{"id": "h", "classType": "Fighter", "displayName": "H", "baseMassTons": 1}`,
			wantErr: "slots",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateHull([]byte(tt.doc), "test.json")
			require.Error(t, err)
			assert.True(t, errors.Is(err, serrors.ErrSchema))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateClassEntry(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	valid := `{
		"type": "fighter", "displayName": "Fighter",
		"conceptSummary": {"elevatorPitch": "Fast and fragile.", "gameplayHooks": ["dogfights"]},
		"baseline": {"minMassTons": 25, "maxMassTons": 35, "minCrew": 1, "maxCrew": 2, "minPowerBudgetMW": 8, "maxPowerBudgetMW": 12},
		"hardpoints": [{"category": "PrimaryWeapon", "size": "Small", "count": 2}],
		"componentSlots": [{"category": "PowerPlant", "size": "Small", "count": 1}],
		"progression": [{"tier": 1, "name": "Rookie", "description": "Starter"}],
		"progressionMetadata": {"minLevel": 1, "factionReputation": 0, "blueprintCost": 1000},
		"variants": [{"faction": "Outer Rim", "codename": "Striker", "description": "More guns.",
			"hardpointDeltas": [{"category": "PrimaryWeapon", "countDelta": 1, "sizeDelta": "Medium"}],
			"passiveBuffs": [{"type": "thrustBonus", "value": 0.1}]}],
		"defaultLoadouts": [{"name": "Patrol", "description": "Baseline fit.", "components": ["fusion_core_mk1"]}]
	}`
	assert.NoError(t, s.ValidateClassEntry([]byte(valid), "fighter.json"))

	// Out-of-band metadata values pass the schema gate; the taxonomy
	// validator flags them without rejecting the file.
	outOfBand := `{
		"type": "fighter", "displayName": "Fighter",
		"conceptSummary": {"elevatorPitch": "Fast."},
		"baseline": {"minMassTons": 25, "maxMassTons": 35, "minCrew": 1, "maxCrew": 2, "minPowerBudgetMW": 8, "maxPowerBudgetMW": 12},
		"hardpoints": [], "componentSlots": [], "progression": [],
		"progressionMetadata": {"minLevel": 50, "factionReputation": 0, "blueprintCost": -5},
		"defaultLoadouts": []
	}`
	assert.NoError(t, s.ValidateClassEntry([]byte(outOfBand), "fighter.json"))

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "missing progressionMetadata",
			doc: `{
				"type": "fighter", "displayName": "Fighter",
				"conceptSummary": {"elevatorPitch": "Fast."},
				"baseline": {"minMassTons": 25, "maxMassTons": 35, "minCrew": 1, "maxCrew": 2, "minPowerBudgetMW": 8, "maxPowerBudgetMW": 12},
				"hardpoints": [], "componentSlots": [], "progression": [],
				"defaultLoadouts": []
			}`,
			wantErr: "progressionMetadata",
		},
		{
			name: "missing defaultLoadouts",
			doc: `{
				"type": "fighter", "displayName": "Fighter",
				"conceptSummary": {"elevatorPitch": "Fast."},
				"baseline": {"minMassTons": 25, "maxMassTons": 35, "minCrew": 1, "maxCrew": 2, "minPowerBudgetMW": 8, "maxPowerBudgetMW": 12},
				"hardpoints": [], "componentSlots": [], "progression": [],
				"progressionMetadata": {"minLevel": 1, "factionReputation": 0, "blueprintCost": 0}
			}`,
			wantErr: "defaultLoadouts",
		},
		{
			name: "non-numeric minLevel",
			doc: `{
				"type": "fighter", "displayName": "Fighter",
				"conceptSummary": {"elevatorPitch": "Fast."},
				"baseline": {"minMassTons": 25, "maxMassTons": 35, "minCrew": 1, "maxCrew": 2, "minPowerBudgetMW": 8, "maxPowerBudgetMW": 12},
				"hardpoints": [], "componentSlots": [], "progression": [],
				"progressionMetadata": {"minLevel": "high", "factionReputation": 0, "blueprintCost": 0},
				"defaultLoadouts": []
			}`,
			wantErr: "minLevel",
		},
		{
			name: "variant without description",
			doc: `{
				"type": "fighter", "displayName": "Fighter",
				"conceptSummary": {"elevatorPitch": "Fast."},
				"baseline": {"minMassTons": 25, "maxMassTons": 35, "minCrew": 1, "maxCrew": 2, "minPowerBudgetMW": 8, "maxPowerBudgetMW": 12},
				"hardpoints": [], "componentSlots": [], "progression": [],
				"progressionMetadata": {"minLevel": 1, "factionReputation": 0, "blueprintCost": 0},
				"variants": [{"faction": "Outer Rim", "codename": "Striker"}],
				"defaultLoadouts": []
			}`,
			wantErr: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateClassEntry([]byte(tt.doc), "test.json")
			require.Error(t, err)
			assert.True(t, errors.Is(err, serrors.ErrSchema))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
