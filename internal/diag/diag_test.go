package diag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeValuesAreStable(t *testing.T) {
	// Savegames and external tooling store these numbers.
	assert.Equal(t, 0, int(CodeInvalidHullID))
	assert.Equal(t, 2, int(CodeSlotMissingRequiredComponent))
	assert.Equal(t, 5, int(CodeSlotSizeMismatch))
	assert.Equal(t, 10, int(CodePerformanceCrewShortfall))
	assert.Equal(t, 13, int(CodeCompatibilitySlotAdjacencyIssue))
	assert.Equal(t, 16, int(CodeSuggestionPowerOptimization))
}

func TestCodeRoundTripsThroughText(t *testing.T) {
	for code, name := range codeNames {
		assert.Equal(t, name, code.String())
		assert.True(t, code.Valid())

		parsed, ok := ParseCode(name)
		require.True(t, ok, name)
		assert.Equal(t, code, parsed)
	}

	assert.Equal(t, "CODE_99", Code(99).String())
	assert.False(t, Code(99).Valid())
	_, ok := ParseCode("NO_SUCH_CODE")
	assert.False(t, ok)
}

func TestCodeSerializesSymbolically(t *testing.T) {
	data, err := json.Marshal(Diagnostic{
		Severity: SeverityError,
		Code:     CodeSlotSizeMismatch,
		Message:  "too big",
		SlotID:   "Weapon_0",
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reasonCode":"SLOT_SIZE_MISMATCH"`)

	var d Diagnostic
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, CodeSlotSizeMismatch, d.Code)
}

func TestReportEmissionOrderAndQueries(t *testing.T) {
	var r Report
	assert.True(t, r.Empty())

	r.Error(CodeSlotMissingRequiredComponent, "slot is empty", "PowerPlant_0")
	r.Warning(CodePerformancePowerDeficit, "not enough power", "")
	r.Error(CodeComponentUnknownID, "no such component", "Weapon_0", "warp_drive_mk9")

	assert.False(t, r.Empty())
	assert.True(t, r.HasErrors())
	assert.True(t, r.HasWarnings())

	errs := r.BySeverity(SeverityError)
	require.Len(t, errs, 2)
	assert.Equal(t, "PowerPlant_0", errs[0].SlotID)
	assert.Equal(t, []string{"warp_drive_mk9"}, errs[1].RelatedComponents)
	assert.Empty(t, r.BySeverity(SeverityInfo))
}

func TestUserFacingMessageFormat(t *testing.T) {
	var r Report
	r.Error(CodeSlotSizeMismatch, "Component 'beam array' does not fit", "Weapon_0")
	r.Warning(CodePerformanceHeatAccumulation, "Heat accumulates", "")

	msgs := r.UserFacingMessages(nil, nil)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Error: Component 'beam array' does not fit (slot: slot 'Weapon_0') [Code: 5]", msgs[0])
	// Ship-wide diagnostics carry no slot context.
	assert.Equal(t, "Warning: Heat accumulates [Code: 9]", msgs[1])
}

func TestUserFacingSuggestionLines(t *testing.T) {
	var r Report
	r.Suggest("Weapon_0", "No component assigned", []Suggestion{
		{ComponentID: "weapon_twin_cannon", Score: 0.92},
		{ComponentID: "weapon_missile_launcher", Score: 0.675},
	})
	r.Suggest("Sensor_0", "No compatible component exists", nil)

	msgs := r.UserFacingMessages(
		func(slotID string) string { return slotID },
		func(componentID string) string { return componentID },
	)
	require.Len(t, msgs, 2)
	assert.Equal(t,
		"Suggestion for Weapon_0: No component assigned. Try installing weapon_twin_cannon (92.0%), weapon_missile_launcher (67.5%)",
		msgs[0])
	// An empty candidate list still surfaces the reason.
	assert.Equal(t, "Suggestion for Sensor_0: No compatible component exists", msgs[1])
}
