package diag

import "fmt"

// Code is a stable, machine-readable diagnostic reason. The numeric values
// are an external contract consumed by tooling and savegames; never renumber
// an existing code, only append.
type Code int

// Diagnostic reason codes.
const (
	// Hull resolution.
	CodeInvalidHullID Code = 0
	CodeHullNotFound  Code = 1

	// Slot checks.
	CodeSlotMissingRequiredComponent Code = 2
	CodeSlotUnusedAssignment         Code = 3
	CodeSlotCategoryMismatch         Code = 4
	CodeSlotSizeMismatch             Code = 5

	// Component resolution.
	CodeComponentNotFound  Code = 6
	CodeComponentUnknownID Code = 7

	// Performance warnings.
	CodePerformancePowerDeficit     Code = 8
	CodePerformanceHeatAccumulation Code = 9
	CodePerformanceCrewShortfall    Code = 10

	// Soft-rule compatibility warnings.
	CodeCompatibilityManufacturerMismatch  Code = 11
	CodeCompatibilityPowerEnvelopeMismatch Code = 12
	CodeCompatibilitySlotAdjacencyIssue    Code = 13

	// Suggestions.
	CodeSuggestionCompatibleReplacement Code = 14
	CodeSuggestionSizeUpgrade           Code = 15
	CodeSuggestionPowerOptimization     Code = 16
)

var codeNames = map[Code]string{
	CodeInvalidHullID:                      "INVALID_HULL_ID",
	CodeHullNotFound:                       "HULL_NOT_FOUND",
	CodeSlotMissingRequiredComponent:       "SLOT_MISSING_REQUIRED_COMPONENT",
	CodeSlotUnusedAssignment:               "SLOT_UNUSED_ASSIGNMENT",
	CodeSlotCategoryMismatch:               "SLOT_CATEGORY_MISMATCH",
	CodeSlotSizeMismatch:                   "SLOT_SIZE_MISMATCH",
	CodeComponentNotFound:                  "COMPONENT_NOT_FOUND",
	CodeComponentUnknownID:                 "COMPONENT_UNKNOWN_ID",
	CodePerformancePowerDeficit:            "PERFORMANCE_POWER_DEFICIT",
	CodePerformanceHeatAccumulation:        "PERFORMANCE_HEAT_ACCUMULATION",
	CodePerformanceCrewShortfall:           "PERFORMANCE_CREW_SHORTFALL",
	CodeCompatibilityManufacturerMismatch:  "COMPATIBILITY_MANUFACTURER_MISMATCH",
	CodeCompatibilityPowerEnvelopeMismatch: "COMPATIBILITY_POWER_ENVELOPE_MISMATCH",
	CodeCompatibilitySlotAdjacencyIssue:    "COMPATIBILITY_SLOT_ADJACENCY_ISSUE",
	CodeSuggestionCompatibleReplacement:    "SUGGESTION_COMPATIBLE_REPLACEMENT",
	CodeSuggestionSizeUpgrade:              "SUGGESTION_SIZE_UPGRADE",
	CodeSuggestionPowerOptimization:        "SUGGESTION_POWER_OPTIMIZATION",
}

var codesByName = func() map[string]Code {
	m := make(map[string]Code, len(codeNames))
	for c, n := range codeNames {
		m[n] = c
	}
	return m
}()

// String returns the symbolic name, or a numeric placeholder for unknown
// codes.
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("CODE_%d", int(c))
}

// Valid reports whether c is a known code.
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

// MarshalText renders the symbolic name; codes serialize as strings in JSON.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a symbolic code name.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, ok := codesByName[string(text)]
	if !ok {
		return fmt.Errorf("unknown diagnostic code %q", string(text))
	}
	*c = parsed
	return nil
}

// ParseCode returns the Code for its symbolic name.
func ParseCode(name string) (Code, bool) {
	c, ok := codesByName[name]
	return c, ok
}
