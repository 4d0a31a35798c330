// Package taxonomy defines the ship class taxonomy: the built-in class
// definitions (baselines, slot layouts, hardpoints, progression) and the
// per-class constraint table used to validate data-driven class catalog
// entries at load time.
package taxonomy

import (
	"strings"

	"github.com/novaengine/shipwright/internal/ship"
)

// ClassType identifies one of the built-in ship classes.
type ClassType string

// Ship classes.
const (
	ClassFighter    ClassType = "Fighter"
	ClassFreighter  ClassType = "Freighter"
	ClassExplorer   ClassType = "Explorer"
	ClassIndustrial ClassType = "Industrial"
	ClassCapital    ClassType = "Capital"
)

// AllClassTypes lists every class in canonical declaration order.
var AllClassTypes = []ClassType{
	ClassFighter,
	ClassFreighter,
	ClassExplorer,
	ClassIndustrial,
	ClassCapital,
}

// Valid reports whether t is one of the built-in classes.
func (t ClassType) Valid() bool {
	for _, c := range AllClassTypes {
		if c == t {
			return true
		}
	}
	return false
}

// ParseClassType matches s against the known classes, ignoring case.
// Content files are authored by hand; tolerating "fighter" costs nothing.
func ParseClassType(s string) (ClassType, bool) {
	for _, c := range AllClassTypes {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// HardpointCategory classifies an external mount point. Hardpoints are
// fit-out metadata on the class definition; the assembler only consumes
// component slots.
type HardpointCategory string

// Hardpoint categories.
const (
	HardpointPrimaryWeapon HardpointCategory = "PrimaryWeapon"
	HardpointUtility       HardpointCategory = "Utility"
	HardpointModule        HardpointCategory = "Module"
)

// AllHardpointCategories lists every hardpoint category in declaration order.
var AllHardpointCategories = []HardpointCategory{
	HardpointPrimaryWeapon,
	HardpointUtility,
	HardpointModule,
}

// Valid reports whether h is a known hardpoint category.
func (h HardpointCategory) Valid() bool {
	for _, c := range AllHardpointCategories {
		if c == h {
			return true
		}
	}
	return false
}

// ParseHardpointCategory matches s against the known hardpoint categories,
// ignoring case.
func ParseHardpointCategory(s string) (HardpointCategory, bool) {
	for _, c := range AllHardpointCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// SlotSpec declares a run of identical component slots on a class layout.
type SlotSpec struct {
	Category ship.Category `json:"category"`
	Size     ship.SlotSize `json:"size"`
	Count    int           `json:"count"`
	Notes    string        `json:"notes,omitempty"`
}

// HardpointSpec declares a run of identical hardpoints on a class layout.
type HardpointSpec struct {
	Category HardpointCategory `json:"category"`
	Size     ship.SlotSize     `json:"size"`
	Count    int               `json:"count"`
	Notes    string            `json:"notes,omitempty"`
}

// BaselineStats bound the physical envelope a hull of this class occupies.
// All intervals are inclusive.
type BaselineStats struct {
	MinMassTons      float64 `json:"minMassTons"`
	MaxMassTons      float64 `json:"maxMassTons"`
	MinCrew          int     `json:"minCrew"`
	MaxCrew          int     `json:"maxCrew"`
	MinPowerBudgetMW float64 `json:"minPowerBudgetMW"`
	MaxPowerBudgetMW float64 `json:"maxPowerBudgetMW"`
}

// ProgressionTier is one step of a class's unlock ladder.
type ProgressionTier struct {
	Tier        int    `json:"tier"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FactionVariant is a named faction flavor of a class. The built-in
// definitions carry flavor only; data-driven catalog entries attach
// layout deltas on top (see the shipclass package).
type FactionVariant struct {
	Faction     string `json:"faction"`
	Codename    string `json:"codename"`
	Description string `json:"description"`
}

// ConceptBrief is the designer-facing summary of a class.
type ConceptBrief struct {
	ElevatorPitch string   `json:"elevatorPitch"`
	GameplayHooks []string `json:"gameplayHooks,omitempty"`
}

// ClassDefinition is a complete built-in class: concept, physical
// baseline, hardpoint and slot layout, progression ladder, and faction
// variants.
type ClassDefinition struct {
	Type        ClassType         `json:"type"`
	DisplayName string            `json:"displayName"`
	Concept     ConceptBrief      `json:"conceptSummary"`
	Baseline    BaselineStats     `json:"baseline"`
	Hardpoints  []HardpointSpec   `json:"hardpoints"`
	Slots       []SlotSpec        `json:"componentSlots"`
	Progression []ProgressionTier `json:"progression"`
	Variants    []FactionVariant  `json:"variants,omitempty"`
}

// SlotCount returns the total number of individual component slots the
// definition expands to.
func (d *ClassDefinition) SlotCount() int {
	total := 0
	for _, s := range d.Slots {
		total += s.Count
	}
	return total
}
