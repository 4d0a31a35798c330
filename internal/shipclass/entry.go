// Package shipclass holds the data-driven ship class catalog: entries loaded
// from the ships directory, taxonomy validation applied at load time, faction
// variant resolution, and default loadout expansion into assembly requests.
//
// Entries that violate their class's taxonomy constraints are flagged but
// still registered, so the game launches on imperfect content and surfaces
// the violations instead of hiding the class.
package shipclass

import (
	"github.com/novaengine/shipwright/internal/ship"
	"github.com/novaengine/shipwright/internal/taxonomy"
)

// ProgressionMetadata gates when a class becomes available to the player.
type ProgressionMetadata struct {
	MinLevel          int `json:"minLevel"`
	FactionReputation int `json:"factionReputation"`
	BlueprintCost     int `json:"blueprintCost"`
}

// PassiveBuff is a flat stat modifier a variant grants. Types are free-form
// strings interpreted by downstream gameplay systems.
type PassiveBuff struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// HardpointDelta adjusts one hardpoint group of the baseline layout.
// SizeDelta, when set, overwrites the group size.
type HardpointDelta struct {
	Category   taxonomy.HardpointCategory `json:"category"`
	CountDelta int                        `json:"countDelta"`
	SizeDelta  ship.SlotSize              `json:"sizeDelta,omitempty"`
}

// SlotDelta adjusts one component slot group. The size override key is
// "size" here where hardpoint deltas spell it "sizeDelta"; shipped content
// uses both spellings and the asymmetry is load-bearing.
type SlotDelta struct {
	Category   ship.Category `json:"category"`
	CountDelta int           `json:"countDelta"`
	Size       ship.SlotSize `json:"size,omitempty"`
}

// Variant is a faction flavor of a class plus the layout deltas and passive
// buffs that distinguish it from the baseline.
type Variant struct {
	Faction     string `json:"faction"`
	Codename    string `json:"codename"`
	Description string `json:"description"`

	HardpointDeltas []HardpointDelta `json:"hardpointDeltas,omitempty"`
	SlotDeltas      []SlotDelta      `json:"slotDeltas,omitempty"`
	PassiveBuffs    []PassiveBuff    `json:"passiveBuffs,omitempty"`
}

// DefaultLoadout is a named positional component fit. Components map onto
// the entry's expanded slot ids in declaration order.
type DefaultLoadout struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
}

// Entry is one class catalog entry. Flagged marks entries that carried
// taxonomy violations at load time.
type Entry struct {
	ID          string                `json:"id"`
	Type        taxonomy.ClassType    `json:"type"`
	DisplayName string                `json:"displayName"`
	Concept     taxonomy.ConceptBrief `json:"conceptSummary"`

	Baseline       taxonomy.BaselineStats     `json:"baseline"`
	Hardpoints     []taxonomy.HardpointSpec   `json:"hardpoints"`
	ComponentSlots []taxonomy.SlotSpec        `json:"componentSlots"`
	Progression    []taxonomy.ProgressionTier `json:"progression"`
	Metadata       ProgressionMetadata        `json:"progressionMetadata"`

	Variants        []Variant        `json:"variants,omitempty"`
	DefaultLoadouts []DefaultLoadout `json:"defaultLoadouts"`

	Flagged bool `json:"flagged,omitempty"`
}

// SlotCount returns the total number of individual component slots the
// entry's layout expands to.
func (e *Entry) SlotCount() int {
	total := 0
	for _, s := range e.ComponentSlots {
		total += s.Count
	}
	return total
}

// SlotIDs returns the slot ids the entry's component slots expand to.
func (e *Entry) SlotIDs() []string {
	return taxonomy.BuildSlotIDs(e.ComponentSlots)
}

// Loadout returns the named default loadout, or nil.
func (e *Entry) Loadout(name string) *DefaultLoadout {
	for i := range e.DefaultLoadouts {
		if e.DefaultLoadouts[i].Name == name {
			return &e.DefaultLoadouts[i]
		}
	}
	return nil
}

// FindVariant returns the variant with the given codename, or nil.
func (e *Entry) FindVariant(codename string) *Variant {
	for i := range e.Variants {
		if e.Variants[i].Codename == codename {
			return &e.Variants[i]
		}
	}
	return nil
}
