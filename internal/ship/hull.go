package ship

import "fmt"

// HullSlot is a typed, sized socket on a hull. AdjacentSlotIDs encode the
// hull's spatial topology; adjacency is directional and is not made
// symmetric automatically.
type HullSlot struct {
	SlotID   string   `json:"slotId"`
	Category Category `json:"category"`
	Size     SlotSize `json:"size"`
	Notes    string   `json:"notes,omitempty"`
	Required bool     `json:"required"`

	// AdjacentSlotIDs lists the slot ids physically adjacent to this one,
	// in declaration order. Every id must resolve on the same hull.
	AdjacentSlotIDs []string `json:"adjacentSlotIds,omitempty"`
}

// HullBlueprint describes a hull: its baseline physical properties and the
// ordered slot list that assemblies fill.
type HullBlueprint struct {
	ID          string `json:"id"`
	ClassType   string `json:"classType"`
	DisplayName string `json:"displayName"`

	BaseMassTons          float64 `json:"baseMassTons"`
	StructuralIntegrity   float64 `json:"structuralIntegrity"`
	BaseCrewRequired      int     `json:"baseCrewRequired"`
	BaseCrewCapacity      int     `json:"baseCrewCapacity"`
	BaseHeatGenerationMW  float64 `json:"baseHeatGenerationMW"`
	BaseHeatDissipationMW float64 `json:"baseHeatDissipationMW"`

	// Slots in declaration order. The assembler visits them in this order
	// and diagnostic ordering depends on it.
	Slots []HullSlot `json:"slots"`
}

// Slot returns the slot with the given id, or nil when the hull has none.
func (h *HullBlueprint) Slot(slotID string) *HullSlot {
	for i := range h.Slots {
		if h.Slots[i].SlotID == slotID {
			return &h.Slots[i]
		}
	}
	return nil
}

// HasSlot reports whether the hull declares a slot with the given id.
func (h *HullBlueprint) HasSlot(slotID string) bool {
	return h.Slot(slotID) != nil
}

// Validate checks hull invariants: unique slot ids, valid categories and
// sizes, and adjacency references that resolve on this hull.
func (h *HullBlueprint) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("hull id is empty")
	}
	seen := make(map[string]struct{}, len(h.Slots))
	for i := range h.Slots {
		s := &h.Slots[i]
		if s.SlotID == "" {
			return fmt.Errorf("hull %s: slot %d has empty id", h.ID, i)
		}
		if _, dup := seen[s.SlotID]; dup {
			return fmt.Errorf("hull %s: duplicate slot id %q", h.ID, s.SlotID)
		}
		seen[s.SlotID] = struct{}{}
		if !s.Category.Valid() {
			return fmt.Errorf("hull %s: slot %s has unknown category %q", h.ID, s.SlotID, s.Category)
		}
		if !s.Size.Valid() {
			return fmt.Errorf("hull %s: slot %s has unknown size %q", h.ID, s.SlotID, s.Size)
		}
	}
	for i := range h.Slots {
		s := &h.Slots[i]
		for _, adj := range s.AdjacentSlotIDs {
			if _, ok := seen[adj]; !ok {
				return fmt.Errorf("hull %s: slot %s references unknown adjacent slot %q", h.ID, s.SlotID, adj)
			}
		}
	}
	return nil
}
