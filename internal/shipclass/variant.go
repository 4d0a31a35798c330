package shipclass

import (
	"github.com/novaengine/shipwright/internal/ship"
	"github.com/novaengine/shipwright/internal/taxonomy"
)

// VariantLayout is a class layout after a variant's deltas are applied. The
// passive buffs ride along for downstream consumers.
type VariantLayout struct {
	Hardpoints     []taxonomy.HardpointSpec `json:"hardpoints"`
	ComponentSlots []taxonomy.SlotSpec      `json:"componentSlots"`
	PassiveBuffs   []PassiveBuff            `json:"passiveBuffs,omitempty"`
}

// ResolveVariantLayout applies a variant's deltas to the entry's baseline
// layout. For each delta the matching category group is adjusted: the count
// never drops below zero, and a provided size overwrites the group size.
// A delta naming an absent category appends a new group when its count
// delta is positive (size defaults to Small). Groups left at count zero are
// removed.
func ResolveVariantLayout(e *Entry, v *Variant) VariantLayout {
	layout := VariantLayout{
		Hardpoints:     append([]taxonomy.HardpointSpec(nil), e.Hardpoints...),
		ComponentSlots: append([]taxonomy.SlotSpec(nil), e.ComponentSlots...),
		PassiveBuffs:   append([]PassiveBuff(nil), v.PassiveBuffs...),
	}

	for _, delta := range v.HardpointDeltas {
		i := findHardpoint(layout.Hardpoints, delta.Category)
		if i < 0 {
			if delta.CountDelta > 0 {
				size := delta.SizeDelta
				if size == "" {
					size = ship.SizeSmall
				}
				layout.Hardpoints = append(layout.Hardpoints, taxonomy.HardpointSpec{
					Category: delta.Category,
					Size:     size,
					Count:    delta.CountDelta,
				})
			}
			continue
		}
		layout.Hardpoints[i].Count = max(0, layout.Hardpoints[i].Count+delta.CountDelta)
		if delta.SizeDelta != "" {
			layout.Hardpoints[i].Size = delta.SizeDelta
		}
	}

	for _, delta := range v.SlotDeltas {
		i := findSlot(layout.ComponentSlots, delta.Category)
		if i < 0 {
			if delta.CountDelta > 0 {
				size := delta.Size
				if size == "" {
					size = ship.SizeSmall
				}
				layout.ComponentSlots = append(layout.ComponentSlots, taxonomy.SlotSpec{
					Category: delta.Category,
					Size:     size,
					Count:    delta.CountDelta,
				})
			}
			continue
		}
		layout.ComponentSlots[i].Count = max(0, layout.ComponentSlots[i].Count+delta.CountDelta)
		if delta.Size != "" {
			layout.ComponentSlots[i].Size = delta.Size
		}
	}

	layout.Hardpoints = pruneHardpoints(layout.Hardpoints)
	layout.ComponentSlots = pruneSlots(layout.ComponentSlots)
	return layout
}

func findHardpoint(specs []taxonomy.HardpointSpec, cat taxonomy.HardpointCategory) int {
	for i := range specs {
		if specs[i].Category == cat {
			return i
		}
	}
	return -1
}

func findSlot(specs []taxonomy.SlotSpec, cat ship.Category) int {
	for i := range specs {
		if specs[i].Category == cat {
			return i
		}
	}
	return -1
}

func pruneHardpoints(specs []taxonomy.HardpointSpec) []taxonomy.HardpointSpec {
	out := specs[:0]
	for _, s := range specs {
		if s.Count > 0 {
			out = append(out, s)
		}
	}
	return out
}

func pruneSlots(specs []taxonomy.SlotSpec) []taxonomy.SlotSpec {
	out := specs[:0]
	for _, s := range specs {
		if s.Count > 0 {
			out = append(out, s)
		}
	}
	return out
}
