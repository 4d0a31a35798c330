package taxonomy

import "github.com/novaengine/shipwright/internal/ship"

// Range is an inclusive numeric band.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the band.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Shape pins the expected size and count of a hardpoint or slot group.
type Shape struct {
	Size  ship.SlotSize `json:"size"`
	Count int           `json:"count"`
}

// Constraint is the per-class envelope that data-driven catalog entries are
// checked against: stat bands plus the exact hardpoint and slot shapes the
// class must expose.
type Constraint struct {
	MassTons      Range
	Crew          Range
	PowerBudgetMW Range

	Hardpoints map[HardpointCategory]Shape
	Slots      map[ship.Category]Shape
}

// constraints is derived from the built-in definitions at init so the two
// can never drift apart.
var constraints = buildConstraints()

func buildConstraints() map[ClassType]Constraint {
	out := make(map[ClassType]Constraint, len(classDefinitions))
	for _, def := range classDefinitions {
		c := Constraint{
			MassTons:      Range{Min: def.Baseline.MinMassTons, Max: def.Baseline.MaxMassTons},
			Crew:          Range{Min: float64(def.Baseline.MinCrew), Max: float64(def.Baseline.MaxCrew)},
			PowerBudgetMW: Range{Min: def.Baseline.MinPowerBudgetMW, Max: def.Baseline.MaxPowerBudgetMW},
			Hardpoints:    make(map[HardpointCategory]Shape, len(def.Hardpoints)),
			Slots:         make(map[ship.Category]Shape, len(def.Slots)),
		}
		for _, hp := range def.Hardpoints {
			c.Hardpoints[hp.Category] = Shape{Size: hp.Size, Count: hp.Count}
		}
		for _, slot := range def.Slots {
			c.Slots[slot.Category] = Shape{Size: slot.Size, Count: slot.Count}
		}
		out[def.Type] = c
	}
	return out
}

// ConstraintFor returns the validation envelope for the given class.
func ConstraintFor(t ClassType) (Constraint, bool) {
	c, ok := constraints[t]
	return c, ok
}
