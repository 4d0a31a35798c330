package assembly

import (
	"math"
	"sort"

	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/ship"
)

// Suggestion score weights. The four terms sum to at most 1.0.
const (
	weightSizeFit      = 0.4
	weightManufacturer = 0.3
	weightEfficiency   = 0.2
	weightPerformance  = 0.1
)

// Normalization ceilings for the category performance term.
const (
	normThrustKN       = 500.0
	normDamagePerShot  = 50.0
	normShieldCapacity = 200.0
	neutralPerformance = 0.5
)

// suggest attaches the ranked replacement candidates for one failing slot.
// The group is recorded even when the catalog offers no candidate, so the
// failure reason still reaches the player.
func (a *Assembler) suggest(report *diag.Report, slot *ship.HullSlot, reason string, installed []string) {
	report.Suggest(slot.SlotID, reason, a.rankCandidates(slot, installed))
}

// rankCandidates scores every catalog component that matches the slot's
// category and fits its size, sorted best first. Ties keep catalog
// insertion order. At most the configured limit is returned.
func (a *Assembler) rankCandidates(slot *ship.HullSlot, installed []string) []diag.Suggestion {
	var ranked []diag.Suggestion
	for _, bp := range a.components.All() {
		if bp.Category != slot.Category || !bp.Size.FitsIn(slot.Size) {
			continue
		}
		score, reasoning := scoreCandidate(slot, bp, installed)
		ranked = append(ranked, diag.Suggestion{ComponentID: bp.ID, Score: score, Reasoning: reasoning})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > a.suggestionLimit {
		ranked = ranked[:a.suggestionLimit]
	}
	return ranked
}

// scoreCandidate grades a candidate on [0,1]: how tightly it fills the
// slot, whether its manufacturer is already on the ship, how much power it
// produces or saves per ton, and its headline performance number.
func scoreCandidate(slot *ship.HullSlot, bp *ship.ComponentBlueprint, installed []string) (float64, string) {
	score := weightSizeFit * sizeFitness(slot.Size, bp.Size)
	reasoning := "Compatible component"

	if manufacturerInstalled(bp.Manufacturer, installed) {
		score += weightManufacturer
		reasoning += ", preferred manufacturer"
	}

	score += weightEfficiency * powerEfficiency(bp)
	score += weightPerformance * performanceFitness(bp)
	return score, reasoning
}

// sizeFitness is 1.0 for an exact fit and shrinks linearly with every rank
// the candidate leaves unfilled. An XS slot only admits exact fits, which
// score full marks.
func sizeFitness(slot, candidate ship.SlotSize) float64 {
	slotRank := slot.Rank()
	if slotRank <= 0 {
		return 1
	}
	gap := float64(slotRank - candidate.Rank())
	return math.Max(0, 1-gap/float64(slotRank))
}

func manufacturerInstalled(manufacturer string, installed []string) bool {
	if manufacturer == "" {
		return false
	}
	for _, m := range installed {
		if m == manufacturer {
			return true
		}
	}
	return false
}

// powerEfficiency grades output per ton for power plants and draw per ton
// for everything else. Massless candidates cannot be normalized and score
// zero.
func powerEfficiency(bp *ship.ComponentBlueprint) float64 {
	if bp.MassTons <= 0 {
		return 0
	}
	if bp.IsPowerPlant() {
		return math.Min(1, bp.PowerOutputMW/(bp.MassTons*10))
	}
	return math.Max(0, 1-bp.PowerDrawMW/(bp.MassTons*2))
}

// performanceFitness grades the candidate's headline combat number against
// its category's ceiling. Categories without one sit at the neutral
// midpoint.
func performanceFitness(bp *ship.ComponentBlueprint) float64 {
	switch bp.Category {
	case ship.CategoryMainThruster:
		return math.Min(1, bp.ThrustKN/normThrustKN)
	case ship.CategoryShield:
		if bp.Shield == nil {
			return 0
		}
		return math.Min(1, bp.Shield.CapacityMJ/normShieldCapacity)
	case ship.CategoryWeapon:
		if bp.Weapon == nil {
			return 0
		}
		return math.Min(1, bp.Weapon.DamagePerShot/normDamagePerShot)
	default:
		return neutralPerformance
	}
}
