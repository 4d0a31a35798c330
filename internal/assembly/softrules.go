package assembly

import (
	"fmt"
	"sort"

	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/ship"
)

// Soft compatibility rules run only after every hard check has passed.
// They compare the resolved components against each other: manufacturer
// lineage coherence, the reactor power envelope, and the hull's adjacency
// topology. Violations are warnings; the fit stays valid.

// ruleContext aggregates what the fit as a whole looks like. Counts are per
// resolved component so a check can subtract the component under test and
// reason about the rest of the ship.
type ruleContext struct {
	manufacturers map[string]int
	lineages      map[string]int

	// sortedLineages lists the distinct installed lineages in lexical
	// order, for stable message text.
	sortedLineages []string

	// lineageBearers counts resolved components carrying any lineage.
	lineageBearers int

	reactorOutputMW float64
}

func newRuleContext(hull *ship.HullBlueprint, resolved map[string]*ship.ComponentBlueprint) *ruleContext {
	ctx := &ruleContext{
		manufacturers: make(map[string]int),
		lineages:      make(map[string]int),
	}
	for i := range hull.Slots {
		bp, ok := resolved[hull.Slots[i].SlotID]
		if !ok {
			continue
		}
		if bp.Manufacturer != "" {
			ctx.manufacturers[bp.Manufacturer]++
		}
		if bp.ManufacturerLineage != "" {
			ctx.lineages[bp.ManufacturerLineage]++
			ctx.lineageBearers++
		}
		if bp.IsPowerPlant() {
			ctx.reactorOutputMW += bp.PowerOutputMW
		}
	}
	for lineage := range ctx.lineages {
		ctx.sortedLineages = append(ctx.sortedLineages, lineage)
	}
	sort.Strings(ctx.sortedLineages)
	return ctx
}

// othersShareManufacturer reports whether any resolved component besides bp
// carries bp's manufacturer.
func (c *ruleContext) othersShareManufacturer(bp *ship.ComponentBlueprint) bool {
	if bp.Manufacturer == "" {
		return false
	}
	return c.manufacturers[bp.Manufacturer] > 1
}

// othersShareLineage reports whether any resolved component besides bp
// carries bp's lineage.
func (c *ruleContext) othersShareLineage(bp *ship.ComponentBlueprint) bool {
	if bp.ManufacturerLineage == "" {
		return false
	}
	return c.lineages[bp.ManufacturerLineage] > 1
}

// firstOtherLineage returns the lexically first lineage installed by a
// component other than the one carrying self.
func (c *ruleContext) firstOtherLineage(self string) string {
	for _, lineage := range c.sortedLineages {
		n := c.lineages[lineage]
		if lineage == self {
			n--
		}
		if n > 0 {
			return lineage
		}
	}
	return ""
}

// applySoftRules evaluates every soft rule over the resolved components in
// hull slot order, emitting warnings onto the result's diagnostics.
func applySoftRules(result *ship.AssemblyResult, resolved map[string]*ship.ComponentBlueprint) {
	hull := result.Hull
	ctx := newRuleContext(hull, resolved)
	for i := range hull.Slots {
		slot := &hull.Slots[i]
		bp, ok := resolved[slot.SlotID]
		if !ok {
			continue
		}
		checkLineage(&result.Diagnostics, ctx, slot.SlotID, bp)
		checkPowerEnvelope(&result.Diagnostics, ctx, slot.SlotID, bp)
		checkAdjacency(&result.Diagnostics, resolved, slot, bp)
	}
}

// checkLineage warns when a component shares a manufacturer with the rest
// of the fit but none of the other components carries its product line.
// A component with no lineage, or a fit where no other component declares
// one, passes.
func checkLineage(report *diag.Report, ctx *ruleContext, slotID string, bp *ship.ComponentBlueprint) {
	if bp.ManufacturerLineage == "" {
		return
	}
	if ctx.lineageBearers < 2 {
		return
	}
	if !ctx.othersShareManufacturer(bp) || ctx.othersShareLineage(bp) {
		return
	}
	report.Warning(diag.CodeCompatibilityManufacturerMismatch,
		fmt.Sprintf("Manufacturer lineage mismatch: %s uses '%s' lineage, but ship uses '%s' lineage(s).",
			bp.DisplayName, bp.ManufacturerLineage, ctx.firstOtherLineage(bp.ManufacturerLineage)),
		slotID, bp.ID)
}

// checkPowerEnvelope warns when the summed reactor output falls outside a
// component's declared operating envelope. Power plants define the output
// and are exempt. The check runs even with zero reactor output: a
// component with a positive floor still wants a reactor it does not have.
func checkPowerEnvelope(report *diag.Report, ctx *ruleContext, slotID string, bp *ship.ComponentBlueprint) {
	if bp.IsPowerPlant() {
		return
	}
	if ctx.reactorOutputMW >= bp.MinPowerEnvelopeMW && ctx.reactorOutputMW <= bp.MaxPowerEnvelopeMW {
		return
	}
	report.Warning(diag.CodeCompatibilityPowerEnvelopeMismatch,
		fmt.Sprintf("Power envelope mismatch: %s expects %s-%s MW reactor output, but ship provides %s MW.",
			bp.DisplayName, fmtNum(bp.MinPowerEnvelopeMW), fmtNum(bp.MaxPowerEnvelopeMW), fmtNum(ctx.reactorOutputMW)),
		slotID, bp.ID)
}

// checkAdjacency warns when a component's adjacency demands are not met by
// the resolved components in the slots its own slot touches. Empty or
// unresolved adjacent slots are ignored.
func checkAdjacency(report *diag.Report, resolved map[string]*ship.ComponentBlueprint, slot *ship.HullSlot, bp *ship.ComponentBlueprint) {
	if adjacencySatisfied(slot, resolved, bp) {
		return
	}
	report.Warning(diag.CodeCompatibilitySlotAdjacencyIssue,
		fmt.Sprintf("Slot adjacency issue: %s has adjacency requirements that are not satisfied.", bp.DisplayName),
		slot.SlotID, bp.ID)
}

func adjacencySatisfied(slot *ship.HullSlot, resolved map[string]*ship.ComponentBlueprint, bp *ship.ComponentBlueprint) bool {
	for _, required := range bp.RequiredAdjacentSlots {
		if !adjacentCategoryResolved(slot, resolved, required) {
			return false
		}
	}
	for _, forbidden := range bp.IncompatibleAdjacentSlots {
		if adjacentCategoryResolved(slot, resolved, forbidden) {
			return false
		}
	}
	return true
}

func adjacentCategoryResolved(slot *ship.HullSlot, resolved map[string]*ship.ComponentBlueprint, category ship.Category) bool {
	for _, adjID := range slot.AdjacentSlotIDs {
		if adj, ok := resolved[adjID]; ok && adj.Category == category {
			return true
		}
	}
	return false
}
