package shipclass

import "github.com/novaengine/shipwright/internal/ship"

// buildLoadoutRequest maps a loadout's components positionally onto the
// entry's expanded slot ids. Components beyond the slot count are ignored;
// slots beyond the component count stay unassigned.
func buildLoadoutRequest(e *Entry, loadout *DefaultLoadout) ship.AssemblyRequest {
	req := ship.NewAssemblyRequest(e.ID)
	slotIDs := e.SlotIDs()
	n := len(slotIDs)
	if len(loadout.Components) < n {
		n = len(loadout.Components)
	}
	for i := 0; i < n; i++ {
		req.SlotAssignments[slotIDs[i]] = loadout.Components[i]
	}
	return req
}

// LoadoutRequests builds one assembly request per default loadout, in
// declaration order.
func LoadoutRequests(e *Entry) []ship.AssemblyRequest {
	out := make([]ship.AssemblyRequest, 0, len(e.DefaultLoadouts))
	for i := range e.DefaultLoadouts {
		out = append(out, buildLoadoutRequest(e, &e.DefaultLoadouts[i]))
	}
	return out
}
