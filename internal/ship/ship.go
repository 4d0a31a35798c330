// Package ship defines the assembly engine's data model: slot sizes and
// component categories, component and hull blueprints, assembly requests,
// and the aggregate result produced by the assembler.
//
// Blueprints are immutable after registration in a catalog. Assembly results
// hold non-owning references into the catalog generation they were built
// against; the catalog must outlive every dependent result.
package ship

// AssemblyRequest names a hull and maps slot ids to component ids.
// Key order is irrelevant; the assembler iterates hull slots in declaration
// order, not map order.
type AssemblyRequest struct {
	// HullID is the hull blueprint id to assemble against.
	HullID string `json:"hullId"`

	// SlotAssignments maps slot id to component id. Keys are unique.
	SlotAssignments map[string]string `json:"slotAssignments"`
}

// NewAssemblyRequest returns a request with an empty assignment map.
func NewAssemblyRequest(hullID string) AssemblyRequest {
	return AssemblyRequest{
		HullID:          hullID,
		SlotAssignments: make(map[string]string),
	}
}

// Assign sets the component for a slot, replacing any prior assignment.
func (r *AssemblyRequest) Assign(slotID, componentID string) {
	if r.SlotAssignments == nil {
		r.SlotAssignments = make(map[string]string)
	}
	r.SlotAssignments[slotID] = componentID
}
