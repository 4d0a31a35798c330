// Package designer provides interactive design sessions on top of the
// assembly engine: slot-by-slot editing with undo/redo, validation after
// every edit, and persistence of finished designs as JSON files under the
// designs directory.
//
// Sessions are in-memory and keyed by UUID; the engine context owns the
// manager and its lifetime.
package designer

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/novaengine/shipwright/internal/assembly"
	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/ship"
)

// Session is one in-progress ship design. It is not safe for concurrent
// use; the manager hands each session to one editor at a time.
type Session struct {
	// ID identifies the session for the lifetime of the process.
	ID uuid.UUID

	// HullID is fixed at session creation; changing hulls means a new
	// session.
	HullID string

	assignments map[string]string

	// undo and redo hold full assignment snapshots. Every edit pushes the
	// prior state onto undo and clears redo.
	undo []map[string]string
	redo []map[string]string

	// last is the validation result of the most recent edit, nil before
	// the first edit or validation.
	last *ship.AssemblyResult
}

func copyAssignments(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Session) pushUndo() {
	s.undo = append(s.undo, copyAssignments(s.assignments))
	s.redo = nil
}

// SetSlot assigns a component to a slot, replacing any prior assignment.
func (s *Session) SetSlot(slotID, componentID string) {
	s.pushUndo()
	s.assignments[slotID] = componentID
}

// ClearSlot removes a slot's assignment. Clearing an unassigned slot still
// records an undo step.
func (s *Session) ClearSlot(slotID string) {
	s.pushUndo()
	delete(s.assignments, slotID)
}

// Undo reverts the most recent edit. It reports whether there was an edit
// to revert.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	s.redo = append(s.redo, s.assignments)
	s.assignments = s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	return true
}

// Redo reapplies the most recently undone edit. Any new edit clears the
// redo stack.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	s.undo = append(s.undo, s.assignments)
	s.assignments = s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	return true
}

// Request snapshots the session as an assembly request. The returned map
// is a copy; later edits do not affect it.
func (s *Session) Request() ship.AssemblyRequest {
	return ship.AssemblyRequest{
		HullID:          s.HullID,
		SlotAssignments: copyAssignments(s.assignments),
	}
}

// Assignments returns a copy of the current slot assignments.
func (s *Session) Assignments() map[string]string {
	return copyAssignments(s.assignments)
}

// LastResult returns the result of the most recent validation, or nil when
// the session has not been validated yet.
func (s *Session) LastResult() *ship.AssemblyResult {
	return s.last
}

// Manager owns the live design sessions and the designs directory.
// Manager methods are safe for concurrent use; individual sessions are
// not.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	assembler  *assembly.Assembler
	designsDir string
}

// NewManager returns a manager that validates sessions through the given
// assembler and persists designs under designsDir.
func NewManager(assembler *assembly.Assembler, designsDir string) *Manager {
	return &Manager{
		sessions:   make(map[uuid.UUID]*Session),
		assembler:  assembler,
		designsDir: designsDir,
	}
}

// NewSession opens a fresh session for a hull. The hull id is not resolved
// until the first validation, so sessions can be opened for hulls that
// arrive with a later content reload.
func (m *Manager) NewSession(hullID string) *Session {
	s := &Session{
		ID:          uuid.New(),
		HullID:      hullID,
		assignments: make(map[string]string),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Session returns the live session with the given id, or an error when no
// such session exists.
func (m *Manager) Session(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, serrors.NewNotFoundError(
		fmt.Sprintf("design session %s is not open", id), "", "")
}

// Close discards a session. Closing an unknown id is a no-op.
func (m *Manager) Close(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of open sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Validate assembles the session's current state and records the result on
// the session.
func (m *Manager) Validate(s *Session) *ship.AssemblyResult {
	result := m.assembler.Assemble(s.Request())
	s.last = result
	return result
}
