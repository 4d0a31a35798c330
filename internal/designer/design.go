package designer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/ship"
)

// Design is the persisted form of a finished design:
// assets/ships/designs/<name>.json.
type Design struct {
	Name       string            `json:"name"`
	HullID     string            `json:"hullId"`
	Components map[string]string `json:"components"`
}

// Request converts the design into an assembly request.
func (d *Design) Request() ship.AssemblyRequest {
	return ship.AssemblyRequest{
		HullID:          d.HullID,
		SlotAssignments: copyAssignments(d.Components),
	}
}

// designNameRe keeps design names filesystem-safe. Names become file
// stems, so path separators and dots are rejected rather than escaped.
var designNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidDesignName reports whether a name may be used as a design file
// stem.
func ValidDesignName(name string) bool {
	return designNameRe.MatchString(name)
}

// DesignPath returns the file path a design name persists to.
func (m *Manager) DesignPath(name string) string {
	return filepath.Join(m.designsDir, name+".json")
}

// SaveDesign writes the session's current state under the given name,
// creating the designs directory if needed. Saving does not require the
// design to be valid; Publish does.
func (m *Manager) SaveDesign(s *Session, name string) (string, error) {
	if !ValidDesignName(name) {
		return "", serrors.NewValidationError(
			fmt.Sprintf("design name %q is not usable as a file name", name),
			"", "name",
			"use letters, digits, '-' and '_', starting with a letter or digit")
	}

	design := Design{
		Name:       name,
		HullID:     s.HullID,
		Components: s.Assignments(),
	}
	data, err := json.MarshalIndent(&design, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding design %q: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(m.designsDir, 0o755); err != nil {
		return "", serrors.NewIOError("could not create designs directory", m.designsDir, err)
	}
	path := m.DesignPath(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", serrors.NewIOError("could not write design file", path, err)
	}
	return path, nil
}

// Publish validates the session and saves it only when the design
// assembles without errors.
func (m *Manager) Publish(s *Session, name string) (string, error) {
	result := m.Validate(s)
	if !result.IsValid() {
		return "", serrors.NewValidationError(
			fmt.Sprintf("design %q does not assemble", name),
			"", "",
			"resolve the assembly errors before publishing")
	}
	return m.SaveDesign(s, name)
}

// LoadDesign reads a persisted design by name.
func (m *Manager) LoadDesign(name string) (*Design, error) {
	if !ValidDesignName(name) {
		return nil, serrors.NewValidationError(
			fmt.Sprintf("design name %q is not usable as a file name", name),
			"", "name", "")
	}
	path := m.DesignPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serrors.NewNotFoundError(
				fmt.Sprintf("design %q does not exist", name), path,
				"run 'shipwright design list' to see saved designs")
		}
		return nil, serrors.NewIOError("could not read design file", path, err)
	}

	var design Design
	if err := json.Unmarshal(data, &design); err != nil {
		return nil, serrors.NewParseError(
			fmt.Sprintf("design file is not valid JSON: %v", err), path)
	}
	if design.HullID == "" {
		return nil, serrors.NewSchemaError("design file has no hullId", path, "hullId")
	}
	if design.Components == nil {
		design.Components = make(map[string]string)
	}
	if design.Name == "" {
		design.Name = name
	}
	return &design, nil
}

// OpenDesign loads a persisted design into a fresh session.
func (m *Manager) OpenDesign(name string) (*Session, error) {
	design, err := m.LoadDesign(name)
	if err != nil {
		return nil, err
	}
	s := m.NewSession(design.HullID)
	s.assignments = copyAssignments(design.Components)
	return s, nil
}

// ListDesigns returns the saved design names in directory order, sorted by
// name. A missing designs directory lists as empty.
func (m *Manager) ListDesigns() ([]string, error) {
	entries, err := os.ReadDir(m.designsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, serrors.NewIOError("could not read designs directory", m.designsDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if stem, ok := designStem(e.Name()); ok {
			names = append(names, stem)
		}
	}
	return names, nil
}

func designStem(filename string) (string, bool) {
	const ext = ".json"
	if filepath.Ext(filename) != ext {
		return "", false
	}
	return filename[:len(filename)-len(ext)], true
}
