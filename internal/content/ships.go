package content

import (
	"encoding/json"
	"fmt"

	"github.com/novaengine/shipwright/internal/catalog"
	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// FileKind classifies a document from the ships directory, which mixes hull
// blueprints and class catalog entries.
type FileKind int

// Ships-directory document kinds.
const (
	KindUnknown FileKind = iota
	KindHull
	KindClassEntry
)

// SniffShipFile classifies a raw ships-directory document so the hull and
// class loaders can pass over each other's files. Hull blueprints carry
// "classType"; class entries carry "type" and "baseline". The error is the
// decode error when the document is not a JSON object.
func SniffShipFile(data []byte) (FileKind, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return KindUnknown, err
	}
	if _, ok := probe["classType"]; ok {
		return KindHull, nil
	}
	_, hasType := probe["type"]
	_, hasBaseline := probe["baseline"]
	if hasType && hasBaseline {
		return KindClassEntry, nil
	}
	return KindUnknown, nil
}

// hullSlotFile is the on-disk form of one hull slot. A slot is required
// unless the file says otherwise.
type hullSlotFile struct {
	SlotID          string   `json:"slotId"`
	Category        string   `json:"category"`
	Size            string   `json:"size"`
	Notes           string   `json:"notes"`
	Required        *bool    `json:"required"`
	AdjacentSlotIDs []string `json:"adjacentSlotIds"`
}

// hullFile is the on-disk form of a hull blueprint.
type hullFile struct {
	ID          string `json:"id"`
	ClassType   string `json:"classType"`
	DisplayName string `json:"displayName"`

	BaseMassTons          float64 `json:"baseMassTons"`
	StructuralIntegrity   float64 `json:"structuralIntegrity"`
	BaseCrewRequired      int     `json:"baseCrewRequired"`
	BaseCrewCapacity      int     `json:"baseCrewCapacity"`
	BaseHeatGenerationMW  float64 `json:"baseHeatGenerationMW"`
	BaseHeatDissipationMW float64 `json:"baseHeatDissipationMW"`

	Slots []hullSlotFile `json:"slots"`
}

// blueprint converts the file into a hull blueprint and validates it.
func (f *hullFile) blueprint(path string) (*ship.HullBlueprint, error) {
	hull := &ship.HullBlueprint{
		ID:          f.ID,
		ClassType:   f.ClassType,
		DisplayName: f.DisplayName,

		BaseMassTons:          f.BaseMassTons,
		StructuralIntegrity:   f.StructuralIntegrity,
		BaseCrewRequired:      f.BaseCrewRequired,
		BaseCrewCapacity:      f.BaseCrewCapacity,
		BaseHeatGenerationMW:  f.BaseHeatGenerationMW,
		BaseHeatDissipationMW: f.BaseHeatDissipationMW,

		Slots: make([]ship.HullSlot, 0, len(f.Slots)),
	}

	for i := range f.Slots {
		s := &f.Slots[i]
		category, ok := ship.ParseCategory(s.Category)
		if !ok {
			return nil, serrors.NewSchemaError(
				fmt.Sprintf("slot %q: unknown category %q", s.SlotID, s.Category), path, "slots")
		}
		size, ok := ship.ParseSize(s.Size)
		if !ok {
			return nil, serrors.NewSchemaError(
				fmt.Sprintf("slot %q: unknown size %q", s.SlotID, s.Size), path, "slots")
		}
		required := true
		if s.Required != nil {
			required = *s.Required
		}
		hull.Slots = append(hull.Slots, ship.HullSlot{
			SlotID:          s.SlotID,
			Category:        category,
			Size:            size,
			Notes:           s.Notes,
			Required:        required,
			AdjacentSlotIDs: s.AdjacentSlotIDs,
		})
	}

	if err := hull.Validate(); err != nil {
		return nil, serrors.NewSchemaError(err.Error(), path, "")
	}

	return hull, nil
}

// hullParse carries one file's outcome through the parallel parse pass.
type hullParse struct {
	status FileStatus
	hull   *ship.HullBlueprint
}

func (p *hullParse) fail(err error) {
	p.status.Kind = KindForError(err)
	p.status.Err = err
	p.hull = nil
}

// parseHullFile runs the per-file pipeline for the ships directory: read,
// classify, schema validation, mapping. Class entries are skipped silently;
// documents of no recognizable kind fail here, so the class loader does not
// report them a second time.
func (l *Loader) parseHullFile(path string) hullParse {
	out := hullParse{status: FileStatus{Path: path}}

	data, err := readContentFile(path)
	if err != nil {
		out.fail(err)
		return out
	}

	kind, err := SniffShipFile(data)
	if err != nil {
		parseErr, deferToSchema := decodeError(err, path)
		if !deferToSchema {
			out.fail(parseErr)
			return out
		}
		out.fail(serrors.NewSchemaError(err.Error(), path, ""))
		return out
	}
	switch kind {
	case KindClassEntry:
		out.status.Skipped = true
		return out
	case KindUnknown:
		out.fail(serrors.NewSchemaError(
			"document is neither a hull blueprint (classType) nor a class entry (type + baseline)", path, ""))
		return out
	}

	if err := l.schema.ValidateHull(data, path); err != nil {
		out.fail(err)
		return out
	}

	var f hullFile
	if err := json.Unmarshal(data, &f); err != nil {
		out.fail(serrors.NewSchemaError(err.Error(), path, ""))
		return out
	}

	hull, err := f.blueprint(path)
	if err != nil {
		out.fail(err)
		return out
	}

	out.status.ID = hull.ID
	out.hull = hull
	return out
}

func (l *Loader) parseHulls(stamps []FileStamp) []hullParse {
	parses := make([]hullParse, len(stamps))
	runParsePass(len(stamps), func(i int) {
		parses[i] = l.parseHullFile(stamps[i].Path)
	})
	return parses
}

// dedupeHulls resolves duplicate hull ids within one load pass: first
// occurrence in name order wins.
func dedupeHulls(parses []hullParse) {
	firstSeen := make(map[string]string, len(parses))
	for i := range parses {
		p := &parses[i]
		if p.hull == nil {
			continue
		}
		prior, dup := firstSeen[p.hull.ID]
		if !dup {
			firstSeen[p.hull.ID] = p.status.Path
			continue
		}
		output.Warn("duplicate hull id in load pass",
			"id", p.hull.ID, "file", p.status.Path, "first", prior)
		p.fail(serrors.NewDuplicateIDError(p.hull.ID, p.status.Path, prior))
	}
}

// LoadHulls scans the ships directory and registers every hull blueprint
// that passes the load pipeline, layering onto whatever the catalog already
// holds. Class entry files in the same directory are skipped.
func (l *Loader) LoadHulls(dir string, cat *catalog.HullCatalog) *Report {
	report := &Report{Dir: dir}

	stamps, err := ScanDir(dir)
	if err != nil {
		report.Err = serrors.NewIOError("ships directory is not readable", dir, err)
		output.Warn("ships directory not readable", "dir", dir, "err", err)
		return report
	}

	parses := l.parseHulls(stamps)
	dedupeHulls(parses)
	for i := range parses {
		p := &parses[i]
		if p.hull != nil {
			cat.Register(*p.hull)
			p.status.Loaded = true
		}
		report.Files = append(report.Files, p.status)
	}
	l.hullIndex.Rebuild(stamps)

	output.Debug("loaded hulls",
		"dir", dir, "loaded", report.Loaded(), "failed", report.Failed())
	return report
}

// ReloadHulls polls the ships directory for changes and rebuilds the hull
// catalog in a single atomic swap when anything was added, removed, or
// modified. Otherwise nothing happens and the report is nil.
func (l *Loader) ReloadHulls(dir string, cat *catalog.HullCatalog) (rebuilt bool, report *Report) {
	stamps, err := ScanDir(dir)
	if err != nil {
		output.Warn("hull reload scan failed", "dir", dir, "err", err)
		return false, nil
	}
	if !l.hullIndex.Stale(stamps) {
		return false, nil
	}

	report = &Report{Dir: dir}
	parses := l.parseHulls(stamps)
	dedupeHulls(parses)

	items := make([]ship.HullBlueprint, 0, len(parses))
	for i := range parses {
		p := &parses[i]
		if p.hull != nil {
			items = append(items, *p.hull)
			p.status.Loaded = true
		}
		report.Files = append(report.Files, p.status)
	}
	cat.Replace(items)
	l.hullIndex.Rebuild(stamps)

	output.Info("hull catalog rebuilt",
		"dir", dir, "loaded", report.Loaded(), "failed", report.Failed())
	return true, report
}
