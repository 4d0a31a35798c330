package content

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
	"github.com/novaengine/shipwright/internal/shipclass"
	"github.com/novaengine/shipwright/internal/taxonomy"
)

// classShapeFile is the on-disk form of one hardpoint or slot group.
// Category and size names stay raw; the mapper parses them
// case-insensitively.
type classShapeFile struct {
	Category string `json:"category"`
	Size     string `json:"size"`
	Count    int    `json:"count"`
	Notes    string `json:"notes"`
}

// classVariantFile defers its delta and buff lists to per-element decoding
// so one malformed element drops without taking the whole file down.
type classVariantFile struct {
	Faction     string `json:"faction"`
	Codename    string `json:"codename"`
	Description string `json:"description"`

	HardpointDeltas []json.RawMessage `json:"hardpointDeltas"`
	SlotDeltas      []json.RawMessage `json:"slotDeltas"`
	PassiveBuffs    []json.RawMessage `json:"passiveBuffs"`
}

// classEntryFile is the on-disk form of a class catalog entry.
type classEntryFile struct {
	ID          string                `json:"id"`
	Type        string                `json:"type"`
	DisplayName string                `json:"displayName"`
	Concept     taxonomy.ConceptBrief `json:"conceptSummary"`

	Baseline       taxonomy.BaselineStats        `json:"baseline"`
	Hardpoints     []classShapeFile              `json:"hardpoints"`
	ComponentSlots []classShapeFile              `json:"componentSlots"`
	Progression    []taxonomy.ProgressionTier    `json:"progression"`
	Metadata       shipclass.ProgressionMetadata `json:"progressionMetadata"`

	Variants        []classVariantFile         `json:"variants"`
	DefaultLoadouts []shipclass.DefaultLoadout `json:"defaultLoadouts"`
}

// decodeHardpointDelta decodes one raw delta element. Category and
// countDelta are required and must parse; a size override of the wrong JSON
// type is ignored while an unknown size name drops the delta.
func decodeHardpointDelta(raw json.RawMessage) (shipclass.HardpointDelta, bool) {
	var f struct {
		Category   *string         `json:"category"`
		CountDelta *float64        `json:"countDelta"`
		SizeDelta  json.RawMessage `json:"sizeDelta"`
	}
	if err := json.Unmarshal(raw, &f); err != nil || f.Category == nil || f.CountDelta == nil {
		return shipclass.HardpointDelta{}, false
	}
	category, ok := taxonomy.ParseHardpointCategory(*f.Category)
	if !ok {
		return shipclass.HardpointDelta{}, false
	}
	delta := shipclass.HardpointDelta{Category: category, CountDelta: int(*f.CountDelta)}
	var sizeName string
	if len(f.SizeDelta) > 0 && json.Unmarshal(f.SizeDelta, &sizeName) == nil {
		size, ok := ship.ParseSizeFold(sizeName)
		if !ok {
			return shipclass.HardpointDelta{}, false
		}
		delta.SizeDelta = size
	}
	return delta, true
}

// decodeSlotDelta mirrors decodeHardpointDelta for component slot groups,
// whose size override key is "size".
func decodeSlotDelta(raw json.RawMessage) (shipclass.SlotDelta, bool) {
	var f struct {
		Category   *string         `json:"category"`
		CountDelta *float64        `json:"countDelta"`
		Size       json.RawMessage `json:"size"`
	}
	if err := json.Unmarshal(raw, &f); err != nil || f.Category == nil || f.CountDelta == nil {
		return shipclass.SlotDelta{}, false
	}
	category, ok := ship.ParseCategoryFold(*f.Category)
	if !ok {
		return shipclass.SlotDelta{}, false
	}
	delta := shipclass.SlotDelta{Category: category, CountDelta: int(*f.CountDelta)}
	var sizeName string
	if len(f.Size) > 0 && json.Unmarshal(f.Size, &sizeName) == nil {
		size, ok := ship.ParseSizeFold(sizeName)
		if !ok {
			return shipclass.SlotDelta{}, false
		}
		delta.Size = size
	}
	return delta, true
}

func decodePassiveBuff(raw json.RawMessage) (shipclass.PassiveBuff, bool) {
	var f struct {
		Type  *string  `json:"type"`
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(raw, &f); err != nil || f.Type == nil || f.Value == nil {
		return shipclass.PassiveBuff{}, false
	}
	return shipclass.PassiveBuff{Type: *f.Type, Value: *f.Value}, true
}

// variant converts the file form, dropping malformed delta and buff
// elements.
func (v *classVariantFile) variant() shipclass.Variant {
	out := shipclass.Variant{
		Faction:     v.Faction,
		Codename:    v.Codename,
		Description: v.Description,
	}
	for _, raw := range v.HardpointDeltas {
		if delta, ok := decodeHardpointDelta(raw); ok {
			out.HardpointDeltas = append(out.HardpointDeltas, delta)
		}
	}
	for _, raw := range v.SlotDeltas {
		if delta, ok := decodeSlotDelta(raw); ok {
			out.SlotDeltas = append(out.SlotDeltas, delta)
		}
	}
	for _, raw := range v.PassiveBuffs {
		if buff, ok := decodePassiveBuff(raw); ok {
			out.PassiveBuffs = append(out.PassiveBuffs, buff)
		}
	}
	return out
}

// fileStem returns the file name without directory or extension, the
// fallback id for class entries that do not declare one.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// entry converts the file into a catalog entry. Enum names inside class
// entries parse case-insensitively, unlike component and hull files.
func (f *classEntryFile) entry(path, stem string) (*shipclass.Entry, error) {
	classType, ok := taxonomy.ParseClassType(f.Type)
	if !ok {
		return nil, serrors.NewSchemaError(
			fmt.Sprintf("Unknown class type '%s'", f.Type), path, "type")
	}

	e := &shipclass.Entry{
		ID:          f.ID,
		Type:        classType,
		DisplayName: f.DisplayName,
		Concept:     f.Concept,
		Baseline:    f.Baseline,
		Progression: f.Progression,
		Metadata:    f.Metadata,
	}
	if e.ID == "" {
		e.ID = stem
	}

	for i := range f.Hardpoints {
		h := &f.Hardpoints[i]
		category, ok := taxonomy.ParseHardpointCategory(h.Category)
		size, sizeOK := ship.ParseSizeFold(h.Size)
		if !ok || !sizeOK {
			return nil, serrors.NewSchemaError(
				"Invalid hardpoint spec encountered", path, "hardpoints")
		}
		e.Hardpoints = append(e.Hardpoints, taxonomy.HardpointSpec{
			Category: category,
			Size:     size,
			Count:    h.Count,
			Notes:    h.Notes,
		})
	}

	for i := range f.ComponentSlots {
		s := &f.ComponentSlots[i]
		category, ok := ship.ParseCategoryFold(s.Category)
		size, sizeOK := ship.ParseSizeFold(s.Size)
		if !ok || !sizeOK {
			return nil, serrors.NewSchemaError(
				"Invalid component slot specification", path, "componentSlots")
		}
		e.ComponentSlots = append(e.ComponentSlots, taxonomy.SlotSpec{
			Category: category,
			Size:     size,
			Count:    s.Count,
			Notes:    s.Notes,
		})
	}

	for i := range f.Variants {
		e.Variants = append(e.Variants, f.Variants[i].variant())
	}
	e.DefaultLoadouts = f.DefaultLoadouts

	return e, nil
}

// classParse carries one file's outcome through the parallel parse pass.
type classParse struct {
	status FileStatus
	entry  *shipclass.Entry
}

func (p *classParse) fail(err error) {
	p.status.Kind = KindForError(err)
	p.status.Err = err
	p.entry = nil
}

// parseClassFile runs the per-file pipeline for class entries: read,
// classify, schema validation, mapping. Hull blueprints and documents of no
// recognizable kind are skipped silently; the hull loader owns reporting
// the latter.
func (l *Loader) parseClassFile(path string) classParse {
	out := classParse{status: FileStatus{Path: path}}

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
		out.fail(serrors.NewSchemaError("Root JSON value must be an object", path, ""))
		return out
	}
	if kind != KindClassEntry {
		out.status.Skipped = true
		return out
	}

	if err := l.schema.ValidateClassEntry(data, path); err != nil {
		out.fail(err)
		return out
	}

	var f classEntryFile
	if err := json.Unmarshal(data, &f); err != nil {
		out.fail(serrors.NewSchemaError(err.Error(), path, ""))
		return out
	}

	entry, err := f.entry(path, fileStem(path))
	if err != nil {
		out.fail(err)
		return out
	}

	out.status.ID = entry.ID
	out.entry = entry
	return out
}

func (l *Loader) parseClassEntries(stamps []FileStamp) []classParse {
	parses := make([]classParse, len(stamps))
	runParsePass(len(stamps), func(i int) {
		parses[i] = l.parseClassFile(stamps[i].Path)
	})
	return parses
}

// dedupeClassEntries resolves duplicate class ids within one load pass:
// first occurrence in name order wins.
func dedupeClassEntries(parses []classParse) {
	firstSeen := make(map[string]string, len(parses))
	for i := range parses {
		p := &parses[i]
		if p.entry == nil {
			continue
		}
		prior, dup := firstSeen[p.entry.ID]
		if !dup {
			firstSeen[p.entry.ID] = p.status.Path
			continue
		}
		output.Warn("duplicate class id in load pass",
			"id", p.entry.ID, "file", p.status.Path, "first", prior)
		p.fail(serrors.NewDuplicateIDError(p.entry.ID, p.status.Path, prior))
	}
}

// flagViolations runs taxonomy validation over every parsed entry.
// Violating entries are flagged, never dropped. The returned map keys
// path-prefixed violation lines by entry id.
func flagViolations(parses []classParse) map[string][]string {
	byEntry := make(map[string][]string)
	for i := range parses {
		p := &parses[i]
		if p.entry == nil {
			continue
		}
		violations := shipclass.ValidateEntry(p.entry)
		if len(violations) == 0 {
			continue
		}
		p.entry.Flagged = true
		p.status.Flags = violations
		lines := make([]string, 0, len(violations))
		for _, v := range violations {
			lines = append(lines, p.status.Path+": "+v)
		}
		byEntry[p.entry.ID] = lines
		output.Warn("class entry violates taxonomy",
			"id", p.entry.ID, "file", p.status.Path, "violations", len(violations))
	}
	return byEntry
}

// LoadClassEntries scans the ships directory and registers every class
// entry that passes the load pipeline, layering onto whatever the catalog
// already holds. Hull blueprint files in the same directory are skipped.
// Taxonomy violations are recorded per registered entry, so a layered load
// keeps the violation records of entries it does not touch.
func (l *Loader) LoadClassEntries(dir string, cat *shipclass.Catalog) *Report {
	report := &Report{Dir: dir}

	stamps, err := ScanDir(dir)
	if err != nil {
		report.Err = serrors.NewIOError("ships directory is not readable", dir, err)
		output.Warn("ships directory not readable", "dir", dir, "err", err)
		return report
	}

	parses := l.parseClassEntries(stamps)
	dedupeClassEntries(parses)
	violations := flagViolations(parses)
	for i := range parses {
		p := &parses[i]
		if p.entry != nil {
			cat.Register(*p.entry)
			cat.RecordViolations(p.entry.ID, violations[p.entry.ID])
			p.status.Loaded = true
		}
		report.Files = append(report.Files, p.status)
	}
	l.classIndex.Rebuild(stamps)

	output.Debug("loaded class entries", "dir", dir,
		"loaded", report.Loaded(), "failed", report.Failed(), "flagged", report.Flagged())
	return report
}

// ReloadClassEntries polls the ships directory and rebuilds the class
// catalog in a single atomic swap when anything changed. The hull and class
// loaders keep separate indexes over the shared directory, so each reacts
// to a change independently.
func (l *Loader) ReloadClassEntries(dir string, cat *shipclass.Catalog) (rebuilt bool, report *Report) {
	stamps, err := ScanDir(dir)
	if err != nil {
		output.Warn("class reload scan failed", "dir", dir, "err", err)
		return false, nil
	}
	if !l.classIndex.Stale(stamps) {
		return false, nil
	}

	report = &Report{Dir: dir}
	parses := l.parseClassEntries(stamps)
	dedupeClassEntries(parses)
	violations := flagViolations(parses)

	entries := make([]shipclass.Entry, 0, len(parses))
	for i := range parses {
		p := &parses[i]
		if p.entry != nil {
			entries = append(entries, *p.entry)
			p.status.Loaded = true
		}
		report.Files = append(report.Files, p.status)
	}
	cat.Replace(entries, violations)
	l.classIndex.Rebuild(stamps)

	output.Info("class catalog rebuilt", "dir", dir,
		"loaded", report.Loaded(), "failed", report.Failed(), "flagged", report.Flagged())
	return true, report
}
