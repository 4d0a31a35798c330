package content

import (
	"encoding/json"
	"fmt"

	"github.com/novaengine/shipwright/internal/catalog"
	serrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// componentFile is the flat on-disk form of a component blueprint. Weapon
// and shield stats use prefixed keys; their marker fields are pointers so
// key presence decides whether a sub-record is built.
type componentFile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Size        string `json:"size"`

	MassTons          float64 `json:"massTons"`
	PowerOutputMW     float64 `json:"powerOutputMW"`
	PowerDrawMW       float64 `json:"powerDrawMW"`
	ThrustKN          float64 `json:"thrustKN"`
	HeatGenerationMW  float64 `json:"heatGenerationMW"`
	HeatDissipationMW float64 `json:"heatDissipationMW"`
	CrewRequired      int     `json:"crewRequired"`
	CrewSupport       int     `json:"crewSupport"`

	SchemaVersion       int      `json:"schemaVersion"`
	TechTier            int      `json:"techTier"`
	Manufacturer        string   `json:"manufacturer"`
	ManufacturerLineage string   `json:"manufacturerLineage"`
	FactionRestrictions []string `json:"factionRestrictions"`

	MinPowerEnvelopeMW     float64 `json:"minPowerEnvelopeMW"`
	MaxPowerEnvelopeMW     float64 `json:"maxPowerEnvelopeMW"`
	OptimalPowerEnvelopeMW float64 `json:"optimalPowerEnvelopeMW"`

	RequiredAdjacentSlots     []string `json:"requiredAdjacentSlots"`
	IncompatibleAdjacentSlots []string `json:"incompatibleAdjacentSlots"`

	WeaponDamagePerShot           *float64 `json:"weaponDamagePerShot"`
	WeaponRangeKm                 float64  `json:"weaponRangeKm"`
	WeaponFireRatePerSecond       float64  `json:"weaponFireRatePerSecond"`
	WeaponAmmoCapacity            int      `json:"weaponAmmoCapacity"`
	WeaponAmmoType                string   `json:"weaponAmmoType"`
	WeaponIsTurret                bool     `json:"weaponIsTurret"`
	WeaponTrackingSpeedDegPerSec  float64  `json:"weaponTrackingSpeedDegPerSec"`
	WeaponProjectileSpeedKmPerSec float64  `json:"weaponProjectileSpeedKmPerSec"`

	ShieldCapacityMJ           *float64 `json:"shieldCapacityMJ"`
	ShieldRechargeRateMJPerSec float64  `json:"shieldRechargeRateMJPerSec"`
	ShieldRechargeDelaySeconds float64  `json:"shieldRechargeDelaySeconds"`
	ShieldDamageAbsorption     *float64 `json:"shieldDamageAbsorption"`
}

// blueprint converts the flat file into a catalog blueprint, applying file
// defaults and validating the result. A zero MaxPowerEnvelopeMW means the
// file declared no envelope and gets the tolerant default.
func (f *componentFile) blueprint(path string) (*ship.ComponentBlueprint, error) {
	category, ok := ship.ParseCategory(f.Category)
	if !ok {
		return nil, serrors.NewSchemaError(fmt.Sprintf("unknown category %q", f.Category), path, "category")
	}
	size, ok := ship.ParseSize(f.Size)
	if !ok {
		return nil, serrors.NewSchemaError(fmt.Sprintf("unknown size %q", f.Size), path, "size")
	}

	bp := &ship.ComponentBlueprint{
		ID:          f.ID,
		DisplayName: f.DisplayName,
		Description: f.Description,
		Category:    category,
		Size:        size,

		MassTons:          f.MassTons,
		PowerOutputMW:     f.PowerOutputMW,
		PowerDrawMW:       f.PowerDrawMW,
		ThrustKN:          f.ThrustKN,
		HeatGenerationMW:  f.HeatGenerationMW,
		HeatDissipationMW: f.HeatDissipationMW,
		CrewRequired:      f.CrewRequired,
		CrewSupport:       f.CrewSupport,

		SchemaVersion:       f.SchemaVersion,
		TechTier:            f.TechTier,
		Manufacturer:        f.Manufacturer,
		ManufacturerLineage: f.ManufacturerLineage,
		FactionRestrictions: f.FactionRestrictions,

		MinPowerEnvelopeMW:     f.MinPowerEnvelopeMW,
		MaxPowerEnvelopeMW:     f.MaxPowerEnvelopeMW,
		OptimalPowerEnvelopeMW: f.OptimalPowerEnvelopeMW,
	}

	if bp.SchemaVersion == 0 {
		bp.SchemaVersion = 1
	}
	if bp.TechTier == 0 {
		bp.TechTier = 1
	}
	if bp.MaxPowerEnvelopeMW == 0 {
		bp.MaxPowerEnvelopeMW = ship.DefaultMaxPowerEnvelopeMW
		if bp.OptimalPowerEnvelopeMW == 0 {
			bp.OptimalPowerEnvelopeMW = ship.DefaultOptimalPowerEnvelopeMW
		}
	}

	var err error
	if bp.RequiredAdjacentSlots, err = parseCategories(f.RequiredAdjacentSlots, path, "requiredAdjacentSlots"); err != nil {
		return nil, err
	}
	if bp.IncompatibleAdjacentSlots, err = parseCategories(f.IncompatibleAdjacentSlots, path, "incompatibleAdjacentSlots"); err != nil {
		return nil, err
	}

	if f.WeaponDamagePerShot != nil {
		bp.Weapon = &ship.WeaponSpec{
			DamagePerShot:           *f.WeaponDamagePerShot,
			RangeKm:                 f.WeaponRangeKm,
			FireRatePerSecond:       f.WeaponFireRatePerSecond,
			AmmoCapacity:            f.WeaponAmmoCapacity,
			AmmoType:                f.WeaponAmmoType,
			IsTurret:                f.WeaponIsTurret,
			TrackingSpeedDegPerSec:  f.WeaponTrackingSpeedDegPerSec,
			ProjectileSpeedKmPerSec: f.WeaponProjectileSpeedKmPerSec,
		}
	}

	if f.ShieldCapacityMJ != nil {
		absorption := 1.0
		if f.ShieldDamageAbsorption != nil {
			absorption = *f.ShieldDamageAbsorption
		}
		bp.Shield = &ship.ShieldSpec{
			CapacityMJ:           *f.ShieldCapacityMJ,
			RechargeRateMJPerSec: f.ShieldRechargeRateMJPerSec,
			RechargeDelaySeconds: f.ShieldRechargeDelaySeconds,
			DamageAbsorption:     absorption,
		}
	}

	if err := bp.Validate(); err != nil {
		return nil, serrors.NewSchemaError(err.Error(), path, "")
	}

	return bp, nil
}

func parseCategories(names []string, path, field string) ([]ship.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]ship.Category, 0, len(names))
	for _, name := range names {
		c, ok := ship.ParseCategory(name)
		if !ok {
			return nil, serrors.NewSchemaError(fmt.Sprintf("unknown category %q", name), path, field)
		}
		out = append(out, c)
	}
	return out, nil
}

// componentParse carries one file's outcome through the parallel parse pass.
type componentParse struct {
	status FileStatus
	bp     *ship.ComponentBlueprint
}

func (p *componentParse) fail(err error) {
	p.status.Kind = KindForError(err)
	p.status.Err = err
	p.bp = nil
}

// parseComponentFile runs the per-file pipeline: read, decode, version
// check, schema validation, mapping. Failures land on the returned status;
// they never abort the pass.
func (l *Loader) parseComponentFile(path string) componentParse {
	out := componentParse{status: FileStatus{Path: path}}

	data, err := readContentFile(path)
	if err != nil {
		out.fail(err)
		return out
	}

	var f componentFile
	if err := json.Unmarshal(data, &f); err != nil {
		parseErr, deferToSchema := decodeError(err, path)
		if !deferToSchema {
			out.fail(parseErr)
			return out
		}
		if schemaErr := l.schema.ValidateComponent(data, path); schemaErr != nil {
			out.fail(schemaErr)
			return out
		}
		out.fail(serrors.NewSchemaError(err.Error(), path, ""))
		return out
	}

	// The version gate runs before schema validation so a future-versioned
	// file reports as unsupported rather than as malformed.
	version := f.SchemaVersion
	if version == 0 {
		version = 1
	}
	if version > SupportedSchemaVersion {
		msg := fmt.Sprintf("component declares schema version %d; this build reads up to %d", version, SupportedSchemaVersion)
		out.fail(serrors.NewVersionError(msg, path, version, SupportedSchemaVersion))
		return out
	}

	if err := l.schema.ValidateComponent(data, path); err != nil {
		out.fail(err)
		return out
	}

	bp, err := f.blueprint(path)
	if err != nil {
		out.fail(err)
		return out
	}

	out.status.ID = bp.ID
	out.bp = bp
	return out
}

// parseComponents runs the per-file pipeline over every scanned file, in
// parallel, keeping scan order in the result.
func (l *Loader) parseComponents(stamps []FileStamp) []componentParse {
	parses := make([]componentParse, len(stamps))
	runParsePass(len(stamps), func(i int) {
		parses[i] = l.parseComponentFile(stamps[i].Path)
	})
	return parses
}

// dedupeComponents resolves duplicate ids within one load pass: the first
// occurrence in name order wins, later ones fail with a duplicate-id error.
func dedupeComponents(parses []componentParse) {
	firstSeen := make(map[string]string, len(parses))
	for i := range parses {
		p := &parses[i]
		if p.bp == nil {
			continue
		}
		prior, dup := firstSeen[p.bp.ID]
		if !dup {
			firstSeen[p.bp.ID] = p.status.Path
			continue
		}
		output.Warn("duplicate component id in load pass",
			"id", p.bp.ID, "file", p.status.Path, "first", prior)
		p.fail(serrors.NewDuplicateIDError(p.bp.ID, p.status.Path, prior))
	}
}

// LoadComponents scans dir and registers every component blueprint that
// passes the load pipeline, layering onto whatever the catalog already
// holds. The scan also primes the hot-reload index so a following
// ReloadComponents only reacts to real changes.
func (l *Loader) LoadComponents(dir string, cat *catalog.ComponentCatalog) *Report {
	report := &Report{Dir: dir}

	stamps, err := ScanDir(dir)
	if err != nil {
		report.Err = serrors.NewIOError("component directory is not readable", dir, err)
		output.Warn("component directory not readable", "dir", dir, "err", err)
		return report
	}

	parses := l.parseComponents(stamps)
	dedupeComponents(parses)
	for i := range parses {
		p := &parses[i]
		if p.bp != nil {
			cat.Register(*p.bp)
			p.status.Loaded = true
		}
		report.Files = append(report.Files, p.status)
	}
	l.componentIndex.Rebuild(stamps)

	output.Debug("loaded components",
		"dir", dir, "loaded", report.Loaded(), "failed", report.Failed())
	return report
}

// ReloadComponents polls dir for changes. When any file was added, removed,
// or modified since the last pass, the catalog is rebuilt from scratch in a
// single atomic swap and the new report is returned with rebuilt=true.
// Otherwise nothing happens and the report is nil.
func (l *Loader) ReloadComponents(dir string, cat *catalog.ComponentCatalog) (rebuilt bool, report *Report) {
	stamps, err := ScanDir(dir)
	if err != nil {
		// Leave the catalog as it was; the next poll retries.
		output.Warn("component reload scan failed", "dir", dir, "err", err)
		return false, nil
	}
	if !l.componentIndex.Stale(stamps) {
		return false, nil
	}

	report = &Report{Dir: dir}
	parses := l.parseComponents(stamps)
	dedupeComponents(parses)

	items := make([]ship.ComponentBlueprint, 0, len(parses))
	for i := range parses {
		p := &parses[i]
		if p.bp != nil {
			items = append(items, *p.bp)
			p.status.Loaded = true
		}
		report.Files = append(report.Files, p.status)
	}
	cat.Replace(items)
	l.componentIndex.Rebuild(stamps)

	output.Info("component catalog rebuilt",
		"dir", dir, "loaded", report.Loaded(), "failed", report.Failed())
	return true, report
}
