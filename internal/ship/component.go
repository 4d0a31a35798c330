package ship

import "fmt"

// Power envelope defaults applied when a content file omits the fields.
// A component with no declared envelope tolerates any reactor output up to
// DefaultMaxPowerEnvelopeMW.
const (
	DefaultMaxPowerEnvelopeMW     = 1000.0
	DefaultOptimalPowerEnvelopeMW = 50.0
)

// ComponentBlueprint describes one installable component. Blueprints are
// value types; the catalog hands out pointers to its own immutable copies.
type ComponentBlueprint struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Size        SlotSize `json:"size"`

	MassTons          float64 `json:"massTons"`
	PowerOutputMW     float64 `json:"powerOutputMW"`
	PowerDrawMW       float64 `json:"powerDrawMW"`
	ThrustKN          float64 `json:"thrustKN,omitempty"`
	HeatGenerationMW  float64 `json:"heatGenerationMW"`
	HeatDissipationMW float64 `json:"heatDissipationMW"`
	CrewRequired      int     `json:"crewRequired"`
	CrewSupport       int     `json:"crewSupport"`

	// SchemaVersion is the content schema the file was authored against.
	// Versions above the supported maximum are rejected at load time.
	SchemaVersion int `json:"schemaVersion"`

	TechTier            int      `json:"techTier"`
	Manufacturer        string   `json:"manufacturer"`
	ManufacturerLineage string   `json:"manufacturerLineage,omitempty"`
	FactionRestrictions []string `json:"factionRestrictions,omitempty"`

	// Reactor output range this component operates correctly within.
	// Checked by the power-envelope soft rule against the summed output of
	// all installed power plants.
	MinPowerEnvelopeMW     float64 `json:"minPowerEnvelopeMW"`
	MaxPowerEnvelopeMW     float64 `json:"maxPowerEnvelopeMW"`
	OptimalPowerEnvelopeMW float64 `json:"optimalPowerEnvelopeMW"`

	// Adjacency preferences, matched against the categories of resolved
	// components in the slot's adjacentSlotIds.
	RequiredAdjacentSlots     []Category `json:"requiredAdjacentSlots,omitempty"`
	IncompatibleAdjacentSlots []Category `json:"incompatibleAdjacentSlots,omitempty"`

	// Category-specific sub-records, present iff the category matches.
	Weapon *WeaponSpec `json:"weapon,omitempty"`
	Shield *ShieldSpec `json:"shield,omitempty"`
}

// WeaponSpec carries weapon-only performance figures.
type WeaponSpec struct {
	DamagePerShot           float64 `json:"damagePerShot"`
	RangeKm                 float64 `json:"rangeKm"`
	FireRatePerSecond       float64 `json:"fireRatePerSecond"`
	AmmoCapacity            int     `json:"ammoCapacity"`
	AmmoType                string  `json:"ammoType,omitempty"`
	IsTurret                bool    `json:"isTurret"`
	TrackingSpeedDegPerSec  float64 `json:"trackingSpeedDegPerSec,omitempty"`
	ProjectileSpeedKmPerSec float64 `json:"projectileSpeedKmPerSec,omitempty"`
}

// ShieldSpec carries shield-only performance figures.
type ShieldSpec struct {
	CapacityMJ           float64 `json:"capacityMJ"`
	RechargeRateMJPerSec float64 `json:"rechargeRateMJPerSec"`
	RechargeDelaySeconds float64 `json:"rechargeDelaySeconds"`
	DamageAbsorption     float64 `json:"damageAbsorption"`
}

// Validate checks the blueprint's structural invariants. Content-file schema
// checks run earlier in the load pipeline; this guards programmatic
// registration too.
func (b *ComponentBlueprint) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("component id is empty")
	}
	if !b.Category.Valid() {
		return fmt.Errorf("component %s: unknown category %q", b.ID, b.Category)
	}
	if !b.Size.Valid() {
		return fmt.Errorf("component %s: unknown size %q", b.ID, b.Size)
	}
	if b.MassTons < 0 {
		return fmt.Errorf("component %s: negative mass %v", b.ID, b.MassTons)
	}
	if b.PowerOutputMW < 0 || b.PowerDrawMW < 0 {
		return fmt.Errorf("component %s: negative power figures", b.ID)
	}
	if b.MinPowerEnvelopeMW > b.OptimalPowerEnvelopeMW || b.OptimalPowerEnvelopeMW > b.MaxPowerEnvelopeMW {
		return fmt.Errorf("component %s: power envelope out of order (min %v, optimal %v, max %v)",
			b.ID, b.MinPowerEnvelopeMW, b.OptimalPowerEnvelopeMW, b.MaxPowerEnvelopeMW)
	}
	if b.SchemaVersion < 1 {
		return fmt.Errorf("component %s: schemaVersion %d is below 1", b.ID, b.SchemaVersion)
	}
	if b.Shield != nil && (b.Shield.DamageAbsorption < 0 || b.Shield.DamageAbsorption > 1) {
		return fmt.Errorf("component %s: damageAbsorption %v outside [0,1]", b.ID, b.Shield.DamageAbsorption)
	}
	return nil
}

// IsPowerPlant reports whether the component produces reactor power.
func (b *ComponentBlueprint) IsPowerPlant() bool {
	return b.Category == CategoryPowerPlant
}
