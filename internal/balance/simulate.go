package balance

import (
	"math"
	"sort"

	"github.com/novaengine/shipwright/internal/ship"
)

// FlightProfile estimates how an assembled ship behaves in flight. The
// model is deliberately coarse: it exists to compare fits, not to fly
// them. Ratings are on a 0-100 scale.
type FlightProfile struct {
	// AccelerationMS2 is linear acceleration in m/s².
	AccelerationMS2 float64 `json:"accelerationMS2"`

	// MaxSpeedMS is the drag-limited top speed estimate in m/s.
	MaxSpeedMS float64 `json:"maxSpeedMS"`

	// TurnRateDegS is the yaw rate in degrees per second.
	TurnRateDegS float64 `json:"turnRateDegS"`

	// PowerEfficiencyPct is the unspent share of reactor output.
	PowerEfficiencyPct float64 `json:"powerEfficiencyPct"`

	// HeatManagementPct is the unspent share of dissipation capacity.
	HeatManagementPct float64 `json:"heatManagementPct"`

	CombatRating   float64 `json:"combatRating"`
	SurvivalRating float64 `json:"survivalRating"`
	EconomicRating float64 `json:"economicRating"`
}

// OverallScore averages the three ratings, for ship-to-ship comparison.
func (p *FlightProfile) OverallScore() float64 {
	return (p.CombatRating + p.SurvivalRating + p.EconomicRating) / 3
}

// Simulate derives a flight profile from a result's aggregate metrics.
//
// Acceleration is thrust over mass; top speed grows with the square root
// of thrust; turn rate divides maneuver thrust by a moment of inertia
// proportional to mass. A massless result (invalid, or a hull with no
// baseline) yields zero motion rather than dividing by zero.
func Simulate(result *ship.AssemblyResult) FlightProfile {
	m := &result.Metrics
	var p FlightProfile

	if m.MassTons > 0 {
		p.AccelerationMS2 = m.ThrustKN * 1000 / (m.MassTons * 1000)
		p.TurnRateDegS = m.ManeuverThrustKN * 50 / (m.MassTons * 10)
	}
	p.MaxSpeedMS = math.Sqrt(m.ThrustKN * 100)

	if m.PowerOutputMW > 0 {
		p.PowerEfficiencyPct = (1 - m.PowerDrawMW/m.PowerOutputMW) * 100
	}
	if m.HeatDissipationMW > 0 {
		p.HeatManagementPct = (1 - m.HeatGenerationMW/m.HeatDissipationMW) * 100
	}

	p.CombatRating = math.Min(100, (m.ThrustKN+m.PowerOutputMW)/10)
	p.SurvivalRating = math.Min(100, m.MassTons/2+float64(m.CrewCapacity))
	p.EconomicRating = math.Min(100, p.PowerEfficiencyPct*0.5+p.HeatManagementPct*0.5)

	return p
}

// CompareShips ranks results by overall flight score, best first. The
// returned labels use hull display names; ties keep input order.
func CompareShips(results []*ship.AssemblyResult) []RankedShip {
	ranked := make([]RankedShip, 0, len(results))
	for _, r := range results {
		name := "Unknown"
		if r.Hull != nil {
			name = r.Hull.DisplayName
		}
		profile := Simulate(r)
		ranked = append(ranked, RankedShip{Name: name, Score: profile.OverallScore()})
	}
	// Stable so equally scored ships keep caller order.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// RankedShip pairs a hull display name with its overall flight score.
type RankedShip struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
