package ship

import "math"

// Metrics holds whole-ship aggregate physical properties. Derived figures
// (net power, net heat, thrust-to-mass, crew utilization) are computed on
// demand rather than stored.
type Metrics struct {
	MassTons            float64
	PowerOutputMW       float64
	PowerDrawMW         float64
	ThrustKN            float64
	MainThrustKN        float64
	ManeuverThrustKN    float64
	HeatGenerationMW    float64
	HeatDissipationMW   float64
	CrewRequired        int
	CrewCapacity        int
	AvionicsModules     int
	AvionicsPowerDrawMW float64
}

// NetPowerMW is reactor output minus total draw. Negative means a deficit.
func (m *Metrics) NetPowerMW() float64 {
	return m.PowerOutputMW - m.PowerDrawMW
}

// NetHeatMW is dissipation minus generation. Negative means heat accumulates.
func (m *Metrics) NetHeatMW() float64 {
	return m.HeatDissipationMW - m.HeatGenerationMW
}

// ThrustToMassRatio is total thrust over mass, or 0 for a massless ship.
func (m *Metrics) ThrustToMassRatio() float64 {
	if m.MassTons > 0 {
		return m.ThrustKN / m.MassTons
	}
	return 0
}

// CrewUtilization is required crew over capacity. With zero capacity it is
// 0 when nobody is required and +Inf otherwise.
func (m *Metrics) CrewUtilization() float64 {
	if m.CrewCapacity <= 0 {
		if m.CrewRequired > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(m.CrewRequired) / float64(m.CrewCapacity)
}

// SeedHull resets the metrics to the hull's baseline contributions. Power
// figures start at zero; only components produce or draw power.
func (m *Metrics) SeedHull(h *HullBlueprint) {
	*m = Metrics{
		MassTons:          h.BaseMassTons,
		HeatGenerationMW:  h.BaseHeatGenerationMW,
		HeatDissipationMW: h.BaseHeatDissipationMW,
		CrewRequired:      h.BaseCrewRequired,
		CrewCapacity:      h.BaseCrewCapacity,
	}
}

// Add accumulates one component's physical contributions.
func (m *Metrics) Add(b *ComponentBlueprint) {
	m.MassTons += b.MassTons
	m.PowerOutputMW += b.PowerOutputMW
	m.PowerDrawMW += b.PowerDrawMW
	m.ThrustKN += b.ThrustKN
	switch b.Category {
	case CategoryMainThruster:
		m.MainThrustKN += b.ThrustKN
	case CategoryManeuverThruster:
		m.ManeuverThrustKN += b.ThrustKN
	}
	m.HeatGenerationMW += b.HeatGenerationMW
	m.HeatDissipationMW += b.HeatDissipationMW
	m.CrewRequired += b.CrewRequired
	m.CrewCapacity += b.CrewSupport
	if b.Category.IsAvionics() {
		m.AvionicsModules++
		m.AvionicsPowerDrawMW += b.PowerDrawMW
	}
}
