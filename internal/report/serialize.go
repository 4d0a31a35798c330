// Package report renders assembly results into their external forms: a
// canonical JSON document with bit-exact key ordering, YAML derived from
// that document, and styled human-readable text.
//
// The JSON form is a consumed contract: top-level keys are always
// hull, components, stats, then subsystems and diagnostics when present,
// and the key order inside each object is fixed. Tooling diffs and
// persisted designs depend on two serializations of the same result being
// byte-identical.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/ship"
)

// JSON serializes the result into its canonical compact form. The
// document is self-contained and deterministic: slot entries follow hull
// declaration order, subsystems follow canonical category order, and
// diagnostics keep their emission order.
func JSON(result *ship.AssemblyResult) []byte {
	var b bytes.Buffer
	b.WriteByte('{')

	b.WriteString(`"hull":`)
	hullID := ""
	if result.Hull != nil {
		hullID = result.Hull.ID
	}
	writeString(&b, hullID)

	b.WriteString(`,"components":[`)
	for i := range result.Components {
		if i > 0 {
			b.WriteByte(',')
		}
		writeComponentRef(&b, &result.Components[i])
	}
	b.WriteByte(']')

	b.WriteString(`,"stats":`)
	writeStats(&b, &result.Metrics)

	if len(result.Subsystems) > 0 {
		b.WriteString(`,"subsystems":{`)
		for i, category := range result.SubsystemCategories() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(&b, string(category))
			b.WriteByte(':')
			writeSubsystem(&b, result.Subsystems[category])
		}
		b.WriteByte('}')
	}

	if !result.Diagnostics.Empty() {
		b.WriteString(`,"diagnostics":`)
		writeDiagnostics(&b, &result.Diagnostics)
	}

	b.WriteByte('}')
	return b.Bytes()
}

func writeComponentRef(b *bytes.Buffer, c *ship.AssembledComponent) {
	b.WriteString(`{"slot":`)
	writeString(b, c.SlotID)
	b.WriteString(`,"component":`)
	componentID := ""
	if c.Blueprint != nil {
		componentID = c.Blueprint.ID
	}
	writeString(b, componentID)
	b.WriteByte('}')
}

func writeStats(b *bytes.Buffer, m *ship.Metrics) {
	b.WriteString(`{"massTons":`)
	writeFloat(b, m.MassTons)
	b.WriteString(`,"powerOutputMW":`)
	writeFloat(b, m.PowerOutputMW)
	b.WriteString(`,"powerDrawMW":`)
	writeFloat(b, m.PowerDrawMW)
	b.WriteString(`,"netPowerMW":`)
	writeFloat(b, m.NetPowerMW())
	b.WriteString(`,"thrustKN":`)
	writeFloat(b, m.ThrustKN)
	b.WriteString(`,"mainThrustKN":`)
	writeFloat(b, m.MainThrustKN)
	b.WriteString(`,"maneuverThrustKN":`)
	writeFloat(b, m.ManeuverThrustKN)
	b.WriteString(`,"avionicsModules":`)
	b.WriteString(strconv.Itoa(m.AvionicsModules))
	b.WriteString(`,"avionicsPowerDrawMW":`)
	writeFloat(b, m.AvionicsPowerDrawMW)
	b.WriteString(`,"thrustToMass":`)
	writeFloat(b, m.ThrustToMassRatio())
	b.WriteString(`,"heatGenerationMW":`)
	writeFloat(b, m.HeatGenerationMW)
	b.WriteString(`,"heatDissipationMW":`)
	writeFloat(b, m.HeatDissipationMW)
	b.WriteString(`,"netHeatMW":`)
	writeFloat(b, m.NetHeatMW())
	b.WriteString(`,"crewRequired":`)
	b.WriteString(strconv.Itoa(m.CrewRequired))
	b.WriteString(`,"crewCapacity":`)
	b.WriteString(strconv.Itoa(m.CrewCapacity))
	b.WriteString(`,"crewUtilization":`)
	writeFloat(b, m.CrewUtilization())
	b.WriteByte('}')
}

func writeSubsystem(b *bytes.Buffer, s *ship.SubsystemSummary) {
	b.WriteString(`{"massTons":`)
	writeFloat(b, s.MassTons)
	b.WriteString(`,"powerOutputMW":`)
	writeFloat(b, s.PowerOutputMW)
	b.WriteString(`,"powerDrawMW":`)
	writeFloat(b, s.PowerDrawMW)
	b.WriteString(`,"thrustKN":`)
	writeFloat(b, s.ThrustKN)
	b.WriteString(`,"heatGenerationMW":`)
	writeFloat(b, s.HeatGenerationMW)
	b.WriteString(`,"heatDissipationMW":`)
	writeFloat(b, s.HeatDissipationMW)
	b.WriteString(`,"crewRequired":`)
	b.WriteString(strconv.Itoa(s.CrewRequired))
	b.WriteString(`,"crewSupport":`)
	b.WriteString(strconv.Itoa(s.CrewSupport))
	b.WriteString(`,"components":[`)
	for i := range s.Components {
		if i > 0 {
			b.WriteByte(',')
		}
		writeComponentRef(b, &s.Components[i])
	}
	b.WriteString(`]}`)
}

func writeDiagnostics(b *bytes.Buffer, r *diag.Report) {
	b.WriteString(`{"errors":[`)
	writeMessages(b, r, diag.SeverityError)
	b.WriteString(`],"warnings":[`)
	writeMessages(b, r, diag.SeverityWarning)
	b.WriteByte(']')

	if infos := r.BySeverity(diag.SeverityInfo); len(infos) > 0 {
		b.WriteString(`,"info":[`)
		writeMessages(b, r, diag.SeverityInfo)
		b.WriteByte(']')
	}

	if len(r.Suggestions) > 0 {
		b.WriteString(`,"suggestions":[`)
		for i := range r.Suggestions {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSuggestionGroup(b, &r.Suggestions[i])
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
}

// writeMessages emits the report's messages of one severity, keeping their
// emission order within the bucket.
func writeMessages(b *bytes.Buffer, r *diag.Report, severity diag.Severity) {
	first := true
	for i := range r.Messages {
		m := &r.Messages[i]
		if m.Severity != severity {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		writeDiagnostic(b, m)
	}
}

func writeDiagnostic(b *bytes.Buffer, m *diag.Diagnostic) {
	b.WriteString(`{"severity":`)
	writeString(b, string(m.Severity))
	b.WriteString(`,"reasonCode":`)
	writeString(b, m.Code.String())
	b.WriteString(`,"message":`)
	writeString(b, m.Message)
	if m.SlotID != "" {
		b.WriteString(`,"slotId":`)
		writeString(b, m.SlotID)
	}
	if len(m.RelatedComponents) > 0 {
		b.WriteString(`,"relatedComponents":[`)
		for i, id := range m.RelatedComponents {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, id)
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
}

func writeSuggestionGroup(b *bytes.Buffer, s *diag.SlotSuggestions) {
	b.WriteString(`{"slotId":`)
	writeString(b, s.SlotID)
	b.WriteString(`,"reason":`)
	writeString(b, s.Reason)
	if len(s.Ranked) > 0 {
		b.WriteString(`,"ranked":[`)
		for i := range s.Ranked {
			if i > 0 {
				b.WriteByte(',')
			}
			cand := &s.Ranked[i]
			b.WriteString(`{"componentId":`)
			writeString(b, cand.ComponentID)
			b.WriteString(`,"fitScore":`)
			writeFloat(b, cand.Score)
			b.WriteString(`,"reasoning":`)
			writeString(b, cand.Reasoning)
			b.WriteByte('}')
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
}

// writeFloat emits the shortest decimal form that round-trips. JSON has no
// non-finite numbers; crew utilization of an overloaded zero-capacity fit
// is the one producer, serialized as a string.
func writeFloat(b *bytes.Buffer, v float64) {
	switch {
	case math.IsInf(v, 1):
		b.WriteString(`"Infinity"`)
	case math.IsInf(v, -1):
		b.WriteString(`"-Infinity"`)
	case math.IsNaN(v):
		b.WriteString(`"NaN"`)
	default:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// writeString emits s as a JSON string without HTML escaping, so message
// text like "output < draw" stays readable.
func writeString(b *bytes.Buffer, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
