package report

import (
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// YAML converts the canonical JSON document to YAML. Map key order in the
// YAML form follows the converter, not the canonical order; only the JSON
// form carries the ordering contract.
func YAML(result *ship.AssemblyResult) ([]byte, error) {
	out, err := yaml.JSONToYAML(JSON(result))
	if err != nil {
		return nil, fmt.Errorf("converting report to yaml: %w", err)
	}
	return out, nil
}

// TextOptions controls human-readable rendering.
type TextOptions struct {
	// Styles to render with. Nil uses the default style set.
	Styles *output.Styles

	// ComponentLabel resolves component ids in diagnostic lines to display
	// names, typically backed by the component catalog. Nil renders bare ids.
	ComponentLabel diag.ComponentLabeler
}

// Text renders the result as a styled human-readable summary: headline,
// resolved components, aggregate stats, then diagnostics.
func Text(result *ship.AssemblyResult, opts TextOptions) string {
	styles := opts.Styles
	if styles == nil {
		styles = output.GetStyles()
	}

	var b strings.Builder
	writeHeadline(&b, result, styles)

	if len(result.Components) > 0 {
		fmt.Fprintf(&b, "\n%s\n", styles.Bold.Render(fmt.Sprintf("Components (%d/%d):", len(result.Components), len(result.Hull.Slots))))
		for i := range result.Components {
			c := &result.Components[i]
			name := c.Blueprint.DisplayName
			if name == "" {
				name = c.Blueprint.ID
			}
			fmt.Fprintf(&b, "  %-22s%s\n", c.SlotID, name)
		}
	}

	b.WriteString("\n" + styles.Bold.Render("Stats:") + "\n")
	writeStatLines(&b, &result.Metrics)

	b.WriteByte('\n')
	if result.Diagnostics.Empty() {
		b.WriteString(output.FormatCheckmark("No issues found.") + "\n")
		return b.String()
	}

	b.WriteString(styles.Bold.Render("Diagnostics:") + "\n")
	for _, line := range result.Diagnostics.UserFacingMessages(result.SlotLabeler(), opts.ComponentLabel) {
		b.WriteString("  " + styleDiagnosticLine(styles, line) + "\n")
	}
	return b.String()
}

func writeHeadline(b *strings.Builder, result *ship.AssemblyResult, styles *output.Styles) {
	status := output.StatusInvalid
	if result.IsValid() {
		status = output.StatusValid
	}
	styledStatus := output.StatusStyle(status).Render(status)

	if result.Hull == nil {
		fmt.Fprintf(b, "%s  %s\n", styles.Bold.Render("(unresolved hull)"), styledStatus)
		return
	}
	fmt.Fprintf(b, "%s %s  %s\n",
		styles.Bold.Render(result.Hull.DisplayName),
		styles.Noun.Render("("+result.Hull.ID+")"),
		styledStatus,
	)
}

func writeStatLines(b *strings.Builder, m *ship.Metrics) {
	stat := func(label, value string) {
		fmt.Fprintf(b, "  %-16s%s\n", label, value)
	}

	stat("Mass", num(m.MassTons)+" t")
	stat("Power", fmt.Sprintf("out %s MW, draw %s MW, net %s MW",
		num(m.PowerOutputMW), num(m.PowerDrawMW), num(m.NetPowerMW())))
	stat("Thrust", fmt.Sprintf("%s kN (main %s, maneuver %s)",
		num(m.ThrustKN), num(m.MainThrustKN), num(m.ManeuverThrustKN)))
	stat("Thrust-to-mass", num(m.ThrustToMassRatio()))
	stat("Heat", fmt.Sprintf("gen %s MW, diss %s MW, net %s MW",
		num(m.HeatGenerationMW), num(m.HeatDissipationMW), num(m.NetHeatMW())))
	stat("Avionics", fmt.Sprintf("modules %d, draw %s MW", m.AvionicsModules, num(m.AvionicsPowerDrawMW)))
	stat("Crew", crewLine(m))
}

func crewLine(m *ship.Metrics) string {
	line := fmt.Sprintf("%d/%d", m.CrewRequired, m.CrewCapacity)
	switch {
	case m.CrewCapacity > 0:
		line += fmt.Sprintf(" (%s%% utilized)", num(m.CrewUtilization()*100))
	case m.CrewRequired > 0:
		line += " (over capacity)"
	}
	return line
}

// styleDiagnosticLine colors a rendered diagnostic line by its severity
// prefix. Suggestion lines take the info style.
func styleDiagnosticLine(styles *output.Styles, line string) string {
	switch {
	case strings.HasPrefix(line, "Error: "):
		return styles.Error.Render("Error:") + strings.TrimPrefix(line, "Error:")
	case strings.HasPrefix(line, "Warning: "):
		return styles.Warning.Render("Warning:") + strings.TrimPrefix(line, "Warning:")
	case strings.HasPrefix(line, "Info: "):
		return styles.Info.Render("Info:") + strings.TrimPrefix(line, "Info:")
	case strings.HasPrefix(line, "Suggestion for "):
		return styles.Info.Render(line)
	default:
		return line
	}
}

// num formats a stat value the same way diagnostic messages do.
func num(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

// Render serializes the result in the requested format. Table output is not
// defined for assembly reports.
func Render(result *ship.AssemblyResult, format output.Format, opts TextOptions) ([]byte, error) {
	switch format {
	case output.FormatJSON:
		return JSON(result), nil
	case output.FormatYAML:
		return YAML(result)
	case output.FormatText:
		return []byte(Text(result, opts)), nil
	case output.FormatTable:
		return nil, fmt.Errorf("format %s not supported for assembly reports", format)
	}
	return []byte(Text(result, opts)), nil
}
