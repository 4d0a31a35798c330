// Package balance grades valid assembly results beyond the engine's hard
// and soft rules: a composite balance score, tiered fitness checks for
// progressively stricter play contexts, and heuristic improvement hints.
//
// Everything here is advisory. Findings carry Info severity and never
// affect a result's validity.
package balance

import (
	"fmt"
	"math"
	"strings"

	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/ship"
)

// Level selects how strict a fitness check is. Levels are ordered; each
// level includes every check of the levels below it.
type Level int

// Validation levels, least strict first.
const (
	// LevelBasic requires only hard validity.
	LevelBasic Level = iota

	// LevelStandard adds non-negative net power and crew utilization at or
	// below capacity.
	LevelStandard

	// LevelStrict adds non-negative net heat and a balance score of at
	// least 0.5.
	LevelStrict

	// LevelTournament raises the score floor to 0.75.
	LevelTournament
)

var levelNames = map[Level]string{
	LevelBasic:      "basic",
	LevelStandard:   "standard",
	LevelStrict:     "strict",
	LevelTournament: "tournament",
}

// String returns the lowercase level name.
func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, bool) {
	for l, n := range levelNames {
		if strings.EqualFold(s, n) {
			return l, true
		}
	}
	return LevelBasic, false
}

// ValidLevels returns the level names in ascending strictness, for CLI
// usage strings.
func ValidLevels() []string {
	return []string{"basic", "standard", "strict", "tournament"}
}

// Score floors per level. Basic and Standard impose none.
const (
	strictScoreFloor     = 0.5
	tournamentScoreFloor = 0.75
)

// Score rates how well a ship's subsystems are proportioned, in [0,1].
// The score is a product of four factors, each rewarding proximity to a
// target operating point: power draw at 80% of output, heat generation at
// 70% of dissipation, crew at 85% of capacity, and thrust-to-mass
// approaching 10 kN per ton.
//
// The score of an invalid result is meaningless; callers gate on
// IsValid() first.
func Score(result *ship.AssemblyResult) float64 {
	m := &result.Metrics
	score := 1.0

	powerRatio := 0.0
	if m.PowerOutputMW > 0 {
		powerRatio = m.PowerDrawMW / m.PowerOutputMW
	}
	score *= 0.7 + 0.3*math.Min(1, 1-math.Abs(powerRatio-0.8))

	heatRatio := 0.0
	if m.HeatDissipationMW > 0 {
		heatRatio = m.HeatGenerationMW / m.HeatDissipationMW
	}
	score *= 0.8 + 0.2*math.Min(1, 1-math.Abs(heatRatio-0.7))

	crewUtil := m.CrewUtilization()
	if math.IsInf(crewUtil, 1) {
		// Unmanned systems with nobody aboard: maximally unbalanced crew.
		score *= 0.8
	} else {
		score *= 0.8 + 0.2*math.Min(1, 1-math.Abs(crewUtil-0.85))
	}

	score *= 0.7 + 0.3*math.Min(1, m.ThrustToMassRatio()/10)

	return math.Max(0, math.Min(1, score))
}

// Report is the outcome of one fitness check.
type Report struct {
	// Level the check ran at.
	Level Level `json:"level"`

	// Passed is true when the result met every requirement of the level.
	Passed bool `json:"passed"`

	// Score is the balance score of the result, regardless of level.
	Score float64 `json:"score"`

	// Findings lists each failed requirement as an Info diagnostic.
	Findings []diag.Diagnostic `json:"findings,omitempty"`

	// Improvements are heuristic refit hints, produced even for passing
	// ships.
	Improvements []string `json:"improvements,omitempty"`
}

// Check grades a result against a validation level. Failed requirements
// are reported as Info diagnostics; the engine's own Error and Warning
// diagnostics stay on the result.
func Check(result *ship.AssemblyResult, level Level) Report {
	report := Report{
		Level: level,
		Score: Score(result),
	}

	if !result.IsValid() {
		report.Findings = append(report.Findings, diag.Diagnostic{
			Severity: diag.SeverityInfo,
			Code:     diag.CodeSuggestionCompatibleReplacement,
			Message:  "Ship is not assemblable; resolve hard errors before balancing.",
		})
		report.Improvements = SuggestImprovements(result)
		return report
	}

	m := &result.Metrics
	if level >= LevelStandard {
		if net := m.NetPowerMW(); net < 0 {
			report.Findings = append(report.Findings, infoFinding(diag.CodeSuggestionPowerOptimization,
				fmt.Sprintf("Power deficit of %.1f MW exceeds the %s threshold.", -net, level)))
		}
		if util := m.CrewUtilization(); util > 1 || math.IsNaN(util) {
			report.Findings = append(report.Findings, infoFinding(diag.CodeSuggestionCompatibleReplacement,
				fmt.Sprintf("Crew demand %d exceeds capacity %d.", m.CrewRequired, m.CrewCapacity)))
		}
	}
	if level >= LevelStrict {
		if net := m.NetHeatMW(); net < 0 {
			report.Findings = append(report.Findings, infoFinding(diag.CodeSuggestionCompatibleReplacement,
				fmt.Sprintf("Heat accumulates at %.1f MW under sustained load.", -net)))
		}
	}
	if floor := scoreFloor(level); report.Score < floor {
		report.Findings = append(report.Findings, infoFinding(diag.CodeSuggestionCompatibleReplacement,
			fmt.Sprintf("Balance score %.2f is below the %s floor of %.2f.", report.Score, level, floor)))
	}

	report.Passed = len(report.Findings) == 0
	report.Improvements = SuggestImprovements(result)
	return report
}

func scoreFloor(level Level) float64 {
	switch level {
	case LevelStrict:
		return strictScoreFloor
	case LevelTournament:
		return tournamentScoreFloor
	default:
		return 0
	}
}

func infoFinding(code diag.Code, message string) diag.Diagnostic {
	return diag.Diagnostic{Severity: diag.SeverityInfo, Code: code, Message: message}
}

// SuggestImprovements returns refit hints for weak spots the hard and soft
// rules do not cover. The hints are free-form strings for display; they
// carry no machine contract.
func SuggestImprovements(result *ship.AssemblyResult) []string {
	m := &result.Metrics
	var out []string

	if m.NetPowerMW() < 0 {
		out = append(out, "Power deficit: install an additional reactor or shed high-draw components.")
	} else if m.NetPowerMW() < m.PowerDrawMW*0.1 {
		out = append(out, "Consider upgrading the power plant for a better power margin.")
	}

	if m.NetHeatMW() < 0 {
		out = append(out, "Heat accumulates under load: add dissipation capacity or reduce heat-heavy systems.")
	}

	util := m.CrewUtilization()
	switch {
	case util > 1 || math.IsInf(util, 1):
		out = append(out, "Crew shortfall: add crew quarters or support modules.")
	case util > 0 && util < 0.5:
		out = append(out, "Underutilized crew capacity: the hull could support more systems.")
	}

	if m.ThrustToMassRatio() < 5 {
		out = append(out, "Low acceleration: consider lighter components or more thrust.")
	}

	return out
}
