// Package diag defines the structured diagnostic stream produced by the
// assembly engine: severities, stable reason codes, per-slot ranked repair
// suggestions, and the report container that collects them in emission order.
//
// Diagnostics are data, not control flow. Hard failures surface as Error
// diagnostics on the result; the engine never returns a Go error for a rule
// violation.
package diag

// Severity grades a diagnostic.
type Severity string

// Severities, most severe first.
const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
	SeverityInfo    Severity = "Info"
)

// Diagnostic is one structured message. SlotID is empty for ship-wide
// diagnostics; RelatedComponents lists the component ids the message is
// about, when any.
type Diagnostic struct {
	Severity          Severity `json:"severity"`
	Code              Code     `json:"reasonCode"`
	Message           string   `json:"message"`
	SlotID            string   `json:"slotId,omitempty"`
	RelatedComponents []string `json:"relatedComponents,omitempty"`
}

// Suggestion is one ranked replacement candidate for a failing slot.
// Score is in [0,1], higher is a better fit.
type Suggestion struct {
	ComponentID string  `json:"componentId"`
	Score       float64 `json:"fitScore"`
	Reasoning   string  `json:"reasoning"`
}

// SlotSuggestions groups the ranked candidates produced for one failing slot.
type SlotSuggestions struct {
	SlotID string       `json:"slotId"`
	Reason string       `json:"reason"`
	Ranked []Suggestion `json:"ranked,omitempty"`
}

// Report collects diagnostics in emission order. The order is part of the
// engine's observable contract: hull resolution first, then per-slot checks
// in hull declaration order, orphan assignments, soft rules, performance.
type Report struct {
	Messages    []Diagnostic      `json:"messages"`
	Suggestions []SlotSuggestions `json:"suggestions,omitempty"`
}

// Add appends a fully formed diagnostic.
func (r *Report) Add(d Diagnostic) {
	r.Messages = append(r.Messages, d)
}

// Error appends an Error diagnostic.
func (r *Report) Error(code Code, message, slotID string, related ...string) {
	r.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, SlotID: slotID, RelatedComponents: related})
}

// Warning appends a Warning diagnostic.
func (r *Report) Warning(code Code, message, slotID string, related ...string) {
	r.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, SlotID: slotID, RelatedComponents: related})
}

// Info appends an Info diagnostic.
func (r *Report) Info(code Code, message, slotID string, related ...string) {
	r.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, SlotID: slotID, RelatedComponents: related})
}

// Suggest records the ranked candidates for a failing slot.
func (r *Report) Suggest(slotID, reason string, ranked []Suggestion) {
	r.Suggestions = append(r.Suggestions, SlotSuggestions{SlotID: slotID, Reason: reason, Ranked: ranked})
}

// HasErrors reports whether any diagnostic has Error severity.
func (r *Report) HasErrors() bool {
	for i := range r.Messages {
		if r.Messages[i].Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has Warning severity.
func (r *Report) HasWarnings() bool {
	for i := range r.Messages {
		if r.Messages[i].Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// BySeverity returns the diagnostics with the given severity, in emission
// order.
func (r *Report) BySeverity(sev Severity) []Diagnostic {
	var out []Diagnostic
	for i := range r.Messages {
		if r.Messages[i].Severity == sev {
			out = append(out, r.Messages[i])
		}
	}
	return out
}

// Empty reports whether the report carries no messages and no suggestions.
func (r *Report) Empty() bool {
	return len(r.Messages) == 0 && len(r.Suggestions) == 0
}
