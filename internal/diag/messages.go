package diag

import (
	"fmt"
	"strings"
)

// SlotLabeler renders a human-readable label for a slot id, typically
// including the slot's category and size from the hull blueprint.
type SlotLabeler func(slotID string) string

// ComponentLabeler renders a human-readable label for a component id,
// typically the display name from the catalog.
type ComponentLabeler func(componentID string) string

func defaultSlotLabel(slotID string) string {
	return fmt.Sprintf("slot '%s'", slotID)
}

func defaultComponentLabel(componentID string) string {
	return componentID
}

// UserFacingMessages renders every diagnostic and suggestion into one-line
// human-readable strings, in report order. Structured messages carry a
// severity prefix, slot context when present, and the numeric reason code;
// suggestion lines list ranked candidates with fit percentages rounded to
// one decimal.
func (r *Report) UserFacingMessages(slotLabel SlotLabeler, compLabel ComponentLabeler) []string {
	if slotLabel == nil {
		slotLabel = defaultSlotLabel
	}
	if compLabel == nil {
		compLabel = defaultComponentLabel
	}

	out := make([]string, 0, len(r.Messages)+len(r.Suggestions))
	for i := range r.Messages {
		m := &r.Messages[i]
		var b strings.Builder
		b.WriteString(string(m.Severity))
		b.WriteString(": ")
		b.WriteString(m.Message)
		if m.SlotID != "" {
			fmt.Fprintf(&b, " (slot: %s)", slotLabel(m.SlotID))
		}
		fmt.Fprintf(&b, " [Code: %d]", int(m.Code))
		out = append(out, b.String())
	}

	for i := range r.Suggestions {
		s := &r.Suggestions[i]
		var b strings.Builder
		fmt.Fprintf(&b, "Suggestion for %s: %s", slotLabel(s.SlotID), s.Reason)
		if len(s.Ranked) > 0 {
			b.WriteString(". Try installing ")
			for j, cand := range s.Ranked {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s (%.1f%%)", compLabel(cand.ComponentID), cand.Score*100)
			}
		}
		out = append(out, b.String())
	}

	return out
}
