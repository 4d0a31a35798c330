package output

import (
	"strings"
)

// RenderDiff renders a slot-level design diff. It takes raw slot data so the
// designer package does not have to depend on output types.
func RenderDiff(added, removed []string, modified []ModifiedItem, styles *Styles) string {
	if len(added) == 0 && len(removed) == 0 && len(modified) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder

	// Render newly assigned slots
	if len(added) > 0 {
		sb.WriteString(styles.Success.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range added {
			sb.WriteString("  + ")
			sb.WriteString(styles.Success.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	// Render cleared slots
	if len(removed) > 0 {
		sb.WriteString(styles.Error.Render("Removed:"))
		sb.WriteString("\n")
		for _, name := range removed {
			sb.WriteString("  - ")
			sb.WriteString(styles.Error.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	// Render slots whose component changed
	if len(modified) > 0 {
		sb.WriteString(styles.Warning.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styles.Warning.Render(mod.Name))
			sb.WriteString("\n")
			if mod.Diff != "" {
				// Indent the diff output
				lines := strings.Split(mod.Diff, "\n")
				for _, line := range lines {
					if line != "" {
						sb.WriteString("    ")
						sb.WriteString(line)
						sb.WriteString("\n")
					}
				}
			}
			sb.WriteString("\n")
		}
	}

	// Add summary
	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(removed), len(modified)))
	sb.WriteString("\n")

	return sb.String()
}

// ModifiedItem represents a modified slot assignment for rendering.
type ModifiedItem struct {
	Name string
	Diff string
}

// IndentDiff indents a diff string for display under a slot name.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	lines := strings.Split(diff, "\n")
	for _, line := range lines {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// diffSummary returns a summary string of changes.
func diffSummary(added, removed, modified int) string {
	if added == 0 && removed == 0 && modified == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, pluralize(added, "added"))
	}
	if removed > 0 {
		parts = append(parts, pluralize(removed, "removed"))
	}
	if modified > 0 {
		parts = append(parts, pluralize(modified, "modified"))
	}

	return strings.Join(parts, ", ")
}

// pluralize returns "N item" or "N items" appropriately.
func pluralize(count int, label string) string {
	return strings.Join([]string{itoa(count), label}, " ")
}

// itoa converts an int to a string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var negative bool
	if n < 0 {
		negative = true
		n = -n
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}

	if negative {
		digits = append([]byte{'-'}, digits...)
	}

	return string(digits)
}
