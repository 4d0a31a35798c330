package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: hull ids, slot ids, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "loaded" content status and valid results.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and the "flagged" content status.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "skipped" content status.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for error diagnostics (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used across renderers.
type Styles struct {
	// Noun styles identifiable nouns (hull ids, slot ids, file paths).
	Noun lipgloss.Style

	// Success styles valid results and additions.
	Success lipgloss.Style

	// Warning styles warning diagnostics and modifications.
	Warning lipgloss.Style

	// Error styles error diagnostics and removals.
	Error lipgloss.Style

	// Info styles informational diagnostics and suggestions.
	Info lipgloss.Style

	// Bold styles emphasized text such as tree roots and summaries.
	Bold lipgloss.Style

	// Muted styles structural chrome (separators, descriptions, timestamps).
	Muted lipgloss.Style
}

var defaultStyles = &Styles{
	Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
	Success: lipgloss.NewStyle().Foreground(ColorGreen),
	Warning: lipgloss.NewStyle().Foreground(ColorYellow),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
	Info:    lipgloss.NewStyle().Foreground(ColorCyan),
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Faint(true),
}

// GetStyles returns the default style set.
func GetStyles() *Styles {
	return defaultStyles
}

// NoColorStyles returns a style set with no colors or attributes, for
// non-TTY output and tests.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Noun:    plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Info:    plain,
		Bold:    plain,
		Muted:   plain,
	}
}

// Content file load statuses.
const (
	StatusLoaded  = "loaded"
	StatusSkipped = "skipped"
	StatusFlagged = "flagged"
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// StatusStyle returns the lipgloss style for a content or result status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusLoaded, StatusValid:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusFlagged:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped, StatusInvalid:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth is the minimum width for the file path column before
// the status suffix, so status words align consistently.
const minFileColumnWidth = 48

// FormatFileLine renders a content file path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
//
// The "f:" prefix is dim, the path is cyan, and the status uses StatusStyle.
func FormatFileLine(path, status string) string {
	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := defaultStyles.Muted.Render("f:")
	styledPath := defaultStyles.Noun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatVetCheck renders a named check with its detail, for vet output.
//
// Format: ✔ <name> (<detail>)
func FormatVetCheck(name, detail string) string {
	if detail == "" {
		return FormatCheckmark(name)
	}
	return FormatCheckmark(fmt.Sprintf("%s (%s)", name, defaultStyles.Muted.Render(detail)))
}

// SeverityStyle returns the style for a diagnostic severity name
// ("Error", "Warning", "Info").
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "Error":
		return defaultStyles.Error
	case "Warning":
		return defaultStyles.Warning
	case "Info":
		return defaultStyles.Info
	default:
		return lipgloss.NewStyle()
	}
}
