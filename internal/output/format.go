package output

import "strings"

// Format specifies the output format.
type Format string

const (
	// FormatJSON outputs the canonical JSON form.
	FormatJSON Format = "json"

	// FormatYAML outputs the canonical form converted to YAML.
	FormatYAML Format = "yaml"

	// FormatText outputs human-readable text with styled diagnostics.
	FormatText Format = "text"

	// FormatTable outputs a table, for list commands.
	FormatTable Format = "table"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatText, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format.
// Returns FormatText if the string is empty or invalid.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "text", "plain":
		return FormatText
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"json", "yaml", "text", "table"}
}

// ValidReportFormats returns valid formats for assembly report commands.
func ValidReportFormats() []string {
	return []string{"json", "yaml", "text"}
}

// ValidListFormats returns valid formats for list commands.
func ValidListFormats() []string {
	return []string{"table", "json", "yaml"}
}
