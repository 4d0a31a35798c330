package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
	}{
		{
			name:   "loaded returns green",
			status: StatusLoaded,
			wantFG: ColorGreen,
		},
		{
			name:   "flagged returns yellow",
			status: StatusFlagged,
			wantFG: ColorYellow,
		},
		{
			name:     "skipped returns bold red",
			status:   StatusSkipped,
			wantBold: true,
			wantFG:   ColorBoldRed,
		},
		{
			name:   "valid returns green",
			status: StatusValid,
			wantFG: ColorGreen,
		},
		{
			name:     "invalid returns bold red",
			status:   StatusInvalid,
			wantBold: true,
			wantFG:   ColorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status string
	}{
		{
			name:   "component file loaded",
			path:   "components/weapons.json",
			status: StatusLoaded,
		},
		{
			name:   "malformed file skipped",
			path:   "components/broken.json",
			status: StatusSkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatFileLine(tt.path, tt.status)

			// The rendered string contains ANSI codes. Strip them for content checks.
			assert.Contains(t, result, tt.path, "should contain file path")
			assert.Contains(t, result, tt.status, "should contain status text")
			assert.True(t, strings.HasPrefix(stripAnsi(result), "f:"), "should start with f: prefix")
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		// Two lines with different path lengths should have status starting
		// at the same position (both paths shorter than min column width).
		line1 := FormatFileLine("hulls/a.json", StatusLoaded)
		line2 := FormatFileLine("components/weapons.json", StatusLoaded)

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, StatusLoaded)
		idx2 := strings.Index(stripped2, StatusLoaded)

		assert.Equal(t, idx1, idx2, "status words should align to same column")
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Assembly valid")
	assert.Contains(t, result, "✔", "should contain checkmark")
	assert.Contains(t, result, "Assembly valid", "should contain message")
}

func TestStatusValidSameColorAsLoaded(t *testing.T) {
	validStyle := StatusStyle(StatusValid)
	loadedStyle := StatusStyle(StatusLoaded)
	assert.Equal(t, loadedStyle.GetForeground(), validStyle.GetForeground(),
		"valid and loaded should have the same color")
}

func TestFormatVetCheck(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		detail     string
		wantLabel  string
		wantDetail string
	}{
		{
			name:       "with detail",
			label:      "Content files parsed",
			detail:     "assets/components",
			wantLabel:  "Content files parsed",
			wantDetail: "assets/components",
		},
		{
			name:      "without detail",
			label:     "Schema validation passed",
			detail:    "",
			wantLabel: "Schema validation passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatVetCheck(tt.label, tt.detail)

			assert.Contains(t, result, "✔", "should contain checkmark")
			assert.Contains(t, result, tt.wantLabel, "should contain label")

			if tt.detail != "" {
				assert.Contains(t, result, tt.wantDetail, "should contain detail")
			}
		})
	}
}

func TestSeverityStyle(t *testing.T) {
	tests := []struct {
		severity string
		wantFG   lipgloss.Color
		wantBold bool
	}{
		{"Error", ColorBoldRed, true},
		{"Warning", ColorYellow, false},
		{"Info", ColorCyan, false},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			style := SeverityStyle(tt.severity)
			assert.Equal(t, tt.wantFG, style.GetForeground())
			assert.Equal(t, tt.wantBold, style.GetBold())
		})
	}

	t.Run("unknown severity is unstyled", func(t *testing.T) {
		style := SeverityStyle("Catastrophic")
		assert.False(t, style.GetBold())
	})
}

// stripAnsi removes ANSI escape sequences for content assertions.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
