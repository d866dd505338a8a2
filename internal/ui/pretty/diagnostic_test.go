package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/govsg/internal/ui/pretty"
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
)

func TestFormatDiagnostic_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	diag := &lint.Diagnostic{
		RuleID:      "process_500",
		Message:     "Keyword process should be lowercase",
		Severity:    config.SeverityError,
		FilePath:    "top.vhd",
		StartLine:   10,
		StartColumn: 1,
		EndLine:     10,
		EndColumn:   15,
	}

	result := styles.FormatDiagnostic(diag, false, "")

	assert.Contains(t, result, "top.vhd:10:1")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "Keyword process should be lowercase")
	assert.Contains(t, result, "(process_500)")
}

func TestFormatDiagnostic_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &lint.Diagnostic{
		RuleID:      "process_500",
		Message:     "Test message",
		Severity:    config.SeverityWarning,
		FilePath:    "top.vhd",
		StartLine:   5,
		StartColumn: 3,
	}

	sourceLine := "  PROCESS (clk)"
	result := styles.FormatDiagnostic(diag, true, sourceLine)

	assert.Contains(t, result, "  PROCESS (clk)")
	assert.Contains(t, result, "^") // Caret marker
}

func TestFormatDiagnostic_WithSuggestion(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &lint.Diagnostic{
		RuleID:     "process_500",
		Message:    "Test message",
		Severity:   config.SeverityInfo,
		FilePath:   "top.vhd",
		StartLine:  1,
		Suggestion: "Write process in lowercase",
	}

	result := styles.FormatDiagnostic(diag, false, "")

	assert.Contains(t, result, "Suggestion:")
	assert.Contains(t, result, "Write process in lowercase")
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity config.Severity
		expected string
	}{
		{config.SeverityError, "error"},
		{config.SeverityWarning, "warning"},
		{config.SeverityInfo, "info"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			result := styles.FormatSeverity(tt.severity)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatSourceContext_WithCaret(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 5)

	lines := strings.Split(result, "\n")
	assert.GreaterOrEqual(t, len(lines), 2) // Source line and caret line

	// Check caret position
	assert.Contains(t, result, "^")
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 0)

	// With column 0, no caret should be shown
	// The result should contain the source line but behavior for caret depends on impl
	assert.Contains(t, result, "test line")
}

func TestFormatFileHeader_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("rtl/top.vhd", 5)

	assert.Contains(t, result, "rtl/top.vhd")
	assert.Contains(t, result, "(5 issues)")
}

func TestFormatFileHeader_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("rtl/top.vhd", 0)

	assert.Contains(t, result, "rtl/top.vhd")
	assert.NotContains(t, result, "issues")
}

func TestFormatDiagnostic_WithRuleFormat(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &lint.Diagnostic{
		RuleID:      "library_100",
		RuleName:    "library-blank-line",
		Message:     "Missing blank line below library clause",
		Severity:    config.SeverityWarning,
		FilePath:    "top.vhd",
		StartLine:   1,
		StartColumn: 1,
	}

	tests := []struct {
		format   config.RuleFormat
		contains string
		excludes string
	}{
		{config.RuleFormatName, "(library-blank-line)", "(library_100)"},
		{config.RuleFormatID, "(library_100)", "(library-blank-line)"},
		{config.RuleFormatCombined, "(library_100/library-blank-line)", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			result := styles.FormatDiagnosticWithFormat(diag, false, "", tt.format)
			assert.Contains(t, result, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, result, tt.excludes)
			}
		})
	}
}

func TestClipLine(t *testing.T) {
	t.Parallel()

	line := strings.Repeat("a", 40) + "PROCESS" + strings.Repeat("b", 53)

	tests := []struct {
		name       string
		column     int
		width      int
		wantLine   string
		wantColumn int
	}{
		{name: "fits", column: 41, width: 100, wantLine: line, wantColumn: 41},
		{name: "too narrow", column: 41, width: 10, wantLine: line, wantColumn: 41},
		{
			name:       "middle",
			column:     41,
			width:      20,
			wantLine:   "..." + strings.Repeat("a", 7) + "PROCESS" + "...",
			wantColumn: 11,
		},
		{
			name:       "start",
			column:     1,
			width:      20,
			wantLine:   strings.Repeat("a", 14) + "...",
			wantColumn: 1,
		},
		{
			name:       "end",
			column:     100,
			width:      20,
			wantLine:   "..." + strings.Repeat("b", 14),
			wantColumn: 17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, column := pretty.ClipLine(line, tt.column, tt.width)
			assert.Equal(t, tt.wantLine, got)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}
