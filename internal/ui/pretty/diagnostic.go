package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// Uses ID format for backwards compatibility.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, showContext bool, sourceLine string) string {
	return s.FormatDiagnosticWithFormat(diag, showContext, sourceLine, config.RuleFormatID)
}

// FormatDiagnosticWithFormat formats a diagnostic with configurable rule identifier format.
func (s *Styles) FormatDiagnosticWithFormat(diag *lint.Diagnostic, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	// Location: path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(diag.FilePath),
		diag.StartLine,
		diag.StartColumn,
	)

	// Severity with prefix
	severity := s.FormatSeverity(diag.Severity)

	// Rule identifier formatted according to config
	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)
	ruleDisplay := s.RuleID.Render("(" + ruleIdentifier + ")")

	// Main line: location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(diag.Message),
		ruleDisplay,
	))

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.StartColumn))
	}

	// Suggestion
	if diag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// contextIndent aligns source context under the diagnostic line.
const contextIndent = "        "

// minClipWidth is the narrowest window worth clipping a source line to.
const minClipWidth = 16

// FormatSourceContext formats the source line with a caret marker.
// Lines wider than s.Width are clipped around the column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = contextIndent
	line, column = ClipLine(line, column, s.Width-len(indent))

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

// ClipLine shortens line to at most width bytes, keeping column visible and
// marking cut ends with "...". It returns the clipped line and the column
// adjusted to it. Widths below a small minimum leave the line unchanged.
func ClipLine(line string, column, width int) (string, int) {
	if width < minClipWidth || len(line) <= width {
		return line, column
	}

	const ellipsis = "..."
	keep := width - 2*len(ellipsis)

	start := max(column-1-keep/2, 0)
	end := min(start+keep, len(line))
	start = max(end-keep, 0)

	clipped := line[start:end]
	if start > 0 {
		clipped = ellipsis + clipped
		column = column - start + len(ellipsis)
	}
	if end < len(line) {
		clipped += ellipsis
	}
	return clipped, column
}
