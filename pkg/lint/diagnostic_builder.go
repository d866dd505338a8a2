package lint

import (
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/fix"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a single-line diagnostic at line and column.
func NewDiagnosticAt(ruleID, filePath string, line, column int, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:      ruleID,
			Message:     message,
			FilePath:    filePath,
			StartLine:   line,
			StartColumn: column,
			EndLine:     line,
			EndColumn:   column,
		},
	}
}

// NewDiagnosticFromViolation starts building a diagnostic for a violation of rule.
// The violation's action is attached as the fix.
func NewDiagnosticFromViolation(rule Rule, filePath string, v Violation) *DiagnosticBuilder {
	b := NewDiagnosticAt(rule.ID(), filePath, v.Line, max(v.Column, 1), v.Message)
	b.diag.RuleName = rule.Name()
	b.diag.Severity = rule.DefaultSeverity()
	if rule.CanFix() && v.Action.Kind != 0 {
		b = b.WithFix(v.Action)
	}
	return b
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// WithFix attaches a repair action.
func (b *DiagnosticBuilder) WithFix(action fix.Action) *DiagnosticBuilder {
	b.diag.Fix = &action
	return b
}

// WithEnd sets the end position.
func (b *DiagnosticBuilder) WithEnd(line, column int) *DiagnosticBuilder {
	b.diag.EndLine = line
	b.diag.EndColumn = column
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
