// Package lint provides the rule engine, violations, diagnostics and rule
// registry for govsg.
//
// A rule inspects a classified File through its index. It extracts regions
// of interest (Tois), decides for each one whether it violates the rule, and
// attaches exactly one fix action to every violation. The engine applies
// those actions through pkg/fix, one rule at a time, rebuilding the index
// between rules so no rule ever sees positions computed by another.
package lint

import (
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// Toi is a token-of-interest region produced for one rule check.
// It borrows stream positions and owns nothing but a copy of its tokens.
type Toi struct {
	// Start is the first position of the region (inclusive).
	Start int

	// End is the position after the region (exclusive).
	End int

	// Line is the anchor line number of the region.
	Line int

	// Style is the policy the region is checked against.
	Style string

	// Tokens is a copy of the stream tokens in [Start, End).
	Tokens []vhdl.Token
}

// First returns the first token of the region, or the zero Token when the
// region is empty.
func (t Toi) First() vhdl.Token {
	if len(t.Tokens) == 0 {
		return vhdl.Token{}
	}
	return t.Tokens[0]
}

// ContainsAny reports whether any token in the region carries any of ids.
func (t Toi) ContainsAny(ids []vhdl.ID) bool {
	if len(ids) == 0 {
		return false
	}
	for _, tok := range t.Tokens {
		for _, id := range ids {
			if tok.Is(id) {
				return true
			}
		}
	}
	return false
}

// Violation is a detected, recoverable rule infraction.
type Violation struct {
	// Line is the reported 1-based line number.
	Line int

	// Column is the reported 1-based column.
	Column int

	// Toi is the offending region.
	Toi Toi

	// Message is the human-readable description.
	Message string

	// Action is the single repair that resolves the violation.
	Action fix.Action
}

// Rule defines the capabilities every lint rule provides.
//
// Rule values are configured once per run and hold no per-file state.
// Options from the configuration reach a rule through the RuleContext.
type Rule interface {
	// ID returns the unique identifier (e.g., "loop_statement_500").
	ID() string

	// Name returns the human-readable name.
	Name() string

	// Description returns what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule runs without configuration.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags (e.g., ["blank_line", "process"]).
	Tags() []string

	// CanFix returns whether violations carry an applicable fix.
	CanFix() bool

	// Regions extracts the regions to check, in ascending position order.
	// An error means the rule is misconfigured, never that code violates it.
	Regions(ctx *RuleContext) ([]Toi, error)

	// AnalyzeRegion checks one region. It returns false when the region complies.
	AnalyzeRegion(ctx *RuleContext, toi Toi) (Violation, bool)

	// BuildFix returns the action that repairs v.
	BuildFix(ctx *RuleContext, v Violation) fix.Action
}

// Diagnostic is a violation converted for reporting.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule.
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string

	// Fix is the repair attached to the violation (nil when not fixable).
	Fix *fix.Action
}

// HasFix returns true if this diagnostic has an attached repair.
func (d *Diagnostic) HasFix() bool {
	return d.Fix != nil
}
