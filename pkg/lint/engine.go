package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/source"
)

// Analyze runs rule over rc.File and returns its violations in ascending
// position order. Every call starts from an empty list, and the file is not
// mutated, so repeated calls return identical results.
func Analyze(rc *RuleContext, rule Rule) ([]Violation, error) {
	regions, err := rule.Regions(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rule.ID(), err)
	}

	var violations []Violation
	for _, toi := range regions {
		violation, ok := rule.AnalyzeRegion(rc, toi)
		if !ok {
			continue
		}
		violation.Toi = toi
		if rule.CanFix() {
			violation.Action = rule.BuildFix(rc, violation)
		}
		violations = append(violations, violation)
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Toi.Start < violations[j].Toi.Start
	})
	return violations, nil
}

// FixResult reports one analyze and fix pass of a single rule.
type FixResult struct {
	// Violations are the violations found before fixing.
	Violations []Violation

	// Applied are the actions that mutated the stream.
	Applied []fix.Action

	// Skipped are actions dropped because they overlapped an earlier one.
	Skipped []fix.Action
}

// Fix analyzes rule over rc.File, applies every violation's action from low
// to high position and rebuilds the index. On error the stream is unchanged.
func Fix(rc *RuleContext, rule Rule) (FixResult, error) {
	violations, err := Analyze(rc, rule)
	if err != nil {
		return FixResult{}, err
	}

	result := FixResult{Violations: violations}
	if !rule.CanFix() || len(result.Violations) == 0 {
		return result, nil
	}

	actions := make([]fix.Action, 0, len(result.Violations))
	for _, v := range result.Violations {
		actions = append(actions, v.Action)
	}

	applied, err := fix.ApplyAll(rc.Stream(), actions)
	if err != nil {
		return result, fmt.Errorf("fix %s: %w", rule.ID(), err)
	}
	result.Applied = applied.Applied
	result.Skipped = applied.Skipped

	rc.File.Index()

	return result, nil
}

// FileResult contains the results of linting a single file.
type FileResult struct {
	// File is the classified file, reflecting any applied fixes.
	File *source.File

	// Diagnostics contains the issues left in the file.
	Diagnostics []Diagnostic

	// Fixed contains the issues repaired during this run.
	Fixed []Diagnostic

	// RuleErrors contains errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Modified reports whether any fix was applied.
func (fr *FileResult) Modified() bool {
	return len(fr.Fixed) > 0
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser lexes and classifies VHDL files.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
//
// Rules run one at a time in ID order. For a rule with auto-fix enabled the
// engine analyzes, applies that rule's fixes and rebuilds the index before
// the next rule runs, so every rule sees positions of the current stream.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	file, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return e.LintParsed(ctx, file, cfg)
}

// LintParsed lints an already classified file.
func (e *Engine) LintParsed(ctx context.Context, file *source.File, cfg *config.Config) (*FileResult, error) {
	logger := logging.FromContext(ctx)

	result := &FileResult{
		File:       file,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range ResolveRules(e.Registry, cfg) {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, file, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		if !rr.AutoFix {
			violations, err := Analyze(ruleCtx, rr.Rule)
			if err != nil {
				result.RuleErrors[rr.Rule.ID()] = err
				continue
			}
			for _, v := range violations {
				result.Diagnostics = append(result.Diagnostics, e.diagnostic(rr, file.Path, v))
			}
			continue
		}

		fixed, err := Fix(ruleCtx, rr.Rule)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			logger.Debug("rule fix failed", logging.FieldRule, rr.Rule.ID(), logging.FieldError, err)
			continue
		}

		for _, v := range fixed.Violations {
			diag := e.diagnostic(rr, file.Path, v)
			if wasApplied(v.Action, fixed.Applied) {
				result.Fixed = append(result.Fixed, diag)
			} else {
				result.Diagnostics = append(result.Diagnostics, diag)
			}
		}

		if len(fixed.Applied) > 0 {
			logger.Debug("rule applied fixes",
				logging.FieldRule, rr.Rule.ID(),
				logging.FieldPath, file.Path,
				logging.FieldFixes, len(fixed.Applied),
				logging.FieldSkipped, len(fixed.Skipped),
			)
		}
	}

	sort.SliceStable(result.Diagnostics, func(i, j int) bool {
		return result.Diagnostics[i].StartLine < result.Diagnostics[j].StartLine
	})

	return result, nil
}

// diagnostic converts a violation with the resolved severity.
func (e *Engine) diagnostic(rr ResolvedRule, path string, v Violation) Diagnostic {
	return NewDiagnosticFromViolation(rr.Rule, path, v).
		WithSeverity(rr.Severity).
		Build()
}

// wasApplied reports whether action is among applied. Actions of one pass
// have distinct windows, so the start and end identify them.
func wasApplied(action fix.Action, applied []fix.Action) bool {
	for _, a := range applied {
		if a.Start == action.Start && a.End == action.End && a.Kind == action.Kind {
			return true
		}
	}
	return false
}
