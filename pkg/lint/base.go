package lint

import "github.com/yaklabco/govsg/pkg/config"

// BaseRule carries the metadata half of the Rule interface.
// Rule families embed it and supply Regions, AnalyzeRegion and BuildFix.
type BaseRule struct {
	id       string
	name     string
	desc     string
	tags     []string
	fixable  bool
	enabled  bool
	severity config.Severity
}

// NewBaseRule creates enabled, fixable rule metadata with warning severity.
func NewBaseRule(id, name, desc string, tags ...string) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		tags:     tags,
		fixable:  true,
		enabled:  true,
		severity: config.SeverityWarning,
	}
}

// Disabled returns a copy that is off unless enabled by configuration.
func (r BaseRule) Disabled() BaseRule {
	r.enabled = false
	return r
}

// WithSeverity returns a copy with a different default severity.
func (r BaseRule) WithSeverity(s config.Severity) BaseRule {
	r.severity = s
	return r
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
func (r *BaseRule) DefaultEnabled() bool {
	return r.enabled
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// CanFix returns whether this rule can auto-fix issues.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}
