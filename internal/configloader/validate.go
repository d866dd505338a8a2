package configloader

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.process_100.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownBackupModes lists valid backup mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}
	fail := func(field string, value any, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if cfg.Pack != "" && rules.PackByName(cfg.Pack) == nil {
		fail("pack", cfg.Pack, "unknown pack %q; must be one of: %s",
			cfg.Pack, strings.Join(rules.PackNames(), ", "))
	}

	if cfg.SeverityDefault != "" && !IsValidSeverity(cfg.SeverityDefault) {
		fail("severity_default", cfg.SeverityDefault,
			"invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault)
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		fail("format", cfg.Format, "invalid format %q; must be one of: text, table, json, sarif, diff", cfg.Format)
	}

	if cfg.Jobs < 0 {
		fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Lookahead < 0 {
		fail("lookahead", cfg.Lookahead, "lookahead must be >= 0 (0 means default)")
	}
	if cfg.MaxFixPasses < 0 {
		fail("max_fix_passes", cfg.MaxFixPasses, "max_fix_passes must be >= 0 (0 means default)")
	}

	if cfg.Backups.Mode != "" && !knownBackupModes[cfg.Backups.Mode] {
		fail("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	validateRules(cfg, result)
	validatePatterns("include", cfg.Include, result)
	validatePatterns("ignore", cfg.Ignore, result)

	return result
}

// validateRules checks rule configurations for errors and warnings.
func validateRules(cfg *config.Config, result *ValidationResult) {
	registry := lint.DefaultRegistry

	for ruleID, ruleCfg := range cfg.Rules {
		if _, exists := registry.Get(ruleID); !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleID,
				Value:   ruleID,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
			})
		}

		if ruleCfg.Severity != nil && !IsValidSeverity(*ruleCfg.Severity) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rules." + ruleID + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity),
			})
		}

		validateRuleOptions(ruleID, ruleCfg.Options, result)
	}
}

// validateRuleOptions checks the options shared by the built-in rule families.
// Options a rule does not read are harmless and left alone.
func validateRuleOptions(ruleID string, options map[string]any, result *ValidationResult) {
	field := "rules." + ruleID + ".options."

	if v, ok := options["style"]; ok {
		style, isString := v.(string)
		if !isString || !lint.BlankLineStyle(style).IsValid() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + "style",
				Value:   v,
				Message: fmt.Sprintf("invalid style %v; must be one of: %s, %s", v, lint.RequireBlankLine, lint.NoBlankLine),
			})
		}
	}

	if v, ok := options["case"]; ok {
		c, isString := v.(string)
		if !isString || (lint.Case(c) != lint.LowerCase && lint.Case(c) != lint.UpperCase) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + "case",
				Value:   v,
				Message: fmt.Sprintf("invalid case %v; must be one of: %s, %s", v, lint.LowerCase, lint.UpperCase),
			})
		}
	}

	if v, ok := options["ignore_hierarchy"]; ok {
		if _, isBool := v.(bool); !isBool {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + "ignore_hierarchy",
				Value:   v,
				Message: "ignore_hierarchy must be a boolean",
			})
		}
	}

	if v, ok := options["allow"]; ok {
		validateAllow(field+"allow", v, result)
	}
}

// validateAllow checks that every allow entry names a known category.
func validateAllow(field string, value any, result *ValidationResult) {
	var entries []any
	switch list := value.(type) {
	case []any:
		entries = list
	case []string:
		for _, s := range list {
			entries = append(entries, s)
		}
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: "allow must be a list of categories",
		})
		return
	}

	for i, entry := range entries {
		name, isString := entry.(string)
		if !isString {
			name = fmt.Sprint(entry)
		}
		if _, known := vhdl.ParseID(name); !isString || !known {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   entry,
				Message: fmt.Sprintf("invalid category %q; want base.sub", name),
			})
		}
	}
}

// validatePatterns checks that file patterns are valid doublestar globs.
func validatePatterns(field string, patterns []string, result *ValidationResult) {
	for i, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return knownBackupModes[mode]
}
