package lint

import (
	"slices"

	"github.com/yaklabco/govsg/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// AutoFix indicates whether auto-fix is enabled for this rule.
	AutoFix bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, sorted by ID.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// selects reports whether key names the rule by ID, name or tag.
func selects(rule Rule, key string) bool {
	return key == rule.ID() || key == rule.Name() || slices.Contains(rule.Tags(), key)
}

// resolveRule resolves the configuration for a single rule.
// Precedence, lowest first: rule defaults, config file, CLI lists.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		AutoFix:  rule.CanFix(),
	}

	if cfg == nil {
		return rr
	}

	if sev := config.Severity(cfg.SeverityDefault); sev.IsValid() {
		rr.Severity = sev
	}

	ruleCfg, ok := cfg.Rules[rule.ID()]
	if !ok {
		ruleCfg, ok = cfg.Rules[rule.Name()]
	}
	if ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil && config.Severity(*ruleCfg.Severity).IsValid() {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
		if ruleCfg.AutoFix != nil {
			rr.AutoFix = *ruleCfg.AutoFix && rule.CanFix()
		}
	}

	for _, key := range cfg.EnableRules {
		if selects(rule, key) {
			rr.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableRules {
		if selects(rule, key) {
			rr.Enabled = false
			break
		}
	}

	if len(cfg.FixRules) > 0 {
		rr.AutoFix = false
		for _, key := range cfg.FixRules {
			if selects(rule, key) && rule.CanFix() {
				rr.AutoFix = true
				break
			}
		}
	}

	if !cfg.Fix {
		rr.AutoFix = false
	}

	return rr
}
