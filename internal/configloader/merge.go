package configloader

import (
	"maps"

	"github.com/yaklabco/govsg/pkg/config"
)

// merge layers override on top of base and returns a new config.
//
// A field of override wins only when it is set: non-empty for strings and
// numbers, non-nil for lists, true for booleans. Booleans therefore cannot be
// switched off by a later layer. Rule entries merge field by field.
func merge(base, override *config.Config) *config.Config {
	switch {
	case base == nil:
		return override
	case override == nil:
		return base
	}

	out := *base

	overlay(&out.Pack, override.Pack)
	overlay(&out.SeverityDefault, override.SeverityDefault)
	overlay(&out.Format, override.Format)
	overlay(&out.RuleFormat, override.RuleFormat)
	overlay(&out.Jobs, override.Jobs)
	overlay(&out.Lookahead, override.Lookahead)
	overlay(&out.MaxFixPasses, override.MaxFixPasses)
	overlay(&out.Backups.Mode, override.Backups.Mode)

	overlay(&out.Fix, override.Fix)
	overlay(&out.DryRun, override.DryRun)
	overlay(&out.NoBackups, override.NoBackups)
	overlay(&out.Backups.Enabled, override.Backups.Enabled)

	overlayList(&out.Include, override.Include)
	overlayList(&out.Ignore, override.Ignore)
	overlayList(&out.EnableRules, override.EnableRules)
	overlayList(&out.DisableRules, override.DisableRules)
	overlayList(&out.FixRules, override.FixRules)

	out.Rules = mergeRules(base.Rules, override.Rules)
	return &out
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

func overlayList(dst *[]string, v []string) {
	if v != nil {
		*dst = v
	}
}

// mergeRules returns a fresh map holding base's rules updated by override's.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	out := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(out, base)
	for key, rc := range override {
		if existing, ok := out[key]; ok {
			rc = mergeRuleConfig(existing, rc)
		}
		out[key] = rc
	}
	return out
}

func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	if override.Enabled != nil {
		base.Enabled = override.Enabled
	}
	if override.Severity != nil {
		base.Severity = override.Severity
	}
	if override.AutoFix != nil {
		base.AutoFix = override.AutoFix
	}
	if override.Options != nil {
		options := make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(options, base.Options)
		maps.Copy(options, override.Options)
		base.Options = options
	}
	return base
}
