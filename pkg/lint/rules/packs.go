package rules

import (
	"fmt"

	"github.com/yaklabco/govsg/pkg/config"
)

// Pack describes a named group of rule defaults for a particular use case.
// Packs are configuration fragments selected with the "pack" key of a
// .govsg.yml file.
type Pack struct {
	// Name is the short identifier for the pack (e.g., "default", "strict").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string

	// Rules contains rule configurations keyed by rule ID.
	Rules map[string]config.RuleConfig
}

// DefaultPack returns the pack equivalent to the built-in defaults.
func DefaultPack() Pack {
	return Pack{
		Name:        "default",
		Description: "Built-in defaults: every rule except process_101, as warnings",
		Rules:       map[string]config.RuleConfig{},
	}
}

// StrictPack enables every rule and raises blank line rules to errors.
func StrictPack() Pack {
	pack := Pack{
		Name:        "strict",
		Description: "Strict pack: every rule enabled, blank line rules as errors",
		Rules:       make(map[string]config.RuleConfig),
	}
	for _, rule := range All() {
		sev := "warning"
		for _, tag := range rule.Tags() {
			if tag == tagBlankLine {
				sev = "error"
			}
		}
		pack.Rules[rule.ID()] = enabled(sev)
	}
	return pack
}

// RelaxedPack keeps only the keyword case rules, reported as info.
func RelaxedPack() Pack {
	pack := Pack{
		Name:        "relaxed",
		Description: "Relaxed pack: keyword case only, minimal noise",
		Rules:       make(map[string]config.RuleConfig),
	}
	off := false
	for _, rule := range All() {
		if rule.Tags()[0] == tagCase {
			pack.Rules[rule.ID()] = enabled("info")
			continue
		}
		pack.Rules[rule.ID()] = config.RuleConfig{Enabled: &off}
	}
	return pack
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		DefaultPack(),
		StrictPack(),
		RelaxedPack(),
	}
}

// PackByName returns a pack by name, or nil if not found.
func PackByName(name string) *Pack {
	for _, p := range Packs() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

// PackNames returns the names of all available packs.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}

// ApplyPack layers the pack named by cfg.Pack beneath cfg.Rules. Settings
// already present for a rule win field by field. An empty name is a no-op.
func ApplyPack(cfg *config.Config) error {
	if cfg == nil || cfg.Pack == "" {
		return nil
	}
	pack := PackByName(cfg.Pack)
	if pack == nil {
		return fmt.Errorf("unknown pack %q (available: %v)", cfg.Pack, PackNames())
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}
	for id, base := range pack.Rules {
		own, ok := cfg.Rules[id]
		if !ok {
			cfg.Rules[id] = base
			continue
		}
		if own.Enabled == nil {
			own.Enabled = base.Enabled
		}
		if own.Severity == nil {
			own.Severity = base.Severity
		}
		cfg.Rules[id] = own
	}
	return nil
}

// enabled creates a RuleConfig with the rule enabled and the given severity.
func enabled(sev string) config.RuleConfig {
	enabled := true
	return config.RuleConfig{
		Enabled:  &enabled,
		Severity: &sev,
	}
}
