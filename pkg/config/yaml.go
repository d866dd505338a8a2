package config

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the persisted part of the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration, CLI-only fields included.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		SeverityDefault: c.SeverityDefault,
		Pack:            c.Pack,
		Include:         slices.Clone(c.Include),
		Ignore:          slices.Clone(c.Ignore),
		Lookahead:       c.Lookahead,
		MaxFixPasses:    c.MaxFixPasses,
		Backups:         c.Backups,
		Fix:             c.Fix,
		DryRun:          c.DryRun,
		Format:          c.Format,
		RuleFormat:      c.RuleFormat,
		Jobs:            c.Jobs,
		EnableRules:     slices.Clone(c.EnableRules),
		DisableRules:    slices.Clone(c.DisableRules),
		FixRules:        slices.Clone(c.FixRules),
		NoBackups:       c.NoBackups,
	}

	if c.Rules != nil {
		clone.Rules = make(map[string]RuleConfig, len(c.Rules))
		for k, v := range c.Rules {
			clone.Rules[k] = v.Clone()
		}
	}

	return clone
}

// Clone creates a copy of a RuleConfig. Nested values inside Options are shared.
func (rc RuleConfig) Clone() RuleConfig {
	clone := RuleConfig{}

	if rc.Enabled != nil {
		enabled := *rc.Enabled
		clone.Enabled = &enabled
	}
	if rc.Severity != nil {
		severity := *rc.Severity
		clone.Severity = &severity
	}
	if rc.AutoFix != nil {
		autoFix := *rc.AutoFix
		clone.AutoFix = &autoFix
	}
	if rc.Options != nil {
		clone.Options = maps.Clone(rc.Options)
	}

	return clone
}
