package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/index"
	"github.com/yaklabco/govsg/pkg/source"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// RuleContext carries what a rule needs for one pass over one file.
//
// It is short-lived: the engine creates one per rule and file, so storing
// the context.Context as a field keeps the Rule methods small.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the classified file under analysis.
	File *source.File

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the rule registry.
	Registry *Registry
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *source.File,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Index returns the current index of the file, rebuilt if stale.
func (rc *RuleContext) Index() *index.Map {
	return rc.File.Index()
}

// Stream returns the token stream of the file.
func (rc *RuleContext) Stream() *vhdl.Stream {
	return rc.File.Stream()
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	if rc.Ctx == nil {
		return false
	}
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	switch val := rc.Option(key, defaultValue).(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	if s, ok := rc.Option(key, defaultValue).(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	if b, ok := rc.Option(key, defaultValue).(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// YAML and TOML decode lists into []any.
	if items, ok := v.([]any); ok {
		result := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return defaultValue
}

// OptionIDs returns a list of "base.sub" categories, or the default.
// An explicitly empty list clears the default.
func (rc *RuleContext) OptionIDs(key string, defaultValue []vhdl.ID) ([]vhdl.ID, error) {
	switch rc.Option(key, nil).(type) {
	case []string, []any:
	default:
		return defaultValue, nil
	}

	names := rc.OptionStringSlice(key, nil)
	ids := make([]vhdl.ID, 0, len(names))
	for _, name := range names {
		id, ok := vhdl.ParseID(name)
		if !ok {
			return defaultValue, fmt.Errorf("option %q: invalid category %q, want base.sub", key, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
