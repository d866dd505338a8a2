package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
)

func TestPacks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"default", "strict", "relaxed"}, rules.PackNames())

	for _, pack := range rules.Packs() {
		if pack.Description == "" {
			t.Errorf("pack %q has empty description", pack.Name)
		}
		for id, cfg := range pack.Rules {
			if cfg.Enabled == nil {
				t.Errorf("pack %q rule %q has nil Enabled", pack.Name, id)
			}
		}
	}

	assert.Nil(t, rules.PackByName("nonexistent"))
}

func TestApplyPack_Strict(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Pack = "strict"
	sev := "info"
	cfg.Rules["process_100"] = config.RuleConfig{Severity: &sev}

	require.NoError(t, rules.ApplyPack(cfg))

	resolved := lint.ResolveRules(lint.DefaultRegistry, cfg)
	assert.Len(t, resolved, len(rules.All()), "strict enables every rule")

	for _, rr := range resolved {
		switch rr.Rule.ID() {
		case "process_100":
			assert.Equal(t, config.SeverityInfo, rr.Severity, "own setting wins")
		case "process_101":
			assert.Equal(t, config.SeverityError, rr.Severity)
		case "process_500":
			assert.Equal(t, config.SeverityWarning, rr.Severity)
		}
	}
}

func TestApplyPack_Relaxed(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Pack = "relaxed"
	require.NoError(t, rules.ApplyPack(cfg))

	for _, rr := range lint.ResolveRules(lint.DefaultRegistry, cfg) {
		assert.Contains(t, rr.Rule.Tags(), "keyword_case", rr.Rule.ID())
		assert.Equal(t, config.SeverityInfo, rr.Severity)
	}
}

func TestApplyPack_Errors(t *testing.T) {
	t.Parallel()

	require.NoError(t, rules.ApplyPack(nil))
	require.NoError(t, rules.ApplyPack(config.NewConfig()))

	cfg := config.NewConfig()
	cfg.Pack = "bogus"
	err := rules.ApplyPack(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
