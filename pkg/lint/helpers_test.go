package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/source"
)

// newContext parses content and returns a rule context with the given options.
func newContext(t *testing.T, content string, options map[string]any) *lint.RuleContext {
	t.Helper()

	file, err := source.Parse("test.vhd", []byte(content))
	require.NoError(t, err)

	var ruleCfg *config.RuleConfig
	if options != nil {
		ruleCfg = &config.RuleConfig{Options: options}
	}
	return lint.NewRuleContext(context.Background(), file, config.NewConfig(), ruleCfg)
}

func lines(violations []lint.Violation) []int {
	out := make([]int, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Line)
	}
	return out
}
