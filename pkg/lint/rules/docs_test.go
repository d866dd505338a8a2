package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
	"github.com/yaklabco/govsg/pkg/source"
)

func ruleContext(t *testing.T, content string) *lint.RuleContext {
	t.Helper()

	file, err := source.Parse("example.vhd", []byte(content))
	require.NoError(t, err, "example must classify:\n%s", content)
	return lint.NewRuleContext(context.Background(), file, config.NewConfig(), nil)
}

// TestDocExamples checks that every documented violation is flagged and
// fixes into the documented result, which is itself clean.
func TestDocExamples(t *testing.T) {
	t.Parallel()

	for _, rule := range rules.All() {
		t.Run(rule.ID(), func(t *testing.T) {
			t.Parallel()

			doc, err := rules.Doc(rule.ID())
			require.NoError(t, err)
			assert.Equal(t, rule.ID(), doc.Title)
			assert.NotEmpty(t, doc.Summary)
			require.NotEmpty(t, doc.Examples)

			for i, example := range doc.Examples {
				rc := ruleContext(t, example.Violation)

				violations, err := lint.Analyze(rc, rule)
				require.NoError(t, err)
				require.NotEmpty(t, violations, "example %d is not flagged", i)

				_, err = lint.Fix(rc, rule)
				require.NoError(t, err)
				assert.Equal(t, example.Fix, string(rc.File.Content()), "example %d", i)

				again, err := lint.Analyze(rc, rule)
				require.NoError(t, err)
				assert.Empty(t, again, "example %d still violates after fixing", i)

				clean, err := lint.Analyze(ruleContext(t, example.Fix), rule)
				require.NoError(t, err)
				assert.Empty(t, clean, "fix of example %d violates", i)
			}
		})
	}
}

func TestDoc_Unknown(t *testing.T) {
	t.Parallel()

	_, err := rules.Doc("nope_999")
	require.Error(t, err)
}
