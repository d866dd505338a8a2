package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/lint"
)

func processCaseRule() *lint.TokenCase {
	return lint.NewTokenCase(
		lint.NewBaseRule("process_500", "process-keyword-case", "test rule", "case"),
		classify.ProcessKeyword, classify.ProcessBegin, classify.ProcessEnd, classify.ProcessEndProcess,
	)
}

func TestTokenCase_Lower(t *testing.T) {
	t.Parallel()

	rc := newContext(t, "PROCESS\nBegin\n  a <= b;\nEND PROCESS;\n", nil)
	rule := processCaseRule()

	violations, err := lint.Analyze(rc, rule)
	require.NoError(t, err)
	require.Len(t, violations, 4)

	assert.Equal(t, 1, violations[0].Line)
	assert.Equal(t, 1, violations[0].Column)
	assert.Equal(t, `Change "PROCESS" to lower case "process"`, violations[0].Message)
	assert.Equal(t, fix.KindReplace, violations[0].Action.Kind)

	assert.Equal(t, 4, violations[3].Line)
	assert.Equal(t, 5, violations[3].Column)

	result, err := lint.Fix(rc, rule)
	require.NoError(t, err)
	assert.Len(t, result.Applied, 4)
	assert.Equal(t, "process\nbegin\n  a <= b;\nend process;\n", string(rc.File.Content()))

	again, err := lint.Analyze(rc, rule)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestTokenCase_ReplacementKeepsIdentity(t *testing.T) {
	t.Parallel()

	rc := newContext(t, "PROCESS\nbegin\nend process;\n", nil)
	_, err := lint.Fix(rc, processCaseRule())
	require.NoError(t, err)

	assert.Equal(t, []int{0}, rc.Index().PositionsOf(classify.ProcessKeyword))
}

func TestTokenCase_UpperOption(t *testing.T) {
	t.Parallel()

	rc := newContext(t, "process\nBEGIN\nend process;\n", map[string]any{"case": "upper"})

	violations, err := lint.Analyze(rc, processCaseRule())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 3}, lines(violations))

	_, err = lint.Analyze(newContext(t, "process\nbegin\nend process;\n", map[string]any{"case": "title"}), processCaseRule())
	require.Error(t, err)
}

func TestCase_Apply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "loop", lint.LowerCase.Apply("LoOp"))
	assert.Equal(t, "LOOP", lint.UpperCase.Apply("LoOp"))
}
