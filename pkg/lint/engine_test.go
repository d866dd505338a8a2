package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/parser"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

const engineInput = "PROCESS\nbegin\n  a <= b;\n  c <= d;\nend process;\n"

func newTestEngine(t *testing.T) *lint.Engine {
	t.Helper()

	blank := lint.NewBlankLineBelow(
		lint.NewBaseRule("sequential_100", "blank-line-below-assignment", "assignment", "blank_line"),
		lint.RequireBlankLine, classify.WaveformSemicolon,
	)
	blank.Allow = []vhdl.ID{classify.ProcessEnd}

	reg := lint.NewRegistry()
	reg.MustRegister(blank, processCaseRule())
	return lint.NewEngine(parser.New(0), reg)
}

func TestEngine_LintFile(t *testing.T) {
	t.Parallel()

	result, err := newTestEngine(t).LintFile(context.Background(), "top.vhd", []byte(engineInput), config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 2)
	assert.Empty(t, result.Fixed)
	assert.False(t, result.Modified())
	assert.Equal(t, 2, result.IssueCount())
	assert.Equal(t, 2, result.FixableCount())

	first := result.Diagnostics[0]
	assert.Equal(t, "process_500", first.RuleID)
	assert.Equal(t, "process-keyword-case", first.RuleName)
	assert.Equal(t, "top.vhd", first.FilePath)
	assert.Equal(t, 1, first.StartLine)
	assert.Equal(t, config.SeverityWarning, first.Severity)

	second := result.Diagnostics[1]
	assert.Equal(t, "sequential_100", second.RuleID)
	assert.Equal(t, 3, second.StartLine)
	assert.True(t, second.HasFix())

	assert.Equal(t, engineInput, string(result.File.Content()), "report mode must not mutate")
}

func TestEngine_LintFile_Fix(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := newTestEngine(t).LintFile(context.Background(), "top.vhd", []byte(engineInput), cfg)
	require.NoError(t, err)

	assert.Empty(t, result.Diagnostics)
	assert.Len(t, result.Fixed, 2)
	assert.True(t, result.Modified())
	assert.Equal(t,
		"process\nbegin\n  a <= b;\n\n  c <= d;\nend process;\n",
		string(result.File.Content()))
}

func TestEngine_LintFile_FixRulesSubset(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.FixRules = []string{"case"}

	result, err := newTestEngine(t).LintFile(context.Background(), "top.vhd", []byte(engineInput), cfg)
	require.NoError(t, err)

	require.Len(t, result.Fixed, 1)
	assert.Equal(t, "process_500", result.Fixed[0].RuleID)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "sequential_100", result.Diagnostics[0].RuleID)
}

func TestEngine_LintFile_RuleError(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Rules["sequential_100"] = config.RuleConfig{Options: map[string]any{"style": "bogus"}}

	result, err := newTestEngine(t).LintFile(context.Background(), "top.vhd", []byte(engineInput), cfg)
	require.NoError(t, err)

	require.Contains(t, result.RuleErrors, "sequential_100")
	assert.Len(t, result.Diagnostics, 1)
}

func TestEngine_LintFile_ParseError(t *testing.T) {
	t.Parallel()

	_, err := newTestEngine(t).LintFile(context.Background(), "bad.vhd", []byte("a <= b\n"), config.NewConfig())
	require.Error(t, err)

	var grammarErr *classify.GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Contains(t, err.Error(), "parse error")
}

func TestEngine_LintParsed_Cancelled(t *testing.T) {
	t.Parallel()

	rc := newContext(t, engineInput, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(t).LintParsed(ctx, rc.File, config.NewConfig())
	require.ErrorIs(t, err, context.Canceled)
}
