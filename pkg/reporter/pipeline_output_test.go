package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
	"github.com/yaklabco/govsg/pkg/parser"
	"github.com/yaklabco/govsg/pkg/reporter"
	"github.com/yaklabco/govsg/pkg/runner"
)

// runTree writes files into a temp dir and runs the full lint pipeline.
func runTree(t *testing.T, cfg *config.Config, files map[string]string) (string, *runner.Result) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	r := runner.New(lint.NewPipeline(lint.NewEngine(parser.New(0), registry)))

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)
	return dir, result
}

func TestTextReporter_SourceContextAndGrammarError(t *testing.T) {
	t.Parallel()

	dir, result := runTree(t, config.NewConfig(), map[string]string{
		"a.vhd": "LIBRARY ieee;\n",
		"b.vhd": "process\nbegin\n",
	})

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
		GroupByFile: true,
		RuleFormat:  config.RuleFormatID,
		WorkingDir:  dir,
	})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	output := buf.String()
	assert.Contains(t, output, "a.vhd:1:1")
	assert.Contains(t, output, "(library_500)")
	assert.Contains(t, output, "LIBRARY ieee;")
	assert.Contains(t, output, "b.vhd:")
	assert.Contains(t, output, "grammar error")
	assert.Contains(t, output, "1 file failed")
	assert.NotContains(t, output, dir, "paths are relative to the working directory")
}

func TestJSONReporter_FixedAndGrammarError(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Fix = true
	dir, result := runTree(t, cfg, map[string]string{
		"a.vhd": "LIBRARY ieee;\n",
		"b.vhd": "process\nbegin\n",
	})

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: dir})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Files, 2)

	fixed := output.Files[0]
	assert.Equal(t, "a.vhd", fixed.Path)
	assert.True(t, fixed.Modified)
	require.Len(t, fixed.Fixed, 1)
	assert.Equal(t, "library_500", fixed.Fixed[0].RuleID)
	require.NotNil(t, fixed.Fixed[0].Fix)
	assert.Equal(t, "Replace", fixed.Fixed[0].Fix.Kind)
	assert.Equal(t, "library", fixed.Fixed[0].Fix.NewText)

	bad := output.Files[1]
	require.NotNil(t, bad.GrammarError)
	assert.Positive(t, bad.GrammarError.Line)
	assert.NotEmpty(t, bad.Error)

	assert.Equal(t, 1, output.Summary.TotalFixed)
	assert.Equal(t, 1, output.Summary.FilesModified)
	assert.Equal(t, 1, output.Summary.FilesErrored)
}

func TestDiffReporter_DryRun(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.DryRun = true
	dir, result := runTree(t, cfg, map[string]string{
		"a.vhd": "LIBRARY ieee;\nuse ieee.std_logic_1164.all;\n",
	})

	var buf bytes.Buffer
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  dir,
	})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	want := "diff --git a/a.vhd b/a.vhd\n" +
		"--- a/a.vhd\n" +
		"+++ b/a.vhd\n" +
		"@@ -1,2 +1,2 @@\n" +
		"-LIBRARY ieee;\n" +
		"+library ieee;\n" +
		" use ieee.std_logic_1164.all;\n" +
		"\n" +
		"1 file changed, 1 insertion(+), 1 deletion(-)\n"
	assert.Equal(t, want, buf.String())

	data, err := os.ReadFile(filepath.Join(dir, "a.vhd"))
	require.NoError(t, err)
	assert.Equal(t, "LIBRARY ieee;\nuse ieee.std_logic_1164.all;\n", string(data))
}
