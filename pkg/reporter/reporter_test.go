package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/reporter"
	"github.com/yaklabco/govsg/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]reporter.Format{
		"":      reporter.FormatText,
		"text":  reporter.FormatText,
		"table": reporter.FormatTable,
		"json":  reporter.FormatJSON,
		"sarif": reporter.FormatSARIF,
		"diff":  reporter.FormatDiff,
	} {
		got, err := reporter.ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
		assert.True(t, got.IsValid(), input)
	}

	_, err := reporter.ParseFormat("xml")
	require.ErrorContains(t, err, "sarif")
	assert.False(t, reporter.Format("xml").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew_SelectsReporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format reporter.Format
		want   any
	}{
		{"", &reporter.TextReporter{}},
		{reporter.FormatText, &reporter.TextReporter{}},
		{reporter.FormatTable, &reporter.TableReporter{}},
		{reporter.FormatJSON, &reporter.JSONReporter{}},
		{reporter.FormatSARIF, &reporter.SARIFReporter{}},
		{reporter.FormatDiff, &reporter.DiffReporter{}},
	}

	for _, tt := range tests {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format, Color: "never"})
		require.NoError(t, err, tt.format)
		assert.IsType(t, tt.want, rep, tt.format)
	}

	rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
	assert.Nil(t, rep)
}

// Every reporter accepts a nil result and reports nothing.
func TestReporters_NilResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format reporter.Format
		check  func(t *testing.T, out string)
	}{
		{reporter.FormatText, func(t *testing.T, out string) {
			assert.Contains(t, out, "No files to check")
		}},
		{reporter.FormatTable, func(t *testing.T, out string) {
			assert.Contains(t, out, "No files to check")
		}},
		{reporter.FormatJSON, func(t *testing.T, out string) {
			var output reporter.JSONOutput
			require.NoError(t, json.Unmarshal([]byte(out), &output))
			assert.Equal(t, "1.0.0", output.Version)
			assert.Empty(t, output.Files)
		}},
		{reporter.FormatSARIF, func(t *testing.T, out string) {
			var output reporter.SARIFOutput
			require.NoError(t, json.Unmarshal([]byte(out), &output))
			require.Len(t, output.Runs, 1)
			assert.Empty(t, output.Runs[0].Results)
		}},
		{reporter.FormatDiff, func(t *testing.T, out string) {
			assert.Empty(t, out)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{
				Writer:      &buf,
				Format:      tt.format,
				Color:       "never",
				ShowSummary: true,
			})
			require.NoError(t, err)

			count, err := rep.Report(context.Background(), nil)
			require.NoError(t, err)
			assert.Zero(t, count)
			tt.check(t, buf.String())
		})
	}
}

func TestTextReporter_GroupedSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		GroupByFile: true,
	})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "top.vhd")
	assert.Contains(t, output, "process_500")
	assert.Contains(t, output, "2 issues")
}

func TestTextReporter_RuleNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Color = "never"
	opts.RuleFormat = config.RuleFormatName
	opts.ShowContext = false
	opts.ShowSummary = false

	_, err := reporter.NewTextReporter(opts).Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "process-keyword-case")
	assert.NotContains(t, buf.String(), "process_500")
}

func TestJSONReporter_Diagnostics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	count, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf}).
		Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Contains(t, buf.String(), `"ruleId": "process_500"`)
	assert.Contains(t, buf.String(), `"ruleName": "process-keyword-case"`)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Files, 1)
	assert.Len(t, output.Files[0].Diagnostics, 2)
	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true}).
		Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 1)
}

func TestDiffReporter_NothingModified(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	count, err := reporter.NewDiffReporter(reporter.Options{Writer: &buf, Color: "never"}).
		Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, buf.String())
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	assert.NotNil(t, opts.Writer)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.True(t, opts.GroupByFile)
	assert.Equal(t, config.RuleFormatID, opts.RuleFormat)
}

// sampleResult holds one file with an error and a warning.
func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "top.vhd",
			Result: &lint.PipelineResult{FileResult: &lint.FileResult{
				Diagnostics: []lint.Diagnostic{
					{
						RuleID:      "process_500",
						RuleName:    "process-keyword-case",
						Message:     "Change \"PROCESS\" to \"process\"",
						Severity:    config.SeverityError,
						FilePath:    "top.vhd",
						StartLine:   5,
						StartColumn: 7,
						EndLine:     5,
						EndColumn:   14,
						Suggestion:  "Write process",
					},
					{
						RuleID:      "process_100",
						RuleName:    "no-blank-line-below-process-begin",
						Message:     "Remove blank lines below begin",
						Severity:    config.SeverityWarning,
						FilePath:    "top.vhd",
						StartLine:   10,
						StartColumn: 1,
						EndLine:     10,
						EndColumn:   1,
					},
				},
			}},
		}},
		Stats: runner.Stats{
			FilesDiscovered:       1,
			FilesProcessed:        1,
			FilesWithIssues:       1,
			DiagnosticsTotal:      2,
			DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 1},
		},
	}
}
