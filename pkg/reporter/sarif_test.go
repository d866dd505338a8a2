package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/reporter"
)

func decodeSARIF(t *testing.T, data []byte) reporter.SARIFRun {
	t.Helper()

	var output reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(data, &output))
	assert.Equal(t, "2.1.0", output.Version)
	assert.Contains(t, output.Schema, "sarif-schema-2.1.0")
	require.Len(t, output.Runs, 1)
	return output.Runs[0]
}

func TestSARIFReporter_Levels(t *testing.T) {
	t.Parallel()

	result := sampleResult()
	result.Files[0].Result.Diagnostics[1].Severity = config.SeverityInfo

	var buf bytes.Buffer
	count, err := reporter.NewSARIFReporter(reporter.Options{Writer: &buf, ToolVersion: "1.2.3"}).
		Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	run := decodeSARIF(t, buf.Bytes())
	assert.Equal(t, "govsg", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)

	require.Len(t, run.Results, 2)
	assert.Equal(t, "process_500", run.Results[0].RuleID)
	assert.Equal(t, "error", run.Results[0].Level)
	assert.Equal(t, "note", run.Results[1].Level)

	region := run.Results[0].Locations[0].PhysicalLocation.Region
	assert.Equal(t, 5, region.StartLine)
	assert.Equal(t, 7, region.StartColumn)
	assert.Equal(t, "top.vhd", run.Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
}

func TestSARIFReporter_PipelineResult(t *testing.T) {
	t.Parallel()

	dir, result := runTree(t, config.NewConfig(), map[string]string{
		"a.vhd": "LIBRARY ieee;\n",
		"b.vhd": "process\nbegin\n",
	})

	var buf bytes.Buffer
	count, err := reporter.NewSARIFReporter(reporter.Options{Writer: &buf, WorkingDir: dir}).
		Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	run := decodeSARIF(t, buf.Bytes())
	assert.Equal(t, "dev", run.Tool.Driver.Version)

	rules := make(map[string]reporter.SARIFRule)
	for _, rule := range run.Tool.Driver.Rules {
		rules[rule.ID] = rule
	}
	require.Contains(t, rules, "library_500")
	assert.Equal(t, "The library keyword must be lowercase", rules["library_500"].ShortDescription.Text)
	require.NotNil(t, rules["library_500"].Properties)
	assert.Contains(t, rules["library_500"].Properties.Tags, "keyword_case")
	require.Contains(t, rules, "grammar_error")

	require.Len(t, run.Results, 2)

	keyword := run.Results[0]
	assert.Equal(t, "library_500", keyword.RuleID)
	assert.Equal(t, "a.vhd", keyword.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	require.Len(t, keyword.Fixes, 1)
	replacement := keyword.Fixes[0].ArtifactChanges[0].Replacements[0]
	require.NotNil(t, replacement.InsertedContent)
	assert.Equal(t, "library", replacement.InsertedContent.Text)
	assert.Equal(t, 1, replacement.DeletedRegion.StartLine)

	grammar := run.Results[1]
	assert.Equal(t, "grammar_error", grammar.RuleID)
	assert.Equal(t, "error", grammar.Level)
	assert.Equal(t, "b.vhd", grammar.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Positive(t, grammar.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	dir, result := runTree(t, config.NewConfig(), map[string]string{
		"a.vhd": "LIBRARY ieee;\n",
		"b.vhd": "process\nbegin\n",
	})

	var buf bytes.Buffer
	count, err := reporter.NewTableReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  dir,
	}).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	output := buf.String()
	assert.Contains(t, output, "FILE")
	assert.Contains(t, output, "MESSAGE")
	assert.Contains(t, output, "a.vhd")
	assert.Contains(t, output, "1:1")
	assert.Contains(t, output, "library_500")
	assert.Contains(t, output, "fixable with --fix")
	assert.Contains(t, output, "grammar error")
	assert.NotContains(t, output, dir)
}
