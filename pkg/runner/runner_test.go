package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
	"github.com/yaklabco/govsg/pkg/parser"
	"github.com/yaklabco/govsg/pkg/runner"
)

const (
	cleanSource = "library ieee;\nuse ieee.std_logic_1164.all;\n"
	dirtySource = "LIBRARY ieee;\nuse ieee.std_logic_1164.all;\n"
	badSource   = "process\nbegin\n"
)

func newRunner(t *testing.T) *runner.Runner {
	t.Helper()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	engine := lint.NewEngine(parser.New(0), registry)
	return runner.New(lint.NewPipeline(engine))
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner(t).Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
}

func TestRunner_Run_Report(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a_clean.vhd": cleanSource,
		"b_dirty.vhd": dirtySource,
		"c_bad.vhd":   badSource,
	})

	result, err := newRunner(t).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       2,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, []string{"a_clean.vhd", "b_dirty.vhd", "c_bad.vhd"},
		relative(t, dir, []string{result.Files[0].Path, result.Files[1].Path, result.Files[2].Path}))

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.GrammarErrors)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.DiagnosticsTotal)
	assert.Equal(t, 1, result.Stats.DiagnosticsBySeverity["warning"])
	assert.True(t, result.HasIssues())
	assert.True(t, result.HasErrors())
	assert.False(t, result.HasFailures())

	bad := result.Files[2]
	require.Error(t, bad.Error)
	require.NotNil(t, bad.GrammarError())
	require.ErrorIs(t, bad.Error, lint.ErrParseFailure)
	assert.Nil(t, result.Files[0].GrammarError())

	data, err := os.ReadFile(filepath.Join(dir, "b_dirty.vhd"))
	require.NoError(t, err)
	assert.Equal(t, dirtySource, string(data), "report mode must not write")
}

func TestRunner_Run_Fix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{}
	for _, name := range []string{"a.vhd", "b.vhd", "c.vhd", "d.vhd"} {
		files[name] = dirtySource
	}
	writeTree(t, dir, files)

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := newRunner(t).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.FilesModified)
	assert.Equal(t, 4, result.Stats.DiagnosticsFixed)
	assert.Zero(t, result.Stats.DiagnosticsTotal)

	for name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, cleanSource, string(data), name)
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.vhd": cleanSource})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = newRunner(t).RunFiles(ctx, files, runner.Options{Config: config.NewConfig()})
	require.ErrorIs(t, err, context.Canceled)
}
