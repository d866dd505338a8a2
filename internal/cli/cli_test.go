package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/govsg/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	if cmd.Use != "govsg" {
		t.Errorf("expected Use to be 'govsg', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"lint", "rules", "tokens", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestLintCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	lintCmd, _, err := cmd.Find([]string{"lint"})
	require.NoError(t, err)

	expectedFlags := []string{
		"fix",
		"dry-run",
		"format",
		"jobs",
		"pack",
		"include",
		"ignore",
		"enable",
		"disable",
		"fix-rules",
		"lookahead",
		"no-backups",
		"strict",
		"summary",
		"watch",
	}

	for _, flagName := range expectedFlags {
		if lintCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on lint command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestRootHelpListsEnvironment(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"--color=never", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Environment:")
	assert.Contains(t, out.String(), "GOVSG_PACK")
}

func TestHelpAlignsFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"lint", "--color=never", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	help := out.String()
	assert.Contains(t, help, "Usage:\n  govsg lint")
	assert.Contains(t, help, "Global Flags:")
	assert.Contains(t, help, `(default "auto")`)
	assert.NotContains(t, help, "Environment:", "only the root command lists the environment")
	assert.NotContains(t, help, "\x1b[", "--color=never disables styling")

	var descColumn int
	for _, line := range strings.Split(help, "\n") {
		if !strings.Contains(line, "--color string") && !strings.Contains(line, "--config string") {
			continue
		}
		idx := strings.Index(line, "  colorize")
		if idx < 0 {
			idx = strings.Index(line, "  path to config")
		}
		require.Positive(t, idx, line)
		if descColumn == 0 {
			descColumn = idx
		}
		assert.Equal(t, descColumn, idx, "descriptions share a column")
	}
	assert.Positive(t, descColumn)
}

func TestRootHelpListsCommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"--color=never", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Commands:")
	for _, name := range []string{"lint", "rules", "tokens", "init", "version"} {
		assert.Contains(t, out.String(), "  "+name+" ")
	}
	assert.Contains(t, out.String(), `Run "govsg [command] --help"`)
}

func TestLintCommandAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	lintCmd, _, err := cmd.Find([]string{"lint"})
	require.NoError(t, err)

	err = lintCmd.Args(lintCmd, []string{"top.vhd", "alu.vhdl", "rtl/"})
	assert.NoError(t, err, "lint command should accept arbitrary args")
}
