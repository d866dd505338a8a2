package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/govsg/internal/configloader"
	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/internal/watch"
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/parser"
	"github.com/yaklabco/govsg/pkg/reporter"
	"github.com/yaklabco/govsg/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format     string
	pack       string
	include    []string
	ignore     []string
	enable     []string
	disable    []string
	fixRules   []string
	lookahead  int
	strict     bool
	noContext  bool
	compact    bool
	summary    bool
	watch      bool
	ruleFormat string
}

func newLintCommand(version string) *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint VHDL files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags, version)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint VHDL files for style issues.

By default, lints all .vhd and .vhdl files in the current directory and
subdirectories. Specify paths to lint specific files or directories; a file
named explicitly is accepted when its extension or content is recognized as
VHDL.

Examples:
  govsg lint                         # Lint current directory
  govsg lint rtl/                    # Lint the rtl directory
  govsg lint top.vhd                 # Lint a single file
  govsg lint --fix                   # Lint and fix issues in place
  govsg lint --dry-run               # Show fixes as a diff without writing
  govsg lint --pack strict           # Enable every rule
  govsg lint --format json           # Output as JSON for CI
  govsg lint --format sarif          # Output SARIF for code scanning
  govsg lint --watch rtl/            # Re-lint files as they change`

// lintSession holds everything needed to lint and report repeatedly.
type lintSession struct {
	cmd     *cobra.Command
	flags   *lintFlags
	cfg     *config.Config
	runner  *runner.Runner
	runOpts runner.Options
	logger  *log.Logger
	version string
}

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags, version string) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	applyLintFlags(cmd, cfg, flags)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldPack, finalCfg.Pack,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	engine := lint.NewEngine(parser.New(finalCfg.Lookahead), lint.DefaultRegistry)

	session := &lintSession{
		cmd:    cmd,
		flags:  flags,
		cfg:    finalCfg,
		runner: runner.New(lint.NewPipeline(engine)),
		runOpts: runner.Options{
			Paths:      args,
			WorkingDir: workDir,
			Jobs:       finalCfg.Jobs,
			Config:     finalCfg,
		},
		logger:  logger,
		version: version,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, session.runOpts.Paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, session.runOpts.Jobs,
	)

	result, err := session.runner.Run(ctx, session.runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}
	exitCode, err := session.report(ctx, result)
	if err != nil {
		return err
	}

	if flags.watch {
		return session.watch(ctx, result)
	}

	if exitCode != ExitSuccess {
		return ErrLintIssuesFound
	}
	return nil
}

// applyLintFlags copies explicitly set flags into the CLI config layer.
func applyLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if cmd.Flags().Changed("pack") {
		cfg.Pack = flags.pack
	}
	if cmd.Flags().Changed("lookahead") {
		cfg.Lookahead = flags.lookahead
	}
	cfg.Include = flags.include
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.FixRules = flags.fixRules
}

// report writes result and returns the exit code it implies.
func (s *lintSession) report(ctx context.Context, result *runner.Result) (int, error) {
	colorMode, err := s.cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(s.cfg.Format))
	if err != nil {
		return ExitInvalidUsage, fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          s.cmd.OutOrStdout(),
		Format:          format,
		Color:           colorMode,
		ShowContext:     !s.flags.noContext,
		ShowSummary:     true,
		DetailedSummary: s.flags.summary,
		GroupByFile:     true,
		Compact:         s.flags.compact,
		RuleFormat:      s.cfg.RuleFormat,
		ToolVersion:     s.version,
		WorkingDir:      s.runOpts.WorkingDir,
	})
	if err != nil {
		return ExitInvalidUsage, fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		s.logger.Error("report failed", logging.FieldError, err)
		return ExitIOError, fmt.Errorf("report results: %w", err)
	}

	return ExitCodeFromResult(result, s.flags.strict), nil
}

// watch re-lints changed files until the command is interrupted.
func (s *lintSession) watch(ctx context.Context, initial *runner.Result) error {
	accept, err := runner.Filter(s.runOpts)
	if err != nil {
		return fmt.Errorf("watch filter: %w", err)
	}

	roots := s.runOpts.Paths
	if len(roots) == 0 {
		roots = []string{s.runOpts.WorkingDir}
	}

	watcher, err := watch.New(watch.Options{Roots: roots, Accept: accept})
	if err != nil {
		return fmt.Errorf("start watch: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	primed := make([]string, 0, len(initial.Files))
	for _, file := range initial.Files {
		primed = append(primed, file.Path)
	}
	watcher.Prime(ctx, primed)

	s.logger.Info("watching for changes", logging.FieldPaths, roots)

	return watcher.Run(ctx, func(ctx context.Context, paths []string) error {
		result, err := s.runner.RunFiles(ctx, paths, s.runOpts)
		if err != nil {
			return errors.Join(errors.New("lint run failed"), err)
		}
		_, err = s.report(ctx, result)
		return err
	})
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes as a diff without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, sarif, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.pack, "pack", "", "rule pack: default, strict, relaxed")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns selecting files in directories")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs, names or tags to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs, names or tags to disable")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rules")
	cmd.Flags().IntVar(&flags.lookahead, "lookahead", 0, "significant-token search window (0 = default)")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary block")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-lint files when they change")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "id",
		"rule identifier format in output: name, id, or combined")
}
