package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/govsg/internal/configloader"
	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	pack   string
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new govsg configuration file",
		Long: `Create a new .govsg.yml configuration file in the current directory.
The file can be customized to enable or disable rules, change severities,
and set rule options.

Examples:
  govsg init                       Create a minimal .govsg.yml
  govsg init --pack strict         Start from the strict rule pack
  govsg init --full                List every rule with its defaults
  govsg init --format toml         Create .govsg.toml instead
  govsg init --output custom.yml   Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "List every rule with its default settings")
	cmd.Flags().StringVar(&flags.pack, "pack", "", "Rule pack to start from: default, strict, relaxed")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .govsg.yml or .govsg.toml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.format != "yaml" && flags.format != "toml" {
		return fmt.Errorf("invalid format %q: must be yaml or toml", flags.format)
	}
	if flags.pack != "" && rules.PackByName(flags.pack) == nil {
		return fmt.Errorf("unknown pack %q (available: %v)", flags.pack, rules.PackNames())
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".govsg.yml"
		if flags.format == "toml" {
			outputPath = ".govsg.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	cfg, err := starterConfig(flags)
	if err != nil {
		return err
	}
	if err := configloader.WriteConfig(cfg, absPath); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'govsg rules' to see all available rules")

	return nil
}

// starterConfig builds the configuration written by init.
func starterConfig(flags *initFlags) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Pack = flags.pack
	cfg.Include = append([]string(nil), config.DefaultInclude...)

	if !flags.full {
		return cfg, nil
	}

	// Spell out the pack so the listed values are the effective ones.
	if err := rules.ApplyPack(cfg); err != nil {
		return nil, err
	}

	for _, rule := range lint.DefaultRegistry.Rules() {
		ruleCfg := cfg.Rules[rule.ID()]
		if ruleCfg.Enabled == nil {
			enabled := rule.DefaultEnabled()
			ruleCfg.Enabled = &enabled
		}
		if ruleCfg.Severity == nil {
			severity := string(rule.DefaultSeverity())
			ruleCfg.Severity = &severity
		}
		cfg.Rules[rule.ID()] = ruleCfg
	}
	return cfg, nil
}
