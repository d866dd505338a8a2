// Package cli provides the Cobra command structure for govsg.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/govsg/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root govsg command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "govsg",
		Short: "A VHDL style checker and fixer",
		Long: `govsg checks VHDL source files against a catalog of style rules and
repairs what it finds.

Files are lexed and classified into grammar categories, indexed, and checked
rule by rule. Blank-line rules and keyword case rules carry fixes that are
applied in place with --fix, previewed as a diff with --dry-run, and written
atomically with optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().String("color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand(info.Version))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	installHelp(rootCmd)

	return rootCmd
}
