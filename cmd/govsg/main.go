// Package main is the entry point for the govsg CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/yaklabco/govsg/internal/cli"
	"github.com/yaklabco/govsg/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/govsg/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// Interrupts stop watch mode and cancel in-flight lint runs.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// ErrLintIssuesFound only signals the exit code.
		if !errors.Is(err, cli.ErrLintIssuesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitLintErrors
	}

	return cli.ExitSuccess
}
