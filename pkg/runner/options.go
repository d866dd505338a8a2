// Package runner provides multi-file linting orchestration.
package runner

import "github.com/yaklabco/govsg/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Include are doublestar patterns, relative to WorkingDir, selecting
	// files found while walking directories. Defaults to the config include
	// patterns.
	Include []string

	// Ignore are doublestar patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	Ignore []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveInclude returns the include patterns, defaulting to the config.
func (o Options) effectiveInclude() []string {
	if len(o.Include) > 0 {
		return o.Include
	}
	return o.Config.IncludePatterns()
}

// effectiveIgnore merges CLI and config ignore patterns.
func (o Options) effectiveIgnore() []string {
	if o.Config == nil {
		return o.Ignore
	}
	return append(append([]string(nil), o.Ignore...), o.Config.Ignore...)
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
