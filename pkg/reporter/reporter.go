// Package reporter provides diagnostic and diff reporting functionality.
package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/govsg/pkg/runner"
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// relativePath shows path relative to workDir, or to the current directory
// when workDir is empty. Paths that would climb more than two parents are
// shortened to their base name.
func relativePath(workDir, path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return filepath.Base(path)
		}
		workDir = cwd
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}
