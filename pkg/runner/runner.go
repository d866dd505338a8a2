package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// Each worker owns the File and index of the path it processes. A file that
// fails (for example with a grammar error) is recorded in its outcome and
// the run continues with the remaining files.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.RunFiles(ctx, files, opts)
}

// RunFiles processes an already discovered list of files.
func (r *Runner) RunFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	pipelineOpts := lint.PipelineOptionsFromConfig(opts.Config)
	logger := logging.FromContext(ctx)

	// Slots keep outcomes in discovery order regardless of completion order.
	outcomes := make([]*FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}
			outcome := FileOutcome{Path: path}
			pr, err := r.Pipeline.ProcessFile(groupCtx, path, opts.Config, pipelineOpts)
			if err != nil {
				outcome.Error = err
				logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
			} else {
				outcome.Result = pr
			}
			outcomes[i] = &outcome
			return nil
		})
	}

	// Workers never return errors; failures live in the outcomes.
	_ = group.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}
