package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/fsutil"
)

// DefaultMaxFixPasses bounds the fix loop when rules keep producing actions
// for each other.
const DefaultMaxFixPasses = 10

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the file could not be classified.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult is the result of the final pass.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Original is the file state before processing. Nil for in-memory content.
	Original *fsutil.Snapshot

	// Fixed accumulates the issues repaired across all passes.
	Fixed []Diagnostic

	// Modified is true if the content was changed.
	Modified bool

	// ModifiedContent is the content after all passes (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff in dry-run mode.
	Diff *fix.Diff

	// Skipped is true if the file was left untouched on purpose.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool

	// FixPasses is the number of passes that applied at least one action.
	FixPasses int
}

// Summary returns a short human-readable status.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		if pr.BackupCreated {
			return "fixed (backup created)"
		}
		return "fixed"
	}
	if pr.Modified {
		return "changes pending"
	}
	if pr.FileResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection re-hashes the file before writing.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// MaxFixPasses limits the number of fix passes. Zero means DefaultMaxFixPasses.
	MaxFixPasses int
}

// DefaultPipelineOptions returns the defaults: report only, strict race detection.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline creates a pipeline around engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the pipeline for one file on disk:
//  1. Read and snapshot the file.
//  2. Run fix passes until a pass applies nothing or the limit is reached.
//  3. Return a diff in dry-run mode.
//  4. Skip the write if the file changed on disk meanwhile.
//  5. Back up the original if enabled.
//  6. Write the fixed content atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	original, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, original, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.Original = snap

	if !result.Modified || opts.DryRun {
		return result, nil
	}

	changed, err := fsutil.Changed(ctx, snap, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if changed {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	logging.FromContext(ctx).Debug("wrote fixes",
		logging.FieldPath, path,
		logging.FieldFixes, len(result.Fixed),
		logging.FieldPass, result.FixPasses,
	)

	return result, nil
}

// ProcessContent runs the fix passes over in-memory content without file I/O.
//
// Each pass re-parses the text produced by the previous one, so a pass that
// rendered unclassifiable text is caught before anything is written: the
// result is then marked Skipped and the original content is kept.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	original []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if cfg.Fix != opts.Fix {
		cfg = cfg.Clone()
		cfg.Fix = opts.Fix
	}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	result := &PipelineResult{Path: path}
	content := original

	for pass := range maxPasses {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
		default:
		}

		fileResult, err := p.Engine.LintFile(ctx, path, content, cfg)
		if err != nil {
			if pass == 0 {
				return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
			}
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("re-parse failed: %v", err)
			result.Modified = false
			result.ModifiedContent = nil
			return result, nil
		}
		result.FileResult = fileResult

		if !opts.Fix || !fileResult.Modified() {
			break
		}

		content = fileResult.File.Content()
		result.Fixed = append(result.Fixed, fileResult.Fixed...)
		result.FixPasses++
		result.Modified = true
	}

	if !result.Modified {
		return result, nil
	}
	result.ModifiedContent = content

	// The pass limit stopped a pass that still applied fixes, so its
	// diagnostics point into the content before those fixes.
	if result.FileResult.Modified() {
		analyzeCfg := cfg.Clone()
		analyzeCfg.Fix = false
		fileResult, err := p.Engine.LintFile(ctx, path, content, analyzeCfg)
		if err != nil {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("re-parse failed: %v", err)
			result.Modified = false
			result.ModifiedContent = nil
			return result, nil
		}
		result.FileResult = fileResult
	}

	if opts.DryRun {
		result.Diff = fix.GenerateDiff(path, string(original), string(content))
	}

	return result, nil
}

// categorizeError wraps an error with the matching pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
// Dry-run implies fix mode so the diff shows what would be written.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Fix:                 cfg.Fix || cfg.DryRun,
		DryRun:              cfg.DryRun,
		Backup:              BackupConfigFromConfig(cfg),
		StrictRaceDetection: true,
		MaxFixPasses:        cfg.MaxFixPasses,
	}
}
