// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig = "config"
	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"
	FieldPack   = "pack"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesModified    = "files_modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Fix fields.
	FieldFixes   = "fixes"
	FieldSkipped = "skipped"
	FieldPass    = "pass"

	// Classification fields.
	FieldLine       = "line"
	FieldTokens     = "tokens"
	FieldProduction = "production"

	// Rule fields.
	FieldRule        = "rule"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
