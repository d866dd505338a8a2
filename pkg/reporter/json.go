package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/runner"
)

// Severity string constants.
const (
	severityWarning = "warning"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path         string            `json:"path"`
	Diagnostics  []JSONDiagnostic  `json:"diagnostics"`
	Fixed        []JSONDiagnostic  `json:"fixed,omitempty"`
	Modified     bool              `json:"modified,omitempty"`
	Skipped      string            `json:"skipped,omitempty"`
	Error        string            `json:"error,omitempty"`
	GrammarError *JSONGrammarError `json:"grammarError,omitempty"`
}

// JSONGrammarError describes a file the classifier rejected.
type JSONGrammarError struct {
	Line       int    `json:"line"`
	Production string `json:"production"`
	Expected   string `json:"expected"`
	Found      string `json:"found"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	RuleID      string   `json:"ruleId"`
	RuleName    string   `json:"ruleName"`
	Severity    string   `json:"severity"`
	Message     string   `json:"message"`
	StartLine   int      `json:"startLine"`
	StartColumn int      `json:"startColumn"`
	EndLine     int      `json:"endLine"`
	EndColumn   int      `json:"endColumn"`
	Suggestion  string   `json:"suggestion,omitempty"`
	Fixable     bool     `json:"fixable"`
	Fix         *JSONFix `json:"fix,omitempty"`
}

// JSONFix represents a proposed fix over a window of token positions.
type JSONFix struct {
	Kind    string `json:"kind"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	NewText string `json:"newText,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	TotalFixed      int            `json:"totalFixed"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        relativePath(r.opts.WorkingDir, file.Path),
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			if grammarErr := file.GrammarError(); grammarErr != nil {
				fileResult.GrammarError = &JSONGrammarError{
					Line:       grammarErr.Line,
					Production: grammarErr.Production,
					Expected:   grammarErr.Expected,
					Found:      grammarErr.Found,
				}
			}
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			fileResult.Modified = file.Result.Written
			fileResult.Skipped = file.Result.SkipReason

			for _, diag := range file.Result.Fixed {
				fileResult.Fixed = append(fileResult.Fixed, jsonDiagnostic(diag))
				output.Summary.TotalFixed++
			}

			if file.Result.FileResult != nil {
				for _, diag := range file.Result.Diagnostics {
					fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiagnostic(diag))
					output.Summary.TotalIssues++

					severity := string(diag.Severity)
					if severity == "" {
						severity = severityWarning
					}
					output.Summary.BySeverity[severity]++
				}
			}
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}

// jsonDiagnostic converts a diagnostic, rendering its fix payload as text.
func jsonDiagnostic(diag lint.Diagnostic) JSONDiagnostic {
	out := JSONDiagnostic{
		RuleID:      diag.RuleID,
		RuleName:    diag.RuleName,
		Severity:    string(diag.Severity),
		Message:     diag.Message,
		StartLine:   diag.StartLine,
		StartColumn: diag.StartColumn,
		EndLine:     diag.EndLine,
		EndColumn:   diag.EndColumn,
		Suggestion:  diag.Suggestion,
		Fixable:     diag.HasFix(),
	}

	if diag.Fix != nil {
		var text strings.Builder
		for _, tok := range diag.Fix.Tokens {
			text.WriteString(tok.Text)
		}
		out.Fix = &JSONFix{
			Kind:    diag.Fix.Kind.String(),
			Start:   diag.Fix.Start,
			End:     diag.Fix.End,
			NewText: text.String(),
		}
	}

	return out
}
