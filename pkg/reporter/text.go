package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/govsg/internal/ui/pretty"
	"github.com/yaklabco/govsg/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStylesFor(opts.Color, opts.Writer),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var totalIssues int

	if r.opts.GroupByFile {
		totalIssues = r.reportGrouped(ctx, result)
	} else {
		totalIssues = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		if r.opts.DetailedSummary {
			fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
		} else {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		}
	}

	return totalIssues, nil
}

// reportGrouped writes diagnostics grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		diagnostics := file.Result.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(relativePath(r.opts.WorkingDir, file.Path), len(diagnostics)))
		total += r.writeDiagnostics(file)

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes diagnostics without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		total += r.writeDiagnostics(file)
	}

	return total
}

// writeDiagnostics writes every diagnostic of file and returns the count.
func (r *TextReporter) writeDiagnostics(file runner.FileOutcome) int {
	for _, diag := range file.Result.Diagnostics {
		var sourceLine string
		if r.opts.ShowContext && file.Result.File != nil {
			sourceLine = file.Result.File.Line(diag.StartLine)
		}

		diag.FilePath = relativePath(r.opts.WorkingDir, diag.FilePath)
		fmt.Fprint(r.bw, r.styles.FormatDiagnosticWithFormat(&diag, r.opts.ShowContext, sourceLine, r.opts.RuleFormat))
	}
	return len(file.Result.Diagnostics)
}

// writeFileError writes a file that could not be processed. Grammar errors
// carry their own line, so they render as a location.
func (r *TextReporter) writeFileError(file runner.FileOutcome) {
	path := relativePath(r.opts.WorkingDir, file.Path)
	if grammarErr := file.GrammarError(); grammarErr != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(fmt.Sprintf("%s:%d", path, grammarErr.Line)),
			r.styles.Error.Render("grammar error: "+grammarErr.Error()),
		)
		return
	}
	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(path),
		r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
	)
}
