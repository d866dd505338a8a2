package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/govsg/internal/ui/pretty"
	"github.com/yaklabco/govsg/pkg/runner"
)

// TableReporter formats results as one aligned table of diagnostics.
type TableReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	return &TableReporter{
		opts:   opts,
		styles: pretty.NewStylesFor(opts.Color, opts.Writer),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Files that could not be processed are listed
// below the table.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	fmt.Fprint(r.bw, r.styles.FormatDiagnosticTable(result, r.opts.RuleFormat, func(path string) string {
		return relativePath(r.opts.WorkingDir, path)
	}))

	text := &TextReporter{opts: r.opts, styles: r.styles, bw: r.bw}
	total := 0
	for _, file := range result.Files {
		if file.Error != nil {
			text.writeFileError(file)
		}
		if file.Result != nil && file.Result.FileResult != nil {
			total += len(file.Result.Diagnostics)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
