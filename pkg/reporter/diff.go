package reporter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/govsg/internal/ui/pretty"
	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/runner"
)

// DiffReporter prints the dry-run diff of every modified file in git's
// unified format, followed by a diffstat line.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStylesFor(opts.Color, opts.Writer),
		out:    opts.Writer,
	}
}

// diffStat accumulates the totals printed after the diffs.
type diffStat struct {
	files, additions, deletions int
}

// Report implements Reporter. The count is the number of files with a diff.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var stat diffStat
	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			fmt.Fprintf(r.out, "%s: %s\n",
				r.styles.FilePath.Render(relativePath(r.opts.WorkingDir, file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
		case file.Result != nil && file.Result.Diff != nil && len(file.Result.Diff.Hunks) > 0:
			diff := file.Result.Diff
			stat.files++
			stat.additions += diff.Additions
			stat.deletions += diff.Deletions
			r.writeDiff(diff)
		}
	}

	if stat.files > 0 && r.opts.ShowSummary {
		fmt.Fprintln(r.out, r.formatStat(stat))
	}
	return stat.files, nil
}

func (r *DiffReporter) writeDiff(diff *fix.Diff) {
	path := filepath.ToSlash(relativePath(r.opts.WorkingDir, diff.Path))

	fmt.Fprintln(r.out, r.styles.DiffHeader.Render("diff --git a/"+path+" b/"+path))
	fmt.Fprintln(r.out, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(r.out, r.styles.DiffAdd.Render("+++ b/"+path))

	for _, hunk := range diff.Hunks {
		fmt.Fprintln(r.out, r.styles.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)))
		for _, line := range hunk.Lines {
			fmt.Fprintln(r.out, r.lineStyle(line.Op).Render(string(rune(line.Op))+line.Text))
		}
	}
	fmt.Fprintln(r.out)
}

func (r *DiffReporter) lineStyle(op fix.LineOp) lipgloss.Style {
	switch op {
	case fix.OpAdd:
		return r.styles.DiffAdd
	case fix.OpRemove:
		return r.styles.DiffRemove
	default:
		return r.styles.DiffContext
	}
}

// formatStat renders stat like git's diffstat, for example
// "2 files changed, 3 insertions(+), 1 deletion(-)".
func (r *DiffReporter) formatStat(stat diffStat) string {
	parts := []string{plural(stat.files, "file", "files") + " changed"}
	if stat.additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(plural(stat.additions, "insertion", "insertions")+"(+)"))
	}
	if stat.deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(plural(stat.deletions, "deletion", "deletions")+"(-)"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
