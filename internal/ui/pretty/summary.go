package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/govsg/pkg/runner"
)

const (
	summaryDividerWidth = 40
	summaryLabelWidth   = 21
)

// counted formats n with the singular or plural form of noun.
func counted(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// severityCounts renders the non-zero per-severity counts of stats.
func (s *Styles) severityCounts(stats runner.Stats) []string {
	var parts []string
	if n := stats.DiagnosticsBySeverity["error"]; n > 0 {
		parts = append(parts, s.Error.Render(counted(n, "error")))
	}
	if n := stats.DiagnosticsBySeverity["warning"]; n > 0 {
		parts = append(parts, s.Warning.Render(counted(n, "warning")))
	}
	if n := stats.DiagnosticsBySeverity["info"]; n > 0 {
		parts = append(parts, s.Info.Render(fmt.Sprintf("%d info", n)))
	}
	return parts
}

// FormatSummaryOneLine formats run statistics as a single line, for example
// "12 issues (4 errors, 8 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.DiagnosticsTotal == 0 {
		parts = append(parts, s.Success.Render("No issues found")+
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)))
	} else {
		head := counted(stats.DiagnosticsTotal, "issue")
		if bySeverity := s.severityCounts(stats); len(bySeverity) > 0 {
			head += " (" + strings.Join(bySeverity, ", ") + ")"
		}
		parts = append(parts, head+" in "+counted(stats.FilesWithIssues, "file"))

		if stats.DiagnosticsFixable > 0 {
			parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
		}
	}

	if stats.DiagnosticsFixed > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %s",
			stats.DiagnosticsFixed, counted(stats.FilesModified, "file"))))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(counted(stats.FilesErrored, "file")+" failed"))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a labelled block ending in an
// overall verdict. Zero counts other than the totals are omitted.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var b strings.Builder
	row := func(indent int, name string, n int, style lipgloss.Style, always bool) {
		if n == 0 && !always {
			return
		}
		label := strings.Repeat(" ", indent) + name + ":"
		b.WriteString(label + strings.Repeat(" ", max(1, summaryLabelWidth-len(label))))
		b.WriteString(style.Render(strconv.Itoa(n)) + "\n")
	}

	b.WriteString("\n" + s.SummaryTitle.Render("Summary") + "\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth) + "\n")

	row(2, "Files checked", stats.FilesProcessed, s.SummaryValue, true)
	row(2, "Files with issues", stats.FilesWithIssues, s.Failure, false)
	row(2, "Files modified", stats.FilesModified, s.Success, false)
	row(2, "Files failed", stats.FilesErrored, s.Failure, false)
	row(4, "Grammar errors", stats.GrammarErrors, s.Failure, false)
	b.WriteString("\n")

	row(2, "Total issues", stats.DiagnosticsTotal, s.SummaryValue, true)
	row(4, "Errors", stats.DiagnosticsBySeverity["error"], s.Error, false)
	row(4, "Warnings", stats.DiagnosticsBySeverity["warning"], s.Warning, false)
	row(4, "Info", stats.DiagnosticsBySeverity["info"], s.Info, false)
	b.WriteString("\n")

	switch {
	case stats.DiagnosticsBySeverity["error"] > 0, stats.FilesErrored > 0:
		b.WriteString(s.Failure.Render("Lint failed with errors"))
	case stats.DiagnosticsBySeverity["warning"] > 0:
		b.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		b.WriteString(s.Success.Render("Lint passed"))
	}
	b.WriteString("\n")

	return b.String()
}
