package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/runner"
)

// Table formatting constants.
const (
	fixableSymbol  = "+"
	tableGap       = 2
	heavySeparator = "="
	lightSeparator = "-"
	minFlexWidth   = 20
)

// Table renders rows of cells in padded columns. Column widths come from
// the widest cell; when Styles.Width is set the flex column shrinks so the
// table fits the terminal.
type Table struct {
	styles  *Styles
	headers []string
	rows    []tableRow
	flex    int
}

type tableRow struct {
	cells []string
	style lipgloss.Style
	// rule marks a light separator drawn after the row.
	rule bool
}

// NewTable creates a table with the given column headers.
func NewTable(styles *Styles, headers ...string) *Table {
	return &Table{styles: styles, headers: headers, flex: -1}
}

// Flex selects the column that is truncated to fit the terminal width.
func (t *Table) Flex(col int) *Table {
	t.flex = col
	return t
}

// AddRow appends a row rendered with style. Missing cells are blank.
func (t *Table) AddRow(style lipgloss.Style, cells ...string) {
	t.rows = append(t.rows, tableRow{cells: cells, style: style})
}

// Break draws a light separator before the next row.
func (t *Table) Break() {
	if len(t.rows) > 0 {
		t.rows[len(t.rows)-1].rule = true
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the table, one line per row, with a header and rules.
func (t *Table) Render() string {
	widths := t.widths()
	total := 0
	for _, w := range widths {
		total += w + tableGap
	}

	var b strings.Builder
	b.WriteString(t.line(t.headers, widths, t.styles.TableHeader))
	b.WriteString("\n")
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	b.WriteString("\n")
	for i, row := range t.rows {
		b.WriteString(t.line(row.cells, widths, row.style))
		b.WriteString("\n")
		if row.rule && i < len(t.rows)-1 {
			b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i := 0; i < len(row.cells) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row.cells[i]))
		}
	}

	if t.styles.Width <= 0 || t.flex < 0 || t.flex >= len(widths) {
		return widths
	}
	total := 0
	for _, w := range widths {
		total += w + tableGap
	}
	if excess := total - t.styles.Width; excess > 0 {
		widths[t.flex] = max(minFlexWidth, widths[t.flex]-excess)
	}
	return widths
}

func (t *Table) line(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = truncateString(cells[i], w)
		}
		parts[i] = style.Width(w + tableGap).Render(cell)
	}
	return strings.TrimRight(strings.Join(parts, ""), " ")
}

// truncateString shortens str to maxLen display cells, marking the cut.
func truncateString(str string, maxLen int) string {
	if lipgloss.Width(str) <= maxLen {
		return str
	}
	runes := []rune(str)
	if maxLen <= 3 {
		return string(runes[:min(maxLen, len(runes))])
	}
	return string(runes[:min(maxLen-3, len(runes))]) + "..."
}

// FormatDiagnosticTable renders every diagnostic of result as one table
// grouped by file, followed by a legend line.
func (s *Styles) FormatDiagnosticTable(result *runner.Result, ruleFormat config.RuleFormat, relPath func(string) string) string {
	if result == nil {
		return ""
	}

	table := NewTable(s, "FILE", "LOC", "MESSAGE", "RULE", "").Flex(2)
	for _, file := range result.Files {
		if file.Result == nil || file.Result.FileResult == nil || len(file.Result.Diagnostics) == 0 {
			continue
		}
		table.Break()
		for i := range file.Result.Diagnostics {
			diag := &file.Result.Diagnostics[i]
			table.AddRow(s.rowStyle(diag.Severity),
				relPath(file.Path),
				fmt.Sprintf("%d:%d", diag.StartLine, diag.StartColumn),
				diag.Message,
				config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName),
				s.fixableMark(diag),
			)
		}
	}

	if table.Len() == 0 {
		return ""
	}
	return table.Render() + s.Dim.Render(fixableSymbol+" = fixable with --fix") + "\n"
}

func (s *Styles) rowStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error.UnsetBold()
	case config.SeverityInfo:
		return s.Info.UnsetBold()
	default:
		return s.Warning.UnsetBold()
	}
}

func (s *Styles) fixableMark(diag *lint.Diagnostic) string {
	if !diag.HasFix() {
		return ""
	}
	return s.TableFixable.Render(fixableSymbol)
}
