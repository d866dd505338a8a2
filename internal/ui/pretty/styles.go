// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Diagnostic components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleID     lipgloss.Style
	Message    lipgloss.Style
	Suggestion lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableFixable   lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	// Width is the terminal width used to clip source lines. Zero disables clipping.
	Width int
}

// ANSI 256 palette entries.
const (
	colorSilver = "7"
	colorGray   = "8"
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorBlue   = "12"
	colorCyan   = "14"
)

// look describes a style independent of whether color is enabled.
type look struct {
	fg                      string
	bold, italic, underline bool
}

// style renders l as a lipgloss style. Without color every look is plain.
func (l look) style(colorEnabled bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !colorEnabled {
		return style
	}
	if l.fg != "" {
		style = style.Foreground(lipgloss.Color(l.fg))
	}
	return style.Bold(l.bold).Italic(l.italic).Underline(l.underline)
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	s := func(l look) lipgloss.Style { return l.style(colorEnabled) }

	return &Styles{
		Error:   s(look{fg: colorRed, bold: true}),
		Warning: s(look{fg: colorYellow, bold: true}),
		Info:    s(look{fg: colorBlue, bold: true}),

		FilePath:   s(look{bold: true}),
		Location:   s(look{fg: colorGray}),
		RuleID:     s(look{fg: colorGray}),
		Message:    s(look{}),
		Suggestion: s(look{fg: colorGreen, italic: true}),
		SourceLine: s(look{fg: colorSilver}),
		Caret:      s(look{fg: colorRed}),

		DiffHeader:  s(look{bold: true}),
		DiffHunk:    s(look{fg: colorCyan}),
		DiffAdd:     s(look{fg: colorGreen}),
		DiffRemove:  s(look{fg: colorRed}),
		DiffContext: s(look{fg: colorGray}),

		SummaryTitle: s(look{bold: true}),
		SummaryValue: s(look{}),
		Success:      s(look{fg: colorGreen, bold: true}),
		Failure:      s(look{fg: colorRed, bold: true}),

		TableHeader:    s(look{bold: true, underline: true}),
		TableSeparator: s(look{fg: colorGray}),
		TableFixable:   s(look{fg: colorGreen, bold: true}),

		Dim:  s(look{fg: colorGray}),
		Bold: s(look{bold: true}),
	}
}

// NewStylesFor creates styles for writer, resolving the color mode and
// clipping source context to the terminal width when writer is a terminal.
func NewStylesFor(mode string, writer io.Writer) *Styles {
	styles := NewStyles(IsColorEnabled(mode, writer))
	styles.Width = TerminalWidth(writer)
	return styles
}

// IsColorEnabled resolves a --color mode for writer. "always" and "never"
// are absolute; any other mode is auto, which colors a terminal unless
// NO_COLOR is set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// TerminalWidth returns the column count of writer, or 0 when writer is not
// a terminal.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
