package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/govsg/internal/configloader"
	"github.com/yaklabco/govsg/internal/ui/pretty"
)

// helpColumnGap separates the name column from descriptions.
const helpColumnGap = 3

// helpTemplate lays out help for every command. Sections holding name and
// description pairs are rendered by rows so they align.
const helpTemplate = `{{with (or .Long .Short)}}{{trim .}}

{{end}}{{heading "Usage:"}}
{{- if .Runnable}}
  {{command .UseLine}}{{end}}
{{- if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}
{{- if .HasExample}}

{{heading "Examples:"}}
{{example .Example}}{{end}}
{{- if .HasAvailableSubCommands}}

{{heading "Commands:"}}
{{commands .}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}
{{- if not .HasParent}}

{{heading "Environment:"}}
{{env}}{{end}}
{{- if .HasAvailableSubCommands}}

Run "{{command .CommandPath}} [command] --help" for details on a command.{{end}}
`

type helpStyles struct {
	heading lipgloss.Style
	command lipgloss.Style
	name    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{heading: plain, command: plain, name: plain, dim: plain}
	}
	return helpStyles{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// helpRow is one aligned name and description line.
type helpRow struct {
	name, desc string
}

// installHelp renders help and usage for cmd and its subcommands. The
// --color flag is read when help is shown, so it applies to help output.
func installHelp(cmd *cobra.Command) {
	render := func(command *cobra.Command) error {
		mode := "auto"
		if flag := command.Flag("color"); flag != nil {
			mode = flag.Value.String()
		}
		styles := newHelpStyles(pretty.IsColorEnabled(mode, command.OutOrStdout()))

		tmpl, err := template.New("help").Funcs(styles.funcs()).Parse(helpTemplate)
		if err != nil {
			return fmt.Errorf("parse help template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	}

	cmd.SetUsageFunc(render)
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (s helpStyles) funcs() template.FuncMap {
	return template.FuncMap{
		"heading": s.heading.Render,
		"command": s.command.Render,
		"example": s.dim.Render,
		"trim":    trimLines,
		"commands": func(cmd *cobra.Command) string {
			var rows []helpRow
			for _, sub := range cmd.Commands() {
				if sub.IsAvailableCommand() || sub.Name() == "help" {
					rows = append(rows, helpRow{sub.Name(), sub.Short})
				}
			}
			return s.rows(rows)
		},
		"flags": func(flags *pflag.FlagSet) string {
			var rows []helpRow
			flags.VisitAll(func(flag *pflag.Flag) {
				if !flag.Hidden {
					rows = append(rows, flagRow(flag))
				}
			})
			return s.rows(rows)
		},
		"env": func() string {
			vars := configloader.ListEnvVars()
			rows := make([]helpRow, 0, len(vars))
			for name, desc := range vars {
				rows = append(rows, helpRow{name, desc})
			}
			sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })
			return s.rows(rows)
		},
	}
}

// rows renders rows indented with their descriptions in one column.
func (s helpStyles) rows(rows []helpRow) string {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.name))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(row.name)+helpColumnGap)
		lines = append(lines, "  "+s.name.Render(row.name)+pad+row.desc)
	}
	return strings.Join(lines, "\n")
}

// flagRow formats a flag as "-s, --name type" with its usage and default.
func flagRow(flag *pflag.Flag) helpRow {
	name := "    --" + flag.Name
	if flag.Shorthand != "" {
		name = "-" + flag.Shorthand + ", --" + flag.Name
	}

	varname, usage := pflag.UnquoteUsage(flag)
	if varname != "" {
		name += " " + varname
	}

	switch flag.DefValue {
	case "", "false", "0", "[]":
	default:
		if flag.Value.Type() == "string" {
			usage += fmt.Sprintf(" (default %q)", flag.DefValue)
		} else {
			usage += " (default " + flag.DefValue + ")"
		}
	}
	return helpRow{name: name, desc: usage}
}

func trimLines(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
