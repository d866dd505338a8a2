package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/internal/ui/pretty"
	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
	"github.com/yaklabco/govsg/pkg/ruledoc"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	tag        string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Fixable     bool     `json:"fixable"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules [rule]",
		Short: "List rules or show the documentation of one rule",
		Long: `List all available rules with their IDs, descriptions, default
severity, and whether they support auto-fixing.

With a rule ID or name, print that rule's documentation: its options and
the violation and fix examples.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showRuleDoc(cmd, args[0])
			}

			selected := lint.DefaultRegistry.Rules()
			if flags.tag != "" {
				selected = lint.DefaultRegistry.ByTag(flags.tag)
			}

			if flags.format == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), selected)
			}

			logger := logging.NewInteractive()
			if len(selected) == 0 {
				logger.Info("no rules match", "tag", flags.tag)
				return nil
			}

			logger.Info("available rules")

			ruleFormat := config.RuleFormat(flags.ruleFormat)

			for _, rule := range selected {
				fixable := "-"
				if rule.CanFix() {
					fixable = "yes"
				}

				logger.Info(config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldFixable, fixable,
					"enabled", rule.DefaultEnabled(),
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "id",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.tag, "tag", "",
		"only list rules with this tag (e.g. blank_line, keyword_case, process)")

	return cmd
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, selected []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(selected))
	for _, rule := range selected {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Fixable:     rule.CanFix(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// showRuleDoc prints the embedded documentation of the rule named key.
func showRuleDoc(cmd *cobra.Command, key string) error {
	rule, ok := lint.DefaultRegistry.Get(key)
	if !ok {
		return fmt.Errorf("unknown rule %q", key)
	}

	doc, err := rules.Doc(rule.ID())
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	writeRuleDoc(out, pretty.NewStylesFor(colorMode, out), rule, doc)
	return nil
}

func writeRuleDoc(w io.Writer, styles *pretty.Styles, rule lint.Rule, doc *ruledoc.Doc) {
	fmt.Fprintf(w, "%s %s\n", styles.RuleID.Render(rule.ID()), styles.Bold.Render(doc.Title))
	fmt.Fprintf(w, "%s\n", styles.Dim.Render(fmt.Sprintf("name: %s  severity: %s  enabled: %t  tags: %s",
		rule.Name(), rule.DefaultSeverity(), rule.DefaultEnabled(), strings.Join(rule.Tags(), ", "))))

	if doc.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", doc.Summary)
	}

	if len(doc.Options) > 0 {
		fmt.Fprintf(w, "\n%s\n", styles.SummaryTitle.Render("Options"))
		for _, option := range doc.Options {
			fmt.Fprintf(w, "  - %s\n", option)
		}
	}

	for i, example := range doc.Examples {
		fmt.Fprintf(w, "\n%s\n", styles.SummaryTitle.Render(fmt.Sprintf("Example %d", i+1)))
		writeExample(w, styles.DiffRemove, "- ", example.Violation)
		writeExample(w, styles.DiffAdd, "+ ", example.Fix)
	}
}

func writeExample(w io.Writer, style lipgloss.Style, prefix, code string) {
	for _, line := range strings.Split(strings.TrimSuffix(code, "\n"), "\n") {
		fmt.Fprintln(w, style.Render(prefix+line))
	}
}
