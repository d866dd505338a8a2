package rules

import (
	"embed"
	"fmt"

	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/ruledoc"
)

//go:embed docs/*.md
var docs embed.FS

// All returns a fresh instance of every built-in rule.
func All() []lint.Rule {
	return []lint.Rule{
		// Blank lines.
		NewLibraryBlankLineRule(),            // library_100
		NewUseClauseBlankLineRule(),          // use_clause_100
		NewProcessBeginBlankLineRule(),       // process_100
		NewProcessEndBlankLineRule(),         // process_101
		NewSignalAssignmentBlankLineRule(),   // sequential_100
		NewVariableAssignmentBlankLineRule(), // variable_assignment_100
		NewLoopBlankLineRule(),               // loop_statement_100
		NewEndLoopBlankLineRule(),            // loop_statement_101
		NewIfBlankLineRule(),                 // if_100
		NewCaseBlankLineRule(),               // case_100
		NewCaseAlternativeBlankLineRule(),    // case_101

		// Keyword case.
		NewLibraryCaseRule(),         // library_500
		NewUseClauseCaseRule(),       // use_clause_500
		NewContextCaseRule(),         // context_500
		NewProcessCaseRule(),         // process_500
		NewLoopCaseRule(),            // loop_statement_500
		NewIfCaseRule(),              // if_500
		NewCaseCaseRule(),            // case_500
		NewDelayMechanismCaseRule(),  // delay_mechanism_500
		NewWaveformCaseRule(),        // waveform_500
		NewForceCaseRule(),           // force_500
		NewLogicalOperatorCaseRule(), // logical_operator_500
	}
}

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.MustRegister(All()...)
}

// Doc returns the parsed documentation of the rule with the given ID.
func Doc(id string) (*ruledoc.Doc, error) {
	src, err := docs.ReadFile("docs/" + id + ".md")
	if err != nil {
		return nil, fmt.Errorf("no documentation for rule %q: %w", id, err)
	}
	doc, err := ruledoc.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("rule %q documentation: %w", id, err)
	}
	return doc, nil
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
