package rules

import (
	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

const (
	tagBlankLine = "blank_line"
	tagCase      = "keyword_case"
)

// closers start the lines that end a sequence of statements. A statement
// directly above one of them needs no blank line.
//
//nolint:gochecknoglobals // Read-only category set.
var closers = []vhdl.ID{
	classify.IfElsif, classify.IfElse, classify.IfEnd,
	classify.WhenKeyword, classify.CaseEnd,
	classify.LoopEnd,
	classify.ProcessEnd,
	vhdl.Comment,
}

// assignmentTargets start the lines of simple assignments.
//
//nolint:gochecknoglobals // Read-only category set.
var assignmentTargets = []vhdl.ID{
	classify.WaveformTarget, classify.VariableTarget,
	classify.ForceTarget, classify.ReleaseTarget,
}

func processBody() *lint.Hierarchy {
	return &lint.Hierarchy{Start: classify.ProcessBegin, End: classify.ProcessEnd}
}

// NewLibraryBlankLineRule creates library_100: a library clause is followed
// by another context clause or a blank line.
func NewLibraryBlankLineRule() *lint.BlankLineBelow {
	rule := lint.NewBlankLineBelow(
		lint.NewBaseRule("library_100", "blank-line-below-library",
			"Library clauses must be followed by a context clause or a blank line",
			tagBlankLine, "library"),
		lint.RequireBlankLine,
		classify.LibrarySemicolon,
	)
	rule.Allow = []vhdl.ID{classify.LibraryKeyword, classify.UseKeyword, classify.ContextKeyword, vhdl.Comment}
	return rule
}

// NewUseClauseBlankLineRule creates use_clause_100.
func NewUseClauseBlankLineRule() *lint.BlankLineBelow {
	rule := lint.NewBlankLineBelow(
		lint.NewBaseRule("use_clause_100", "blank-line-below-use-clause",
			"Use clauses must be followed by a context clause or a blank line",
			tagBlankLine, "use_clause"),
		lint.RequireBlankLine,
		classify.UseSemicolon,
	)
	rule.Allow = []vhdl.ID{classify.LibraryKeyword, classify.UseKeyword, classify.ContextKeyword, vhdl.Comment}
	return rule
}

// NewProcessBeginBlankLineRule creates process_100.
func NewProcessBeginBlankLineRule() *lint.BlankLineBelow {
	return lint.NewBlankLineBelow(
		lint.NewBaseRule("process_100", "no-blank-line-below-process-begin",
			"The begin keyword of a process must not be followed by blank lines",
			tagBlankLine, "process"),
		lint.NoBlankLine,
		classify.ProcessBegin,
	)
}

// NewProcessEndBlankLineRule creates process_101. It is off by default
// because the line below a process is usually outside any classified
// construct.
func NewProcessEndBlankLineRule() *lint.BlankLineBelow {
	rule := lint.NewBlankLineBelow(
		lint.NewBaseRule("process_101", "blank-line-below-process",
			"A process must be followed by a blank line",
			tagBlankLine, "process").Disabled(),
		lint.RequireBlankLine,
		classify.ProcessSemicolon,
	)
	rule.Allow = []vhdl.ID{vhdl.Comment}
	return rule
}

// NewSignalAssignmentBlankLineRule creates sequential_100: inside a
// process, a signal assignment is followed by another assignment, a line
// closing the enclosing statement, or a blank line.
func NewSignalAssignmentBlankLineRule() *lint.BlankLineBelow {
	rule := lint.NewBlankLineBelow(
		lint.NewBaseRule("sequential_100", "blank-line-below-signal-assignment",
			"Signal assignments must be followed by an assignment, a closing keyword or a blank line",
			tagBlankLine, "sequential"),
		lint.RequireBlankLine,
		classify.WaveformSemicolon, classify.ForceSemicolon, classify.ReleaseSemicolon,
	)
	rule.Allow = append(append([]vhdl.ID{}, assignmentTargets...), closers...)
	rule.Hierarchy = processBody()
	return rule
}

// NewVariableAssignmentBlankLineRule creates variable_assignment_100.
func NewVariableAssignmentBlankLineRule() *lint.BlankLineBelow {
	rule := lint.NewBlankLineBelow(
		lint.NewBaseRule("variable_assignment_100", "blank-line-below-variable-assignment",
			"Variable assignments must be followed by an assignment, a closing keyword or a blank line",
			tagBlankLine, "variable_assignment"),
		lint.RequireBlankLine,
		classify.VariableSemicolon,
	)
	rule.Allow = append(append([]vhdl.ID{}, assignmentTargets...), closers...)
	rule.Hierarchy = processBody()
	return rule
}

// NewLoopBlankLineRule creates loop_statement_100.
func NewLoopBlankLineRule() *lint.BlankLineBelow {
	return lint.NewBlankLineBelow(
		lint.NewBaseRule("loop_statement_100", "no-blank-line-below-loop",
			"The loop keyword must not be followed by blank lines",
			tagBlankLine, "loop_statement"),
		lint.NoBlankLine,
		classify.LoopKeyword,
	)
}

// NewEndLoopBlankLineRule creates loop_statement_101.
func NewEndLoopBlankLineRule() *lint.BlankLineBelow {
	rule := lint.NewBlankLineBelow(
		lint.NewBaseRule("loop_statement_101", "blank-line-below-end-loop",
			"A loop must be followed by a closing keyword or a blank line",
			tagBlankLine, "loop_statement"),
		lint.RequireBlankLine,
		classify.LoopSemicolon,
	)
	rule.Allow = closers
	return rule
}

// NewIfBlankLineRule creates if_100.
func NewIfBlankLineRule() *lint.BlankLineBelow {
	return lint.NewBlankLineBelow(
		lint.NewBaseRule("if_100", "no-blank-line-below-then",
			"The then and else keywords must not be followed by blank lines",
			tagBlankLine, "if_statement"),
		lint.NoBlankLine,
		classify.IfThen, classify.IfElse,
	)
}

// NewCaseBlankLineRule creates case_100.
func NewCaseBlankLineRule() *lint.BlankLineBelow {
	return lint.NewBlankLineBelow(
		lint.NewBaseRule("case_100", "no-blank-line-below-case-is",
			"The is keyword of a case statement must not be followed by blank lines",
			tagBlankLine, "case_statement"),
		lint.NoBlankLine,
		classify.CaseIs,
	)
}

// NewCaseAlternativeBlankLineRule creates case_101.
func NewCaseAlternativeBlankLineRule() *lint.BlankLineBelow {
	return lint.NewBlankLineBelow(
		lint.NewBaseRule("case_101", "no-blank-line-below-when",
			"The arrow of a case alternative must not be followed by blank lines",
			tagBlankLine, "case_statement"),
		lint.NoBlankLine,
		classify.WhenArrow,
	)
}
