package rules

import (
	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// logicalOperator is the index bucket holding every logical operator.
//
//nolint:gochecknoglobals // Fixed identity value.
var logicalOperator = vhdl.ID{Base: classify.LogicalOperatorBase, Sub: classify.LogicalOperatorBase}

func keywordCase(id, name, desc, production string, targets ...vhdl.ID) *lint.TokenCase {
	return lint.NewTokenCase(lint.NewBaseRule(id, name, desc, tagCase, production), targets...)
}

// NewLibraryCaseRule creates library_500.
func NewLibraryCaseRule() *lint.TokenCase {
	return keywordCase("library_500", "library-keyword-case",
		"The library keyword must be lowercase", "library",
		classify.LibraryKeyword)
}

// NewUseClauseCaseRule creates use_clause_500.
func NewUseClauseCaseRule() *lint.TokenCase {
	return keywordCase("use_clause_500", "use-keyword-case",
		"The use keyword must be lowercase", "use_clause",
		classify.UseKeyword)
}

// NewContextCaseRule creates context_500.
func NewContextCaseRule() *lint.TokenCase {
	return keywordCase("context_500", "context-keyword-case",
		"The context keyword must be lowercase", "context",
		classify.ContextKeyword)
}

// NewProcessCaseRule creates process_500.
func NewProcessCaseRule() *lint.TokenCase {
	return keywordCase("process_500", "process-keyword-case",
		"Process keywords must be lowercase", "process",
		classify.ProcessPostponed, classify.ProcessKeyword, classify.ProcessIs,
		classify.ProcessBegin, classify.ProcessEnd, classify.ProcessEndPostponed,
		classify.ProcessEndProcess)
}

// NewLoopCaseRule creates loop_statement_500.
func NewLoopCaseRule() *lint.TokenCase {
	return keywordCase("loop_statement_500", "loop-keyword-case",
		"Loop keywords must be lowercase", "loop_statement",
		classify.WhileKeyword, classify.ForKeyword, classify.ParameterIn,
		classify.LoopKeyword, classify.LoopEnd, classify.LoopEndLoop)
}

// NewIfCaseRule creates if_500.
func NewIfCaseRule() *lint.TokenCase {
	return keywordCase("if_500", "if-keyword-case",
		"If statement keywords must be lowercase", "if_statement",
		classify.IfKeyword, classify.IfThen, classify.IfElsif, classify.IfElse,
		classify.IfEnd, classify.IfEndIf)
}

// NewCaseCaseRule creates case_500.
func NewCaseCaseRule() *lint.TokenCase {
	return keywordCase("case_500", "case-keyword-case",
		"Case statement keywords must be lowercase", "case_statement",
		classify.CaseKeyword, classify.CaseIs, classify.WhenKeyword,
		classify.CaseEnd, classify.CaseEndCase)
}

// NewDelayMechanismCaseRule creates delay_mechanism_500.
func NewDelayMechanismCaseRule() *lint.TokenCase {
	return keywordCase("delay_mechanism_500", "delay-mechanism-case",
		"The transport, reject and inertial keywords must be lowercase", "delay_mechanism",
		classify.TransportKeyword, classify.RejectKeyword, classify.InertialKeyword)
}

// NewWaveformCaseRule creates waveform_500.
func NewWaveformCaseRule() *lint.TokenCase {
	return keywordCase("waveform_500", "waveform-keyword-case",
		"The after and unaffected keywords must be lowercase", "waveform",
		classify.AfterKeyword, classify.UnaffectedKeyword)
}

// NewForceCaseRule creates force_500.
func NewForceCaseRule() *lint.TokenCase {
	return keywordCase("force_500", "force-keyword-case",
		"Force and release keywords must be lowercase", "force",
		classify.ForceKeyword, classify.ForceMode, classify.ReleaseKeyword, classify.ReleaseMode)
}

// NewLogicalOperatorCaseRule creates logical_operator_500.
func NewLogicalOperatorCaseRule() *lint.TokenCase {
	return keywordCase("logical_operator_500", "logical-operator-case",
		"Logical operators must be lowercase", "logical_operator",
		logicalOperator)
}
