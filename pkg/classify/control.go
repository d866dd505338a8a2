package classify

import "github.com/yaklabco/govsg/pkg/vhdl"

const (
	loopBase        = "loop_statement"
	iterationBase   = "iteration_scheme"
	parameterBase   = "parameter_specification"
	ifBase          = "if_statement"
	caseBase        = "case_statement"
	alternativeBase = "case_statement_alternative"
)

// Identities of loop, if and case statements.
//
//nolint:gochecknoglobals // Fixed identity values.
var (
	LoopLabel     = vhdl.ID{Base: loopBase, Sub: "loop_label"}
	LoopKeyword   = vhdl.ID{Base: loopBase, Sub: "loop_keyword"}
	LoopEnd       = vhdl.ID{Base: loopBase, Sub: "end_keyword"}
	LoopEndLoop   = vhdl.ID{Base: loopBase, Sub: "end_loop_keyword"}
	LoopEndLabel  = vhdl.ID{Base: loopBase, Sub: "end_loop_label"}
	LoopSemicolon = vhdl.ID{Base: loopBase, Sub: "semicolon"}

	WhileKeyword        = vhdl.ID{Base: iterationBase, Sub: "while_keyword"}
	ForKeyword          = vhdl.ID{Base: iterationBase, Sub: "for_keyword"}
	ParameterIdentifier = vhdl.ID{Base: parameterBase, Sub: "identifier"}
	ParameterIn         = vhdl.ID{Base: parameterBase, Sub: "in_keyword"}

	IfLabel     = vhdl.ID{Base: ifBase, Sub: "if_label"}
	IfKeyword   = vhdl.ID{Base: ifBase, Sub: "if_keyword"}
	IfThen      = vhdl.ID{Base: ifBase, Sub: "then_keyword"}
	IfElsif     = vhdl.ID{Base: ifBase, Sub: "elsif_keyword"}
	IfElse      = vhdl.ID{Base: ifBase, Sub: "else_keyword"}
	IfEnd       = vhdl.ID{Base: ifBase, Sub: "end_keyword"}
	IfEndIf     = vhdl.ID{Base: ifBase, Sub: "end_if_keyword"}
	IfEndLabel  = vhdl.ID{Base: ifBase, Sub: "end_if_label"}
	IfSemicolon = vhdl.ID{Base: ifBase, Sub: "semicolon"}

	CaseLabel     = vhdl.ID{Base: caseBase, Sub: "case_label"}
	CaseKeyword   = vhdl.ID{Base: caseBase, Sub: "case_keyword"}
	CaseIs        = vhdl.ID{Base: caseBase, Sub: "is_keyword"}
	CaseEnd       = vhdl.ID{Base: caseBase, Sub: "end_keyword"}
	CaseEndCase   = vhdl.ID{Base: caseBase, Sub: "end_case_keyword"}
	CaseEndLabel  = vhdl.ID{Base: caseBase, Sub: "end_case_label"}
	CaseSemicolon = vhdl.ID{Base: caseBase, Sub: "semicolon"}
	WhenKeyword   = vhdl.ID{Base: alternativeBase, Sub: "when_keyword"}
	WhenArrow     = vhdl.ID{Base: alternativeBase, Sub: "assignment"}
)

// detectLoop reports whether the "for" or "while" at pos opens a loop
// rather than a generate statement.
func (c *classifier) detectLoop(pos int) bool {
	end := c.scanFor(pos+1, "loop", "generate")
	return end >= 0 && c.is(end, "loop")
}

// loopStatement classifies
//
//	[label :] [while condition | for identifier in range] loop
//	    statements
//	end loop [label] ;
func (c *classifier) loopStatement(label, pos int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.tagLabel(label, loopBase, LoopLabel.Sub)

	p := pos
	switch {
	case c.is(p, "while"):
		c.tag(p, WhileKeyword)
		if p, err = c.until(p+1, iterationBase, vhdl.ID{}, "loop"); err != nil {
			return p, err
		}
	case c.is(p, "for"):
		c.tag(p, ForKeyword)
		ident := c.sig(p + 1)
		if ident >= c.len() || c.at(ident).Kind != vhdl.KindWord {
			return ident, c.expected(ident, parameterBase, "loop parameter")
		}
		c.tag(ident, ParameterIdentifier)
		if p, err = c.required(ident+1, "in", ParameterIn); err != nil {
			return p, err
		}
		if p, err = c.until(p, parameterBase, vhdl.ID{}, "loop"); err != nil {
			return p, err
		}
	}

	if p, err = c.required(p, "loop", LoopKeyword); err != nil {
		return p, err
	}
	if p, err = c.sequentialStatements(p); err != nil {
		return p, err
	}
	if p, err = c.required(p, "end", LoopEnd); err != nil {
		return p, err
	}
	if p, err = c.required(p, "loop", LoopEndLoop); err != nil {
		return p, err
	}
	p = c.optionalLabel(p, LoopEndLabel)

	return c.required(p, ";", LoopSemicolon)
}

// ifStatement classifies
//
//	[label :] if condition then statements
//	{ elsif condition then statements }
//	[ else statements ]
//	end if [label] ;
func (c *classifier) ifStatement(label, pos int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.tagLabel(label, ifBase, IfLabel.Sub)
	c.tag(pos, IfKeyword)

	p := pos + 1
	for {
		if p, err = c.until(p, ifBase, vhdl.ID{}, "then"); err != nil {
			return p, err
		}
		c.tag(p, IfThen)
		if p, err = c.sequentialStatements(p + 1); err != nil {
			return p, err
		}
		if !c.is(p, "elsif") {
			break
		}
		c.tag(p, IfElsif)
		p++
	}

	if c.is(p, "else") {
		c.tag(p, IfElse)
		if p, err = c.sequentialStatements(p + 1); err != nil {
			return p, err
		}
	}

	if p, err = c.required(p, "end", IfEnd); err != nil {
		return p, err
	}
	if p, err = c.required(p, "if", IfEndIf); err != nil {
		return p, err
	}
	p = c.optionalLabel(p, IfEndLabel)

	return c.required(p, ";", IfSemicolon)
}

// caseStatement classifies
//
//	[label :] case expression is
//	    when choices => statements
//	    { when choices => statements }
//	end case [label] ;
func (c *classifier) caseStatement(label, pos int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.tagLabel(label, caseBase, CaseLabel.Sub)
	c.tag(pos, CaseKeyword)

	p, err := c.until(pos+1, caseBase, vhdl.ID{}, "is")
	if err != nil {
		return p, err
	}
	c.tag(p, CaseIs)
	p++

	for {
		when := c.sig(p)
		if !c.is(when, "when") {
			break
		}
		c.tag(when, WhenKeyword)
		if p, err = c.until(when+1, alternativeBase, vhdl.ID{}, "=>"); err != nil {
			return p, err
		}
		c.tag(p, WhenArrow)
		if p, err = c.sequentialStatements(p + 1); err != nil {
			return p, err
		}
	}

	if p, err = c.required(p, "end", CaseEnd); err != nil {
		return p, err
	}
	if p, err = c.required(p, "case", CaseEndCase); err != nil {
		return p, err
	}
	p = c.optionalLabel(p, CaseEndLabel)

	return c.required(p, ";", CaseSemicolon)
}
