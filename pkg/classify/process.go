package classify

import "github.com/yaklabco/govsg/pkg/vhdl"

const (
	processBase     = "process_statement"
	sensitivityBase = "sensitivity_list"
)

// Identities of process statements.
//
//nolint:gochecknoglobals // Fixed identity values.
var (
	ProcessLabel            = vhdl.ID{Base: processBase, Sub: "process_label"}
	ProcessPostponed        = vhdl.ID{Base: processBase, Sub: "postponed_keyword"}
	ProcessKeyword          = vhdl.ID{Base: processBase, Sub: "process_keyword"}
	ProcessOpenParenthesis  = vhdl.ID{Base: processBase, Sub: "open_parenthesis"}
	ProcessCloseParenthesis = vhdl.ID{Base: processBase, Sub: "close_parenthesis"}
	ProcessIs               = vhdl.ID{Base: processBase, Sub: "is_keyword"}
	ProcessBegin            = vhdl.ID{Base: processBase, Sub: "begin_keyword"}
	ProcessEnd              = vhdl.ID{Base: processBase, Sub: "end_keyword"}
	ProcessEndPostponed     = vhdl.ID{Base: processBase, Sub: "end_postponed_keyword"}
	ProcessEndProcess       = vhdl.ID{Base: processBase, Sub: "end_process_keyword"}
	ProcessEndLabel         = vhdl.ID{Base: processBase, Sub: "end_process_label"}
	ProcessSemicolon        = vhdl.ID{Base: processBase, Sub: "semicolon"}

	SensitivitySignal = vhdl.ID{Base: sensitivityBase, Sub: "signal_name"}
)

// processStatement classifies
//
//	[label :] [postponed] process [( sensitivity )] [is]
//	    declarations
//	begin
//	    statements
//	end [postponed] process [label] ;
func (c *classifier) processStatement(label, pos int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.tagLabel(label, processBase, ProcessLabel.Sub)

	p := pos
	if c.is(p, "postponed") {
		c.tag(p, ProcessPostponed)
		p = c.sig(p + 1)
	}
	c.tag(p, ProcessKeyword)
	p++

	if open := c.sig(p); c.is(open, "(") {
		c.tag(open, ProcessOpenParenthesis)
		p, err = c.until(open+1, sensitivityBase, SensitivitySignal, ")")
		if err != nil {
			return p, err
		}
		c.tag(p, ProcessCloseParenthesis)
		p++
	}

	p = c.optional(p, "is", ProcessIs)

	if p, err = c.declarations(p, processBase); err != nil {
		return p, err
	}
	if p, err = c.required(p, "begin", ProcessBegin); err != nil {
		return p, err
	}
	if p, err = c.sequentialStatements(p); err != nil {
		return p, err
	}
	if p, err = c.required(p, "end", ProcessEnd); err != nil {
		return p, err
	}
	p = c.optional(p, "postponed", ProcessEndPostponed)
	if p, err = c.required(p, "process", ProcessEndProcess); err != nil {
		return p, err
	}
	p = c.optionalLabel(p, ProcessEndLabel)

	return c.required(p, ";", ProcessSemicolon)
}
