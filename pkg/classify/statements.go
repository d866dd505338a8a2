package classify

import "github.com/yaklabco/govsg/pkg/vhdl"

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	// skippedStatements start statements and declarations that are not
	// classified. They are skipped to their terminating ';'.
	skippedStatements = map[string]bool{
		"alias": true, "assert": true, "attribute": true, "constant": true,
		"disconnect": true, "exit": true, "file": true, "generic": true,
		"group": true, "next": true, "null": true, "port": true,
		"report": true, "return": true, "shared": true, "signal": true,
		"subtype": true, "type": true, "variable": true, "wait": true,
		"with": true,
	}

	// headerKeywords open a design unit or block whose header ends in "is".
	headerKeywords = map[string]bool{
		"architecture": true, "block": true, "component": true,
		"configuration": true, "entity": true, "function": true,
		"impure": true, "package": true, "procedure": true, "pure": true,
	}
)

// concurrentStatement classifies one statement of a design unit and returns the
// position after it. Structure outside processes is scanned flat: unknown
// constructs and unmatched "end" clauses are skipped, never rejected.
func (c *classifier) concurrentStatement(pos int) (int, error) {
	p := c.sig(pos)
	if p >= c.len() {
		return c.len(), nil
	}

	label := -1
	if next, ok := c.labelAt(p); ok {
		label = p
		p = c.sig(next)
		if p >= c.len() {
			return c.len(), nil
		}
	}

	tok := c.at(p)
	word := ""
	if tok.Kind == vhdl.KindWord {
		word = tok.Lower()
	}

	switch {
	case word == "library":
		return c.libraryClause(p)
	case word == "use":
		return c.useClause(p)
	case word == "context":
		if end := c.scanFor(p+1, "is", ";"); end >= 0 && c.is(end, ";") {
			return c.contextReference(p)
		}
		return c.skipPast(p, "is"), nil
	case word == "process", word == "postponed" && c.is(c.sig(p+1), "process"):
		return c.processStatement(label, p)
	case word == "for", word == "while":
		if c.detectLoop(p) {
			return c.loopStatement(label, p)
		}
		return c.skipPast(p, "generate"), nil
	case word == "loop":
		return c.loopStatement(label, p)
	case word == "if":
		if end := c.scanFor(p+1, "then", "generate"); end >= 0 && c.is(end, "then") {
			return c.ifStatement(label, p)
		}
		return c.skipPast(p, "generate"), nil
	case word == "case":
		if end := c.scanFor(p+1, "is", "generate"); end >= 0 && c.is(end, "is") {
			return c.caseStatement(label, p)
		}
		return c.skipPast(p, "generate"), nil
	case word == "elsif":
		return c.skipPast(p, "generate"), nil
	case word == "when":
		return c.skipPast(p, "=>"), nil
	case word == "end":
		return c.skipPast(p), nil
	case word == "begin", word == "is", word == "else", word == "generate", word == "postponed":
		return p + 1, nil
	case headerKeywords[word]:
		return c.skipPast(p, "is"), nil
	case skippedStatements[word]:
		return c.skipPast(p), nil
	}

	return c.assignmentOrSkip(p, concurrentSignalBase)
}

// sequentialStatements classifies statements until one that closes the
// enclosing construct and returns the position of that closing token.
func (c *classifier) sequentialStatements(pos int) (int, error) {
	for {
		p := c.sig(pos)
		if p >= c.len() || c.closesBlock(p) {
			return p, nil
		}
		next, err := c.sequentialStatement(p)
		if err != nil {
			return next, err
		}
		pos = next
	}
}

// closesBlock reports whether the token at pos ends a sequence of statements.
func (c *classifier) closesBlock(pos int) bool {
	return c.isAny(pos, "end", "elsif", "else", "when", "begin", "process")
}

// sequentialStatement classifies one statement inside a process or subprogram body.
func (c *classifier) sequentialStatement(p int) (int, error) {
	label := -1
	if next, ok := c.labelAt(p); ok {
		label = p
		p = c.sig(next)
		if p >= c.len() || c.closesBlock(p) {
			return p, nil
		}
	}

	tok := c.at(p)
	word := ""
	if tok.Kind == vhdl.KindWord {
		word = tok.Lower()
	}

	switch {
	case word == "if":
		return c.ifStatement(label, p)
	case word == "case":
		return c.caseStatement(label, p)
	case word == "for", word == "while", word == "loop":
		return c.loopStatement(label, p)
	case skippedStatements[word]:
		return c.skipPast(p), nil
	}

	return c.assignmentOrSkip(p, sequentialSignalBase)
}

// declarations skips a declarative part and returns the position of its "begin".
// Subprogram bodies inside it are descended into so their own "begin" and
// "end" do not end the region early.
func (c *classifier) declarations(pos int, production string) (int, error) {
	for {
		p := c.sig(pos)
		switch {
		case p >= c.len():
			return p, c.expected(p, production, quote("begin"))
		case c.is(p, "begin"):
			return p, nil
		case c.isAny(p, "function", "procedure", "pure", "impure"):
			next, err := c.subprogram(p, production)
			if err != nil {
				return next, err
			}
			pos = next
		default:
			pos = c.skipPast(p)
		}
	}
}

// subprogram skips a subprogram declaration or classifies the statements of
// a subprogram body.
func (c *classifier) subprogram(pos int, production string) (int, error) {
	end := c.scanFor(pos+1, "is", ";")
	if end < 0 {
		return c.skipPast(pos), nil
	}
	if c.is(end, ";") || c.is(c.sig(end+1), "new") {
		return c.skipPast(pos), nil
	}

	p, err := c.declarations(end+1, production)
	if err != nil {
		return p, err
	}
	p, err = c.sequentialStatements(p + 1)
	if err != nil {
		return p, err
	}
	if !c.is(p, "end") {
		return p, c.expected(p, production, quote("end"))
	}
	return c.skipPast(p), nil
}
