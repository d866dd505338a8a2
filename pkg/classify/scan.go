package classify

import (
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// LogicalOperatorBase is the base identity of logical operators inside expressions.
const LogicalOperatorBase = "logical_operator"

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	logicalOperators = map[string]bool{
		"and": true, "or": true, "nand": true, "nor": true, "xor": true, "xnor": true,
	}

	// boundaryWords never occur inside an expression. Reaching one while
	// looking for a delimiter means the delimiter is missing.
	boundaryWords = map[string]bool{
		"architecture": true, "begin": true, "case": true, "constant": true,
		"else": true, "elsif": true, "end": true, "entity": true,
		"function": true, "generate": true, "if": true, "is": true,
		"library": true, "loop": true, "package": true, "procedure": true,
		"process": true, "signal": true, "then": true, "use": true,
		"variable": true, "wait": true, "when": true,
	}

	// reservedWords cannot be labels or trailing end labels.
	reservedWords = map[string]bool{
		"after": true, "all": true, "assert": true, "block": true, "component": true,
		"configuration": true, "context": true, "exit": true, "for": true,
		"force": true, "generic": true, "impure": true, "in": true, "inertial": true,
		"next": true, "null": true, "others": true, "out": true, "port": true,
		"postponed": true, "pure": true, "reject": true, "release": true,
		"report": true, "return": true, "select": true, "transport": true,
		"unaffected": true, "while": true, "with": true,
	}
)

func isBoundary(tok vhdl.Token) bool {
	return tok.Kind == vhdl.KindWord && boundaryWords[tok.Lower()]
}

func isReserved(tok vhdl.Token) bool {
	if tok.Kind != vhdl.KindWord {
		return false
	}
	word := tok.Lower()
	return boundaryWords[word] || reservedWords[word] || logicalOperators[word]
}

// until tags an expression up to the first depth-zero terminator and returns
// the terminator's position without consuming it. Parentheses and commas get
// the owning base's open_parenthesis, close_parenthesis and comma subs,
// logical operators get logical_operator identities, and every other token
// gets other when it is not zero. A statement terminator, a boundary word or
// the end of the stream before a terminator is a GrammarError.
func (c *classifier) until(pos int, base string, other vhdl.ID, terms ...string) (int, error) {
	depth := 0
	for p := c.sig(pos); ; p = c.sig(p + 1) {
		if p >= c.len() {
			return p, c.expected(p, base, quoteAll(terms))
		}
		if depth == 0 && c.isAny(p, terms...) {
			return p, nil
		}

		tok := c.at(p)
		switch {
		case tok.IsSymbol("("):
			depth++
			c.tag(p, vhdl.ID{Base: base, Sub: vhdl.OpenParenthesis.Sub})
		case tok.IsSymbol(")"):
			if depth == 0 {
				return p, c.expected(p, base, quoteAll(terms))
			}
			depth--
			c.tag(p, vhdl.ID{Base: base, Sub: vhdl.CloseParenthesis.Sub})
		case tok.IsSymbol(","):
			c.tag(p, vhdl.ID{Base: base, Sub: vhdl.Comma.Sub})
		case tok.IsSymbol(";"), isBoundary(tok):
			return p, c.expected(p, base, quoteAll(terms))
		case tok.Kind == vhdl.KindWord && logicalOperators[tok.Lower()]:
			c.tag(p, vhdl.ID{Base: LogicalOperatorBase, Sub: tok.Lower()})
		default:
			c.tag(p, other)
		}
	}
}

// skipPast consumes the token at pos and everything up to and including the
// first depth-zero ';' or terminator. It stops before "begin" or "end" so that
// structural keywords are never swallowed. Nothing is tagged.
func (c *classifier) skipPast(pos int, terms ...string) int {
	depth := 0
	for p := c.sig(pos + 1); p < c.len(); p = c.sig(p + 1) {
		tok := c.at(p)
		switch {
		case tok.IsSymbol("("):
			depth++
		case tok.IsSymbol(")"):
			depth = max(depth-1, 0)
		case depth > 0:
		case tok.IsSymbol(";"), c.isAny(p, terms...):
			return p + 1
		case tok.IsWord("begin"), tok.IsWord("end"):
			return p
		}
	}
	return c.len()
}

// scanFor returns the first depth-zero position at or after pos holding one
// of texts. The scan gives up at a ';', a "begin" or "end", or the end of the
// stream, returning -1.
func (c *classifier) scanFor(pos int, texts ...string) int {
	depth := 0
	for p := c.sig(pos); p < c.len(); p = c.sig(p + 1) {
		tok := c.at(p)
		switch {
		case depth == 0 && c.isAny(p, texts...):
			return p
		case tok.IsSymbol("("):
			depth++
		case tok.IsSymbol(")"):
			depth = max(depth-1, 0)
		case depth > 0:
		case tok.IsSymbol(";"), tok.IsWord("begin"), tok.IsWord("end"):
			return -1
		}
	}
	return -1
}
