// Package classify assigns grammar identities to the tokens of a VHDL stream.
//
// Classification is a recursive descent over the statement structure of a
// file. Each production first detects, with lookahead bounded by the next
// statement terminator, whether it (or an alternate) applies, then tags its
// tokens left to right until every required delimiter is found. Constructs
// the classifier does not model are skipped untagged; the classifier does not
// validate that a file is grammatically complete.
//
// A production that cannot find a required delimiter before a hard boundary
// fails with a *GrammarError and leaves none of its tokens tagged.
package classify

import (
	"strings"

	"github.com/yaklabco/govsg/pkg/vhdl"
)

// Classify tags every recognized production in stream.
// Tokens already tagged by the lexer (whitespace, comments, line breaks and
// blank lines) are left unchanged.
func Classify(stream *vhdl.Stream) error {
	c := &classifier{stream: stream}
	for pos := 0; pos < stream.Len(); {
		next, err := c.concurrentStatement(pos)
		if err != nil {
			return err
		}
		pos = next
	}
	return nil
}

// journalEntry records the identity a token had before it was tagged.
type journalEntry struct {
	pos  int
	prev vhdl.ID
}

// classifier holds the cursor helpers and the rollback journal.
type classifier struct {
	stream  *vhdl.Stream
	journal []journalEntry
}

func (c *classifier) len() int {
	return c.stream.Len()
}

func (c *classifier) at(pos int) vhdl.Token {
	return c.stream.At(pos)
}

// sig returns the first position at or after pos holding a significant token,
// or the stream length when none remains.
func (c *classifier) sig(pos int) int {
	for pos < c.len() && c.at(pos).IsTrivia() {
		pos++
	}
	return pos
}

// is reports whether the token at pos is the word or delimiter text.
func (c *classifier) is(pos int, text string) bool {
	if pos < 0 || pos >= c.len() {
		return false
	}
	tok := c.at(pos)
	return tok.IsWord(text) || tok.IsSymbol(text)
}

func (c *classifier) isAny(pos int, texts ...string) bool {
	for _, text := range texts {
		if c.is(pos, text) {
			return true
		}
	}
	return false
}

// tag assigns id to the token at pos and journals the previous identity.
func (c *classifier) tag(pos int, id vhdl.ID) {
	if id.IsZero() {
		return
	}
	c.journal = append(c.journal, journalEntry{pos: pos, prev: c.at(pos).ID})
	c.stream.SetID(pos, id)
}

// mark returns a journal checkpoint.
func (c *classifier) mark() int {
	return len(c.journal)
}

// rollback restores every identity assigned since mark.
func (c *classifier) rollback(mark int) {
	for i := len(c.journal) - 1; i >= mark; i-- {
		entry := c.journal[i]
		c.stream.SetID(entry.pos, entry.prev)
	}
	c.journal = c.journal[:mark]
}

// required tags the next significant token, which must be text.
func (c *classifier) required(pos int, text string, id vhdl.ID) (int, error) {
	p := c.sig(pos)
	if !c.is(p, text) {
		return p, c.expected(p, id.Base, quote(text))
	}
	c.tag(p, id)
	return p + 1, nil
}

// optional tags the next significant token when it is text.
// Otherwise the cursor is returned unchanged.
func (c *classifier) optional(pos int, text string, id vhdl.ID) int {
	p := c.sig(pos)
	if !c.is(p, text) {
		return pos
	}
	c.tag(p, id)
	return p + 1
}

// optionalLabel tags a trailing label such as the one in "end loop outer;".
func (c *classifier) optionalLabel(pos int, id vhdl.ID) int {
	p := c.sig(pos)
	if p >= c.len() || c.at(p).Kind != vhdl.KindWord || isReserved(c.at(p)) {
		return pos
	}
	c.tag(p, id)
	return p + 1
}

// expected builds a GrammarError at pos.
func (c *classifier) expected(pos int, production, what string) *GrammarError {
	err := &GrammarError{Production: production, Expected: what, Position: pos}
	switch {
	case pos < c.len():
		err.Found = c.at(pos).Text
		err.Line = c.at(pos).Line
	case c.len() > 0:
		err.Line = c.at(c.len() - 1).Line
	default:
		err.Line = 1
	}
	return err
}

// labelAt reports whether pos starts a statement label "name :" and returns
// the position after the colon.
func (c *classifier) labelAt(pos int) (int, bool) {
	if pos >= c.len() {
		return pos, false
	}
	tok := c.at(pos)
	if tok.Kind != vhdl.KindWord || isReserved(tok) {
		return pos, false
	}
	colon := c.sig(pos + 1)
	if !c.is(colon, ":") {
		return pos, false
	}
	return colon + 1, true
}

// tagLabel tags a leading "name :" pair when label is a valid position.
func (c *classifier) tagLabel(label int, base, sub string) {
	if label < 0 {
		return
	}
	c.tag(label, vhdl.ID{Base: base, Sub: sub})
	c.tag(c.sig(label+1), vhdl.ID{Base: base, Sub: "label_colon"})
}

func quote(text string) string {
	return "'" + text + "'"
}

func quoteAll(texts []string) string {
	quoted := make([]string, len(texts))
	for i, text := range texts {
		quoted[i] = quote(text)
	}
	return strings.Join(quoted, " or ")
}
