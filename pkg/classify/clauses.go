package classify

import "github.com/yaklabco/govsg/pkg/vhdl"

// Identities of context clauses.
//
//nolint:gochecknoglobals // Fixed identity values.
var (
	LibraryKeyword   = vhdl.ID{Base: "library_clause", Sub: "keyword"}
	LibrarySemicolon = vhdl.ID{Base: "library_clause", Sub: "semicolon"}
	LogicalName      = vhdl.ID{Base: "logical_name_list", Sub: "logical_name"}
	LogicalNameComma = vhdl.ID{Base: "logical_name_list", Sub: "comma"}

	UseKeyword      = vhdl.ID{Base: "use_clause", Sub: "keyword"}
	UseSelectedName = vhdl.ID{Base: "use_clause", Sub: "selected_name"}
	UseComma        = vhdl.ID{Base: "use_clause", Sub: "comma"}
	UseSemicolon    = vhdl.ID{Base: "use_clause", Sub: "semicolon"}

	ContextKeyword      = vhdl.ID{Base: "context_reference", Sub: "keyword"}
	ContextSelectedName = vhdl.ID{Base: "context_reference", Sub: "selected_name"}
	ContextComma        = vhdl.ID{Base: "context_reference", Sub: "comma"}
	ContextSemicolon    = vhdl.ID{Base: "context_reference", Sub: "semicolon"}
)

// libraryClause classifies "library name {, name} ;".
func (c *classifier) libraryClause(pos int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.tag(pos, LibraryKeyword)
	p := pos + 1
	for {
		name := c.sig(p)
		if name >= c.len() || c.at(name).Kind != vhdl.KindWord || isReserved(c.at(name)) {
			return name, c.expected(name, LibraryKeyword.Base, "logical name")
		}
		c.tag(name, LogicalName)
		p = name + 1

		comma := c.sig(p)
		if !c.is(comma, ",") {
			break
		}
		c.tag(comma, LogicalNameComma)
		p = comma + 1
	}

	return c.required(p, ";", LibrarySemicolon)
}

// useClause classifies "use selected_name {, selected_name} ;".
func (c *classifier) useClause(pos int) (int, error) {
	return c.selectedNameList(pos, UseKeyword, UseSelectedName, UseComma, UseSemicolon)
}

// contextReference classifies "context selected_name {, selected_name} ;".
func (c *classifier) contextReference(pos int) (int, error) {
	return c.selectedNameList(pos, ContextKeyword, ContextSelectedName, ContextComma, ContextSemicolon)
}

func (c *classifier) selectedNameList(pos int, keyword, name, comma, semicolon vhdl.ID) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.tag(pos, keyword)
	p := pos + 1
	for {
		var end int
		end, err = c.until(p, keyword.Base, name, ",", ";")
		if err != nil {
			return end, err
		}
		if end == c.sig(p) {
			return end, c.expected(end, keyword.Base, "selected name")
		}
		if !c.is(end, ",") {
			p = end
			break
		}
		c.tag(end, comma)
		p = end + 1
	}

	return c.required(p, ";", semicolon)
}
