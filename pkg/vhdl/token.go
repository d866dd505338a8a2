// Package vhdl provides the token model for govsg.
// It defines the lexical token, its grammar identity, the mutable token
// stream owned by a file, and a lossless lexer producing that stream.
package vhdl

import "strings"

// Kind is the lexical category of a token, assigned by the lexer.
type Kind uint8

// Lexical kinds. Every byte of the source belongs to exactly one token.
const (
	KindWord       Kind = iota // identifiers and reserved words
	KindNumber                 // decimal and based literals
	KindString                 // "..." string literals
	KindCharacter              // 'x' character literals
	KindSymbol                 // delimiters and operators
	KindComment                // -- comment to end of line
	KindWhitespace             // spaces and tabs
	KindCarriageReturn
	KindBlankLine // a line holding nothing but whitespace
)

//nolint:gochecknoglobals // Read-only name table.
var kindNames = [...]string{
	KindWord:           "word",
	KindNumber:         "number",
	KindString:         "string",
	KindCharacter:      "character",
	KindSymbol:         "symbol",
	KindComment:        "comment",
	KindWhitespace:     "whitespace",
	KindCarriageReturn: "carriage_return",
	KindBlankLine:      "blank_line",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// BaseParser is the base category used for lexer-level identities.
const BaseParser = "parser"

// Reserved identities under the parser base.
//
//nolint:gochecknoglobals // Fixed identity values shared by every package.
var (
	CarriageReturn   = ID{Base: BaseParser, Sub: "carriage_return"}
	BlankLine        = ID{Base: BaseParser, Sub: "blank_line"}
	Whitespace       = ID{Base: BaseParser, Sub: "whitespace"}
	Comment          = ID{Base: BaseParser, Sub: "comment"}
	Comma            = ID{Base: BaseParser, Sub: "comma"}
	OpenParenthesis  = ID{Base: BaseParser, Sub: "open_parenthesis"}
	CloseParenthesis = ID{Base: BaseParser, Sub: "close_parenthesis"}
)

// ID is the grammar identity of a classified token.
// The zero value means the token has not been classified.
type ID struct {
	Base string
	Sub  string
}

// IsZero reports whether the identity is unset.
func (id ID) IsZero() bool {
	return id.Base == "" && id.Sub == ""
}

// String renders the identity as "base.sub".
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.Base + "." + id.Sub
}

// ParseID parses a "base.sub" string. It returns false when either part is missing.
func ParseID(s string) (ID, bool) {
	base, sub, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok || base == "" || sub == "" {
		return ID{}, false
	}
	return ID{Base: base, Sub: sub}, true
}

// Token is one lexical unit of a VHDL file.
type Token struct {
	// Text is the exact source text of the token.
	Text string

	// Line is the 1-based source line.
	Line int

	// Kind is the lexical category.
	Kind Kind

	// ID is the grammar identity assigned by the classifier.
	ID ID
}

// Lower returns the token text in lower case. VHDL is case-insensitive.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// Is reports whether the token has the given identity.
func (t Token) Is(id ID) bool {
	return t.ID == id
}

// IsWord reports whether the token is a word matching text, ignoring case.
func (t Token) IsWord(text string) bool {
	return t.Kind == KindWord && strings.EqualFold(t.Text, text)
}

// IsSymbol reports whether the token is the given delimiter.
func (t Token) IsSymbol(text string) bool {
	return t.Kind == KindSymbol && t.Text == text
}

// IsTrivia reports whether the token carries no grammar meaning.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case KindWhitespace, KindComment, KindCarriageReturn, KindBlankLine:
		return true
	default:
		return false
	}
}

// NewCarriageReturn synthesizes a line break token.
func NewCarriageReturn() Token {
	return Token{Text: "\n", Kind: KindCarriageReturn, ID: CarriageReturn}
}

// NewBlankLine synthesizes an empty blank-line token.
func NewBlankLine() Token {
	return Token{Kind: KindBlankLine, ID: BlankLine}
}
