package vhdl

import "strings"

// compoundDelimiters lists multi-character delimiters, longest first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var compoundDelimiters = []string{
	"?/=", "?<=", "?>=",
	"<=", ">=", ":=", "=>", "/=", "**", "<>", "??", "?=", "?<", "?>", "<<", ">>",
}

// Lex splits source text into a lossless token stream.
// Concatenating the text of all tokens reproduces content exactly.
// Lines holding only whitespace become a single blank-line token.
func Lex(content string) *Stream {
	var tokens []Token

	lines := strings.SplitAfter(content, "\n")
	for idx, line := range lines {
		if line == "" {
			// SplitAfter yields an empty tail after a trailing newline.
			continue
		}
		lineNo := idx + 1

		body, newline := splitNewline(line)
		if strings.TrimSpace(body) == "" {
			tokens = append(tokens, Token{Text: body, Line: lineNo, Kind: KindBlankLine, ID: BlankLine})
		} else {
			tokens = lexLine(tokens, body, lineNo)
		}

		if newline != "" {
			tokens = append(tokens, Token{Text: newline, Line: lineNo, Kind: KindCarriageReturn, ID: CarriageReturn})
		}
	}

	return NewStream(tokens)
}

// splitNewline separates a line from its terminator ("\n" or "\r\n").
func splitNewline(line string) (string, string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

// lexLine appends the tokens of a single non-blank line.
func lexLine(tokens []Token, line string, lineNo int) []Token {
	pos := 0
	for pos < len(line) {
		start := pos
		kind, end := scan(line, pos, line[pos] == '\'' && tickDelimits(tokens))
		tok := Token{Text: line[start:end], Line: lineNo, Kind: kind}
		switch kind {
		case KindWhitespace:
			tok.ID = Whitespace
		case KindComment:
			tok.ID = Comment
		}
		tokens = append(tokens, tok)
		pos = end
	}
	return tokens
}

// tickDelimits reports whether a tick following tokens is an attribute or
// qualified expression delimiter, as in s'event or std_logic'('1'), rather
// than the start of a character literal.
func tickDelimits(tokens []Token) bool {
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		switch tok.Kind {
		case KindWhitespace, KindComment, KindCarriageReturn, KindBlankLine:
			continue
		case KindWord:
			return !IsReserved(tok.Text)
		case KindSymbol:
			return tok.Text == ")" || tok.Text == "]"
		default:
			return false
		}
	}
	return false
}

// scan returns the kind and end offset of the token starting at pos.
// afterName is true when a tick at pos cannot open a character literal.
func scan(line string, pos int, afterName bool) (Kind, int) {
	char := line[pos]

	switch {
	case char == ' ' || char == '\t':
		end := pos
		for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
			end++
		}
		return KindWhitespace, end

	case strings.HasPrefix(line[pos:], "--"):
		return KindComment, len(line)

	case isLetter(char):
		end := pos
		for end < len(line) && (isLetter(line[end]) || isDigit(line[end]) || line[end] == '_') {
			end++
		}
		return KindWord, end

	case char == '\\':
		// Extended identifier; backslashes inside are doubled.
		end := pos + 1
		for end < len(line) {
			if line[end] == '\\' {
				if end+1 < len(line) && line[end+1] == '\\' {
					end += 2
					continue
				}
				return KindWord, end + 1
			}
			end++
		}
		return KindWord, end

	case isDigit(char):
		end := pos
		for end < len(line) && isNumberChar(line, end) {
			end++
		}
		return KindNumber, end

	case char == '"':
		return KindString, scanQuoted(line, pos, '"')

	case char == '\'':
		// 'x' is a character literal unless it follows a name.
		if !afterName && pos+2 < len(line) && line[pos+2] == '\'' {
			return KindCharacter, pos + 3
		}
		return KindSymbol, pos + 1
	}

	for _, delim := range compoundDelimiters {
		if strings.HasPrefix(line[pos:], delim) {
			return KindSymbol, pos + len(delim)
		}
	}
	return KindSymbol, pos + 1
}

// scanQuoted returns the end of a quoted literal. Doubled quotes are escapes.
// An unterminated literal runs to the end of the line.
func scanQuoted(line string, pos int, quote byte) int {
	end := pos + 1
	for end < len(line) {
		if line[end] == quote {
			if end+1 < len(line) && line[end+1] == quote {
				end += 2
				continue
			}
			return end + 1
		}
		end++
	}
	return end
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberChar accepts the characters of decimal and based literals,
// including exponents such as 1.0e-3 and 16#FF#.
func isNumberChar(line string, idx int) bool {
	c := line[idx]
	switch {
	case isDigit(c), isLetter(c), c == '_', c == '#':
		return true
	case c == '.':
		return idx+1 < len(line) && isDigit(line[idx+1])
	case c == '-' || c == '+':
		prev := line[idx-1]
		return (prev == 'e' || prev == 'E') && idx+1 < len(line) && isDigit(line[idx+1])
	default:
		return false
	}
}
