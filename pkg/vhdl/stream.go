package vhdl

import (
	"slices"
	"strings"
)

// Stream is the ordered, mutable token sequence of one file.
// Position order equals source order. Every mutation bumps the generation
// so derived views can tell they are stale.
type Stream struct {
	tokens     []Token
	generation uint64
}

// NewStream wraps tokens in a Stream. The slice is owned by the Stream afterwards.
func NewStream(tokens []Token) *Stream {
	s := &Stream{tokens: tokens}
	s.renumber(0)
	return s
}

// Len returns the number of tokens.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at position i.
func (s *Stream) At(i int) Token {
	return s.tokens[i]
}

// InRange reports whether i is a valid position.
func (s *Stream) InRange(i int) bool {
	return i >= 0 && i < len(s.tokens)
}

// Slice returns a copy of the tokens in [start, end).
func (s *Stream) Slice(start, end int) []Token {
	start = max(start, 0)
	end = min(end, len(s.tokens))
	if start >= end {
		return nil
	}
	return slices.Clone(s.tokens[start:end])
}

// Generation returns the mutation counter.
func (s *Stream) Generation() uint64 {
	return s.generation
}

// SetID assigns a grammar identity to the token at position i.
func (s *Stream) SetID(i int, id ID) {
	if s.tokens[i].ID == id {
		return
	}
	s.tokens[i].ID = id
	s.generation++
}

// SetText rewrites the text of the token at position i.
func (s *Stream) SetText(i int, text string) {
	s.tokens[i].Text = text
	s.generation++
}

// Insert splices tokens in before position pos.
func (s *Stream) Insert(pos int, tokens ...Token) {
	s.Replace(pos, pos, tokens)
}

// Remove deletes the tokens in [start, end).
func (s *Stream) Remove(start, end int) {
	s.Replace(start, end, nil)
}

// Replace substitutes the tokens in [start, end) with replacement.
func (s *Stream) Replace(start, end int, replacement []Token) {
	s.tokens = slices.Replace(s.tokens, start, end, replacement...)
	s.generation++
	s.renumber(start)
}

// String renders the stream back to source text.
func (s *Stream) String() string {
	var b strings.Builder
	for _, tok := range s.tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// renumber recomputes line numbers from position from onwards.
func (s *Stream) renumber(from int) {
	line := 1
	if from > 0 && from <= len(s.tokens) {
		prev := s.tokens[from-1]
		line = prev.Line
		if prev.Kind == KindCarriageReturn {
			line++
		}
	} else {
		from = 0
	}
	for i := from; i < len(s.tokens); i++ {
		s.tokens[i].Line = line
		if s.tokens[i].Kind == KindCarriageReturn {
			line++
		}
	}
}
