// Package source holds the File abstraction shared by the rule and fix engines.
//
// A File exclusively owns its token stream. The positional index is a derived
// view: File.Index rebuilds it whenever the stream generation has moved since
// the last build, so callers never observe a stale index through a File.
package source

import (
	"fmt"
	"strings"

	"github.com/yaklabco/govsg/pkg/classify"
	"github.com/yaklabco/govsg/pkg/index"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// File is one VHDL source file: its path, classified token stream and index.
type File struct {
	// Path is the logical file path used in diagnostics.
	Path string

	stream  *vhdl.Stream
	index   *index.Map
	options []index.Option
	builds  int
}

// New wraps an already classified stream. opts are applied on every index build.
func New(path string, stream *vhdl.Stream, opts ...index.Option) *File {
	return &File{Path: path, stream: stream, options: opts}
}

// Parse lexes and classifies content and returns the resulting File.
// Classification failures wrap a *classify.GrammarError.
func Parse(path string, content []byte, opts ...index.Option) (*File, error) {
	stream := vhdl.Lex(string(content))
	if err := classify.Classify(stream); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(path, stream, opts...), nil
}

// Stream returns the token stream. Mutating it invalidates the current index.
func (f *File) Stream() *vhdl.Stream {
	return f.stream
}

// Index returns an index that matches the current stream generation,
// rebuilding it if the stream changed since the last call.
func (f *File) Index() *index.Map {
	if f.index == nil || f.index.Stale() {
		f.index = index.Build(f.stream, f.options...)
		f.builds++
	}
	return f.index
}

// Builds reports how many times the index has been built.
func (f *File) Builds() int {
	return f.builds
}

// Content renders the stream back to source text.
func (f *File) Content() []byte {
	return []byte(f.stream.String())
}

// Column returns the 1-based column of the token at pos within its line.
func (f *File) Column(pos int) int {
	if !f.stream.InRange(pos) {
		return 1
	}
	col := 1
	for p := pos - 1; p >= 0; p-- {
		tok := f.stream.At(p)
		if tok.Kind == vhdl.KindCarriageReturn {
			break
		}
		col += len(tok.Text)
	}
	return col
}

// Line returns the text of the 1-based line n without its terminator,
// or "" when n is out of range.
func (f *File) Line(n int) string {
	if n < 1 {
		return ""
	}
	var b strings.Builder
	for i := range f.stream.Len() {
		tok := f.stream.At(i)
		if tok.Line < n {
			continue
		}
		if tok.Line > n || tok.Kind == vhdl.KindCarriageReturn {
			break
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	n := f.stream.Len()
	if n == 0 {
		return 0
	}
	return f.stream.At(n - 1).Line
}
