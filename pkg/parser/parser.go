// Package parser provides the lint.Parser implementation for VHDL.
package parser

import (
	"context"
	"fmt"

	"github.com/yaklabco/govsg/pkg/index"
	"github.com/yaklabco/govsg/pkg/source"
)

// Parser lexes and classifies VHDL source into a source.File.
type Parser struct {
	lookahead int
}

// New creates a parser. A lookahead of zero or less keeps the index default.
func New(lookahead int) *Parser {
	return &Parser{lookahead: lookahead}
}

// Lookahead returns the configured NextSignificant window.
func (p *Parser) Lookahead() int {
	return p.lookahead
}

// Parse converts raw VHDL into a classified File whose index is built with
// the configured lookahead. A classification failure wraps a
// *classify.GrammarError.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*source.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	var opts []index.Option
	if p.lookahead > 0 {
		opts = append(opts, index.WithLookahead(p.lookahead))
	}

	file, err := source.Parse(path, content, opts...)
	if err != nil {
		return nil, err
	}
	return file, nil
}
