package lint

import (
	"context"

	"github.com/yaklabco/govsg/pkg/source"
)

// Parser turns VHDL source into a classified File.
//
// The lint package defines this interface in the consumer package;
// pkg/parser provides the implementation.
//
// Implementations must be deterministic for a given (path, content) pair
// and must not perform I/O. On failure no partial File is returned, and a
// classification failure wraps a *classify.GrammarError.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*source.File, error)
}
