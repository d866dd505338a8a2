package classify

import (
	"fmt"
	"strconv"
)

// GrammarError reports a production that could not be matched.
// It is fatal for the classification pass of one file.
type GrammarError struct {
	// Production is the grammar production being classified.
	Production string

	// Expected describes the token that was required.
	Expected string

	// Position is the stream position where the scan stopped.
	Position int

	// Line is the 1-based source line of Position.
	Line int

	// Found is the text of the token at Position, empty at end of file.
	Found string
}

// Error implements the error interface.
func (e *GrammarError) Error() string {
	found := "end of file"
	if e.Found != "" {
		found = strconv.Quote(e.Found)
	}
	return fmt.Sprintf("line %d: %s: expected %s, found %s", e.Line, e.Production, e.Expected, found)
}
