// Package fix provides the repair actions attached to violations and the
// logic that applies them to a token stream.
//
// Positions are stream positions, not byte offsets. Every applied action
// bumps the stream generation, so any index built over the stream must be
// rebuilt before it is queried again.
package fix

import "github.com/yaklabco/govsg/pkg/vhdl"

// Kind identifies the repair performed by an Action.
type Kind uint8

// Action kinds.
const (
	// KindInsert splices a blank line in front of the window.
	KindInsert Kind = iota + 1

	// KindRemove deletes every token of the window.
	KindRemove

	// KindReplace substitutes the window with a replacement sequence.
	KindReplace
)

// String returns the action name used in reports.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "Insert"
	case KindRemove:
		return "Remove"
	case KindReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Action is one recorded repair over the window [Start, End).
type Action struct {
	// Kind selects the repair.
	Kind Kind

	// Start is the first position of the window (inclusive).
	Start int

	// End is the position after the window (exclusive).
	End int

	// Tokens is the payload: the tokens spliced in by Insert, or the
	// replacement sequence of Replace. Remove carries none.
	Tokens []vhdl.Token
}

// InsertBlankLine returns an action that splices a blank line followed by a
// line break in front of the window. newline is the terminator text to use;
// empty means "\n".
func InsertBlankLine(start, end int, newline string) Action {
	cr := vhdl.NewCarriageReturn()
	if newline != "" {
		cr.Text = newline
	}
	return Action{
		Kind:   KindInsert,
		Start:  start,
		End:    end,
		Tokens: []vhdl.Token{vhdl.NewBlankLine(), cr},
	}
}

// Remove returns an action that deletes the window.
func Remove(start, end int) Action {
	return Action{Kind: KindRemove, Start: start, End: end}
}

// Replace returns an action that substitutes the window with tokens.
func Replace(start, end int, tokens []vhdl.Token) Action {
	return Action{Kind: KindReplace, Start: start, End: end, Tokens: tokens}
}

// Delta returns the change in stream length caused by applying the action.
func (a Action) Delta() int {
	switch a.Kind {
	case KindInsert:
		return len(a.Tokens)
	case KindRemove:
		return -(a.End - a.Start)
	case KindReplace:
		return len(a.Tokens) - (a.End - a.Start)
	default:
		return 0
	}
}
