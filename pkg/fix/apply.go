package fix

import (
	"slices"

	"github.com/yaklabco/govsg/pkg/vhdl"
)

// Result reports what ApplyAll did.
type Result struct {
	// Applied are the actions that mutated the stream, in application order.
	Applied []Action

	// Skipped are the actions dropped because their window overlapped an
	// earlier one. A later pass may be able to apply them.
	Skipped []Action
}

// Apply performs one action on stream. Positions must be current.
func Apply(stream *vhdl.Stream, action Action) error {
	if err := ValidateActions([]Action{action}, stream.Len()); err != nil {
		return err
	}
	if err := CheckPrecondition(stream, action); err != nil {
		return err
	}
	mutate(stream, action)
	return nil
}

// ApplyAll applies actions whose positions all refer to the current stream.
//
// Actions are sorted by position and overlapping ones are skipped. Every
// window is validated and every precondition checked before the first
// mutation, so a failure leaves the stream untouched. Actions are then
// applied from low to high positions, shifting each window by the length
// change of the actions applied before it.
func ApplyAll(stream *vhdl.Stream, actions []Action) (Result, error) {
	if len(actions) == 0 {
		return Result{}, nil
	}

	if err := ValidateActions(actions, stream.Len()); err != nil {
		return Result{}, err
	}

	sorted := slices.Clone(actions)
	SortActions(sorted)
	accepted, skipped := FilterConflicts(sorted)

	for _, action := range accepted {
		if err := CheckPrecondition(stream, action); err != nil {
			return Result{}, err
		}
	}

	offset := 0
	for _, action := range accepted {
		shifted := action
		shifted.Start += offset
		shifted.End += offset
		mutate(stream, shifted)
		offset += action.Delta()
	}

	return Result{Applied: accepted, Skipped: skipped}, nil
}

// mutate performs the splice for a validated action.
func mutate(stream *vhdl.Stream, action Action) {
	switch action.Kind {
	case KindInsert:
		stream.Insert(action.Start, action.Tokens...)
	case KindRemove:
		stream.Remove(action.Start, action.End)
	case KindReplace:
		stream.Replace(action.Start, action.End, action.Tokens)
	}
}
