package fix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yaklabco/govsg/pkg/vhdl"
)

// ErrPrecondition is wrapped by every PreconditionError.
var ErrPrecondition = errors.New("fix precondition failed")

// ValidationError describes an action whose window does not fit the stream.
type ValidationError struct {
	Action  Action
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s action [%d:%d]: %s", e.Action.Kind, e.Action.Start, e.Action.End, e.Message)
}

// PreconditionError reports a Remove action whose window no longer holds
// only blank lines and line breaks, which means positions went stale.
type PreconditionError struct {
	Action   Action
	Position int
	Found    vhdl.Token
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("remove [%d:%d]: token %d is %q (%s), not a blank line",
		e.Action.Start, e.Action.End, e.Position, e.Found.Text, e.Found.ID)
}

// Unwrap lets callers match ErrPrecondition with errors.Is.
func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// ValidateActions checks that every window lies inside a stream of streamLen tokens.
func ValidateActions(actions []Action, streamLen int) error {
	for _, action := range actions {
		switch {
		case action.Kind < KindInsert || action.Kind > KindReplace:
			return &ValidationError{Action: action, Message: "unknown kind"}
		case action.Start < 0:
			return &ValidationError{Action: action, Message: "start is negative"}
		case action.End < action.Start:
			return &ValidationError{Action: action, Message: "end is before start"}
		case action.End > streamLen:
			return &ValidationError{
				Action:  action,
				Message: fmt.Sprintf("end %d exceeds stream length %d", action.End, streamLen),
			}
		}
	}
	return nil
}

// CheckPrecondition verifies that a Remove window holds nothing but blank
// lines and line breaks. Other kinds always pass.
func CheckPrecondition(stream *vhdl.Stream, action Action) error {
	if action.Kind != KindRemove {
		return nil
	}
	for pos := action.Start; pos < action.End; pos++ {
		tok := stream.At(pos)
		if !tok.Is(vhdl.BlankLine) && !tok.Is(vhdl.CarriageReturn) {
			return &PreconditionError{Action: action, Position: pos, Found: tok}
		}
	}
	return nil
}

// SortActions sorts actions by start position, then by end position.
func SortActions(actions []Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		if actions[i].Start != actions[j].Start {
			return actions[i].Start < actions[j].Start
		}
		return actions[i].End < actions[j].End
	})
}

// FilterConflicts splits sorted actions into those that can be applied and
// those whose window overlaps an earlier accepted one. Earlier actions win.
func FilterConflicts(actions []Action) ([]Action, []Action) {
	if len(actions) == 0 {
		return nil, nil
	}

	accepted := make([]Action, 0, len(actions))
	var skipped []Action

	lastEnd := -1
	for _, action := range actions {
		if action.Start < lastEnd {
			skipped = append(skipped, action)
			continue
		}
		accepted = append(accepted, action)
		lastEnd = max(action.End, action.Start+1)
	}

	return accepted, skipped
}
