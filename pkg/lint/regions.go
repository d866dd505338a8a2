package lint

import (
	"github.com/yaklabco/govsg/pkg/index"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// Hierarchy limits a rule to targets enclosed by a matched (Start, End) pair,
// such as the begin and end keywords of a process.
type Hierarchy struct {
	Start vhdl.ID
	End   vhdl.ID
}

// within keeps the targets that lie strictly inside a matched pair.
// Pairs whose end is unmatched enclose nothing.
func (h Hierarchy) within(idx *index.Map, targets []int) []int {
	starts, ends := idx.MatchedPairs(h.Start, h.End)

	var kept []int
	for _, p := range targets {
		for i, start := range starts {
			if ends[i] != index.None && start < p && p < ends[i] {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

// endsLine reports whether the target at pos is the last significant token
// before the line break at cr. A trailing comment does not count.
func endsLine(idx *index.Map, stream *vhdl.Stream, pos, cr int) bool {
	next := idx.NextSignificant(pos)
	if next == index.None || next > cr {
		return true
	}
	return stream.At(next).Is(vhdl.Comment)
}

// lineBelow returns the region below the line break at cr: the run of
// consecutive blank lines when the next line is blank, otherwise the whole
// next line including its line break. ok is false at end of file.
func lineBelow(idx *index.Map, stream *vhdl.Stream, cr int) (start, end int, ok bool) {
	start = cr + 1
	if start >= stream.Len() {
		return 0, 0, false
	}

	if stream.At(start).Is(vhdl.BlankLine) {
		end = start
		for end < stream.Len() {
			tok := stream.At(end)
			if !tok.Is(vhdl.BlankLine) && !tok.Is(vhdl.CarriageReturn) {
				break
			}
			end++
		}
		return start, end, true
	}

	next := idx.CarriageReturnAfter(start)
	if next == index.None {
		return start, stream.Len(), true
	}
	return start, next + 1, true
}

// newToi builds a region over [start, end) anchored at the line of start.
func newToi(stream *vhdl.Stream, start, end int, style string) Toi {
	return Toi{
		Start:  start,
		End:    end,
		Line:   stream.At(start).Line,
		Style:  style,
		Tokens: stream.Slice(start, end),
	}
}
