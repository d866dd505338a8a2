// Package index builds positional indices over a classified token stream.
//
// A Map answers "where does category X occur" for hundreds of independent
// rules without rescanning the stream. It is a pure function of one stream
// generation: any mutation of the stream makes it stale, and a stale Map
// refuses every query by returning an empty result or None.
package index

import (
	"slices"
	"sort"

	"github.com/yaklabco/govsg/pkg/vhdl"
)

// None is returned by positional queries that find nothing.
const None = -1

// DefaultLookahead is the window searched by NextSignificant.
const DefaultLookahead = 4

// logicalOperatorBase is flattened into a bucket named after itself.
const logicalOperatorBase = "logical_operator"

// Map indexes token positions by grammar identity: base -> sub -> sorted positions.
type Map struct {
	buckets    map[string]map[string][]int
	stream     *vhdl.Stream
	generation uint64
	lookahead  int
}

// Option configures a Map.
type Option func(*Map)

// WithLookahead sets the window used by NextSignificant. Values below 1 are ignored.
func WithLookahead(n int) Option {
	return func(m *Map) {
		if n >= 1 {
			m.lookahead = n
		}
	}
}

// Build indexes every classified token of stream in a single forward pass.
func Build(stream *vhdl.Stream, opts ...Option) *Map {
	m := &Map{
		buckets:    make(map[string]map[string][]int),
		stream:     stream,
		generation: stream.Generation(),
		lookahead:  DefaultLookahead,
	}
	for _, opt := range opts {
		opt(m)
	}

	for pos := range stream.Len() {
		id := stream.At(pos).ID
		if id.IsZero() {
			continue
		}
		m.insert(id, pos)

		switch {
		case id.Base == logicalOperatorBase:
			m.insert(vhdl.ID{Base: logicalOperatorBase, Sub: logicalOperatorBase}, pos)
		case id.Sub == vhdl.Comma.Sub:
			m.insert(vhdl.Comma, pos)
		case id.Sub == vhdl.OpenParenthesis.Sub:
			m.insert(vhdl.OpenParenthesis, pos)
		}
	}

	return m
}

// insert appends pos to the bucket for id, creating levels on demand.
// Positions arrive in increasing order, so a duplicate can only be the last entry.
func (m *Map) insert(id vhdl.ID, pos int) {
	subs, ok := m.buckets[id.Base]
	if !ok {
		subs = make(map[string][]int)
		m.buckets[id.Base] = subs
	}
	list := subs[id.Sub]
	if n := len(list); n > 0 && list[n-1] == pos {
		return
	}
	subs[id.Sub] = append(list, pos)
}

// Generation returns the stream generation this Map was built from.
func (m *Map) Generation() uint64 {
	return m.generation
}

// Stale reports whether the stream has been mutated since the Map was built.
func (m *Map) Stale() bool {
	return m.stream.Generation() != m.generation
}

// Lookahead returns the NextSignificant window.
func (m *Map) Lookahead() int {
	return m.lookahead
}

// bucket returns the live position list for id, or nil.
func (m *Map) bucket(id vhdl.ID) []int {
	if m.Stale() {
		return nil
	}
	return m.buckets[id.Base][id.Sub]
}

// PositionsOf returns the sorted positions of id. The result is a copy.
func (m *Map) PositionsOf(id vhdl.ID) []int {
	return slices.Clone(m.bucket(id))
}

// PositionsOfAny returns the sorted, de-duplicated union of the positions of ids.
func (m *Map) PositionsOfAny(ids ...vhdl.ID) []int {
	var out []int
	for _, id := range ids {
		out = append(out, m.bucket(id)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// PositionsBetween returns the positions p of id with lo < p < hi.
func (m *Map) PositionsBetween(id vhdl.ID, lo, hi int) []int {
	list := m.bucket(id)
	from := sort.SearchInts(list, lo+1)
	to := sort.SearchInts(list, hi)
	if from >= to {
		return nil
	}
	return slices.Clone(list[from:to])
}

// Has reports whether the token at pos has identity id.
func (m *Map) Has(id vhdl.ID, pos int) bool {
	list := m.bucket(id)
	idx := sort.SearchInts(list, pos)
	return idx < len(list) && list[idx] == pos
}

// LineOf returns the 1-based line of pos: one plus the number of line breaks before it.
// A stale Map returns 0.
func (m *Map) LineOf(pos int) int {
	if m.Stale() {
		return 0
	}
	return sort.SearchInts(m.buckets[vhdl.BaseParser][vhdl.CarriageReturn.Sub], pos) + 1
}

// NextAfter returns the smallest position of id greater than pos, or None.
func (m *Map) NextAfter(id vhdl.ID, pos int) int {
	list := m.bucket(id)
	idx := sort.SearchInts(list, pos+1)
	if idx >= len(list) {
		return None
	}
	return list[idx]
}

// CarriageReturnAfter returns the first line break after pos, or None.
func (m *Map) CarriageReturnAfter(pos int) int {
	return m.NextAfter(vhdl.CarriageReturn, pos)
}

// MatchedPairs pairs every start occurrence with the next end after it.
// The slices are parallel; an unmatched end is None. Closure is not 1:1:
// two starts may share the same end.
func (m *Map) MatchedPairs(start, end vhdl.ID) ([]int, []int) {
	starts := m.PositionsOf(start)
	ends := make([]int, len(starts))
	for i, s := range starts {
		ends[i] = m.NextAfter(end, s)
	}
	return starts, ends
}

// NextSignificant returns the first position after pos that is not whitespace,
// a line break or a blank line. Only the configured lookahead window is
// searched; None is returned when it is exhausted.
func (m *Map) NextSignificant(pos int) int {
	if m.Stale() {
		return None
	}
	for step := 1; step <= m.lookahead; step++ {
		candidate := pos + step
		if candidate >= m.stream.Len() {
			return None
		}
		if m.Has(vhdl.Whitespace, candidate) ||
			m.Has(vhdl.CarriageReturn, candidate) ||
			m.Has(vhdl.BlankLine, candidate) {
			continue
		}
		return candidate
	}
	return None
}

// Categories returns every indexed identity in sorted order.
func (m *Map) Categories() []vhdl.ID {
	var ids []vhdl.ID
	for base, subs := range m.buckets {
		for sub := range subs {
			ids = append(ids, vhdl.ID{Base: base, Sub: sub})
		}
	}
	slices.SortFunc(ids, func(a, b vhdl.ID) int {
		if a.Base != b.Base {
			if a.Base < b.Base {
				return -1
			}
			return 1
		}
		switch {
		case a.Sub < b.Sub:
			return -1
		case a.Sub > b.Sub:
			return 1
		default:
			return 0
		}
	})
	return ids
}
