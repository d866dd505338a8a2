package classify

import "github.com/yaklabco/govsg/pkg/vhdl"

const (
	sequentialSignalBase = "simple_waveform_assignment"
	concurrentSignalBase = "concurrent_simple_signal_assignment"
	forceBase            = "simple_force_assignment"
	releaseBase          = "simple_release_assignment"
	variableBase         = "variable_assignment_statement"
	delayBase            = "delay_mechanism"
	waveformBase         = "waveform"
	elementBase          = "waveform_element"
)

// Identities of assignment statements. Signal assignments share their subs
// between the sequential and the concurrent base.
//
//nolint:gochecknoglobals // Fixed identity values.
var (
	WaveformTarget     = vhdl.ID{Base: sequentialSignalBase, Sub: "target"}
	WaveformAssignment = vhdl.ID{Base: sequentialSignalBase, Sub: "assignment"}
	WaveformSemicolon  = vhdl.ID{Base: sequentialSignalBase, Sub: "semicolon"}

	ConcurrentTarget     = vhdl.ID{Base: concurrentSignalBase, Sub: "target"}
	ConcurrentAssignment = vhdl.ID{Base: concurrentSignalBase, Sub: "assignment"}
	ConcurrentSemicolon  = vhdl.ID{Base: concurrentSignalBase, Sub: "semicolon"}

	ForceTarget     = vhdl.ID{Base: forceBase, Sub: "target"}
	ForceAssignment = vhdl.ID{Base: forceBase, Sub: "assignment"}
	ForceKeyword    = vhdl.ID{Base: forceBase, Sub: "force_keyword"}
	ForceMode       = vhdl.ID{Base: forceBase, Sub: "force_mode"}
	ForceSemicolon  = vhdl.ID{Base: forceBase, Sub: "semicolon"}

	ReleaseTarget     = vhdl.ID{Base: releaseBase, Sub: "target"}
	ReleaseAssignment = vhdl.ID{Base: releaseBase, Sub: "assignment"}
	ReleaseKeyword    = vhdl.ID{Base: releaseBase, Sub: "release_keyword"}
	ReleaseMode       = vhdl.ID{Base: releaseBase, Sub: "force_mode"}
	ReleaseSemicolon  = vhdl.ID{Base: releaseBase, Sub: "semicolon"}

	VariableTarget     = vhdl.ID{Base: variableBase, Sub: "target"}
	VariableAssignment = vhdl.ID{Base: variableBase, Sub: "assignment"}
	VariableSemicolon  = vhdl.ID{Base: variableBase, Sub: "semicolon"}

	TransportKeyword = vhdl.ID{Base: delayBase, Sub: "transport_keyword"}
	RejectKeyword    = vhdl.ID{Base: delayBase, Sub: "reject_keyword"}
	InertialKeyword  = vhdl.ID{Base: delayBase, Sub: "inertial_keyword"}

	UnaffectedKeyword = vhdl.ID{Base: waveformBase, Sub: "unaffected_keyword"}
	WaveformComma     = vhdl.ID{Base: waveformBase, Sub: "comma"}
	AfterKeyword      = vhdl.ID{Base: elementBase, Sub: "after_keyword"}
)

// assignKind is the production chosen by detectAssignment.
type assignKind int

const (
	assignNone assignKind = iota
	assignSignal
	assignForce
	assignRelease
	assignVariable
)

// detectAssignment looks ahead from pos to the statement terminator and
// decides which assignment production, if any, starts at pos. It returns the
// position of the assignment delimiter.
func (c *classifier) detectAssignment(pos int) (assignKind, int) {
	delim := c.scanFor(pos, "<=", ":=", ":")
	if delim <= pos || c.is(delim, ":") {
		return assignNone, -1
	}
	for p := pos; p < delim; p = c.sig(p + 1) {
		if isBoundary(c.at(p)) {
			return assignNone, -1
		}
	}

	// Conditional and selected forms are not classified.
	if c.conditional(delim + 1) {
		return assignNone, -1
	}

	if c.is(delim, ":=") {
		return assignVariable, delim
	}
	switch next := c.sig(delim + 1); {
	case c.is(next, "force"):
		return assignForce, delim
	case c.is(next, "release"):
		return assignRelease, delim
	default:
		return assignSignal, delim
	}
}

// conditional reports whether a depth-zero "when" or "select" follows pos
// before the statement terminator or any other boundary word.
func (c *classifier) conditional(pos int) bool {
	depth := 0
	for p := c.sig(pos); p < c.len(); p = c.sig(p + 1) {
		tok := c.at(p)
		switch {
		case tok.IsSymbol("("):
			depth++
		case tok.IsSymbol(")"):
			depth = max(depth-1, 0)
		case depth > 0:
		case c.isAny(p, "when", "select"):
			return true
		case tok.IsSymbol(";"), isBoundary(tok):
			return false
		}
	}
	return false
}

// assignmentOrSkip classifies the assignment starting at pos or skips the
// statement untagged. signalBase selects the sequential or concurrent
// identity of a plain signal assignment.
func (c *classifier) assignmentOrSkip(pos int, signalBase string) (int, error) {
	kind, delim := c.detectAssignment(pos)
	switch kind {
	case assignSignal:
		return c.waveformAssignment(pos, delim, signalBase)
	case assignForce:
		return c.forceAssignment(pos, delim)
	case assignRelease:
		return c.releaseAssignment(pos, delim)
	case assignVariable:
		return c.variableAssignment(pos, delim)
	default:
		return c.skipPast(pos), nil
	}
}

// target tags every significant token in [pos, delim) with id.
func (c *classifier) target(pos, delim int, id vhdl.ID) {
	for p := c.sig(pos); p < delim; p = c.sig(p + 1) {
		c.tag(p, id)
	}
}

// waveformAssignment classifies "target <= [delay_mechanism] waveform ;".
func (c *classifier) waveformAssignment(pos, delim int, base string) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.target(pos, delim, vhdl.ID{Base: base, Sub: "target"})
	c.tag(delim, vhdl.ID{Base: base, Sub: "assignment"})

	p, err := c.delayMechanism(delim + 1)
	if err != nil {
		return p, err
	}
	if p, err = c.waveform(p); err != nil {
		return p, err
	}

	return c.required(p, ";", vhdl.ID{Base: base, Sub: "semicolon"})
}

// forceAssignment classifies "target <= force [in | out] expression ;".
func (c *classifier) forceAssignment(pos, delim int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.target(pos, delim, ForceTarget)
	c.tag(delim, ForceAssignment)
	keyword := c.sig(delim + 1)
	c.tag(keyword, ForceKeyword)

	p := c.forceMode(keyword+1, ForceMode)
	if p, err = c.until(p, forceBase, vhdl.ID{}, ";"); err != nil {
		return p, err
	}

	return c.required(p, ";", ForceSemicolon)
}

// releaseAssignment classifies "target <= release [in | out] ;".
func (c *classifier) releaseAssignment(pos, delim int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.target(pos, delim, ReleaseTarget)
	c.tag(delim, ReleaseAssignment)
	keyword := c.sig(delim + 1)
	c.tag(keyword, ReleaseKeyword)

	p := c.forceMode(keyword+1, ReleaseMode)

	return c.required(p, ";", ReleaseSemicolon)
}

func (c *classifier) forceMode(pos int, id vhdl.ID) int {
	if p := c.sig(pos); c.isAny(p, "in", "out") {
		c.tag(p, id)
		return p + 1
	}
	return pos
}

// variableAssignment classifies "target := expression ;".
func (c *classifier) variableAssignment(pos, delim int) (next int, err error) {
	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.target(pos, delim, VariableTarget)
	c.tag(delim, VariableAssignment)

	p, err := c.until(delim+1, variableBase, vhdl.ID{}, ";")
	if err != nil {
		return p, err
	}

	return c.required(p, ";", VariableSemicolon)
}

// delayMechanism classifies the optional "transport" or
// "[reject time_expression] inertial" clause. When absent the cursor is
// returned unchanged.
func (c *classifier) delayMechanism(pos int) (next int, err error) {
	p := c.sig(pos)
	switch {
	case c.is(p, "transport"):
		c.tag(p, TransportKeyword)
		return p + 1, nil
	case c.is(p, "inertial"):
		c.tag(p, InertialKeyword)
		return p + 1, nil
	case !c.is(p, "reject"):
		return pos, nil
	}

	mark := c.mark()
	defer func() {
		if err != nil {
			c.rollback(mark)
		}
	}()

	c.tag(p, RejectKeyword)
	if p, err = c.until(p+1, delayBase, vhdl.ID{}, "inertial"); err != nil {
		return p, err
	}
	c.tag(p, InertialKeyword)
	return p + 1, nil
}

// waveform classifies "waveform_element {, waveform_element}" or
// "unaffected", stopping before the terminating ';'.
func (c *classifier) waveform(pos int) (int, error) {
	if p := c.sig(pos); c.is(p, "unaffected") {
		c.tag(p, UnaffectedKeyword)
		return p + 1, nil
	}

	p := pos
	for {
		end, err := c.until(p, elementBase, vhdl.ID{}, ";", ",", "after")
		if err != nil {
			return end, err
		}
		if end == c.sig(p) {
			return end, c.expected(end, elementBase, "value expression")
		}
		if c.is(end, "after") {
			c.tag(end, AfterKeyword)
			if end, err = c.until(end+1, elementBase, vhdl.ID{}, ";", ","); err != nil {
				return end, err
			}
		}
		if !c.is(end, ",") {
			return end, nil
		}
		c.tag(end, WaveformComma)
		p = end + 1
	}
}
