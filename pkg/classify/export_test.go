package classify

import "github.com/yaklabco/govsg/pkg/vhdl"

// DelayMechanism exposes the optional delay clause production for tests.
func DelayMechanism(stream *vhdl.Stream, pos int) (int, error) {
	c := &classifier{stream: stream}
	return c.delayMechanism(pos)
}
