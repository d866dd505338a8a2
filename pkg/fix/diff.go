package fix

import (
	"fmt"
	"strings"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

// LineOp marks a line in a unified diff.
type LineOp byte

// Line operations, rendered as the line prefix.
const (
	OpKeep   LineOp = ' '
	OpAdd    LineOp = '+'
	OpRemove LineOp = '-'
)

// DiffLine is one line of a hunk.
type DiffLine struct {
	Op   LineOp
	Text string
}

// Hunk is a contiguous group of changes with surrounding context.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []DiffLine
}

// Diff is the line-level difference produced by a fix, used for dry runs.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// GenerateDiff compares original and fixed source text line by line.
// It returns nil when they are identical.
func GenerateDiff(path, original, fixed string) *Diff {
	if original == fixed {
		return nil
	}

	ops := diffLines(splitLines(original), splitLines(fixed))

	diff := &Diff{Path: path}
	for _, op := range ops {
		switch op.Op {
		case OpAdd:
			diff.Additions++
		case OpRemove:
			diff.Deletions++
		}
	}
	diff.Hunks = groupHunks(ops)

	return diff
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", d.Path, d.Path)
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
		for _, line := range hunk.Lines {
			b.WriteByte(byte(line.Op))
			b.WriteString(line.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// diffLines computes an edit script from a longest common subsequence table.
func diffLines(oldLines, newLines []string) []DiffLine {
	rows, cols := len(oldLines), len(newLines)
	lcs := make([][]int, rows+1)
	for i := range lcs {
		lcs[i] = make([]int, cols+1)
	}
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]DiffLine, 0, max(rows, cols))
	i, j := 0, 0
	for i < rows && j < cols {
		switch {
		case oldLines[i] == newLines[j]:
			ops = append(ops, DiffLine{Op: OpKeep, Text: oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, DiffLine{Op: OpRemove, Text: oldLines[i]})
			i++
		default:
			ops = append(ops, DiffLine{Op: OpAdd, Text: newLines[j]})
			j++
		}
	}
	for ; i < rows; i++ {
		ops = append(ops, DiffLine{Op: OpRemove, Text: oldLines[i]})
	}
	for ; j < cols; j++ {
		ops = append(ops, DiffLine{Op: OpAdd, Text: newLines[j]})
	}
	return ops
}

// groupHunks slices an edit script into hunks with diffContext lines of context.
func groupHunks(ops []DiffLine) []Hunk {
	var hunks []Hunk

	oldLine, newLine := 1, 1
	for idx := 0; idx < len(ops); {
		if ops[idx].Op == OpKeep {
			oldLine++
			newLine++
			idx++
			continue
		}

		start := max(idx-diffContext, 0)
		for back := idx - 1; back >= start; back-- {
			oldLine--
			newLine--
		}
		hunk := Hunk{OldStart: oldLine, NewStart: newLine}

		end := idx
		quiet := 0
		for end < len(ops) && quiet <= 2*diffContext {
			if ops[end].Op == OpKeep {
				quiet++
			} else {
				quiet = 0
			}
			end++
		}
		// Trim trailing context to diffContext lines.
		if quiet > diffContext {
			end -= quiet - diffContext
		}

		for _, op := range ops[start:end] {
			hunk.Lines = append(hunk.Lines, op)
			switch op.Op {
			case OpKeep:
				hunk.OldCount++
				hunk.NewCount++
				oldLine++
				newLine++
			case OpRemove:
				hunk.OldCount++
				oldLine++
			case OpAdd:
				hunk.NewCount++
				newLine++
			}
		}
		hunks = append(hunks, hunk)
		idx = end
	}

	return hunks
}
