// Package ruledoc reads rule documentation written in Markdown.
//
// A rule document starts with a level-1 heading naming the rule, followed by
// a summary paragraph. Examples are fenced code blocks placed under level-2
// or deeper headings titled "Violation" and "Fix"; each Violation block is
// paired with the next Fix block.
package ruledoc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Sentinel errors for malformed documents.
var (
	ErrNoTitle         = errors.New("rule doc has no title")
	ErrUnpairedExample = errors.New("violation example without fix")
)

// Example is one before/after pair.
type Example struct {
	Violation string
	Fix       string
}

// Doc is a parsed rule document.
type Doc struct {
	// Title is the text of the level-1 heading.
	Title string

	// Summary is the first paragraph after the title.
	Summary string

	// Options lists the items of an "Options" section, one per entry.
	Options []string

	// Examples holds the Violation/Fix pairs in document order.
	Examples []Example
}

type section int

const (
	sectionNone section = iota
	sectionOptions
	sectionViolation
	sectionFix
)

//nolint:gochecknoglobals // Shared, stateless Markdown parser.
var markdown = goldmark.New()

// Parse reads a rule document.
func Parse(src []byte) (*Doc, error) {
	root := markdown.Parser().Parse(text.NewReader(src))

	doc := &Doc{}
	current := sectionNone
	pending := false

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			title := inlineText(n, src)
			if n.Level == 1 {
				if doc.Title == "" {
					doc.Title = title
				}
				current = sectionNone
				continue
			}
			current = sectionOf(title)

		case *ast.Paragraph:
			if doc.Summary == "" && doc.Title != "" && current == sectionNone {
				doc.Summary = inlineText(n, src)
			}

		case *ast.List:
			if current != sectionOptions {
				continue
			}
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				doc.Options = append(doc.Options, inlineText(item, src))
			}

		case *ast.FencedCodeBlock:
			code := blockText(n, src)
			switch current {
			case sectionViolation:
				if pending {
					return nil, fmt.Errorf("%w: example %d", ErrUnpairedExample, len(doc.Examples))
				}
				doc.Examples = append(doc.Examples, Example{Violation: code})
				pending = true
			case sectionFix:
				if !pending {
					return nil, fmt.Errorf("fix example %d has no violation", len(doc.Examples)+1)
				}
				doc.Examples[len(doc.Examples)-1].Fix = code
				pending = false
			}
		}
	}

	if doc.Title == "" {
		return nil, ErrNoTitle
	}
	if pending {
		return nil, fmt.Errorf("%w: example %d", ErrUnpairedExample, len(doc.Examples))
	}
	return doc, nil
}

func sectionOf(title string) section {
	switch strings.ToLower(strings.TrimSpace(title)) {
	case "options":
		return sectionOptions
	case "violation":
		return sectionViolation
	case "fix":
		return sectionFix
	default:
		return sectionNone
	}
}

// inlineText concatenates the text and code span content below node.
// Soft line breaks become single spaces.
func inlineText(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

// blockText returns the raw content of a fenced code block.
func blockText(block *ast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		segment := lines.At(i)
		buf.Write(segment.Value(src))
	}
	return buf.String()
}
