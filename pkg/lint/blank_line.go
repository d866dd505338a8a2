package lint

import (
	"fmt"

	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/index"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// BlankLineStyle is the policy of a BlankLineBelow rule.
type BlankLineStyle string

const (
	// RequireBlankLine requires a blank line below the target line.
	RequireBlankLine BlankLineStyle = "require_blank_line"

	// NoBlankLine forbids blank lines below the target line.
	NoBlankLine BlankLineStyle = "no_blank_line"
)

// IsValid reports whether s is a known style.
func (s BlankLineStyle) IsValid() bool {
	return s == RequireBlankLine || s == NoBlankLine
}

// Inverse returns the opposite style.
func (s BlankLineStyle) Inverse() BlankLineStyle {
	if s == RequireBlankLine {
		return NoBlankLine
	}
	return RequireBlankLine
}

// BlankLineBelow checks what follows every line that ends with a target token.
//
// Regions are the lines directly below those lines. With RequireBlankLine a
// region violates when its first token is not a blank line; the fix inserts
// one. With NoBlankLine a region violates when it starts with a blank line;
// the fix removes the whole run of blank lines. A region holding any
// allow-listed category never violates. Violations are reported on the
// target's own line, one above the region.
//
// Options: style, allow, ignore_hierarchy.
type BlankLineBelow struct {
	BaseRule

	// Targets are the categories whose line is checked.
	Targets []vhdl.ID

	// Style is the default policy.
	Style BlankLineStyle

	// Allow lists categories that exempt a region.
	Allow []vhdl.ID

	// Hierarchy optionally restricts targets to a structural scope.
	Hierarchy *Hierarchy
}

// NewBlankLineBelow creates a blank line rule over targets.
func NewBlankLineBelow(base BaseRule, style BlankLineStyle, targets ...vhdl.ID) *BlankLineBelow {
	return &BlankLineBelow{
		BaseRule: base,
		Targets:  targets,
		Style:    style,
	}
}

// InverseStyle returns the style a sibling rule asserting the opposite uses.
func (r *BlankLineBelow) InverseStyle() BlankLineStyle {
	return r.Style.Inverse()
}

type blankLineSettings struct {
	style     BlankLineStyle
	allow     []vhdl.ID
	hierarchy *Hierarchy
}

func (r *BlankLineBelow) settings(ctx *RuleContext) (blankLineSettings, error) {
	s := blankLineSettings{
		style:     BlankLineStyle(ctx.OptionString("style", string(r.Style))),
		hierarchy: r.Hierarchy,
	}
	if !s.style.IsValid() {
		return s, fmt.Errorf("option %q: unknown style %q", "style", s.style)
	}

	allow, err := ctx.OptionIDs("allow", r.Allow)
	if err != nil {
		return s, err
	}
	s.allow = allow

	if ctx.OptionBool("ignore_hierarchy", false) {
		s.hierarchy = nil
	}
	return s, nil
}

// Regions returns the line below every line ending with a target.
func (r *BlankLineBelow) Regions(ctx *RuleContext) ([]Toi, error) {
	s, err := r.settings(ctx)
	if err != nil {
		return nil, err
	}

	idx := ctx.Index()
	stream := ctx.Stream()

	targets := idx.PositionsOfAny(r.Targets...)
	if s.hierarchy != nil {
		targets = s.hierarchy.within(idx, targets)
	}

	var regions []Toi
	lastBreak := index.None
	for _, p := range targets {
		cr := idx.CarriageReturnAfter(p)
		if cr == index.None || cr == lastBreak || !endsLine(idx, stream, p, cr) {
			continue
		}
		lastBreak = cr

		start, end, ok := lineBelow(idx, stream, cr)
		if !ok {
			continue
		}
		regions = append(regions, newToi(stream, start, end, string(s.style)))
	}
	return regions, nil
}

// AnalyzeRegion applies the region's style.
func (r *BlankLineBelow) AnalyzeRegion(ctx *RuleContext, toi Toi) (Violation, bool) {
	s, err := r.settings(ctx)
	if err != nil || toi.ContainsAny(s.allow) {
		return Violation{}, false
	}

	blank := toi.First().Is(vhdl.BlankLine)

	var message string
	switch BlankLineStyle(toi.Style) {
	case RequireBlankLine:
		if blank {
			return Violation{}, false
		}
		message = "Insert blank line below"
	case NoBlankLine:
		if !blank {
			return Violation{}, false
		}
		message = "Remove blank lines below"
	default:
		return Violation{}, false
	}

	return Violation{Line: toi.Line - 1, Column: 1, Message: message}, true
}

// BuildFix inserts a blank line at the region start or removes the region.
func (r *BlankLineBelow) BuildFix(ctx *RuleContext, v Violation) fix.Action {
	if BlankLineStyle(v.Toi.Style) == NoBlankLine {
		return fix.Remove(v.Toi.Start, v.Toi.End)
	}

	newline := ""
	if prev := v.Toi.Start - 1; ctx.Stream().InRange(prev) {
		newline = ctx.Stream().At(prev).Text
	}
	return fix.InsertBlankLine(v.Toi.Start, v.Toi.End, newline)
}
