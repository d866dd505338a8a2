package lint

import (
	"fmt"
	"strings"

	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/vhdl"
)

// Case is the letter case a TokenCase rule enforces.
type Case string

const (
	LowerCase Case = "lower"
	UpperCase Case = "upper"
)

// Apply returns text in case c.
func (c Case) Apply(text string) string {
	if c == UpperCase {
		return strings.ToUpper(text)
	}
	return strings.ToLower(text)
}

// TokenCase checks the letter case of every target token and replaces
// mismatching tokens with the re-cased text.
//
// Options: case.
type TokenCase struct {
	BaseRule

	// Targets are the categories whose case is checked.
	Targets []vhdl.ID

	// Case is the default case.
	Case Case
}

// NewTokenCase creates a lowercase rule over targets.
func NewTokenCase(base BaseRule, targets ...vhdl.ID) *TokenCase {
	return &TokenCase{
		BaseRule: base,
		Targets:  targets,
		Case:     LowerCase,
	}
}

func (r *TokenCase) caseOption(ctx *RuleContext) (Case, error) {
	c := Case(ctx.OptionString("case", string(r.Case)))
	if c != LowerCase && c != UpperCase {
		return c, fmt.Errorf("option %q: unknown case %q", "case", c)
	}
	return c, nil
}

// Regions returns one single-token region per target.
func (r *TokenCase) Regions(ctx *RuleContext) ([]Toi, error) {
	c, err := r.caseOption(ctx)
	if err != nil {
		return nil, err
	}

	stream := ctx.Stream()
	positions := ctx.Index().PositionsOfAny(r.Targets...)

	regions := make([]Toi, 0, len(positions))
	for _, p := range positions {
		regions = append(regions, newToi(stream, p, p+1, string(c)))
	}
	return regions, nil
}

// AnalyzeRegion reports a token whose text differs from its re-cased form.
func (r *TokenCase) AnalyzeRegion(ctx *RuleContext, toi Toi) (Violation, bool) {
	text := toi.First().Text
	want := Case(toi.Style).Apply(text)
	if text == want {
		return Violation{}, false
	}
	return Violation{
		Line:    toi.Line,
		Column:  ctx.File.Column(toi.Start),
		Message: fmt.Sprintf("Change %q to %s case %q", text, toi.Style, want),
	}, true
}

// BuildFix replaces the token with its re-cased copy.
func (r *TokenCase) BuildFix(_ *RuleContext, v Violation) fix.Action {
	tok := v.Toi.First()
	tok.Text = Case(v.Toi.Style).Apply(tok.Text)
	return fix.Replace(v.Toi.Start, v.Toi.End, []vhdl.Token{tok})
}
