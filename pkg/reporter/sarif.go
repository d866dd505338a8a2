package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/fix"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/runner"
)

const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

	// grammarErrorRuleID identifies results for files the classifier rejected.
	grammarErrorRuleID = "grammar_error"
)

// SARIFOutput is the root SARIF log.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun is a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver carries tool metadata and the rules that produced results.
type SARIFDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []SARIFRule `json:"rules"`
}

// SARIFRule describes one rule.
type SARIFRule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name,omitempty"`
	ShortDescription SARIFMessage     `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig `json:"defaultConfiguration,omitempty"`
	Properties       *SARIFProperties `json:"properties,omitempty"`
}

// SARIFRuleConfig holds a rule's default level.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFProperties carries rule tags.
type SARIFProperties struct {
	Tags []string `json:"tags,omitempty"`
}

// SARIFResult is a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
	Fixes     []SARIFFix      `json:"fixes,omitempty"`
}

// SARIFMessage is a plain text message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation points at a region of a file.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation is a file and a region within it.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation is a file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion is a line and column range.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SARIFFix is a proposed repair.
type SARIFFix struct {
	Description     SARIFMessage          `json:"description"`
	ArtifactChanges []SARIFArtifactChange `json:"artifactChanges"`
}

// SARIFArtifactChange lists the replacements in one file.
type SARIFArtifactChange struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Replacements     []SARIFReplacement    `json:"replacements"`
}

// SARIFReplacement deletes a region and optionally inserts text.
type SARIFReplacement struct {
	DeletedRegion   SARIFRegion   `json:"deletedRegion"`
	InsertedContent *SARIFMessage `json:"insertedContent,omitempty"`
}

// SARIFReporter formats results as a SARIF 2.1.0 log.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts, out: opts.Writer}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = "dev"
	}

	run := SARIFRun{
		Tool:    SARIFTool{Driver: SARIFDriver{Name: "govsg", Version: version, Rules: []SARIFRule{}}},
		Results: []SARIFResult{},
	}
	output := &SARIFOutput{Schema: sarifSchemaURI, Version: sarifVersion}

	if result == nil {
		output.Runs = []SARIFRun{run}
		return output
	}

	seen := make(map[string]bool)
	addRule := func(rule SARIFRule) {
		if seen[rule.ID] {
			return
		}
		seen[rule.ID] = true
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, rule)
	}

	for _, file := range result.Files {
		uri := relativePath(r.opts.WorkingDir, file.Path)

		if grammarErr := file.GrammarError(); grammarErr != nil {
			addRule(SARIFRule{
				ID:               grammarErrorRuleID,
				ShortDescription: SARIFMessage{Text: "The file could not be classified"},
				DefaultConfig:    &SARIFRuleConfig{Level: "error"},
			})
			run.Results = append(run.Results, SARIFResult{
				RuleID:    grammarErrorRuleID,
				Level:     "error",
				Message:   SARIFMessage{Text: grammarErr.Error()},
				Locations: []SARIFLocation{sarifLocation(uri, SARIFRegion{StartLine: grammarErr.Line})},
			})
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			addRule(sarifRule(diag))

			region := SARIFRegion{
				StartLine:   diag.StartLine,
				StartColumn: diag.StartColumn,
				EndLine:     diag.EndLine,
				EndColumn:   diag.EndColumn,
			}
			res := SARIFResult{
				RuleID:    diag.RuleID,
				Level:     severityToSARIFLevel(diag.Severity),
				Message:   SARIFMessage{Text: diag.Message},
				Locations: []SARIFLocation{sarifLocation(uri, region)},
			}
			if diag.Fix != nil {
				res.Fixes = []SARIFFix{sarifFix(uri, diag)}
			}
			run.Results = append(run.Results, res)
		}
	}

	output.Runs = []SARIFRun{run}
	return output
}

// sarifRule describes the rule behind diag, using the registry entry when
// the rule is registered.
func sarifRule(diag lint.Diagnostic) SARIFRule {
	rule := SARIFRule{
		ID:               diag.RuleID,
		Name:             diag.RuleName,
		ShortDescription: SARIFMessage{Text: diag.Message},
		DefaultConfig:    &SARIFRuleConfig{Level: severityToSARIFLevel(diag.Severity)},
	}
	if registered, ok := lint.DefaultRegistry.Get(diag.RuleID); ok {
		rule.ShortDescription.Text = registered.Description()
		rule.DefaultConfig.Level = severityToSARIFLevel(registered.DefaultSeverity())
		if tags := registered.Tags(); len(tags) > 0 {
			rule.Properties = &SARIFProperties{Tags: tags}
		}
	}
	return rule
}

// sarifFix expresses a token action as a replacement of the reported lines.
func sarifFix(uri string, diag lint.Diagnostic) SARIFFix {
	var text strings.Builder
	for _, tok := range diag.Fix.Tokens {
		text.WriteString(tok.Text)
	}

	replacement := SARIFReplacement{
		DeletedRegion: SARIFRegion{StartLine: diag.StartLine, EndLine: diag.EndLine},
	}
	if diag.Fix.Kind != fix.KindRemove {
		replacement.InsertedContent = &SARIFMessage{Text: text.String()}
	}

	description := diag.Suggestion
	if description == "" {
		description = diag.Fix.Kind.String() + ": " + diag.Message
	}

	return SARIFFix{
		Description: SARIFMessage{Text: description},
		ArtifactChanges: []SARIFArtifactChange{{
			ArtifactLocation: SARIFArtifactLocation{URI: uri},
			Replacements:     []SARIFReplacement{replacement},
		}},
	}
}

func sarifLocation(uri string, region SARIFRegion) SARIFLocation {
	return SARIFLocation{PhysicalLocation: SARIFPhysicalLocation{
		ArtifactLocation: SARIFArtifactLocation{URI: uri},
		Region:           region,
	}}
}

func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
