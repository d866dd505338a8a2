// Package langdetect recognizes VHDL sources. It uses go-enry to map file
// extensions to languages and falls back to content patterns for files with
// unusual or missing extensions, so a runner can accept VHDL files that the
// default include globs would miss.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifiers returned by Detect.
const (
	VHDL              = "vhdl"
	langVerilog       = "verilog"
	langSystemVerilog = "systemverilog"
	langText          = "text"
)

// hdlCandidates restricts the classifier to hardware description languages.
//
//nolint:gochecknoglobals // Read-only candidate list.
var hdlCandidates = []string{"VHDL", "Verilog", "SystemVerilog"}

// Detect returns the language of a file from its path and content.
// Returns "text" if detection fails or confidence is low.
func Detect(path string, content []byte) string {
	// Strategy 1: an unambiguous extension.
	if path != "" {
		if langs := enry.GetLanguagesByExtension(path, content, nil); len(langs) == 1 {
			return normalize(langs[0])
		}
	}

	if len(content) == 0 || enry.IsBinary(content) {
		return langText
	}

	// Strategy 2: design unit patterns.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Strategy 3: classifier over HDL candidates.
	if lang, safe := enry.GetLanguageByClassifier(content, hdlCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// IsVHDL reports whether the file at path with the given content is VHDL.
func IsVHDL(path string, content []byte) bool {
	return Detect(path, content) == VHDL
}

// IsVHDLPath reports whether the extension of path maps to VHDL.
func IsVHDLPath(path string) bool {
	for _, lang := range enry.GetLanguagesByExtension(path, nil, nil) {
		if normalize(lang) == VHDL {
			return true
		}
	}
	return false
}

// detectByPattern checks for language-specific patterns that are highly indicative.
func detectByPattern(content []byte) string {
	lower := bytes.ToLower(content)

	if lang := detectVHDL(lower); lang != "" {
		return lang
	}
	if lang := detectVerilog(lower); lang != "" {
		return lang
	}
	return ""
}

// detectVHDL checks for VHDL design units and context clauses.
func detectVHDL(lower []byte) string {
	text := string(lower)
	switch {
	case strings.Contains(text, "library ieee;"):
		return VHDL
	case strings.Contains(text, "entity ") && strings.Contains(text, " is") && strings.Contains(text, "end"):
		return VHDL
	case strings.Contains(text, "architecture ") && strings.Contains(text, " of "):
		return VHDL
	case strings.Contains(text, "package body "):
		return VHDL
	}
	return ""
}

// detectVerilog checks for Verilog module declarations.
func detectVerilog(lower []byte) string {
	if bytes.Contains(lower, []byte("module ")) && bytes.Contains(lower, []byte("endmodule")) {
		if bytes.Contains(lower, []byte("always_ff")) || bytes.Contains(lower, []byte("logic ")) {
			return langSystemVerilog
		}
		return langVerilog
	}
	return ""
}

// normalize converts go-enry language names to lowercase identifiers.
func normalize(lang string) string {
	return strings.ToLower(lang)
}
