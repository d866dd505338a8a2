// Package rules provides the built-in govsg rule catalog.
//
// Every rule is an instance of one of the generic families in package lint,
// parameterized with the categories it targets:
//
//   - Blank lines (tag "blank_line"): lint.BlankLineBelow rules numbered
//     xxx_100 and up check the line below a line ending with a target.
//   - Keyword case (tag "keyword_case"): lint.TokenCase rules numbered xxx_500
//     check the letter case of keywords.
//
// Rule IDs are "<production>_<number>"; each rule also carries its
// production as a tag, so "--disable process" turns off every process rule.
//
// Each rule has a Markdown document under docs/ with Violation and Fix
// examples, available through Doc.
//
// # Rule Packs
//
// Packs are configuration presets selected with the "pack" config key:
//
//   - default: the built-in defaults
//   - strict: every rule enabled, blank line rules as errors
//   - relaxed: keyword case rules only, as info
package rules
