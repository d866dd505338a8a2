// Package config defines the configuration types for govsg.
// These are plain data structures; discovery and file loading live in
// internal/configloader.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration.
//
// Options understood by the built-in rule families:
//   - style: "require_blank_line" or "no_blank_line"
//   - allow: list of "base.sub" categories that exempt a region
//   - ignore_hierarchy: drop the structural search limit
//   - case: "lower" or "upper"
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled" toml:"enabled"`
	Severity *string        `yaml:"severity" toml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix" toml:"auto_fix"`
	Options  map[string]any `yaml:"options" toml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Mode    string `yaml:"mode" toml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
	FormatDiff  OutputFormat = "diff"
)

// IsValid reports whether f is a supported output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSARIF, FormatDiff:
		return true
	default:
		return false
	}
}

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "loop-keyword-case"
	RuleFormatID       RuleFormat = "id"       // "loop_statement_500"
	RuleFormatCombined RuleFormat = "combined" // "loop_statement_500/loop-keyword-case"
)

// FormatRuleID renders a rule identifier in the given format.
// An empty name always renders as the ID.
func FormatRuleID(format RuleFormat, ruleID, ruleName string) string {
	if ruleName == "" {
		return ruleID
	}
	switch format {
	case RuleFormatName:
		return ruleName
	case RuleFormatCombined:
		return ruleID + "/" + ruleName
	default:
		return ruleID
	}
}

// DefaultInclude are the file patterns linted when none are configured.
//
//nolint:gochecknoglobals // Read-only defaults.
var DefaultInclude = []string{"**/*.vhd", "**/*.vhdl"}

// Config is the root configuration structure.
type Config struct {
	// SeverityDefault replaces the built-in severity of every rule.
	// Empty keeps each rule's own default.
	SeverityDefault string `yaml:"severity_default" toml:"severity_default"`

	// Pack names a built-in preset applied beneath Rules.
	Pack string `yaml:"pack" toml:"pack"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules" toml:"rules"`

	// Include contains doublestar patterns selecting files inside directories.
	Include []string `yaml:"include" toml:"include"`

	// Ignore contains doublestar patterns for files to skip.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// Lookahead bounds the search window for the next significant token.
	// Zero means the index default.
	Lookahead int `yaml:"lookahead" toml:"lookahead"`

	// MaxFixPasses bounds the analyze and fix iterations per file.
	// Zero means the pipeline default.
	MaxFixPasses int `yaml:"max_fix_passes" toml:"max_fix_passes"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-" toml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`

	// EnableRules contains rule IDs, names or tags to explicitly enable.
	EnableRules []string `yaml:"-" toml:"-"`

	// DisableRules contains rule IDs, names or tags to explicitly disable.
	DisableRules []string `yaml:"-" toml:"-"`

	// FixRules limits auto-fixing to specific rule IDs.
	FixRules []string `yaml:"-" toml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Rules: make(map[string]RuleConfig),
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatID,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// IncludePatterns returns the configured include patterns or the defaults.
func (c *Config) IncludePatterns() []string {
	if c == nil || len(c.Include) == 0 {
		return DefaultInclude
	}
	return c.Include
}
