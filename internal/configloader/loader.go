// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// YAML and TOML config files, environment variable support, rule packs and
// validation.
package configloader

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/yaklabco/govsg/pkg/config"
	"github.com/yaklabco/govsg/pkg/lint"
	"github.com/yaklabco/govsg/pkg/lint/rules"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOVSG_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.govsg.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/govsg/config.yaml)
//  6. System config (/etc/govsg/config.yaml)
//  7. Rule pack named by the merged "pack" key
//  8. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{name: "system", path: paths.System, skip: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, skip: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skip: opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{name: "explicit", path: paths.Explicit},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Rule names such as "no-blank-line-below-process-begin" are accepted as keys.
	normalizeRuleKeys(cfg, lint.DefaultRegistry, result)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	if err := rules.ApplyPack(cfg); err != nil {
		return nil, fmt.Errorf("apply pack: %w", err)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML or TOML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if IsTOMLConfig(path) {
		return parseTOML(content)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parseTOML decodes a TOML config and rejects keys that match no field.
func parseTOML(content []byte) (*config.Config, error) {
	cfg := &config.Config{}
	meta, err := toml.Decode(string(content), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse TOML: unknown key %q", undecoded[0].String())
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}
	return cfg, nil
}

// WriteConfig writes cfg to path, as TOML when the extension is .toml and
// as YAML otherwise.
func WriteConfig(cfg *config.Config, path string) error {
	var body []byte
	if IsTOMLConfig(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		body = buf.Bytes()
	} else {
		var err error
		body, err = cfg.ToYAML()
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
	}

	header := "# govsg configuration\n# Rule options are documented by `govsg rules <id>`.\n\n"

	if err := os.WriteFile(path, append([]byte(header), body...), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// normalizeRuleKeys converts rule names to canonical IDs in the config.
// If a rule is specified by both ID and name, warns and uses the last value encountered.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seenIDs := make(map[string]string) // canonical ID -> original key

	for key, ruleCfg := range cfg.Rules {
		rule, found := registry.Get(key)
		if !found {
			// Unknown rule - keep it as-is, validation will warn about it later
			normalized[key] = ruleCfg
			continue
		}
		canonicalID := rule.ID()

		if originalKey, exists := seenIDs[canonicalID]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using last value",
					originalKey, key, canonicalID))
		}

		seenIDs[canonicalID] = key
		normalized[canonicalID] = ruleCfg
	}

	cfg.Rules = normalized
}
