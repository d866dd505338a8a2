package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/govsg/pkg/langdetect"
)

// sniffSize is how much of an explicitly named file is read for detection.
const sniffSize = 4096

// Discover finds VHDL files matching opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
//
// Files found by walking a directory must match an include pattern. A file
// named explicitly is accepted when it matches an include pattern or its
// extension or content is recognized as VHDL.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m := matcher{
		workDir: workDir,
		include: opts.effectiveInclude(),
		ignore:  opts.effectiveIgnore(),
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if m.acceptsExplicit(absPath) {
				add(absPath)
			}
			continue
		}

		discovered, err := m.walk(ctx, absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	sort.Strings(files)

	return files, nil
}

// Filter returns the predicate Discover applies to files found by walking
// a directory. Watchers use it to decide which changed files to re-lint.
func Filter(opts Options) (func(path string) bool, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m := matcher{
		workDir: workDir,
		include: opts.effectiveInclude(),
		ignore:  opts.effectiveIgnore(),
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	return func(path string) bool {
		relPath := m.rel(path)
		return m.included(relPath) && !m.ignored(relPath)
	}, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// matcher applies include and ignore patterns relative to workDir.
type matcher struct {
	workDir string
	include []string
	ignore  []string
}

// validate rejects malformed patterns up front.
func (m matcher) validate() error {
	for _, pattern := range append(append([]string(nil), m.include...), m.ignore...) {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	return nil
}

// rel returns path relative to workDir with forward slashes.
func (m matcher) rel(path string) string {
	relPath, err := filepath.Rel(m.workDir, path)
	if err != nil {
		relPath = path
	}
	return filepath.ToSlash(relPath)
}

func (m matcher) ignored(relPath string) bool {
	return matchAny(m.ignore, relPath)
}

func (m matcher) included(relPath string) bool {
	return matchAny(m.include, relPath)
}

// acceptsExplicit decides for a file the user named directly.
func (m matcher) acceptsExplicit(path string) bool {
	relPath := m.rel(path)
	if m.ignored(relPath) {
		return false
	}
	if m.included(relPath) || langdetect.IsVHDLPath(path) {
		return true
	}
	return langdetect.IsVHDL(path, sniff(path))
}

// walk recursively walks root and returns the included files.
func (m matcher) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := m.rel(path)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && m.ignored(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") || !entry.Type().IsRegular() {
			return nil
		}

		if m.included(relPath) && !m.ignored(relPath) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchAny reports whether relPath matches one of patterns. A pattern
// without a slash also matches the base name, so "*.vhd" works at any depth.
func matchAny(patterns []string, relPath string) bool {
	base := relPath[strings.LastIndex(relPath, "/")+1:]
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if doublestar.MatchUnvalidated(pattern, relPath) {
			return true
		}
		if !strings.Contains(pattern, "/") && doublestar.MatchUnvalidated(pattern, base) {
			return true
		}
	}
	return false
}

// sniff returns the first bytes of the file, or nil if it cannot be read.
func sniff(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, sniffSize))
	if err != nil {
		return nil
	}
	return buf
}
