//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/govsg"

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"cmp": Bench.Corpus,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// Build compiles bin/govsg when sources are newer than the binary.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/govsg")
}

// Install runs go install with version info.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/govsg")
}

// Check formats, lints and tests.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Default runs the race-enabled test suite with coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails")
}

// Verbose runs the test suite printing every test.
func (Test) Verbose() error {
	return gotestsum("standard-verbose")
}

// Cover writes coverage.html from the last test run.
func (Test) Cover() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// Gate runs the checks CI requires, failing on the first.
func (CI) Gate() {
	st.SerialDeps(CI.Fmt, CI.Vet, CI.Lint, Build, Test.Default, CI.ModTidy)
}

// Fmt fails when any file is not gofmt clean.
func (CI) Fmt() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// Vet runs go vet.
func (CI) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint without fixing.
func (CI) Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	files := []string{"go.mod", "go.sum"}
	before := make(map[string][]byte, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read %s: %w", name, err)
		}
		before[name] = data
	}

	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}

	for _, name := range files {
		after, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if !bytes.Equal(before[name], after) {
			return fmt.Errorf("%s changed after go mod tidy", name)
		}
	}
	return nil
}

// Corpus times full lints of the VHDL tree in BENCH_DIR (default ".") and
// prints the mean over BENCH_RUNS runs (default 5).
func (Bench) Corpus() error {
	st.Deps(Build)

	dir := cmp.Or(os.Getenv("BENCH_DIR"), ".")
	runs, err := strconv.Atoi(cmp.Or(os.Getenv("BENCH_RUNS"), "5"))
	if err != nil || runs < 1 {
		return fmt.Errorf("invalid BENCH_RUNS %q", os.Getenv("BENCH_RUNS"))
	}

	var total time.Duration
	for range runs {
		start := time.Now()
		// Findings exit non-zero; only the timing matters.
		_ = exec.Command(binary, "lint", "--format", "json", dir).Run() //nolint:gosec // built above
		total += time.Since(start)
	}
	fmt.Printf("%s: %d runs, mean %s\n", dir, runs, total/time.Duration(runs))
	return nil
}

// Micro runs the Go benchmarks.
func (Bench) Micro() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

func gotestsum(format string) error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum", "-f", format, "--",
		"-race", "-p", procs, "-parallel", procs,
		"-coverprofile=coverage.out", "-covermode=atomic", "./...")
}

func ldflags() string {
	git := func(args ...string) string {
		out, err := sh.Output("git", args...)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	}
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(git("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339))
}
