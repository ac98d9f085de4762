// Package testutil provides test utilities and helpers for newsplit tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// newsplitBinaryPath caches the built newsplit binary path.
	newsplitBinaryPath string
	newsplitBuildOnce  sync.Once
	newsplitBuildErr   error
)

// E2EEnv provides an isolated environment for E2E testing. It gives each
// test its own working directory and HOME so user-level config never leaks
// into a run.
type E2EEnv struct {
	t       *testing.T
	workDir string
	homeDir string
}

// CommandResult captures the result of running a newsplit command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new E2E test environment with an isolated working
// directory and HOME, building the newsplit binary once per test session.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{
		t:       t,
		workDir: t.TempDir(),
		homeDir: t.TempDir(),
	}
	env.buildNewsplit()
	return env
}

// WorkDir returns the isolated working directory commands run in.
func (e *E2EEnv) WorkDir() string {
	return e.workDir
}

// WriteFile writes a file relative to the working directory, creating parent
// directories as needed. Returns the absolute path.
func (e *E2EEnv) WriteFile(relPath, content string) string {
	e.t.Helper()

	path := filepath.Join(e.workDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating parent directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", relPath, err)
	}
	return path
}

// ReadFile reads a file relative to the working directory.
func (e *E2EEnv) ReadFile(relPath string) string {
	e.t.Helper()

	data, err := os.ReadFile(filepath.Join(e.workDir, relPath))
	if err != nil {
		e.t.Fatalf("reading %s: %v", relPath, err)
	}
	return string(data)
}

// Run executes a newsplit command in the isolated E2E environment.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := exec.Command(newsplitBinaryPath, args...)
	cmd.Dir = e.workDir
	cmd.Env = append(os.Environ(), "HOME="+e.homeDir)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("running newsplit: %v", err)
		}
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}
}

func (e *E2EEnv) buildNewsplit() {
	e.t.Helper()

	newsplitBuildOnce.Do(func() {
		newsplitBinaryPath, newsplitBuildErr = doBuildNewsplit()
	})

	if newsplitBuildErr != nil {
		e.t.Fatalf("building newsplit: %v", newsplitBuildErr)
	}
}

func doBuildNewsplit() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "newsplit-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "newsplit")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/newsplit")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("building newsplit: %w\nOutput: %s", err, output)
	}

	return binaryPath, nil
}
