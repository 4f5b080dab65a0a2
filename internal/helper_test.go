package internal

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHelper provides common utilities for tests that drive a real git binary.
type TestHelper struct {
	t       *testing.T
	tempDir string
}

// NewTestHelper creates a helper with an isolated temp directory and git identity.
// The test is skipped when git is not installed.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	tempDir := t.TempDir()
	home := filepath.Join(tempDir, "home")
	require.NoError(t, os.MkdirAll(home, 0o755))

	// Keep the user's global config (hooks, signing, default branch) out of the tests.
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	return &TestHelper{t: t, tempDir: tempDir}
}

// TempDir returns the temporary directory path
func (h *TestHelper) TempDir() string {
	return h.tempDir
}

// ProjectDir creates (or returns) a directory under the temp dir.
func (h *TestHelper) ProjectDir(name string) string {
	h.t.Helper()
	dir := filepath.Join(h.tempDir, name)
	require.NoError(h.t, os.MkdirAll(dir, 0o755))
	return dir
}

// WriteFile writes content to a file relative to dir
func (h *TestHelper) WriteFile(dir, filePath, content string) {
	h.t.Helper()
	full := filepath.Join(dir, filePath)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(h.t, os.WriteFile(full, []byte(content), 0o644))
}

// RunGit executes a git command in dir and fails the test on error.
func (h *TestHelper) RunGit(dir string, args ...string) string {
	h.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	h.t.Logf("Command: git %s", strings.Join(args, " "))
	h.t.Logf("Output: %s", string(output))
	require.NoError(h.t, err, "git %s", strings.Join(args, " "))
	return string(output)
}

// Config returns a validated config for dir with the defaults.
func (h *TestHelper) Config(dir string) *Config {
	h.t.Helper()
	cfg := &Config{
		ProjectDir:    dir,
		CommitMessage: DefaultCommitMessage,
		RepoName:      DefaultRepoName,
		Visibility:    DefaultVisibility,
		GitBinary:     DefaultGitBinary,
		HostCLI:       DefaultHostCLI,
	}
	require.NoError(h.t, cfg.Validate())
	return cfg
}
