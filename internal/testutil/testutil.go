// Package testutil provides test fixtures and environment helpers
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mit-orcd/coldfront-deployctl/internal/audit"
	"github.com/mit-orcd/coldfront-deployctl/internal/config"
)

// TestEnv holds a throwaway deployment tree for command tests.
type TestEnv struct {
	T      *testing.T
	TmpDir string
	Paths  *config.Paths
}

// NewTestEnv creates a test environment with its own config, output,
// fail2ban, and state directories.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()

	paths := &config.Paths{
		ConfigFile:  filepath.Join(tmpDir, "config.yml"),
		OutputDir:   filepath.Join(tmpDir, "out"),
		Fail2banDir: filepath.Join(tmpDir, "fail2ban"),
		StateDir:    filepath.Join(tmpDir, "state"),
	}

	for _, dir := range []string{paths.OutputDir, paths.Fail2banDir, paths.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	return &TestEnv{
		T:      t,
		TmpDir: tmpDir,
		Paths:  paths,
	}
}

// WriteConfig writes content as the environment's config file and returns
// its path.
func (e *TestEnv) WriteConfig(content string) string {
	e.T.Helper()

	if err := os.WriteFile(e.Paths.ConfigFile, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write config: %v", err)
	}
	return e.Paths.ConfigFile
}

// WriteConfigFixture writes an embedded fixture as the environment's config
// file and returns its path.
func (e *TestEnv) WriteConfigFixture(name string) string {
	e.T.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	if err := os.WriteFile(e.Paths.ConfigFile, data, 0644); err != nil {
		e.T.Fatalf("Failed to write config: %v", err)
	}
	return e.Paths.ConfigFile
}

// WriteManifest writes a fail2ban manifest into the environment and returns
// its path.
func (e *TestEnv) WriteManifest(content string) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, "fail2ban.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write manifest: %v", err)
	}
	return path
}

// WriteManifestFixture writes an embedded fixture as the environment's
// fail2ban manifest and returns its path.
func (e *TestEnv) WriteManifestFixture(name string) string {
	e.T.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return e.WriteManifest(string(data))
}

// ReadConf reads the generated deployment.conf.
func (e *TestEnv) ReadConf() string {
	e.T.Helper()

	data, err := os.ReadFile(e.Paths.ConfPath())
	if err != nil {
		e.T.Fatalf("Failed to read deployment.conf: %v", err)
	}
	return string(data)
}

// Events reads the audit events recorded in the environment's state dir.
func (e *TestEnv) Events() []audit.Event {
	e.T.Helper()

	events, err := audit.NewLogger(e.Paths.StateDir).Events()
	if err != nil {
		e.T.Fatalf("Failed to read events: %v", err)
	}
	return events
}
