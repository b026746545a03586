package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/mit-orcd/coldfront-deployctl/internal/confparse"
	"github.com/mit-orcd/coldfront-deployctl/internal/fail2ban"
)

func parseFixture(t *testing.T, name string) *confparse.Result {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("LoadFixture(%s) error: %v", name, err)
	}
	res, err := confparse.Parse(bytes.NewReader(data), confparse.Options{Prefix: confparse.DefaultPrefix})
	if err != nil {
		t.Fatalf("Parse(%s) error: %v", name, err)
	}
	return res
}

func TestValidConfigFixture(t *testing.T) {
	res := parseFixture(t, "valid_config.yml")

	if len(res.Skipped) != 0 {
		t.Errorf("got %d skipped lines, want 0: %v", len(res.Skipped), res.Skipped)
	}

	ns := res.Namespace()
	if ns.Len() != 7 {
		t.Fatalf("got %d names, want 7", ns.Len())
	}
	if v, _ := ns.Get("CFG_plugin_version"); v != "v0.2" {
		t.Errorf("CFG_plugin_version = %q, want %q", v, "v0.2")
	}
	if v, _ := ns.Get("CFG_service_user"); v != "coldfront" {
		t.Errorf("CFG_service_user = %q, want %q", v, "coldfront")
	}
}

func TestFlatConfigFixture(t *testing.T) {
	res := parseFixture(t, "flat_config.yml")

	if len(res.Nested) != 0 {
		t.Errorf("got %d nested assignments, want 0", len(res.Nested))
	}

	ns := res.Namespace()
	if ns.Len() != 7 {
		t.Fatalf("got %d names, want 7", ns.Len())
	}
	if v, _ := ns.Get("CFG_service_user"); v != "ec2-user" {
		t.Errorf("CFG_service_user = %q, want %q", v, "ec2-user")
	}
}

func TestSparseConfigFixture(t *testing.T) {
	res := parseFixture(t, "sparse_config.yml")

	ns := res.Namespace()
	if ns.Len() != 1 {
		t.Fatalf("got %d names, want 1", ns.Len())
	}
	if v, _ := ns.Get("CFG_plugin_version"); v != "v0.3" {
		t.Errorf("CFG_plugin_version = %q, want %q", v, "v0.3")
	}
}

func TestMalformedConfigFixture(t *testing.T) {
	res := parseFixture(t, "malformed_config.yml")

	if len(res.Skipped) != 3 {
		t.Errorf("got %d skipped lines, want 3: %v", len(res.Skipped), res.Skipped)
	}
	if dups := res.Duplicates(); len(dups) != 1 {
		t.Errorf("got %d duplicates, want 1: %v", len(dups), dups)
	}

	// Last binding wins.
	ns := res.Namespace()
	if v, _ := ns.Get("CFG_plugin_version"); v != "v0.4" {
		t.Errorf("CFG_plugin_version = %q, want %q", v, "v0.4")
	}
}

func TestExtendManifestFixture(t *testing.T) {
	env := NewTestEnv(t)

	data, err := ExtendManifest()
	if err != nil {
		t.Fatalf("ExtendManifest() error: %v", err)
	}
	path := env.WriteManifest(string(data))

	m, err := fail2ban.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}

	set := m.Effective()
	j := set.FindJail(fail2ban.FilterAuth)
	if j == nil {
		t.Fatal("auth jail missing from effective set")
	}
	if j.MaxRetry != 3 {
		t.Errorf("MaxRetry = %d, want manifest override 3", j.MaxRetry)
	}
	if set.FindFilter(fail2ban.FilterProbe) == nil {
		t.Error("builtin probe filter missing, want extend to keep builtins")
	}
}

func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("nonexistent.yml")
	if err == nil {
		t.Error("LoadFixture should error for nonexistent file")
	}
}

func TestTestEnv(t *testing.T) {
	env := NewTestEnv(t)

	for _, dir := range []string{env.Paths.OutputDir, env.Paths.Fail2banDir, env.Paths.StateDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	if env.Paths.ConfigFileExists() {
		t.Error("config file should not exist before WriteConfig")
	}
	env.WriteConfig("app_dir: /srv/coldfront\n")
	if !env.Paths.ConfigFileExists() {
		t.Error("config file should exist after WriteConfig")
	}
}
