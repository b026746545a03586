package fail2ban

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fail2ban.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifestReplacesBuiltins(t *testing.T) {
	path := writeManifest(t, `
[[filter]]
name = "coldfront-custom"
failregex = ['^<HOST> - \S+ "GET /custom" 403 \d+']

[[jail]]
name = "coldfront-custom"
enabled = true
maxretry = 3
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v, want nil", err)
	}

	set := m.Effective()
	if len(set.Filters) != 1 {
		t.Fatalf("len(Filters) = %d, want 1", len(set.Filters))
	}
	if len(set.Jails) != 1 {
		t.Fatalf("len(Jails) = %d, want 1", len(set.Jails))
	}
	if set.FindFilter(FilterAuth) != nil {
		t.Error("builtin auth filter present, want manifest to replace builtins")
	}

	j := set.FindJail("coldfront-custom")
	if j == nil {
		t.Fatal("FindJail(coldfront-custom) = nil, want jail")
	}
	if j.Filter != "coldfront-custom" {
		t.Errorf("Filter = %q, want defaulted to jail name", j.Filter)
	}
	if j.LogPath != DefaultLogPath {
		t.Errorf("LogPath = %q, want %q", j.LogPath, DefaultLogPath)
	}
	if j.MaxRetry != 3 {
		t.Errorf("MaxRetry = %d, want explicit 3", j.MaxRetry)
	}
	if j.BanTime != DefaultBanTime {
		t.Errorf("BanTime = %d, want %d", j.BanTime, DefaultBanTime)
	}
}

func TestLoadManifestExtendAddsToBuiltins(t *testing.T) {
	path := writeManifest(t, `
extend = true

[[filter]]
name = "coldfront-custom"
failregex = ['^<HOST> - \S+ "GET /custom" 403 \d+']

[[jail]]
name = "coldfront-custom"
enabled = true
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v, want nil", err)
	}

	set := m.Effective()
	if len(set.Filters) != 3 {
		t.Fatalf("len(Filters) = %d, want builtins plus one", len(set.Filters))
	}
	if len(set.Jails) != 3 {
		t.Fatalf("len(Jails) = %d, want builtins plus one", len(set.Jails))
	}
	for _, name := range []string{FilterAuth, FilterProbe, "coldfront-custom"} {
		if set.FindFilter(name) == nil {
			t.Errorf("FindFilter(%q) = nil, want filter", name)
		}
		if set.FindJail(name) == nil {
			t.Errorf("FindJail(%q) = nil, want jail", name)
		}
	}
}

func TestLoadManifestExtendOverridesByName(t *testing.T) {
	path := writeManifest(t, `
extend = true

[[jail]]
name = "coldfront-probe"
enabled = true
maxretry = 3
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v, want nil", err)
	}

	set := m.Effective()
	if len(set.Jails) != 2 {
		t.Fatalf("len(Jails) = %d, want override to replace builtin", len(set.Jails))
	}

	j := set.FindJail(FilterProbe)
	if j == nil {
		t.Fatal("FindJail(coldfront-probe) = nil, want jail")
	}
	if j.MaxRetry != 3 {
		t.Errorf("MaxRetry = %d, want manifest value 3", j.MaxRetry)
	}
	// Replacement, not field merge: the builtin probe bantime is gone.
	if j.BanTime != DefaultBanTime {
		t.Errorf("BanTime = %d, want default %d", j.BanTime, DefaultBanTime)
	}
}

func TestLoadManifestNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := LoadManifest(path)
	if err == nil {
		t.Fatal("LoadManifest() error = nil, want not-found error")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("IsNotFound(err) = false, want true for %v", err)
	}
	if code := errors.GetExitCode(err); code != errors.ExitNotFound {
		t.Errorf("GetExitCode(err) = %d, want %d", code, errors.ExitNotFound)
	}
}

func TestLoadManifestMalformedTOML(t *testing.T) {
	path := writeManifest(t, "not [valid toml")

	_, err := LoadManifest(path)
	if err == nil {
		t.Fatal("LoadManifest() error = nil, want parse error")
	}
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("GetExitCode(err) = %d, want %d", code, errors.ExitConfigError)
	}
	if !strings.Contains(err.Error(), "failed to parse manifest") {
		t.Errorf("error = %q, want parse failure message", err.Error())
	}
}

func TestLoadManifestInvalidContent(t *testing.T) {
	path := writeManifest(t, `
[[filter]]
name = "coldfront-custom"
failregex = ['no host tag here']
`)

	_, err := LoadManifest(path)
	if err == nil {
		t.Fatal("LoadManifest() error = nil, want validation error")
	}
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("GetExitCode(err) = %d, want %d", code, errors.ExitConfigError)
	}
	if !strings.Contains(err.Error(), "invalid manifest") {
		t.Errorf("error = %q, want invalid manifest message", err.Error())
	}
}

func TestLoadManifestUnknownFilterReference(t *testing.T) {
	path := writeManifest(t, `
[[jail]]
name = "coldfront-custom"
enabled = true
filter = "coldfront-nope"
`)

	_, err := LoadManifest(path)
	if err == nil {
		t.Fatal("LoadManifest() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "unknown filter") {
		t.Errorf("error = %q, want unknown filter message", err.Error())
	}
}
