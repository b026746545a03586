package fail2ban

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
)

func TestInstallWritesBuiltins(t *testing.T) {
	root := t.TempDir()

	written, err := Install(root, Builtin())
	if err != nil {
		t.Fatalf("Install() error = %v, want nil", err)
	}

	wantPaths := []string{
		filepath.Join(root, "filter.d", "coldfront-auth.conf"),
		filepath.Join(root, "filter.d", "coldfront-probe.conf"),
		filepath.Join(root, "jail.d", "coldfront-auth.local"),
		filepath.Join(root, "jail.d", "coldfront-probe.local"),
	}
	if len(written) != len(wantPaths) {
		t.Fatalf("len(written) = %d, want %d", len(written), len(wantPaths))
	}
	for i, want := range wantPaths {
		if written[i] != want {
			t.Errorf("written[%d] = %q, want %q", i, written[i], want)
		}
	}

	content, err := os.ReadFile(wantPaths[0])
	if err != nil {
		t.Fatalf("failed to read installed filter: %v", err)
	}
	if !strings.Contains(string(content), "[Definition]") {
		t.Errorf("filter content missing [Definition] section:\n%s", content)
	}

	content, err = os.ReadFile(wantPaths[2])
	if err != nil {
		t.Fatalf("failed to read installed jail: %v", err)
	}
	if !strings.Contains(string(content), "[coldfront-auth]") {
		t.Errorf("jail content missing section header:\n%s", content)
	}
	if !strings.Contains(string(content), "enabled = true") {
		t.Errorf("jail content missing enabled setting:\n%s", content)
	}
}

func TestInstallCreatesDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "etc", "fail2ban")

	if _, err := Install(root, Builtin()); err != nil {
		t.Fatalf("Install() error = %v, want nil", err)
	}

	for _, dir := range []string{"filter.d", "jail.d"} {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestInstallOverwritesExisting(t *testing.T) {
	root := t.TempDir()
	filterDir := filepath.Join(root, "filter.d")
	if err := os.MkdirAll(filterDir, 0755); err != nil {
		t.Fatalf("failed to create filter.d: %v", err)
	}
	stale := filepath.Join(filterDir, "coldfront-auth.conf")
	if err := os.WriteFile(stale, []byte("stale content\n"), 0644); err != nil {
		t.Fatalf("failed to write stale filter: %v", err)
	}

	if _, err := Install(root, Builtin()); err != nil {
		t.Fatalf("Install() error = %v, want nil", err)
	}

	content, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("failed to read filter: %v", err)
	}
	if strings.Contains(string(content), "stale content") {
		t.Error("Install() did not overwrite existing filter file")
	}
}

func TestInstallRejectsInvalidSet(t *testing.T) {
	root := t.TempDir()
	set := &Set{
		Jails: []Jail{
			{Name: "coldfront-test", Filter: "coldfront-missing", LogPath: "/var/log/x", MaxRetry: 1, FindTime: 1, BanTime: 1, Enabled: true},
		},
	}

	_, err := Install(root, set)
	if err == nil {
		t.Fatal("Install() error = nil, want validation error")
	}

	entries, readErr := os.ReadDir(root)
	if readErr != nil {
		t.Fatalf("failed to read root: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("Install() wrote %d entries despite invalid set, want none", len(entries))
	}
}

func TestInstallEmptyRoot(t *testing.T) {
	_, err := Install("", Builtin())
	if err == nil {
		t.Fatal("Install() error = nil, want error")
	}
}

func TestInstallDirCreateFails(t *testing.T) {
	// A regular file where a directory component should be makes
	// MkdirAll fail regardless of the invoking user.
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "fail2ban")
	if err := os.WriteFile(blocker, []byte("in the way"), 0644); err != nil {
		t.Fatalf("failed to write blocker: %v", err)
	}

	_, err := Install(blocker, Builtin())
	if err == nil {
		t.Fatal("Install() error = nil, want IO error")
	}
	if code := errors.GetExitCode(err); code != errors.ExitIOError {
		t.Errorf("GetExitCode(err) = %d, want %d", code, errors.ExitIOError)
	}
}
