package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// artifactNameRegex validates fail2ban filter and jail names.
// Names become file names under /etc/fail2ban, so they must start with a
// lowercase letter or digit, followed by lowercase letters, digits, or hyphens.
// Maximum length is 63 characters.
var artifactNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

// ValidateArtifactName checks if a fail2ban filter or jail name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidateArtifactName(name string) error {
	if name == "" {
		return fmt.Errorf("artifact name cannot be empty")
	}

	if !artifactNameRegex.MatchString(name) {
		return fmt.Errorf("invalid artifact name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

const (
	DefaultConfigFile  = "config.yml"
	DefaultOutputDir   = "."
	DefaultFail2banDir = "/etc/fail2ban"
	DefaultStateDir    = "/var/lib/coldfront-deployctl"

	// ConfFileName is the deployment config file written by generate.
	ConfFileName = "deployment.conf"
)

// Paths holds the configured paths
type Paths struct {
	ConfigFile  string
	OutputDir   string
	Fail2banDir string
	StateDir    string
}

// DefaultPaths returns the default path configuration
func DefaultPaths() *Paths {
	return &Paths{
		ConfigFile:  DefaultConfigFile,
		OutputDir:   DefaultOutputDir,
		Fail2banDir: DefaultFail2banDir,
		StateDir:    DefaultStateDir,
	}
}

// ConfPath returns the path of the deployment config file under the
// configured output directory.
func (p *Paths) ConfPath() string {
	return filepath.Join(p.OutputDir, ConfFileName)
}

// FilterDir returns the fail2ban filter.d directory.
func (p *Paths) FilterDir() string {
	return filepath.Join(p.Fail2banDir, "filter.d")
}

// JailDir returns the fail2ban jail.d directory.
func (p *Paths) JailDir() string {
	return filepath.Join(p.Fail2banDir, "jail.d")
}

// ConfigFileExists checks if the configured config file is present.
func (p *Paths) ConfigFileExists() bool {
	_, err := os.Stat(p.ConfigFile)
	return err == nil
}
