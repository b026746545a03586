// Package config provides path configuration and name validation for deployctl.
//
// # Paths
//
// Paths collects the locations every command works against:
//
//	type Paths struct {
//	    ConfigFile  string // Operator config (restricted YAML subset), default config.yml
//	    OutputDir   string // Where deployment.conf is written, default .
//	    Fail2banDir string // fail2ban root for filter/jail installs, default /etc/fail2ban
//	    StateDir    string // Audit log location, default /var/lib/coldfront-deployctl
//	}
//
// DefaultPaths returns the defaults; commands override individual fields from
// flags before using them.
//
// # Validation
//
// ValidateArtifactName guards fail2ban filter and jail names before they are
// turned into file names. Names are restricted to lowercase letters, digits,
// and hyphens so they can never carry path separators into filter.d or jail.d.
package config
