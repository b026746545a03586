package fail2ban

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
	"github.com/mit-orcd/coldfront-deployctl/internal/logging"
)

// Manifest is the TOML description of a filter and jail set. With Extend set
// the manifest adds to the builtin set, manifest entries winning on name
// conflicts; without it the manifest replaces the builtins entirely.
type Manifest struct {
	Extend  bool     `toml:"extend"`
	Filters []Filter `toml:"filter"`
	Jails   []Jail   `toml:"jail"`
}

// LoadManifest reads and validates a TOML manifest. A missing file is a
// not-found error; undecodable or invalid content is a config error.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ManifestNotFound(path, err)
		}
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse manifest %s", path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logging.Warn("manifest has unknown keys", "path", path, "keys", fmt.Sprint(undecoded))
	}

	set := m.Effective()
	if err := set.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid manifest %s", path), err)
	}

	logging.Debug("manifest loaded", "path", path,
		"filters", len(set.Filters), "jails", len(set.Jails), "extend", m.Extend)
	return &m, nil
}

// Effective resolves the manifest into the set to render: jail defaults are
// applied, and with Extend the builtins are merged in underneath.
func (m *Manifest) Effective() *Set {
	s := &Set{}
	if m.Extend {
		s = Builtin()
	}

	for _, f := range m.Filters {
		if existing := s.FindFilter(f.Name); existing != nil {
			*existing = f
			continue
		}
		s.Filters = append(s.Filters, f)
	}

	for _, j := range m.Jails {
		j.applyDefaults()
		if existing := s.FindJail(j.Name); existing != nil {
			*existing = j
			continue
		}
		s.Jails = append(s.Jails, j)
	}

	return s
}
