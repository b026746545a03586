package fail2ban

import (
	"fmt"
	"strings"

	"github.com/mit-orcd/coldfront-deployctl/internal/config"
)

// Jail policy defaults applied to manifest entries that leave them unset.
const (
	DefaultLogPath  = "/var/log/nginx/access.log"
	DefaultPort     = "http,https"
	DefaultMaxRetry = 5
	DefaultFindTime = 600
	DefaultBanTime  = 3600
)

// Filter is a named set of log-line matchers. Failregex patterns use
// fail2ban's syntax, including the <HOST> capture tag.
type Filter struct {
	Name        string   `toml:"name"`
	Failregex   []string `toml:"failregex"`
	Ignoreregex []string `toml:"ignoreregex"`
}

// Validate checks that the Filter can be rendered and installed.
func (f *Filter) Validate() error {
	if err := config.ValidateArtifactName(f.Name); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if len(f.Failregex) == 0 {
		return fmt.Errorf("filter %s: at least one failregex is required", f.Name)
	}
	for i, re := range f.Failregex {
		if !strings.Contains(re, "<HOST>") {
			return fmt.Errorf("filter %s: failregex %d has no <HOST> tag", f.Name, i+1)
		}
	}
	return nil
}

// Jail binds a filter to a log source and a ban policy. FindTime and BanTime
// are in seconds; a negative BanTime means a permanent ban.
type Jail struct {
	Name     string `toml:"name"`
	Filter   string `toml:"filter"`
	LogPath  string `toml:"logpath"`
	Port     string `toml:"port"`
	MaxRetry int    `toml:"maxretry"`
	FindTime int    `toml:"findtime"`
	BanTime  int    `toml:"bantime"`
	Enabled  bool   `toml:"enabled"`
}

// applyDefaults fills unset jail fields with the portal defaults.
func (j *Jail) applyDefaults() {
	if j.Filter == "" {
		j.Filter = j.Name
	}
	if j.LogPath == "" {
		j.LogPath = DefaultLogPath
	}
	if j.Port == "" {
		j.Port = DefaultPort
	}
	if j.MaxRetry == 0 {
		j.MaxRetry = DefaultMaxRetry
	}
	if j.FindTime == 0 {
		j.FindTime = DefaultFindTime
	}
	if j.BanTime == 0 {
		j.BanTime = DefaultBanTime
	}
}

// Validate checks the Jail after defaults are applied.
func (j *Jail) Validate() error {
	if err := config.ValidateArtifactName(j.Name); err != nil {
		return fmt.Errorf("jail: %w", err)
	}
	if err := config.ValidateArtifactName(j.Filter); err != nil {
		return fmt.Errorf("jail %s: %w", j.Name, err)
	}
	if j.LogPath == "" {
		return fmt.Errorf("jail %s: logpath is required", j.Name)
	}
	if j.MaxRetry < 1 {
		return fmt.Errorf("jail %s: maxretry must be at least 1 (got %d)", j.Name, j.MaxRetry)
	}
	if j.FindTime < 1 {
		return fmt.Errorf("jail %s: findtime must be positive (got %d)", j.Name, j.FindTime)
	}
	if j.BanTime == 0 {
		return fmt.Errorf("jail %s: bantime cannot be zero", j.Name)
	}
	return nil
}

// Set is a validated collection of filters and jails ready to render.
type Set struct {
	Filters []Filter
	Jails   []Jail
}

// Validate checks every artifact, name uniqueness, and that each jail
// references a filter in the set.
func (s *Set) Validate() error {
	filterNames := make(map[string]bool)
	for i := range s.Filters {
		f := &s.Filters[i]
		if err := f.Validate(); err != nil {
			return err
		}
		if filterNames[f.Name] {
			return fmt.Errorf("duplicate filter name: %s", f.Name)
		}
		filterNames[f.Name] = true
	}

	jailNames := make(map[string]bool)
	for i := range s.Jails {
		j := &s.Jails[i]
		if err := j.Validate(); err != nil {
			return err
		}
		if jailNames[j.Name] {
			return fmt.Errorf("duplicate jail name: %s", j.Name)
		}
		jailNames[j.Name] = true
		if !filterNames[j.Filter] {
			return fmt.Errorf("jail %s references unknown filter %s", j.Name, j.Filter)
		}
	}

	return nil
}

// FindFilter returns the named filter, or nil if absent.
func (s *Set) FindFilter(name string) *Filter {
	for i := range s.Filters {
		if s.Filters[i].Name == name {
			return &s.Filters[i]
		}
	}
	return nil
}

// FindJail returns the named jail, or nil if absent.
func (s *Set) FindJail(name string) *Jail {
	for i := range s.Jails {
		if s.Jails[i].Name == name {
			return &s.Jails[i]
		}
	}
	return nil
}
