package generator

import (
	"fmt"

	"github.com/mit-orcd/coldfront-deployctl/internal/confparse"
)

// Default values substituted for settings the operator config leaves unset.
const (
	DefaultPluginRepo       = "https://github.com/mit-orcd/cf-orcd-rental.git"
	DefaultPluginVersion    = "v0.1"
	DefaultColdfrontVersion = "coldfront[common]"
	DefaultAppDir           = "/srv/coldfront"
	DefaultVenvDir          = "/srv/coldfront/venv"
	DefaultServiceUser      = "ec2-user"
	DefaultServiceGroup     = "nginx"
)

// Settings is the fully resolved deployment configuration written to
// deployment.conf.
type Settings struct {
	PluginRepo       string
	PluginVersion    string
	ColdfrontVersion string
	AppDir           string
	VenvDir          string
	ServiceUser      string
	ServiceGroup     string
}

// Source identifies where a resolved value came from.
type Source string

const (
	SourceConfig  Source = "config"
	SourceDefault Source = "default"
)

// FieldValue reports one resolved setting with its provenance.
type FieldValue struct {
	Key    string // output key, e.g. PLUGIN_REPO
	Name   string // namespace name it resolves from, e.g. CFG_plugin_repo
	Value  string
	Source Source
}

// fieldSpec binds an output key to its namespace name, default value, and
// Settings field. The order of fieldSpecs is the order keys appear in
// deployment.conf.
type fieldSpec struct {
	key  string
	name string
	def  string
	set  func(*Settings, string)
}

var fieldSpecs = []fieldSpec{
	{"PLUGIN_REPO", "plugin_repo", DefaultPluginRepo, func(s *Settings, v string) { s.PluginRepo = v }},
	{"PLUGIN_VERSION", "plugin_version", DefaultPluginVersion, func(s *Settings, v string) { s.PluginVersion = v }},
	{"COLDFRONT_VERSION", "coldfront_version", DefaultColdfrontVersion, func(s *Settings, v string) { s.ColdfrontVersion = v }},
	{"APP_DIR", "app_dir", DefaultAppDir, func(s *Settings, v string) { s.AppDir = v }},
	{"VENV_DIR", "venv_dir", DefaultVenvDir, func(s *Settings, v string) { s.VenvDir = v }},
	{"SERVICE_USER", "service_user", DefaultServiceUser, func(s *Settings, v string) { s.ServiceUser = v }},
	{"SERVICE_GROUP", "service_group", DefaultServiceGroup, func(s *Settings, v string) { s.ServiceGroup = v }},
}

// Resolve builds Settings from a parsed namespace, substituting the default
// for every absent name. A nil namespace yields all defaults. The returned
// fields report each value with its provenance, in output order.
//
// Both config spellings reach the same namespace name: a flat "plugin_repo:"
// and a "repo:" under a "plugin:" section both generate CFG_plugin_repo.
func Resolve(ns *confparse.Namespace) (*Settings, []FieldValue) {
	s := &Settings{}
	fields := make([]FieldValue, 0, len(fieldSpecs))

	for _, spec := range fieldSpecs {
		name := confparse.DefaultPrefix + spec.name
		value, source := spec.def, SourceDefault
		if ns != nil {
			if v, ok := ns.Get(name); ok {
				value, source = v, SourceConfig
			}
		}
		spec.set(s, value)
		fields = append(fields, FieldValue{Key: spec.key, Name: name, Value: value, Source: source})
	}

	return s, fields
}

// Validate checks that every setting has a value. Settings built through
// Resolve always pass; hand-built values may not.
func (s *Settings) Validate() error {
	checks := []struct {
		field string
		value string
	}{
		{"plugin repository", s.PluginRepo},
		{"plugin version", s.PluginVersion},
		{"coldfront version", s.ColdfrontVersion},
		{"app directory", s.AppDir},
		{"venv directory", s.VenvDir},
		{"service user", s.ServiceUser},
		{"service group", s.ServiceGroup},
	}
	for _, c := range checks {
		if c.value == "" {
			return fmt.Errorf("%s is required", c.field)
		}
	}
	return nil
}
