package generator

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
)

// configDoc is the on-disk shape of config.yml written by init. It uses the
// two-level layout the restricted parser reads back: "repo:" under "plugin:"
// binds the same name as a flat "plugin_repo:" would.
type configDoc struct {
	Plugin struct {
		Repo    string `yaml:"repo"`
		Version string `yaml:"version"`
	} `yaml:"plugin"`
	Coldfront struct {
		Version string `yaml:"version"`
	} `yaml:"coldfront"`
	AppDir  string `yaml:"app_dir"`
	VenvDir string `yaml:"venv_dir"`
	Service struct {
		User  string `yaml:"user"`
		Group string `yaml:"group"`
	} `yaml:"service"`
}

const configHeader = `# ColdFront ORCD rental portal deployment config.
# Written by deployctl init. Settings removed here fall back to defaults.

`

// MarshalConfig renders settings as a config.yml document that parses back
// to the same settings.
func MarshalConfig(settings *Settings) ([]byte, error) {
	if err := settings.Validate(); err != nil {
		return nil, errors.ValidationError(fmt.Sprintf("invalid settings: %v", err))
	}

	var doc configDoc
	doc.Plugin.Repo = settings.PluginRepo
	doc.Plugin.Version = settings.PluginVersion
	doc.Coldfront.Version = settings.ColdfrontVersion
	doc.AppDir = settings.AppDir
	doc.VenvDir = settings.VenvDir
	doc.Service.User = settings.ServiceUser
	doc.Service.Group = settings.ServiceGroup

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "failed to marshal config", err)
	}

	return append([]byte(configHeader), data...), nil
}
