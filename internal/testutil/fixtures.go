package testutil

import "embed"

//go:embed fixtures/*.yml fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// ValidConfig returns a config covering every deployment setting through
// both flat and sectioned spellings.
func ValidConfig() ([]byte, error) {
	return LoadFixture("valid_config.yml")
}

// FlatConfig returns a config using only flat top-level spellings.
func FlatConfig() ([]byte, error) {
	return LoadFixture("flat_config.yml")
}

// SparseConfig returns a config overriding a single setting.
func SparseConfig() ([]byte, error) {
	return LoadFixture("sparse_config.yml")
}

// MalformedConfig returns a config mixing valid bindings with lines the
// parser skips and a duplicated name.
func MalformedConfig() ([]byte, error) {
	return LoadFixture("malformed_config.yml")
}

// ExtendManifest returns a fail2ban manifest that extends the builtin set.
func ExtendManifest() ([]byte, error) {
	return LoadFixture("extend_manifest.toml")
}
