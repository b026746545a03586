// Package testutil provides test fixtures and utilities.
//
// This package contains embedded config fixtures and a throwaway
// environment helper for command tests.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/valid_config.yml
//	fixtures/flat_config.yml
//	fixtures/sparse_config.yml
//	fixtures/malformed_config.yml
//	fixtures/extend_manifest.toml
//
// Helper functions return the raw bytes:
//
//	data, err := testutil.ValidConfig()
//	data, err := testutil.MalformedConfig()
//
// # Test Environment
//
// NewTestEnv builds an isolated deployment tree under t.TempDir with its
// own config file path, output directory, fail2ban root, and state
// directory:
//
//	env := testutil.NewTestEnv(t)
//	env.WriteConfigFixture("valid_config.yml")
//	// run command under test against env.Paths
//	conf := env.ReadConf()
//	events := env.Events()
package testutil
