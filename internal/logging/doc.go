// Package logging provides logging utilities for deployctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("parsing config", "path", path, "prefix", prefix)
//	logging.Warn("skipping malformed line", "line", lineno)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Resolving settings from %s...", configPath)
//	logging.UserSuccess("Wrote %s", confPath)
//	logging.UserWarning("Config %s not found, using defaults", configPath)
//	logging.UserError("Failed to write deployment config: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
