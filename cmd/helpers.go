package cmd

import (
	"github.com/mit-orcd/coldfront-deployctl/internal/audit"
	"github.com/mit-orcd/coldfront-deployctl/internal/config"
	"github.com/mit-orcd/coldfront-deployctl/internal/logging"
)

// paths returns the path configuration assembled from the persistent flags.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	p := config.DefaultPaths()
	p.ConfigFile = configFile
	p.StateDir = stateDir
	return p
}

// recordEvent appends an audit event. Audit failures are reported but never
// fail the command that triggered them.
func recordEvent(eventType audit.EventType, target, details string) {
	if err := audit.NewLogger(paths().StateDir).LogEvent(eventType, target, details); err != nil {
		logging.Warn("failed to record audit event", "type", string(eventType), "error", err)
	}
}
