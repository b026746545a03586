// Package tui provides the interactive setup wizard for deployctl.
//
// This package uses the Bubble Tea framework. The wizard walks the operator
// through three steps (preset, settings, confirm) and returns the resolved
// deployment settings:
//
//	settings, err := tui.RunWizard()
//	if err != nil {
//	    return err
//	}
//	if settings == nil {
//	    // Operator cancelled.
//	    return nil
//	}
//	// Write settings to config.yml.
//
// # Wizard Features
//
//   - Preset selection pre-fills the form for a deployment target
//     (amazon-linux, rhel, custom)
//   - One text input per deployment setting, arrow/tab navigation
//   - Confirm step summarizes everything before any file is written
//   - Esc steps back, Ctrl+C cancels from anywhere
//
// Presets are also exposed for non-interactive use through PresetNames and
// PresetSettings.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
