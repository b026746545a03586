package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mit-orcd/coldfront-deployctl/internal/generator"
)

func TestPresets(t *testing.T) {
	ps := presets()
	if len(ps) != 3 {
		t.Fatalf("got %d presets, want 3", len(ps))
	}

	for _, p := range ps {
		if err := p.settings.Validate(); err != nil {
			t.Errorf("preset %q settings invalid: %v", p.name, err)
		}
	}

	if ps[0].name != "amazon-linux" {
		t.Errorf("first preset = %q, want amazon-linux", ps[0].name)
	}
	if ps[0].settings.ServiceUser != generator.DefaultServiceUser {
		t.Errorf("amazon-linux user = %q, want %q", ps[0].settings.ServiceUser, generator.DefaultServiceUser)
	}
	if ps[1].settings.ServiceUser != "coldfront" {
		t.Errorf("rhel user = %q, want coldfront", ps[1].settings.ServiceUser)
	}
}

func TestPresetSettings(t *testing.T) {
	s, ok := PresetSettings("rhel")
	if !ok {
		t.Fatal("PresetSettings(rhel) not found")
	}
	if s.ServiceUser != "coldfront" {
		t.Errorf("ServiceUser = %q, want coldfront", s.ServiceUser)
	}
	if s.PluginRepo != generator.DefaultPluginRepo {
		t.Errorf("PluginRepo = %q, want default", s.PluginRepo)
	}

	if _, ok := PresetSettings("debian"); ok {
		t.Error("PresetSettings(debian) found, want missing")
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	want := []string{"amazon-linux", "rhel", "custom"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestWizardStepTransitions(t *testing.T) {
	t.Run("preset to settings", func(t *testing.T) {
		w := newWizardModel()
		if w.step != stepPreset {
			t.Fatalf("initial step = %v, want stepPreset", w.step)
		}

		// Press enter to select the first preset
		done, settings, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if done {
			t.Error("should not be done after preset step")
		}
		if settings != nil {
			t.Error("settings should be nil")
		}
		if w.step != stepSettings {
			t.Errorf("step = %v, want stepSettings", w.step)
		}
		// Inputs should be pre-filled from the preset
		if w.inputs[fieldPluginRepo].Value() != generator.DefaultPluginRepo {
			t.Errorf("plugin repo input = %q, want preset value", w.inputs[fieldPluginRepo].Value())
		}
	})

	t.Run("enter advances through fields", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset

		if w.fieldCursor != fieldPluginRepo {
			t.Fatalf("cursor = %v, want fieldPluginRepo", w.fieldCursor)
		}

		w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if w.fieldCursor != fieldPluginVersion {
			t.Errorf("cursor = %v, want fieldPluginVersion", w.fieldCursor)
		}
		if w.step != stepSettings {
			t.Error("should stay on stepSettings between fields")
		}
	})

	t.Run("enter on last field advances to confirm", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset
		w.fieldCursor = fieldServiceGroup

		done, settings, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if done {
			t.Error("should not be done")
		}
		if settings != nil {
			t.Error("settings should be nil")
		}
		if w.step != stepConfirm {
			t.Errorf("step = %v, want stepConfirm", w.step)
		}
	})

	t.Run("empty field rejected at last enter", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset
		w.inputs[fieldServiceUser].SetValue("")
		w.fieldCursor = fieldServiceGroup

		w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if w.step != stepSettings {
			t.Error("should stay on stepSettings with an empty field")
		}
	})

	t.Run("arrow navigation wraps", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset

		w.Update(tea.KeyMsg{Type: tea.KeyUp})
		if w.fieldCursor != fieldServiceGroup {
			t.Errorf("cursor = %v, want wrap to fieldServiceGroup", w.fieldCursor)
		}

		w.Update(tea.KeyMsg{Type: tea.KeyDown})
		if w.fieldCursor != fieldPluginRepo {
			t.Errorf("cursor = %v, want wrap to fieldPluginRepo", w.fieldCursor)
		}
	})
}

func TestWizardConfirm(t *testing.T) {
	t.Run("enter confirms and produces settings", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset
		w.inputs[fieldPluginVersion].SetValue("v0.2")
		w.inputs[fieldServiceUser].SetValue("coldfront")
		w.step = stepConfirm

		done, settings, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if !done {
			t.Error("should be done after confirm")
		}
		if settings == nil {
			t.Fatal("settings should not be nil")
		}
		if settings.PluginVersion != "v0.2" {
			t.Errorf("PluginVersion = %q, want %q", settings.PluginVersion, "v0.2")
		}
		if settings.ServiceUser != "coldfront" {
			t.Errorf("ServiceUser = %q, want %q", settings.ServiceUser, "coldfront")
		}
		if settings.PluginRepo != generator.DefaultPluginRepo {
			t.Errorf("PluginRepo = %q, want preset default", settings.PluginRepo)
		}
	})

	t.Run("n restarts wizard", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset
		w.step = stepConfirm

		done, settings, _ := w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
		if done {
			t.Error("should not be done after restart")
		}
		if settings != nil {
			t.Error("settings should be nil")
		}
		if w.step != stepPreset {
			t.Errorf("step = %v, want stepPreset", w.step)
		}
		if w.inputs[fieldPluginRepo].Value() != "" {
			t.Error("inputs should be cleared")
		}
		if w.selectedPreset != "" {
			t.Error("preset should be cleared")
		}
	})
}

func TestWizardCancel(t *testing.T) {
	t.Run("ctrl+c cancels", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepSettings

		done, settings, _ := w.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if !done {
			t.Error("should be done after cancel")
		}
		if settings != nil {
			t.Error("settings should be nil (cancelled)")
		}
	})

	t.Run("esc at first step cancels", func(t *testing.T) {
		w := newWizardModel()

		done, settings, _ := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if !done {
			t.Error("should be done after esc at first step")
		}
		if settings != nil {
			t.Error("settings should be nil (cancelled)")
		}
	})

	t.Run("esc at settings goes back to preset", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset

		done, _, _ := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if done {
			t.Error("should not be done")
		}
		if w.step != stepPreset {
			t.Errorf("step = %v, want stepPreset", w.step)
		}
	})

	t.Run("esc at confirm goes back to settings", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset
		w.step = stepConfirm

		done, _, _ := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if done {
			t.Error("should not be done")
		}
		if w.step != stepSettings {
			t.Errorf("step = %v, want stepSettings", w.step)
		}
	})
}

func TestWizardView(t *testing.T) {
	t.Run("preset step shows list", func(t *testing.T) {
		w := newWizardModel()
		view := w.View()
		if !strings.Contains(view, "ColdFront Deployment Setup") {
			t.Error("should contain title")
		}
		if !strings.Contains(view, "Select deployment preset") {
			t.Error("should contain preset label")
		}
		if !strings.Contains(view, "1. Preset") {
			t.Error("should contain progress bar")
		}
	})

	t.Run("settings step shows fields", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset

		view := w.View()
		if !strings.Contains(view, "Plugin repo") {
			t.Error("should contain plugin repo field")
		}
		if !strings.Contains(view, "Service group") {
			t.Error("should contain service group field")
		}
	})

	t.Run("confirm step shows values", func(t *testing.T) {
		w := newWizardModel()
		w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // select preset
		w.inputs[fieldAppDir].SetValue("/opt/coldfront")
		w.step = stepConfirm

		view := w.View()
		if !strings.Contains(view, "/opt/coldfront") {
			t.Error("should show app dir value")
		}
		if !strings.Contains(view, "amazon-linux") {
			t.Error("should show selected preset")
		}
	})
}
