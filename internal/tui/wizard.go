package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mit-orcd/coldfront-deployctl/internal/generator"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepPreset wizardStep = iota
	stepSettings
	stepConfirm
)

// settingsField identifies a field in the settings step.
type settingsField int

const (
	fieldPluginRepo settingsField = iota
	fieldPluginVersion
	fieldColdfrontVersion
	fieldAppDir
	fieldVenvDir
	fieldServiceUser
	fieldServiceGroup
	fieldCount
)

// fieldLabels drive both the settings form and the confirm summary.
var fieldLabels = [fieldCount]struct {
	name string
	desc string
}{
	{"Plugin repo", "Git repository of the rental plugin"},
	{"Plugin version", "Tag or branch of the plugin to deploy"},
	{"ColdFront version", "pip requirement for ColdFront itself"},
	{"App dir", "Directory the portal is installed into"},
	{"Venv dir", "Python virtualenv directory"},
	{"Service user", "Unix user the portal runs as"},
	{"Service group", "Unix group shared with the web server"},
}

// preset pre-fills the settings form for a deployment target.
type preset struct {
	name        string
	description string
	settings    generator.Settings
}

func presets() []preset {
	base, _ := generator.Resolve(nil)

	rhel := *base
	rhel.ServiceUser = "coldfront"

	return []preset{
		{"amazon-linux", "EC2 Amazon Linux behind nginx", *base},
		{"rhel", "RHEL or Rocky with a dedicated coldfront user", rhel},
		{"custom", "Start from the defaults and edit everything", *base},
	}
}

// PresetNames lists the wizard presets for non-interactive use.
func PresetNames() []string {
	var names []string
	for _, p := range presets() {
		names = append(names, p.name)
	}
	return names
}

// PresetSettings returns the settings a named preset pre-fills.
func PresetSettings(name string) (*generator.Settings, bool) {
	for _, p := range presets() {
		if p.name == name {
			s := p.settings
			return &s, true
		}
	}
	return nil, false
}

// presetItem implements list.Item for preset selection.
type presetItem struct {
	name        string
	description string
}

func (p presetItem) Title() string       { return p.name }
func (p presetItem) Description() string { return p.description }
func (p presetItem) FilterValue() string { return p.name }

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// wizardModel drives the multi-step setup wizard.
type wizardModel struct {
	step wizardStep

	// Step 1: preset
	presetList list.Model
	presets    []preset

	// Step 2: settings
	fieldCursor settingsField
	inputs      [fieldCount]textinput.Model

	selectedPreset string

	width  int
	height int
}

func newWizardModel() wizardModel {
	w := wizardModel{presets: presets()}

	for i := range w.inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 60
		w.inputs[i] = ti
	}

	items := make([]list.Item, len(w.presets))
	for i, p := range w.presets {
		items[i] = presetItem{name: p.name, description: p.description}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 12)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	w.presetList = l

	return w
}

func (w *wizardModel) Init() tea.Cmd {
	return nil
}

// applyPreset fills the settings inputs from a preset.
func (w *wizardModel) applyPreset(p preset) {
	w.selectedPreset = p.name
	values := [fieldCount]string{
		p.settings.PluginRepo,
		p.settings.PluginVersion,
		p.settings.ColdfrontVersion,
		p.settings.AppDir,
		p.settings.VenvDir,
		p.settings.ServiceUser,
		p.settings.ServiceGroup,
	}
	for i, v := range values {
		w.inputs[i].SetValue(v)
	}
}

// settings builds a Settings from the current input values.
func (w *wizardModel) settings() *generator.Settings {
	value := func(f settingsField) string { return strings.TrimSpace(w.inputs[f].Value()) }
	return &generator.Settings{
		PluginRepo:       value(fieldPluginRepo),
		PluginVersion:    value(fieldPluginVersion),
		ColdfrontVersion: value(fieldColdfrontVersion),
		AppDir:           value(fieldAppDir),
		VenvDir:          value(fieldVenvDir),
		ServiceUser:      value(fieldServiceUser),
		ServiceGroup:     value(fieldServiceGroup),
	}
}

// Update processes a message and returns (done, settings, cmd).
// done=true with non-nil settings means the wizard completed successfully.
// done=true with nil settings means the wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *generator.Settings, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = ws.Width
		w.height = ws.Height
		if ws.Width > 4 && ws.Height > 10 {
			w.presetList.SetSize(ws.Width-4, ws.Height-10)
		}
		return false, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepPreset:
		return w.updatePreset(msg)
	case stepSettings:
		return w.updateSettings(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *generator.Settings, tea.Cmd) {
	switch w.step {
	case stepPreset:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepSettings:
		w.step = stepPreset
		w.blurInputs()
		return false, nil, nil
	case stepConfirm:
		w.step = stepSettings
		return false, nil, w.focusField(w.fieldCursor)
	}
	return false, nil, nil
}

func (w *wizardModel) updatePreset(msg tea.Msg) (bool, *generator.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if item, ok := w.presetList.SelectedItem().(presetItem); ok {
			for _, p := range w.presets {
				if p.name == item.name {
					w.applyPreset(p)
					break
				}
			}
			w.step = stepSettings
			return false, nil, w.focusField(fieldPluginRepo)
		}
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.presetList, cmd = w.presetList.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) blurInputs() {
	for i := range w.inputs {
		w.inputs[i].Blur()
	}
}

func (w *wizardModel) focusField(f settingsField) tea.Cmd {
	w.blurInputs()
	w.fieldCursor = f
	w.inputs[f].Focus()
	return textinput.Blink
}

func (w *wizardModel) updateSettings(msg tea.Msg) (bool, *generator.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			if w.fieldCursor == fieldCount-1 {
				if w.settings().Validate() != nil {
					return false, nil, nil
				}
				w.blurInputs()
				w.step = stepConfirm
				return false, nil, nil
			}
			return false, nil, w.focusField(w.fieldCursor + 1)
		case tea.KeyDown, tea.KeyTab:
			return false, nil, w.focusField((w.fieldCursor + 1) % fieldCount)
		case tea.KeyUp, tea.KeyShiftTab:
			return false, nil, w.focusField((w.fieldCursor - 1 + fieldCount) % fieldCount)
		}
	}

	var cmd tea.Cmd
	w.inputs[w.fieldCursor], cmd = w.inputs[w.fieldCursor].Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *generator.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			s := w.settings()
			if s.Validate() != nil {
				return false, nil, nil
			}
			return true, s, nil
		case "n":
			// Restart wizard
			w.step = stepPreset
			w.selectedPreset = ""
			w.fieldCursor = fieldPluginRepo
			w.blurInputs()
			for i := range w.inputs {
				w.inputs[i].SetValue("")
			}
			return false, nil, nil
		}
	}
	return false, nil, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("ColdFront Deployment Setup"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepPreset:
		b.WriteString(wizardLabelStyle.Render("Select deployment preset:"))
		b.WriteString("\n")
		b.WriteString(w.presetList.View())
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to select, Esc to quit."))
	case stepSettings:
		b.WriteString(wizardLabelStyle.Render("Deployment settings:"))
		b.WriteString("\n\n")
		for f := settingsField(0); f < fieldCount; f++ {
			b.WriteString(w.renderField(f))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to advance, arrows to move, Esc to go back."))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		if w.selectedPreset != "" {
			b.WriteString(fmt.Sprintf("  %-19s%s\n", "Preset:", wizardValueStyle.Render(w.selectedPreset)))
		}
		s := w.settings()
		values := [fieldCount]string{
			s.PluginRepo, s.PluginVersion, s.ColdfrontVersion,
			s.AppDir, s.VenvDir, s.ServiceUser, s.ServiceGroup,
		}
		for f := settingsField(0); f < fieldCount; f++ {
			b.WriteString(fmt.Sprintf("  %-19s%s\n", fieldLabels[f].name+":", wizardValueStyle.Render(values[f])))
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to write config.yml, n to restart, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Preset"},
		{2, "Settings"},
		{3, "Confirm"},
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == int(w.step)+1 {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

func (w *wizardModel) renderField(f settingsField) string {
	cursor := " "
	if w.fieldCursor == f {
		cursor = ">"
	}

	label := fieldLabels[f]
	if w.fieldCursor == f {
		line := fmt.Sprintf("  %s %s: %s", cursor, label.name, w.inputs[f].View())
		return selectedStyle.Render(line) + "\n" + wizardDimStyle.Render("      "+label.desc)
	}
	line := fmt.Sprintf("  %s %s: %s", cursor, label.name, w.inputs[f].Value())
	return line + "\n" + wizardDimStyle.Render("      "+label.desc)
}

// program adapts the wizard to the tea.Model interface for standalone use.
type program struct {
	wizard *wizardModel
	result *generator.Settings
	done   bool
}

func (p *program) Init() tea.Cmd { return p.wizard.Init() }

func (p *program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, settings, cmd := p.wizard.Update(msg)
	if done {
		p.done = true
		p.result = settings
		return p, tea.Quit
	}
	return p, cmd
}

func (p *program) View() string {
	if p.done {
		return ""
	}
	return p.wizard.View()
}

// RunWizard runs the interactive setup wizard and returns the chosen
// settings. A nil Settings with nil error means the operator cancelled.
func RunWizard() (*generator.Settings, error) {
	m := newWizardModel()
	p := tea.NewProgram(&program{wizard: &m}, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*program).result, nil
}
