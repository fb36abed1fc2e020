package modals

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

// SettingsModelCharLimit bounds the model name input.
const SettingsModelCharLimit = 128

const optionNotifications = "notifications"

type SettingsState struct {
	// Bound form values
	selectedTheme        string
	OriginalTheme        string
	model                string
	NotificationsEnabled bool

	// MultiSelect binding
	generalOptions []string

	form *huh.Form

	availableWidth int
}

func (*SettingsState) modalState() {}

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return max(s.availableWidth-10, 20)
	}
	return ModalWidth - 10
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
	return s, cmd
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetModel returns the trimmed model name.
func (s *SettingsState) GetModel() string {
	return strings.TrimSpace(s.model)
}

// GetNotificationsEnabled returns whether reply notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

// NewSettingsState creates a new SettingsState with the current settings values.
// themes and themeDisplayNames are parallel slices.
func NewSettingsState(themes, themeDisplayNames []string, currentTheme, currentModel string, notificationsEnabled bool) *SettingsState {
	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		model:                currentModel,
		NotificationsEnabled: notificationsEnabled,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Notify when a reply lands in the background", optionNotifications).
			Selected(notificationsEnabled),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewInput().
			Title("Model").
			Description("Chat completion model for the assistant").
			Placeholder("openai/gpt-5-mini").
			CharLimit(SettingsModelCharLimit).
			Value(&s.model),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	primeForm(s.form)
	return s
}
