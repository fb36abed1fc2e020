package ui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Login is the access card shown while the session is locked.
type Login struct {
	input  textinput.Model
	failed bool
}

// NewLogin creates the access card with a masked, focused input
func NewLogin() *Login {
	ti := textinput.New()
	ti.Placeholder = LoginInputPlaceholder
	ti.Prompt = "› "
	ti.CharLimit = LoginInputCharLimit
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.SetWidth(LoginCardWidth - 12)
	ti.Focus()
	return &Login{input: ti}
}

// Focus focuses the code input
func (l *Login) Focus() tea.Cmd {
	return l.input.Focus()
}

// Value returns the typed access code
func (l *Login) Value() string {
	return l.input.Value()
}

// Reset clears the typed code and the error line
func (l *Login) Reset() {
	l.input.Reset()
	l.failed = false
}

// SetFailed shows or hides the error line
func (l *Login) SetFailed(failed bool) {
	l.failed = failed
}

// Failed reports whether the error line is showing
func (l *Login) Failed() bool {
	return l.failed
}

// Update forwards key input to the code field
func (l *Login) Update(msg tea.Msg) (*Login, tea.Cmd) {
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// View renders the card centered in width x height
func (l *Login) View(width, height int) string {
	sub := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(LoginSubtitle)

	rows := []string{
		LoginTitleStyle.Render(LoginTitle),
		sub,
		"",
		l.input.View(),
	}
	if l.failed {
		rows = append(rows, "", StatusErrorStyle.Render("✕ "+LoginErrorText))
	}
	rows = append(rows, "", ModalHelpStyle.UnsetMarginTop().Render("enter: Initiate_Sync  ctrl+c: quit"))

	card := LoginCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
