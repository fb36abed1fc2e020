package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/aegis/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current frame as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	// Modals replace the frame, centered on the full screen
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	ctx := ui.GetViewContext()
	var body string
	if m.Unlocked() {
		body = m.renderPanels()
	} else {
		body = m.login.View(ctx.TerminalWidth, ctx.ContentHeight)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}

// renderPanels lays the drive out for the current viewport class. Desktop
// docks explorer, chat and preview left to right; mobile draws at most one
// drawer to the left of the dimmed chat.
func (m *Model) renderPanels() string {
	var parts []string
	if m.isDesktop() {
		parts = append(parts, m.explorer.View(), m.chat.View())
		if m.panelVisible(FocusPreview) {
			parts = append(parts, m.preview.View())
		}
	} else {
		switch {
		case m.panelVisible(FocusExplorer):
			parts = append(parts, m.explorer.View())
		case m.panelVisible(FocusPreview):
			parts = append(parts, m.preview.View())
		}
		parts = append(parts, m.chat.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	var mode ui.FooterMode
	switch {
	case !m.Unlocked():
		mode = ui.FooterLogin
	case m.modal.IsVisible():
		mode = ui.FooterModal
	case m.explorer.IsSearchMode():
		mode = ui.FooterSearch
	case m.layout.OverlayVisible():
		mode = ui.FooterOverlay
	case m.focus == FocusChat && m.IsStreaming():
		mode = ui.FooterStreaming
	case m.focus == FocusChat:
		mode = ui.FooterChat
	case m.focus == FocusPreview:
		mode = ui.FooterPreview
	default:
		mode = ui.FooterExplorer
	}

	hasNotice := false
	if b := m.bridge(); b != nil {
		hasNotice = b.Notice() != ""
	}
	_, hasSuggestion := m.suggestion()
	m.footer.SetContext(mode, !m.isDesktop(), hasNotice, hasSuggestion)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	cols := ctx.Columns(m.isDesktop(), m.layout.MenuOpen(), m.layout.PreviewOpen())
	if cols.Explorer > 0 {
		m.explorer.SetSize(cols.Explorer, ctx.ContentHeight)
	}
	if cols.Preview > 0 {
		m.preview.SetSize(cols.Preview, ctx.ContentHeight)
	}
	m.chat.SetSize(cols.Chat, ctx.ContentHeight)
}
