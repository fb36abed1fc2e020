package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/aegis/internal/keys"
	"github.com/zhubert/aegis/internal/layout"
	"github.com/zhubert/aegis/internal/logger"
	"github.com/zhubert/aegis/internal/ui"
	"github.com/zhubert/aegis/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.QuickOpenState:
		return m.handleQuickOpenModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	}

	// Default: update modal input
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal lets the list own Enter and Esc while its filter is open.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	if !state.IsFiltering() {
		switch key {
		case keys.Escape, "?":
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			m.modal.Hide()
			return m, state.Trigger()
		}
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger runs the shortcut picked in the help modal. The
// modal lists display keys, so both forms are matched.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	if key == helpShortcut.Key {
		return shortcutHelp(m)
	}
	for _, s := range ShortcutRegistry {
		if s.Key != key && s.DisplayKey != key {
			continue
		}
		if result, cmd, handled := m.ExecuteShortcut(s.Key); handled {
			return result, cmd
		}
		break
	}
	logger.WithComponent("app").Debug("help trigger not executable", "key", key)
	return m, nil
}

func (m *Model) handleQuickOpenModal(key string, msg tea.KeyPressMsg, state *modals.QuickOpenState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		item, ok := state.Selected()
		if !ok {
			return m, nil
		}
		m.modal.Hide()
		entry, err := m.lookup(item.ID)
		if err != nil {
			return m, m.ShowFlashForError("File no longer in catalog", err)
		}
		m.openFile(entry, layout.FromBrowser)
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		model := state.GetModel()
		if model == "" {
			m.modal.SetError("Model is required")
			return m, nil
		}
		if model != m.config.GetModel() {
			m.config.SetModel(model)
			if b := m.bridge(); b != nil {
				b.SetModel(model)
			}
		}
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())
		if state.ThemeChanged() {
			ui.SetThemeByName(state.GetSelectedTheme())
			m.config.SetTheme(state.GetSelectedTheme())
			m.syncExplorer()
			m.syncChat()
			m.syncLayout()
		}
		m.modal.Hide()
		if err := m.config.Save(); err != nil {
			return m, m.ShowFlashForError("Failed to save settings", err)
		}
		return m, m.ShowFlashSuccess("Settings saved")
	}
	// Forward other keys to modal for form input handling
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
