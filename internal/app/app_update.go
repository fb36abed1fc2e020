package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/chat"
	aegiserrors "github.com/zhubert/aegis/internal/errors"
	"github.com/zhubert/aegis/internal/keys"
	"github.com/zhubert/aegis/internal/layout"
	"github.com/zhubert/aegis/internal/logger"
	"github.com/zhubert/aegis/internal/ui"
	"github.com/zhubert/aegis/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		logger.WithComponent("app").Debug("window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		logger.WithComponent("app").Debug("window blurred")
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case ChatEventMsg:
		return m.handleChatEvent(msg)

	case UploadDoneMsg:
		return m.handleUploadDone()

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case ui.StopwatchTickMsg:
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		return m, cmd
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	if !m.Unlocked() {
		return m.updateLogin(msg)
	}

	// Update focused panel for other messages
	switch m.focus {
	case FocusExplorer:
		explorer, cmd := m.explorer.Update(msg)
		m.explorer = explorer
		cmds = append(cmds, cmd)
		m.syncSearchQuery()
	case FocusPreview:
		preview, cmd := m.preview.Update(msg)
		m.preview = preview
		cmds = append(cmds, cmd)
	default:
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleResize converts the terminal width to logical px and lets the
// coordinator reclassify.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	px := layout.CellsToPx(msg.Width, m.config.GetCellWidth())
	if m.layout.Resize(px) {
		logger.WithComponent("app").Info("viewport class changed",
			"class", m.layout.Class().String(),
			"px", px,
			"preview", m.layout.PreviewOpen(),
		)
	}
	m.syncLayout()
}

// updateLogin forwards input to the access card. Editing the code hides a
// previous rejection.
func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.login.Value()
	login, cmd := m.login.Update(msg)
	m.login = login
	if m.login.Value() != before && m.session.LoginFailed {
		m.session.ClearLoginError()
		m.login.SetFailed(false)
	}
	return m, cmd
}

// syncSearchQuery copies the explorer's search input into the controller
func (m *Model) syncSearchQuery() {
	query := m.explorer.SearchQuery()
	if query == m.view.State().SearchQuery {
		return
	}
	m.view.SetSearchQuery(query)
	m.syncExplorer()
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.WithComponent("app").Debug("key pressed", "key", key, "focus", m.focus.String(), "modal", m.modal.IsVisible())

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if !m.Unlocked() {
		if key == keys.Enter {
			return m.attemptLogin()
		}
		return nil, nil
	}

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if key == keys.Escape {
		if result, cmd, handled := m.handleEscapeKey(); handled {
			return result, cmd
		}
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if key == keys.Enter {
		return m.handleEnterKey()
	}

	// Key not handled - return nil to signal it should fall through to focused panel
	return nil, nil
}

// handleEscapeKey walks the escape chain: leave search, then dismiss the
// overlay, then stop a streaming reply.
func (m *Model) handleEscapeKey() (tea.Model, tea.Cmd, bool) {
	if m.explorer.IsSearchMode() {
		m.explorer.ExitSearchMode(true)
		m.syncSearchQuery()
		return m, nil, true
	}
	if m.layout.OverlayVisible() {
		m.layout.DismissOverlay()
		m.syncLayout()
		return m, nil, true
	}
	if b := m.bridge(); b != nil && b.Cancel() {
		m.syncChat()
		return m, m.ShowFlashInfo("Reply stopped"), true
	}
	return m, nil, false
}

// handleEnterKey opens or toggles the entry under the explorer cursor, or
// sends the chat input.
func (m *Model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusExplorer:
		if m.explorer.IsSearchMode() {
			m.explorer.ExitSearchMode(false)
			return m, nil
		}
		entry, ok := m.explorer.Selected()
		if !ok {
			return m, nil
		}
		if entry.IsFolder() {
			m.view.ToggleFolderExpansion(entry.ID)
			m.syncExplorer()
			return m, nil
		}
		m.openFile(entry, layout.FromBrowser)
		return m, nil
	case FocusChat:
		return m.sendMessage()
	}
	return m, nil
}

// attemptLogin checks the typed code against the gate
func (m *Model) attemptLogin() (tea.Model, tea.Cmd) {
	if err := m.session.Login(m.login.Value()); err != nil {
		m.login.SetFailed(true)
		return m, nil
	}

	m.login.Reset()
	m.header.SetUnlocked(true)
	m.setFocus(FocusChat)
	m.syncChat()
	return m, m.ShowFlashSuccess("Uplink established")
}

// lock logs out, dropping the transcript and any streaming reply
func (m *Model) lock() (tea.Model, tea.Cmd) {
	m.session.Logout()
	m.modal.Hide()
	m.chat.ClearInput()
	m.header.SetUnlocked(false)
	m.login.Reset()
	m.syncChat()
	return m, tea.Batch(m.login.Focus(), m.ShowFlashInfo("Session locked"))
}

// sendMessage sends the chat input. Only one reply streams at a time.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	b := m.bridge()
	text := m.chat.GetInput()
	if b == nil || text == "" {
		return m, nil
	}
	if b.Streaming() {
		return m, m.ShowFlashWarning("Reply still streaming")
	}

	ch, err := b.Send(context.Background(), text)
	if err != nil {
		return m, m.ShowFlashForError("Message not sent", err)
	}
	m.chat.ClearInput()
	m.syncChat()
	return m, tea.Batch(listenForChatEvent(b, ch), ui.StopwatchTick())
}

// handleChatEvent folds one streamed event into the current bridge. Events
// from a bridge dropped by lock are ignored and not re-armed.
func (m *Model) handleChatEvent(msg ChatEventMsg) (tea.Model, tea.Cmd) {
	if msg.Bridge == nil || msg.Bridge != m.bridge() {
		logger.WithComponent("app").Debug("dropping event from stale bridge", "seq", msg.Event.Seq)
		return m, nil
	}
	if msg.Closed {
		return m, nil
	}

	cmds := []tea.Cmd{listenForChatEvent(msg.Bridge, msg.ch)}
	if !msg.Bridge.Apply(msg.Event) {
		return m, tea.Batch(cmds...)
	}
	m.syncChat()

	if msg.Event.Kind == chat.EventDone && !m.windowFocused && m.config.GetNotificationsEnabled() {
		if last, ok := msg.Bridge.LastAssistant(); ok {
			cmds = append(cmds, notifyReplyReady(last.Content))
		}
	}
	return m, tea.Batch(cmds...)
}

// startUpload sets the busy flag for UploadDuration. There is no cancel.
func (m *Model) startUpload() (tea.Model, tea.Cmd) {
	if m.uploading {
		return m, m.ShowFlashWarning("Upload already in progress")
	}
	m.uploading = true
	m.chat.SetUploading(true)
	return m, uploadAfter(UploadDuration)
}

func (m *Model) handleUploadDone() (tea.Model, tea.Cmd) {
	if !m.uploading {
		return m, nil
	}
	m.uploading = false
	m.chat.SetUploading(false)
	return m, m.ShowFlashSuccess("Upload complete")
}

// shareTarget is the file the share key acts on: the open preview when it
// has focus, else the explorer cursor.
func (m *Model) shareTarget() (catalog.FileEntry, bool) {
	if m.focus == FocusPreview {
		if sel, ok := m.layout.Selected(); ok {
			entry, err := m.lookup(sel.ID)
			return entry, err == nil
		}
	}
	entry, ok := m.explorer.Selected()
	if !ok || entry.IsFolder() {
		return catalog.FileEntry{}, false
	}
	return entry, true
}

// lookup finds a catalog entry by id
func (m *Model) lookup(id string) (catalog.FileEntry, error) {
	for _, e := range m.catalog.ListAll() {
		if e.ID == id {
			return e, nil
		}
	}
	return catalog.FileEntry{}, aegiserrors.EntryNotFound(id)
}
