package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/chat"
	"github.com/zhubert/aegis/internal/config"
	"github.com/zhubert/aegis/internal/layout"
	"github.com/zhubert/aegis/internal/logger"
	"github.com/zhubert/aegis/internal/session"
	"github.com/zhubert/aegis/internal/ui"
	"github.com/zhubert/aegis/internal/view"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusExplorer Focus = iota
	FocusChat
	FocusPreview
)

// focusOrder is the Tab cycle.
var focusOrder = []Focus{FocusExplorer, FocusChat, FocusPreview}

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusChat:
		return "chat"
	case FocusPreview:
		return "preview"
	default:
		return "explorer"
	}
}

// UploadDuration is how long the mock upload keeps the busy flag set.
const UploadDuration = 2 * time.Second

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	header   *ui.Header
	footer   *ui.Footer
	explorer *ui.Explorer
	chat     *ui.Chat
	preview  *ui.Preview
	login    *ui.Login
	modal    *ui.Modal

	catalog catalog.Catalog
	view    *view.Controller
	layout  *layout.Coordinator
	session *session.Session

	width  int
	height int
	focus  Focus

	windowFocused bool
	uploading     bool
}

// Deps are the collaborators the model is built from.
type Deps struct {
	Catalog    catalog.Catalog
	Generator  chat.Generator
	AccessCode string
	Version    string

	// Now defaults to time.Now. Tests pin it.
	Now func() time.Time
}

// New creates a locked model over deps.Catalog.
func New(cfg *config.Config, deps Deps) *Model {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	startedAt := now()
	reference := cfg.Reference(startedAt)

	gen := deps.Generator
	newChat := func() *chat.Bridge {
		return chat.NewBridge(gen, cfg.GetModel(), cfg.GetSystemPrompt())
	}

	ui.SetThemeByName(cfg.GetTheme())

	m := &Model{
		config:        cfg,
		version:       deps.Version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		explorer:      ui.NewExplorer(),
		chat:          ui.NewChat(),
		preview:       ui.NewPreview(),
		login:         ui.NewLogin(),
		modal:         ui.NewModal(),
		catalog:       deps.Catalog,
		view:          view.NewController(deps.Catalog, reference),
		layout:        layout.NewCoordinator(0, cfg.GetDesktopBreakpoint()),
		session:       session.New(session.NewGate(deps.AccessCode), startedAt, reference, newChat),
		focus:         FocusChat,
		windowFocused: true,
	}
	m.preview.SetReference(reference)
	m.setFocus(FocusChat)
	m.syncExplorer()
	m.syncLayout()

	logger.WithComponent("app").Info("model created",
		"session", m.session.ID,
		"entries", len(deps.Catalog.ListAll()),
		"reference", reference.Format(time.DateOnly),
	)
	return m
}

// Init starts the cursor blink on the access card
func (m *Model) Init() tea.Cmd {
	return m.login.Focus()
}

// Unlocked reports whether the access gate has been passed
func (m *Model) Unlocked() bool {
	return m.session.Authenticated
}

// bridge returns the current session's chat, or nil while locked
func (m *Model) bridge() *chat.Bridge {
	return m.session.Chat
}

// IsStreaming reports whether a reply is in flight
func (m *Model) IsStreaming() bool {
	b := m.bridge()
	return b != nil && b.Streaming()
}

// isDesktop reports whether the viewport is Desktop class
func (m *Model) isDesktop() bool {
	return m.layout.Class() == layout.Desktop
}

// panelVisible reports whether f is drawn this frame. On mobile only one
// drawer is drawn and the explorer wins.
func (m *Model) panelVisible(f Focus) bool {
	switch f {
	case FocusExplorer:
		return m.isDesktop() || m.layout.MenuOpen()
	case FocusPreview:
		return m.layout.PreviewOpen() && (m.isDesktop() || !m.layout.MenuOpen())
	default:
		return true
	}
}

// setFocus moves focus to f and updates each panel's focused flag
func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.explorer.SetFocused(f == FocusExplorer)
	m.chat.SetFocused(f == FocusChat)
	m.preview.SetFocused(f == FocusPreview)
}

// cycleFocus moves focus by step through the visible panels
func (m *Model) cycleFocus(step int) {
	idx := 0
	for i, f := range focusOrder {
		if f == m.focus {
			idx = i
			break
		}
	}
	for range focusOrder {
		idx = (idx + step + len(focusOrder)) % len(focusOrder)
		if m.panelVisible(focusOrder[idx]) {
			m.setFocus(focusOrder[idx])
			return
		}
	}
}

// ensureFocusVisible falls back to chat when the focused panel was closed
func (m *Model) ensureFocusVisible() {
	if !m.panelVisible(m.focus) {
		m.setFocus(FocusChat)
	}
}

// syncExplorer pushes the controller's state into the explorer and header
func (m *Model) syncExplorer() {
	state := m.view.State()
	m.explorer.SetState(state, m.view.Visible())
	m.header.SetFilter(state.ActiveFilter.String())
}

// syncLayout pushes the coordinator's state into the panels and re-splits
// the columns.
func (m *Model) syncLayout() {
	sel, ok := m.layout.Selected()
	m.preview.SetFile(sel, ok)
	m.header.SetClass(m.layout.Class().String())
	m.chat.SetDimmed(m.layout.OverlayVisible())
	m.ensureFocusVisible()
	if m.width > 0 && m.height > 0 {
		m.updateSizes()
	}
}

// syncChat pushes the bridge's transcript, notice and suggestion into the
// chat panel.
func (m *Model) syncChat() {
	b := m.bridge()
	if b == nil {
		m.chat.SetTranscript(nil, "", false)
		m.chat.SetNotice("")
		m.chat.SetSuggestion("")
		m.header.SetStreaming(false)
		return
	}

	pending, streaming := b.Pending()
	m.chat.SetTranscript(b.Messages(), pending, streaming)
	m.chat.SetNotice(b.Notice())
	if entry, ok := m.suggestion(); ok {
		m.chat.SetSuggestion(entry.Name)
	} else {
		m.chat.SetSuggestion("")
	}
	m.header.SetStreaming(streaming)
}

// suggestion is the first file named by the latest assistant reply
func (m *Model) suggestion() (catalog.FileEntry, bool) {
	b := m.bridge()
	if b == nil || b.Streaming() {
		return catalog.FileEntry{}, false
	}
	last, ok := b.LastAssistant()
	if !ok {
		return catalog.FileEntry{}, false
	}
	files := chat.SuggestedFiles(last.Content, m.catalog.ListAll())
	if len(files) == 0 {
		return catalog.FileEntry{}, false
	}
	return files[0], true
}

// openFile is the single file-open path for the explorer, quick open and
// chat suggestions.
func (m *Model) openFile(entry catalog.FileEntry, src layout.Source) {
	if !m.layout.OpenFile(entry, src) {
		return
	}
	m.syncLayout()
	if !m.isDesktop() && m.panelVisible(FocusPreview) {
		m.setFocus(FocusPreview)
	}
	logger.WithComponent("app").Debug("file opened", "id", entry.ID, "source", src.String(), "focus", m.focus.String())
}
