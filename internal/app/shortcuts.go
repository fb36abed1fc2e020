package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/clipboard"
	"github.com/zhubert/aegis/internal/keys"
	"github.com/zhubert/aegis/internal/layout"
	"github.com/zhubert/aegis/internal/logger"
	"github.com/zhubert/aegis/internal/ui"
	"github.com/zhubert/aegis/internal/ui/modals"
	"github.com/zhubert/aegis/internal/view"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key              string                              // The key binding (e.g., "g", "ctrl+k")
	DisplayKey       string                              // Display name in help; defaults to Key
	Description      string                              // Human-readable description
	Category         string                              // Section for help modal grouping
	RequiresExplorer bool                                // Explorer must have focus
	RequiresPanel    bool                                // Must not be typing in chat
	Handler          func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition        func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryFiles      = "Files"
	CategoryChat       = "Chat"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryFiles,
	CategoryChat,
	CategoryGeneral,
}

// ShareLinkBase prefixes the id in a copied share link.
const ShareLinkBase = "https://aegis.drive/share/"

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Next pane",
		Category:    CategoryNavigation,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.cycleFocus(1); return m, nil },
	},
	{
		Key:         keys.ShiftTab,
		DisplayKey:  "Shift+Tab",
		Description: "Previous pane",
		Category:    CategoryNavigation,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.cycleFocus(-1); return m, nil },
	},
	{
		Key:         keys.CtrlB,
		DisplayKey:  "ctrl-b",
		Description: "Toggle file drawer",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleMenu,
		Condition:   func(m *Model) bool { return !m.isDesktop() },
	},
	{
		Key:         keys.CtrlP,
		DisplayKey:  "ctrl-p",
		Description: "Toggle preview",
		Category:    CategoryNavigation,
		Handler:     shortcutTogglePreview,
	},
	{
		Key:         keys.CtrlK,
		DisplayKey:  "ctrl-k",
		Description: "Quick open",
		Category:    CategoryNavigation,
		Handler:     shortcutQuickOpen,
	},

	// Files
	{
		Key:           "/",
		Description:   "Search files",
		Category:      CategoryFiles,
		RequiresPanel: true,
		Handler:       shortcutSearch,
	},
	{
		Key:              "f",
		Description:      "Next filter",
		Category:         CategoryFiles,
		RequiresExplorer: true,
		Handler: func(m *Model) (tea.Model, tea.Cmd) {
			return shortcutFilter(m, m.view.State().ActiveFilter.Next())
		},
	},
	{
		Key:              "1",
		Description:      "All files",
		Category:         CategoryFiles,
		RequiresExplorer: true,
		Handler:          func(m *Model) (tea.Model, tea.Cmd) { return shortcutFilter(m, view.FilterAll) },
	},
	{
		Key:              "2",
		Description:      "Recent files",
		Category:         CategoryFiles,
		RequiresExplorer: true,
		Handler:          func(m *Model) (tea.Model, tea.Cmd) { return shortcutFilter(m, view.FilterRecent) },
	},
	{
		Key:              "3",
		Description:      "Starred files",
		Category:         CategoryFiles,
		RequiresExplorer: true,
		Handler:          func(m *Model) (tea.Model, tea.Cmd) { return shortcutFilter(m, view.FilterStarred) },
	},
	{
		Key:              "g",
		Description:      "Toggle grid/list",
		Category:         CategoryFiles,
		RequiresExplorer: true,
		Handler:          shortcutToggleViewMode,
	},
	{
		Key:           "s",
		Description:   "Copy share link",
		Category:      CategoryFiles,
		RequiresPanel: true,
		Handler:       shortcutShare,
	},

	// Chat
	{
		Key:         keys.CtrlO,
		DisplayKey:  "ctrl-o",
		Description: "Open suggested file",
		Category:    CategoryChat,
		Handler:     shortcutOpenSuggestion,
		Condition: func(m *Model) bool {
			_, ok := m.suggestion()
			return ok
		},
	},
	{
		Key:         keys.CtrlU,
		DisplayKey:  "ctrl-u",
		Description: "Upload file",
		Category:    CategoryChat,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.startUpload() },
	},
	{
		Key:         keys.CtrlX,
		DisplayKey:  "ctrl-x",
		Description: "Dismiss notice",
		Category:    CategoryChat,
		Handler:     shortcutDismissNotice,
		Condition: func(m *Model) bool {
			b := m.bridge()
			return b != nil && b.Notice() != ""
		},
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:           ",",
		Description:   "Settings",
		Category:      CategoryGeneral,
		RequiresPanel: true,
		Handler:       shortcutSettings,
	},
	{
		Key:         keys.CtrlL,
		DisplayKey:  "ctrl-l",
		Description: "Lock session",
		Category:    CategoryGeneral,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.lock() },
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:           "?",
	Description:   "Show this help",
	Category:      CategoryGeneral,
	RequiresPanel: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move through files", Category: CategoryNavigation},
	{DisplayKey: "←/→", Description: "Grid columns / preview tabs", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open file / expand folder / send", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Clear search / close drawer / stop reply", Category: CategoryNavigation},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll transcript", Category: CategoryChat},
	{DisplayKey: "ctrl-c", Description: "Quit", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used both to guard execution and to filter the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresExplorer && m.focus != FocusExplorer {
		return false
	}
	if s.RequiresPanel && m.focus == FocusChat {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// While typing a search, only ctrl chords act as shortcuts
	if m.explorer.IsSearchMode() && !strings.HasPrefix(key, "ctrl+") {
		return m, nil, false
	}

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.WithComponent("shortcuts").Debug("guard failed", "key", key, "focus", m.focus.String())
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	add(helpShortcut)
	for _, s := range displayOnly {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut handlers
// =============================================================================

func shortcutToggleMenu(m *Model) (tea.Model, tea.Cmd) {
	m.layout.ToggleMenu()
	m.syncLayout()
	if m.layout.MenuOpen() {
		m.setFocus(FocusExplorer)
	}
	return m, nil
}

func shortcutTogglePreview(m *Model) (tea.Model, tea.Cmd) {
	m.layout.TogglePreview()
	m.syncLayout()
	if !m.isDesktop() && m.panelVisible(FocusPreview) {
		m.setFocus(FocusPreview)
	}
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	if !m.panelVisible(FocusExplorer) {
		m.layout.ToggleMenu()
		m.syncLayout()
	}
	m.setFocus(FocusExplorer)
	return m, m.explorer.EnterSearchMode()
}

func shortcutFilter(m *Model, f view.Filter) (tea.Model, tea.Cmd) {
	m.view.SetFilter(f)
	m.syncExplorer()
	return m, nil
}

func shortcutToggleViewMode(m *Model) (tea.Model, tea.Cmd) {
	m.view.SetViewMode(m.view.State().ViewMode.Toggle())
	m.syncExplorer()
	return m, nil
}

func shortcutShare(m *Model) (tea.Model, tea.Cmd) {
	entry, ok := m.shareTarget()
	if !ok {
		return m, m.ShowFlashWarning("Select a file to share")
	}
	link := shareLink(entry)
	if err := clipboard.WriteText(link); err != nil {
		logger.WithComponent("app").Error("share failed", "id", entry.ID, "error", err)
		return m, m.ShowFlashError("Clipboard unavailable")
	}
	return m, m.ShowFlashSuccess("Link copied: " + entry.Name)
}

// shareLink is the copied link for entry
func shareLink(entry catalog.FileEntry) string {
	return ShareLinkBase + entry.ID
}

func shortcutOpenSuggestion(m *Model) (tea.Model, tea.Cmd) {
	entry, ok := m.suggestion()
	if !ok {
		return m, nil
	}
	m.openFile(entry, layout.FromChat)
	return m, nil
}

func shortcutDismissNotice(m *Model) (tea.Model, tea.Cmd) {
	if b := m.bridge(); b != nil {
		b.DismissNotice()
	}
	m.syncChat()
	return m, nil
}

func shortcutQuickOpen(m *Model) (tea.Model, tea.Cmd) {
	var files []modals.FileItem
	for _, e := range m.catalog.ListAll() {
		if e.IsFolder() {
			continue
		}
		files = append(files, modals.FileItem{
			ID:      e.ID,
			Name:    e.Name,
			Type:    string(e.FileType),
			Size:    catalog.FormatSize(e.SizeBytes),
			Starred: e.Starred,
		})
	}
	m.modal.Show(modals.NewQuickOpenState(files))
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	displayNames := make([]string, len(names))
	for i, name := range names {
		themes[i] = string(name)
		displayNames[i] = ui.GetTheme(name).Name
	}
	m.modal.Show(modals.NewSettingsState(
		themes,
		displayNames,
		string(ui.CurrentThemeName()),
		m.config.GetModel(),
		m.config.GetNotificationsEnabled(),
	))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpState(m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)))
	return m, nil
}
