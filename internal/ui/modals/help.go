package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// HelpState - keyboard shortcuts, rendered with a filterable bubbles list
// =============================================================================

// shortcutItem wraps a HelpShortcut for use in a bubbles list.
type shortcutItem struct {
	shortcut HelpShortcut
}

func (i shortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// sectionItem is a non-selectable header row.
type sectionItem struct {
	title string
}

func (i sectionItem) FilterValue() string { return "" }

// helpKeyWidth is the column the descriptions start at
const helpKeyWidth = 14

type helpDelegate struct{}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case sectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(i.title))

	case shortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(helpKeyWidth)
		descStyle := lipgloss.NewStyle().Foreground(ColorText)
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

// HelpState wraps a bubbles list.Model for the help modal.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.list.View(), help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	s.skipSections(msg)
	return s, cmd
}

// skipSections moves the cursor off a header row in the direction of travel.
func (s *HelpState) skipSections(msg tea.Msg) {
	if _, ok := s.list.SelectedItem().(sectionItem); !ok {
		return
	}
	step := 1
	if k, ok := msg.(tea.KeyPressMsg); ok && (k.String() == "up" || k.String() == "k") {
		step = -1
	}
	items := s.list.VisibleItems()
	for i := s.list.Index() + step; i >= 0 && i < len(items); i += step {
		if _, ok := items[i].(shortcutItem); ok {
			s.list.Select(i)
			return
		}
	}
}

// SetSize implements ModalWithSize so the modal framework passes dimensions.
func (s *HelpState) SetSize(width, height int) {
	// Title and help lines plus their margins
	const titleAndHelpOverhead = 4
	s.list.SetSize(width, max(height-titleAndHelpOverhead, 1))
}

// SelectedShortcut returns the shortcut under the cursor, or nil on a header.
func (s *HelpState) SelectedShortcut() *HelpShortcut {
	if si, ok := s.list.SelectedItem().(shortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// Trigger returns a command that replays the selected shortcut's key.
func (s *HelpState) Trigger() tea.Cmd {
	sc := s.SelectedShortcut()
	if sc == nil {
		return nil
	}
	key := sc.Key
	return func() tea.Msg { return HelpShortcutTriggeredMsg{Key: key} }
}

// IsFiltering returns whether the user is currently typing in the filter.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpState builds the help list from sections, with the cursor on the
// first shortcut.
func NewHelpState(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, sectionItem{title: section.Title})
		for _, shortcut := range section.Shortcuts {
			items = append(items, shortcutItem{shortcut: shortcut})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if _, ok := item.(shortcutItem); ok {
			l.Select(i)
			break
		}
	}

	return &HelpState{list: l}
}
