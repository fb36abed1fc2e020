package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/keys"
	"github.com/zhubert/aegis/internal/view"
)

// explorerChromeHeight is the tabs line plus the search line.
const explorerChromeHeight = 2

// Explorer is the file browser panel. It renders whatever visible list it is
// handed; the view controller owns filtering.
type Explorer struct {
	width   int
	height  int
	focused bool

	state   view.State
	entries []catalog.FileEntry

	selectedIdx  int
	scrollOffset int

	searchMode  bool
	searchInput textinput.Model
}

// NewExplorer creates a new explorer
func NewExplorer() *Explorer {
	ti := textinput.New()
	ti.Placeholder = "search files..."
	ti.Prompt = ""
	ti.CharLimit = ExplorerSearchCharLimit

	return &Explorer{
		state:       view.DefaultState(),
		searchInput: ti,
	}
}

// SetSize sets the explorer dimensions
func (e *Explorer) SetSize(width, height int) {
	e.width = width
	e.height = height

	ctx := GetViewContext()
	if w := ctx.InnerWidth(width) - 3; w > 0 {
		e.searchInput.SetWidth(w)
	}
	ctx.Log("Explorer.SetSize", "width", width, "height", height)
}

// Width returns the explorer width
func (e *Explorer) Width() int {
	return e.width
}

// SetFocused sets the focus state
func (e *Explorer) SetFocused(focused bool) {
	e.focused = focused
	if !focused && e.searchMode {
		e.searchMode = false
		e.searchInput.Blur()
	}
}

// IsFocused returns the focus state
func (e *Explorer) IsFocused() bool {
	return e.focused
}

// SetState hands the explorer the current view state and visible entries.
// The cursor stays on the same entry when it is still visible.
func (e *Explorer) SetState(state view.State, visible []catalog.FileEntry) {
	var keepID string
	if sel, ok := e.Selected(); ok {
		keepID = sel.ID
	}

	e.state = state
	e.entries = visible
	if e.searchInput.Value() != state.SearchQuery {
		e.searchInput.SetValue(state.SearchQuery)
	}

	e.selectedIdx = 0
	for i, entry := range visible {
		if entry.ID == keepID {
			e.selectedIdx = i
			break
		}
	}
}

// Selected returns the entry under the cursor.
func (e *Explorer) Selected() (catalog.FileEntry, bool) {
	if e.selectedIdx < 0 || e.selectedIdx >= len(e.entries) {
		return catalog.FileEntry{}, false
	}
	return e.entries[e.selectedIdx], true
}

// SelectedIndex returns the cursor position within the visible entries
func (e *Explorer) SelectedIndex() int {
	return e.selectedIdx
}

// EnterSearchMode focuses the search input
func (e *Explorer) EnterSearchMode() tea.Cmd {
	e.searchMode = true
	return e.searchInput.Focus()
}

// ExitSearchMode leaves search mode. The query stays applied unless clear is set.
func (e *Explorer) ExitSearchMode(clear bool) {
	e.searchMode = false
	e.searchInput.Blur()
	if clear {
		e.searchInput.SetValue("")
	}
}

// IsSearchMode returns whether search mode is active
func (e *Explorer) IsSearchMode() bool {
	return e.searchMode
}

// SearchQuery returns the text in the search input
func (e *Explorer) SearchQuery() string {
	return e.searchInput.Value()
}

// gridColumns is how many tiles fit on one grid row
func (e *Explorer) gridColumns() int {
	cols := GetViewContext().InnerWidth(e.width) / GridCellWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (e *Explorer) move(delta int) {
	next := e.selectedIdx + delta
	if next < 0 || next >= len(e.entries) {
		return
	}
	e.selectedIdx = next
}

// Update handles messages
func (e *Explorer) Update(msg tea.Msg) (*Explorer, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !e.focused {
		return e, nil
	}

	if e.searchMode {
		switch keyMsg.String() {
		case keys.Up:
			e.move(-1)
			return e, nil
		case keys.Down:
			e.move(1)
			return e, nil
		}
		var cmd tea.Cmd
		e.searchInput, cmd = e.searchInput.Update(msg)
		return e, cmd
	}

	step := 1
	if e.state.ViewMode == view.ModeGrid {
		step = e.gridColumns()
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		e.move(-step)
	case keys.Down, "j":
		e.move(step)
	case keys.Left, "h":
		if e.state.ViewMode == view.ModeGrid {
			e.move(-1)
		}
	case keys.Right, "l":
		if e.state.ViewMode == view.ModeGrid {
			e.move(1)
		}
	case keys.Home:
		e.selectedIdx = 0
	case keys.End:
		if len(e.entries) > 0 {
			e.selectedIdx = len(e.entries) - 1
		}
	}
	return e, nil
}

// typeIcon is the glyph for an entry in list and grid rows
func typeIcon(entry catalog.FileEntry, expanded bool) string {
	if entry.IsFolder() {
		if expanded {
			return "▾"
		}
		return "▸"
	}
	switch entry.FileType {
	case catalog.TypePDF:
		return "▤"
	case catalog.TypeImage:
		return "▣"
	case catalog.TypeCode:
		return "λ"
	case catalog.TypeJSON:
		return "≣"
	case catalog.TypeText:
		return "≡"
	default:
		return "·"
	}
}

func (e *Explorer) renderTabs(width int) string {
	var tabs []string
	for _, f := range view.Filters {
		style := FilterTabStyle
		if f == e.state.ActiveFilter {
			style = FilterTabActiveStyle
		}
		tabs = append(tabs, style.Render(f.String()))
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > width {
		// Too narrow for all three labels; show only the active one
		return FilterTabActiveStyle.Render(e.state.ActiveFilter.String())
	}
	return line
}

func (e *Explorer) renderSearchLine(width int) string {
	mode := ExplorerMetaStyle.Render("[" + e.state.ViewMode.String() + "]")
	slash := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/")

	var query string
	switch {
	case e.searchMode:
		query = e.searchInput.View()
	case e.state.SearchQuery != "":
		query = PreviewValueStyle.Render(runewidth.Truncate(e.state.SearchQuery, width-12, "…"))
	default:
		query = ExplorerMetaStyle.Italic(true).Render("search")
	}

	left := slash + " " + query
	gap := width - lipgloss.Width(left) - lipgloss.Width(mode)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + mode
}

// renderListRow renders one entry: icon, name, star and size.
func (e *Explorer) renderListRow(entry catalog.FileEntry, width int, selected bool) string {
	icon := typeIcon(entry, e.state.IsExpanded(entry.ID))
	meta := catalog.FormatSize(entry.SizeBytes)
	star := ""
	if entry.Starred {
		star = "★ "
	}

	// ItemStyle pads one cell on each side
	inner := width - 2
	nameWidth := inner - runewidth.StringWidth(icon) - 1 - runewidth.StringWidth(star+meta) - 1
	if nameWidth < 4 {
		nameWidth = 4
	}
	name := runewidth.FillRight(runewidth.Truncate(entry.Name, nameWidth, "…"), nameWidth)

	if selected {
		return ExplorerSelectedStyle.Width(width).Render(icon + " " + name + " " + star + meta)
	}
	return ExplorerItemStyle.Width(width).Render(
		icon + " " + name + " " + ExplorerStarStyle.Render(star) + ExplorerMetaStyle.Render(meta),
	)
}

func (e *Explorer) listLines(width int) ([]string, int) {
	var lines []string
	selectedLine := 0
	for i, entry := range e.entries {
		if i == e.selectedIdx {
			selectedLine = len(lines)
		}
		lines = append(lines, e.renderListRow(entry, width, i == e.selectedIdx && e.focused))
		// An expanded folder never shows children
		if entry.IsFolder() && e.state.IsExpanded(entry.ID) {
			lines = append(lines, ExplorerMetaStyle.Italic(true).Render("    "+EmptyClusterLabel))
		}
	}
	return lines, selectedLine
}

func (e *Explorer) gridLines(width int) ([]string, int) {
	cols := e.gridColumns()
	var lines []string
	selectedLine := 0

	for start := 0; start < len(e.entries); start += cols {
		end := min(start+cols, len(e.entries))
		var tiles []string
		for i := start; i < end; i++ {
			entry := e.entries[i]
			if i == e.selectedIdx {
				selectedLine = len(lines)
			}
			top := typeIcon(entry, e.state.IsExpanded(entry.ID))
			if entry.Starred {
				top += " ★"
			}
			name := runewidth.Truncate(entry.Name, GridCellWidth-2, "…")
			style := ExplorerItemStyle
			if i == e.selectedIdx && e.focused {
				style = ExplorerSelectedStyle
			}
			tiles = append(tiles, style.Width(GridCellWidth).Render(top+"\n"+name))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
		lines = append(lines, strings.Split(row, "\n")...)
	}
	return lines, selectedLine
}

// View renders the explorer
func (e *Explorer) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if e.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(e.width)
	innerHeight := ctx.InnerHeight(e.height)
	visibleHeight := innerHeight - explorerChromeHeight
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	var lines []string
	selectedLine := 0
	if len(e.entries) == 0 {
		msg := "No files."
		if e.state.SearchQuery != "" {
			msg = "No matches."
		}
		lines = []string{ExplorerMetaStyle.Italic(true).Render(msg)}
	} else if e.state.ViewMode == view.ModeGrid {
		lines, selectedLine = e.gridLines(innerWidth)
	} else {
		lines, selectedLine = e.listLines(innerWidth)
	}

	// Keep the cursor row on screen
	if selectedLine < e.scrollOffset {
		e.scrollOffset = selectedLine
	} else if selectedLine >= e.scrollOffset+visibleHeight {
		e.scrollOffset = selectedLine - visibleHeight + 1
	}
	maxScroll := max(len(lines)-visibleHeight, 0)
	e.scrollOffset = clamp(e.scrollOffset, 0, maxScroll)

	lines = lines[e.scrollOffset:]
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		e.renderTabs(innerWidth),
		e.renderSearchLine(innerWidth),
		strings.Join(lines, "\n"),
	)
	return style.Width(e.width).Height(e.height).Render(content)
}
