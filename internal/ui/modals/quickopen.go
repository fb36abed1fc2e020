package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"

	"github.com/zhubert/aegis/internal/keys"
)

// =============================================================================
// QuickOpenState - fuzzy jump to any file in the catalog
// =============================================================================

// quickOpenMatch is a ranked file with the byte offsets that matched.
type quickOpenMatch struct {
	file    FileItem
	matched []int
}

type QuickOpenState struct {
	Input         textinput.Model
	files         []FileItem
	matches       []quickOpenMatch
	SelectedIndex int
	scrollOffset  int
}

func (*QuickOpenState) modalState() {}

func (s *QuickOpenState) Title() string { return "Quick Open" }

func (s *QuickOpenState) Help() string {
	if len(s.matches) == 0 {
		return "No matching files. Esc: close"
	}
	return "Type to filter  up/down: navigate  Enter: open  Esc: close"
}

// fileNames implements fuzzy.Source over the file names.
type fileNames []FileItem

func (f fileNames) String(i int) string { return f[i].Name }
func (f fileNames) Len() int            { return len(f) }

// rank recomputes matches for the current query. An empty query lists every
// file in catalog order.
func (s *QuickOpenState) rank() {
	query := strings.TrimSpace(s.Input.Value())
	s.matches = s.matches[:0]
	if query == "" {
		for _, f := range s.files {
			s.matches = append(s.matches, quickOpenMatch{file: f})
		}
	} else {
		for _, m := range fuzzy.FindFrom(query, fileNames(s.files)) {
			s.matches = append(s.matches, quickOpenMatch{file: s.files[m.Index], matched: m.MatchedIndexes})
		}
	}
	s.SelectedIndex = 0
	s.scrollOffset = 0
}

// Matches returns the ranked file names, best first.
func (s *QuickOpenState) Matches() []string {
	names := make([]string, len(s.matches))
	for i, m := range s.matches {
		names[i] = m.file.Name
	}
	return names
}

// Selected returns the file under the cursor.
func (s *QuickOpenState) Selected() (FileItem, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.matches) {
		return FileItem{}, false
	}
	return s.matches[s.SelectedIndex].file, true
}

func (s *QuickOpenState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
				if s.SelectedIndex < s.scrollOffset {
					s.scrollOffset = s.SelectedIndex
				}
			}
			return s, nil
		case keys.Down:
			if s.SelectedIndex < len(s.matches)-1 {
				s.SelectedIndex++
				if s.SelectedIndex >= s.scrollOffset+QuickOpenMaxVisible {
					s.scrollOffset = s.SelectedIndex - QuickOpenMaxVisible + 1
				}
			}
			return s, nil
		}
	}

	before := s.Input.Value()
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	if s.Input.Value() != before {
		s.rank()
	}
	return s, cmd
}

// highlightMatched bolds the matched characters of name. fuzzy reports byte
// offsets.
func highlightMatched(name string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(name)
	}
	hit := base.Foreground(ColorSecondary).Bold(true).Underline(true)
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}
	var sb strings.Builder
	for i, r := range name {
		if set[i] {
			sb.WriteString(hit.Render(string(r)))
		} else {
			sb.WriteString(base.Render(string(r)))
		}
	}
	return sb.String()
}

func (s *QuickOpenState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	inputView := inputStyle.Render(s.Input.View())

	var rows []string
	end := min(s.scrollOffset+QuickOpenMaxVisible, len(s.matches))
	for i := s.scrollOffset; i < end; i++ {
		m := s.matches[i]
		meta := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  " + m.file.Type + " · " + m.file.Size)
		star := ""
		if m.file.Starred {
			star = lipgloss.NewStyle().Foreground(ColorStar).Render(" ★")
		}
		if i == s.SelectedIndex {
			rows = append(rows, ItemSelectedStyle.Render("> "+m.file.Name)+star+meta)
			continue
		}
		rows = append(rows, ItemStyle.Render("  ")+highlightMatched(m.file.Name, m.matched, lipgloss.NewStyle().Foreground(ColorText))+star+meta)
	}
	if len(rows) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("No matching files"))
	}

	list := lipgloss.NewStyle().MarginTop(1).Render(strings.Join(rows, "\n"))
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, inputView, list, help)
}

// NewQuickOpenState creates a quick open modal over files, focused and
// listing everything.
func NewQuickOpenState(files []FileItem) *QuickOpenState {
	ti := textinput.New()
	ti.Placeholder = "jump to file..."
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.SetWidth(ModalWidth - 10)
	ti.Focus()

	s := &QuickOpenState{
		Input: ti,
		files: files,
	}
	s.rank()
	return s
}
