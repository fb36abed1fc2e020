package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/keys"
	"github.com/zhubert/aegis/internal/layout"
)

// PreviewTab selects what the preview body shows.
type PreviewTab int

const (
	TabVisualizer PreviewTab = iota
	TabMetadata
)

func (t PreviewTab) String() string {
	if t == TabMetadata {
		return "Metadata"
	}
	return "Visualizer"
}

// Preview copy
const (
	PreviewEmptyTitle    = "Null Data Stream"
	PreviewEmptyBody     = "Select a localized file entity to initialize the holographic preview subsystem."
	PreviewPDFTitle      = "Encrypted PDF"
	PreviewPDFBody       = "Stream available via secure downlink"
	PreviewUnavailable   = "Visual representation mapping unavailable."
	PreviewNoImage       = "No image stream attached."
	PreviewCodeInspector = "Source_Inspector.sys"
)

// previewHeaderHeight is the name line, the badge line and the tab line.
const previewHeaderHeight = 3

// Preview is the file inspector panel.
type Preview struct {
	viewport  viewport.Model
	width     int
	height    int
	focused   bool
	file      layout.SelectedFile
	hasFile   bool
	tab       PreviewTab
	reference time.Time
}

// NewPreview creates a new preview panel
func NewPreview() *Preview {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &Preview{viewport: vp}
}

// SetSize sets the preview dimensions
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height

	ctx := GetViewContext()
	p.viewport.SetWidth(max(ctx.InnerWidth(width), 1))
	p.viewport.SetHeight(max(ctx.InnerHeight(height)-previewHeaderHeight, 1))
	p.updateContent()
}

// SetFocused sets the focus state
func (p *Preview) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns the focus state
func (p *Preview) IsFocused() bool {
	return p.focused
}

// SetReference sets the "now" used for relative ages
func (p *Preview) SetReference(ref time.Time) {
	p.reference = ref
	p.updateContent()
}

// SetFile shows sel. A new file resets the tab to Visualizer.
func (p *Preview) SetFile(sel layout.SelectedFile, ok bool) {
	if !ok {
		p.hasFile = false
		p.file = layout.SelectedFile{}
		p.updateContent()
		return
	}
	if !p.hasFile || p.file.ID != sel.ID {
		p.tab = TabVisualizer
	}
	p.file = sel
	p.hasFile = true
	p.updateContent()
}

// Tab returns the active tab
func (p *Preview) Tab() PreviewTab {
	return p.tab
}

// SetTab switches the active tab
func (p *Preview) SetTab(tab PreviewTab) {
	p.tab = tab
	p.updateContent()
}

// Update handles messages
func (p *Preview) Update(msg tea.Msg) (*Preview, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && p.focused {
		switch keyMsg.String() {
		case keys.Left, "h":
			p.SetTab(TabVisualizer)
			return p, nil
		case keys.Right, "l":
			p.SetTab(TabMetadata)
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *Preview) bodyWidth() int {
	w := p.viewport.Width()
	if w <= 0 {
		return DefaultWrapWidth
	}
	return w
}

// numbered prefixes each line with a zero-padded line number
func numbered(content string, digits int) string {
	lines := strings.Split(content, "\n")
	numStyle := lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)
	for i, line := range lines {
		lines[i] = numStyle.Render(fmt.Sprintf("%0*d ", digits, i+1)) + line
	}
	return strings.Join(lines, "\n")
}

func centered(width int, lines ...string) string {
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (p *Preview) renderVisualizer() string {
	width := p.bodyWidth()
	f := p.file

	switch f.FileType {
	case catalog.TypeImage:
		if f.PreviewURI == "" {
			return ExplorerMetaStyle.Italic(true).Render(PreviewNoImage)
		}
		frameWidth := max(width-2, 10)
		frame := PreviewFrameStyle.Width(frameWidth).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				LoginTitleStyle.Render("◫ IMAGE STREAM"),
				"",
				runewidth.Truncate(f.PreviewURI, frameWidth-6, "…"),
			),
		)
		return frame

	case catalog.TypeText:
		return numbered(RenderMarkdown(f.Content, width-4), 3)

	case catalog.TypeCode:
		header := ExplorerMetaStyle.Render("● ● ●  " + PreviewCodeInspector)
		return header + "\n\n" + numbered(HighlightFile(f.Name, f.Content), 2)

	case catalog.TypePDF:
		return "\n" + centered(width,
			LoginTitleStyle.Render("▤"),
			"",
			PanelTitleStyle.Render(strings.ToUpper(PreviewPDFTitle)),
			ExplorerMetaStyle.Render(PreviewPDFBody),
		)

	default:
		return "\n" + centered(width, ExplorerMetaStyle.Italic(true).Render(PreviewUnavailable))
	}
}

func metaRow(label, value string) string {
	return PreviewLabelStyle.Render(label) + PreviewValueStyle.Render(value)
}

func (p *Preview) renderMetadata() string {
	f := p.file
	section := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	modified := "2025.12.28"
	age := ""
	if !f.Modified.IsZero() {
		modified = f.Modified.Format("2006.01.02")
		if !p.reference.IsZero() {
			age = humanize.RelTime(f.Modified, p.reference, "ago", "from now")
		}
	}

	rows := []string{
		section.Render("Hardware_Tags"),
		metaRow("ALLOCATION", f.Size()),
		metaRow("BYTES", humanize.Comma(f.SizeBytes)),
		metaRow("MODIFIED", modified),
	}
	if age != "" {
		rows = append(rows, metaRow("AGE", age))
	}
	starred := "no"
	if f.Starred {
		starred = "yes"
	}
	rows = append(rows,
		metaRow("STARRED", starred),
		"",
		section.Render("Network_Stats"),
		PreviewLabelStyle.Render("ACCESS_LVL")+lipgloss.NewStyle().Foreground(ColorSuccess).Render("AUTHORIZED"),
		metaRow("ENCRYPTION", "AES-256-GCM"),
	)
	return strings.Join(rows, "\n")
}

func (p *Preview) updateContent() {
	if !p.hasFile {
		p.viewport.SetContent("")
		return
	}
	if p.tab == TabMetadata {
		p.viewport.SetContent(p.renderMetadata())
	} else {
		p.viewport.SetContent(p.renderVisualizer())
	}
	p.viewport.GotoTop()
}

func (p *Preview) renderEmpty(innerWidth int) string {
	body := lipgloss.NewStyle().Foreground(ColorTextMuted).Width(max(innerWidth-4, 10)).Align(lipgloss.Center)
	return "\n\n" + centered(innerWidth,
		ExplorerMetaStyle.Render("▢"),
		"",
		PanelTitleStyle.Render(strings.ToUpper(PreviewEmptyTitle)),
		body.Render(PreviewEmptyBody),
	)
}

func (p *Preview) renderHeader(innerWidth int) string {
	f := p.file
	name := PanelTitleStyle.Render(runewidth.Truncate(f.Name, innerWidth, "…"))

	badge := PreviewBadgeStyle.Render(strings.ToUpper(string(f.FileType)))
	badgeLine := badge + " " + ExplorerMetaStyle.Render(f.Size())

	var tabs []string
	for _, t := range []PreviewTab{TabVisualizer, TabMetadata} {
		style := FilterTabStyle
		if t == p.tab {
			style = FilterTabActiveStyle
		}
		tabs = append(tabs, style.Render(strings.ToUpper(t.String())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, name, badgeLine, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// View renders the preview panel
func (p *Preview) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}
	innerWidth := ctx.InnerWidth(p.width)

	var content string
	if !p.hasFile {
		content = p.renderEmpty(innerWidth)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, p.renderHeader(innerWidth), p.viewport.View())
	}
	return style.Width(p.width).Height(p.height).Render(content)
}
