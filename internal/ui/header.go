package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// AppTitle is the left side of the header bar.
const AppTitle = " aegis"

// Header represents the top header bar
type Header struct {
	width     int
	filter    string
	class     string
	unlocked  bool
	streaming bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetFilter sets the active filter label shown on the right
func (h *Header) SetFilter(label string) {
	h.filter = label
}

// SetClass sets the viewport class label ("desktop" or "mobile")
func (h *Header) SetClass(class string) {
	h.class = class
}

// SetUnlocked toggles the lock hint
func (h *Header) SetUnlocked(unlocked bool) {
	h.unlocked = unlocked
}

// SetStreaming marks that a reply is streaming
func (h *Header) SetStreaming(streaming bool) {
	h.streaming = streaming
}

// rightText builds the status segment: "● Recent · desktop · ctrl+l lock ".
func (h *Header) rightText() string {
	if !h.unlocked {
		return "locked "
	}
	var parts []string
	if h.filter != "" {
		parts = append(parts, h.filter)
	}
	if h.class != "" {
		parts = append(parts, h.class)
	}
	parts = append(parts, "ctrl+l lock")
	text := strings.Join(parts, " · ") + " "
	if h.streaming {
		text = "● " + text
	}
	return text
}

// View renders the header
func (h *Header) View() string {
	titleText := AppTitle
	rightText := h.rightText()

	paddingLen := h.width - len([]rune(titleText)) - len([]rune(rightText))
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		fullContent = ansi.Truncate(fullContent, h.width, "")
	}

	return h.renderGradient(fullContent, len([]rune(titleText)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The first titleLen runes are bold; the status segment is muted.
func (h *Header) renderGradient(content string, titleLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	statusStart := width - len([]rune(h.rightText()))

	var result strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		if i >= statusStart && statusStart > titleLen {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
