package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode picks which bindings the footer shows.
type FooterMode int

const (
	FooterLogin FooterMode = iota
	FooterExplorer
	FooterSearch
	FooterChat
	FooterStreaming
	FooterPreview
	FooterOverlay
	FooterModal
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	mode         FooterMode
	mobile       bool
	hasNotice    bool
	hasSuggest   bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "/", Desc: "search"},
			{Key: "f", Desc: "filter"},
			{Key: "g", Desc: "grid/list"},
			{Key: "enter", Desc: "open"},
			{Key: "s", Desc: "share"},
			{Key: "ctrl+k", Desc: "quick open"},
			{Key: "?", Desc: "help"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(mode FooterMode, mobile, hasNotice, hasSuggestion bool) {
	f.mode = mode
	f.mobile = mobile
	f.hasNotice = hasNotice
	f.hasSuggest = hasSuggestion
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings for the explorer context
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// contextBindings returns the bindings for the current mode
func (f *Footer) contextBindings() []KeyBinding {
	switch f.mode {
	case FooterLogin:
		return []KeyBinding{
			{Key: "enter", Desc: "unlock"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case FooterSearch:
		return []KeyBinding{
			{Key: "type", Desc: "filter files"},
			{Key: "enter", Desc: "keep"},
			{Key: "esc", Desc: "clear"},
		}
	case FooterModal:
		return []KeyBinding{
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "close"},
		}
	case FooterOverlay:
		return []KeyBinding{
			{Key: "esc", Desc: "dismiss"},
			{Key: "enter", Desc: "open"},
			{Key: "ctrl+b", Desc: "files"},
			{Key: "ctrl+p", Desc: "preview"},
		}
	case FooterStreaming:
		b := []KeyBinding{
			{Key: "esc", Desc: "stop"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
		if f.mobile {
			b = append(b, KeyBinding{Key: "ctrl+b", Desc: "files"})
		}
		return b
	case FooterChat:
		b := []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+u", Desc: "upload"},
		}
		if f.hasSuggest {
			b = append(b, KeyBinding{Key: "ctrl+o", Desc: "open suggestion"})
		}
		if f.hasNotice {
			b = append(b, KeyBinding{Key: "ctrl+x", Desc: "dismiss notice"})
		}
		if f.mobile {
			b = append(b, KeyBinding{Key: "ctrl+b", Desc: "files"})
		}
		return b
	case FooterPreview:
		return []KeyBinding{
			{Key: "←/→", Desc: "tabs"},
			{Key: "s", Desc: "share"},
			{Key: "ctrl+p", Desc: "close"},
			{Key: "tab", Desc: "switch pane"},
		}
	default:
		b := append([]KeyBinding(nil), f.bindings...)
		if f.mobile {
			b = append(b, KeyBinding{Key: "ctrl+b", Desc: "files"})
		}
		return b
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.contextBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	// FooterStyle pads one cell on each side
	if inner := f.width - 2; inner > 0 {
		content = ansi.Truncate(content, inner, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var c = ColorInfo
	switch f.flashMessage.Type {
	case FlashSuccess:
		c = ColorSuccess
	case FlashWarning:
		c = ColorWarning
	case FlashError:
		c = ColorError
	}
	style := lipgloss.NewStyle().Foreground(c).Bold(true)
	return style.Render(f.flashMessage.Type.Icon() + " " + f.flashMessage.Text)
}
