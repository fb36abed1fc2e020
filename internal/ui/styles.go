package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Every value here is assigned by regenerateStyles from the
// current theme.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorScrim       color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
	ColorStar        color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style

	// ScrimStyle dims the chat while a mobile drawer is open
	ScrimStyle lipgloss.Style
)

// Explorer styles
var (
	ExplorerItemStyle     lipgloss.Style
	ExplorerSelectedStyle lipgloss.Style
	ExplorerMetaStyle     lipgloss.Style
	ExplorerStarStyle     lipgloss.Style
	FilterTabStyle        lipgloss.Style
	FilterTabActiveStyle  lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatNoticeStyle       lipgloss.Style
	ChatSuggestionStyle   lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Preview styles
var (
	PreviewBadgeStyle lipgloss.Style
	PreviewLabelStyle lipgloss.Style
	PreviewValueStyle lipgloss.Style
	PreviewFrameStyle lipgloss.Style
)

// Login and modal styles
var (
	LoginCardStyle  lipgloss.Style
	LoginTitleStyle lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

// Markdown rendering styles
var (
	MarkdownH1Style         lipgloss.Style
	MarkdownH2Style         lipgloss.Style
	MarkdownH3Style         lipgloss.Style
	MarkdownH4Style         lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownHRStyle         lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)
