// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of the drive.
package ui

import (
	"sort"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for assistant messages, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)
	Scrim      string // Dimmed chat behind an open drawer

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string // Warnings
	Error     string // Error messages and the link failure notice
	Info      string // Information
	Success   string // Completed actions
	Star      string // Starred marker

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Markdown colors
	MarkdownH1       string // H1 headers
	MarkdownH2       string // H2 headers
	MarkdownH3       string // H3 headers
	MarkdownCode     string // Inline code
	MarkdownCodeBg   string // Code background
	MarkdownLink     string // Links
	MarkdownListItem string // List bullets

	// CodeStyle is the chroma style used for code previews and fences
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeCyberViolet ThemeName = "cyber-violet"
	ThemeNord        ThemeName = "nord"
	ThemeDracula     ThemeName = "dracula"
	ThemeTokyoNight  ThemeName = "tokyo-night"
	ThemeLight       ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeCyberViolet

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeCyberViolet: {
		Name:             "Cyber Violet",
		Primary:          "#9D4EDD",
		Secondary:        "#22D3EE",
		Bg:               "#0A0A0F",
		BgSelected:       "#5A189A",
		Scrim:            "#3F3F46",
		Text:             "#F4F4F5",
		TextMuted:        "#A1A1AA",
		TextInverse:      "#0A0A0F",
		User:             "#C77DFF",
		Assistant:        "#22D3EE",
		Warning:          "#F59E0B",
		Error:            "#F43F5E",
		Info:             "#22D3EE",
		Success:          "#34D399",
		Star:             "#FACC15",
		Border:           "#27272A",
		MarkdownH1:       "#C77DFF",
		MarkdownH2:       "#E0AAFF",
		MarkdownH3:       "#22D3EE",
		MarkdownCode:     "#67E8F9",
		MarkdownCodeBg:   "#18181B",
		MarkdownLink:     "#67E8F9",
		MarkdownListItem: "#9D4EDD",
		CodeStyle:        "monokai",
	},
	ThemeNord: {
		Name:             "Nord",
		Primary:          "#88C0D0",
		Secondary:        "#81A1C1",
		Bg:               "#2E3440",
		Scrim:            "#4C566A",
		Text:             "#ECEFF4",
		TextMuted:        "#D8DEE9",
		TextInverse:      "#2E3440",
		User:             "#A3BE8C",
		Assistant:        "#88C0D0",
		Warning:          "#EBCB8B",
		Error:            "#BF616A",
		Info:             "#81A1C1",
		Success:          "#A3BE8C",
		Star:             "#EBCB8B",
		Border:           "#4C566A",
		MarkdownH1:       "#88C0D0",
		MarkdownH2:       "#81A1C1",
		MarkdownH3:       "#5E81AC",
		MarkdownCode:     "#A3BE8C",
		MarkdownCodeBg:   "#242933",
		MarkdownLink:     "#88C0D0",
		MarkdownListItem: "#81A1C1",
		CodeStyle:        "nord",
	},
	ThemeDracula: {
		Name:             "Dracula",
		Primary:          "#BD93F9",
		Secondary:        "#8BE9FD",
		Bg:               "#282A36",
		Scrim:            "#44475A",
		Text:             "#F8F8F2",
		TextMuted:        "#6272A4",
		TextInverse:      "#282A36",
		User:             "#FF79C6",
		Assistant:        "#8BE9FD",
		Warning:          "#FFB86C",
		Error:            "#FF5555",
		Info:             "#8BE9FD",
		Success:          "#50FA7B",
		Star:             "#F1FA8C",
		Border:           "#44475A",
		MarkdownH1:       "#BD93F9",
		MarkdownH2:       "#FF79C6",
		MarkdownH3:       "#8BE9FD",
		MarkdownCode:     "#50FA7B",
		MarkdownCodeBg:   "#21222C",
		MarkdownLink:     "#8BE9FD",
		MarkdownListItem: "#BD93F9",
		CodeStyle:        "dracula",
	},
	ThemeTokyoNight: {
		Name:             "Tokyo Night",
		Primary:          "#7AA2F7",
		Secondary:        "#BB9AF7",
		Bg:               "#1A1B26",
		Scrim:            "#414868",
		Text:             "#C0CAF5",
		TextMuted:        "#565F89",
		TextInverse:      "#1A1B26",
		User:             "#9ECE6A",
		Assistant:        "#7DCFFF",
		Warning:          "#E0AF68",
		Error:            "#F7768E",
		Info:             "#7DCFFF",
		Success:          "#9ECE6A",
		Star:             "#E0AF68",
		Border:           "#292E42",
		MarkdownH1:       "#7AA2F7",
		MarkdownH2:       "#BB9AF7",
		MarkdownH3:       "#7DCFFF",
		MarkdownCode:     "#9ECE6A",
		MarkdownCodeBg:   "#16161E",
		MarkdownLink:     "#7DCFFF",
		MarkdownListItem: "#7AA2F7",
		CodeStyle:        "tokyonight-night",
	},
	ThemeLight: {
		Name:             "Light",
		Primary:          "#7C3AED",
		Secondary:        "#0891B2",
		Bg:               "#FFFFFF",
		BgSelected:       "#DDD6FE",
		Scrim:            "#D4D4D8",
		Text:             "#18181B",
		TextMuted:        "#52525B",
		TextInverse:      "#FFFFFF",
		User:             "#6D28D9",
		Assistant:        "#0E7490",
		Warning:          "#B45309",
		Error:            "#DC2626",
		Info:             "#0891B2",
		Success:          "#059669",
		Star:             "#CA8A04",
		Border:           "#D4D4D8",
		MarkdownH1:       "#6D28D9",
		MarkdownH2:       "#7C3AED",
		MarkdownH3:       "#0E7490",
		MarkdownCode:     "#0E7490",
		MarkdownCodeBg:   "#F4F4F5",
		MarkdownLink:     "#0891B2",
		MarkdownListItem: "#7C3AED",
		CodeStyle:        "github",
	},
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// ThemeNames returns all theme identifiers in a stable order.
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorScrim = lipgloss.Color(t.Scrim)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorStar = lipgloss.Color(t.Star)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	ScrimStyle = lipgloss.NewStyle().
		Foreground(ColorScrim).
		Faint(true)

	ExplorerItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	ExplorerSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	ExplorerMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ExplorerStarStyle = lipgloss.NewStyle().
		Foreground(ColorStar)

	FilterTabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FilterTabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatNoticeStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	ChatSuggestionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	PreviewBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	PreviewLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(12)

	PreviewValueStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	PreviewFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorPrimary).
		Foreground(ColorTextMuted).
		Padding(1, 2)

	LoginCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 3).
		Width(LoginCardWidth)

	LoginTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH1)).
		MarginTop(1)

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH2)).
		MarginTop(1)

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH3))

	MarkdownH4Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode)).
		Background(lipgloss.Color(t.MarkdownCodeBg))

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownListItem))

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorMuted).
		PaddingLeft(1)

	MarkdownHRStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)

	RefreshModalStyles()
}
