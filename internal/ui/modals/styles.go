package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Style variables - these will be set by the parent ui package via SetStyles
var (
	ModalTitleStyle   lipgloss.Style
	ModalHelpStyle    lipgloss.Style
	ItemStyle         lipgloss.Style
	ItemSelectedStyle lipgloss.Style
	StatusErrorStyle  lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorStar        color.Color
	ColorWarning     color.Color

	ModalWidth          int
	HelpModalMaxVisible int
	QuickOpenMaxVisible int
)

// Palette is the set of colors modals draw with.
type Palette struct {
	Primary     color.Color
	Secondary   color.Color
	Text        color.Color
	TextMuted   color.Color
	TextInverse color.Color
	Star        color.Color
	Warning     color.Color
}

// SetStyles sets the style variables from the parent ui package.
// This must be called before rendering any modals.
func SetStyles(
	modalTitle, modalHelp, item, itemSelected, statusError lipgloss.Style,
	p Palette,
	modalWidth, helpMaxVisible, quickOpenMaxVisible int,
) {
	ModalTitleStyle = modalTitle
	ModalHelpStyle = modalHelp
	ItemStyle = item
	ItemSelectedStyle = itemSelected
	StatusErrorStyle = statusError

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorText = p.Text
	ColorTextMuted = p.TextMuted
	ColorTextInverse = p.TextInverse
	ColorStar = p.Star
	ColorWarning = p.Warning

	ModalWidth = modalWidth
	HelpModalMaxVisible = helpMaxVisible
	QuickOpenMaxVisible = quickOpenMaxVisible
}
