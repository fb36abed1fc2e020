package modals

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/aegis/internal/keys"
)

// Glyphs the settings form draws with.
const (
	formRail          = "┃"
	formCursor        = "▸ "
	formPrev          = "◂"
	formNext          = "▸"
	formChecked       = "◆ "
	formUnchecked     = "◇ "
	formErrorMark     = " !"
	formBlurredIndent = 2
)

// primeForm runs the form's Init so the first frame already has its fields
// laid out.
func primeForm(form *huh.Form) {
	form.Init()
}

// updateForm forwards msg to a huh form, holding back Enter and Esc: the
// modal handlers decide what those mean.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		if k := key.String(); k == keys.Enter || k == keys.Escape {
			return form, nil
		}
	}
	next, cmd := form.Update(msg)
	return next.(*huh.Form), cmd
}

// ModalTheme builds the settings form theme from the active palette. It
// reads the palette on every call, so build it when the form is created.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		t.Focused = focusedFieldStyles(t.Focused)
		t.Blurred = blurredFieldStyles(t.Focused)

		t.Group.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}

// focusedFieldStyles marks the active field with a cyan rail and violet
// cursor glyphs.
func focusedFieldStyles(f huh.FieldStyles) huh.FieldStyles {
	rail := lipgloss.Border{Left: formRail}
	accent := lipgloss.NewStyle().Foreground(ColorSecondary)
	cursor := lipgloss.NewStyle().Foreground(ColorPrimary)

	f.Base = lipgloss.NewStyle().
		Border(rail, false, false, false, true).
		BorderForeground(ColorSecondary).
		PaddingLeft(1)
	f.Card = f.Base
	f.Title = accent.Bold(true)
	f.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)
	f.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(formErrorMark)
	f.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

	f.SelectSelector = cursor.SetString(formCursor)
	f.MultiSelectSelector = cursor.SetString(formCursor)
	f.PrevIndicator = cursor.MarginRight(1).SetString(formPrev)
	f.NextIndicator = cursor.MarginLeft(1).SetString(formNext)
	f.Option = lipgloss.NewStyle().Foreground(ColorText)

	f.SelectedOption = accent
	f.SelectedPrefix = accent.SetString(formChecked)
	f.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)
	f.UnselectedPrefix = lipgloss.NewStyle().Foreground(ColorTextMuted).SetString(formUnchecked)

	f.TextInput.Prompt = cursor
	f.TextInput.Cursor = accent
	f.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)
	f.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	return f
}

// blurredFieldStyles drops the rail and the arrows but keeps the indent, so
// fields don't shift when focus moves.
func blurredFieldStyles(focused huh.FieldStyles) huh.FieldStyles {
	f := focused
	f.Base = lipgloss.NewStyle().PaddingLeft(formBlurredIndent)
	f.Card = f.Base
	f.Title = lipgloss.NewStyle().Foreground(ColorTextMuted).Bold(true)
	f.PrevIndicator = lipgloss.NewStyle()
	f.NextIndicator = lipgloss.NewStyle()
	return f
}
