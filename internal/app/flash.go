package app

import (
	tea "charm.land/bubbletea/v2"

	aegiserrors "github.com/zhubert/aegis/internal/errors"
	"github.com/zhubert/aegis/internal/logger"
	"github.com/zhubert/aegis/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// ShowFlashForError logs err and flashes text with a severity that follows
// the error kind.
func (m *Model) ShowFlashForError(text string, err error) tea.Cmd {
	kind := aegiserrors.GetKind(err)
	logger.WithComponent("app").Error(text, "kind", kind.String(), "error", err)
	return m.ShowFlash(text, flashTypeFor(kind))
}

func flashTypeFor(kind aegiserrors.Kind) ui.FlashType {
	switch kind {
	case aegiserrors.KindCanceled:
		return ui.FlashInfo
	case aegiserrors.KindBusy, aegiserrors.KindNotFound:
		return ui.FlashWarning
	default:
		return ui.FlashError
	}
}
