package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/aegis/internal/chat"
	"github.com/zhubert/aegis/internal/notification"
)

// ChatEventMsg carries one event read from a bridge's stream. Bridge is the
// bridge that started the send so the model can drop events after a lock.
type ChatEventMsg struct {
	Bridge *chat.Bridge
	Event  chat.Event
	Closed bool

	ch <-chan chat.Event
}

// UploadDoneMsg ends the mock upload.
type UploadDoneMsg struct{}

// listenForChatEvent creates a command that reads one event from ch. The
// model re-arms it after each event until the channel closes.
func listenForChatEvent(b *chat.Bridge, ch <-chan chat.Event) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return ChatEventMsg{Bridge: b, Closed: true}
		}
		return ChatEventMsg{Bridge: b, Event: ev, ch: ch}
	}
}

// uploadAfter fires UploadDoneMsg once d has passed.
func uploadAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return UploadDoneMsg{}
	})
}

// notifyReplyReady sends the desktop notification off the update loop.
func notifyReplyReady(content string) tea.Cmd {
	return func() tea.Msg {
		_ = notification.ReplyReady(content)
		return nil
	}
}
