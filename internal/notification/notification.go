// Package notification sends desktop notifications through beeep.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/aegis/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "Aegis Core"

var notify = beeep.Notify

// SetNotifier replaces the notification backend. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) { notify = fn }

// ResetNotifier restores beeep.
func ResetNotifier() { notify = beeep.Notify }

// Send shows a desktop notification.
func Send(title, message string) error {
	logger.Debug("notification: title=%q message=%q", title, message)
	if err := notify(title, message, ""); err != nil {
		logger.Warn("notification: failed: %v", err)
		return err
	}
	return nil
}

// ReplyReady announces a finished assistant reply. preview is trimmed to a
// single short line.
func ReplyReady(preview string) error {
	return Send(AppName, "Reply ready: "+shorten(preview, 80))
}

func shorten(s string, max int) string {
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
