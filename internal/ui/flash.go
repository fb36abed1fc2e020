package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FlashType selects the icon and color of a footer flash.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// Icon returns the glyph shown before the flash text.
func (t FlashType) Icon() string {
	switch t {
	case FlashSuccess:
		return "✓"
	case FlashWarning:
		return "⚠"
	case FlashError:
		return "✕"
	default:
		return "ℹ"
	}
}

// FlashMessage is a transient footer message.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg asks the model to expire stale flashes.
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg after FlashTickInterval.
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}
