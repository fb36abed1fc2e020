package ui

import (
	"sync"

	"github.com/zhubert/aegis/internal/logger"
)

// Columns are the outer widths of the three drive panels for one frame.
// A zero width means the panel is not drawn.
type Columns struct {
	Explorer int
	Chat     int
	Preview  int
}

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using slog structured logging.
func (v *ViewContext) Log(msg string, args ...any) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
	)
}

// Columns splits the terminal width between the drive panels.
//
// On desktop the explorer is always docked, the preview takes a third of the
// width while open, and chat gets the rest. On mobile the explorer and
// preview are drawers over the chat; only one drawer is drawn at a time and
// the explorer wins when both are open.
func (v *ViewContext) Columns(desktop, menuOpen, previewOpen bool) Columns {
	v.mu.Lock()
	width := v.TerminalWidth
	v.mu.Unlock()

	if desktop {
		explorer := clamp(width/ExplorerWidthRatio, ExplorerMinWidth, ExplorerMaxWidth)
		preview := 0
		if previewOpen {
			preview = width / PreviewWidthRatio
		}
		return Columns{
			Explorer: explorer,
			Preview:  preview,
			Chat:     width - explorer - preview,
		}
	}

	drawer := v.drawerWidth(width)
	switch {
	case menuOpen:
		return Columns{Explorer: drawer, Chat: width - drawer}
	case previewOpen:
		return Columns{Preview: drawer, Chat: width - drawer}
	default:
		return Columns{Chat: width}
	}
}

// drawerWidth is three quarters of the terminal, capped at DrawerMaxWidth.
func (v *ViewContext) drawerWidth(width int) int {
	w := width * 3 / 4
	if w > DrawerMaxWidth {
		w = DrawerMaxWidth
	}
	return w
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
