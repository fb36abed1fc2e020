// Package layout coordinates file selection with the visibility of the
// explorer menu and preview panel across viewport classes.
package layout

import (
	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/logger"
)

// DefaultBreakpoint is the Desktop threshold in logical px.
const DefaultBreakpoint = 1024

// ViewportClass is Mobile or Desktop.
type ViewportClass int

const (
	Mobile ViewportClass = iota
	Desktop
)

func (c ViewportClass) String() string {
	if c == Desktop {
		return "desktop"
	}
	return "mobile"
}

// Classify returns Desktop when widthPx >= breakpoint.
func Classify(widthPx, breakpoint int) ViewportClass {
	if widthPx >= breakpoint {
		return Desktop
	}
	return Mobile
}

// CellsToPx converts a terminal width in columns to logical px.
func CellsToPx(cols, cellWidthPx int) int {
	return cols * cellWidthPx
}

// Source identifies where an open request came from.
type Source int

const (
	FromBrowser Source = iota
	FromChat
)

func (s Source) String() string {
	if s == FromChat {
		return "chat"
	}
	return "browser"
}

// Coordinator is the panel state machine. The zero value is not usable;
// build one with NewCoordinator.
type Coordinator struct {
	breakpoint  int
	class       ViewportClass
	menuOpen    bool
	previewOpen bool
	selected    *SelectedFile
}

// NewCoordinator classifies widthPx and opens the preview only on Desktop.
func NewCoordinator(widthPx, breakpoint int) *Coordinator {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	class := Classify(widthPx, breakpoint)
	return &Coordinator{
		breakpoint:  breakpoint,
		class:       class,
		previewOpen: class == Desktop,
	}
}

// Resize reclassifies the viewport. Crossing into Mobile closes the preview;
// crossing into Desktop opens it and closes the menu. Resizes within the same
// class change nothing and Resize returns false.
func (c *Coordinator) Resize(widthPx int) bool {
	next := Classify(widthPx, c.breakpoint)
	if next == c.class {
		return false
	}
	c.class = next
	switch next {
	case Mobile:
		c.previewOpen = false
	case Desktop:
		c.previewOpen = true
		c.menuOpen = false
	}
	logger.Debug("layout: class=%s menu=%v preview=%v", c.class, c.menuOpen, c.previewOpen)
	return true
}

// OpenFile selects entry and opens the preview. Folders are ignored and
// false is returned. A browser open on Mobile also closes the menu; a chat
// open leaves the menu as it is.
func (c *Coordinator) OpenFile(entry catalog.FileEntry, src Source) bool {
	if entry.IsFolder() {
		return false
	}
	sel := Project(entry)
	c.selected = &sel
	c.previewOpen = true
	if src == FromBrowser && c.class == Mobile {
		c.menuOpen = false
	}
	logger.Debug("layout: open id=%s from=%s", entry.ID, src)
	return true
}

// TogglePreview flips the preview panel.
func (c *Coordinator) TogglePreview() { c.previewOpen = !c.previewOpen }

// ToggleMenu flips the explorer menu. It only exists on Mobile.
func (c *Coordinator) ToggleMenu() {
	if c.class != Mobile {
		return
	}
	c.menuOpen = !c.menuOpen
}

// DismissOverlay closes both the menu and the preview.
func (c *Coordinator) DismissOverlay() {
	c.menuOpen = false
	c.previewOpen = false
}

// OverlayVisible reports whether a drawer covers the main content, which is
// when the scrim is shown.
func (c *Coordinator) OverlayVisible() bool {
	return c.menuOpen || (c.class == Mobile && c.previewOpen)
}

// Class returns the current viewport class.
func (c *Coordinator) Class() ViewportClass { return c.class }

// MenuOpen reports whether the explorer menu is open.
func (c *Coordinator) MenuOpen() bool { return c.menuOpen }

// PreviewOpen reports whether the preview panel is open.
func (c *Coordinator) PreviewOpen() bool { return c.previewOpen }

// Selected returns the current selection, if any.
func (c *Coordinator) Selected() (SelectedFile, bool) {
	if c.selected == nil {
		return SelectedFile{}, false
	}
	return *c.selected, true
}
