package layout

import (
	"testing"

	"github.com/zhubert/aegis/internal/catalog"
)

const (
	desktopPx = 1280
	mobilePx  = 600
)

func entry(t *testing.T, id string) catalog.FileEntry {
	t.Helper()
	e, err := catalog.Default().Lookup(id)
	if err != nil {
		t.Fatalf("Lookup(%s): %v", id, err)
	}
	return e
}

func TestClassify(t *testing.T) {
	tests := []struct {
		px   int
		want ViewportClass
	}{
		{0, Mobile},
		{1023, Mobile},
		{1024, Desktop},
		{1920, Desktop},
	}
	for _, tt := range tests {
		if got := Classify(tt.px, DefaultBreakpoint); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.px, got, tt.want)
		}
	}
	if Classify(CellsToPx(128, 8), DefaultBreakpoint) != Desktop {
		t.Error("128 columns at 8px should be Desktop")
	}
	if Classify(CellsToPx(127, 8), DefaultBreakpoint) != Mobile {
		t.Error("127 columns at 8px should be Mobile")
	}
}

func TestNewCoordinator_InitialState(t *testing.T) {
	tests := []struct {
		name        string
		px          int
		wantClass   ViewportClass
		wantPreview bool
	}{
		{"desktop", desktopPx, Desktop, true},
		{"mobile", mobilePx, Mobile, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator(tt.px, DefaultBreakpoint)
			if c.Class() != tt.wantClass {
				t.Errorf("Class() = %v", c.Class())
			}
			if c.PreviewOpen() != tt.wantPreview {
				t.Errorf("PreviewOpen() = %v", c.PreviewOpen())
			}
			if c.MenuOpen() {
				t.Error("menu should start closed")
			}
			if _, ok := c.Selected(); ok {
				t.Error("nothing should be selected")
			}
		})
	}
}

func TestNewCoordinator_ZeroBreakpointUsesDefault(t *testing.T) {
	if NewCoordinator(1000, 0).Class() != Mobile {
		t.Error("1000px with default breakpoint should be Mobile")
	}
}

func TestResize_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		setup       func(*Coordinator)
		resizeTo    int
		wantChanged bool
		wantMenu    bool
		wantPreview bool
	}{
		{
			name:  "desktop to mobile closes preview",
			start: desktopPx, resizeTo: mobilePx,
			wantChanged: true, wantMenu: false, wantPreview: false,
		},
		{
			name:  "mobile to desktop with menu open",
			start: mobilePx,
			setup: func(c *Coordinator) { c.ToggleMenu() },
			resizeTo: desktopPx, wantChanged: true, wantMenu: false, wantPreview: true,
		},
		{
			name:  "mobile to desktop with preview closed",
			start: mobilePx,
			setup: func(c *Coordinator) { c.DismissOverlay() },
			resizeTo: desktopPx, wantChanged: true, wantMenu: false, wantPreview: true,
		},
		{
			name:  "desktop to mobile after opening a file",
			start: desktopPx,
			setup: func(c *Coordinator) { c.OpenFile(catalog.FileEntry{ID: "x", Name: "x.pdf", FileType: catalog.TypePDF}, FromBrowser) },
			resizeTo: mobilePx, wantChanged: true, wantMenu: false, wantPreview: false,
		},
		{
			name:  "same class resize keeps flags",
			start: mobilePx,
			setup: func(c *Coordinator) { c.ToggleMenu(); c.TogglePreview() },
			resizeTo: mobilePx - 100, wantChanged: false, wantMenu: true, wantPreview: true,
		},
		{
			name:  "same class desktop resize keeps closed preview",
			start: desktopPx,
			setup: func(c *Coordinator) { c.TogglePreview() },
			resizeTo: desktopPx + 400, wantChanged: false, wantMenu: false, wantPreview: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator(tt.start, DefaultBreakpoint)
			if tt.setup != nil {
				tt.setup(c)
			}
			if got := c.Resize(tt.resizeTo); got != tt.wantChanged {
				t.Errorf("Resize() = %v, want %v", got, tt.wantChanged)
			}
			if c.MenuOpen() != tt.wantMenu {
				t.Errorf("MenuOpen() = %v, want %v", c.MenuOpen(), tt.wantMenu)
			}
			if c.PreviewOpen() != tt.wantPreview {
				t.Errorf("PreviewOpen() = %v, want %v", c.PreviewOpen(), tt.wantPreview)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	tests := []struct {
		name     string
		px       int
		menuOpen bool
		src      Source
		wantMenu bool
	}{
		{"browser on mobile closes menu", mobilePx, true, FromBrowser, false},
		{"chat on mobile keeps menu", mobilePx, true, FromChat, true},
		{"chat on mobile with menu closed", mobilePx, false, FromChat, false},
		{"browser on desktop", desktopPx, false, FromBrowser, false},
		{"chat on desktop", desktopPx, false, FromChat, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator(tt.px, DefaultBreakpoint)
			if tt.menuOpen {
				c.ToggleMenu()
			}
			c.TogglePreview()

			if !c.OpenFile(entry(t, "3"), tt.src) {
				t.Fatal("OpenFile() = false")
			}
			sel, ok := c.Selected()
			if !ok || sel.ID != "3" || sel.Name != "project-plan.pdf" {
				t.Errorf("Selected() = %+v, %v", sel, ok)
			}
			if !c.PreviewOpen() {
				t.Error("preview should be open")
			}
			if c.MenuOpen() != tt.wantMenu {
				t.Errorf("MenuOpen() = %v, want %v", c.MenuOpen(), tt.wantMenu)
			}
		})
	}
}

func TestOpenFile_FolderIgnored(t *testing.T) {
	c := NewCoordinator(mobilePx, DefaultBreakpoint)
	c.ToggleMenu()
	if c.OpenFile(entry(t, "1"), FromBrowser) {
		t.Error("OpenFile(folder) = true")
	}
	if _, ok := c.Selected(); ok {
		t.Error("folder should not be selected")
	}
	if !c.MenuOpen() || c.PreviewOpen() {
		t.Error("flags changed on folder open")
	}
}

func TestOpenFile_ReplacesSelection(t *testing.T) {
	c := NewCoordinator(desktopPx, DefaultBreakpoint)
	c.OpenFile(entry(t, "3"), FromBrowser)
	c.OpenFile(entry(t, "7"), FromChat)
	sel, _ := c.Selected()
	if sel.ID != "7" {
		t.Errorf("selection = %s, want 7", sel.ID)
	}
}

func TestToggles(t *testing.T) {
	c := NewCoordinator(desktopPx, DefaultBreakpoint)
	c.ToggleMenu()
	if c.MenuOpen() {
		t.Error("menu must not open on desktop")
	}
	c.TogglePreview()
	if c.PreviewOpen() {
		t.Error("TogglePreview should close the open preview")
	}
	if c.OverlayVisible() {
		t.Error("no overlay on desktop with menu closed")
	}

	m := NewCoordinator(mobilePx, DefaultBreakpoint)
	m.ToggleMenu()
	if !m.MenuOpen() || !m.OverlayVisible() {
		t.Error("menu should open on mobile and show the overlay")
	}
	m.TogglePreview()
	m.DismissOverlay()
	if m.MenuOpen() || m.PreviewOpen() || m.OverlayVisible() {
		t.Error("DismissOverlay should close everything")
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		id          string
		wantContent string
	}{
		{"7", SampleMarkdown},
		{"6", SampleComponent},
		{"3", ""},
		{"4", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e := entry(t, tt.id)
			sel := Project(e)
			if sel.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", sel.Content, tt.wantContent)
			}
			if sel.Name != e.Name || sel.FileType != e.FileType || sel.SizeBytes != e.SizeBytes || !sel.Modified.Equal(e.Modified) {
				t.Errorf("projection lost fields: %+v", sel)
			}
		})
	}
	if got := Project(entry(t, "4")).PreviewURI; got != "/general-data-dashboard.png" {
		t.Errorf("image preview uri = %q", got)
	}
	if got := Project(entry(t, "3")).Size(); got != "1.95 MB" {
		t.Errorf("Size() = %q", got)
	}
}
