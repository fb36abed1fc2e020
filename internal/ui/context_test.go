package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 {
		t.Errorf("Expected TerminalWidth 120, got %d", ctx.TerminalWidth)
	}
	if ctx.TerminalHeight != 40 {
		t.Errorf("Expected TerminalHeight 40, got %d", ctx.TerminalHeight)
	}

	expectedContent := 40 - HeaderHeight - FooterHeight
	if ctx.ContentHeight != expectedContent {
		t.Errorf("Expected ContentHeight %d, got %d", expectedContent, ctx.ContentHeight)
	}
}

func TestViewContext_UpdateTerminalSize_ClampsToMinimum(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(10, 3)

	if ctx.TerminalWidth != MinTerminalWidth {
		t.Errorf("Expected width clamped to %d, got %d", MinTerminalWidth, ctx.TerminalWidth)
	}
	if ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("Expected height clamped to %d, got %d", MinTerminalHeight, ctx.TerminalHeight)
	}
}

func TestViewContext_Columns(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		name        string
		width       int
		desktop     bool
		menuOpen    bool
		previewOpen bool
		want        Columns
	}{
		{"desktop with preview", 120, true, false, true, Columns{Explorer: 30, Chat: 50, Preview: 40}},
		{"desktop without preview", 120, true, false, false, Columns{Explorer: 30, Chat: 90}},
		{"desktop explorer capped", 200, true, false, true, Columns{Explorer: ExplorerMaxWidth, Chat: 90, Preview: 66}},
		{"desktop ignores menu flag", 120, true, true, false, Columns{Explorer: 30, Chat: 90}},
		{"mobile closed", 80, false, false, false, Columns{Chat: 80}},
		{"mobile menu drawer", 80, false, true, false, Columns{Explorer: DrawerMaxWidth, Chat: 80 - DrawerMaxWidth}},
		{"mobile preview drawer", 80, false, false, true, Columns{Preview: DrawerMaxWidth, Chat: 80 - DrawerMaxWidth}},
		{"mobile menu wins", 80, false, true, true, Columns{Explorer: DrawerMaxWidth, Chat: 80 - DrawerMaxWidth}},
		{"narrow drawer", 48, false, true, false, Columns{Explorer: 36, Chat: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.UpdateTerminalSize(tt.width, 30)
			got := ctx.Columns(tt.desktop, tt.menuOpen, tt.previewOpen)
			if got != tt.want {
				t.Errorf("Columns() = %+v, want %+v", got, tt.want)
			}
			if sum := got.Explorer + got.Chat + got.Preview; sum != tt.width {
				t.Errorf("columns sum to %d, want %d", sum, tt.width)
			}
		})
	}
}

func TestViewContext_InnerWidth(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panelWidth int
		expected   int
	}{
		{40, 40 - BorderSize},
		{80, 80 - BorderSize},
		{BorderSize, 0},
	}

	for _, tt := range tests {
		result := ctx.InnerWidth(tt.panelWidth)
		if result != tt.expected {
			t.Errorf("InnerWidth(%d) = %d, want %d", tt.panelWidth, result, tt.expected)
		}
	}
}

func TestViewContext_InnerHeight(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panelHeight int
		expected    int
	}{
		{24, 24 - BorderSize},
		{10, 10 - BorderSize},
		{BorderSize, 0},
	}

	for _, tt := range tests {
		result := ctx.InnerHeight(tt.panelHeight)
		if result != tt.expected {
			t.Errorf("InnerHeight(%d) = %d, want %d", tt.panelHeight, result, tt.expected)
		}
	}
}

func TestViewContext_ConcurrentAccess(t *testing.T) {
	ctx := GetViewContext()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+n, 24+n)
			_ = ctx.Columns(n%2 == 0, true, true)
		}(i)
	}
	wg.Wait()
}

func TestClamp(t *testing.T) {
	tests := []struct {
		n, lo, hi, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{11, 1, 10, 10},
	}
	for _, tt := range tests {
		if got := clamp(tt.n, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.n, tt.lo, tt.hi, got, tt.want)
		}
	}
}
