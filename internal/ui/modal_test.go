package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/aegis/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Fatal("expected hidden modal")
	}

	m.Show(modals.NewHelpState(nil))
	m.SetError("boom")
	if !m.IsVisible() {
		t.Error("expected visible modal")
	}

	m.Show(modals.NewQuickOpenState(nil))
	if m.GetError() != "" {
		t.Error("expected Show to clear the error")
	}

	m.Hide()
	if m.IsVisible() || m.View(80, 24) != "" {
		t.Error("expected hidden modal to render nothing")
	}
}

func TestModal_View(t *testing.T) {
	m := NewModal()
	m.Show(modals.NewQuickOpenState([]modals.FileItem{{ID: "1", Name: "readme.md", Type: "text", Size: "3.3 KB"}}))
	m.SetError("Catalog unavailable")

	out := stripANSI(m.View(100, 30))
	for _, want := range []string{"Quick Open", "readme.md", "Catalog unavailable"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in modal, got:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 30 {
		t.Errorf("expected modal placed on a 30 line canvas, got %d", lines)
	}
}

func TestModal_UpdateDelegates(t *testing.T) {
	m := NewModal()
	qo := modals.NewQuickOpenState([]modals.FileItem{{ID: "1", Name: "a.md"}, {ID: "2", Name: "b.md"}})
	m.Show(qo)

	m.Update(keyPressMsg("down"))
	if sel, _ := qo.Selected(); sel.ID != "2" {
		t.Errorf("expected key delegated to the state, selected %q", sel.ID)
	}
}
