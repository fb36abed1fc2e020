package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/keys"
	"github.com/zhubert/aegis/internal/layout"
)

func entryByName(t *testing.T, name string) catalog.FileEntry {
	t.Helper()
	for _, e := range catalog.Default().ListAll() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no catalog entry named %q", name)
	return catalog.FileEntry{}
}

func newTestPreview() *Preview {
	p := NewPreview()
	p.SetSize(60, 30)
	p.SetReference(testReference)
	return p
}

func TestPreview_EmptyState(t *testing.T) {
	p := newTestPreview()

	out := stripANSI(p.View())
	if !strings.Contains(out, strings.ToUpper(PreviewEmptyTitle)) {
		t.Errorf("expected empty state title, got %q", out)
	}
}

func TestPreview_Visualizer(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{"dashboard.png", []string{"IMAGE STREAM", "/general-data-dashboard.png"}},
		{"readme.md", []string{"Sample Markdown", "This is a preview of the file content."}},
		{"index.tsx", []string{PreviewCodeInspector, "Component"}},
		{"project-plan.pdf", []string{strings.ToUpper(PreviewPDFTitle), PreviewPDFBody}},
		{"data.json", []string{PreviewUnavailable}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p := newTestPreview()
			p.SetFile(layout.Project(entryByName(t, tt.file)), true)

			out := stripANSI(p.View())
			if !strings.Contains(out, tt.file) {
				t.Errorf("expected header to show the file name")
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in visualizer, got:\n%s", want, out)
				}
			}
		})
	}
}

func TestPreview_Metadata(t *testing.T) {
	p := newTestPreview()
	sel := layout.Project(entryByName(t, "dashboard.png"))
	p.SetFile(sel, true)
	p.SetTab(TabMetadata)

	out := stripANSI(p.View())
	for _, want := range []string{"Hardware_Tags", sel.Size(), "1,024,000", "2025.12.26", "2 days ago", "AUTHORIZED", "AES-256-GCM"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in metadata, got:\n%s", want, out)
		}
	}
}

func TestPreview_TabKeys(t *testing.T) {
	p := newTestPreview()
	p.SetFile(layout.Project(entryByName(t, "readme.md")), true)

	// Unfocused panels ignore tab keys
	p.Update(keyPressMsg(keys.Right))
	if p.Tab() != TabVisualizer {
		t.Fatal("expected unfocused preview to ignore keys")
	}

	p.SetFocused(true)
	p.Update(keyPressMsg(keys.Right))
	if p.Tab() != TabMetadata {
		t.Errorf("expected Metadata, got %s", p.Tab())
	}
	p.Update(keyPressMsg(keys.Left))
	if p.Tab() != TabVisualizer {
		t.Errorf("expected Visualizer, got %s", p.Tab())
	}
}

func TestPreview_NewFileResetsTab(t *testing.T) {
	p := newTestPreview()
	readme := layout.Project(entryByName(t, "readme.md"))

	p.SetFile(readme, true)
	p.SetTab(TabMetadata)

	p.SetFile(readme, true)
	if p.Tab() != TabMetadata {
		t.Error("expected the same file to keep its tab")
	}

	p.SetFile(layout.Project(entryByName(t, "index.tsx")), true)
	if p.Tab() != TabVisualizer {
		t.Error("expected a new file to reset to Visualizer")
	}
}

func TestPreview_ClearFile(t *testing.T) {
	p := newTestPreview()
	p.SetFile(layout.Project(entryByName(t, "readme.md")), true)

	p.SetFile(layout.SelectedFile{}, false)

	out := stripANSI(p.View())
	if !strings.Contains(out, strings.ToUpper(PreviewEmptyTitle)) {
		t.Errorf("expected empty state after clearing, got %q", out)
	}
}
