package view

import (
	"strings"
	"testing"
	"time"

	"github.com/zhubert/aegis/internal/catalog"
)

var ref = time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)

func names(entries []catalog.FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIsRecent(t *testing.T) {
	tests := []struct {
		name     string
		modified time.Time
		want     bool
	}{
		{"same day", ref, true},
		{"exactly seven days", ref.AddDate(0, 0, -7), true},
		{"eight days", ref.AddDate(0, 0, -8), false},
		{"seven days and a second", ref.AddDate(0, 0, -7).Add(-time.Second), false},
		{"future within window", ref.AddDate(0, 0, 3), true},
		{"far future", ref.AddDate(0, 0, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecent(tt.modified, ref); got != tt.want {
				t.Errorf("IsRecent(%v) = %v, want %v", tt.modified, got, tt.want)
			}
		})
	}
}

func TestComputeVisible_SearchIsOrderPreservingSubsequence(t *testing.T) {
	all := catalog.Default().ListAll()

	for _, q := range []string{"", "a", "DA", ".Ts", "zzz", "e"} {
		t.Run(q, func(t *testing.T) {
			s := DefaultState()
			s.SearchQuery = q
			got := ComputeVisible(all, s, ref)

			j := 0
			for _, e := range got {
				if !strings.Contains(strings.ToLower(e.Name), strings.ToLower(q)) {
					t.Errorf("%q does not contain %q", e.Name, q)
				}
				for j < len(all) && all[j].ID != e.ID {
					j++
				}
				if j == len(all) {
					t.Fatalf("%q out of catalog order", e.Name)
				}
				j++
			}
		})
	}
}

func TestComputeVisible_StarredIgnoresNothingButQuery(t *testing.T) {
	all := catalog.Default().ListAll()
	s := DefaultState()
	s.ActiveFilter = FilterStarred

	got := ComputeVisible(all, s, ref)
	if !equal(names(got), []string{"index.tsx"}) {
		t.Errorf("Starred = %v, want [index.tsx]", names(got))
	}
	for _, e := range got {
		if !e.Starred {
			t.Errorf("%s is not starred", e.Name)
		}
	}

	s.SearchQuery = "readme"
	if got := ComputeVisible(all, s, ref); len(got) != 0 {
		t.Errorf("Starred+readme = %v, want empty", names(got))
	}
}

func TestComputeVisible_RecentBoundary(t *testing.T) {
	mk := func(id string, d time.Time) catalog.FileEntry {
		return catalog.FileEntry{ID: id, Name: "f" + id + ".txt", FileType: catalog.TypeText, Modified: d}
	}
	entries := []catalog.FileEntry{
		mk("7d", ref.AddDate(0, 0, -7)),
		mk("8d", ref.AddDate(0, 0, -8)),
	}
	s := DefaultState()
	s.ActiveFilter = FilterRecent

	got := ComputeVisible(entries, s, ref)
	if !equal(names(got), []string{"f7d.txt"}) {
		t.Errorf("Recent = %v, want [f7d.txt]", names(got))
	}
}

func TestComputeVisible_RecentAndStarredOnCatalog(t *testing.T) {
	c := catalog.Default()
	pdf, _ := c.Lookup("3")
	tsx, _ := c.Lookup("6")
	entries := []catalog.FileEntry{pdf, tsx}

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterRecent, []string{"project-plan.pdf", "index.tsx"}},
		{FilterStarred, []string{"index.tsx"}},
		{FilterAll, []string{"project-plan.pdf", "index.tsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			s := DefaultState()
			s.ActiveFilter = tt.filter
			if got := names(ComputeVisible(entries, s, ref)); !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeVisible_RecentOnDefaultCatalog(t *testing.T) {
	s := DefaultState()
	s.ActiveFilter = FilterRecent
	got := names(ComputeVisible(catalog.Default().ListAll(), s, ref))
	// Documents is exactly eight days before the reference date.
	want := []string{"Images", "project-plan.pdf", "dashboard.png", "data.json", "index.tsx", "readme.md"}
	if !equal(got, want) {
		t.Errorf("Recent = %v, want %v", got, want)
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.SearchQuery != "" || s.ActiveFilter != FilterAll || s.ViewMode != ModeList || len(s.Expanded) != 0 {
		t.Errorf("DefaultState() = %+v", s)
	}
}

func TestController_ToggleFolderExpansion(t *testing.T) {
	ctrl := NewController(catalog.Default(), ref)
	before := names(ctrl.Visible())

	if !ctrl.ToggleFolderExpansion("1") {
		t.Fatal("toggle on folder should report true")
	}
	if !ctrl.IsExpanded("1") {
		t.Error("folder 1 should be expanded")
	}
	if !equal(names(ctrl.Visible()), before) {
		t.Error("expansion changed the visible list")
	}

	ctrl.ToggleFolderExpansion("1")
	if ctrl.IsExpanded("1") || len(ctrl.State().Expanded) != 0 {
		t.Error("second toggle should restore the original state")
	}
	if !equal(names(ctrl.Visible()), before) {
		t.Error("visible list changed after double toggle")
	}
}

func TestController_ToggleNonFolderIsNoop(t *testing.T) {
	ctrl := NewController(catalog.Default(), ref)
	for _, id := range []string{"3", "missing", ""} {
		if ctrl.ToggleFolderExpansion(id) {
			t.Errorf("ToggleFolderExpansion(%q) = true, want false", id)
		}
	}
	if len(ctrl.State().Expanded) != 0 {
		t.Error("expanded set should still be empty")
	}
}

func TestController_Setters(t *testing.T) {
	ctrl := NewController(catalog.Default(), ref)

	ctrl.SetSearchQuery("DATA")
	if got := names(ctrl.Visible()); !equal(got, []string{"data.json"}) {
		t.Errorf("after search = %v", got)
	}

	ctrl.SetFilter(FilterStarred)
	if got := ctrl.Visible(); len(got) != 0 {
		t.Errorf("data + starred = %v, want empty", names(got))
	}

	ctrl.SetSearchQuery("")
	if got := names(ctrl.Visible()); !equal(got, []string{"index.tsx"}) {
		t.Errorf("starred = %v", got)
	}

	ctrl.SetViewMode(ModeGrid)
	if ctrl.State().ViewMode != ModeGrid {
		t.Error("view mode not replaced")
	}
	if got := names(ctrl.Visible()); !equal(got, []string{"index.tsx"}) {
		t.Errorf("view mode changed visible list: %v", got)
	}
}

func TestController_StateIsCopy(t *testing.T) {
	ctrl := NewController(catalog.Default(), ref)
	s := ctrl.State()
	s.Expanded["1"] = true
	if ctrl.IsExpanded("1") {
		t.Error("mutating State() leaked into the controller")
	}
}

func TestFilterNextAndModeToggle(t *testing.T) {
	if FilterAll.Next() != FilterRecent || FilterRecent.Next() != FilterStarred || FilterStarred.Next() != FilterAll {
		t.Error("Filter.Next() does not cycle All, Recent, Starred")
	}
	if ModeList.Toggle() != ModeGrid || ModeGrid.Toggle() != ModeList {
		t.Error("Mode.Toggle() does not flip")
	}
}
