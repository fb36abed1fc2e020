package view

import (
	"math"
	"strings"
	"time"

	"github.com/zhubert/aegis/internal/catalog"
)

// RecentDays is the inclusive window of the Recent filter.
const RecentDays = 7

// IsRecent reports whether modified falls within RecentDays of now. The
// difference is rounded up to whole days, so anything up to exactly seven
// days away counts and a single extra second does not.
func IsRecent(modified, now time.Time) bool {
	diff := now.Sub(modified)
	if diff < 0 {
		diff = -diff
	}
	days := math.Ceil(diff.Hours() / 24)
	return days <= RecentDays
}

// ComputeVisible applies the search query and then the active filter to
// entries, preserving their order. Expansion and view mode do not affect
// the result.
func ComputeVisible(entries []catalog.FileEntry, s State, now time.Time) []catalog.FileEntry {
	query := strings.ToLower(s.SearchQuery)
	out := make([]catalog.FileEntry, 0, len(entries))

	for _, e := range entries {
		if !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		switch s.ActiveFilter {
		case FilterStarred:
			if !e.Starred {
				continue
			}
		case FilterRecent:
			if !IsRecent(e.Modified, now) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
