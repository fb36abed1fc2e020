// Package view derives the visible file list from the catalog and the
// user's search, filter, mode and expansion choices.
package view

// Filter restricts the visible entries.
type Filter int

const (
	FilterAll Filter = iota
	FilterRecent
	FilterStarred
)

// Filters lists every filter in tab order.
var Filters = []Filter{FilterAll, FilterRecent, FilterStarred}

func (f Filter) String() string {
	switch f {
	case FilterRecent:
		return "Recent"
	case FilterStarred:
		return "Starred"
	default:
		return "All Files"
	}
}

// Next returns the following filter in tab order, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Mode is the explorer presentation.
type Mode int

const (
	ModeList Mode = iota
	ModeGrid
)

func (m Mode) String() string {
	if m == ModeGrid {
		return "Grid"
	}
	return "List"
}

// Toggle flips between List and Grid.
func (m Mode) Toggle() Mode {
	if m == ModeGrid {
		return ModeList
	}
	return ModeGrid
}

// State is the explorer's view state.
type State struct {
	SearchQuery  string
	ActiveFilter Filter
	ViewMode     Mode
	Expanded     map[string]bool
}

// DefaultState is the initial state: empty query, All, List, nothing expanded.
func DefaultState() State {
	return State{Expanded: map[string]bool{}}
}

// IsExpanded reports whether id is in the expanded set.
func (s State) IsExpanded(id string) bool {
	return s.Expanded[id]
}

func (s State) clone() State {
	out := s
	out.Expanded = make(map[string]bool, len(s.Expanded))
	for id := range s.Expanded {
		out.Expanded[id] = true
	}
	return out
}
