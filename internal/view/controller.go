package view

import (
	"time"

	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/logger"
)

// Controller owns the view state for one session and keeps the visible list
// in sync with it. The reference time is fixed when the controller is built.
type Controller struct {
	catalog catalog.Catalog
	now     time.Time
	state   State
	visible []catalog.FileEntry
	folders map[string]bool
}

// NewController starts from DefaultState.
func NewController(c catalog.Catalog, now time.Time) *Controller {
	ctrl := &Controller{
		catalog: c,
		now:     now,
		state:   DefaultState(),
		folders: map[string]bool{},
	}
	for _, e := range c.ListAll() {
		if e.IsFolder() {
			ctrl.folders[e.ID] = true
		}
	}
	ctrl.recompute()
	return ctrl
}

func (c *Controller) recompute() {
	c.visible = ComputeVisible(c.catalog.ListAll(), c.state, c.now)
}

// State returns a copy of the current view state.
func (c *Controller) State() State { return c.state.clone() }

// Now returns the reference time used by the Recent filter.
func (c *Controller) Now() time.Time { return c.now }

// Visible returns the current visible list.
func (c *Controller) Visible() []catalog.FileEntry {
	out := make([]catalog.FileEntry, len(c.visible))
	copy(out, c.visible)
	return out
}

// SetSearchQuery replaces the query.
func (c *Controller) SetSearchQuery(q string) {
	if q == c.state.SearchQuery {
		return
	}
	c.state.SearchQuery = q
	c.recompute()
}

// SetFilter replaces the active filter.
func (c *Controller) SetFilter(f Filter) {
	if f == c.state.ActiveFilter {
		return
	}
	c.state.ActiveFilter = f
	logger.Debug("view: filter=%s", f)
	c.recompute()
}

// SetViewMode replaces the view mode.
func (c *Controller) SetViewMode(m Mode) {
	c.state.ViewMode = m
}

// ToggleFolderExpansion flips id in the expanded set. Ids that are not
// folders are ignored and false is returned. Expanding never reveals
// children, so the visible list is unchanged.
func (c *Controller) ToggleFolderExpansion(id string) bool {
	if !c.folders[id] {
		return false
	}
	if c.state.Expanded[id] {
		delete(c.state.Expanded, id)
	} else {
		c.state.Expanded[id] = true
	}
	return true
}

// IsExpanded reports whether folder id is expanded.
func (c *Controller) IsExpanded(id string) bool { return c.state.Expanded[id] }
