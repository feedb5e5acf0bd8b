package view

import (
	"fmt"

	"github.com/yildizm/cloctop/internal/stats"
)

// ContractError reports a caller-side contract violation: a sort column
// absent from the current schema, or a grouping key outside the fixed set.
// The request is rejected synchronously and the previous state is preserved
// in full.
type ContractError struct {
	Op     string
	Detail string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("view: %s: %s", e.Op, e.Detail)
}

// Controller owns the current grouping mode and orchestrates transitions.
// It has exactly one state per GroupKey and is constructed directly into its
// initial state; transitions are all-or-nothing: either every step completes
// and a new (View, LayoutPlan) pair is published, or nothing changes.
//
// The controller is single-threaded by design. UI events (mode switch, sort
// request, resize) arrive strictly one at a time from the presentation
// layer's update loop, and each published pair is an immutable replacement
// of the previous one.
type Controller struct {
	store   *stats.Store
	grouper *Grouper
	sorter  *Sorter
	planner Planner

	displayMode DisplayMode
	width       int
	height      int

	current View
	plan    LayoutPlan
}

// NewController builds a controller over an ingested store and establishes
// the initial state for the requested mode, display mode, and terminal size.
func NewController(store *stats.Store, key GroupKey, mode DisplayMode, width, height int) (*Controller, error) {
	if !validKey(key) {
		return nil, &ContractError{Op: "init", Detail: fmt.Sprintf("unknown group key %d", key)}
	}

	c := &Controller{
		store:       store,
		grouper:     NewGrouper(),
		sorter:      NewSorter(),
		displayMode: mode,
		width:       width,
		height:      height,
	}
	c.publish(key)
	return c, nil
}

// publish runs the full project -> sort -> plan pipeline for key and
// replaces the current pair. Callers validate first.
func (c *Controller) publish(key GroupKey) {
	projected := c.grouper.Project(c.store.All(), key)
	sorted := c.sorter.Sort(projected, c.sorter.SpecFor(key))
	c.plan = c.planner.Plan(sorted, c.store.Totals(), c.width, c.height, c.displayMode)
	c.current = sorted
}

// Current returns the published (View, LayoutPlan) pair.
func (c *Controller) Current() (View, LayoutPlan) {
	return c.current, c.plan
}

// Key returns the active grouping mode.
func (c *Controller) Key() GroupKey {
	return c.current.Key
}

// Totals returns the grand-total summary row for the persistent summary area.
func (c *Controller) Totals() ViewRow {
	return TotalRow(c.store.Totals())
}

// Empty reports whether the run produced no displayable records.
func (c *Controller) Empty() bool {
	return c.store.Empty()
}

// SwitchMode transitions to another grouping mode. Switching to the current
// mode is an idempotent no-op. The new view is sorted by the mode's
// remembered SortSpec (or the default on first visit) and replanned against
// the last-known terminal size.
func (c *Controller) SwitchMode(key GroupKey) error {
	if !validKey(key) {
		return &ContractError{Op: "switch mode", Detail: fmt.Sprintf("unknown group key %d", key)}
	}
	if key == c.current.Key {
		return nil
	}
	c.publish(key)
	return nil
}

// RequestSort re-orders the current view and updates the remembered
// SortSpec for the active mode. The grouping mode is untouched.
func (c *Controller) RequestSort(col ColumnID, dir Direction) error {
	if !c.current.HasColumn(col) {
		return &ContractError{Op: "request sort", Detail: fmt.Sprintf("column %q not in current schema", col)}
	}
	if !validDirection(dir) {
		return &ContractError{Op: "request sort", Detail: fmt.Sprintf("unknown direction %d", dir)}
	}

	spec := SortSpec{Column: col, Direction: dir}
	sorted := c.sorter.Sort(c.current, spec)
	c.plan = c.planner.Plan(sorted, c.store.Totals(), c.width, c.height, c.displayMode)
	c.current = sorted
	c.sorter.Remember(c.current.Key, spec)
	return nil
}

// ToggleSort flips the direction when col is already the active sort column
// and otherwise applies the column's natural starting direction: descending
// for numeric columns, ascending for the label column.
func (c *Controller) ToggleSort(col ColumnID) error {
	dir := Descending
	if col == ColumnPath || col == ColumnGroup {
		dir = Ascending
	}
	if c.current.Sort.Column == col {
		dir = 1 - c.current.Sort.Direction
	}
	return c.RequestSort(col, dir)
}

// Resize replans the layout for new terminal dimensions. Rows and sort
// order are untouched; the column set can change rendered shape only via
// widths, which is exactly what the replan recomputes.
func (c *Controller) Resize(width, height int) {
	c.width = width
	c.height = height
	c.plan = c.planner.Plan(c.current, c.store.Totals(), width, height, c.displayMode)
}
