// Package selection tracks the multi-row selection of a data grid. The
// selection is always a subset of the identifiers the active filter
// shows; reconciliation enforces that after every filter change or
// deletion.
package selection

import "sort"

// Tracker is a set of selected record identifiers.
type Tracker struct {
	ids map[string]struct{}
}

// NewTracker returns an empty selection.
func NewTracker() *Tracker {
	return &Tracker{ids: make(map[string]struct{})}
}

// Toggle adds the id when absent and removes it when present.
func (t *Tracker) Toggle(id string) {
	if id == "" {
		return
	}
	if _, ok := t.ids[id]; ok {
		delete(t.ids, id)
		return
	}
	t.ids[id] = struct{}{}
}

// ToggleAll flips between everything and nothing: when the whole
// visible set is already selected it clears the selection, otherwise it
// replaces the selection with exactly the visible identifiers.
func (t *Tracker) ToggleAll(visible []string) {
	if t.AllSelected(visible) {
		t.Clear()
		return
	}
	t.ids = make(map[string]struct{}, len(visible))
	for _, id := range visible {
		if id != "" {
			t.ids[id] = struct{}{}
		}
	}
}

// Reconcile intersects the selection with the currently visible
// identifiers, dropping anything filtering or deletion removed.
func (t *Tracker) Reconcile(visible []string) {
	keep := make(map[string]struct{}, len(visible))
	for _, id := range visible {
		keep[id] = struct{}{}
	}
	for id := range t.ids {
		if _, ok := keep[id]; !ok {
			delete(t.ids, id)
		}
	}
}

// Remove drops the given identifiers from the selection.
func (t *Tracker) Remove(ids ...string) {
	for _, id := range ids {
		delete(t.ids, id)
	}
}

// Has reports whether the id is selected.
func (t *Tracker) Has(id string) bool {
	_, ok := t.ids[id]
	return ok
}

// IDs returns the selected identifiers in a stable order.
func (t *Tracker) IDs() []string {
	out := make([]string, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the selection size.
func (t *Tracker) Len() int {
	return len(t.ids)
}

// Clear empties the selection.
func (t *Tracker) Clear() {
	t.ids = make(map[string]struct{})
}

// AllSelected reports whether every visible row is selected. An empty
// visible set is never "all selected".
func (t *Tracker) AllSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	if len(t.ids) != len(visible) {
		return false
	}
	for _, id := range visible {
		if _, ok := t.ids[id]; !ok {
			return false
		}
	}
	return true
}

// Indeterminate reports a partial selection of the visible set.
func (t *Tracker) Indeterminate(visible []string) bool {
	return len(t.ids) > 0 && !t.AllSelected(visible)
}
