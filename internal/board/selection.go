package board

import (
	"maps"

	"kanban/internal/models"
)

// SelectionScope names the tasks SelectAll should pick: every task, the
// caller's visible ids, or a single status column.
type SelectionScope string

const (
	ScopeAll     SelectionScope = "all"
	ScopeVisible SelectionScope = "visible"
)

// ScopeStatus selects every task of one column.
func ScopeStatus(status models.Status) SelectionScope {
	return SelectionScope(status)
}

// Selection is the bulk-selection ledger. The zero value is empty and off.
type Selection struct {
	Active bool
	ids    map[string]struct{}
}

// Has reports whether id is selected.
func (sel Selection) Has(id string) bool {
	_, ok := sel.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (sel Selection) Len() int {
	return len(sel.ids)
}

func (sel Selection) without(id string) Selection {
	if !sel.Has(id) {
		return sel
	}
	ids := maps.Clone(sel.ids)
	delete(ids, id)
	sel.ids = ids
	return sel
}

// SelectedIDs returns the selected ids in canonical order.
func (s State) SelectedIDs() []string {
	out := []string{}
	for _, t := range s.Tasks {
		if s.Selection.Has(t.ID) {
			out = append(out, t.ID)
		}
	}
	return out
}

// ToggleSelectionMode turns selection mode on or off. Turning it off clears
// the selection.
func (s State) ToggleSelectionMode(on bool) State {
	s.Selection.Active = on
	if !on {
		s.Selection.ids = nil
	}
	return s
}

// ToggleSelect adds id to the selection, or removes it if already selected.
func (s State) ToggleSelect(id string) State {
	if s.indexOf(id) < 0 {
		return s
	}
	if s.Selection.Has(id) {
		s.Selection = s.Selection.without(id)
		return s
	}
	ids := maps.Clone(s.Selection.ids)
	if ids == nil {
		ids = make(map[string]struct{})
	}
	ids[id] = struct{}{}
	s.Selection.ids = ids
	return s
}

// SelectAll replaces the selection with the tasks in scope. For ScopeVisible
// the caller supplies the ids of the view it is displaying.
func (s State) SelectAll(scope SelectionScope, visibleIDs []string) State {
	ids := make(map[string]struct{})
	switch scope {
	case ScopeVisible:
		for _, id := range visibleIDs {
			ids[id] = struct{}{}
		}
	case ScopeAll:
		for _, t := range s.Tasks {
			ids[t.ID] = struct{}{}
		}
	default:
		for _, t := range s.Tasks {
			if t.Status == models.Status(scope) {
				ids[t.ID] = struct{}{}
			}
		}
	}
	s.Selection.ids = ids
	return s
}

// ClearSelection empties the selection and leaves selection mode as is.
func (s State) ClearSelection() State {
	s.Selection.ids = nil
	return s
}

// BulkMove sets status on every selected task, then clears the selection
// and leaves selection mode. Any derived sort is frozen beforehand, so the
// untouched tasks keep the positions the user was looking at.
func (s State) BulkMove(status models.Status) State {
	if s.Selection.Len() == 0 {
		return s
	}

	s = s.freeze().withTasks()
	for i := range s.Tasks {
		if s.Selection.Has(s.Tasks[i].ID) {
			s.Tasks[i].Status = status
		}
	}
	s.Selection = Selection{}
	return s
}

// BulkDelete removes every selected task, then clears the selection and
// leaves selection mode.
func (s State) BulkDelete() State {
	if s.Selection.Len() == 0 {
		return s
	}

	kept := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !s.Selection.Has(t.ID) {
			kept = append(kept, t)
		}
	}
	s.Tasks = kept
	s.Selection = Selection{}
	return s
}
