package board

import "kanban/internal/models"

// ColumnView is one status column as displayed.
type ColumnView struct {
	Status models.Status `json:"status"`
	Tasks  []models.Task `json:"tasks"`
}

// Filter returns the tasks matching f, in input order.
func Filter(tasks []models.Task, f models.FilterSpec) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if f.Matches(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// Visible returns the flat list view: the tasks matching f, ordered by spec
// across all statuses.
func Visible(tasks []models.Task, f models.FilterSpec, spec models.SortSpec) []models.Task {
	return Sorted(Filter(tasks, f), spec)
}

// VisibleColumn returns the tasks of one column that match f, in display order.
func VisibleColumn(tasks []models.Task, f models.FilterSpec, spec models.SortSpec, status models.Status) []models.Task {
	return Column(Filter(tasks, f), status, spec)
}

// VisibleColumns returns every column of the board view.
func VisibleColumns(tasks []models.Task, f models.FilterSpec, spec models.SortSpec) []ColumnView {
	filtered := Filter(tasks, f)
	cols := make([]ColumnView, 0, len(models.Statuses))
	for _, status := range models.Statuses {
		cols = append(cols, ColumnView{
			Status: status,
			Tasks:  Column(filtered, status, spec),
		})
	}
	return cols
}

// View returns the flat list view for the board's own filters and sort.
func (s State) View() []models.Task {
	return Visible(s.Tasks, s.Filters, s.Sort)
}

// Columns returns the board view for the board's own filters and sort.
func (s State) Columns() []ColumnView {
	return VisibleColumns(s.Tasks, s.Filters, s.Sort)
}

// ViewIDs returns the ids of the flat list view, in order.
func (s State) ViewIDs() []string {
	view := s.View()
	ids := make([]string, len(view))
	for i, t := range view {
		ids[i] = t.ID
	}
	return ids
}
