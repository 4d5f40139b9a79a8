package board

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kanban/internal/models"
)

// Comparator returns the ordering for spec, or nil when spec is manual.
// Descending negates the whole comparison, so rules such as "tasks without
// a due date go last" are inverted too.
func Comparator(spec models.SortSpec) func(a, b models.Task) int {
	var compare func(a, b models.Task) int

	switch spec.Key {
	case models.SortCreated:
		compare = func(a, b models.Task) int {
			return cmp.Compare(a.CreatedAt, b.CreatedAt)
		}
	case models.SortDue:
		compare = compareDue
	case models.SortPriority:
		compare = func(a, b models.Task) int {
			return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		}
	case models.SortTitle:
		// Collators are not safe for concurrent use; one per comparator.
		collator := collate.New(language.Und, collate.IgnoreCase)
		compare = func(a, b models.Task) int {
			return collator.CompareString(a.Title, b.Title)
		}
	default:
		return nil
	}

	if spec.Dir == models.Descending {
		return func(a, b models.Task) int { return -compare(a, b) }
	}
	return compare
}

// compareDue puts dated tasks before undated ones and orders dated tasks by
// instant. A date that cannot be parsed sorts after every parseable date.
func compareDue(a, b models.Task) int {
	aHas, bHas := a.HasDueDate(), b.HasDueDate()
	switch {
	case aHas && !bHas:
		return -1
	case !aHas && bHas:
		return 1
	case !aHas && !bHas:
		return 0
	}

	aDue, aOK := a.Due()
	bDue, bOK := b.Due()
	switch {
	case aOK && bOK:
		return aDue.Compare(bDue)
	case aOK:
		return -1
	case bOK:
		return 1
	}
	return 0
}

// Sorted returns a copy of tasks ordered by spec. Ties keep their input
// order; manual returns the input order unchanged.
func Sorted(tasks []models.Task, spec models.SortSpec) []models.Task {
	out := slices.Clone(tasks)
	if compare := Comparator(spec); compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// Column returns the tasks with the given status in display order.
func Column(tasks []models.Task, status models.Status, spec models.SortSpec) []models.Task {
	group := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			group = append(group, t)
		}
	}
	return Sorted(group, spec)
}

// Baseline concatenates every column's display order, scheduled first, then
// in-progress, then done. Tasks carrying any other status follow in
// canonical order so that no task is ever dropped.
func Baseline(tasks []models.Task, spec models.SortSpec) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, status := range models.Statuses {
		out = append(out, Column(tasks, status, spec)...)
	}
	for _, t := range tasks {
		if !t.Status.Valid() {
			out = append(out, t)
		}
	}
	return out
}

// freeze turns the current derived order into the canonical sequence and
// switches the board to manual sorting. It is a no-op when already manual.
func (s State) freeze() State {
	if s.Sort.IsManual() {
		return s
	}
	s.Tasks = Baseline(s.Tasks, s.Sort)
	s.Sort.Key = models.SortManual
	return s
}

// positions returns the indexes in tasks of every member of status.
func positions(tasks []models.Task, status models.Status) []int {
	var idx []int
	for i, t := range tasks {
		if t.Status == status {
			idx = append(idx, i)
		}
	}
	return idx
}
