// Package board holds the canonical task sequence of a single-user kanban
// board and every operation that reads or rearranges it.
//
// State is a value. Each operation returns a new State and leaves its
// receiver untouched, so derived views can be computed from any snapshot
// without copying. Operations referencing an unknown task id return the
// state unchanged.
package board

import (
	"slices"
	"time"

	"github.com/oklog/ulid/v2"

	"kanban/internal/models"
)

var (
	newID = func() string { return ulid.Make().String() }
	now   = time.Now
)

// State is the whole board: the canonical sequence plus the view settings
// and the selection ledger.
type State struct {
	Tasks     []models.Task
	Filters   models.FilterSpec
	Sort      models.SortSpec
	Selection Selection
}

// New returns a board holding tasks in the given canonical order, with no
// filters and manual sorting.
func New(tasks []models.Task) State {
	s := State{
		Tasks: make([]models.Task, 0, len(tasks)),
		Sort:  models.DefaultSort,
	}
	for _, t := range tasks {
		s.Tasks = append(s.Tasks, t.Clone())
	}
	return s
}

func (s State) indexOf(id string) int {
	return slices.IndexFunc(s.Tasks, func(t models.Task) bool { return t.ID == id })
}

// withTasks returns a copy of s with its own task slice.
func (s State) withTasks() State {
	s.Tasks = slices.Clone(s.Tasks)
	return s
}

// Get returns the task with the given id.
func (s State) Get(id string) (models.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.Tasks[i].Clone(), true
}

// Len returns the number of tasks on the board.
func (s State) Len() int {
	return len(s.Tasks)
}

// Create adds a new task at the front of the canonical sequence and returns
// its freshly assigned id.
func (s State) Create(f models.TaskFields) (State, string) {
	t := models.Task{
		ID:          newID(),
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		Assignee:    f.Assignee,
		Tags:        f.Tags,
		CreatedAt:   now().UnixMilli(),
		DueDate:     f.DueDate,
		Priority:    f.Priority,
	}

	tasks := make([]models.Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, t.Clone())
	s.Tasks = append(tasks, s.Tasks...)
	return s, t.ID
}

// Update merges patch into the task with the given id.
func (s State) Update(id string, patch models.TaskPatch) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	s = s.withTasks()
	s.Tasks[i] = patch.Apply(s.Tasks[i])
	return s
}

// Delete removes the task with the given id.
func (s State) Delete(id string) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	s.Tasks = slices.Delete(slices.Clone(s.Tasks), i, i+1)
	s.Selection = s.Selection.without(id)
	return s
}

// SetStatus changes the status of a task without moving it in the sequence.
func (s State) SetStatus(id string, status models.Status) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	s = s.withTasks()
	s.Tasks[i].Status = status
	return s
}

// Upsert merges incoming tasks by id: a task whose id is already present
// replaces it in place, unseen tasks are appended in input order.
func (s State) Upsert(incoming []models.Task) State {
	if len(incoming) == 0 {
		return s
	}

	s = s.withTasks()
	pos := make(map[string]int, len(s.Tasks)+len(incoming))
	for i, t := range s.Tasks {
		pos[t.ID] = i
	}
	for _, t := range incoming {
		if i, ok := pos[t.ID]; ok {
			s.Tasks[i] = t.Clone()
			continue
		}
		pos[t.ID] = len(s.Tasks)
		s.Tasks = append(s.Tasks, t.Clone())
	}
	return s
}

// SetFilters merges the non-nil fields of patch into the active filters.
func (s State) SetFilters(patch models.FilterPatch) State {
	s.Filters = patch.Apply(s.Filters)
	return s
}

// SetSort replaces the active sort specification.
func (s State) SetSort(spec models.SortSpec) State {
	s.Sort = spec
	return s
}

// ClearAll removes every task and resets filters and selection.
// The sort specification is kept.
func (s State) ClearAll() State {
	return State{
		Tasks: []models.Task{},
		Sort:  s.Sort,
	}
}

// Assignees returns the distinct non-empty assignees in canonical order of
// first appearance.
func (s State) Assignees() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, t := range s.Tasks {
		if t.Assignee == "" {
			continue
		}
		if _, ok := seen[t.Assignee]; ok {
			continue
		}
		seen[t.Assignee] = struct{}{}
		out = append(out, t.Assignee)
	}
	return out
}

// Tags returns the distinct tags in canonical order of first appearance.
func (s State) Tags() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, t := range s.Tasks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
