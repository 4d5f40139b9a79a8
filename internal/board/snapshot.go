package board

import "kanban/internal/models"

// Snapshot is the persisted part of a board. Selection is not persisted.
type Snapshot struct {
	Tasks   []models.Task     `json:"tasks"`
	Filters models.FilterSpec `json:"filters"`
	Sort    models.SortSpec   `json:"sort"`
}

// Snapshot returns the serializable form of s.
func (s State) Snapshot() Snapshot {
	tasks := make([]models.Task, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = t.Clone()
	}
	return Snapshot{
		Tasks:   tasks,
		Filters: s.Filters,
		Sort:    s.Sort,
	}
}

// FromSnapshot restores a board. A snapshot written before sorting existed
// has no sort key and loads as manual.
func FromSnapshot(snap Snapshot) State {
	s := New(snap.Tasks)
	s.Filters = snap.Filters
	if snap.Sort.Validate() == nil {
		s.Sort = snap.Sort
	}
	return s
}
