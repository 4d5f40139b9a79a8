package board

import (
	"math"
	"slices"

	"kanban/internal/models"
)

// EndOfColumn as a MoveToStatusAtIndex index places the task after the last
// member of the destination column.
const EndOfColumn = math.MaxInt

// ReorderWithinStatus moves activeID to the column position held by overID.
// Both tasks must share a status, otherwise nothing changes. A derived sort
// is frozen first, so the result is always manual.
func (s State) ReorderWithinStatus(activeID, overID string) State {
	a, o := s.indexOf(activeID), s.indexOf(overID)
	if a < 0 || o < 0 || s.Tasks[a].Status != s.Tasks[o].Status {
		return s
	}
	status := s.Tasks[a].Status

	s = s.freeze()
	if activeID == overID {
		return s
	}

	slots := positions(s.Tasks, status)
	group := make([]models.Task, len(slots))
	from, to := -1, -1
	for i, p := range slots {
		group[i] = s.Tasks[p]
		switch group[i].ID {
		case activeID:
			from = i
		case overID:
			to = i
		}
	}
	if from < 0 || to < 0 {
		return s
	}

	moved := group[from]
	group = slices.Delete(group, from, from+1)
	group = slices.Insert(group, to, moved)

	s = s.withTasks()
	for i, p := range slots {
		s.Tasks[p] = group[i]
	}
	return s
}

// MoveToStatusAtIndex gives the task status dest and places it at index
// within the destination column. An index at or past the column length
// (EndOfColumn included) appends to the column, a negative index places it
// first. A derived sort is frozen first, so the result is always manual.
func (s State) MoveToStatusAtIndex(id string, dest models.Status, index int) State {
	if s.indexOf(id) < 0 {
		return s
	}

	s = s.freeze()
	i := s.indexOf(id)
	task := s.Tasks[i]
	task.Status = dest

	rest := slices.Delete(slices.Clone(s.Tasks), i, i+1)
	slots := positions(rest, dest)

	var at int
	switch {
	case len(slots) == 0:
		at = len(rest)
	case index >= len(slots):
		at = slots[len(slots)-1] + 1
	case index < 0:
		at = slots[0]
	default:
		at = slots[index]
	}

	s.Tasks = slices.Insert(rest, at, task)
	return s
}
