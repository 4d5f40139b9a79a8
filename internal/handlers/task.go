package handlers

import (
	"net/http"
	"strings"

	"kanban/internal/board"
	"kanban/internal/models"
)

// ListTasks returns the filtered and sorted flat view.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	s := h.read()
	h.respondJSON(w, r, http.StatusOK, h.renderTasks(s.View()))
}

// GetTask returns a single task.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	t, found := h.read().Get(id)
	if !found {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	h.respondJSON(w, r, http.StatusOK, h.renderTasks([]models.Task{t})[0])
}

// CreateTask adds a task at the front of the board.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var fields models.TaskFields
	if err := decodeJSON(r, &fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	fields.Title = strings.TrimSpace(fields.Title)
	if fields.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if fields.Status == "" {
		fields.Status = models.StatusScheduled
	}
	if err := fields.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var id string
	s := h.mutate(r.Context(), func(s board.State) board.State {
		s, id = s.Create(fields)
		return s
	})

	t, _ := s.Get(id)
	h.logger.InfoContext(r.Context(), "task created", "id", id, "status", t.Status)
	h.respondJSON(w, r, http.StatusCreated, h.renderTasks([]models.Task{t})[0])
}

// UpdateTask merges a partial update into a task.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var patch models.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			respondError(w, http.StatusBadRequest, "title is required")
			return
		}
		patch.Title = &title
	}
	if err := patch.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondTaskAfter(w, r, id, func(s board.State) board.State {
		return s.Update(id, patch)
	})
}

// DeleteTask removes a task. Deleting an unknown id succeeds.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	h.mutate(r.Context(), func(s board.State) board.State {
		return s.Delete(id)
	})

	w.WriteHeader(http.StatusOK)
}

// SetTaskStatus changes a task's column without moving it in the sequence.
func (h *Handlers) SetTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var payload struct {
		Status models.Status `json:"status"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !payload.Status.Valid() {
		respondError(w, http.StatusBadRequest, models.ErrInvalidStatus.Error())
		return
	}

	h.respondTaskAfter(w, r, id, func(s board.State) board.State {
		return s.SetStatus(id, payload.Status)
	})
}

// MoveTask drops a task into a column at a position of the visible order.
// Without an index the task goes to the end of the column.
func (h *Handlers) MoveTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var payload struct {
		Status models.Status `json:"status"`
		Index  *int          `json:"index"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !payload.Status.Valid() {
		respondError(w, http.StatusBadRequest, models.ErrInvalidStatus.Error())
		return
	}

	index := board.EndOfColumn
	if payload.Index != nil {
		index = *payload.Index
	}

	h.respondBoardAfter(w, r, id, func(s board.State) board.State {
		return s.MoveToStatusAtIndex(id, payload.Status, index)
	})
}

// ReorderTasks moves the active task to the slot of the task it was dropped
// on, within one column.
func (h *Handlers) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ActiveID string `json:"activeId"`
		OverID   string `json:"overId"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if payload.ActiveID == "" || payload.OverID == "" {
		respondError(w, http.StatusBadRequest, "activeId and overId are required")
		return
	}

	s := h.mutate(r.Context(), func(s board.State) board.State {
		return s.ReorderWithinStatus(payload.ActiveID, payload.OverID)
	})
	h.respondBoard(w, r, s)
}

// respondTaskAfter applies fn when the task exists and renders the task.
func (h *Handlers) respondTaskAfter(w http.ResponseWriter, r *http.Request, id string, fn func(board.State) board.State) {
	s, found := h.mutateExisting(r, id, fn)
	if !found {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	t, _ := s.Get(id)
	h.respondJSON(w, r, http.StatusOK, h.renderTasks([]models.Task{t})[0])
}

// respondBoardAfter applies fn when the task exists and renders the board.
func (h *Handlers) respondBoardAfter(w http.ResponseWriter, r *http.Request, id string, fn func(board.State) board.State) {
	s, found := h.mutateExisting(r, id, fn)
	if !found {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	h.respondBoard(w, r, s)
}

// mutateExisting runs fn only if id is on the board, checking and applying
// under one lock.
func (h *Handlers) mutateExisting(r *http.Request, id string, fn func(board.State) board.State) (board.State, bool) {
	found := false
	s := h.mutate(r.Context(), func(s board.State) board.State {
		if _, ok := s.Get(id); !ok {
			return s
		}
		found = true
		return fn(s)
	})
	return s, found
}
