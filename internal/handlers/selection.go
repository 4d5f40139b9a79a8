package handlers

import (
	"net/http"

	"kanban/internal/board"
	"kanban/internal/models"
)

// SetSelectionMode turns selection mode on or off. Turning it off drops the
// selection.
func (h *Handlers) SetSelectionMode(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Active bool `json:"active"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	s := h.mutateSelection(func(s board.State) board.State {
		return s.ToggleSelectionMode(payload.Active)
	})
	h.respondBoard(w, r, s)
}

// ToggleSelect flips the selection of one task.
func (h *Handlers) ToggleSelect(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	s := h.mutateSelection(func(s board.State) board.State {
		return s.ToggleSelect(id)
	})
	h.respondBoard(w, r, s)
}

// SelectAll selects every task, the visible tasks, or one column, given by
// scope "all", "visible" or a status.
func (h *Handlers) SelectAll(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Scope string `json:"scope"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	var scope board.SelectionScope
	switch {
	case payload.Scope == "" || payload.Scope == string(board.ScopeAll):
		scope = board.ScopeAll
	case payload.Scope == string(board.ScopeVisible):
		scope = board.ScopeVisible
	case models.Status(payload.Scope).Valid():
		scope = board.ScopeStatus(models.Status(payload.Scope))
	default:
		respondError(w, http.StatusBadRequest, "invalid scope")
		return
	}

	s := h.mutateSelection(func(s board.State) board.State {
		return s.SelectAll(scope, s.ViewIDs())
	})
	h.respondBoard(w, r, s)
}

// ClearSelection empties the selection and keeps selection mode.
func (h *Handlers) ClearSelection(w http.ResponseWriter, r *http.Request) {
	s := h.mutateSelection(func(s board.State) board.State {
		return s.ClearSelection()
	})
	h.respondBoard(w, r, s)
}

// BulkMove moves every selected task to one column.
func (h *Handlers) BulkMove(w http.ResponseWriter, r *http.Request) {
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

	var moved int
	s := h.mutate(r.Context(), func(s board.State) board.State {
		moved = s.Selection.Len()
		return s.BulkMove(payload.Status)
	})
	h.logger.InfoContext(r.Context(), "tasks moved", "count", moved, "status", payload.Status)
	h.respondBoard(w, r, s)
}

// BulkDelete removes every selected task.
func (h *Handlers) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var deleted int
	s := h.mutate(r.Context(), func(s board.State) board.State {
		deleted = s.Selection.Len()
		return s.BulkDelete()
	})
	h.logger.InfoContext(r.Context(), "tasks deleted", "count", deleted)
	h.respondBoard(w, r, s)
}
