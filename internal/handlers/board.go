package handlers

import (
	"net/http"

	"kanban/internal/board"
	"kanban/internal/models"
)

// GetBoard renders the visible columns with the active view settings.
func (h *Handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	h.respondBoard(w, r, h.read())
}

// SetFilters merges the supplied filter fields into the active filters.
func (h *Handlers) SetFilters(w http.ResponseWriter, r *http.Request) {
	var patch models.FilterPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	s := h.mutate(r.Context(), func(s board.State) board.State {
		return s.SetFilters(patch)
	})
	h.respondBoard(w, r, s)
}

// SetSort replaces the active sort. A missing direction means ascending.
func (h *Handlers) SetSort(w http.ResponseWriter, r *http.Request) {
	var spec models.SortSpec
	if err := decodeJSON(r, &spec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if spec.Dir == "" {
		spec.Dir = models.Ascending
	}
	if err := spec.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s := h.mutate(r.Context(), func(s board.State) board.State {
		return s.SetSort(spec)
	})
	h.respondBoard(w, r, s)
}

// ClearAll empties the board and resets filters and selection.
func (h *Handlers) ClearAll(w http.ResponseWriter, r *http.Request) {
	s := h.mutate(r.Context(), func(s board.State) board.State {
		return s.ClearAll()
	})
	h.logger.InfoContext(r.Context(), "board cleared")
	h.respondBoard(w, r, s)
}
