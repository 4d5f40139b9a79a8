package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"kanban/internal/board"
	"kanban/internal/models"
	"kanban/internal/store"
)

// Handlers holds the HTTP handlers and their dependencies.
//
// The board lives in memory. mu serializes every request, so state
// transitions apply in arrival order and each one is saved before the next
// begins.
type Handlers struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	state board.State
}

// New creates a new Handlers instance serving the given board.
func New(s store.Store, state board.State, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		store:  s,
		logger: logger,
		now:    time.Now,
		state:  state,
	}
}

// read returns the current board.
func (h *Handlers) read() board.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// mutate applies fn to the board and saves the result. A failed save is
// logged; the in-memory transition stands.
func (h *Handlers) mutate(ctx context.Context, fn func(board.State) board.State) board.State {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state = fn(h.state)
	if err := h.store.SaveSnapshot(ctx, h.state.Snapshot()); err != nil {
		h.logger.ErrorContext(ctx, "failed to save board", "error", err)
	}
	return h.state
}

// mutateSelection applies fn without saving. The selection is not part of
// the snapshot.
func (h *Handlers) mutateSelection(fn func(board.State) board.State) board.State {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state = fn(h.state)
	return h.state
}

// parseID extracts a task id from URL parameters.
func parseID(r *http.Request, param string) (string, bool) {
	id := chi.URLParam(r, param)
	return id, id != ""
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func (h *Handlers) respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "internal server error", "error", err, "path", r.URL.Path)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handlers) respondJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write response", "error", err)
	}
}

// taskResponse is a task as rendered to clients.
type taskResponse struct {
	models.Task
	Overdue bool `json:"overdue"`
}

type columnResponse struct {
	Status models.Status  `json:"status"`
	Tasks  []taskResponse `json:"tasks"`
}

type selectionResponse struct {
	Active bool     `json:"active"`
	IDs    []string `json:"ids"`
}

type boardResponse struct {
	Columns   []columnResponse  `json:"columns"`
	Filters   models.FilterSpec `json:"filters"`
	Sort      models.SortSpec   `json:"sort"`
	Selection selectionResponse `json:"selection"`
	Assignees []string          `json:"assignees"`
	Tags      []string          `json:"tags"`
}

func (h *Handlers) renderTasks(tasks []models.Task) []taskResponse {
	now := h.now()
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = taskResponse{Task: t, Overdue: t.IsOverdue(now)}
	}
	return out
}

func (h *Handlers) renderBoard(s board.State) boardResponse {
	cols := s.Columns()
	resp := boardResponse{
		Columns: make([]columnResponse, len(cols)),
		Filters: s.Filters,
		Sort:    s.Sort,
		Selection: selectionResponse{
			Active: s.Selection.Active,
			IDs:    s.SelectedIDs(),
		},
		Assignees: s.Assignees(),
		Tags:      s.Tags(),
	}
	for i, col := range cols {
		resp.Columns[i] = columnResponse{Status: col.Status, Tasks: h.renderTasks(col.Tasks)}
	}
	return resp
}

func (h *Handlers) respondBoard(w http.ResponseWriter, r *http.Request, s board.State) {
	h.respondJSON(w, r, http.StatusOK, h.renderBoard(s))
}
