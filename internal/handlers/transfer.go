package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"kanban/internal/board"
	"kanban/internal/transfer"
)

// maxImportBytes bounds the size of an uploaded import file.
const maxImportBytes = 10 << 20

// Export downloads the canonical task sequence.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	format, err := transfer.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s := h.read()
	data, err := transfer.Export(s.Tasks, format)
	if err != nil {
		h.respondServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="kanban-export.%s"`, format))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import upserts the tasks of an uploaded file by id. A rejected file leaves
// the board unchanged.
func (h *Handlers) Import(w http.ResponseWriter, r *http.Request) {
	format, err := transfer.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "import file too large")
			return
		}
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	tasks, err := transfer.Import(data, format)
	if err != nil {
		if errors.Is(err, transfer.ErrInvalidShape) {
			respondError(w, http.StatusBadRequest, "invalid file: expected an array of tasks")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mutate(r.Context(), func(s board.State) board.State {
		return s.Upsert(tasks)
	})
	h.logger.InfoContext(r.Context(), "tasks imported", "count", len(tasks), "format", format)

	h.respondJSON(w, r, http.StatusOK, struct {
		Imported int `json:"imported"`
	}{Imported: len(tasks)})
}
