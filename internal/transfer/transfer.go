// Package transfer encodes and decodes task lists for export and import.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"kanban/internal/models"
)

var (
	// ErrInvalidShape is returned when an import payload is not an array of
	// task objects.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrUnknownFormat is returned for a format other than json or yaml.
	ErrUnknownFormat = errors.New("unknown format")
)

// Format is the encoding of an export file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a query value to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Export encodes tasks in canonical order.
func Export(tasks []models.Task, format Format) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode tasks: %w", err)
		}
		return data, nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return nil, fmt.Errorf("failed to encode tasks: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode tasks: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Import decodes an array of task-like objects. Entries without a string id
// and title are skipped; a payload that is not an array fails with
// ErrInvalidShape. A missing or unknown status becomes scheduled.
func Import(data []byte, format Format) ([]models.Task, error) {
	var raw []json.RawMessage

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
		}
	case FormatYAML:
		// Decode into generic values and re-encode as JSON so both formats
		// share one set of entry checks.
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
		}
		items, ok := doc.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected a list of tasks", ErrInvalidShape)
		}
		raw = make([]json.RawMessage, 0, len(items))
		for _, item := range items {
			b, err := json.Marshal(item)
			if err != nil {
				raw = append(raw, json.RawMessage("null"))
				continue
			}
			raw = append(raw, b)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: expected a list of tasks", ErrInvalidShape)
	}

	tasks := make([]models.Task, 0, len(raw))
	for _, entry := range raw {
		t, ok := decodeEntry(entry)
		if !ok {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func decodeEntry(entry json.RawMessage) (models.Task, bool) {
	var probe map[string]any
	if err := json.Unmarshal(entry, &probe); err != nil || probe == nil {
		return models.Task{}, false
	}
	if _, ok := probe["id"].(string); !ok {
		return models.Task{}, false
	}
	if _, ok := probe["title"].(string); !ok {
		return models.Task{}, false
	}

	var t models.Task
	if err := json.Unmarshal(entry, &t); err != nil {
		return models.Task{}, false
	}
	if !t.Status.Valid() {
		t.Status = models.StatusScheduled
	}
	if !t.Priority.Valid() {
		t.Priority = ""
	}
	return t.Clone(), true
}
