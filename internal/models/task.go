package models

import (
	"slices"
	"time"
)

// Status is the board column a task belongs to.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists the columns in display order.
var Statuses = []Status{StatusScheduled, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// Priority is the optional importance of a task. The zero value means unset.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is unset or one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns a numeric value for sorting by priority.
// Higher numbers indicate higher priority; unset ranks lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Task represents a single card on the board.
type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Status      Status   `json:"status" yaml:"status"`
	Assignee    string   `json:"assignee" yaml:"assignee"`
	Tags        []string `json:"tags" yaml:"tags"`
	CreatedAt   int64    `json:"createdAt" yaml:"createdAt"` // unix milliseconds
	DueDate     string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Priority    Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// dueLayouts are the accepted ISO-8601 forms for DueDate.
var dueLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDue parses an ISO-8601 instant or calendar date.
func ParseDue(s string) (time.Time, bool) {
	for _, layout := range dueLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasDueDate returns true if the task carries a due date.
func (t *Task) HasDueDate() bool {
	return t.DueDate != ""
}

// Due returns the parsed due date. ok is false when the task has no due date
// or the stored value cannot be parsed.
func (t *Task) Due() (due time.Time, ok bool) {
	if !t.HasDueDate() {
		return time.Time{}, false
	}
	return ParseDue(t.DueDate)
}

// IsOverdue returns true if the task is not done and its due day is before
// the UTC day of now.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusDone {
		return false
	}
	due, ok := t.Due()
	if !ok {
		return false
	}
	due = due.UTC()
	now = now.UTC()
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dueDay.Before(today)
}

// HasTag reports whether tag is one of the task's tags.
func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// Clone returns a copy of the task that shares no slices with t.
func (t Task) Clone() Task {
	t.Tags = slices.Clone(t.Tags)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t
}

// TaskFields holds everything a caller supplies when creating a task.
// The identifier and creation time are assigned by the board.
type TaskFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Assignee    string   `json:"assignee"`
	Tags        []string `json:"tags"`
	DueDate     string   `json:"dueDate,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
}

// Validate checks that the fields hold values from the enumerated option sets.
func (f *TaskFields) Validate() error {
	if !f.Status.Valid() {
		return ErrInvalidStatus
	}
	if !f.Priority.Valid() {
		return ErrInvalidPriority
	}
	if f.DueDate != "" {
		if _, ok := ParseDue(f.DueDate); !ok {
			return ErrInvalidDueDate
		}
	}
	return nil
}

// TaskPatch represents a partial update.
// nil pointer => "no change"
// empty string for DueDate/Priority => clear the optional field
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Assignee    *string   `json:"assignee,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// Validate checks the non-nil fields of the patch.
func (p *TaskPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	if p.DueDate != nil && *p.DueDate != "" {
		if _, ok := ParseDue(*p.DueDate); !ok {
			return ErrInvalidDueDate
		}
	}
	return nil
}

// Apply merges the patch into t and returns the result.
func (p *TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Tags != nil {
		t.Tags = slices.Clone(*p.Tags)
		if t.Tags == nil {
			t.Tags = []string{}
		}
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	return t
}
