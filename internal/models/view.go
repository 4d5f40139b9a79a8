package models

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus    = errors.New("status must be 'scheduled', 'in-progress', or 'done'")
	ErrInvalidPriority  = errors.New("priority must be 'high', 'medium', or 'low'")
	ErrInvalidDueDate   = errors.New("due date must be an ISO-8601 date or instant")
	ErrInvalidSortKey   = errors.New("sort key must be 'manual', 'created', 'due', 'priority', or 'title'")
	ErrInvalidDirection = errors.New("sort direction must be 'asc' or 'desc'")
)

// SortKey selects the comparator used to derive a display order.
type SortKey string

const (
	SortManual   SortKey = "manual"
	SortCreated  SortKey = "created"
	SortDue      SortKey = "due"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec is the user-selected ordering.
type SortSpec struct {
	Key SortKey   `json:"key" yaml:"key"`
	Dir Direction `json:"dir" yaml:"dir"`
}

// DefaultSort defers entirely to the canonical order.
var DefaultSort = SortSpec{Key: SortManual, Dir: Ascending}

// IsManual reports whether the spec defers to canonical order.
func (s SortSpec) IsManual() bool {
	return s.Key == SortManual || s.Key == ""
}

// Validate checks that the spec holds values from the enumerated option sets.
func (s SortSpec) Validate() error {
	switch s.Key {
	case SortManual, SortCreated, SortDue, SortPriority, SortTitle:
	default:
		return ErrInvalidSortKey
	}
	if s.Dir != Ascending && s.Dir != Descending {
		return ErrInvalidDirection
	}
	return nil
}

// FilterSpec narrows the visible tasks. Empty fields do not constrain.
type FilterSpec struct {
	Text     string `json:"text" yaml:"text"`
	Assignee string `json:"assignee" yaml:"assignee"`
	Tag      string `json:"tag" yaml:"tag"`
}

// IsEmpty reports whether the filter matches every task.
func (f FilterSpec) IsEmpty() bool {
	return strings.TrimSpace(f.Text) == "" && f.Assignee == "" && f.Tag == ""
}

// Matches reports whether t satisfies every constraint of the filter.
func (f FilterSpec) Matches(t *Task) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Text)); q != "" {
		haystack := strings.ToLower(t.Title + " " + t.Description)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	if f.Assignee != "" && t.Assignee != f.Assignee {
		return false
	}
	if f.Tag != "" && !t.HasTag(f.Tag) {
		return false
	}
	return true
}

// FilterPatch is a partial filter update; nil fields are left unchanged.
type FilterPatch struct {
	Text     *string `json:"text,omitempty"`
	Assignee *string `json:"assignee,omitempty"`
	Tag      *string `json:"tag,omitempty"`
}

// Apply merges the patch into f and returns the result.
func (p FilterPatch) Apply(f FilterSpec) FilterSpec {
	if p.Text != nil {
		f.Text = *p.Text
	}
	if p.Assignee != nil {
		f.Assignee = *p.Assignee
	}
	if p.Tag != nil {
		f.Tag = *p.Tag
	}
	return f
}
