package board

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/models"
)

func task(id string, status models.Status, createdAt int64, opts ...func(*models.Task)) models.Task {
	t := models.Task{
		ID:        id,
		Title:     id,
		Status:    status,
		Assignee:  "A",
		Tags:      []string{},
		CreatedAt: createdAt,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func withDue(due string) func(*models.Task) {
	return func(t *models.Task) { t.DueDate = due }
}

func withPriority(p models.Priority) func(*models.Task) {
	return func(t *models.Task) { t.Priority = p }
}

func withTitle(title string) func(*models.Task) {
	return func(t *models.Task) { t.Title = title }
}

func seed(sort models.SortSpec, tasks ...models.Task) State {
	s := New(tasks)
	s.Sort = sort
	return s
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func colIDs(s State, status models.Status) []string {
	return ids(Column(s.Tasks, status, models.DefaultSort))
}

// fixedClock makes Create deterministic for the duration of a test.
func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prevNow, prevID := now, newID
	n := 0
	now = func() time.Time { return at }
	newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	t.Cleanup(func() { now, newID = prevNow, prevID })
}

func TestCreate_PrependsWithFreshID(t *testing.T) {
	fixedClock(t, time.UnixMilli(1700000000000))

	s := New([]models.Task{task("old", models.StatusScheduled, 1)})
	s, id := s.Create(models.TaskFields{Title: "New", Status: models.StatusInProgress, Tags: []string{"x"}})

	require.Equal(t, "id-1", id)
	require.Len(t, s.Tasks, 2)
	assert.Equal(t, id, s.Tasks[0].ID)
	assert.Equal(t, int64(1700000000000), s.Tasks[0].CreatedAt)
	assert.Equal(t, models.StatusInProgress, s.Tasks[0].Status)
	assert.Equal(t, "old", s.Tasks[1].ID)
}

func TestCreate_NeverReusesIdentifiers(t *testing.T) {
	s := New(nil)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		var id string
		s, id = s.Create(models.TaskFields{Title: "t", Status: models.StatusScheduled})
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		s = s.Delete(id)
	}
	assert.Empty(t, s.Tasks)
}

func TestCreate_LeavesReceiverUntouched(t *testing.T) {
	before := New([]models.Task{task("a", models.StatusScheduled, 1)})
	after, _ := before.Create(models.TaskFields{Title: "b", Status: models.StatusScheduled})

	assert.Len(t, before.Tasks, 1)
	assert.Len(t, after.Tasks, 2)
}

func TestUpdate(t *testing.T) {
	s := New([]models.Task{task("a", models.StatusScheduled, 1), task("b", models.StatusDone, 2)})

	title := "Renamed"
	status := models.StatusDone
	got := s.Update("a", models.TaskPatch{Title: &title, Status: &status})

	assert.Equal(t, []string{"a", "b"}, ids(got.Tasks))
	assert.Equal(t, "Renamed", got.Tasks[0].Title)
	assert.Equal(t, models.StatusDone, got.Tasks[0].Status)
	assert.Equal(t, "A", got.Tasks[0].Assignee)
	assert.Equal(t, "a", s.Tasks[0].Title, "receiver must not change")
}

func TestMissingIDsAreNoOps(t *testing.T) {
	s := seed(models.SortSpec{Key: models.SortCreated, Dir: models.Descending},
		task("a", models.StatusScheduled, 1),
		task("b", models.StatusDone, 2),
	)
	title := "x"

	tests := []struct {
		name string
		op   func(State) State
	}{
		{"update", func(s State) State { return s.Update("missing", models.TaskPatch{Title: &title}) }},
		{"delete", func(s State) State { return s.Delete("missing") }},
		{"set status", func(s State) State { return s.SetStatus("missing", models.StatusDone) }},
		{"reorder active missing", func(s State) State { return s.ReorderWithinStatus("missing", "a") }},
		{"reorder over missing", func(s State) State { return s.ReorderWithinStatus("a", "missing") }},
		{"move", func(s State) State { return s.MoveToStatusAtIndex("missing", models.StatusDone, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, s, tt.op(s))
		})
	}
}

func TestSetStatus_KeepsPosition(t *testing.T) {
	s := New([]models.Task{
		task("a", models.StatusScheduled, 1),
		task("b", models.StatusScheduled, 2),
		task("c", models.StatusScheduled, 3),
	})

	got := s.SetStatus("b", models.StatusInProgress)

	assert.Equal(t, []string{"a", "b", "c"}, ids(got.Tasks))
	assert.Equal(t, models.StatusInProgress, got.Tasks[1].Status)
}

func TestDelete_DropsFromSelection(t *testing.T) {
	s := New([]models.Task{task("a", models.StatusScheduled, 1), task("b", models.StatusScheduled, 2)})
	s = s.ToggleSelectionMode(true).ToggleSelect("a").ToggleSelect("b")

	got := s.Delete("a")

	assert.Equal(t, []string{"b"}, ids(got.Tasks))
	assert.Equal(t, []string{"b"}, got.SelectedIDs())
	assert.True(t, s.Selection.Has("a"), "receiver selection must not change")
}

func TestUpsert(t *testing.T) {
	s := New([]models.Task{
		task("a", models.StatusScheduled, 1),
		task("b", models.StatusScheduled, 2),
		task("c", models.StatusDone, 3),
	})

	incoming := []models.Task{
		task("n1", models.StatusDone, 10),
		task("b", models.StatusInProgress, 2, withTitle("B!")),
		task("n2", models.StatusScheduled, 11),
	}
	got := s.Upsert(incoming)

	assert.Equal(t, []string{"a", "b", "c", "n1", "n2"}, ids(got.Tasks))
	assert.Equal(t, "B!", got.Tasks[1].Title)
	assert.Equal(t, models.StatusInProgress, got.Tasks[1].Status)
	assert.Equal(t, "b", s.Tasks[1].Title)
}

func TestSetFilters_Merges(t *testing.T) {
	s := New(nil)
	text, assignee := "foo", "A"

	s = s.SetFilters(models.FilterPatch{Text: &text})
	assert.Equal(t, models.FilterSpec{Text: "foo"}, s.Filters)

	s = s.SetFilters(models.FilterPatch{Assignee: &assignee})
	assert.Equal(t, models.FilterSpec{Text: "foo", Assignee: "A"}, s.Filters)
}

func TestClearAll(t *testing.T) {
	s := New([]models.Task{task("a", models.StatusScheduled, 1)})
	s = s.SetFilters(models.FilterPatch{Text: ptr("q")}).ToggleSelectionMode(true).ToggleSelect("a")
	s = s.SetSort(models.SortSpec{Key: models.SortTitle, Dir: models.Ascending})

	got := s.ClearAll()

	assert.Empty(t, got.Tasks)
	assert.Equal(t, models.FilterSpec{}, got.Filters)
	assert.Zero(t, got.Selection.Len())
	assert.False(t, got.Selection.Active)
	assert.Equal(t, models.SortTitle, got.Sort.Key)
}

func TestAssigneesAndTags(t *testing.T) {
	s := New([]models.Task{
		{ID: "1", Assignee: "Bea", Tags: []string{"ux", "design"}},
		{ID: "2", Assignee: "Alex", Tags: []string{"ux"}},
		{ID: "3", Assignee: "", Tags: []string{"docs"}},
		{ID: "4", Assignee: "Bea"},
	})

	assert.Equal(t, []string{"Bea", "Alex"}, s.Assignees())
	assert.Equal(t, []string{"ux", "design", "docs"}, s.Tags())
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := seed(models.SortSpec{Key: models.SortDue, Dir: models.Descending},
		task("a", models.StatusScheduled, 1, withDue("2024-01-01T00:00:00Z"), withPriority(models.PriorityHigh)),
	)
	s = s.SetFilters(models.FilterPatch{Tag: ptr("x")})

	got := FromSnapshot(s.Snapshot())

	assert.Equal(t, s.Tasks, got.Tasks)
	assert.Equal(t, s.Filters, got.Filters)
	assert.Equal(t, s.Sort, got.Sort)
}

func TestFromSnapshot_DefaultsMissingSort(t *testing.T) {
	got := FromSnapshot(Snapshot{})

	assert.Equal(t, models.DefaultSort, got.Sort)
	assert.NotNil(t, got.Tasks)
	assert.Empty(t, got.Tasks)
}

func ptr[T any](v T) *T { return &v }
