package store

import (
	"time"

	"github.com/oklog/ulid/v2"

	"kanban/internal/models"
)

// SampleTasks returns the demo board shown on a fresh install. Creation
// times count back from now so that newest-first sorting lists them in the
// order given here.
func SampleTasks(now time.Time) []models.Task {
	day := 24 * time.Hour
	due := func(d time.Duration) string { return now.Add(d).UTC().Format("2006-01-02") }

	tasks := []models.Task{
		{
			Title:       "Setup project",
			Description: "Init repo, CI pipeline and lint rules",
			Status:      models.StatusDone,
			Assignee:    "Alex",
			Tags:        []string{"devops", "infra"},
			Priority:    models.PriorityHigh,
		},
		{
			Title:       "Design UI",
			Description: "Cards, columns and the filter bar",
			Status:      models.StatusInProgress,
			Assignee:    "Bea",
			Tags:        []string{"design", "ux"},
			DueDate:     due(2 * day),
			Priority:    models.PriorityMedium,
		},
		{
			Title:       "Implement drag and drop",
			Description: "Reorder within a column and move across columns",
			Status:      models.StatusInProgress,
			Assignee:    "Alex",
			Tags:        []string{"frontend"},
			DueDate:     due(5 * day),
			Priority:    models.PriorityHigh,
		},
		{
			Title:       "Bulk actions",
			Description: "Select many cards, move or delete them at once",
			Status:      models.StatusScheduled,
			Assignee:    "Chen",
			Tags:        []string{"frontend", "ux"},
			DueDate:     due(10 * day),
		},
		{
			Title:       "Import and export",
			Description: "JSON backup of the whole board",
			Status:      models.StatusScheduled,
			Assignee:    "Dana",
			Tags:        []string{"backend"},
			Priority:    models.PriorityLow,
		},
		{
			Title:       "Docs",
			Description: "README and testing section",
			Status:      models.StatusScheduled,
			Assignee:    "Dana",
			Tags:        []string{"docs"},
			DueDate:     due(-day),
		},
	}

	for i := range tasks {
		created := now.Add(-time.Duration(i) * time.Hour)
		tasks[i].ID = ulid.MustNew(ulid.Timestamp(created), ulid.DefaultEntropy()).String()
		tasks[i].CreatedAt = created.UnixMilli()
	}
	return tasks
}
