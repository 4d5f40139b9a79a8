package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanban/internal/models"
)

func sortFixture() []models.Task {
	return []models.Task{
		task("a", models.StatusScheduled, 0, withTitle("Alpha"), withDue("2024-01-20T00:00:00Z"), withPriority(models.PriorityLow)),
		task("b", models.StatusScheduled, 0, withTitle("beta"), withPriority(models.PriorityHigh)),
		task("c", models.StatusScheduled, 0, withTitle("Gamma"), withDue("2024-01-05T00:00:00Z"), withPriority(models.PriorityMedium)),
		task("d", models.StatusScheduled, 0, withTitle("delta"), withDue("2024-02-10T00:00:00Z"), withPriority(models.PriorityHigh)),
	}
}

func TestSorted(t *testing.T) {
	tests := []struct {
		name string
		spec models.SortSpec
		want []string
	}{
		{"manual keeps canonical order", models.SortSpec{Key: models.SortManual, Dir: models.Descending}, []string{"a", "b", "c", "d"}},
		{"due asc puts undated last", models.SortSpec{Key: models.SortDue, Dir: models.Ascending}, []string{"c", "a", "d", "b"}},
		{"due desc reverses everything", models.SortSpec{Key: models.SortDue, Dir: models.Descending}, []string{"b", "d", "a", "c"}},
		{"priority desc", models.SortSpec{Key: models.SortPriority, Dir: models.Descending}, []string{"b", "d", "c", "a"}},
		{"priority asc keeps ties stable", models.SortSpec{Key: models.SortPriority, Dir: models.Ascending}, []string{"a", "c", "b", "d"}},
		{"title asc ignores case", models.SortSpec{Key: models.SortTitle, Dir: models.Ascending}, []string{"a", "b", "d", "c"}},
		{"title desc", models.SortSpec{Key: models.SortTitle, Dir: models.Descending}, []string{"c", "d", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sortFixture()
			assert.Equal(t, tt.want, ids(Sorted(input, tt.spec)))
			assert.Equal(t, []string{"a", "b", "c", "d"}, ids(input), "input must not be reordered")
		})
	}
}

func TestSorted_Created(t *testing.T) {
	tasks := []models.Task{
		task("s1", models.StatusScheduled, 1),
		task("s3", models.StatusScheduled, 3),
		task("s2", models.StatusScheduled, 2),
	}

	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(Sorted(tasks, models.SortSpec{Key: models.SortCreated, Dir: models.Ascending})))
	assert.Equal(t, []string{"s3", "s2", "s1"}, ids(Sorted(tasks, models.SortSpec{Key: models.SortCreated, Dir: models.Descending})))
}

func TestSorted_PriorityDescendingSixTasks(t *testing.T) {
	tasks := []models.Task{
		task("low1", models.StatusScheduled, 0, withPriority(models.PriorityLow)),
		task("none", models.StatusScheduled, 0),
		task("high1", models.StatusScheduled, 0, withPriority(models.PriorityHigh)),
		task("med1", models.StatusScheduled, 0, withPriority(models.PriorityMedium)),
		task("low2", models.StatusScheduled, 0, withPriority(models.PriorityLow)),
		task("high2", models.StatusScheduled, 0, withPriority(models.PriorityHigh)),
		task("med2", models.StatusScheduled, 0, withPriority(models.PriorityMedium)),
	}

	got := Sorted(tasks, models.SortSpec{Key: models.SortPriority, Dir: models.Descending})

	assert.Equal(t, []string{"high1", "high2", "med1", "med2", "low1", "low2", "none"}, ids(got))
}

func TestSorted_DueUnparseableAfterParseable(t *testing.T) {
	tasks := []models.Task{
		task("later", models.StatusScheduled, 0, withDue("2024-05-01")),
		task("junk", models.StatusScheduled, 0, withDue("whenever")),
		task("undated", models.StatusScheduled, 0),
		task("earlier", models.StatusScheduled, 0, withDue("2024-01-01")),
	}

	got := ids(Sorted(tasks, models.SortSpec{Key: models.SortDue, Dir: models.Ascending}))

	assert.Equal(t, []string{"earlier", "later", "junk", "undated"}, got)
}

func TestColumn(t *testing.T) {
	tasks := []models.Task{
		task("s1", models.StatusScheduled, 1),
		task("p1", models.StatusInProgress, 1),
		task("s2", models.StatusScheduled, 2),
		task("p2", models.StatusInProgress, 2),
	}
	desc := models.SortSpec{Key: models.SortCreated, Dir: models.Descending}

	assert.Equal(t, []string{"s2", "s1"}, ids(Column(tasks, models.StatusScheduled, desc)))
	assert.Equal(t, []string{"p2", "p1"}, ids(Column(tasks, models.StatusInProgress, desc)))
	assert.Empty(t, Column(tasks, models.StatusDone, desc))
	assert.Equal(t, []string{"s1", "s2"}, ids(Column(tasks, models.StatusScheduled, models.DefaultSort)))
}

func TestBaseline_GroupsByStatusInFixedOrder(t *testing.T) {
	tasks := []models.Task{
		task("d1", models.StatusDone, 5),
		task("s1", models.StatusScheduled, 1),
		task("odd", models.Status("archived"), 9),
		task("p1", models.StatusInProgress, 3),
		task("s2", models.StatusScheduled, 2),
	}

	got := Baseline(tasks, models.SortSpec{Key: models.SortCreated, Dir: models.Descending})

	assert.Equal(t, []string{"s2", "s1", "p1", "d1", "odd"}, ids(got))
}

func TestFreeze(t *testing.T) {
	s := seed(models.SortSpec{Key: models.SortCreated, Dir: models.Descending},
		task("s1", models.StatusScheduled, 1),
		task("p1", models.StatusInProgress, 1),
		task("s2", models.StatusScheduled, 2),
	)

	frozen := s.freeze()

	assert.Equal(t, []string{"s2", "s1", "p1"}, ids(frozen.Tasks))
	assert.Equal(t, models.SortManual, frozen.Sort.Key)
	assert.Equal(t, []string{"s1", "p1", "s2"}, ids(s.Tasks), "receiver must not change")

	again := frozen.freeze()
	assert.Equal(t, frozen, again)
}
