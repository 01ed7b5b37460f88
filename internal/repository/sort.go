package repository

import (
	"sort"
	"strings"
	"time"

	"proker/internal/models"
)

// SortField selects the task attribute to sort by.
type SortField string

const (
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
	SortByStatus    SortField = "status"
	SortByTitle     SortField = "title"
	SortByCreatedAt SortField = "createdAt"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// maxDueDate stands in for a missing due date so unset tasks sort last in
// ascending order.
var maxDueDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// SortTasks returns a stably sorted copy of tasks. Priority and status sort
// by their fixed rank tables (low<medium<high, todo<in_progress<review<done);
// an unknown field leaves the order unchanged.
func SortTasks(tasks []models.Task, field SortField, order SortOrder) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)

	cmp := func(a, b *models.Task) int {
		switch field {
		case SortByDueDate:
			return dueDate(a).Compare(dueDate(b))
		case SortByPriority:
			return models.PriorityRank(a.Priority) - models.PriorityRank(b.Priority)
		case SortByStatus:
			return models.StatusRank(a.Status) - models.StatusRank(b.Status)
		case SortByTitle:
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		case SortByCreatedAt:
			return a.CreatedAt.Compare(b.CreatedAt)
		default:
			return 0
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(&sorted[i], &sorted[j])
		if order == Descending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func dueDate(t *models.Task) time.Time {
	if t.DueDate == nil {
		return maxDueDate
	}
	return *t.DueDate
}

// sortProjectsByUpdatedAtDesc orders projects most recently updated first.
func sortProjectsByUpdatedAtDesc(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
}

// sortTasksByDueDateAsc orders tasks by due date, missing dates last.
func sortTasksByDueDateAsc(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return dueDate(&tasks[i]).Before(dueDate(&tasks[j]))
	})
}
