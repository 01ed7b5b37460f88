package repository

import (
	"time"

	"proker/internal/models"
)

// ProjectStatistics summarizes the project collection.
type ProjectStatistics struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Planning    int     `json:"planning"`
	OnHold      int     `json:"onHold"`
	Completed   int     `json:"completed"`
	AvgProgress float64 `json:"avgProgress"`
}

// ProjectStats computes counts per status and the mean progress.
func (r *Repository) ProjectStats() ProjectStatistics {
	projects := r.store.Projects()
	stats := ProjectStatistics{Total: len(projects)}
	sum := 0
	for _, p := range projects {
		switch p.Status {
		case models.ProjectActive:
			stats.Active++
		case models.ProjectPlanning:
			stats.Planning++
		case models.ProjectOnHold:
			stats.OnHold++
		case models.ProjectCompleted:
			stats.Completed++
		}
		sum += p.Progress
	}
	if stats.Total > 0 {
		stats.AvgProgress = float64(sum) / float64(stats.Total)
	}
	return stats
}

// TaskStatistics summarizes the task collection.
type TaskStatistics struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Review     int `json:"review"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
}

// TaskStats computes counts per status plus the overdue count.
func (r *Repository) TaskStats() TaskStatistics {
	now := time.Now()
	tasks := r.store.Tasks()
	stats := TaskStatistics{Total: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case models.StatusTodo:
			stats.Todo++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusReview:
			stats.Review++
		case models.StatusDone:
			stats.Done++
		}
		if tasks[i].Overdue(now) {
			stats.Overdue++
		}
	}
	return stats
}

// UpcomingTasks returns up to limit unfinished tasks with a due date,
// soonest first.
func (r *Repository) UpcomingTasks(limit int) []models.Task {
	var upcoming []models.Task
	for _, t := range r.store.Tasks() {
		if t.Status != models.StatusDone && t.DueDate != nil {
			upcoming = append(upcoming, t)
		}
	}
	sortTasksByDueDateAsc(upcoming)
	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// OverdueTasks returns every overdue task, most overdue first.
func (r *Repository) OverdueTasks() []models.Task {
	now := time.Now()
	var overdue []models.Task
	for _, t := range r.store.Tasks() {
		if t.Overdue(now) {
			overdue = append(overdue, t)
		}
	}
	sortTasksByDueDateAsc(overdue)
	return overdue
}

// TasksByAssignee returns the tasks assigned to userID.
func (r *Repository) TasksByAssignee(userID string) []models.Task {
	var out []models.Task
	for _, t := range r.store.Tasks() {
		if t.Assignee == userID {
			out = append(out, t)
		}
	}
	return out
}
