package repository

import (
	"strings"
	"time"

	"proker/internal/models"
)

// ProjectFilter holds independent, conjunctive predicates over the project
// collection. Zero-valued fields do not filter; an empty filter matches all.
type ProjectFilter struct {
	Status   models.ProjectStatus
	Priority models.Priority
	Search   string // case-insensitive substring over name + description
	Member   string // team membership
}

// FilterProjects returns the projects matching every set predicate.
func (r *Repository) FilterProjects(f ProjectFilter) []models.Project {
	search := strings.ToLower(f.Search)
	out := []models.Project{}
	for _, p := range r.store.Projects() {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Priority != "" && p.Priority != f.Priority {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Member != "" && !p.HasTeamMember(f.Member) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TaskFilter holds independent, conjunctive predicates over the task
// collection. Zero-valued fields do not filter. The due-date range keeps
// only tasks with a due date inside [DueAfter, DueBefore]; tasks without a
// due date never match a set range.
type TaskFilter struct {
	Status    models.TaskStatus
	Priority  models.Priority
	ProjectID string
	Assignee  string
	Search    string // case-insensitive substring over title + description
	DueAfter  *time.Time
	DueBefore *time.Time
}

// FilterTasks returns the tasks matching every set predicate.
func (r *Repository) FilterTasks(f TaskFilter) []models.Task {
	search := strings.ToLower(f.Search)
	out := []models.Task{}
	for _, t := range r.store.Tasks() {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.ProjectID != "" && t.ProjectID != f.ProjectID {
			continue
		}
		if f.Assignee != "" && t.Assignee != f.Assignee {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if f.DueAfter != nil || f.DueBefore != nil {
			if t.DueDate == nil {
				continue
			}
			if f.DueAfter != nil && t.DueDate.Before(*f.DueAfter) {
				continue
			}
			if f.DueBefore != nil && t.DueDate.After(*f.DueBefore) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
