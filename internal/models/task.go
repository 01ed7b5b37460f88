package models

import (
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// statusRank orders task statuses for sorting (todo < in_progress < review < done)
var statusRank = map[TaskStatus]int{
	StatusTodo:       1,
	StatusInProgress: 2,
	StatusReview:     3,
	StatusDone:       4,
}

// StatusRank returns the sort rank of a task status; unknown statuses rank 0.
func StatusRank(s TaskStatus) int {
	return statusRank[s]
}

// Comment is a single task comment. Comments are append-only.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task represents a task in the system. A task belongs to at most one
// project; ProjectID is empty for unassigned tasks.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	Assignee    string     `json:"assignee"`
	CreatedBy   string     `json:"createdBy"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt"`
	Comments    []Comment  `json:"comments"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Overdue reports whether the task is past due and not done as of now.
func (t *Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}

// TaskPatch is a partial update for a task. Nil fields are left unchanged.
// CompletedAt is managed by the repository and is deliberately absent: it
// tracks the status transition, never caller input.
type TaskPatch struct {
	ProjectID   *string     `json:"projectId,omitempty"`
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	Priority    *Priority   `json:"priority,omitempty"`
	Assignee    *string     `json:"assignee,omitempty"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
}

// Apply merges the patch into the task field by field.
func (patch TaskPatch) Apply(t *Task) {
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
}
