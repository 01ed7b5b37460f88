package models

import (
	"time"
)

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
)

// Priority represents the priority of a project or task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityRank orders priorities for sorting (low < medium < high)
var priorityRank = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

// PriorityRank returns the sort rank of a priority; unknown priorities rank 0.
func PriorityRank(p Priority) int {
	return priorityRank[p]
}

// Project represents a project in the system.
// Progress is derived from the owned tasks and never set directly.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Priority    Priority      `json:"priority"`
	Progress    int           `json:"progress"`
	Owner       string        `json:"owner"`
	Team        []string      `json:"team"`
	Tasks       []string      `json:"tasks"`
	StartDate   time.Time     `json:"startDate"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// HasTeamMember reports whether userID is part of the project team.
func (p *Project) HasTeamMember(userID string) bool {
	for _, id := range p.Team {
		if id == userID {
			return true
		}
	}
	return false
}

// ProjectPatch is a partial update for a project. Nil fields are left
// unchanged; Team and Tasks replace the stored sequences wholesale.
type ProjectPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	Priority    *Priority      `json:"priority,omitempty"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
	Team        []string       `json:"team,omitempty"`
	Tasks       []string       `json:"tasks,omitempty"`
}

// Apply merges the patch into the project field by field.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.Deadline != nil {
		p.Deadline = patch.Deadline
	}
	if patch.Team != nil {
		p.Team = patch.Team
	}
	if patch.Tasks != nil {
		p.Tasks = patch.Tasks
	}
}
