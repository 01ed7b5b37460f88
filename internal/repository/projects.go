package repository

import (
	"time"

	"github.com/google/uuid"

	"proker/internal/events"
	"proker/internal/models"
	"proker/internal/storage"
)

// CreateProjectInput carries caller-supplied fields for a new project.
// Zero-valued fields fall back to the stated defaults.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      models.ProjectStatus
	Priority    models.Priority
	Team        []string
	StartDate   *time.Time
	Deadline    *time.Time
}

// Projects returns all projects.
func (r *Repository) Projects() []models.Project {
	return r.store.Projects()
}

// GetProject returns the project with the given id, or nil.
func (r *Repository) GetProject(id string) *models.Project {
	if p, ok := r.projectByID.Get(id); ok {
		return &p
	}
	for _, p := range r.store.Projects() {
		if p.ID == id {
			r.projectByID.Put(id, p)
			return &p
		}
	}
	return nil
}

// CreateProject creates and persists a new project, returning it, or nil if
// persistence fails. The current user becomes owner and default team member.
func (r *Repository) CreateProject(input CreateProjectInput) *models.Project {
	now := time.Now()

	owner := ""
	if u := r.store.CurrentUser(); u != nil {
		owner = u.ID
	}
	team := input.Team
	if len(team) == 0 && owner != "" {
		team = []string{owner}
	}
	status := input.Status
	if status == "" {
		status = models.ProjectPlanning
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	start := now
	if input.StartDate != nil {
		start = *input.StartDate
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		Progress:    0,
		Owner:       owner,
		Team:        team,
		Tasks:       []string{},
		StartDate:   start,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.store.Update(func(tx *storage.Store) error {
		projects := append(tx.Projects(), project)
		if !tx.SetProjects(projects) {
			return errPersist
		}
		return nil
	})
	if err != nil {
		return nil
	}

	r.flush()
	r.hub.Publish(events.Event{Kind: events.ProjectCreated, EntityID: project.ID})
	return &project
}

// UpdateProject merges patch over the stored project and refreshes
// updatedAt. Returns false when the project does not exist or the write
// fails. An empty patch still refreshes updatedAt.
func (r *Repository) UpdateProject(id string, patch models.ProjectPatch) bool {
	now := time.Now()
	found := false

	err := r.store.Update(func(tx *storage.Store) error {
		projects := tx.Projects()
		for i := range projects {
			if projects[i].ID != id {
				continue
			}
			patch.Apply(&projects[i])
			projects[i].UpdatedAt = now
			found = true
			break
		}
		if !found {
			return nil
		}
		if !tx.SetProjects(projects) {
			return errPersist
		}
		return nil
	})
	if err != nil || !found {
		return false
	}

	r.flush()
	r.hub.Publish(events.Event{Kind: events.ProjectUpdated, EntityID: id})
	return true
}

// DeleteProject removes the project and cascades: every task it owns is
// deleted from the task collection first.
func (r *Repository) DeleteProject(id string) bool {
	found := false
	var cascaded []string

	err := r.store.Update(func(tx *storage.Store) error {
		projects := tx.Projects()
		var target *models.Project
		for i := range projects {
			if projects[i].ID == id {
				target = &projects[i]
				break
			}
		}
		if target == nil {
			return nil
		}
		found = true

		owned := make(map[string]bool, len(target.Tasks))
		for _, taskID := range target.Tasks {
			owned[taskID] = true
		}

		tasks := tx.Tasks()
		kept := tasks[:0]
		for _, t := range tasks {
			if owned[t.ID] {
				cascaded = append(cascaded, t.ID)
				continue
			}
			kept = append(kept, t)
		}
		if !tx.SetTasks(kept) {
			return errPersist
		}

		remaining := make([]models.Project, 0, len(projects)-1)
		for _, p := range projects {
			if p.ID != id {
				remaining = append(remaining, p)
			}
		}
		if !tx.SetProjects(remaining) {
			return errPersist
		}
		return nil
	})
	if err != nil || !found {
		return false
	}

	r.flush()
	for _, taskID := range cascaded {
		r.hub.Publish(events.Event{Kind: events.TaskDeleted, EntityID: taskID, ProjectID: id})
	}
	r.hub.Publish(events.Event{Kind: events.ProjectDeleted, EntityID: id})
	return true
}

// UpdateProgress recomputes and persists the derived progress field for the
// named project. Task mutators call this implicitly; it is exported so the
// recomputation step stays visible as its own operation.
func (r *Repository) UpdateProgress(projectID string) (int, bool) {
	now := time.Now()
	progress := 0
	found := false

	err := r.store.Update(func(tx *storage.Store) error {
		projects := tx.Projects()
		var ok bool
		progress, ok = refreshProgress(projects, tx.Tasks(), projectID, now)
		if !ok {
			return nil
		}
		found = true
		if !tx.SetProjects(projects) {
			return errPersist
		}
		return nil
	})
	if err != nil || !found {
		return 0, false
	}

	r.flush()
	r.hub.Publish(events.Event{Kind: events.ProjectProgress, EntityID: projectID, ProjectID: projectID, Progress: progress})
	return progress, true
}

// AddTeamMember adds userID to the project team, preserving insertion order
// and uniqueness. Returns false if the project does not exist or the member
// is already present.
func (r *Repository) AddTeamMember(projectID, userID string) bool {
	project := r.GetProject(projectID)
	if project == nil || project.HasTeamMember(userID) {
		return false
	}
	team := append(project.Team, userID)
	return r.UpdateProject(projectID, models.ProjectPatch{Team: team})
}

// RemoveTeamMember drops userID from the project team. Returns false only
// when the project does not exist; removing an absent member is a no-op
// that still succeeds.
func (r *Repository) RemoveTeamMember(projectID, userID string) bool {
	project := r.GetProject(projectID)
	if project == nil {
		return false
	}
	team := make([]string, 0, len(project.Team))
	for _, id := range project.Team {
		if id != userID {
			team = append(team, id)
		}
	}
	return r.UpdateProject(projectID, models.ProjectPatch{Team: team})
}

// RecentProjects returns up to limit projects, most recently updated first.
func (r *Repository) RecentProjects(limit int) []models.Project {
	projects := r.store.Projects()
	sortProjectsByUpdatedAtDesc(projects)
	if limit >= 0 && len(projects) > limit {
		projects = projects[:limit]
	}
	return projects
}

// ProjectsByStatus returns projects with the given status.
func (r *Repository) ProjectsByStatus(status models.ProjectStatus) []models.Project {
	return r.FilterProjects(ProjectFilter{Status: status})
}
