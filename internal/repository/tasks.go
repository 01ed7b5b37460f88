package repository

import (
	"time"

	"github.com/google/uuid"

	"proker/internal/events"
	"proker/internal/models"
	"proker/internal/storage"
)

// CreateTaskInput carries caller-supplied fields for a new task.
type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.Priority
	Assignee    string
	DueDate     *time.Time
}

// Tasks returns all tasks.
func (r *Repository) Tasks() []models.Task {
	return r.store.Tasks()
}

// GetTask returns the task with the given id, or nil.
func (r *Repository) GetTask(id string) *models.Task {
	if t, ok := r.taskByID.Get(id); ok {
		return &t
	}
	for _, t := range r.store.Tasks() {
		if t.ID == id {
			r.taskByID.Put(id, t)
			return &t
		}
	}
	return nil
}

// TasksByProject returns the tasks whose projectId matches.
func (r *Repository) TasksByProject(projectID string) []models.Task {
	var out []models.Task
	for _, t := range r.store.Tasks() {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// CreateTask creates and persists a new task. When the task names a project,
// the task id is linked into that project's sequence and the project's
// progress is recomputed in the same transaction. Returns nil if persistence
// fails. Naming a project that does not exist leaves the task unassigned.
func (r *Repository) CreateTask(input CreateTaskInput) *models.Task {
	now := time.Now()

	creator := ""
	if u := r.store.CurrentUser(); u != nil {
		creator = u.ID
	}
	assignee := input.Assignee
	if assignee == "" {
		assignee = creator
	}
	status := input.Status
	if status == "" {
		status = models.StatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := models.Task{
		ID:          uuid.NewString(),
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		Assignee:    assignee,
		CreatedBy:   creator,
		DueDate:     input.DueDate,
		Comments:    []models.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Status == models.StatusDone {
		task.CompletedAt = &now
	}

	progress := -1
	err := r.store.Update(func(tx *storage.Store) error {
		tasks := append(tx.Tasks(), task)

		if task.ProjectID != "" {
			projects := tx.Projects()
			linked := false
			for i := range projects {
				if projects[i].ID == task.ProjectID {
					projects[i].Tasks = append(projects[i].Tasks, task.ID)
					linked = true
					break
				}
			}
			if linked {
				if !tx.SetTasks(tasks) {
					return errPersist
				}
				var ok bool
				progress, ok = refreshProgress(projects, tasks, task.ProjectID, now)
				if !ok || !tx.SetProjects(projects) {
					return errPersist
				}
				return nil
			}
			// Unknown project: keep both sides of the linkage consistent.
			task.ProjectID = ""
			tasks[len(tasks)-1].ProjectID = ""
		}

		if !tx.SetTasks(tasks) {
			return errPersist
		}
		return nil
	})
	if err != nil {
		return nil
	}

	r.flush()
	r.hub.Publish(events.Event{Kind: events.TaskCreated, EntityID: task.ID, ProjectID: task.ProjectID})
	if progress >= 0 {
		r.hub.Publish(events.Event{Kind: events.ProjectProgress, EntityID: task.ProjectID, ProjectID: task.ProjectID, Progress: progress})
	}
	return &task
}

// progressChange records one project whose progress was recomputed during a
// task mutation.
type progressChange struct {
	projectID string
	progress  int
}

// UpdateTask merges patch over the stored task and refreshes updatedAt.
// Status transitions maintain the completion invariant (completedAt set iff
// done) regardless of caller input, and reassigning projectId moves the task
// id between both projects' sequences. Every affected project gets its
// progress recomputed in the same transaction.
func (r *Repository) UpdateTask(id string, patch models.TaskPatch) bool {
	now := time.Now()
	found := false
	var changes []progressChange

	err := r.store.Update(func(tx *storage.Store) error {
		tasks := tx.Tasks()
		idx := -1
		for i := range tasks {
			if tasks[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		found = true

		task := &tasks[idx]
		oldStatus := task.Status
		oldProject := task.ProjectID

		patch.Apply(task)
		if task.Status == models.StatusDone {
			if task.CompletedAt == nil {
				done := now
				task.CompletedAt = &done
			}
		} else {
			task.CompletedAt = nil
		}
		task.UpdatedAt = now

		projects := tx.Projects()
		projectsDirty := false

		if task.ProjectID != oldProject {
			if oldProject != "" {
				unlinkTask(projects, oldProject, id)
				projectsDirty = true
			}
			if task.ProjectID != "" {
				if linkTask(projects, task.ProjectID, id) {
					projectsDirty = true
				} else {
					// Unknown target project: drop the reference.
					task.ProjectID = ""
				}
			}
		}

		statusChanged := task.Status != oldStatus
		if oldProject != "" && (statusChanged || task.ProjectID != oldProject) {
			if p, ok := refreshProgress(projects, tasks, oldProject, now); ok {
				changes = append(changes, progressChange{oldProject, p})
				projectsDirty = true
			}
		}
		if task.ProjectID != "" && task.ProjectID != oldProject {
			if p, ok := refreshProgress(projects, tasks, task.ProjectID, now); ok {
				changes = append(changes, progressChange{task.ProjectID, p})
				projectsDirty = true
			}
		}

		if !tx.SetTasks(tasks) {
			return errPersist
		}
		if projectsDirty && !tx.SetProjects(projects) {
			return errPersist
		}
		return nil
	})
	if err != nil || !found {
		return false
	}

	r.flush()
	r.hub.Publish(events.Event{Kind: events.TaskUpdated, EntityID: id})
	for _, c := range changes {
		r.hub.Publish(events.Event{Kind: events.ProjectProgress, EntityID: c.projectID, ProjectID: c.projectID, Progress: c.progress})
	}
	return true
}

// DeleteTask removes the task. When the task belonged to a project, its id
// is removed from that project's sequence and the project's progress is
// recomputed, all in the same transaction.
func (r *Repository) DeleteTask(id string) bool {
	now := time.Now()
	found := false
	var change *progressChange

	err := r.store.Update(func(tx *storage.Store) error {
		tasks := tx.Tasks()
		owner := ""
		kept := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID == id {
				owner = t.ProjectID
				found = true
				continue
			}
			kept = append(kept, t)
		}
		if !found {
			return nil
		}
		if !tx.SetTasks(kept) {
			return errPersist
		}

		if owner != "" {
			projects := tx.Projects()
			unlinkTask(projects, owner, id)
			if p, ok := refreshProgress(projects, kept, owner, now); ok {
				change = &progressChange{owner, p}
			}
			if !tx.SetProjects(projects) {
				return errPersist
			}
		}
		return nil
	})
	if err != nil || !found {
		return false
	}

	r.flush()
	r.hub.Publish(events.Event{Kind: events.TaskDeleted, EntityID: id})
	if change != nil {
		r.hub.Publish(events.Event{Kind: events.ProjectProgress, EntityID: change.projectID, ProjectID: change.projectID, Progress: change.progress})
	}
	return true
}

// ToggleTask flips a task between done and todo.
func (r *Repository) ToggleTask(id string) bool {
	task := r.GetTask(id)
	if task == nil {
		return false
	}
	next := models.StatusDone
	if task.Status == models.StatusDone {
		next = models.StatusTodo
	}
	return r.UpdateTask(id, models.TaskPatch{Status: &next})
}

// AddComment appends a comment to the task. Comments are append-only.
func (r *Repository) AddComment(taskID, userID, text string) bool {
	now := time.Now()
	found := false

	err := r.store.Update(func(tx *storage.Store) error {
		tasks := tx.Tasks()
		for i := range tasks {
			if tasks[i].ID != taskID {
				continue
			}
			tasks[i].Comments = append(tasks[i].Comments, models.Comment{
				ID:        uuid.NewString(),
				UserID:    userID,
				Text:      text,
				CreatedAt: now,
			})
			tasks[i].UpdatedAt = now
			found = true
			break
		}
		if !found {
			return nil
		}
		if !tx.SetTasks(tasks) {
			return errPersist
		}
		return nil
	})
	if err != nil || !found {
		return false
	}

	r.flush()
	r.hub.Publish(events.Event{Kind: events.TaskUpdated, EntityID: taskID})
	return true
}

// linkTask appends taskID to the named project's sequence if not already
// present. Reports whether the project was found.
func linkTask(projects []models.Project, projectID, taskID string) bool {
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		for _, id := range projects[i].Tasks {
			if id == taskID {
				return true
			}
		}
		projects[i].Tasks = append(projects[i].Tasks, taskID)
		return true
	}
	return false
}

// unlinkTask removes taskID from the named project's sequence.
func unlinkTask(projects []models.Project, projectID, taskID string) {
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		kept := make([]string, 0, len(projects[i].Tasks))
		for _, id := range projects[i].Tasks {
			if id != taskID {
				kept = append(kept, id)
			}
		}
		projects[i].Tasks = kept
		return
	}
}
