package repository

import (
	"errors"
	"math"
	"time"

	"proker/internal/cache"
	"proker/internal/events"
	"proker/internal/models"
	"proker/internal/storage"
)

// errPersist signals a failed collection write inside a store transaction so
// the whole mutation rolls back.
var errPersist = errors.New("repository: persist failed")

const lookupTTL = time.Minute

// Repository implements CRUD over the project and task collections and keeps
// the derived fields (project progress, project-task linkage) consistent.
// Every mutation is a single atomic read-modify-write transaction on the
// store, and every mutation is announced on the hub so callers can observe
// the cascading recomputations.
type Repository struct {
	store *storage.Store
	hub   *events.Hub

	projectByID *cache.Cache[string, models.Project]
	taskByID    *cache.Cache[string, models.Task]
}

// New builds a repository over store. hub may be nil when nobody listens.
func New(store *storage.Store, hub *events.Hub) *Repository {
	return &Repository{
		store:       store,
		hub:         hub,
		projectByID: cache.New[string, models.Project](lookupTTL),
		taskByID:    cache.New[string, models.Task](lookupTTL),
	}
}

// flush drops the lookup caches after any mutation.
func (r *Repository) flush() {
	r.projectByID.Flush()
	r.taskByID.Flush()
}

// computeProgress derives the progress percent for a project from the task
// collection: round(100 * done / owned), 0 when no owned task exists.
func computeProgress(p *models.Project, tasks []models.Task) int {
	byID := make(map[string]*models.Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	total, done := 0, 0
	for _, id := range p.Tasks {
		t, ok := byID[id]
		if !ok {
			continue
		}
		total++
		if t.Status == models.StatusDone {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// refreshProgress recomputes and stores progress on the project with the
// given id inside an already-loaded projects slice. Returns the new value
// and whether the project was found.
func refreshProgress(projects []models.Project, tasks []models.Task, projectID string, now time.Time) (int, bool) {
	for i := range projects {
		if projects[i].ID == projectID {
			progress := computeProgress(&projects[i], tasks)
			projects[i].Progress = progress
			projects[i].UpdatedAt = now
			return progress, true
		}
	}
	return 0, false
}
