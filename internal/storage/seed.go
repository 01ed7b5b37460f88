package storage

import (
	"time"

	"proker/internal/models"
)

// Init seeds default data for any of the three collection records that are
// missing. The user and session records are left to the auth flow.
func (s *Store) Init() {
	if !s.Get(KeyProjects, new([]models.Project)) {
		s.SetProjects(DefaultProjects())
	}
	if !s.Get(KeyTasks, new([]models.Task)) {
		s.SetTasks(DefaultTasks())
	}
	if !s.Get(KeySettings, new(models.Settings)) {
		s.SetSettings(DefaultSettings())
	}
}

func datePtr(t time.Time) *time.Time { return &t }

// DefaultProjects returns the starter projects shown on first run.
func DefaultProjects() []models.Project {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	return []models.Project{
		{
			ID:          "1",
			Name:        "Mobile App Redesign",
			Description: "Redesigning the user interface for better UX",
			Status:      models.ProjectActive,
			Priority:    models.PriorityHigh,
			Progress:    0,
			Owner:       "1",
			Team:        []string{"1", "2", "3"},
			Tasks:       []string{"1", "2", "3"},
			StartDate:   jan15,
			Deadline:    datePtr(time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC)),
			CreatedAt:   jan15,
			UpdatedAt:   feb1,
		},
		{
			ID:          "2",
			Name:        "Website Development",
			Description: "Building new company website with CMS",
			Status:      models.ProjectActive,
			Priority:    models.PriorityHigh,
			Progress:    0,
			Owner:       "1",
			Team:        []string{"1", "2"},
			Tasks:       []string{},
			StartDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			Deadline:    datePtr(time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)),
			CreatedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   feb1,
		},
		{
			ID:          "3",
			Name:        "Marketing Campaign",
			Description: "Q1 social media marketing campaign",
			Status:      models.ProjectPlanning,
			Priority:    models.PriorityMedium,
			Progress:    0,
			Owner:       "1",
			Team:        []string{"1", "3"},
			Tasks:       []string{},
			StartDate:   feb1,
			Deadline:    datePtr(time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)),
			CreatedAt:   time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC),
		},
	}
}

// DefaultTasks returns the starter tasks owned by the first default project.
func DefaultTasks() []models.Task {
	now := time.Now()
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return []models.Task{
		{
			ID:          "1",
			ProjectID:   "1",
			Title:       "Complete wireframes for homepage",
			Description: "Create detailed wireframes for the new homepage design",
			Status:      models.StatusTodo,
			Priority:    models.PriorityHigh,
			Assignee:    "1",
			CreatedBy:   "1",
			DueDate:     datePtr(now.Add(24 * time.Hour)),
			Comments:    []models.Comment{},
			CreatedAt:   jan15,
			UpdatedAt:   jan15,
		},
		{
			ID:          "2",
			ProjectID:   "1",
			Title:       "Review API documentation",
			Description: "Review and update API documentation for v2.0",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityMedium,
			Assignee:    "2",
			CreatedBy:   "1",
			DueDate:     datePtr(now.Add(48 * time.Hour)),
			Comments:    []models.Comment{},
			CreatedAt:   jan15.Add(24 * time.Hour),
			UpdatedAt:   jan15.Add(24 * time.Hour),
		},
		{
			ID:          "3",
			ProjectID:   "1",
			Title:       "Client presentation preparation",
			Description: "Prepare slides and demo for client presentation",
			Status:      models.StatusTodo,
			Priority:    models.PriorityHigh,
			Assignee:    "1",
			CreatedBy:   "1",
			DueDate:     datePtr(now.Add(72 * time.Hour)),
			Comments:    []models.Comment{},
			CreatedAt:   jan15.Add(48 * time.Hour),
			UpdatedAt:   jan15.Add(48 * time.Hour),
		},
	}
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() models.Settings {
	return models.Settings{
		Theme:         "light",
		Notifications: true,
		Language:      "en",
		Timezone:      "UTC",
	}
}
