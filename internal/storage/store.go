package storage

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"proker/internal/models"
)

// Storage keys. All durable state lives under these five records.
const (
	KeyUser     = "proker_user"
	KeyProjects = "proker_projects"
	KeyTasks    = "proker_tasks"
	KeySettings = "proker_settings"
	KeySession  = "proker_session"
)

var allKeys = []string{KeyUser, KeyProjects, KeyTasks, KeySettings, KeySession}

// kvEntry is one persisted record: a key and its JSON-encoded value.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;not null"`
}

// TableName specifies the table name for the key-value entries
func (kvEntry) TableName() string {
	return "kv_entries"
}

// Store is a string-keyed JSON document store backed by SQLite.
// It is the only component that touches the durable medium; every other
// package operates on decoded in-memory structures. Failures are absorbed:
// callers see booleans, never errors.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at dsn and runs
// migrations. Use ":memory:" for an ephemeral store.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required).
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get decodes the value stored under key into dest. A missing key or a value
// that fails to decode yields false; the failure is logged, never raised.
func (s *Store) Get(key string, dest any) bool {
	var entry kvEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: error reading %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		log.Printf("storage: error decoding %q: %v", key, err)
		return false
	}
	return true
}

// Set serializes value and upserts it under key. Returns false if
// serialization or the write fails; prior state is left untouched.
func (s *Store) Set(key string, value any) bool {
	encoded, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: error encoding %q: %v", key, err)
		return false
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&kvEntry{Key: key, Value: string(encoded)}).Error
	if err != nil {
		log.Printf("storage: error writing %q: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the record under key. Removing a missing key succeeds.
func (s *Store) Remove(key string) bool {
	if err := s.db.Delete(&kvEntry{}, "key = ?", key).Error; err != nil {
		log.Printf("storage: error removing %q: %v", key, err)
		return false
	}
	return true
}

// Clear removes all five application records.
func (s *Store) Clear() bool {
	if err := s.db.Delete(&kvEntry{}, "key IN ?", allKeys).Error; err != nil {
		log.Printf("storage: error clearing store: %v", err)
		return false
	}
	return true
}

// Update runs fn inside a single SQLite transaction. Repository mutations go
// through here so each read-modify-write on a collection is atomic.
func (s *Store) Update(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Typed accessors over the fixed records.

// Projects returns the projects collection, or an empty slice.
func (s *Store) Projects() []models.Project {
	var projects []models.Project
	if !s.Get(KeyProjects, &projects) {
		return []models.Project{}
	}
	return projects
}

// SetProjects persists the projects collection wholesale.
func (s *Store) SetProjects(projects []models.Project) bool {
	return s.Set(KeyProjects, projects)
}

// Tasks returns the tasks collection, or an empty slice.
func (s *Store) Tasks() []models.Task {
	var tasks []models.Task
	if !s.Get(KeyTasks, &tasks) {
		return []models.Task{}
	}
	return tasks
}

// SetTasks persists the tasks collection wholesale.
func (s *Store) SetTasks(tasks []models.Task) bool {
	return s.Set(KeyTasks, tasks)
}

// CurrentUser returns the stored user record, or nil when absent.
func (s *Store) CurrentUser() *models.User {
	var user models.User
	if !s.Get(KeyUser, &user) {
		return nil
	}
	return &user
}

// SetCurrentUser persists the user record.
func (s *Store) SetCurrentUser(user *models.User) bool {
	return s.Set(KeyUser, user)
}

// Session returns the stored session record, or nil when absent.
func (s *Store) Session() *models.Session {
	var session models.Session
	if !s.Get(KeySession, &session) {
		return nil
	}
	return &session
}

// SetSession persists the session record.
func (s *Store) SetSession(session *models.Session) bool {
	return s.Set(KeySession, session)
}

// Settings returns the stored settings, falling back to defaults.
func (s *Store) Settings() models.Settings {
	var settings models.Settings
	if !s.Get(KeySettings, &settings) {
		return DefaultSettings()
	}
	return settings
}

// SetSettings persists the settings record.
func (s *Store) SetSettings(settings models.Settings) bool {
	return s.Set(KeySettings, settings)
}

// UpdateSettings merges patch over the stored settings and persists the
// result. Nil patch fields leave the stored values untouched.
func (s *Store) UpdateSettings(patch models.SettingsPatch) bool {
	settings := s.Settings()
	patch.Apply(&settings)
	return s.SetSettings(settings)
}
