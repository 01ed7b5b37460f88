package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"proker/internal/models"
)

// ExportDoc is the shape of an exported store.
type ExportDoc struct {
	User       *models.User     `json:"user"`
	Projects   []models.Project `json:"projects"`
	Tasks      []models.Task    `json:"tasks"`
	Settings   models.Settings  `json:"settings"`
	ExportedAt time.Time        `json:"exportedAt"`
}

// Export serializes the current store contents as a pretty-printed JSON
// document.
func (s *Store) Export() ([]byte, bool) {
	doc := ExportDoc{
		User:       s.CurrentUser(),
		Projects:   s.Projects(),
		Tasks:      s.Tasks(),
		Settings:   s.Settings(),
		ExportedAt: time.Now().UTC(),
	}
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Printf("storage: error exporting data: %v", err)
		return nil, false
	}
	return encoded, true
}

// importDoc keeps each field raw so a present-but-null field can be told
// apart from an absent one, and so nothing is applied before everything
// validated.
type importDoc struct {
	User     json.RawMessage `json:"user"`
	Projects json.RawMessage `json:"projects"`
	Tasks    json.RawMessage `json:"tasks"`
	Settings json.RawMessage `json:"settings"`
}

// Import applies an exported document. Any subset of the four top-level
// fields may be present; each present field overwrites the stored record
// wholesale. The whole import is all-or-nothing: a document that is not
// valid JSON, or whose fields do not decode, leaves the store untouched.
func (s *Store) Import(data []byte) bool {
	var doc importDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("storage: error importing data: %v", err)
		return false
	}

	type pending struct {
		key   string
		value any
	}
	var writes []pending

	if present(doc.User) {
		var user models.User
		if err := json.Unmarshal(doc.User, &user); err != nil {
			log.Printf("storage: import: bad user record: %v", err)
			return false
		}
		writes = append(writes, pending{KeyUser, &user})
	}
	if present(doc.Projects) {
		var projects []models.Project
		if err := json.Unmarshal(doc.Projects, &projects); err != nil {
			log.Printf("storage: import: bad projects collection: %v", err)
			return false
		}
		writes = append(writes, pending{KeyProjects, projects})
	}
	if present(doc.Tasks) {
		var tasks []models.Task
		if err := json.Unmarshal(doc.Tasks, &tasks); err != nil {
			log.Printf("storage: import: bad tasks collection: %v", err)
			return false
		}
		writes = append(writes, pending{KeyTasks, tasks})
	}
	if present(doc.Settings) {
		var settings models.Settings
		if err := json.Unmarshal(doc.Settings, &settings); err != nil {
			log.Printf("storage: import: bad settings record: %v", err)
			return false
		}
		writes = append(writes, pending{KeySettings, settings})
	}

	err := s.Update(func(tx *Store) error {
		for _, w := range writes {
			if !tx.Set(w.key, w.value) {
				return fmt.Errorf("import: write %q failed", w.key)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("storage: error importing data: %v", err)
		return false
	}
	return true
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
