package models

import (
	"time"
)

// Preferences holds per-user display preferences.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// User represents the current user record.
// PasswordHash is a bcrypt hash; the store is local, so it travels with the
// record rather than living in a separate credential table.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         string      `json:"role"`
	Avatar       string      `json:"avatar"`
	PasswordHash string      `json:"passwordHash,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	Preferences  Preferences `json:"preferences"`
}

// Session is the persisted session record.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Settings is the persisted application settings record.
type Settings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
	Timezone      string `json:"timezone"`
}

// SettingsPatch is a partial update for settings; nil fields are unchanged.
type SettingsPatch struct {
	Theme         *string `json:"theme,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	Language      *string `json:"language,omitempty"`
	Timezone      *string `json:"timezone,omitempty"`
}

// Apply merges the patch into the settings field by field.
func (patch SettingsPatch) Apply(s *Settings) {
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.Notifications != nil {
		s.Notifications = *patch.Notifications
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	if patch.Timezone != nil {
		s.Timezone = *patch.Timezone
	}
}
