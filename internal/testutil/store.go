package testutil

import (
	"proker/internal/storage"
)

// NewInMemoryStore opens an in-memory SQLite-backed store with migrations
// run and no seeded data.
func NewInMemoryStore() (*storage.Store, error) {
	return storage.Open(":memory:")
}
