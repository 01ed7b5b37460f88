package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"proker/internal/models"
)

func TestExportImport_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	store.Init()
	require.True(t, store.SetCurrentUser(&models.User{ID: "u-1", Name: "Alice", Email: "alice@example.com"}))

	data, ok := store.Export()
	require.True(t, ok)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "exportedAt")

	fresh := newTestStore(t)
	require.True(t, fresh.Import(data))

	require.Equal(t, store.Projects(), fresh.Projects())
	require.Equal(t, store.Tasks(), fresh.Tasks())
	require.Equal(t, store.Settings(), fresh.Settings())
	require.Equal(t, "alice@example.com", fresh.CurrentUser().Email)
}

func TestImport_MalformedJSON(t *testing.T) {
	store := newTestStore(t)
	require.False(t, store.Import([]byte("{not json")))
}

func TestImport_PartialDocument(t *testing.T) {
	store := newTestStore(t)
	store.Init()
	before := store.Tasks()

	doc := []byte(`{"projects": [{"id": "p-9", "name": "Imported"}]}`)
	require.True(t, store.Import(doc))

	projects := store.Projects()
	require.Len(t, projects, 1)
	require.Equal(t, "p-9", projects[0].ID)

	// Absent fields are left alone.
	require.Equal(t, before, store.Tasks())
}

func TestImport_AllOrNothing(t *testing.T) {
	store := newTestStore(t)
	store.Init()
	before := store.Projects()

	// Valid projects field, undecodable tasks field: nothing is applied.
	doc := []byte(`{"projects": [{"id": "p-9"}], "tasks": "not-a-list"}`)
	require.False(t, store.Import(doc))
	require.Equal(t, before, store.Projects())
}
