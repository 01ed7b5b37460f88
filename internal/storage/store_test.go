package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"proker/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	return store
}

func TestGet_MissingKey(t *testing.T) {
	store := newTestStore(t)

	var out []models.Project
	require.False(t, store.Get(KeyProjects, &out))
}

func TestSetGet_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	projects := []models.Project{{ID: "p-1", Name: "Website", Team: []string{"1"}, Tasks: []string{}}}
	require.True(t, store.SetProjects(projects))

	var out []models.Project
	require.True(t, store.Get(KeyProjects, &out))
	require.Len(t, out, 1)
	require.Equal(t, "p-1", out[0].ID)
	require.Equal(t, "Website", out[0].Name)
}

func TestGet_UndecodableValue(t *testing.T) {
	store := newTestStore(t)

	// A scalar where a collection is expected fails to decode.
	require.True(t, store.Set(KeyProjects, "garbage"))

	var out []models.Project
	require.False(t, store.Get(KeyProjects, &out))
}

func TestSet_OverwritesExisting(t *testing.T) {
	store := newTestStore(t)

	require.True(t, store.Set(KeySettings, models.Settings{Theme: "light"}))
	require.True(t, store.Set(KeySettings, models.Settings{Theme: "dark"}))

	var out models.Settings
	require.True(t, store.Get(KeySettings, &out))
	require.Equal(t, "dark", out.Theme)
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)

	require.True(t, store.Set(KeyUser, models.User{ID: "u-1"}))
	require.True(t, store.Remove(KeyUser))
	require.Nil(t, store.CurrentUser())

	// Removing a missing key still succeeds.
	require.True(t, store.Remove(KeyUser))
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	store.Init()
	require.True(t, store.Set(KeyUser, models.User{ID: "u-1"}))

	require.True(t, store.Clear())
	require.Nil(t, store.CurrentUser())
	require.Empty(t, store.Projects())
	require.Empty(t, store.Tasks())
}

func TestInit_SeedsOnlyMissing(t *testing.T) {
	store := newTestStore(t)

	custom := []models.Project{{ID: "mine", Name: "Mine"}}
	require.True(t, store.SetProjects(custom))

	store.Init()

	projects := store.Projects()
	require.Len(t, projects, 1)
	require.Equal(t, "mine", projects[0].ID)

	// Tasks and settings were absent and got seeded.
	require.NotEmpty(t, store.Tasks())
	require.Equal(t, "light", store.Settings().Theme)
}

func TestSettings_DefaultWhenMissing(t *testing.T) {
	store := newTestStore(t)

	settings := store.Settings()
	require.Equal(t, "en", settings.Language)
	require.True(t, settings.Notifications)
}

func TestUpdateSettings_NilFieldsUnchanged(t *testing.T) {
	store := newTestStore(t)
	require.True(t, store.SetSettings(models.Settings{
		Theme:         "light",
		Notifications: true,
		Language:      "en",
		Timezone:      "UTC",
	}))

	dark := "dark"
	off := false
	require.True(t, store.UpdateSettings(models.SettingsPatch{Theme: &dark, Notifications: &off}))

	settings := store.Settings()
	require.Equal(t, "dark", settings.Theme)
	require.False(t, settings.Notifications)
	require.Equal(t, "en", settings.Language)
	require.Equal(t, "UTC", settings.Timezone)

	// An empty patch is a persisted no-op.
	require.True(t, store.UpdateSettings(models.SettingsPatch{}))
	require.Equal(t, settings, store.Settings())
}
