package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_LiteralBeatsParameterized(t *testing.T) {
	r := New()

	// "/projects" must resolve to the list, never fall through to
	// "/projects/:id".
	route := r.Parse("/projects")
	require.Equal(t, RouteProjects, route.Name)
	require.Empty(t, route.Params)
}

func TestParse_ParameterExtraction(t *testing.T) {
	r := New()

	route := r.Parse("/tasks/42")
	require.Equal(t, RouteTaskDetail, route.Name)
	require.Equal(t, "/tasks/42", route.Path)
	require.Equal(t, map[string]string{"id": "42"}, route.Params)

	route = r.Parse("/projects/abc-123")
	require.Equal(t, RouteProjectDetail, route.Name)
	require.Equal(t, map[string]string{"id": "abc-123"}, route.Params)
}

func TestParse_Normalization(t *testing.T) {
	r := New()

	for _, raw := range []string{"projects", "/projects/", "//projects", "/projects//"} {
		route := r.Parse(raw)
		require.Equal(t, RouteProjects, route.Name, "raw path %q", raw)
		require.Equal(t, "/projects", route.Path, "raw path %q", raw)
	}

	route := r.Parse("")
	require.Equal(t, RouteDashboard, route.Name)
	require.Equal(t, "/", route.Path)
}

func TestParse_FallbackToDashboard(t *testing.T) {
	r := New()

	for _, raw := range []string{"/nope", "/projects/1/extra", "/tasks/1/comments/2"} {
		route := r.Parse(raw)
		require.Equal(t, RouteDashboard, route.Name, "raw path %q", raw)
		require.Equal(t, "/", route.Path)
		require.Empty(t, route.Params)
	}
}

func TestParse_EmptyParamSegmentDoesNotMatch(t *testing.T) {
	r := New()

	// "/tasks/" normalizes to "/tasks": the list, not a detail with an
	// empty id.
	route := r.Parse("/tasks/")
	require.Equal(t, RouteTasks, route.Name)
}

func TestIsProtected(t *testing.T) {
	r := New()

	require.True(t, r.IsProtected("/"))
	require.True(t, r.IsProtected("/dashboard"))
	require.True(t, r.IsProtected("/projects/7"))
	require.False(t, r.IsProtected("/login"))
	require.False(t, r.IsProtected("/register"))
	require.False(t, r.IsProtected("/forgot-password"))
	require.False(t, r.IsProtected("/onboarding"))
}

func TestIsAuthOnly(t *testing.T) {
	r := New()

	require.True(t, r.IsAuthOnly("/login"))
	require.True(t, r.IsAuthOnly("/register"))
	require.True(t, r.IsAuthOnly("/forgot-password"))
	require.False(t, r.IsAuthOnly("/onboarding"))
	require.False(t, r.IsAuthOnly("/dashboard"))
}
