package navigator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"proker/internal/router"
)

type fakeSession struct {
	loggedIn bool
}

func (f *fakeSession) IsLoggedIn() bool { return f.loggedIn }

type recordingLoader struct {
	loads []router.Resolved
}

func (l *recordingLoader) Load(route router.Resolved) {
	l.loads = append(l.loads, route)
}

func TestNavigate_UnauthenticatedRedirectsToLogin(t *testing.T) {
	loader := &recordingLoader{}
	nav := New(router.New(), &fakeSession{loggedIn: false}, loader)

	nav.Navigate("/dashboard")

	// The original route is never loaded; only the login screen is.
	require.Len(t, loader.loads, 1)
	require.Equal(t, router.RouteLogin, loader.loads[0].Name)
	require.Equal(t, router.RouteLogin, nav.Current().Name)
}

func TestNavigate_AuthenticatedRedirectedOffAuthPages(t *testing.T) {
	loader := &recordingLoader{}
	nav := New(router.New(), &fakeSession{loggedIn: true}, loader)

	nav.Navigate("/login")

	require.Len(t, loader.loads, 1)
	require.Equal(t, router.RouteDashboard, loader.loads[0].Name)
}

func TestNavigate_PassesParamsThrough(t *testing.T) {
	loader := &recordingLoader{}
	nav := New(router.New(), &fakeSession{loggedIn: true}, loader)

	nav.Navigate("projects/42") // missing leading slash is added

	require.Len(t, loader.loads, 1)
	require.Equal(t, router.RouteProjectDetail, loader.loads[0].Name)
	require.Equal(t, "42", loader.loads[0].Params["id"])
}

func TestNavigate_OnboardingAllowedWhileLoggedOut(t *testing.T) {
	loader := &recordingLoader{}
	nav := New(router.New(), &fakeSession{loggedIn: false}, loader)

	nav.Navigate("/onboarding")

	require.Len(t, loader.loads, 1)
	require.Equal(t, router.RouteOnboarding, loader.loads[0].Name)
}

func TestHandleRoute_IdempotentUnderRepeatedInvocation(t *testing.T) {
	loader := &recordingLoader{}
	nav := New(router.New(), &fakeSession{loggedIn: true}, loader)

	nav.Navigate("/tasks")
	nav.HandleRoute()
	nav.HandleRoute()

	// Redundant notifications re-issue the same load and nothing else.
	require.Len(t, loader.loads, 3)
	for _, load := range loader.loads {
		require.Equal(t, router.RouteTasks, load.Name)
	}
	require.Equal(t, router.RouteTasks, nav.Current().Name)
}
