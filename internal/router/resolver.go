package router

import (
	"strings"
)

// RouteName is the closed set of logical routes. Rendering collaborators
// switch over these exhaustively instead of matching raw path strings.
type RouteName string

const (
	RouteDashboard      RouteName = "dashboard"
	RouteProjects       RouteName = "projects"
	RouteProjectDetail  RouteName = "project-detail"
	RouteTasks          RouteName = "tasks"
	RouteTaskDetail     RouteName = "task-detail"
	RouteProfile        RouteName = "profile"
	RouteSettings       RouteName = "settings"
	RouteLogin          RouteName = "login"
	RouteRegister       RouteName = "register"
	RouteForgotPassword RouteName = "forgot-password"
	RouteOnboarding     RouteName = "onboarding"
)

// Resolved is the outcome of parsing a raw path: the normalized path, the
// matched route, and the extracted parameters.
type Resolved struct {
	Path   string
	Name   RouteName
	Params map[string]string
}

// pattern is one entry of the route table: pre-split template segments
// (":name" segments bind parameters) and the route they map to.
type pattern struct {
	segments []string
	name     RouteName
}

// Resolver matches normalized paths against an ordered pattern table.
// Patterns are tried in declaration order and the first match wins, so
// literal routes must be declared before parameterized ones would shadow
// them — the table below never falls through `/projects` to `/projects/:id`
// because segment counts differ, but order still decides ties.
type Resolver struct {
	table []pattern
}

// defaultTable mirrors the addressable-location surface of the app.
var defaultTable = []struct {
	template string
	name     RouteName
}{
	{"/", RouteDashboard},
	{"/dashboard", RouteDashboard},
	{"/projects", RouteProjects},
	{"/projects/:id", RouteProjectDetail},
	{"/tasks", RouteTasks},
	{"/tasks/:id", RouteTaskDetail},
	{"/profile", RouteProfile},
	{"/settings", RouteSettings},
	{"/login", RouteLogin},
	{"/register", RouteRegister},
	{"/forgot-password", RouteForgotPassword},
	{"/onboarding", RouteOnboarding},
}

// publicPaths need no authentication.
var publicPaths = map[string]bool{
	"/login":           true,
	"/register":        true,
	"/forgot-password": true,
	"/onboarding":      true,
}

// authOnlyPaths are meant only for unauthenticated users.
var authOnlyPaths = map[string]bool{
	"/login":           true,
	"/register":        true,
	"/forgot-password": true,
}

// New returns a resolver over the application route table.
func New() *Resolver {
	r := &Resolver{}
	for _, entry := range defaultTable {
		r.table = append(r.table, pattern{
			segments: splitPath(entry.template),
			name:     entry.name,
		})
	}
	return r
}

// splitPath breaks a path into its non-empty segments. "/" yields nil.
func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// Normalize collapses a raw path to its canonical form: non-empty segments
// rejoined with a single leading slash.
func Normalize(raw string) string {
	return "/" + strings.Join(splitPath(raw), "/")
}

// Parse resolves a raw path. Resolution never fails: when no pattern
// matches, the fixed default route (dashboard at "/") is returned.
func (r *Resolver) Parse(raw string) Resolved {
	segments := splitPath(raw)
	path := "/" + strings.Join(segments, "/")

	for _, p := range r.table {
		params, ok := match(p.segments, segments)
		if ok {
			return Resolved{Path: path, Name: p.name, Params: params}
		}
	}
	return Resolved{Path: "/", Name: RouteDashboard, Params: map[string]string{}}
}

// match tests one pattern: segment counts must agree, literal segments must
// match exactly, and ":name" segments bind any non-empty value positionally.
func match(template, segments []string) (map[string]string, bool) {
	if len(template) != len(segments) {
		return nil, false
	}
	params := map[string]string{}
	for i, t := range template {
		if strings.HasPrefix(t, ":") {
			params[t[1:]] = segments[i]
			continue
		}
		if t != segments[i] {
			return nil, false
		}
	}
	return params, true
}

// IsProtected reports whether the path requires authentication. Everything
// outside the fixed public allow-list is protected.
func (r *Resolver) IsProtected(path string) bool {
	return !publicPaths[Normalize(path)]
}

// IsAuthOnly reports whether the path is intended only for unauthenticated
// users (the login, register and forgot-password screens).
func (r *Resolver) IsAuthOnly(path string) bool {
	return authOnlyPaths[Normalize(path)]
}
