package navigator

import (
	"log"
	"strings"

	"proker/internal/router"
)

// SessionChecker reports whether the caller currently holds a valid session.
type SessionChecker interface {
	IsLoggedIn() bool
}

// Loader receives the resolved route once the guards have let it through.
// It stands in for the rendering layer; implementations must tolerate being
// handed the same route repeatedly.
type Loader interface {
	Load(route router.Resolved)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(route router.Resolved)

func (f LoaderFunc) Load(route router.Resolved) { f(route) }

// Navigator owns the addressable location and turns location changes into
// guarded route loads. Dependencies are injected; nothing here is ambient.
type Navigator struct {
	resolver *router.Resolver
	sessions SessionChecker
	loader   Loader

	location string
	current  router.Resolved
}

// New wires a navigator. The initial location is "/".
func New(resolver *router.Resolver, sessions SessionChecker, loader Loader) *Navigator {
	return &Navigator{
		resolver: resolver,
		sessions: sessions,
		loader:   loader,
		location: "/",
	}
}

// Navigate updates the addressable location and handles the change. This is
// the only way route changes are requested.
func (n *Navigator) Navigate(path string) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	n.location = path
	n.HandleRoute()
}

// Current returns the last route that passed the guards.
func (n *Navigator) Current() router.Resolved {
	return n.current
}

// HandleRoute resolves the current location, applies the guard policy and,
// unless a guard redirected, hands the route to the loader. Redirects
// re-enter resolution rather than short-circuiting. The handler is
// idempotent: re-running it for an unchanged location resolves to the same
// route and re-issues only the idempotent load.
func (n *Navigator) HandleRoute() {
	route := n.resolver.Parse(n.location)

	if n.resolver.IsProtected(route.Path) && !n.sessions.IsLoggedIn() {
		log.Printf("navigator: %s is protected, redirecting to /login", route.Path)
		n.Navigate("/login")
		return
	}
	if n.resolver.IsAuthOnly(route.Path) && n.sessions.IsLoggedIn() {
		log.Printf("navigator: %s is auth-only, redirecting to /dashboard", route.Path)
		n.Navigate("/dashboard")
		return
	}

	n.current = route
	n.loader.Load(route)
}
