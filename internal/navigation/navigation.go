// Package navigation defines the dashboard's routes, the Navigator contract the
// session store uses to move between them, and the route guard decision.
package navigation

import (
	"sync"

	"github.com/thenoetrevino/devyntra/internal/models"
)

// Route identifies a dashboard screen
type Route string

const (
	RouteLogin     Route = "/login"
	RouteSignup    Route = "/signup"
	RouteDashboard Route = "/dashboard"
)

// Protected reports whether a route requires an active session
func (r Route) Protected() bool {
	return r == RouteDashboard
}

// Navigator moves the user to a route
type Navigator interface {
	Navigate(route Route)
}

// NavigatorFunc adapts a function to the Navigator interface
type NavigatorFunc func(Route)

// Navigate calls f(route)
func (f NavigatorFunc) Navigate(route Route) {
	f(route)
}

// Noop is a Navigator that goes nowhere. Used by the CLI, which has no screens.
var Noop Navigator = NavigatorFunc(func(Route) {})

// Router tracks the current route. It is shared by pointer between the session
// manager (which navigates on login/logout) and the dashboard (which renders it).
type Router struct {
	mu      sync.Mutex
	current Route
	history []Route
}

// NewRouter creates a router positioned at start
func NewRouter(start Route) *Router {
	return &Router{current: start}
}

// Navigate switches to route, recording the previous one
func (r *Router) Navigate(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == route {
		return
	}
	r.history = append(r.history, r.current)
	r.current = route
}

// Current returns the active route
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns the routes visited before the current one, oldest first
func (r *Router) History() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Route(nil), r.history...)
}

// Decision is the outcome of the route guard
type Decision int

const (
	// Render means the protected content may be shown
	Render Decision = iota
	// Placeholder means the session check has not finished yet
	Placeholder
	// RedirectToLogin means there is no session
	RedirectToLogin
)

// Guard decides what a protected screen should do given the session store state.
// While loading it asks for a placeholder; once loaded a missing session redirects.
func Guard(loading bool, session *models.Session) Decision {
	if loading {
		return Placeholder
	}
	if session == nil {
		return RedirectToLogin
	}
	return Render
}
