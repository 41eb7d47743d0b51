// Package middleware provides HTTP middleware composition and the
// cross-cutting handlers applied to every request.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes registered middleware around a root handler.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	middleware []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &stack{}
}

// Use registers middleware. The first registered middleware is outermost.
func (s *stack) Use(mw Middleware) {
	s.middleware = append(s.middleware, mw)
}

// Apply wraps the handler with all registered middleware.
func (s *stack) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.middleware) - 1; i >= 0; i-- {
		wrapped = s.middleware[i](wrapped)
	}
	return wrapped
}
