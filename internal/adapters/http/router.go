// Package http provides the inbound HTTP adapter: the /api/todos routes,
// health and metrics endpoints, and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
)

const (
	msgRouteNotFound    = "Route not found"
	msgMethodNotAllowed = "Method not allowed"
)

// Routes groups the handlers mounted by NewRouter. Metrics is optional and
// mounted at /metrics when set.
type Routes struct {
	Todos   *handlers.TodoHandler
	Health  *handlers.HealthHandler
	Metrics http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteJSON(w, req, http.StatusNotFound, dto.Envelope{Status: dto.StatusFailure, Message: msgRouteNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteJSON(w, req, http.StatusMethodNotAllowed, dto.Envelope{Status: dto.StatusFailure, Message: msgMethodNotAllowed})
	})

	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	if routes.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", routes.Metrics)
	}

	r.Route("/api/todos", func(r chi.Router) {
		r.Get("/", routes.Todos.ListTodos)
		r.Post("/", routes.Todos.CreateTodo)

		r.Route("/{"+handlers.TodoIDParam+"}", func(r chi.Router) {
			r.Get("/", routes.Todos.GetTodo)
			r.Put("/", routes.Todos.UpdateTodoTitle)
			r.Patch("/", routes.Todos.UpdateTodoStatus)
			r.Delete("/", routes.Todos.DeleteTodo)
		})
	})

	return r
}
