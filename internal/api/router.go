// internal/api/router.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"user-registry/internal/api/docs"
	"user-registry/internal/api/handler"
	"user-registry/internal/api/validation"
)

// Route binds an HTTP verb+path to its validation middleware and handler.
// The same table drives both chi registration and the OpenAPI document.
type Route struct {
	Method      string
	Pattern     string
	Summary     string
	Middlewares []func(http.Handler) http.Handler
	Handler     http.HandlerFunc
}

// Routes declares the full user API surface.
func Routes(userHandler *handler.UserHandler) []Route {
	return []Route{
		{http.MethodGet, "/users", "List all users", nil, userHandler.GetAll},
		{http.MethodGet, "/users/{id}", "Get a user by id",
			[]func(http.Handler) http.Handler{validation.ID}, userHandler.GetByID},
		{http.MethodPost, "/users", "Create a user",
			[]func(http.Handler) http.Handler{validation.Body[validation.CreateUserRequest]()}, userHandler.Create},
		{http.MethodPut, "/users/{id}", "Update a user",
			[]func(http.Handler) http.Handler{validation.ID, validation.Body[validation.UpdateUserRequest]()}, userHandler.Update},
		{http.MethodDelete, "/users/{id}", "Delete a user",
			[]func(http.Handler) http.Handler{validation.ID}, userHandler.Delete},
	}
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(userHandler *handler.UserHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	routes := Routes(userHandler)
	for _, rt := range routes {
		r.With(rt.Middlewares...).Method(rt.Method, rt.Pattern, rt.Handler)
	}

	mountDocs(r, routes, logger)

	return r
}

// mountDocs serves the OpenAPI document generated from the declared routes.
func mountDocs(r chi.Router, routes []Route, logger *slog.Logger) {
	ops := make([]docs.Operation, 0, len(routes))
	for _, rt := range routes {
		ops = append(ops, docs.Operation{
			Method:  rt.Method,
			Path:    rt.Pattern,
			Summary: rt.Summary,
		})
	}

	doc, err := docs.Document(ops)
	if err != nil {
		logger.Error("Failed to build OpenAPI document", "error", err)
		return
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		logger.Error("Failed to marshal OpenAPI document", "error", err)
		return
	}

	r.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	})
}
