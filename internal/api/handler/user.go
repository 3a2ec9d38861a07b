// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"user-registry/internal/api/validation"
	"user-registry/internal/domain"
	"user-registry/internal/response"
	"user-registry/internal/service"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 60 * time.Second

// UserHandler is the thin adapter between HTTP requests and the user
// service; it extracts validated primitives and writes envelopes verbatim.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// GetAll handles GET /users.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.logger, h.service.FindAll(r.Context()))
}

// GetByID handles GET /users/{id}.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := validation.IDFromContext(r.Context())
	writeEnvelope(w, h.logger, h.service.FindByID(r.Context(), id))
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := validation.BodyFromContext[validation.CreateUserRequest](r.Context())
	in := domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}
	writeEnvelope(w, h.logger, h.service.Create(r.Context(), in))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := validation.IDFromContext(r.Context())
	req := validation.BodyFromContext[validation.UpdateUserRequest](r.Context())
	in := domain.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}
	writeEnvelope(w, h.logger, h.service.Update(r.Context(), id, in))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := validation.IDFromContext(r.Context())
	writeEnvelope(w, h.logger, h.service.Delete(r.Context(), id))
}

// writeEnvelope serializes a service envelope as the transport response.
// An envelope without a status code means the service produced nothing
// usable; it is degraded to a generic 500. A 204 carries no body per HTTP.
func writeEnvelope[T any](w http.ResponseWriter, logger *slog.Logger, res response.ServiceResponse[T]) {
	if res.StatusCode == 0 {
		res = response.Failure[T]("An unexpected error occurred", http.StatusInternalServerError)
	}
	if res.StatusCode == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	payload, err := json.Marshal(res)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(payload)
}
