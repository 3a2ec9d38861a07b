// internal/api/router_test.go
package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	api "user-registry/internal/api"
	"user-registry/internal/api/handler"
	"user-registry/internal/domain"
	"user-registry/internal/response"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindAll(ctx context.Context) response.ServiceResponse[[]domain.User] {
	args := m.Called(ctx)
	return args.Get(0).(response.ServiceResponse[[]domain.User])
}

func (m *MockUserService) FindByID(ctx context.Context, id int64) response.ServiceResponse[domain.User] {
	args := m.Called(ctx, id)
	return args.Get(0).(response.ServiceResponse[domain.User])
}

func (m *MockUserService) Create(ctx context.Context, in domain.CreateUserInput) response.ServiceResponse[domain.User] {
	args := m.Called(ctx, in)
	return args.Get(0).(response.ServiceResponse[domain.User])
}

func (m *MockUserService) Update(ctx context.Context, id int64, in domain.UpdateUserInput) response.ServiceResponse[domain.User] {
	args := m.Called(ctx, id, in)
	return args.Get(0).(response.ServiceResponse[domain.User])
}

func (m *MockUserService) Delete(ctx context.Context, id int64) response.ServiceResponse[struct{}] {
	args := m.Called(ctx, id)
	return args.Get(0).(response.ServiceResponse[struct{}])
}

func newTestRouter(svc *MockUserService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return api.NewRouter(handler.NewUserHandler(svc, logger), logger)
}

func TestGetAllUsers(t *testing.T) {
	svc := new(MockUserService)
	users := []domain.User{{ID: 1, Name: "Ann", Email: "ann@x.com"}}
	svc.On("FindAll", mock.Anything).Return(response.Success("Users found", &users, http.StatusOK))

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env struct {
		Success        bool          `json:"success"`
		Message        string        `json:"message"`
		ResponseObject []domain.User `json:"responseObject"`
		StatusCode     int           `json:"statusCode"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "Users found", env.Message)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	require.Len(t, env.ResponseObject, 1)
	assert.Equal(t, "ann@x.com", env.ResponseObject[0].Email)
}

func TestGetUserByIDInvalidID(t *testing.T) {
	svc := new(MockUserService)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid input")
	// Validation short-circuits; the service layer must never be reached.
	svc.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreateUserPassesDecodedBody(t *testing.T) {
	svc := new(MockUserService)
	created := domain.User{ID: 1, Name: "Ann", Email: "ann@x.com"}
	age := int64(30)
	svc.On("Create", mock.Anything, domain.CreateUserInput{Name: "Ann", Email: "ann@x.com", Age: &age}).
		Return(response.Success("User created successfully", &created, http.StatusCreated))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Ann","email":"ann@x.com","age":30}`))
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateUserRejectsEmptyBody(t *testing.T) {
	svc := new(MockUserService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(`{}`))
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUserWritesNoBody(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Delete", mock.Anything, int64(1)).
		Return(response.Success[struct{}]("User deleted successfully", nil, http.StatusNoContent))

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestZeroEnvelopeDegradesToGeneric500(t *testing.T) {
	svc := new(MockUserService)
	svc.On("FindAll", mock.Anything).Return(response.ServiceResponse[[]domain.User]{})

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestOpenAPIDocumentIsServed(t *testing.T) {
	svc := new(MockUserService)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/users")
	assert.Contains(t, paths, "/users/{id}")
}

func TestHealthEndpoint(t *testing.T) {
	svc := new(MockUserService)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
