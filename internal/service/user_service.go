// internal/service/user_service.go
package service

import (
	"context"
	"log/slog"
	"net/http"

	"user-registry/internal/domain"
	"user-registry/internal/repository"
	"user-registry/internal/response"
	"user-registry/internal/util"
)

// UserService defines the interface for user-related business logic.
// Every method returns a complete response envelope; no error ever escapes
// this layer, so the transport adapters above write envelopes verbatim.
type UserService interface {
	FindAll(ctx context.Context) response.ServiceResponse[[]domain.User]
	FindByID(ctx context.Context, id int64) response.ServiceResponse[domain.User]
	Create(ctx context.Context, in domain.CreateUserInput) response.ServiceResponse[domain.User]
	Update(ctx context.Context, id int64, in domain.UpdateUserInput) response.ServiceResponse[domain.User]
	Delete(ctx context.Context, id int64) response.ServiceResponse[struct{}]
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor // e.g. *sqlx.DB
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// FindAll retrieves all users.
func (s *userService) FindAll(ctx context.Context) response.ServiceResponse[[]domain.User] {
	users, err := s.userRepo.FindAll(ctx, s.dbExecutor)
	if err != nil {
		s.logger.Error("Error finding all users", "error", err)
		return response.Failure[[]domain.User]("An error occurred while retrieving users.", http.StatusInternalServerError)
	}
	if len(users) == 0 {
		return response.Failure[[]domain.User]("No Users found", http.StatusNotFound)
	}
	return response.Success("Users found", &users, http.StatusOK)
}

// FindByID retrieves a single user by identifier.
func (s *userService) FindByID(ctx context.Context, id int64) response.ServiceResponse[domain.User] {
	user, err := s.userRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return response.Failure[domain.User]("User not found", http.StatusNotFound)
		}
		s.logger.Error("Error finding user", "id", id, "error", err)
		return response.Failure[domain.User]("An error occurred while finding user.", http.StatusInternalServerError)
	}
	return response.Success("User found", user, http.StatusOK)
}

// Create inserts a new user after checking that the email is not already in
// use. The check scans the full user set; the database unique constraint is
// only a last-resort guard.
func (s *userService) Create(ctx context.Context, in domain.CreateUserInput) response.ServiceResponse[domain.User] {
	users, err := s.userRepo.FindAll(ctx, s.dbExecutor)
	if err != nil {
		s.logger.Error("Error checking existing emails", "error", err)
		return response.Failure[domain.User]("An error occurred while creating user.", http.StatusInternalServerError)
	}
	for i := range users {
		if users[i].Email == in.Email {
			return response.Failure[domain.User]("Email already in use", http.StatusConflict)
		}
	}

	created, err := s.userRepo.Create(ctx, s.dbExecutor, in)
	if err != nil {
		s.logger.Error("Error creating user", "email", in.Email, "error", err)
		return response.Failure[domain.User]("An error occurred while creating user.", http.StatusInternalServerError)
	}
	return response.Success("User created successfully", created, http.StatusCreated)
}

// Update applies a partial update after existence and email-uniqueness
// checks. A user may re-submit their own unchanged email; the uniqueness
// check excludes the record being updated.
func (s *userService) Update(ctx context.Context, id int64, in domain.UpdateUserInput) response.ServiceResponse[domain.User] {
	existing, err := s.userRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return response.Failure[domain.User]("User not found", http.StatusNotFound)
		}
		s.logger.Error("Error loading user for update", "id", id, "error", err)
		return response.Failure[domain.User]("An error occurred while updating user.", http.StatusInternalServerError)
	}

	if in.Email != nil && *in.Email != existing.Email {
		users, err := s.userRepo.FindAll(ctx, s.dbExecutor)
		if err != nil {
			s.logger.Error("Error checking existing emails", "id", id, "error", err)
			return response.Failure[domain.User]("An error occurred while updating user.", http.StatusInternalServerError)
		}
		for i := range users {
			if users[i].ID != id && users[i].Email == *in.Email {
				return response.Failure[domain.User]("Email already in use", http.StatusConflict)
			}
		}
	}

	updated, err := s.userRepo.Update(ctx, s.dbExecutor, id, in)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return response.Failure[domain.User]("Failed to update user", http.StatusInternalServerError)
		}
		s.logger.Error("Error updating user", "id", id, "error", err)
		return response.Failure[domain.User]("An error occurred while updating user.", http.StatusInternalServerError)
	}
	return response.Success("User updated successfully", updated, http.StatusOK)
}

// Delete removes a user after an existence check. Success carries no payload.
func (s *userService) Delete(ctx context.Context, id int64) response.ServiceResponse[struct{}] {
	_, err := s.userRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return response.Failure[struct{}]("User not found", http.StatusNotFound)
		}
		s.logger.Error("Error loading user for delete", "id", id, "error", err)
		return response.Failure[struct{}]("An error occurred while deleting user.", http.StatusInternalServerError)
	}

	deleted, err := s.userRepo.Delete(ctx, s.dbExecutor, id)
	if err != nil {
		s.logger.Error("Error deleting user", "id", id, "error", err)
		return response.Failure[struct{}]("An error occurred while deleting user.", http.StatusInternalServerError)
	}
	if !deleted {
		return response.Failure[struct{}]("Failed to delete user", http.StatusInternalServerError)
	}
	return response.Success[struct{}]("User deleted successfully", nil, http.StatusNoContent)
}
