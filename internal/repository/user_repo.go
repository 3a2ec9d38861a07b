// internal/repository/user_repo.go
package repository

import (
	"context"

	"user-registry/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindAll retrieves every user row; an empty table yields an empty slice.
	FindAll(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// FindByID retrieves a user by ID, or util.ErrNotFound if no row matches.
	FindByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// Create inserts a new user and returns the full row as persisted.
	Create(ctx context.Context, q DBExecutor, in domain.CreateUserInput) (*domain.User, error)
	// Update applies the supplied field diffs to the user with the given ID
	// and returns the updated row. util.ErrNotFound is returned when no row
	// was affected. An empty input behaves as a plain read.
	Update(ctx context.Context, q DBExecutor, id int64, in domain.UpdateUserInput) (*domain.User, error)
	// Delete removes the user with the given ID, reporting whether a row was
	// actually deleted.
	Delete(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
