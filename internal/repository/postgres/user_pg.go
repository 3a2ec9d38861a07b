// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"user-registry/internal/domain"
	"user-registry/internal/repository"
	"user-registry/internal/util"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
// Infrastructure errors are logged here with context and then propagated
// unchanged; translating them into API responses is the service's job.
type UserRepository struct {
	logger *slog.Logger
}

// NewUserRepository creates a new UserRepository.
// The database handle is not stored; methods receive a DBExecutor directly.
func NewUserRepository(logger *slog.Logger) repository.UserRepository {
	return &UserRepository{logger: logger}
}

// FindAll retrieves all users using the provided DBExecutor.
func (r *UserRepository) FindAll(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, name, email, age, created_at, updated_at FROM users`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		r.logger.Error("Failed to select users", "error", err)
		return nil, fmt.Errorf("failed to find all users: %w", err)
	}
	return users, nil
}

// FindByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) FindByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, name, email, age, created_at, updated_at FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		r.logger.Error("Failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// Create inserts a new user and re-reads the row by its assigned ID.
// The unique constraint on email is a secondary safety net; a violation here
// surfaces as a propagated database error.
func (r *UserRepository) Create(ctx context.Context, q repository.DBExecutor, in domain.CreateUserInput) (*domain.User, error) {
	user := domain.NewUser(in.Name, in.Email, in.Age)
	query := `INSERT INTO users (name, email, age, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Name, user.Email, user.Age, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		r.logger.Error("Failed to insert user", "email", in.Email, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return r.FindByID(ctx, q, user.ID)
}

// Update applies only the supplied field diffs, refreshing updated_at, then
// re-reads and returns the updated row. With no diffs it degrades to a read.
func (r *UserRepository) Update(ctx context.Context, q repository.DBExecutor, id int64, in domain.UpdateUserInput) (*domain.User, error) {
	if in.IsEmpty() {
		return r.FindByID(ctx, q, id)
	}

	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	if in.Name != nil {
		args = append(args, *in.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if in.Email != nil {
		args = append(args, *in.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if in.Age != nil {
		args = append(args, *in.Age)
		sets = append(sets, fmt.Sprintf("age = $%d", len(args)))
	}
	args = append(args, time.Now().UTC())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	if affected == 0 {
		return nil, util.ErrNotFound
	}
	return r.FindByID(ctx, q, id)
}

// Delete removes the user row, reporting whether exactly one row was affected.
func (r *UserRepository) Delete(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	res, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete user", "id", id, "error", err)
		return false, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", "id", id, "error", err)
		return false, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return affected == 1, nil
}
