// internal/domain/user.go
package domain

import "time"

// User represents a user record in the registry.
type User struct {
	ID        int64     `db:"id" json:"id"`                // Primary key, BIGSERIAL in DB
	Name      string    `db:"name" json:"name"`            // Display name, at least 2 characters
	Email     string    `db:"email" json:"email"`          // Unique email address
	Age       *int64    `db:"age" json:"age"`              // Optional, NULL when not provided
	CreatedAt time.Time `db:"created_at" json:"createdAt"` // Timestamp of creation
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"` // Timestamp of last update
}

// NewUser creates a new User instance with server-assigned timestamps.
func NewUser(name, email string, age *int64) *User {
	now := time.Now().UTC()
	return &User{
		Name:      name,
		Email:     email,
		Age:       age,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Name  string
	Email string
	Age   *int64
}

// UpdateUserInput carries the optional field diffs for a partial update.
// A nil field means "leave untouched in storage".
type UpdateUserInput struct {
	Name  *string
	Email *string
	Age   *int64
}

// IsEmpty reports whether no field was supplied at all.
func (in UpdateUserInput) IsEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Age == nil
}
